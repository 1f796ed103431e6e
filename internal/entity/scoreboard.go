package entity

// Scoreboard tallies finished rounds of a single session.
type Scoreboard struct {
	Wins map[string]int `json:"wins"`
	Ties int            `json:"ties"`
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		Wins: make(map[string]int),
	}
}

func (that *Scoreboard) Rounds() int {
	rounds := that.Ties
	for _, wins := range that.Wins {
		rounds += wins
	}

	return rounds
}
