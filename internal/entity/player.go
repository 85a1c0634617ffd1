package entity

// Player holds the seat configuration for one side.
type Player struct {
	Side  Side `json:"side"`
	Human bool `json:"human"`
}

func NewPlayer(human bool, side Side) Player {
	return Player{Side: side, Human: human}
}
