package entity

// MoveEvent describes an applied move for external observers.
type MoveEvent struct {
	GameID       string `json:"game_id"`
	Ruleset      string `json:"ruleset"`
	Side         string `json:"side"`
	Piece        string `json:"piece"`
	From         string `json:"from"`
	To           string `json:"to"`
	Captured     string `json:"captured,omitempty"`
	CapturedType string `json:"captured_type,omitempty"`
	NextTurn     string `json:"next_turn"`
	TurnCount    int    `json:"turn_count"`
	Winner       string `json:"winner,omitempty"`
}
