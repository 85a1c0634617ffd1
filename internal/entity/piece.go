package entity

// Side is one of the two colors sharing the board.
type Side int8

const (
	SideNone Side = iota
	SideBlack
	SideWhite
)

func (that Side) String() string {
	switch that {
	case SideBlack:
		return "Black"
	case SideWhite:
		return "White"
	default:
		return "-"
	}
}

// Opponent - returns the other side. SideNone has no opponent.
func (that Side) Opponent() Side {
	switch that {
	case SideBlack:
		return SideWhite
	case SideWhite:
		return SideBlack
	default:
		return SideNone
	}
}

// Forward - returns the y direction the side advances in. Black starts on rank 1.
func (that Side) Forward() int {
	if that == SideWhite {
		return -1
	}
	return 1
}

// FarRank - returns the rank a piece of this side promotes on.
func (that Side) FarRank() int {
	if that == SideWhite {
		return 0
	}
	return BoardSize - 1
}

type PieceType int8

const (
	Checker PieceType = iota
	Soldier
	Cannon
	Horse
	Dragon
	King
)

// ExtendedTypes lists the piece types of the extended ruleset in display order.
var ExtendedTypes = []PieceType{Soldier, Cannon, Horse, Dragon, King}

func (that PieceType) String() string {
	switch that {
	case Checker:
		return "Checker"
	case Soldier:
		return "Soldier"
	case Cannon:
		return "Cannon"
	case Horse:
		return "Horse"
	case Dragon:
		return "Dragon"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

// Piece is a live piece on the board. The board mutates Position in place.
type Piece struct {
	Position
	Side       Side      `json:"side"`
	Type       PieceType `json:"type"`
	Promoted   bool      `json:"promoted,omitempty"`
	StepsMoved int       `json:"steps_moved,omitempty"`
}

func NewPiece(side Side, pieceType PieceType, pos Position) *Piece {
	return &Piece{
		Position: pos,
		Side:     side,
		Type:     pieceType,
	}
}
