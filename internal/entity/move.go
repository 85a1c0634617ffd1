package entity

// Move is a candidate transition of one piece. A move with a Captured piece is a capture move.
type Move struct {
	Piece    *Piece
	From     Position
	To       Position
	Captured *Piece
}

func NewMove(piece *Piece, to Position) Move {
	return Move{Piece: piece, From: piece.Position, To: to}
}

func NewCapture(piece *Piece, to Position, captured *Piece) Move {
	return Move{Piece: piece, From: piece.Position, To: to, Captured: captured}
}

func (that Move) IsCapture() bool {
	return that.Captured != nil
}

func (that Move) String() string {
	if that.IsCapture() {
		return that.From.String() + "x" + that.To.String()
	}
	return that.From.String() + "-" + that.To.String()
}
