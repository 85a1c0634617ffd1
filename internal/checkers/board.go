package checkers

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rocketscienceinc/checkers/internal/entity"
)

var (
	ErrOccupied      = errors.New("square is already occupied")
	ErrOffBoard      = errors.New("square is off the board")
	ErrPieceNotFound = errors.New("piece is not on the board")
)

// Board owns the live pieces. Pieces are kept in creation order for
// deterministic move generation and indexed by square for lookups.
type Board struct {
	rules     Ruleset
	pieces    []*entity.Piece
	squares   [entity.BoardSize][entity.BoardSize]*entity.Piece
	aggressor *entity.Piece
}

// NewBoard - creates a board with the ruleset's initial layout.
func NewBoard(rules Ruleset) *Board {
	board := NewEmptyBoard(rules)
	for _, p := range rules.Layout {
		piece := entity.NewPiece(p.Side, p.Type, entity.MustParsePosition(p.Notation))
		if err := board.Place(piece); err != nil {
			panic(fmt.Errorf("ruleset %s has a broken layout: %w", rules.Name, err))
		}
	}
	return board
}

// NewEmptyBoard - creates a board without pieces, for custom positions.
func NewEmptyBoard(rules Ruleset) *Board {
	return &Board{rules: rules}
}

func (that *Board) Ruleset() Ruleset {
	return that.rules
}

// Place - puts a piece on its square.
func (that *Board) Place(piece *entity.Piece) error {
	if !piece.Valid() {
		return fmt.Errorf("%w: (%d, %d)", ErrOffBoard, piece.X, piece.Y)
	}
	if that.squares[piece.X][piece.Y] != nil {
		return fmt.Errorf("%w: %s", ErrOccupied, piece.Position)
	}

	that.pieces = append(that.pieces, piece)
	that.squares[piece.X][piece.Y] = piece

	return nil
}

// Remove - takes a piece off the board for good.
func (that *Board) Remove(piece *entity.Piece) error {
	idx := slices.Index(that.pieces, piece)
	if idx < 0 {
		return ErrPieceNotFound
	}

	that.pieces = slices.Delete(that.pieces, idx, idx+1)
	if that.squares[piece.X][piece.Y] == piece {
		that.squares[piece.X][piece.Y] = nil
	}
	if that.aggressor == piece {
		that.aggressor = nil
	}

	return nil
}

// relocate - moves a live piece to an empty square, keeping the index in sync.
func (that *Board) relocate(piece *entity.Piece, to entity.Position) {
	if that.squares[to.X][to.Y] != nil {
		panic(fmt.Errorf("relocate %s to %s: %w", piece.Position, to, ErrOccupied))
	}
	that.squares[piece.X][piece.Y] = nil
	piece.Position = to
	that.squares[to.X][to.Y] = piece
}

// PieceAt - returns the piece on a square, or nil.
func (that *Board) PieceAt(pos entity.Position) *entity.Piece {
	if !pos.Valid() {
		return nil
	}
	return that.squares[pos.X][pos.Y]
}

// Pieces - returns the live pieces in creation order.
func (that *Board) Pieces() []*entity.Piece {
	return slices.Clone(that.pieces)
}

func (that *Board) PiecesOf(side entity.Side) []*entity.Piece {
	var pieces []*entity.Piece
	for _, piece := range that.pieces {
		if piece.Side == side {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// Aggressor - the piece that must keep capturing, if any.
func (that *Board) Aggressor() *entity.Piece {
	return that.aggressor
}

// MovesFor - all legal moves of a side. While an aggressor is set only its
// captures are legal.
func (that *Board) MovesFor(side entity.Side) []entity.Move {
	var moves []entity.Move

	if that.aggressor != nil {
		if that.aggressor.Side != side {
			panic(fmt.Sprintf("aggressor %s belongs to %s, moves requested for %s",
				that.aggressor.Position, that.aggressor.Side, side))
		}
		moves = captures(that.MovesForPiece(that.aggressor))
	} else {
		for _, piece := range that.pieces {
			if piece.Side == side {
				moves = append(moves, that.MovesForPiece(piece)...)
			}
		}
	}

	return that.forceCaptures(moves)
}

// MovesForPiece - all legal moves of one piece, ignoring the aggressor.
func (that *Board) MovesForPiece(piece *entity.Piece) []entity.Move {
	generate, ok := that.rules.Generators[piece.Type]
	if !ok {
		return nil
	}
	return that.forceCaptures(generate(that, piece))
}

// Validate - returns the legal move of side going from -> to, if there is one.
func (that *Board) Validate(side entity.Side, from, to entity.Position) (entity.Move, bool) {
	if that.PieceAt(from) == nil {
		return entity.Move{}, false
	}

	for _, move := range that.MovesFor(side) {
		if move.Piece.Position == from && move.To == to {
			return move, true
		}
	}

	return entity.Move{}, false
}

// ClosestRivalPieces - the pair (a of priority side, b of the other side)
// with the smallest squared distance. The first pair found wins ties.
func (that *Board) ClosestRivalPieces(priority entity.Side) (*entity.Piece, *entity.Piece) {
	var a, b *entity.Piece
	minDistance := math.MaxInt

	for _, own := range that.pieces {
		if own.Side != priority {
			continue
		}
		for _, rival := range that.pieces {
			if rival.Side == priority {
				continue
			}
			if d := own.DistanceSquared(rival.Position); d < minDistance {
				minDistance = d
				a, b = own, rival
			}
		}
	}

	return a, b
}

func (that *Board) forceCaptures(moves []entity.Move) []entity.Move {
	if !that.rules.ForcedCapture {
		return moves
	}
	if forced := captures(moves); len(forced) > 0 {
		return forced
	}
	return moves
}

func captures(moves []entity.Move) []entity.Move {
	var result []entity.Move
	for _, move := range moves {
		if move.IsCapture() {
			result = append(result, move)
		}
	}
	return result
}
