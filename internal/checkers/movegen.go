package checkers

import "github.com/rocketscienceinc/checkers/internal/entity"

type direction struct{ dx, dy int }

var (
	diagonals  = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonal = []direction{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
	allAround  = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// soldierPromotionSteps - steps after which a Soldier may also move sideways.
const soldierPromotionSteps = 2

// checkerMoves - diagonal step onto an empty square, or a jump over an
// adjacent enemy onto the empty square beyond it. Only promoted pieces move backwards.
func checkerMoves(board *Board, piece *entity.Piece) []entity.Move {
	var moves []entity.Move

	for _, d := range diagonals {
		if !piece.Promoted && d.dy != piece.Side.Forward() {
			continue
		}

		target := piece.Add(d.dx, d.dy)
		if !target.Valid() {
			continue
		}

		occupant := board.PieceAt(target)
		switch {
		case occupant == nil:
			moves = append(moves, entity.NewMove(piece, target))
		case occupant.Side != piece.Side:
			jump := piece.Add(2*d.dx, 2*d.dy)
			if jump.Valid() && board.PieceAt(jump) == nil {
				moves = append(moves, entity.NewCapture(piece, jump, occupant))
			}
		}
	}

	return moves
}

// soldierMoves - one square forward; after two steps also one square left or right.
func soldierMoves(board *Board, piece *entity.Piece) []entity.Move {
	directions := []direction{{0, piece.Side.Forward()}}
	if piece.StepsMoved >= soldierPromotionSteps {
		directions = append(directions, direction{-1, 0}, direction{1, 0})
	}
	return stepMoves(board, piece, directions)
}

// horseMoves - one square diagonally.
func horseMoves(board *Board, piece *entity.Piece) []entity.Move {
	return stepMoves(board, piece, diagonals)
}

// kingMoves - one square in any direction.
func kingMoves(board *Board, piece *entity.Piece) []entity.Move {
	return stepMoves(board, piece, allAround)
}

// dragonMoves - slides orthogonally; the first piece on a line ends it,
// and is captured when it is an enemy.
func dragonMoves(board *Board, piece *entity.Piece) []entity.Move {
	var moves []entity.Move

	for _, d := range orthogonal {
		for target := piece.Add(d.dx, d.dy); target.Valid(); target = target.Add(d.dx, d.dy) {
			occupant := board.PieceAt(target)
			if occupant == nil {
				moves = append(moves, entity.NewMove(piece, target))
				continue
			}
			if occupant.Side != piece.Side {
				moves = append(moves, entity.NewCapture(piece, target, occupant))
			}
			break
		}
	}

	return moves
}

// cannonMoves - slides orthogonally over empty squares; captures the first
// piece beyond exactly one mount of either side.
func cannonMoves(board *Board, piece *entity.Piece) []entity.Move {
	var moves []entity.Move

	for _, d := range orthogonal {
		mounted := false
		for target := piece.Add(d.dx, d.dy); target.Valid(); target = target.Add(d.dx, d.dy) {
			occupant := board.PieceAt(target)
			if !mounted {
				if occupant == nil {
					moves = append(moves, entity.NewMove(piece, target))
				} else {
					mounted = true
				}
				continue
			}
			if occupant == nil {
				continue
			}
			if occupant.Side != piece.Side {
				moves = append(moves, entity.NewCapture(piece, target, occupant))
			}
			break
		}
	}

	return moves
}

// stepMoves - single-square moves in the given directions, capturing by
// moving onto an enemy.
func stepMoves(board *Board, piece *entity.Piece, directions []direction) []entity.Move {
	var moves []entity.Move

	for _, d := range directions {
		target := piece.Add(d.dx, d.dy)
		if !target.Valid() {
			continue
		}

		occupant := board.PieceAt(target)
		switch {
		case occupant == nil:
			moves = append(moves, entity.NewMove(piece, target))
		case occupant.Side != piece.Side:
			moves = append(moves, entity.NewCapture(piece, target, occupant))
		}
	}

	return moves
}
