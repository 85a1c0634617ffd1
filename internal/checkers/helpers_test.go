package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers/internal/entity"
)

func place(t *testing.T, board *Board, side entity.Side, pieceType entity.PieceType, notation string) *entity.Piece {
	t.Helper()

	piece := entity.NewPiece(side, pieceType, entity.MustParsePosition(notation))
	require.NoError(t, board.Place(piece))

	return piece
}

func destinations(moves []entity.Move) []string {
	result := make([]string, 0, len(moves))
	for _, move := range moves {
		result = append(result, move.To.String())
	}
	return result
}

func captured(moves []entity.Move) []string {
	var result []string
	for _, move := range moves {
		if move.IsCapture() {
			result = append(result, move.Captured.Position.String())
		}
	}
	return result
}

func pos(notation string) entity.Position {
	return entity.MustParsePosition(notation)
}
