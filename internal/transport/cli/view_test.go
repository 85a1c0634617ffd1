package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/checkers/internal/checkers"
	"github.com/rocketscienceinc/checkers/internal/entity"
)

func TestRenderBoard(t *testing.T) {
	t.Run("Classic opening", func(t *testing.T) {
		out := &bytes.Buffer{}

		renderBoard(out, checkers.NewBoard(checkers.Classic()))

		expected := "   A B C D E F G H\n" +
			"8  . O . O . O . O  8\n" +
			"7  O . O . O . O .  7\n" +
			"6  . O . O . O . O  6\n" +
			"5  . . . . . . . .  5\n" +
			"4  . . . . . . . .  4\n" +
			"3  o . o . o . o .  3\n" +
			"2  . o . o . o . o  2\n" +
			"1  o . o . o . o .  1\n" +
			"   A B C D E F G H\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Extended back ranks", func(t *testing.T) {
		out := &bytes.Buffer{}

		renderBoard(out, checkers.NewBoard(checkers.Extended()))

		assert.Contains(t, out.String(), "8  . D . K . C . D  8")
		assert.Contains(t, out.String(), "1  d . c . k . d .  1")
	})

	t.Run("Promoted checkers are crowned", func(t *testing.T) {
		promoted := entity.NewPiece(entity.SideWhite, entity.Checker, entity.MustParsePosition("A1"))
		promoted.Promoted = true

		assert.Equal(t, 'K', glyph(promoted))
		assert.Equal(t, 'h', glyph(entity.NewPiece(entity.SideBlack, entity.Horse, entity.MustParsePosition("B2"))))
	})
}

func TestRenderStatus(t *testing.T) {
	t.Run("Counts every piece type", func(t *testing.T) {
		game, err := checkers.NewGame(checkers.Extended(), 2)
		assert.NoError(t, err)
		out := &bytes.Buffer{}

		renderStatus(out, game)

		assert.Contains(t, out.String(), "Black: Soldier 4, Cannon 2, Horse 2, Dragon 2, King 1\n")
		assert.Contains(t, out.String(), "White: Soldier 4, Cannon 2, Horse 2, Dragon 2, King 1\n")
	})

	t.Run("Classic has no protection notice", func(t *testing.T) {
		game, err := checkers.NewGame(checkers.Classic(), 2)
		assert.NoError(t, err)
		out := &bytes.Buffer{}

		renderStatus(out, game)

		assert.Contains(t, out.String(), "Black: Checker 12\n")
		assert.NotContains(t, out.String(), "Kings cannot be captured")
	})
}

func TestRenderMoves(t *testing.T) {
	out := &bytes.Buffer{}

	renderMoves(out, nil)

	assert.Equal(t, "no legal moves\n", out.String())
}
