package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers/internal/checkers"
	"github.com/rocketscienceinc/checkers/internal/entity"
	"github.com/rocketscienceinc/checkers/internal/usecase"
)

var errTerminal = errors.New("terminal gone")

// fakeReader - replays scripted lines, then returns err (io.EOF by default).
type fakeReader struct {
	lines   []string
	err     error
	prompts []string
	reads   int
}

func (that *fakeReader) Readline() (string, error) {
	that.reads++
	if len(that.lines) == 0 {
		if that.err != nil {
			return "", that.err
		}
		return "", io.EOF
	}
	line := that.lines[0]
	that.lines = that.lines[1:]
	return line, nil
}

func (that *fakeReader) SetPrompt(prompt string) {
	that.prompts = append(that.prompts, prompt)
}

func newHandler(t *testing.T, game *checkers.Game, reader LineReader) (*Handler, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	match, err := usecase.NewMatch(logger, game, nil)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return New(logger, match, reader, out), out
}

func newGame(t *testing.T, rules checkers.Ruleset) *checkers.Game {
	t.Helper()

	game, err := checkers.NewGame(rules, 2)
	require.NoError(t, err)
	return game
}

func gameWith(t *testing.T, rules checkers.Ruleset, pieces ...*entity.Piece) *checkers.Game {
	t.Helper()

	board := checkers.NewEmptyBoard(rules)
	for _, piece := range pieces {
		require.NoError(t, board.Place(piece))
	}
	game, err := checkers.NewGameWithBoard(board, 2)
	require.NoError(t, err)
	return game
}

func piece(side entity.Side, pieceType entity.PieceType, notation string) *entity.Piece {
	return entity.NewPiece(side, pieceType, entity.MustParsePosition(notation))
}

func TestHandler_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Shows the opening position and stops on EOF", func(t *testing.T) {
		reader := &fakeReader{}
		handler, out := newHandler(t, newGame(t, checkers.Extended()), reader)

		err := handler.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "extended rules")
		assert.Contains(t, out.String(), "1  d . c . k . d .  1")
		assert.Contains(t, out.String(), "Turn 1, Black to move")
		assert.Contains(t, out.String(), "Kings cannot be captured until turn 6")
		assert.Equal(t, []string{"black [1] > "}, reader.prompts)
	})

	t.Run("Plays moves until the user quits", func(t *testing.T) {
		// Given: two moves followed by quit
		game := newGame(t, checkers.Extended())
		reader := &fakeReader{lines: []string{"A3 A4", "h6-h5", "quit", "board"}}
		handler, out := newHandler(t, game, reader)

		// When: the loop runs
		err := handler.Run(ctx)

		// Then: both moves are played and the remaining line is left unread
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Black Soldier A3-A4")
		assert.Contains(t, out.String(), "White Soldier H6-H5")
		assert.Contains(t, out.String(), "bye")
		assert.Equal(t, 2, game.TurnCount())
		assert.Equal(t, []string{"board"}, reader.lines)
	})

	t.Run("Reports rejected moves and keeps going", func(t *testing.T) {
		game := newGame(t, checkers.Extended())
		reader := &fakeReader{lines: []string{"A3 A5", "Z9 A4", "H6 H5", "A3 A4 A5"}}
		handler, out := newHandler(t, game, reader)

		err := handler.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "error: move is not legal")
		assert.Contains(t, out.String(), "error: invalid origin")
		assert.Contains(t, out.String(), "error: there is no piece of yours on that square")
		assert.Contains(t, out.String(), `unknown command "A3 A4 A5"`)
		assert.Equal(t, entity.SideBlack, game.Turn())
	})

	t.Run("Ends when the game is won", func(t *testing.T) {
		// Given: black can take the last white piece
		game := gameWith(t, checkers.Classic(),
			piece(entity.SideBlack, entity.Checker, "C3"),
			piece(entity.SideWhite, entity.Checker, "D4"),
		)
		reader := &fakeReader{lines: []string{"C3 E5", "E5 F6"}}
		handler, out := newHandler(t, game, reader)

		// When: the capture is played
		err := handler.Run(ctx)

		// Then: the winner is announced and nothing else is read
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Black Checker C3xE5")
		assert.Contains(t, out.String(), "Black wins!")
		assert.Equal(t, 1, reader.reads)
	})

	t.Run("A single square moves the only movable piece", func(t *testing.T) {
		game := gameWith(t, checkers.Extended(),
			piece(entity.SideBlack, entity.Soldier, "A3"),
			piece(entity.SideWhite, entity.Soldier, "H6"),
		)
		reader := &fakeReader{lines: []string{"A4"}}
		handler, out := newHandler(t, game, reader)

		require.NoError(t, handler.Run(ctx))

		assert.Contains(t, out.String(), "Black Soldier A3-A4")
		assert.NotNil(t, game.Board().PieceAt(entity.MustParsePosition("A4")))
	})

	t.Run("A single square is refused when several pieces can move", func(t *testing.T) {
		reader := &fakeReader{lines: []string{"A4"}}
		handler, out := newHandler(t, newGame(t, checkers.Extended()), reader)

		require.NoError(t, handler.Run(ctx))

		assert.Contains(t, out.String(), "more than one piece can move")
	})

	t.Run("Shows the aggressor during a multi-capture", func(t *testing.T) {
		game := gameWith(t, checkers.Classic(),
			piece(entity.SideBlack, entity.Checker, "C3"),
			piece(entity.SideWhite, entity.Checker, "D4"),
			piece(entity.SideWhite, entity.Checker, "F6"),
			piece(entity.SideWhite, entity.Checker, "H8"),
		)
		reader := &fakeReader{lines: []string{"C3 E5"}}
		handler, out := newHandler(t, game, reader)

		require.NoError(t, handler.Run(ctx))

		assert.Contains(t, out.String(), "Black must keep capturing with E5")
	})

	t.Run("Lists legal moves and help", func(t *testing.T) {
		reader := &fakeReader{lines: []string{"moves", "help", ""}}
		handler, out := newHandler(t, newGame(t, checkers.Extended()), reader)

		require.NoError(t, handler.Run(ctx))

		assert.Contains(t, out.String(), "Soldier A3-A4")
		assert.Contains(t, out.String(), "Commands:")
	})

	t.Run("Stops on interrupt", func(t *testing.T) {
		reader := &fakeReader{err: readline.ErrInterrupt}
		handler, _ := newHandler(t, newGame(t, checkers.Classic()), reader)

		require.NoError(t, handler.Run(ctx))
	})

	t.Run("Returns read errors", func(t *testing.T) {
		reader := &fakeReader{err: errTerminal}
		handler, _ := newHandler(t, newGame(t, checkers.Classic()), reader)

		err := handler.Run(ctx)

		require.ErrorIs(t, err, errTerminal)
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		reader := &fakeReader{lines: []string{"A3 A4"}}
		handler, _ := newHandler(t, newGame(t, checkers.Extended()), reader)

		require.NoError(t, handler.Run(cancelled))
		assert.Zero(t, reader.reads)
	})
}
