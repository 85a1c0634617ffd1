package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/checkers/internal/checkers"
	"github.com/rocketscienceinc/checkers/internal/entity"
)

// LineReader - the part of readline the console needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type matchUseCase interface {
	ID() string
	Game() *checkers.Game
	LegalMoves() []entity.Move
	ForcedPiece() *entity.Piece
	MakeTurn(ctx context.Context, from, to string) (entity.Move, error)
}

// Handler drives one match from console input.
type Handler struct {
	logger *slog.Logger
	match  matchUseCase
	reader LineReader
	out    io.Writer
}

func New(logger *slog.Logger, match matchUseCase, reader LineReader, out io.Writer) *Handler {
	return &Handler{
		logger: logger.With("component", "cli"),
		match:  match,
		reader: reader,
		out:    out,
	}
}

// Run - reads commands until the game ends, the user quits, input is
// exhausted or ctx is cancelled.
func (that *Handler) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run", "game_id", that.match.ID())

	game := that.match.Game()
	fmt.Fprintf(that.out, "Checkers (%s rules). Type 'help' for commands.\n\n", game.Ruleset().Name)
	that.show()

	for !game.IsFinished() {
		if ctx.Err() != nil {
			log.Info("context cancelled, leaving the game")
			return nil
		}

		that.reader.SetPrompt(prompt(game))

		line, err := that.reader.Readline()
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
			log.Info("input closed, leaving the game")
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		if quit := that.handleLine(ctx, line); quit {
			return nil
		}
	}

	log.Info("game finished", "winner", game.Winner().String(), "turn_count", game.TurnCount())

	return nil
}

// handleLine - executes one command and reports whether the user quit.
func (that *Handler) handleLine(ctx context.Context, line string) bool {
	fields := strings.FieldsFunc(strings.TrimSpace(line), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-'
	})
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		fmt.Fprintln(that.out, "bye")
		return true
	case "help", "?":
		renderHelp(that.out)
		return false
	case "board":
		that.show()
		return false
	case "moves":
		renderMoves(that.out, that.match.LegalMoves())
		return false
	}

	switch len(fields) {
	case 1:
		forced := that.match.ForcedPiece()
		if forced == nil {
			fmt.Fprintln(that.out, "more than one piece can move, give both squares")
			return false
		}
		that.move(ctx, forced.Position.String(), fields[0])
	case 2:
		that.move(ctx, fields[0], fields[1])
	default:
		fmt.Fprintf(that.out, "unknown command %q, type 'help'\n", line)
	}

	return false
}

func (that *Handler) move(ctx context.Context, from, to string) {
	move, err := that.match.MakeTurn(ctx, from, to)
	if err != nil {
		that.logger.Debug("move rejected", "from", from, "to", to, "error", err)
		fmt.Fprintf(that.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(that.out, "%s %s %s\n\n", move.Piece.Side, move.Piece.Type, move)
	that.show()
}

func (that *Handler) show() {
	game := that.match.Game()
	renderBoard(that.out, game.Board())
	fmt.Fprintln(that.out)
	renderStatus(that.out, game)
}

func prompt(game *checkers.Game) string {
	return fmt.Sprintf("%s [%d] > ", strings.ToLower(game.Turn().String()), game.TurnCount())
}
