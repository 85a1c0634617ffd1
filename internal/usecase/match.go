package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/checkers/internal/apperror"
	"github.com/rocketscienceinc/checkers/internal/checkers"
	"github.com/rocketscienceinc/checkers/internal/entity"
)

var ErrNilGame = errors.New("game is nil")

type eventPublisher interface {
	Publish(ctx context.Context, event entity.MoveEvent) error
}

// Match runs one game for a driver that speaks board notation.
type Match struct {
	logger    *slog.Logger
	publisher eventPublisher

	id   string
	game *checkers.Game
}

// NewMatch - wraps a game. A nil publisher disables move events.
func NewMatch(logger *slog.Logger, game *checkers.Game, publisher eventPublisher) (*Match, error) {
	if game == nil {
		return nil, ErrNilGame
	}

	id := uuid.NewString()

	return &Match{
		logger:    logger.With("component", "match", "game_id", id),
		publisher: publisher,
		id:        id,
		game:      game,
	}, nil
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) Game() *checkers.Game {
	return that.game
}

// LegalMoves - the moves the side to move may choose from.
func (that *Match) LegalMoves() []entity.Move {
	if that.game.IsFinished() {
		return nil
	}
	return that.game.Board().MovesFor(that.game.Turn())
}

// ForcedPiece - the piece the side to move has to use, if only one can move.
func (that *Match) ForcedPiece() *entity.Piece {
	if aggressor := that.game.Board().Aggressor(); aggressor != nil {
		return aggressor
	}

	var forced *entity.Piece
	for _, move := range that.LegalMoves() {
		if forced != nil && forced != move.Piece {
			return nil
		}
		forced = move.Piece
	}

	return forced
}

// MakeTurn - plays from -> to for the side to move.
func (that *Match) MakeTurn(ctx context.Context, from, to string) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "from", from, "to", to)

	if that.game.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	fromPos, err := entity.ParsePosition(from)
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid origin: %w", err)
	}

	toPos, err := entity.ParsePosition(to)
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid destination: %w", err)
	}

	side := that.game.Turn()
	board := that.game.Board()

	if piece := board.PieceAt(fromPos); piece == nil || piece.Side != side {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrNotYourPiece, fromPos)
	}

	move, ok := board.Validate(side, fromPos, toPos)
	if !ok {
		return entity.Move{}, fmt.Errorf("%w: %s to %s", apperror.ErrIllegalMove, fromPos, toPos)
	}

	if that.game.KingImmune(move) {
		return entity.Move{}, fmt.Errorf("%w: protected until turn %d",
			apperror.ErrKingImmune, that.game.Ruleset().KingImmunityTurns+1)
	}

	that.game.PerformMove(move)

	log.Info("move performed",
		"side", side.String(),
		"capture", move.IsCapture(),
		"next_turn", that.game.Turn().String(),
		"turn_count", that.game.TurnCount(),
	)

	if that.game.IsFinished() {
		log.Info("game finished", "winner", that.game.Winner().String())
	}

	that.publish(ctx, move, side)

	return move, nil
}

func (that *Match) publish(ctx context.Context, move entity.Move, side entity.Side) {
	if that.publisher == nil {
		return
	}

	event := entity.MoveEvent{
		GameID:    that.id,
		Ruleset:   that.game.Ruleset().Name,
		Side:      side.String(),
		Piece:     move.Piece.Type.String(),
		From:      move.From.String(),
		To:        move.To.String(),
		NextTurn:  that.game.Turn().String(),
		TurnCount: that.game.TurnCount(),
	}

	if move.IsCapture() {
		event.Captured = move.Captured.Position.String()
		event.CapturedType = move.Captured.Type.String()
	}

	if that.game.IsFinished() {
		event.Winner = that.game.Winner().String()
	}

	if err := that.publisher.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish move event", "error", err)
	}
}
