package checkers

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/checkers/internal/entity"
)

var ErrInvalidPlayerCount = errors.New("human player count must be between 0 and 2")

// Game drives turn order, capture sequences, phase rules and win detection
// over one board.
type Game struct {
	rules     Ruleset
	board     *Board
	players   [2]entity.Player
	turn      entity.Side
	winner    entity.Side
	turnCount int
}

// NewGame - starts a game from the ruleset's initial layout. Human seats are
// filled Black first.
func NewGame(rules Ruleset, humanPlayers int) (*Game, error) {
	return NewGameWithBoard(NewBoard(rules), humanPlayers)
}

// NewGameWithBoard - starts a game from an arbitrary position, Black to move.
func NewGameWithBoard(board *Board, humanPlayers int) (*Game, error) {
	if humanPlayers < 0 || humanPlayers > 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, humanPlayers)
	}

	return &Game{
		rules: board.Ruleset(),
		board: board,
		players: [2]entity.Player{
			entity.NewPlayer(humanPlayers >= 1, entity.SideBlack),
			entity.NewPlayer(humanPlayers >= 2, entity.SideWhite),
		},
		turn:      entity.SideBlack,
		winner:    entity.SideNone,
		turnCount: 1,
	}, nil
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) Ruleset() Ruleset {
	return that.rules
}

func (that *Game) Players() [2]entity.Player {
	return that.players
}

func (that *Game) PlayerFor(side entity.Side) entity.Player {
	if side == entity.SideWhite {
		return that.players[1]
	}
	return that.players[0]
}

// Turn - the side to move.
func (that *Game) Turn() entity.Side {
	return that.turn
}

// Winner - the winning side, SideNone while the game is running.
func (that *Game) Winner() entity.Side {
	return that.winner
}

func (that *Game) IsFinished() bool {
	return that.winner != entity.SideNone
}

// TurnCount - full cycles of both sides moving, starting at 1.
func (that *Game) TurnCount() int {
	return that.turnCount
}

// KingImmune - reports whether the move would capture a King that is still
// protected by the opening phase.
func (that *Game) KingImmune(move entity.Move) bool {
	return that.rules.KingImmunityTurns > 0 &&
		that.turnCount <= that.rules.KingImmunityTurns &&
		move.IsCapture() &&
		move.Captured.Type == entity.King
}

// PerformMove - applies a legal move and advances the game. A move onto a
// protected King is ignored and leaves the game untouched.
func (that *Game) PerformMove(move entity.Move) {
	if that.KingImmune(move) {
		return
	}

	piece := move.Piece

	if move.IsCapture() {
		if err := that.board.Remove(move.Captured); err != nil {
			panic(fmt.Errorf("capture %s: %w", move, err))
		}
	}

	that.board.relocate(piece, move.To)

	if that.rules.Promotion && move.To.Y == piece.Side.FarRank() {
		piece.Promoted = true
	}

	if piece.Type == entity.Soldier {
		piece.StepsMoved++
	}

	if that.rules.ForcedCapture && move.IsCapture() && len(captures(that.board.MovesForPiece(piece))) > 0 {
		that.board.aggressor = piece
	} else {
		that.board.aggressor = nil
		that.turn = that.turn.Opponent()
		if that.turn == entity.SideBlack {
			that.turnCount++
		}
	}

	that.CheckForWinner()
}

// CheckForWinner - evaluates the win conditions. Safe to call repeatedly;
// a decided winner never changes.
func (that *Game) CheckForWinner() {
	if that.winner != entity.SideNone {
		return
	}

	// Both checks run: when both sides are wiped out White is reported.
	if len(that.board.PiecesOf(entity.SideWhite)) == 0 {
		that.winner = entity.SideBlack
	}
	if len(that.board.PiecesOf(entity.SideBlack)) == 0 {
		that.winner = entity.SideWhite
	}

	if that.winner == entity.SideNone && len(that.board.MovesFor(that.turn)) == 0 {
		that.winner = that.turn.Opponent()
	}
}

// TakenCount - pieces of a side captured so far.
func (that *Game) TakenCount(side entity.Side) int {
	return that.rules.StartingCount(side) - that.RemainingCount(side)
}

func (that *Game) RemainingCount(side entity.Side) int {
	return len(that.board.PiecesOf(side))
}

// RemainingByType - live pieces of a side tallied by type. Every type of
// the ruleset is present, with zero when none are left.
func (that *Game) RemainingByType(side entity.Side) map[entity.PieceType]int {
	counts := make(map[entity.PieceType]int, len(that.rules.Generators))
	for _, t := range that.rules.PieceTypes() {
		counts[t] = 0
	}
	for _, piece := range that.board.PiecesOf(side) {
		counts[piece.Type]++
	}
	return counts
}
