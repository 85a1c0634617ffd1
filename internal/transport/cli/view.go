package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/checkers/internal/checkers"
	"github.com/rocketscienceinc/checkers/internal/entity"
)

const (
	emptySquare = '.'
	files       = "A B C D E F G H"
)

// glyphs - black pieces are lower case, white pieces upper case.
var glyphs = map[entity.PieceType]rune{
	entity.Checker: 'o',
	entity.Soldier: 's',
	entity.Cannon:  'c',
	entity.Horse:   'h',
	entity.Dragon:  'd',
	entity.King:    'k',
}

func glyph(piece *entity.Piece) rune {
	r := glyphs[piece.Type]
	if piece.Type == entity.Checker && piece.Promoted {
		r = 'k'
	}
	if piece.Side == entity.SideWhite {
		r -= 'a' - 'A'
	}
	return r
}

// renderBoard - rank 8 on top, file letters above and below.
func renderBoard(w io.Writer, board *checkers.Board) {
	fmt.Fprintf(w, "   %s\n", files)

	for y := entity.BoardSize - 1; y >= 0; y-- {
		var row strings.Builder
		for x := 0; x < entity.BoardSize; x++ {
			if x > 0 {
				row.WriteByte(' ')
			}
			if piece := board.PieceAt(entity.Position{X: x, Y: y}); piece != nil {
				row.WriteRune(glyph(piece))
			} else {
				row.WriteRune(emptySquare)
			}
		}
		fmt.Fprintf(w, "%d  %s  %d\n", y+1, row.String(), y+1)
	}

	fmt.Fprintf(w, "   %s\n", files)
}

// renderStatus - piece tallies, turn, protection window, aggressor and winner.
func renderStatus(w io.Writer, game *checkers.Game) {
	rules := game.Ruleset()

	for _, side := range []entity.Side{entity.SideBlack, entity.SideWhite} {
		counts := game.RemainingByType(side)
		parts := make([]string, 0, len(counts))
		for _, t := range rules.PieceTypes() {
			parts = append(parts, fmt.Sprintf("%s %d", t, counts[t]))
		}
		fmt.Fprintf(w, "%s: %s\n", side, strings.Join(parts, ", "))
	}

	if game.IsFinished() {
		fmt.Fprintf(w, "%s wins!\n", game.Winner())
		return
	}

	fmt.Fprintf(w, "Turn %d, %s to move\n", game.TurnCount(), game.Turn())

	if rules.KingImmunityTurns > 0 && game.TurnCount() <= rules.KingImmunityTurns {
		fmt.Fprintf(w, "Kings cannot be captured until turn %d\n", rules.KingImmunityTurns+1)
	}

	if aggressor := game.Board().Aggressor(); aggressor != nil {
		fmt.Fprintf(w, "%s must keep capturing with %s\n", aggressor.Side, aggressor.Position)
	}
}

func renderMoves(w io.Writer, moves []entity.Move) {
	if len(moves) == 0 {
		fmt.Fprintln(w, "no legal moves")
		return
	}
	for _, move := range moves {
		fmt.Fprintf(w, "  %-7s %s\n", move.Piece.Type, move)
	}
}

func renderHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  <from> <to>   move a piece, e.g. "A3 A4" or "A3-A4"
  <to>          move the only piece that can move
  moves         list legal moves
  board         show the board
  help          show this help
  quit          leave the game
`)
}
