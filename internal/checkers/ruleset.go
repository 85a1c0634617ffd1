package checkers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/checkers/internal/entity"
)

const (
	ClassicName  = "classic"
	ExtendedName = "extended"
)

var ErrUnknownRuleset = errors.New("unknown ruleset")

// MoveGenerator produces the candidate moves of one piece without mutating the board.
type MoveGenerator func(board *Board, piece *entity.Piece) []entity.Move

// Placement is one entry of an initial layout.
type Placement struct {
	Notation string
	Side     entity.Side
	Type     entity.PieceType
}

// Ruleset selects which variant of the engine a game plays.
type Ruleset struct {
	Name string

	// ForcedCapture restricts move lists to captures whenever one exists and
	// keeps a capturing piece on the move while it can capture again.
	ForcedCapture bool

	// Promotion lets a piece reaching its far rank move backwards.
	Promotion bool

	// KingImmunityTurns rejects captures of a King while the turn counter is
	// at most this value. Zero disables the rule.
	KingImmunityTurns int

	Layout     []Placement
	Generators map[entity.PieceType]MoveGenerator
}

// Classic - diagonal checkers with jump captures, forced capture and promotion.
func Classic() Ruleset {
	layout := make([]Placement, 0, 24)
	for _, notation := range []string{"A3", "A1", "B2", "C3", "C1", "D2", "E3", "E1", "F2", "G3", "G1", "H2"} {
		layout = append(layout, Placement{Notation: notation, Side: entity.SideBlack, Type: entity.Checker})
	}
	for _, notation := range []string{"A7", "B8", "B6", "C7", "D8", "D6", "E7", "F8", "F6", "G7", "H8", "H6"} {
		layout = append(layout, Placement{Notation: notation, Side: entity.SideWhite, Type: entity.Checker})
	}

	return Ruleset{
		Name:          ClassicName,
		ForcedCapture: true,
		Promotion:     true,
		Layout:        layout,
		Generators: map[entity.PieceType]MoveGenerator{
			entity.Checker: checkerMoves,
		},
	}
}

// Extended - five piece types with their own movement, King protected for the first five turns.
func Extended() Ruleset {
	black := []Placement{
		{"A3", entity.SideBlack, entity.Soldier},
		{"C3", entity.SideBlack, entity.Soldier},
		{"E3", entity.SideBlack, entity.Soldier},
		{"G3", entity.SideBlack, entity.Soldier},
		{"B2", entity.SideBlack, entity.Horse},
		{"F2", entity.SideBlack, entity.Cannon},
		{"H2", entity.SideBlack, entity.Horse},
		{"A1", entity.SideBlack, entity.Dragon},
		{"C1", entity.SideBlack, entity.Cannon},
		{"E1", entity.SideBlack, entity.King},
		{"G1", entity.SideBlack, entity.Dragon},
	}

	// White mirrors Black through the centre of the board.
	layout := make([]Placement, 0, 2*len(black))
	layout = append(layout, black...)
	for _, p := range black {
		pos := entity.MustParsePosition(p.Notation)
		mirrored, _ := entity.EncodePosition(entity.BoardSize-1-pos.X, entity.BoardSize-1-pos.Y)
		layout = append(layout, Placement{Notation: mirrored, Side: entity.SideWhite, Type: p.Type})
	}

	return Ruleset{
		Name:              ExtendedName,
		KingImmunityTurns: 5,
		Layout:            layout,
		Generators: map[entity.PieceType]MoveGenerator{
			entity.Soldier: soldierMoves,
			entity.Cannon:  cannonMoves,
			entity.Horse:   horseMoves,
			entity.Dragon:  dragonMoves,
			entity.King:    kingMoves,
		},
	}
}

// RulesetByName - resolves a configured ruleset name.
func RulesetByName(name string) (Ruleset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ClassicName:
		return Classic(), nil
	case ExtendedName:
		return Extended(), nil
	default:
		return Ruleset{}, fmt.Errorf("%w: %q", ErrUnknownRuleset, name)
	}
}

// StartingCount - number of pieces the layout gives a side.
func (that Ruleset) StartingCount(side entity.Side) int {
	count := 0
	for _, p := range that.Layout {
		if p.Side == side {
			count++
		}
	}
	return count
}

// PieceTypes - the piece types the ruleset knows, in display order.
func (that Ruleset) PieceTypes() []entity.PieceType {
	types := make([]entity.PieceType, 0, len(that.Generators))
	for _, t := range append([]entity.PieceType{entity.Checker}, entity.ExtendedTypes...) {
		if _, ok := that.Generators[t]; ok {
			types = append(types, t)
		}
	}
	return types
}
