package entity

import (
	"errors"
	"fmt"
	"strings"
)

const BoardSize = 8

var (
	ErrInvalidPosition = errors.New("not a valid position")
	ErrInvalidNotation = errors.New("not a valid notation")
)

// Position is a zero-based board coordinate: X is the file (A-H), Y the rank (1-8).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func IsValidPosition(x, y int) bool {
	return 0 <= x && x < BoardSize && 0 <= y && y < BoardSize
}

func (that Position) Valid() bool {
	return IsValidPosition(that.X, that.Y)
}

// Add - returns the position shifted by (dx, dy). The result may be off-board.
func (that Position) Add(dx, dy int) Position {
	return Position{X: that.X + dx, Y: that.Y + dy}
}

// DistanceSquared - squared Euclidean distance between two positions.
func (that Position) DistanceSquared(other Position) int {
	dx, dy := that.X-other.X, that.Y-other.Y
	return dx*dx + dy*dy
}

// String - returns the notation of the position, or "??" when it is off-board.
func (that Position) String() string {
	notation, err := EncodePosition(that.X, that.Y)
	if err != nil {
		return "??"
	}
	return notation
}

// EncodePosition - converts board coordinates into notation such as "A3".
func EncodePosition(x, y int) (string, error) {
	if !IsValidPosition(x, y) {
		return "", fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, x, y)
	}
	return fmt.Sprintf("%c%d", 'A'+x, y+1), nil
}

// ParsePosition - converts notation such as "a3" or " H8 " into board coordinates.
func ParsePosition(notation string) (Position, error) {
	normalized := strings.ToUpper(strings.TrimSpace(notation))
	if len(normalized) != 2 ||
		normalized[0] < 'A' || 'H' < normalized[0] ||
		normalized[1] < '1' || '8' < normalized[1] {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	return Position{X: int(normalized[0] - 'A'), Y: int(normalized[1] - '1')}, nil
}

// MustParsePosition - like ParsePosition but panics on malformed notation.
// Intended for fixed layouts.
func MustParsePosition(notation string) Position {
	pos, err := ParsePosition(notation)
	if err != nil {
		panic(err)
	}
	return pos
}
