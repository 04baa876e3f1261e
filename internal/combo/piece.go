package combo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPiece is returned by ParsePiece for names outside the enumeration.
var ErrUnknownPiece = errors.New("unknown combo piece")

// Piece is an atomic combo condition. The set of pieces is fixed at compile time.
type Piece int

const (
	InfiniteMana Piece = iota
	InfiniteCreatureUntaps
	InfiniteLandUntaps
	CreaturesAreLands
	InfiniteDamage

	pieceCount
)

// AllPieces lists every piece in declaration order.
func AllPieces() []Piece {
	pieces := make([]Piece, 0, pieceCount)
	for p := Piece(0); p < pieceCount; p++ {
		pieces = append(pieces, p)
	}
	return pieces
}

func (p Piece) String() string {
	switch p {
	case InfiniteMana:
		return "InfiniteMana"
	case InfiniteCreatureUntaps:
		return "InfiniteCreatureUntaps"
	case InfiniteLandUntaps:
		return "InfiniteLandUntaps"
	case CreaturesAreLands:
		return "CreaturesAreLands"
	case InfiniteDamage:
		return "InfiniteDamage"
	default:
		return "Unknown"
	}
}

func (p Piece) valid() bool {
	return p >= 0 && p < pieceCount
}

// ParsePiece returns the piece with the given name (case-insensitive).
func ParsePiece(name string) (Piece, error) {
	for _, p := range AllPieces() {
		if strings.EqualFold(p.String(), strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPiece, name)
}

// --- PieceSet ---

// PieceSet is a set of pieces stored as a bit mask. It is a value type:
// copying a PieceSet takes an independent snapshot.
type PieceSet uint64

// NewPieceSet builds a set from the given pieces. Out-of-range values are ignored.
func NewPieceSet(pieces ...Piece) PieceSet {
	var s PieceSet
	for _, p := range pieces {
		s = s.Add(p)
	}
	return s
}

// Has reports whether p is in the set.
func (s PieceSet) Has(p Piece) bool {
	if !p.valid() {
		return false
	}
	return s&(1<<uint(p)) != 0
}

// Add returns s with p added.
func (s PieceSet) Add(p Piece) PieceSet {
	if !p.valid() {
		return s
	}
	return s | 1<<uint(p)
}

// Union returns the pieces present in either set.
func (s PieceSet) Union(other PieceSet) PieceSet {
	return s | other
}

// Without returns the pieces of s that are not in other.
func (s PieceSet) Without(other PieceSet) PieceSet {
	return s &^ other
}

// Contains reports whether every piece of other is also in s.
// The empty set is contained in every set.
func (s PieceSet) Contains(other PieceSet) bool {
	return other&^s == 0
}

// Len returns the number of pieces in the set.
func (s PieceSet) Len() int {
	n := 0
	for _, p := range AllPieces() {
		if s.Has(p) {
			n++
		}
	}
	return n
}

// Empty reports whether the set has no pieces.
func (s PieceSet) Empty() bool {
	return s == 0
}

// Pieces returns the members in ascending order.
func (s PieceSet) Pieces() []Piece {
	var result []Piece
	for _, p := range AllPieces() {
		if s.Has(p) {
			result = append(result, p)
		}
	}
	return result
}

// Names returns the member names in ascending piece order.
func (s PieceSet) Names() []string {
	var names []string
	for _, p := range s.Pieces() {
		names = append(names, p.String())
	}
	return names
}

func (s PieceSet) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}
