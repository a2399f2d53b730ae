package entity

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Player is one of the two identities in a match session. The marker and the
// move list change between rounds; the name and session score carry over.
type Player struct {
	Name   string
	Marker Marker
	Moves  []int
	Score  int
}

func NewPlayer(name string, marker Marker) *Player {
	return &Player{
		Name:   NormalizeName(name),
		Marker: marker,
	}
}

// NormalizeName - trims and title-cases a raw name. Names are the score
// table's key, so two sessions typing "alice" and "Alice" land on one row.
func NormalizeName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}

// AddMove - appends the cell and keeps the move list sorted ascending.
// Duplicate cells never reach here because Board refuses occupied cells.
func (that *Player) AddMove(cell int) {
	that.Moves = append(that.Moves, cell)
	sort.Ints(that.Moves)
}

func (that *Player) HasMove(cell int) bool {
	for _, move := range that.Moves {
		if move == cell {
			return true
		}
	}
	return false
}

// ResetMoves - clears the move list when the same identity starts a new round.
func (that *Player) ResetMoves() {
	that.Moves = nil
}

// AddScore - increments the in-memory session score. The persisted score is
// committed separately through the score repository.
func (that *Player) AddScore() {
	that.Score++
}
