package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Standard board dimensions: 15 letter rows interleaved with 16 diacritic rows
const (
	StandardLetterRows = 15
	StandardCols       = 15
)

// Coord identifies a cell on the interleaved grid
type Coord struct {
	Row int // 0-indexed; odd rows are letter rows
	Col int // 0-indexed from left
}

// IsLetterRow returns true if the coordinate sits on a letter row
func (c Coord) IsLetterRow() bool {
	return c.Row%2 == 1
}

// Offset returns the coordinate shifted by the given deltas
func (c Coord) Offset(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String renders the coordinate as "row,col"
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// CoordSet is an unordered set of coordinates
type CoordSet map[Coord]struct{}

// NewCoordSet builds a set from the given coordinates
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a coordinate
func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Has reports whether the coordinate is in the set
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Union adds every coordinate of other into s
func (s CoordSet) Union(other CoordSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Sorted returns the coordinates in row-major order
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Cell is a single grid cell. Origin is the rack tile that produced the
// glyph, nil for free diacritics.
type Cell struct {
	Glyph  string
	Origin *Tile `json:",omitempty"`
}

// IsEmpty returns true if nothing occupies the cell
func (c Cell) IsEmpty() bool {
	return c.Glyph == ""
}

// Board is the interleaved letter/diacritic grid
type Board struct {
	Rows  int      // 2*N+1
	Cols  int      // M
	Cells [][]Cell // Row-major: Cells[row][col]
}

// NewBoard creates an empty board with the given number of letter rows
func NewBoard(letterRows, cols int) *Board {
	rows := 2*letterRows + 1
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}
}

// NewStandardBoard creates an empty 15x15 letter board
func NewStandardBoard() *Board {
	return NewBoard(StandardLetterRows, StandardCols)
}

// LetterRows returns N, the number of letter rows
func (b *Board) LetterRows() int {
	return (b.Rows - 1) / 2
}

// InBounds returns true if the coordinate is within the grid
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Get returns the cell at the coordinate, or an empty cell when out of bounds
func (b *Board) Get(c Coord) Cell {
	if !b.InBounds(c) {
		return Cell{}
	}
	return b.Cells[c.Row][c.Col]
}

// Glyph returns the glyph at the coordinate, or "" if empty
func (b *Board) Glyph(c Coord) string {
	return b.Get(c).Glyph
}

// Set writes a cell
func (b *Board) Set(c Coord, cell Cell) error {
	if !b.InBounds(c) {
		return ErrInvalidPosition
	}
	b.Cells[c.Row][c.Col] = cell
	return nil
}

// Clear empties a cell
func (b *Board) Clear(c Coord) {
	if b.InBounds(c) {
		b.Cells[c.Row][c.Col] = Cell{}
	}
}

// Occupied returns true if the coordinate is in bounds and holds a glyph
func (b *Board) Occupied(c Coord) bool {
	return !b.Get(c).IsEmpty()
}

// IsEmpty returns true if no cell on the board is occupied
func (b *Board) IsEmpty() bool {
	for _, row := range b.Cells {
		for _, cell := range row {
			if !cell.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// OccupiedCoords returns every occupied coordinate in row-major order
func (b *Board) OccupiedCoords() []Coord {
	var out []Coord
	for r, row := range b.Cells {
		for c, cell := range row {
			if !cell.IsEmpty() {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Center returns the coordinate of the middle letter cell
func (b *Board) Center() Coord {
	n := b.LetterRows()
	return Coord{Row: 2*(n/2) + 1, Col: b.Cols / 2}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]Cell, len(b.Cells))
	for i, row := range b.Cells {
		cells[i] = make([]Cell, len(row))
		copy(cells[i], row)
	}
	return &Board{
		Rows:  b.Rows,
		Cols:  b.Cols,
		Cells: cells,
	}
}

// Validate checks a board received from outside: the cell grid must match
// Rows and Cols, letter rows may only hold letters, and diacritic rows may
// only hold marks sitting on an occupied letter
func (b *Board) Validate() error {
	if b.Rows <= 0 || b.Rows%2 == 0 || b.Cols <= 0 {
		return fmt.Errorf("%w: board is %dx%d", ErrInvalidPosition, b.Rows, b.Cols)
	}
	if len(b.Cells) != b.Rows {
		return fmt.Errorf("%w: board has %d rows, want %d", ErrInvalidPosition, len(b.Cells), b.Rows)
	}
	for r, row := range b.Cells {
		if len(row) != b.Cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPosition, r, len(row), b.Cols)
		}
	}

	for r, row := range b.Cells {
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			coord := Coord{Row: r, Col: c}
			if coord.IsLetterRow() {
				if !IsSubstituteGlyph(cell.Glyph) {
					return fmt.Errorf("%w: %q at %s", ErrInvalidGlyph, cell.Glyph, coord)
				}
				continue
			}
			if !IsFreeDiacritic(cell.Glyph) && !IsLeadingVowel(cell.Glyph) {
				return fmt.Errorf("%w: %q at %s", ErrInvalidGlyph, cell.Glyph, coord)
			}
			if !b.Occupied(coord.Offset(-1, 0)) && !b.Occupied(coord.Offset(1, 0)) {
				return fmt.Errorf("%w: mark at %s", ErrNoLetterBelow, coord)
			}
		}
	}
	return nil
}

// Reset empties every cell
func (b *Board) Reset() {
	for i := range b.Cells {
		for j := range b.Cells[i] {
			b.Cells[i][j] = Cell{}
		}
	}
}

// Cluster returns the letter at (r, c) combined with its occupied upper and
// lower diacritic glyphs. Only meaningful for letter rows; returns "" for
// diacritic rows and empty letter cells.
func (b *Board) Cluster(r, c int) string {
	if r%2 == 0 {
		return ""
	}
	main := b.Glyph(Coord{Row: r, Col: c})
	if main == "" {
		return ""
	}

	var lead, marks []string
	for _, g := range []string{b.Glyph(Coord{Row: r - 1, Col: c}), b.Glyph(Coord{Row: r + 1, Col: c})} {
		switch {
		case g == "":
		case IsLeadingVowel(g):
			lead = append(lead, g)
		default:
			marks = append(marks, g)
		}
	}
	// vowel marks sit before tone marks in canonical Thai order
	sort.SliceStable(marks, func(i, j int) bool {
		return !IsToneMark(marks[i]) && IsToneMark(marks[j])
	})

	var sb strings.Builder
	for _, g := range lead {
		sb.WriteString(g)
	}
	sb.WriteString(main)
	for _, g := range marks {
		sb.WriteString(g)
	}
	return sb.String()
}
