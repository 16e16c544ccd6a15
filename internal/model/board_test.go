package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardBoardDimensions(t *testing.T) {
	b := NewStandardBoard()
	assert.Equal(t, 31, b.Rows)
	assert.Equal(t, 15, b.Cols)
	assert.Equal(t, 15, b.LetterRows())
	assert.Equal(t, Coord{Row: 15, Col: 7}, b.Center())
	assert.True(t, b.IsEmpty())
}

func TestClusterOrdering(t *testing.T) {
	tests := []struct {
		name  string
		above string
		below string
		want  string
	}{
		{name: "bare letter", want: "ก"},
		{name: "vowel above", above: "ิ", want: "กิ"},
		{name: "vowel below", below: "ุ", want: "กุ"},
		{name: "tone above and vowel below", above: "่", below: "ุ", want: "กุ่"},
		{name: "vowel above and tone below", above: "ี", below: "้", want: "กี้"},
		{name: "leading vowel is prepended", above: "เ", want: "เก"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewStandardBoard()
			require.NoError(t, b.Set(Coord{Row: 3, Col: 2}, Cell{Glyph: "ก"}))
			if tt.above != "" {
				require.NoError(t, b.Set(Coord{Row: 2, Col: 2}, Cell{Glyph: tt.above}))
			}
			if tt.below != "" {
				require.NoError(t, b.Set(Coord{Row: 4, Col: 2}, Cell{Glyph: tt.below}))
			}
			assert.Equal(t, tt.want, b.Cluster(3, 2))
		})
	}
}

func TestClusterOnDiacriticRowIsEmpty(t *testing.T) {
	b := NewStandardBoard()
	require.NoError(t, b.Set(Coord{Row: 2, Col: 2}, Cell{Glyph: "่"}))
	assert.Equal(t, "", b.Cluster(2, 2))
	assert.Equal(t, "", b.Cluster(3, 2))
}

func TestSetOutOfBounds(t *testing.T) {
	b := NewStandardBoard()
	assert.ErrorIs(t, b.Set(Coord{Row: 31, Col: 0}, Cell{Glyph: "ก"}), ErrInvalidPosition)
	assert.False(t, b.Occupied(Coord{Row: -1, Col: 0}))
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewStandardBoard()
	require.NoError(t, b.Set(Coord{Row: 15, Col: 7}, Cell{Glyph: "ก"}))

	c := b.Clone()
	c.Clear(Coord{Row: 15, Col: 7})

	assert.True(t, b.Occupied(Coord{Row: 15, Col: 7}))
	assert.False(t, c.Occupied(Coord{Row: 15, Col: 7}))
}

func TestCoordSetSorted(t *testing.T) {
	s := NewCoordSet(Coord{Row: 3, Col: 1}, Coord{Row: 1, Col: 4}, Coord{Row: 1, Col: 2})
	assert.Equal(t, []Coord{{Row: 1, Col: 2}, {Row: 1, Col: 4}, {Row: 3, Col: 1}}, s.Sorted())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Board)
		wantErr error
	}{
		{name: "empty board", mutate: func(b *Board) {}},
		{name: "letter with marks", mutate: func(b *Board) {
			b.Cells[15][7] = Cell{Glyph: "ก"}
			b.Cells[14][7] = Cell{Glyph: "ิ"}
			b.Cells[16][7] = Cell{Glyph: "่"}
		}},
		{name: "short row", mutate: func(b *Board) {
			b.Cells[15] = b.Cells[15][:3]
		}, wantErr: ErrInvalidPosition},
		{name: "missing row", mutate: func(b *Board) {
			b.Cells = b.Cells[:30]
		}, wantErr: ErrInvalidPosition},
		{name: "even row count", mutate: func(b *Board) {
			b.Rows = 30
			b.Cells = b.Cells[:30]
		}, wantErr: ErrInvalidPosition},
		{name: "unknown letter", mutate: func(b *Board) {
			b.Cells[15][7] = Cell{Glyph: "x"}
		}, wantErr: ErrInvalidGlyph},
		{name: "mark on letter row", mutate: func(b *Board) {
			b.Cells[15][7] = Cell{Glyph: "ิ"}
		}, wantErr: ErrInvalidGlyph},
		{name: "letter on diacritic row", mutate: func(b *Board) {
			b.Cells[15][7] = Cell{Glyph: "ก"}
			b.Cells[14][7] = Cell{Glyph: "ก"}
		}, wantErr: ErrInvalidGlyph},
		{name: "orphan mark", mutate: func(b *Board) {
			b.Cells[14][7] = Cell{Glyph: "ิ"}
		}, wantErr: ErrNoLetterBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewStandardBoard()
			tt.mutate(b)
			err := b.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
