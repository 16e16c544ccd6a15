package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileValues(t *testing.T) {
	assert.Equal(t, 1, NormalTile("ก").Value())
	assert.Equal(t, 0, WildcardTile().Value())
	assert.Equal(t, 8, DualTile("ฌ", "ภ").Value())
}

func TestTileAllowsGlyph(t *testing.T) {
	assert.True(t, WildcardTile().AllowsGlyph("ซ"))
	assert.False(t, WildcardTile().AllowsGlyph("่"))
	assert.True(t, DualTile("ฆ", "ซ").AllowsGlyph("ซ"))
	assert.False(t, DualTile("ฆ", "ซ").AllowsGlyph("ก"))
	assert.True(t, NormalTile("ก").AllowsGlyph("ก"))
	assert.False(t, NormalTile("ก").AllowsGlyph("ข"))
}

func TestParseTileRoundTrip(t *testing.T) {
	for _, tile := range []Tile{NormalTile("ก"), WildcardTile(), DualTile("ฆ", "ซ")} {
		parsed, err := ParseTile(tile.String())
		require.NoError(t, err)
		assert.Equal(t, tile, parsed)
	}

	_, err := ParseTile("x")
	assert.ErrorIs(t, err, ErrInvalidGlyph)
}

func TestParseTileRejectsTilesNeverDealt(t *testing.T) {
	for _, s := range []string{"0", "ฆ", "ฌ", "ซ", "ภ", "ฮ", "ำ", "ซ/ฆ", "ก/ข", "่", ""} {
		_, err := ParseTile(s)
		assert.ErrorIs(t, err, ErrInvalidGlyph, s)
	}

	for _, tc := range InitialDistribution {
		parsed, err := ParseTile(tc.Tile.String())
		require.NoError(t, err)
		assert.Equal(t, tc.Tile, parsed)
	}
}

func TestRackInsertAndRemove(t *testing.T) {
	r := Rack{NormalTile("ก"), NormalTile("ข"), NormalTile("ค")}

	r = r.Remove(1)
	assert.Equal(t, []string{"ก", "ค"}, r.Strings())

	r = r.Insert(1, NormalTile("ข"))
	assert.Equal(t, []string{"ก", "ข", "ค"}, r.Strings())

	r = r.Insert(10, WildcardTile())
	assert.Equal(t, []string{"ก", "ข", "ค", "?"}, r.Strings())
	assert.Equal(t, 6, r.Value())
}

func TestInitialDistribution(t *testing.T) {
	assert.Equal(t, 95, TotalTiles())
}

func TestStandardLayoutStar(t *testing.T) {
	l := StandardLayout()
	assert.Equal(t, Coord{Row: 15, Col: 7}, l.Star())
	assert.Equal(t, PremiumStar, l.At(Coord{Row: 15, Col: 7}))
	assert.Equal(t, PremiumTripleWord, l.At(Coord{Row: 1, Col: 0}))
	assert.Equal(t, PremiumNone, l.At(Coord{Row: 2, Col: 0}), "diacritic rows carry no premium")
	assert.Equal(t, 2, PremiumStar.WordMultiplier())
	assert.Equal(t, 4, PremiumQuadLetter.LetterMultiplier())
}
