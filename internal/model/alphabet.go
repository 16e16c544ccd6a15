package model

import "slices"

// glyphPoints is the static point table
var glyphPoints = map[string]int{
	"ก": 1, "ข": 3, "ค": 2, "ฆ": 6, "ง": 1, "จ": 2, "ฉ": 6, "ช": 3, "ฌ": 8, "ซ": 6,
	"ด": 1, "ต": 3, "ถ": 4, "ท": 2, "ธ": 5, "น": 1, "บ": 1, "ป": 3, "ผ": 3, "ฝ": 4,
	"พ": 3, "ฟ": 4, "ภ": 7, "ม": 1, "ย": 1, "ร": 1, "ล": 1, "ว": 1, "ส": 3, "ห": 4,
	"อ": 1, "ฮ": 6, "า": 1, "ำ": 2, "เ": 1, "แ": 2, "ไ": 2, "ใ": 2, "โ": 2, "ะ": 1,
}

// TileCount is one line of the bag distribution
type TileCount struct {
	Tile  Tile
	Count int
}

// InitialDistribution is the full starting bag, in a stable order
var InitialDistribution = []TileCount{
	{NormalTile("ก"), 4}, {NormalTile("ข"), 2}, {NormalTile("ค"), 2}, {NormalTile("ง"), 3},
	{NormalTile("จ"), 2}, {NormalTile("ฉ"), 1}, {NormalTile("ช"), 2}, {NormalTile("ด"), 3},
	{NormalTile("ต"), 2}, {NormalTile("ถ"), 1}, {NormalTile("ท"), 2}, {NormalTile("ธ"), 1},
	{NormalTile("น"), 3}, {NormalTile("บ"), 3}, {NormalTile("ป"), 2}, {NormalTile("ผ"), 1},
	{NormalTile("ฝ"), 1}, {NormalTile("พ"), 2}, {NormalTile("ฟ"), 2}, {NormalTile("ม"), 3},
	{NormalTile("ย"), 3}, {NormalTile("ร"), 3}, {NormalTile("ล"), 3}, {NormalTile("ว"), 3},
	{NormalTile("ส"), 3}, {NormalTile("ห"), 2}, {NormalTile("อ"), 3}, {NormalTile("า"), 5},
	{NormalTile("เ"), 5}, {NormalTile("แ"), 4}, {NormalTile("ไ"), 2}, {NormalTile("ใ"), 2},
	{NormalTile("โ"), 3}, {NormalTile("ะ"), 6},
	{WildcardTile(), 4},
	{DualTile("ฆ", "ซ"), 1}, {DualTile("ฌ", "ภ"), 1},
}

// TotalTiles returns the number of tiles in a fresh bag
func TotalTiles() int {
	total := 0
	for _, tc := range InitialDistribution {
		total += tc.Count
	}
	return total
}

// IsDealtTile reports whether t appears in the starting bag
func IsDealtTile(t Tile) bool {
	for _, tc := range InitialDistribution {
		if tc.Tile.Kind == t.Kind && tc.Tile.Glyph == t.Glyph && slices.Equal(tc.Tile.Options, t.Options) {
			return true
		}
	}
	return false
}

// FreeDiacritics are placed on diacritic rows without consuming rack tiles
var FreeDiacritics = []string{"ิ", "ี", "ึ", "ื", "ุ", "ู", "่", "้", "๊", "๋", "็", "์", "ั"}

// SubstituteGlyphs are the glyphs a wildcard may stand for
var SubstituteGlyphs = []string{
	"ก", "ข", "ค", "ฆ", "ง", "จ", "ฉ", "ช", "ซ", "ฌ", "ญ", "ฎ", "ฏ", "ฐ", "ฑ", "ฒ", "ณ",
	"ด", "ต", "ถ", "ท", "ธ", "น", "บ", "ป", "ผ", "ฝ", "พ", "ฟ", "ภ", "ม", "ย", "ร", "ล",
	"ว", "ศ", "ษ", "ส", "ห", "ฬ", "อ", "ฮ", "า", "ำ", "เ", "แ", "ไ", "ใ", "โ", "ะ",
}

var (
	freeDiacriticSet = toSet(FreeDiacritics)
	substituteSet    = toSet(SubstituteGlyphs)
	leadingVowelSet  = toSet([]string{"เ", "แ", "โ", "ใ", "ไ"})
	toneMarkSet      = toSet([]string{"่", "้", "๊", "๋", "์"})
)

func toSet(glyphs []string) map[string]struct{} {
	s := make(map[string]struct{}, len(glyphs))
	for _, g := range glyphs {
		s[g] = struct{}{}
	}
	return s
}

// GlyphPoints returns the base value of a glyph (0 when unknown)
func GlyphPoints(glyph string) int {
	return glyphPoints[glyph]
}

// IsFreeDiacritic reports whether glyph is a free diacritic mark
func IsFreeDiacritic(glyph string) bool {
	_, ok := freeDiacriticSet[glyph]
	return ok
}

// IsSubstituteGlyph reports whether a wildcard may stand for glyph
func IsSubstituteGlyph(glyph string) bool {
	_, ok := substituteSet[glyph]
	return ok
}

// IsLeadingVowel reports whether glyph renders before its consonant
func IsLeadingVowel(glyph string) bool {
	_, ok := leadingVowelSet[glyph]
	return ok
}

// IsToneMark reports whether glyph is a tone mark or silencer
func IsToneMark(glyph string) bool {
	_, ok := toneMarkSet[glyph]
	return ok
}
