package model

import "strings"

// TileKind distinguishes the tile variants
type TileKind string

const (
	TileNormal   TileKind = "normal"
	TileWildcard TileKind = "wildcard"
	TileDual     TileKind = "dual"
)

// Tile is a rack/bag tile.
// Normal tiles carry Glyph; dual tiles carry exactly two Options; wildcards
// carry neither until placed.
type Tile struct {
	Kind    TileKind
	Glyph   string   `json:",omitempty"`
	Options []string `json:",omitempty"`
}

// NormalTile creates a tile for a single glyph
func NormalTile(glyph string) Tile {
	return Tile{Kind: TileNormal, Glyph: glyph}
}

// WildcardTile creates a blank tile
func WildcardTile() Tile {
	return Tile{Kind: TileWildcard}
}

// DualTile creates a tile offering a choice between two glyphs
func DualTile(a, b string) Tile {
	return Tile{Kind: TileDual, Options: []string{a, b}}
}

// NeedsSelection returns true if the tile must be assigned a glyph when placed
func (t Tile) NeedsSelection() bool {
	return t.Kind == TileWildcard || t.Kind == TileDual
}

// AllowsGlyph reports whether the tile may be placed showing glyph
func (t Tile) AllowsGlyph(glyph string) bool {
	switch t.Kind {
	case TileWildcard:
		return IsSubstituteGlyph(glyph)
	case TileDual:
		for _, o := range t.Options {
			if o == glyph {
				return true
			}
		}
		return false
	default:
		return t.Glyph == glyph
	}
}

// Value returns the tile's rack value, used for end-of-game adjustments
func (t Tile) Value() int {
	switch t.Kind {
	case TileWildcard:
		return 0
	case TileDual:
		best := 0
		for _, o := range t.Options {
			if v := GlyphPoints(o); v > best {
				best = v
			}
		}
		return best
	default:
		return GlyphPoints(t.Glyph)
	}
}

// String renders the tile the way players see it on the rack
func (t Tile) String() string {
	switch t.Kind {
	case TileWildcard:
		return "?"
	case TileDual:
		return strings.Join(t.Options, "/")
	default:
		return t.Glyph
	}
}

// ParseTile is the inverse of Tile.String. Only tiles the bag can deal are
// accepted.
func ParseTile(s string) (Tile, error) {
	var tile Tile
	switch {
	case s == "?":
		return WildcardTile(), nil
	case strings.Contains(s, "/"):
		parts := strings.Split(s, "/")
		if len(parts) != 2 {
			return Tile{}, ErrInvalidGlyph
		}
		tile = DualTile(parts[0], parts[1])
	default:
		tile = NormalTile(s)
	}
	if !IsDealtTile(tile) {
		return Tile{}, ErrInvalidGlyph
	}
	return tile, nil
}

// Rack is an ordered list of tiles held by one side
type Rack []Tile

// RackCapacity is the maximum number of tiles on a rack
const RackCapacity = 9

// Value returns the sum of the tiles' values
func (r Rack) Value() int {
	total := 0
	for _, t := range r {
		total += t.Value()
	}
	return total
}

// Remove returns the rack with the tile at index i removed
func (r Rack) Remove(i int) Rack {
	out := make(Rack, 0, len(r)-1)
	out = append(out, r[:i]...)
	return append(out, r[i+1:]...)
}

// Insert returns the rack with t inserted at index i (appended if out of range)
func (r Rack) Insert(i int, t Tile) Rack {
	if i < 0 || i > len(r) {
		i = len(r)
	}
	out := make(Rack, 0, len(r)+1)
	out = append(out, r[:i]...)
	out = append(out, t)
	return append(out, r[i:]...)
}

// Strings renders each tile
func (r Rack) Strings() []string {
	out := make([]string, len(r))
	for i, t := range r {
		out[i] = t.String()
	}
	return out
}
