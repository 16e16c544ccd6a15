package board

import (
	"sort"
	"strings"

	"github.com/mcoot/kumkom/internal/model"
)

// Scan finds every run of two or more letter cells that passes through a
// touched coordinate. Letter-row coordinates scan their row; every touched
// coordinate scans its column. The result is deduplicated by run start and
// sorted by key, so identical inputs always produce identical output.
func Scan(b *model.Board, touched []model.Coord) []model.Word {
	found := make(map[model.RunKey]model.Word)

	for _, t := range touched {
		if !b.InBounds(t) {
			continue
		}

		if t.IsLetterRow() {
			if w, ok := scanRow(b, t); ok {
				found[w.Key] = w
			}
		}

		if start, ok := verticalStart(b, t); ok {
			if w, ok := scanColumn(b, start); ok {
				found[w.Key] = w
			}
		}
	}

	words := make([]model.Word, 0, len(found))
	for _, w := range found {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		return words[i].Key.Less(words[j].Key)
	})
	return words
}

// verticalStart picks the letter cell a column scan begins from
func verticalStart(b *model.Board, t model.Coord) (model.Coord, bool) {
	if t.IsLetterRow() {
		return t, b.Occupied(t)
	}
	if up := t.Offset(-1, 0); b.Occupied(up) {
		return up, true
	}
	if down := t.Offset(1, 0); b.Occupied(down) {
		return down, true
	}
	return model.Coord{}, false
}

func scanRow(b *model.Board, t model.Coord) (model.Word, bool) {
	start := t
	for b.Occupied(start.Offset(0, -1)) {
		start = start.Offset(0, -1)
	}
	return collect(b, model.AxisHorizontal, start, 0, 1)
}

func scanColumn(b *model.Board, t model.Coord) (model.Word, bool) {
	start := t
	for b.Occupied(start.Offset(-2, 0)) {
		start = start.Offset(-2, 0)
	}
	return collect(b, model.AxisVertical, start, 2, 0)
}

// collect walks from start in steps of (dr, dc) while letter cells are occupied
func collect(b *model.Board, axis model.Axis, start model.Coord, dr, dc int) (model.Word, bool) {
	var sb strings.Builder
	var letters []model.Coord
	coords := make(model.CoordSet)

	for cur := start; b.Occupied(cur); cur = cur.Offset(dr, dc) {
		sb.WriteString(b.Cluster(cur.Row, cur.Col))
		letters = append(letters, cur)
		coords.Add(cur)
		for _, n := range []model.Coord{cur.Offset(-1, 0), cur.Offset(1, 0)} {
			if b.Occupied(n) {
				coords.Add(n)
			}
		}
	}

	if len(letters) < 2 {
		return model.Word{}, false
	}
	return model.Word{
		Key:     model.RunKey{Axis: axis, Row: start.Row, Col: start.Col},
		Text:    sb.String(),
		Letters: letters,
		Coords:  coords,
	}, true
}
