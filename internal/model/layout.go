package model

// Premium is the bonus kind of a letter cell
type Premium string

const (
	PremiumNone         Premium = ""
	PremiumDoubleLetter Premium = "2L"
	PremiumTripleLetter Premium = "3L"
	PremiumQuadLetter   Premium = "4L"
	PremiumDoubleWord   Premium = "2W"
	PremiumTripleWord   Premium = "3W"
	PremiumStar         Premium = "STAR"
)

// LetterMultiplier returns the factor applied to a tile on this premium
func (p Premium) LetterMultiplier() int {
	switch p {
	case PremiumDoubleLetter:
		return 2
	case PremiumTripleLetter:
		return 3
	case PremiumQuadLetter:
		return 4
	default:
		return 1
	}
}

// WordMultiplier returns the factor applied to a word covering this premium
func (p Premium) WordMultiplier() int {
	switch p {
	case PremiumDoubleWord, PremiumStar:
		return 2
	case PremiumTripleWord:
		return 3
	default:
		return 1
	}
}

// Layout assigns premiums to letter cells. Cells[i][j] applies to grid row 2i+1.
type Layout struct {
	Cells [][]Premium
}

const (
	__ = PremiumNone
	l2 = PremiumDoubleLetter
	l3 = PremiumTripleLetter
	l4 = PremiumQuadLetter
	w2 = PremiumDoubleWord
	w3 = PremiumTripleWord
	st = PremiumStar
)

var standardLayout = [][]Premium{
	{w3, __, __, l2, __, __, __, w3, __, __, __, l2, __, __, w3},
	{__, w2, __, __, __, l3, __, __, __, l3, __, __, __, w2, __},
	{__, __, w2, __, __, __, l2, __, l2, __, __, __, w2, __, __},
	{l2, __, __, w2, __, __, __, l4, __, __, __, w2, __, __, l2},
	{__, __, __, __, w2, __, __, __, __, __, w2, __, __, __, __},
	{__, l3, __, __, __, l3, __, __, __, l3, __, __, __, l3, __},
	{__, __, l2, __, __, __, l2, __, l2, __, __, __, l2, __, __},
	{w3, __, __, l2, __, __, __, st, __, __, __, l2, __, __, w3},
	{__, __, l2, __, __, __, l2, __, l2, __, __, __, l2, __, __},
	{__, l3, __, __, __, l3, __, __, __, l3, __, __, __, l3, __},
	{__, __, __, __, w2, __, __, __, __, __, w2, __, __, __, __},
	{l2, __, __, w2, __, __, __, l4, __, __, __, w2, __, __, l2},
	{__, __, w2, __, __, __, l2, __, l2, __, __, __, w2, __, __},
	{__, w2, __, __, __, l3, __, __, __, l3, __, __, __, w2, __},
	{w3, __, __, l2, __, __, __, w3, __, __, __, l2, __, __, w3},
}

// StandardLayout returns the 15x15 premium layout
func StandardLayout() *Layout {
	return &Layout{Cells: standardLayout}
}

// EmptyLayout returns a layout with no premiums except the centre star
func EmptyLayout(letterRows, cols int) *Layout {
	cells := make([][]Premium, letterRows)
	for i := range cells {
		cells[i] = make([]Premium, cols)
	}
	cells[letterRows/2][cols/2] = PremiumStar
	return &Layout{Cells: cells}
}

// At returns the premium for a grid coordinate; diacritic rows carry none
func (l *Layout) At(c Coord) Premium {
	if !c.IsLetterRow() {
		return PremiumNone
	}
	i := (c.Row - 1) / 2
	if i < 0 || i >= len(l.Cells) || c.Col < 0 || c.Col >= len(l.Cells[i]) {
		return PremiumNone
	}
	return l.Cells[i][c.Col]
}

// Star returns the grid coordinate of the star cell
func (l *Layout) Star() Coord {
	for i, row := range l.Cells {
		for j, p := range row {
			if p == PremiumStar {
				return Coord{Row: 2*i + 1, Col: j}
			}
		}
	}
	return Coord{Row: 2*(len(l.Cells)/2) + 1, Col: len(l.Cells) / 2}
}
