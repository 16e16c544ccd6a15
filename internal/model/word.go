package model

// Axis is the direction of a run
type Axis string

const (
	AxisHorizontal Axis = "h"
	AxisVertical   Axis = "v"
)

// RunKey identifies a run by its axis and start cell
type RunKey struct {
	Axis Axis
	Row  int
	Col  int
}

// Less orders keys by axis, then row, then column
func (k RunKey) Less(other RunKey) bool {
	if k.Axis != other.Axis {
		return k.Axis < other.Axis
	}
	if k.Row != other.Row {
		return k.Row < other.Row
	}
	return k.Col < other.Col
}

// Word is a contiguous run of at least two letter cells found on the board
type Word struct {
	Key     RunKey
	Text    string
	Letters []Coord  // letter cells in reading order
	Coords  CoordSet // letter cells plus their occupied diacritic neighbours
}
