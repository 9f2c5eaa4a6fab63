package model

import "fmt"

// Direction is one of the eight compass directions a word can run in
type Direction int

const (
	East Direction = iota
	Southeast
	South
	Southwest
	West
	Northwest
	North
	Northeast
)

// Directions lists every direction in draw order
var Directions = [...]Direction{East, Southeast, South, Southwest, West, Northwest, North, Northeast}

var directionNames = [...]string{"east", "southeast", "south", "southwest", "west", "northwest", "north", "northeast"}

// Axis names used in dimension errors
const (
	AxisWidth  = "width"
	AxisHeight = "height"
)

// Range is an inclusive range of starting coordinates
type Range struct {
	Min int
	Max int
}

// Len returns the number of values in the range
func (r Range) Len() int {
	return r.Max - r.Min + 1
}

// Contains reports whether v lies in the range
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// IsValid returns true for the eight defined directions
func (d Direction) IsValid() bool {
	return d >= East && d <= Northeast
}

// Step returns the unit step of the direction as (dx, dy).
// dx moves along columns, dy along rows; rows grow downwards.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case Southeast:
		return 1, 1
	case South:
		return 0, 1
	case Southwest:
		return -1, 1
	case West:
		return -1, 0
	case Northwest:
		return -1, -1
	case North:
		return 0, -1
	case Northeast:
		return 1, -1
	}
	return 0, 0
}

// Advance returns the position n steps from pos in this direction
func (d Direction) Advance(pos Position, n int) Position {
	dx, dy := d.Step()
	return Position{Row: pos.Row + n*dy, Col: pos.Col + n*dx}
}

// StartRange returns the legal starting columns and rows for a word of the
// given length in a width x height grid.
//
// The length is checked against both axes before any range is computed, so a
// word that cannot fit never yields an inverted or out-of-bounds range.
func (d Direction) StartRange(length, width, height int) (cols Range, rows Range, err error) {
	if err := CheckLength(length, width, height); err != nil {
		return Range{}, Range{}, err
	}
	dx, dy := d.Step()
	return axisRange(dx, length, width), axisRange(dy, length, height), nil
}

// CheckLength returns an *InvalidDimensionError unless a run of length fits
// along both axes of a width x height grid
func CheckLength(length, width, height int) error {
	switch {
	case length < 1, length > width:
		return &InvalidDimensionError{Length: length, Axis: AxisWidth, Size: width}
	case length > height:
		return &InvalidDimensionError{Length: length, Axis: AxisHeight, Size: height}
	}
	return nil
}

func axisRange(step, length, size int) Range {
	if step < 0 {
		return Range{Min: length - 1, Max: size - 1}
	}
	return Range{Min: 0, Max: size - length}
}

// String returns the lowercase compass name
func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText decodes a direction name
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection looks up a direction by its lowercase name
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}
