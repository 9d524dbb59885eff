// Package swipe describes the edge-relative direction in which a drawer can be
// dragged closed, and projects 2D pointer deltas onto that direction.
package swipe

import (
	"fmt"
	"strings"

	"gioui.org/f32"
)

type Direction uint8

const (
	Down Direction = iota
	Up
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down", "":
		return Down, nil
	case "up":
		return Up, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("invalid swipe direction %q", s)
	}
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool { return d == Down || d == Up }

func (d Direction) Opposite() Direction {
	switch d {
	case Down:
		return Up
	case Up:
		return Down
	case Left:
		return Right
	case Right:
		return Left
	default:
		panic(fmt.Sprintf("unhandled direction %d", d))
	}
}

// sign is +1 for directions that point along increasing coordinates.
func (d Direction) sign() float32 {
	if d == Down || d == Right {
		return 1
	}
	return -1
}

// Closes reports whether a raw axis delta moves the panel toward its closed
// position. Down and right close on positive deltas, up and left on negative
// ones.
func (d Direction) Closes(delta float32) bool {
	return delta*d.sign() > 0
}

// Projection maps 2D deltas onto the axis of a direction. All drawer math is
// done in closing coordinates, where positive values move toward the closed
// position regardless of the configured direction.
type Projection struct {
	Direction Direction
}

// Axis returns the component of p along the active axis.
func (pr Projection) Axis(p f32.Point) float32 {
	if pr.Direction.Vertical() {
		return p.Y
	}
	return p.X
}

// Cross returns the component of p along the inactive axis.
func (pr Projection) Cross(p f32.Point) float32 {
	if pr.Direction.Vertical() {
		return p.X
	}
	return p.Y
}

// Closing converts a delta to closing coordinates.
func (pr Projection) Closing(p f32.Point) float32 {
	return pr.Axis(p) * pr.Direction.sign()
}

// Point is the inverse of Closing. The inactive axis is always zero.
func (pr Projection) Point(closing float32) f32.Point {
	v := closing * pr.Direction.sign()
	if v == 0 {
		// Avoid handing out negative zero.
		v = 0
	}
	if pr.Direction.Vertical() {
		return f32.Pt(0, v)
	}
	return f32.Pt(v, 0)
}

// Dominant classifies a delta. It returns the direction of motion along the
// active axis if that axis dominates, and false if the delta is zero or mostly
// along the other axis.
func (pr Projection) Dominant(p f32.Point) (Direction, bool) {
	a, c := abs(pr.Axis(p)), abs(pr.Cross(p))
	if a == 0 || a <= c {
		return 0, false
	}
	if pr.Closing(p) > 0 {
		return pr.Direction, true
	}
	return pr.Direction.Opposite(), true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
