// Package snap resolves drawer snap points into pixel offsets.
//
// A snap point is either an absolute pixel value, a percentage of the
// container's size along the drag axis, or the closed position. Resolved
// points are sorted ascending and re-expressed as offsets from the fully open
// position, the largest snap point.
package snap

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type kind uint8

const (
	kindClosed kind = iota
	kindPx
	kindPercent
	kindInvalid
)

// Point is a single snap point. The zero value is the closed position.
type Point struct {
	kind  kind
	value float32
	// raw is the unparsed text of invalid points, for diagnostics.
	raw string
}

func Px(v float32) Point      { return Point{kind: kindPx, value: v} }
func Percent(v float32) Point { return Point{kind: kindPercent, value: v} }
func Closed() Point           { return Point{} }

var percentRe = regexp.MustCompile(`^(\d+(\.\d+)?)%$`)

// Parse parses the textual form of a snap point. Percentages must match
// NN% or NN.NN%. The strings "", "null" and "closed" denote the closed
// position. Anything else, including plain numbers, yields an invalid point,
// which resolves to 0.
func Parse(s string) Point {
	s = strings.TrimSpace(s)
	switch s {
	case "", "null", "closed":
		return Closed()
	}
	if m := percentRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 32)
		if err == nil {
			return Percent(float32(v))
		}
	}
	return Point{kind: kindInvalid, raw: s}
}

// ParseArg is like Parse but also accepts plain numbers, which are pixels.
// It is meant for command line arguments, where there is no other way of
// writing a pixel value.
func ParseArg(s string) Point {
	if p := Parse(s); p.Valid() {
		return p
	}
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 32); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return Px(float32(v))
	}
	return Point{kind: kindInvalid, raw: s}
}

// ParseAll parses command line arguments with ParseArg.
func ParseAll(ss []string) []Point {
	out := make([]Point, len(ss))
	for i, s := range ss {
		out[i] = ParseArg(s)
	}
	return out
}

func (p Point) Valid() bool { return p.kind != kindInvalid }

func (p Point) String() string {
	switch p.kind {
	case kindClosed:
		return "closed"
	case kindPx:
		return strconv.FormatFloat(float64(p.value), 'f', -1, 32)
	case kindPercent:
		return strconv.FormatFloat(float64(p.value), 'f', -1, 32) + "%"
	case kindInvalid:
		return fmt.Sprintf("invalid(%q)", p.raw)
	default:
		panic(fmt.Sprintf("unhandled kind %d", p.kind))
	}
}

// Resolve returns the point's position in pixels.
func (p Point) Resolve(containerSize float32) float32 {
	switch p.kind {
	case kindPx:
		return p.value
	case kindPercent:
		return containerSize * p.value / 100
	default:
		return 0
	}
}

// Resolve resolves all points and sorts them ascending.
func Resolve(points []Point, containerSize float32) []float32 {
	if len(points) == 0 {
		return nil
	}
	out := make([]float32, len(points))
	for i, p := range points {
		out[i] = p.Resolve(containerSize)
	}
	slices.SortStableFunc(out, func(a, b float32) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Offsets resolves points and expresses each as the distance, in closing
// coordinates, between the fully open position and the point. The result has
// one entry per point, in ascending order of the resolved pixel values, which
// makes the offsets non-increasing.
func Offsets(points []Point, containerSize float32) []float32 {
	resolved := Resolve(points, containerSize)
	if resolved == nil {
		return nil
	}
	var max float32
	for _, v := range resolved {
		if a := abs(v); a > max {
			max = a
		}
	}
	for i, v := range resolved {
		resolved[i] = max - v
	}
	return resolved
}

// Closest returns the index of the offset nearest to v. Ties go to the lower
// index. It returns -1 if offsets is empty.
func Closest(offsets []float32, v float32) int {
	best := -1
	var bestDist float32
	for i, off := range offsets {
		d := abs(off - v)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// ClampIndex clamps i into the valid index range of a list with n elements.
// It returns 0 if n is 0.
func ClampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
