// Package clip provides clip shapes with fractional coordinates, for panels
// that move by subpixel amounts while dragged.
package clip

import (
	"image"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

type FRect struct {
	Min f32.Point
	Max f32.Point
}

func FRectOf(r image.Rectangle) FRect {
	return FRect{
		Min: f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
		Max: f32.Pt(float32(r.Max.X), float32(r.Max.Y)),
	}
}

func (r FRect) Add(p f32.Point) FRect {
	return FRect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

func (r FRect) Size() f32.Point { return r.Max.Sub(r.Min) }

// Inset shrinks the rectangle by d on all sides. The result is empty, not
// inverted, if d exceeds half the size.
func (r FRect) Inset(d float32) FRect {
	out := FRect{
		Min: f32.Pt(r.Min.X+d, r.Min.Y+d),
		Max: f32.Pt(r.Max.X-d, r.Max.Y-d),
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

func (r FRect) Path(ops *op.Ops) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	r.intoPath(&p, false)
	return p.End()
}

// intoPath adds the rectangle to p, clockwise or, if reverse is set,
// counter-clockwise.
func (r FRect) intoPath(p *clip.Path, reverse bool) {
	p.MoveTo(r.Min)
	if reverse {
		p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
		p.LineTo(r.Max)
		p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	} else {
		p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
		p.LineTo(r.Max)
		p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	}
	p.LineTo(r.Min)
}

func (r FRect) Op(ops *op.Ops) clip.Op {
	return clip.Outline{Path: r.Path(ops)}.Op()
}

// Outline is a frame of the given width along the inside of a rectangle.
type Outline struct {
	Rect  FRect
	Width float32
}

func (out Outline) Op(ops *op.Ops) clip.Op {
	var p clip.Path
	p.Begin(ops)
	out.Rect.intoPath(&p, false)
	out.Rect.Inset(out.Width).intoPath(&p, true)
	p.Close()

	return clip.Outline{Path: p.End()}.Op()
}
