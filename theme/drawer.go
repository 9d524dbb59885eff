package theme

import (
	"context"
	"image"
	rtrace "runtime/trace"
	"time"

	ourclip "honnef.co/go/drawer/clip"
	"honnef.co/go/drawer/container"
	"honnef.co/go/drawer/drawer"
	"honnef.co/go/drawer/f32color"
	"honnef.co/go/drawer/gesture"
	"honnef.co/go/drawer/snap"
	"honnef.co/go/drawer/swipe"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

const openDuration = 250 * time.Millisecond

// Drawer is a panel that slides in from an edge of its container and can be
// dragged back out. All positions are tracked in closing coordinates: 0 is
// fully open and growing values move the panel towards its edge.
type Drawer struct {
	Engine *drawer.Engine
	Swipe  gesture.Swipe

	// PanelFraction is the panel's extent along the drag axis, as a fraction
	// of the container, when no snap points are configured. With snap points,
	// the panel is as large as the furthest snap point.
	PanelFraction float32

	// OnClosed is called once the panel has been dismissed and finished
	// animating out.
	OnClosed func(dec drawer.ReleaseDecision)
	// OnSnap is called when a drag moved the panel to a different snap point.
	OnSnap func(index int)

	open    bool
	closing bool
	// dismissal is the decision that started the closing animation.
	dismissal drawer.ReleaseDecision

	// startRest is the rest position at the start of the current drag.
	startRest float32
	// drag is the engine's current displacement.
	drag float32
	// ended holds a release decision until the next frame picks it up.
	ended container.Option[drawer.ReleaseDecision]

	settle    Animation[float32]
	panelSize float32
}

func NewDrawer(cfg drawer.Config) *Drawer {
	d := &Drawer{PanelFraction: 0.5}
	d.Engine = drawer.NewEngine(cfg, drawer.Callbacks{
		OnDragStart: d.dragStart,
		OnDragMove:  d.dragMove,
		OnDragEnd:   d.dragEnd,
		OnActiveSnapPointIndexChange: func(index int) {
			if d.OnSnap != nil {
				d.OnSnap(index)
			}
		},
	})
	d.Swipe.Engine = d.Engine
	return d
}

func (d *Drawer) projection() swipe.Projection {
	return swipe.Projection{Direction: d.Engine.Config().Direction}
}

func (d *Drawer) dragStart() {
	d.settle.Cancel()
	d.closing = false
	d.startRest = d.projection().Closing(d.Engine.RestOffset())
	d.drag = 0
}

func (d *Drawer) dragMove(offset f32.Point) {
	d.drag = d.projection().Closing(offset)
}

func (d *Drawer) dragEnd(dec drawer.ReleaseDecision) {
	d.ended = container.Some(dec)
}

// Opened reports whether the drawer is shown, including while it animates out.
func (d *Drawer) Opened() bool { return d.open }

// Open slides the panel in to its active snap point.
func (d *Drawer) Open(gtx layout.Context) {
	if d.open && !d.closing {
		return
	}
	from := d.panelSize
	if d.closing {
		from = d.settle.Value(gtx)
	}
	d.open = true
	d.closing = false
	StartSimpleAnimation(gtx, &d.settle, from, d.projection().Closing(d.Engine.RestOffset()), openDuration, EaseOut(3))
}

// Close slides the panel out without a drag.
func (d *Drawer) Close(gtx layout.Context) {
	if !d.open || d.closing {
		return
	}
	d.Swipe.Abort()
	from := d.position(gtx)
	d.closing = true
	d.dismissal = drawer.ReleaseDecision{ShouldClose: true, DismissDirection: container.Some(d.Engine.Config().Direction)}
	StartSimpleAnimation(gtx, &d.settle, from, d.panelSize, openDuration, EaseOut(3))
}

// position returns the panel's current offset in closing coordinates.
func (d *Drawer) position(gtx layout.Context) float32 {
	switch {
	case d.Engine.Dragging():
		return d.startRest + d.drag
	case !d.settle.Done():
		return d.settle.Value(gtx)
	case d.closing:
		return d.panelSize
	default:
		return d.projection().Closing(d.Engine.RestOffset())
	}
}

func (d *Drawer) release(gtx layout.Context, dec drawer.ReleaseDecision) {
	from := d.startRest + d.drag
	d.drag = 0
	to := d.projection().Closing(d.Engine.RestOffset())
	if dec.ShouldClose {
		d.closing = true
		d.dismissal = dec
		to = d.panelSize
	}
	speed := f32.Pt(dec.VelocityX, dec.VelocityY)
	dur := settleDuration(abs(to-from), max(abs(speed.X), abs(speed.Y)))
	StartSimpleAnimation(gtx, &d.settle, from, to, dur, EaseOut(3))
}

// panelExtent returns the size of the panel along the drag axis.
func (d *Drawer) panelExtent(containerSize float32) float32 {
	cfg := d.Engine.Config()
	if len(cfg.SnapPoints) > 0 {
		resolved := snap.Resolve(cfg.SnapPoints, containerSize)
		if n := len(resolved); n > 0 && resolved[n-1] > 0 {
			return min(resolved[n-1], containerSize)
		}
	}
	return containerSize * d.PanelFraction
}

// anchor returns the panel's rectangle when fully open.
func anchor(dir swipe.Direction, size image.Point, extent int) image.Rectangle {
	switch dir {
	case swipe.Down:
		return image.Rect(0, size.Y-extent, size.X, size.Y)
	case swipe.Up:
		return image.Rect(0, 0, size.X, extent)
	case swipe.Right:
		return image.Rect(size.X-extent, 0, size.X, size.Y)
	case swipe.Left:
		return image.Rect(0, 0, extent, size.Y)
	default:
		panic("unreachable")
	}
}

// grip returns the rectangle of the drag grip, in panel coordinates, placed at
// the panel edge facing away from the edge it closes towards.
func grip(gtx layout.Context, th *Theme, dir swipe.Direction, panel image.Point) image.Rectangle {
	length := gtx.Dp(th.GripLength)
	thick := gtx.Dp(th.GripThickness)
	inset := gtx.Dp(th.GripInset)
	switch dir {
	case swipe.Down:
		x := (panel.X - length) / 2
		return image.Rect(x, inset, x+length, inset+thick)
	case swipe.Up:
		x := (panel.X - length) / 2
		return image.Rect(x, panel.Y-inset-thick, x+length, panel.Y-inset)
	case swipe.Right:
		y := (panel.Y - length) / 2
		return image.Rect(inset, y, inset+thick, y+length)
	case swipe.Left:
		y := (panel.Y - length) / 2
		return image.Rect(panel.X-inset-thick, y, panel.X-inset, y+length)
	default:
		panic("unreachable")
	}
}

func (d *Drawer) Layout(gtx layout.Context, th *Theme, content layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.Drawer.Layout").End()

	size := gtx.Constraints.Max
	dir := d.Engine.Config().Direction
	pr := swipe.Projection{Direction: dir}

	containerSize := float32(size.X)
	if dir.Vertical() {
		containerSize = float32(size.Y)
	}
	d.panelSize = d.panelExtent(containerSize)
	d.Engine.SetLayout(containerSize, d.panelSize)

	d.Swipe.Update(gtx)
	if dec, ok := d.ended.Get(); ok {
		d.ended = container.None[drawer.ReleaseDecision]()
		d.release(gtx, dec)
	}

	if !d.open {
		return layout.Dimensions{Size: size}
	}

	pos := d.position(gtx)
	if d.closing && d.settle.Done() {
		d.open = false
		d.closing = false
		if d.OnClosed != nil {
			d.OnClosed(d.dismissal)
		}
		return layout.Dimensions{Size: size}
	}

	// The scrim fades with the visible part of the panel.
	visible := float32(1)
	if d.panelSize > 0 {
		visible = 1 - min(max(pos/d.panelSize, 0), 1)
	}
	paint.FillShape(gtx.Ops, f32color.MulAlpha(th.Palette.Scrim, visible), clip.Rect{Max: size}.Op())

	extent := int(d.panelSize + 0.5)
	if dir.Vertical() {
		extent = min(extent, size.Y)
	} else {
		extent = min(extent, size.X)
	}
	frect := ourclip.FRectOf(anchor(dir, size, extent)).Add(pr.Point(pos))
	rect := anchor(dir, size, extent).Add(pr.Point(pos).Round())
	paint.FillShape(gtx.Ops, th.Palette.Panel, frect.Op(gtx.Ops))
	border := ourclip.Outline{Rect: frect, Width: float32(gtx.Dp(th.BorderWidth))}
	paint.FillShape(gtx.Ops, th.Palette.Border, border.Op(gtx.Ops))

	// The handler is registered in container coordinates so that pointer
	// positions don't move with the panel. Content is nested inside its area
	// so that both receive presses on the panel.
	defer clip.Rect(rect).Push(gtx.Ops).Pop()
	d.Swipe.PanelOrigin = layout.FPt(rect.Min)
	d.Swipe.Add(gtx.Ops)

	defer op.Offset(rect.Min).Push(gtx.Ops).Pop()
	panel := rect.Size()
	paint.FillShape(gtx.Ops, th.Palette.Grip, clip.UniformRRect(grip(gtx, th, dir, panel), gtx.Dp(th.GripThickness)/2).Op(gtx.Ops))

	cgtx := gtx
	cgtx.Constraints = layout.Exact(panel)
	content(cgtx)

	return layout.Dimensions{Size: size}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
