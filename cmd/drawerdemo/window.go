package main

import (
	"image"
	"log/slog"

	"honnef.co/go/drawer/drawer"
	ourlayout "honnef.co/go/drawer/layout"
	"honnef.co/go/drawer/theme"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const numItems = 100

type demo struct {
	th     *theme.Theme
	drawer *theme.Drawer
	log    *slog.Logger

	open     widget.Clickable
	close    widget.Clickable
	list     widget.List
	prevList layout.Position

	// Regions of the panel's content in window coordinates, as of the last
	// frame. Used to classify presses.
	closeRect image.Rectangle
	listRect  image.Rectangle

	settings [][2]string
	table    ourlayout.Table

	status  string
	printer *message.Printer
	title   cases.Caser
	dismiss int
}

func newDemo(cfg drawer.Config, logger *slog.Logger) *demo {
	d := &demo{
		th:      theme.NewTheme(gofont.Collection()),
		drawer:  theme.NewDrawer(cfg),
		log:     logger,
		printer: message.NewPrinter(language.English),
		title:   cases.Title(language.English),
		status:  "Closed",
	}
	d.list.Axis = layout.Vertical
	d.settings = d.describe(d.drawer.Engine.Config())
	d.drawer.Swipe.HitTest = d.hitTest
	d.drawer.OnClosed = d.closed
	d.drawer.OnSnap = func(index int) {
		d.status = d.printer.Sprintf("Snapped to point %d of %d", index+1, len(cfg.SnapPoints))
		d.log.Info("snap point changed", "index", index)
	}
	return d
}

func (d *demo) closed(dec drawer.ReleaseDecision) {
	d.dismiss++
	dir := "programmatically"
	if v, ok := dec.DismissDirection.Get(); ok {
		dir = d.title.String(v.String())
	}
	speed := f32.Pt(dec.VelocityX, dec.VelocityY)
	d.status = d.printer.Sprintf("Dismissed %s at %.2f px/ms (%d dismissals)", dir, max(abs(speed.X), abs(speed.Y)), d.dismiss)
	d.log.Info("drawer dismissed", "direction", dec.DismissDirection, "vx", dec.VelocityX, "vy", dec.VelocityY)
}

// describe returns the settings shown next to the drawer.
func (d *demo) describe(cfg drawer.Config) [][2]string {
	points := "none"
	if len(cfg.SnapPoints) > 0 {
		points = ""
		for i, p := range cfg.SnapPoints {
			if i > 0 {
				points += ", "
			}
			points += p.String()
		}
	}
	return [][2]string{
		{"Direction", d.title.String(cfg.Direction.String())},
		{"Snap points", points},
		{"Active snap point", d.printer.Sprintf("%d", cfg.ActiveSnapPointIndex)},
		{"Close threshold", d.printer.Sprintf("%v", cfg.CloseThreshold)},
		{"Velocity threshold", d.printer.Sprintf("%.2f px/ms", cfg.VelocityThreshold)},
		{"Scroll lock", cfg.ScrollLockTimeout.String()},
		{"Damping factor", d.printer.Sprintf("%v", cfg.DampingFactor)},
	}
}

// hitTest classifies a press in window coordinates.
func (d *demo) hitTest(pos f32.Point) *drawer.Target {
	p := pos.Round()
	switch {
	case p.In(d.closeRect):
		return &drawer.Target{Interactive: true}
	case p.In(d.listRect):
		if !d.drawer.Engine.Config().Direction.Vertical() {
			return nil
		}
		// The list scrolls along the drag axis. Only its position relative to
		// either end matters.
		t := &drawer.Target{Scrollable: true, ScrollMax: 1}
		pos := d.list.Position
		switch {
		case pos.First == 0 && pos.Offset == 0:
			t.ScrollOffset = 0
		case !pos.BeforeEnd:
			t.ScrollOffset = 1
		default:
			t.ScrollOffset = 0.5
		}
		return t
	default:
		return nil
	}
}

func (d *demo) Layout(gtx layout.Context) layout.Dimensions {
	if d.open.Clicked(gtx) {
		d.drawer.Open(gtx)
		d.status = "Open"
	}
	if d.close.Clicked(gtx) {
		d.drawer.Close(gtx)
	}

	paint.Fill(gtx.Ops, d.th.Palette.Background)
	layout.UniformInset(16).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Button(d.th.Material, &d.open, "Open drawer").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: 8}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Label(d.th.Material, d.th.TextSize, d.status)
				return l.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: 16}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				d.table.ColumnPadding = gtx.Dp(16)
				d.table.RowPadding = gtx.Dp(4)
				return d.table.Layout(gtx, len(d.settings), 2, func(gtx layout.Context, row, col int) layout.Dimensions {
					return material.Body2(d.th.Material, d.settings[row][col]).Layout(gtx)
				})
			}),
		)
	})

	return d.drawer.Layout(gtx, d.th, d.layoutPanel)
}

func (d *demo) layoutPanel(gtx layout.Context) layout.Dimensions {
	origin := d.drawer.Swipe.PanelOrigin.Round()
	size := gtx.Constraints.Max
	inset := gtx.Dp(16)

	bgtx := gtx
	bgtx.Constraints.Min = image.Point{}
	m := op.Record(gtx.Ops)
	dims := material.Button(d.th.Material, &d.close, "Close").Layout(bgtx)
	call := m.Stop()
	pos := image.Pt(size.X-inset-dims.Size.X, inset)
	func() {
		defer op.Offset(pos).Push(gtx.Ops).Pop()
		call.Add(gtx.Ops)
	}()
	d.closeRect = image.Rectangle{Min: pos, Max: pos.Add(dims.Size)}.Add(origin)

	top := min(pos.Y+dims.Size.Y+inset, size.Y)
	listArea := image.Rect(0, top, size.X, size.Y)
	d.listRect = listArea.Add(origin)
	func() {
		defer op.Offset(listArea.Min).Push(gtx.Ops).Pop()
		defer clip.Rect{Max: listArea.Size()}.Push(gtx.Ops).Pop()
		lgtx := gtx
		lgtx.Constraints = layout.Exact(listArea.Size())
		material.List(d.th.Material, &d.list).Layout(lgtx, numItems, func(gtx layout.Context, i int) layout.Dimensions {
			return layout.UniformInset(8).Layout(gtx, material.Body1(d.th.Material, d.printer.Sprintf("Item %d", i+1)).Layout)
		})
	}()

	if d.list.Position != d.prevList {
		d.prevList = d.list.Position
		d.drawer.Swipe.Scrolled(gtx)
	}

	return layout.Dimensions{Size: size}
}

func run(w *app.Window, cfg drawer.Config, logger *slog.Logger) error {
	d := newDemo(cfg, logger)
	var ops op.Ops
	for {
		switch ev := w.Event().(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			d.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
