// Package layout provides layouts that Gio's own layout package lacks.
package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/outlay"
)

// Table lays out cells in a grid whose columns are as wide as their widest
// cell. All rows are as tall as the tallest cell, which is what outlay.Grid
// supports.
type Table struct {
	Grid          outlay.Grid
	RowPadding    int
	ColumnPadding int
}

// measure returns the widths of all columns and the height of the rows.
// Cells are laid out once into a discarded macro to find their size.
func measure(gtx layout.Context, rows, cols int, cell outlay.Cell) ([]int, int) {
	gtx.Constraints.Min = image.Point{}
	colWidths := make([]int, cols)
	var rowHeight int
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			m := op.Record(gtx.Ops)
			dims := cell(gtx, row, col)
			m.Stop()
			colWidths[col] = max(colWidths[col], dims.Size.X)
			rowHeight = max(rowHeight, dims.Size.Y)
		}
	}
	return colWidths, rowHeight
}

func (t Table) Layout(gtx layout.Context, rows, cols int, cell outlay.Cell) layout.Dimensions {
	if rows == 0 || cols == 0 {
		return layout.Dimensions{}
	}
	colWidths, rowHeight := measure(gtx, rows, cols, cell)

	dimmer := func(axis layout.Axis, index, constraint int) int {
		switch axis {
		case layout.Vertical:
			return rowHeight + t.RowPadding
		case layout.Horizontal:
			return colWidths[index] + t.ColumnPadding
		default:
			panic("unreachable")
		}
	}

	// outlay.Grid fills the Max constraint
	height := rows*(rowHeight+t.RowPadding) - t.RowPadding
	var width int
	for _, cw := range colWidths {
		width += cw + t.ColumnPadding
	}
	gtx.Constraints.Max = gtx.Constraints.Constrain(image.Pt(width, height))
	wrapper := func(gtx layout.Context, row, col int) layout.Dimensions {
		ogtx := gtx
		gtx.Constraints.Min.X = max(gtx.Constraints.Min.X-t.ColumnPadding, 0)
		gtx.Constraints.Max.X = max(gtx.Constraints.Max.X-t.ColumnPadding, 0)
		dims := cell(gtx, row, col)
		dims.Size = ogtx.Constraints.Constrain(dims.Size)
		return dims
	}
	return t.Grid.Layout(gtx, rows, cols, dimmer, wrapper)
}
