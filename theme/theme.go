package theme

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type Theme struct {
	Material *material.Theme
	Palette  Palette
	TextSize unit.Sp

	GripLength    unit.Dp
	GripThickness unit.Dp
	GripInset     unit.Dp
	BorderWidth   unit.Dp
}

type Palette struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Scrim      color.NRGBA
	Panel      color.NRGBA
	Grip       color.NRGBA
	Border     color.NRGBA
}

var DefaultPalette = Palette{
	Background: rgba(0xFFFFEAFF),
	Foreground: rgba(0x000000FF),
	Scrim:      rgba(0x00000066),
	Panel:      rgba(0xEEFFEEFF),
	Grip:       rgba(0x727272FF),
	Border:     rgba(0x000000FF),
}

func NewTheme(fontCollection []font.FontFace) *Theme {
	mat := material.NewTheme()
	mat.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	mat.Palette.Fg = DefaultPalette.Foreground
	mat.Palette.Bg = DefaultPalette.Background
	return &Theme{
		Material: mat,
		Palette:  DefaultPalette,
		TextSize: 14,

		GripLength:    40,
		GripThickness: 4,
		GripInset:     8,
		BorderWidth:   1,
	}
}

func rgba(c uint32) color.NRGBA {
	// XXX does endianness matter?
	return color.NRGBA{
		A: uint8(c & 0xFF),
		B: uint8(c >> 8 & 0xFF),
		G: uint8(c >> 16 & 0xFF),
		R: uint8(c >> 24 & 0xFF),
	}
}
