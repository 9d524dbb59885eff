// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import "image/color"

// MulAlpha scales the alpha of c by alpha, which is clamped to [0, 1].
func MulAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float32(c.A)*alpha + 0.5)
	return c
}
