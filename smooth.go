// seehuhn.de/go/gearicon - procedural icon generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gearicon

import "seehuhn.de/go/geom/rect"

// smoothFlatness is the curve tolerance used for anti-aliased icons.
// At icon sizes the default tolerance visibly flattens the rim.
const smoothFlatness = 0.01

// RasterizeSmooth returns a size×size RGBA buffer like [Gear.Rasterize],
// but with anti-aliased edges: every pixel is white, with alpha
// proportional to the fraction of the pixel covered by the gear outline.
func (g Gear) RasterizeSmooth(size int) []byte {
	pix := make([]byte, size*size*4)

	s := float64(size)
	r := NewRasteriser(rect.Rect{URx: s, URy: s})
	r.Flatness = smoothFlatness
	r.FillNonZero(g.Outline(s/2, s/2), func(y, xMin int, coverage []float32) {
		row := pix[(y*size+xMin)*4:]
		for i, c := range coverage {
			alpha := toByte(c)
			if alpha == 0 {
				continue
			}
			row[4*i] = 255
			row[4*i+1] = 255
			row[4*i+2] = 255
			row[4*i+3] = alpha
		}
	})
	return pix
}

// toByte converts a coverage value in [0, 1] to 0…255, rounding to nearest.
func toByte(c float32) byte {
	return byte(max(0, min(255, int(c*255+0.5))))
}
