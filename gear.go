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

// Package gearicon draws gear-shaped icons into RGBA pixel buffers.
//
// The hard-edged renderer classifies each pixel centre against the gear
// silhouette, see [Gear.Rasterize].  The smooth renderer fills the
// gear outline with exact area coverage, see [Gear.RasterizeSmooth].
// The resulting buffers can be written as PNG files using the
// seehuhn.de/go/gearicon/container package.
package gearicon

//go:generate go run ./cmd/gearpdf -d testdata/pdf

import (
	"errors"
	"fmt"
	"math"
)

// Gear describes a gear silhouette centred on the canvas.
// All radii are in pixels.
type Gear struct {
	// Outer is the radius of the tooth tips.
	Outer float64

	// Inner is the radius of the tooth bases, i.e. of the solid ring.
	Inner float64

	// Hub is the radius of the central hole.  Zero means no hole.
	Hub float64

	// Teeth is the number of teeth.  Tooth i is centred at angle 2πi/Teeth,
	// measured from the positive x-axis towards the positive y-axis
	// (clockwise on screen, since y grows downwards).
	Teeth int

	// HalfAngle is the angular half-width of each tooth in radians.
	HalfAngle float64
}

// Settings is the gear used for the settings icon.
var Settings = Gear{
	Outer:     21,
	Inner:     15,
	Hub:       7,
	Teeth:     8,
	HalfAngle: math.Pi / 8 * 0.55,
}

// SettingsSize is the side length of the settings icon in pixels.
const SettingsSize = 48

// ErrGeometry is returned by [Gear.Validate] for inconsistent parameters.
var ErrGeometry = errors.New("invalid gear geometry")

// Validate checks that Outer > Inner > Hub >= 0 and that adjacent teeth
// do not overlap.
func (g Gear) Validate() error {
	switch {
	case g.Hub < 0:
		return fmt.Errorf("%w: negative hub radius %g", ErrGeometry, g.Hub)
	case g.Inner <= g.Hub:
		return fmt.Errorf("%w: inner radius %g not larger than hub radius %g", ErrGeometry, g.Inner, g.Hub)
	case g.Outer <= g.Inner:
		return fmt.Errorf("%w: outer radius %g not larger than inner radius %g", ErrGeometry, g.Outer, g.Inner)
	case g.Teeth < 1:
		return fmt.Errorf("%w: %d teeth", ErrGeometry, g.Teeth)
	case g.HalfAngle < 0 || g.HalfAngle >= math.Pi/float64(g.Teeth):
		return fmt.Errorf("%w: tooth half-angle %g outside [0, π/%d)", ErrGeometry, g.HalfAngle, g.Teeth)
	}
	return nil
}

// Inside reports whether the centre of pixel (x, y) lies on the gear,
// for a square canvas with the given side length.
func (g Gear) Inside(x, y, size int) bool {
	c := float64(size) / 2
	dx := float64(x) + 0.5 - c
	dy := float64(y) + 0.5 - c
	return g.contains(dx, dy)
}

// contains classifies a point given relative to the gear centre.
func (g Gear) contains(dx, dy float64) bool {
	r := math.Sqrt(dx*dx + dy*dy)
	switch {
	case r <= g.Hub:
		return false
	case r <= g.Inner:
		return true
	case r <= g.Outer:
		return g.onTooth(math.Atan2(dy, dx))
	default:
		return false
	}
}

// onTooth reports whether the angle theta lies within the angular window
// of any tooth.
func (g Gear) onTooth(theta float64) bool {
	for i := range g.Teeth {
		centre := 2 * math.Pi * float64(i) / float64(g.Teeth)
		if math.Abs(wrapAngle(theta-centre)) <= g.HalfAngle {
			return true
		}
	}
	return false
}

// wrapAngle maps a to the interval (-π, π].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Rasterize returns a size×size RGBA buffer in row-major order, four
// bytes per pixel.  Pixels whose centre lies on the gear are opaque white,
// all other pixels are transparent black.
func (g Gear) Rasterize(size int) []byte {
	pix := make([]byte, size*size*4)
	for y := range size {
		row := pix[y*size*4 : (y+1)*size*4]
		for x := range size {
			if g.Inside(x, y, size) {
				copy(row[x*4:x*4+4], opaqueWhite[:])
			}
		}
	}
	return pix
}

var opaqueWhite = [4]byte{255, 255, 255, 255}
