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

// Package testcases lists named gear icon configurations.
package testcases

import (
	"math"

	"seehuhn.de/go/gearicon"
)

// Case is a single icon configuration.
type Case struct {
	Name   string        // lowercase a-z and _ only
	Size   int           // canvas side length in pixels
	Gear   gearicon.Gear // the shape to draw
	Smooth bool          // anti-aliased rendering
}

// Render returns the RGBA pixel buffer for the case.
func (c Case) Render() []byte {
	if c.Smooth {
		return c.Gear.RasterizeSmooth(c.Size)
	}
	return c.Gear.Rasterize(c.Size)
}

// All contains all cases, grouped by category.  The category name is
// used as a prefix in output file names.
var All = map[string][]Case{
	"icon":     iconCases,
	"geometry": geometryCases,
}

// Lookup returns the case with the given "<category>_<name>" label.
func Lookup(label string) (Case, bool) {
	for category, cases := range All {
		for _, c := range cases {
			if category+"_"+c.Name == label {
				return c, true
			}
		}
	}
	return Case{}, false
}

var iconCases = []Case{
	{
		Name: "settings",
		Size: gearicon.SettingsSize,
		Gear: gearicon.Settings,
	},
	{
		Name:   "settings_smooth",
		Size:   gearicon.SettingsSize,
		Gear:   gearicon.Settings,
		Smooth: true,
	},
	{
		Name: "settings_large",
		Size: 192,
		Gear: scaled(gearicon.Settings, 4),
	},
}

var geometryCases = []Case{
	{
		Name: "solid_hub",
		Size: 64,
		Gear: gearicon.Gear{
			Outer:     30,
			Inner:     22,
			Hub:       0,
			Teeth:     6,
			HalfAngle: math.Pi / 6 * 0.5,
		},
	},
	{
		Name: "many_teeth",
		Size: 64,
		Gear: gearicon.Gear{
			Outer:     30,
			Inner:     26,
			Hub:       12,
			Teeth:     24,
			HalfAngle: math.Pi / 24 * 0.5,
		},
		Smooth: true,
	},
	{
		Name: "single_tooth",
		Size: 32,
		Gear: gearicon.Gear{
			Outer:     15,
			Inner:     9,
			Hub:       3,
			Teeth:     1,
			HalfAngle: 0.4,
		},
	},
}

// scaled returns g with all radii multiplied by f.
func scaled(g gearicon.Gear, f float64) gearicon.Gear {
	g.Outer *= f
	g.Inner *= f
	g.Hub *= f
	return g
}
