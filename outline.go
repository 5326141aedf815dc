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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline returns the gear silhouette as a closed path centred at (cx, cy)
// in device coordinates, with y growing downwards.
//
// The outer contour runs in the direction of increasing angle.  If the
// gear has a hub hole, a second contour traces the hole in the opposite
// direction, so that both the nonzero and the even-odd rule leave the
// hole empty.
func (g Gear) Outline(cx, cy float64) *path.Data {
	centre := vec.Vec2{X: cx, Y: cy}
	n := float64(g.Teeth)
	step := 2 * math.Pi / n

	start := -g.HalfAngle
	p := (&path.Data{}).MoveTo(polar(centre, g.Inner, start))
	for i := range g.Teeth {
		tooth := step * float64(i)
		p = p.LineTo(polar(centre, g.Outer, tooth-g.HalfAngle))
		p = arcTo(p, centre, g.Outer, tooth-g.HalfAngle, tooth+g.HalfAngle)
		p = p.LineTo(polar(centre, g.Inner, tooth+g.HalfAngle))
		p = arcTo(p, centre, g.Inner, tooth+g.HalfAngle, tooth+step-g.HalfAngle)
	}
	p = p.Close()

	if g.Hub > 0 {
		p = p.MoveTo(polar(centre, g.Hub, 0))
		p = arcTo(p, centre, g.Hub, 0, -2*math.Pi)
		p = p.Close()
	}
	return p
}

// polar returns the point at distance r and angle a from c.
func polar(c vec.Vec2, r, a float64) vec.Vec2 {
	return vec.Vec2{
		X: c.X + r*math.Cos(a),
		Y: c.Y + r*math.Sin(a),
	}
}

// arcTo appends a circular arc from angle a0 to angle a1 around c.
// The current point must already be at polar(c, r, a0).
// Arcs are split into pieces of at most a quarter turn.
func arcTo(p *path.Data, c vec.Vec2, r, a0, a1 float64) *path.Data {
	sweep := a1 - a0
	if sweep == 0 || r == 0 {
		return p
	}
	pieces := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	delta := sweep / float64(pieces)

	// control point distance for an arc of angle delta
	k := 4.0 / 3.0 * math.Tan(delta/4) * r

	for i := range pieces {
		s := a0 + float64(i)*delta
		e := s + delta
		ps := polar(c, r, s)
		pe := polar(c, r, e)
		c1 := vec.Vec2{X: ps.X - k*math.Sin(s), Y: ps.Y + k*math.Cos(s)}
		c2 := vec.Vec2{X: pe.X + k*math.Sin(e), Y: pe.Y - k*math.Cos(e)}
		p = p.CubeTo(c1, c2, pe)
	}
	return p
}
