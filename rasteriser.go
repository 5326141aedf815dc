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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	a, b vec.Vec2 // end points, in path order
}

// Rasteriser fills vector paths and reports, for every pixel, the
// fraction of its area covered by the path.  Coverage ranges from 0
// (outside) to 1 (inside).
//
// A Rasteriser keeps its buffers between calls.  It is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it.  Must be positive.
	Flatness float64

	edges []edge

	// bounding box of all edges, device space
	bbox  rect.Rect
	empty bool

	// per-pixel accumulation buffers, (xMax-xMin)*(yMax-yMin) entries
	cover []float32 // signed vertical extent of edges in each pixel column
	area  []float32 // cover weighted by the part of the pixel right of the edge
}

// NewRasteriser returns a Rasteriser with identity CTM and the default
// flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default parameters and installs a new clip
// rectangle.  Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
}

// FillNonZero fills p using the nonzero winding rule.  The emit function
// is called once per row with non-zero coverage, in increasing order of y.
// The coverage slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.  The emit function is
// called as for [Rasteriser.FillNonZero].
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, evenOdd, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	r.collectEdges(p)
	if r.empty {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	n := width * height
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)

	for _, e := range r.edges {
		r.accumulate(e, xMin, xMax, yMin, yMax)
	}

	for row := range height {
		cover := r.cover[row*width : (row+1)*width]
		area := r.area[row*width : (row+1)*width]
		integrate(cover, area, rule)
		lo, hi := nonZeroRange(cover)
		if lo < hi {
			emit(yMin+row, xMin+lo, cover[lo:hi])
		}
	}
}

// collectEdges flattens p into r.edges, in device coordinates.
func (r *Rasteriser) collectEdges(p *path.Data) {
	r.edges = r.edges[:0]
	r.empty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = r.toDevice(p.Coords[k])
			start = current
			k++
		case path.CmdLineTo:
			next := r.toDevice(p.Coords[k])
			r.addEdge(current, next)
			current = next
			k++
		case path.CmdQuadTo:
			c := r.toDevice(p.Coords[k])
			next := r.toDevice(p.Coords[k+1])
			r.flattenQuad(current, c, next)
			current = next
			k += 2
		case path.CmdCubeTo:
			c1 := r.toDevice(p.Coords[k])
			c2 := r.toDevice(p.Coords[k+1])
			next := r.toDevice(p.Coords[k+2])
			r.flattenCube(current, c1, c2, next)
			current = next
			k += 3
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
}

func (r *Rasteriser) toDevice(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// addEdge records the segment from a to b.  Horizontal segments carry no
// coverage and are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	if math.Abs(b.Y-a.Y) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{a: a, b: b})

	box := rect.Rect{
		LLx: min(a.X, b.X), LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X), URy: max(a.Y, b.Y),
	}
	if r.empty {
		r.bbox = box
		r.empty = false
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, box.LLx)
	r.bbox.LLy = min(r.bbox.LLy, box.LLy)
	r.bbox.URx = max(r.bbox.URx, box.URx)
	r.bbox.URy = max(r.bbox.URy, box.URy)
}

// flattenQuad replaces a quadratic Bézier curve by line segments.
// All points are in device space.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2) {
	dd := p0.Sub(p1.Mul(2)).Add(p2)
	n := 1
	if dev := dd.Length() / 4; dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, next)
		prev = next
	}
}

// flattenCube replaces a cubic Bézier curve by line segments, using
// Wang's bound for the number of segments.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(0.75*m/r.Flatness))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, next)
		prev = next
	}
}

// accumulate adds the contribution of e to the cover and area buffers.
//
// Every piece of the edge inside a pixel (x, y) adds its signed height h
// to cover[x] and h·(1-f) to area[x], where f is the mean horizontal
// position of the piece inside the pixel.  Downward edges count
// positive.  Pieces left of the buffer are attributed to its first
// column in full; pieces right of the buffer are dropped.
func (r *Rasteriser) accumulate(e edge, xMin, xMax, yMin, yMax int) {
	top, bot := e.a, e.b
	sign := float32(1)
	if top.Y > bot.Y {
		top, bot = bot, top
		sign = -1
	}
	dxdy := (bot.X - top.X) / (bot.Y - top.Y)
	width := xMax - xMin

	rowFirst := max(int(math.Floor(top.Y)), yMin)
	rowLast := min(int(math.Ceil(bot.Y)), yMax)
	for y := rowFirst; y < rowLast; y++ {
		y0 := max(top.Y, float64(y))
		y1 := min(bot.Y, float64(y+1))
		if y1 <= y0 {
			continue
		}
		x0 := top.X + dxdy*(y0-top.Y)
		x1 := top.X + dxdy*(y1-top.Y)
		offs := (y - yMin) * width
		r.accumulateRow(x0, x1, y1-y0, sign, r.cover[offs:offs+width], r.area[offs:offs+width], xMin)
	}
}

// accumulateRow distributes one scanline piece of an edge, running from
// x0 to x1 with vertical extent h, over the pixel columns it crosses.
func (r *Rasteriser) accumulateRow(x0, x1, h float64, sign float32, cover, area []float32, xMin int) {
	left, right := min(x0, x1), max(x0, x1)
	first := int(math.Floor(left))
	last := int(math.Floor(right))

	add := func(col int, h, mid float64) {
		c := sign * float32(h)
		idx := col - xMin
		switch {
		case idx < 0:
			cover[0] += c
			area[0] += c
		case idx < len(cover):
			cover[idx] += c
			area[idx] += c * float32(1-(mid-float64(col)))
		}
	}

	if first == last || right-left < 1e-12 {
		add(first, h, (left+right)/2)
		return
	}
	span := right - left
	for col := first; col <= last; col++ {
		l := max(left, float64(col))
		rr := min(right, float64(col+1))
		if rr <= l {
			continue
		}
		add(col, h*(rr-l)/span, (l+rr)/2)
	}
}

// integrate turns the accumulated cover and area values of one row into
// coverage, in place.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == evenOdd {
			raw -= 2 * float32(math.Floor(float64(raw/2)))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// nonZeroRange returns the half-open index range of cov outside of which
// all entries are zero.  lo == hi if the whole slice is zero.
func nonZeroRange(cov []float32) (lo, hi int) {
	hi = len(cov)
	for lo < hi && cov[lo] == 0 {
		lo++
	}
	for hi > lo && cov[hi-1] == 0 {
		hi--
	}
	return lo, hi
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges are dropped.
	horizontalEdgeThreshold = 1e-10
)
