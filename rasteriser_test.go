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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// square returns an axis-parallel square, traversed clockwise on screen
// unless reverse is set.
func square(p *path.Data, x0, y0, x1, y1 float64, reverse bool) *path.Data {
	pts := []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	nested := square(&path.Data{}, 1, 1, 9, 9, false)
	nested = square(nested, 3, 3, 7, 7, false)

	cases := []struct {
		name   string
		fill   func(*Rasteriser, *path.Data, func(int, int, []float32))
		centre float32
	}{
		{"nonzero", (*Rasteriser).FillNonZero, 1},
		{"evenodd", (*Rasteriser).FillEvenOdd, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := make([]float32, 100)
			r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
			tc.fill(r, nested, func(y, xMin int, cov []float32) {
				copy(img[y*10+xMin:], cov)
			})

			for y := range 10 {
				for x := range 10 {
					var want float32
					switch {
					case x >= 3 && x < 7 && y >= 3 && y < 7:
						want = tc.centre
					case x >= 1 && x < 9 && y >= 1 && y < 9:
						want = 1
					}
					if got := img[y*10+x]; math.Abs(float64(got-want)) > 1e-6 {
						t.Errorf("pixel (%d, %d): coverage %g, want %g", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestReverseContourCutsHole(t *testing.T) {
	p := square(&path.Data{}, 1, 1, 9, 9, false)
	p = square(p, 3, 3, 7, 7, true)

	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.FillNonZero(p, func(y, xMin int, cov []float32) {
		for i, c := range cov {
			x := xMin + i
			if x >= 3 && x < 7 && y >= 3 && y < 7 && c > 1e-6 {
				t.Errorf("pixel (%d, %d) in the hole has coverage %g", x, y, c)
			}
		}
	})
}

func TestCTMTranslation(t *testing.T) {
	p := square(&path.Data{}, 0, 0, 2, 2, false)

	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Matrix{1, 0, 0, 1, 5, 3}

	var rows []int
	r.FillNonZero(p, func(y, xMin int, cov []float32) {
		rows = append(rows, y)
		if xMin != 5 || len(cov) != 2 {
			t.Errorf("row %d: coverage starts at %d with %d entries, want 5 and 2", y, xMin, len(cov))
		}
	})
	if len(rows) != 2 || rows[0] != 3 || rows[1] != 4 {
		t.Errorf("rows %v, want [3 4]", rows)
	}

	r.Reset(rect.Rect{URx: 10, URy: 10})
	if r.CTM != matrix.Identity {
		t.Error("Reset did not restore the identity CTM")
	}
}

func TestClipping(t *testing.T) {
	// The square extends beyond the clip rectangle on all sides.
	p := square(&path.Data{}, -5, -5, 15, 15, false)

	r := NewRasteriser(rect.Rect{URx: 4, URy: 3})
	count := 0
	r.FillNonZero(p, func(y, xMin int, cov []float32) {
		if y < 0 || y >= 3 || xMin < 0 || xMin+len(cov) > 4 {
			t.Errorf("row %d, x=%d…%d outside the clip rectangle", y, xMin, xMin+len(cov))
		}
		for _, c := range cov {
			if math.Abs(float64(c-1)) > 1e-6 {
				t.Errorf("row %d: coverage %g, want 1", y, c)
			}
			count++
		}
	})
	if count != 12 {
		t.Errorf("%d pixels covered, want 12", count)
	}
}

// fillVector draws p using golang.org/x/image/vector.
func fillVector(p *path.Data, size int) *image.Alpha {
	z := vector.NewRasterizer(size, size)
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			q := p.Coords[k]
			z.MoveTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdLineTo:
			q := p.Coords[k]
			z.LineTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdQuadTo:
			c, q := p.Coords[k], p.Coords[k+1]
			z.QuadTo(float32(c.X), float32(c.Y), float32(q.X), float32(q.Y))
			k += 2
		case path.CmdCubeTo:
			c1, c2, q := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(q.X), float32(q.Y))
			k += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

func TestAgainstVector(t *testing.T) {
	gears := []Gear{
		Settings,
		{Outer: 30, Inner: 22, Hub: 0, Teeth: 6, HalfAngle: math.Pi / 12},
		{Outer: 30, Inner: 26, Hub: 12, Teeth: 24, HalfAngle: math.Pi / 48},
	}
	for i, g := range gears {
		t.Run(fmt.Sprintf("gear%d", i), func(t *testing.T) {
			size := 2*int(math.Ceil(g.Outer)) + 4
			c := float64(size) / 2
			outline := g.Outline(c, c)

			want := fillVector(outline, size)
			got := g.RasterizeSmooth(size)

			var total, worst int
			for j, a := range want.Pix {
				d := int(got[4*j+3]) - int(a)
				if d < 0 {
					d = -d
				}
				total += d
				worst = max(worst, d)
			}
			// x/image/vector flattens the arcs more coarsely, so single
			// pixels along the rim can differ noticeably.
			mean := float64(total) / float64(len(want.Pix))
			if mean > 1 || worst > 64 {
				t.Errorf("alpha differs from x/image/vector: mean %.3f, max %d", mean, worst)
			}
		})
	}
}

func BenchmarkRasteriserGear(b *testing.B) {
	for _, size := range []int{48, 480} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := scaledGear(Settings, float64(size)/SettingsSize)
			s := float64(size)
			outline := g.Outline(s/2, s/2)
			clip := rect.Rect{URx: s, URy: s}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(outline, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = toByte(c)
					}
				})
			}
		})
	}
}

func BenchmarkVectorGear(b *testing.B) {
	for _, size := range []int{48, 480} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := scaledGear(Settings, float64(size)/SettingsSize)
			s := float64(size)
			outline := g.Outline(s/2, s/2)

			b.ReportAllocs()
			for b.Loop() {
				fillVector(outline, size)
			}
		})
	}
}

func BenchmarkRasterize(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		Settings.Rasterize(SettingsSize)
	}
}

func scaledGear(g Gear, f float64) Gear {
	g.Outer *= f
	g.Inner *= f
	g.Hub *= f
	return g
}
