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

// Command gearpdf writes every gear configuration from the testcases
// package as a single-page vector PDF, for visual comparison with the
// rasterised icons.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gearicon/testcases"
)

func main() {
	outDir := pflag.StringP("dir", "d", "testdata/pdf", "output directory")
	pflag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func generatePDF(tc testcases.Case, pdfPath string) error {
	size := float64(tc.Size)

	// one point per pixel
	paper := &pdf.Rectangle{URx: size, URy: size}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that white marks the covered area
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	// PDF origin is bottom-left; the outline uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, size})

	page.SetFillColor(color.DeviceGray(1))
	outline := tc.Gear.Outline(size/2, size/2)
	k := 0
	for _, cmd := range outline.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p := outline.Coords[k]
			page.MoveTo(p.X, p.Y)
			k++
		case path.CmdLineTo:
			p := outline.Coords[k]
			page.LineTo(p.X, p.Y)
			k++
		case path.CmdCubeTo:
			c1, c2, p := outline.Coords[k], outline.Coords[k+1], outline.Coords[k+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			k += 3
		case path.CmdClose:
			page.ClosePath()
		default:
			panic(fmt.Sprintf("unexpected path command %v", cmd))
		}
	}
	page.Fill()

	return page.Close()
}
