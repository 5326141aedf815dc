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

// Command gearicon draws the settings gear icon and writes it as a PNG
// file.
//
// Usage:
//
//	gearicon [-o FILE] [--smooth] [--base64] [--verbose]
//
// Without options the icon is written to icon_settings.png in the
// current directory.
package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"seehuhn.de/go/gearicon"
	"seehuhn.de/go/gearicon/container"
)

const defaultOutput = "icon_settings.png"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command line settings.
type options struct {
	output  string
	smooth  bool
	base64  bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	flagSet := pflag.NewFlagSet("gearicon", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.output, "output", "o", defaultOutput, "write the icon to this file")
	flagSet.BoolVar(&opts.smooth, "smooth", false, "draw anti-aliased edges")
	flagSet.BoolVar(&opts.base64, "base64", false, "also print the PNG data in Base64 encoding")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log the icon geometry")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if flagSet.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err == pflag.ErrHelp {
		return nil
	} else if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g := gearicon.Settings
	size := gearicon.SettingsSize
	if err := g.Validate(); err != nil {
		return err
	}
	logger.Debug("drawing gear",
		"size", size,
		"outer", g.Outer,
		"inner", g.Inner,
		"hub", g.Hub,
		"teeth", g.Teeth,
		"half_angle", g.HalfAngle,
		"smooth", opts.smooth)

	var pix []byte
	if opts.smooth {
		pix = g.RasterizeSmooth(size)
	} else {
		pix = g.Rasterize(size)
	}

	data, err := container.EncodeBytes(pix, size, size)
	if err != nil {
		return err
	}
	if err := container.WriteFile(opts.output, data); err != nil {
		return err
	}
	logger.Debug("icon written", "path", opts.output, "bytes", len(data))

	fmt.Fprintf(stdout, "Done: %d bytes written to %s\n", len(data), opts.output)
	if opts.base64 {
		fmt.Fprintf(stdout, "Base64: %s\n", base64.StdEncoding.EncodeToString(data))
	}
	return nil
}
