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

package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Colour type and bit depth of the images written by this package.
const (
	BitDepth       = 8
	ColourTypeRGBA = 6
)

// Header holds the fields of an IHDR chunk.
type Header struct {
	Width, Height uint32
}

// Bytes returns the 13-byte IHDR payload: width and height, then bit
// depth 8, colour type RGBA, and zero for compression, filter and
// interlace method.
func (h Header) Bytes() []byte {
	buf := make([]byte, 13)
	binary.BigEndian.PutUint32(buf[0:], h.Width)
	binary.BigEndian.PutUint32(buf[4:], h.Height)
	buf[8] = BitDepth
	buf[9] = ColourTypeRGBA
	return buf
}

// Encode writes pix as a PNG image to w.
// The pixel buffer must hold width×height RGBA pixels, row by row,
// four bytes per pixel.
func Encode(w io.Writer, pix []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return fmt.Errorf("pixel buffer has %d bytes, want %d", len(pix), width*height*4)
	}

	idat, err := compressRows(pix, width, height)
	if err != nil {
		return err
	}

	if _, err := w.Write(Signature[:]); err != nil {
		return err
	}
	hdr := Header{Width: uint32(width), Height: uint32(height)}
	if err := WriteChunk(w, TypeHeader, hdr.Bytes()); err != nil {
		return err
	}
	if err := WriteChunk(w, TypeData, idat); err != nil {
		return err
	}
	return WriteChunk(w, TypeEnd, nil)
}

// EncodeBytes returns the PNG file image for pix.
func EncodeBytes(pix []byte, width, height int) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, pix, width, height); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compressRows builds the scanline stream, each row prefixed by filter
// type 0, and compresses it with zlib at the default level.
func compressRows(pix []byte, width, height int) ([]byte, error) {
	stride := width * 4
	out := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(out, zlib.DefaultCompression)
	if err != nil {
		return nil, err
	}
	filter := []byte{0}
	for y := range height {
		if _, err := zw.Write(filter); err != nil {
			return nil, err
		}
		if _, err := zw.Write(pix[y*stride : (y+1)*stride]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
