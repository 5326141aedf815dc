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

// Package container writes RGBA pixel buffers as PNG files.
//
// The file is assembled chunk by chunk: the PNG signature, an IHDR
// chunk, a single IDAT chunk holding the zlib-compressed scanlines (all
// using filter type 0), and an empty IEND chunk.
package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

// Signature is the fixed 8-byte prefix of every PNG file.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Chunk types used by the encoder.
const (
	TypeHeader = "IHDR"
	TypeData   = "IDAT"
	TypeEnd    = "IEND"
)

// Chunk is a decoded PNG chunk.
type Chunk struct {
	Type string
	Data []byte
}

// Checksum returns the CRC-32 of the chunk type followed by the payload.
// The length field is not part of the checksum.
func Checksum(typ string, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	return crc.Sum32()
}

// WriteChunk writes one chunk: the payload length, the type, the payload
// and the checksum.
func WriteChunk(w io.Writer, typ string, data []byte) error {
	if len(typ) != 4 {
		return fmt.Errorf("invalid chunk type %q", typ)
	}
	if uint64(len(data)) > maxChunkLength {
		return fmt.Errorf("%s: payload of %d bytes too long", typ, len(data))
	}

	var buf [8]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(len(data)))
	copy(buf[4:], typ)
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(buf[:4], Checksum(typ, data))
	_, err := w.Write(buf[:4])
	return err
}

// maxChunkLength is the largest payload length allowed by the PNG format.
const maxChunkLength = 1<<31 - 1

// Errors returned by [ReadChunks].
var (
	ErrSignature = errors.New("missing PNG signature")
	ErrTruncated = errors.New("truncated chunk")
	ErrChecksum  = errors.New("chunk checksum mismatch")
)

// ReadChunks splits a PNG file image into its chunks.  The signature,
// the length and the checksum of every chunk are verified.  Reading
// stops after the IEND chunk.
func ReadChunks(data []byte) ([]Chunk, error) {
	if !bytes.HasPrefix(data, Signature[:]) {
		return nil, ErrSignature
	}
	data = data[len(Signature):]

	var chunks []Chunk
	for len(data) > 0 {
		if len(data) < 12 {
			return chunks, ErrTruncated
		}
		n := binary.BigEndian.Uint32(data[:4])
		if uint64(n) > maxChunkLength || uint64(len(data)-12) < uint64(n) {
			return chunks, ErrTruncated
		}
		typ := string(data[4:8])
		payload := data[8 : 8+n]
		sum := binary.BigEndian.Uint32(data[8+n : 12+n])
		if sum != Checksum(typ, payload) {
			return chunks, fmt.Errorf("%s: %w", typ, ErrChecksum)
		}
		chunks = append(chunks, Chunk{Type: typ, Data: payload})
		data = data[12+n:]

		if typ == TypeEnd {
			break
		}
	}
	return chunks, nil
}
