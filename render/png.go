// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image/png"
	"io"
	"strconv"

	"github.com/katalvlaran/stringart/grid"
)

var (
	pngSignature = []byte("\x89PNG\r\n\x1a\n")

	// ErrNotPNG is returned by ReadText for input without a PNG signature
	// or with a truncated chunk.
	ErrNotPNG = errors.New("render: not a PNG stream")
)

const (
	// signature (8) + IHDR length, type, 13 data bytes, crc
	ihdrEnd     = 8 + 4 + 4 + 13 + 4
	maxKeyword  = 79
	chunkHeader = 8
)

// Metadata describes the run behind an image. Zero-valued optional fields
// are omitted from the output.
type Metadata struct {
	Pins       int
	StartPin   int
	SafetyGap  int
	Steps      int
	LineWeight int
	ThreadMM   float64 // optional
	Software   string  // optional
	RunID      string  // optional
}

// Pair is one key/value of Metadata.
type Pair struct {
	Key, Value string
}

// Pairs returns the metadata in a fixed key order.
func (m Metadata) Pairs() []Pair {
	out := []Pair{
		{"pins", strconv.Itoa(m.Pins)},
		{"start", strconv.Itoa(m.StartPin)},
		{"gap", strconv.Itoa(m.SafetyGap)},
		{"steps", strconv.Itoa(m.Steps)},
		{"weight", strconv.Itoa(m.LineWeight)},
	}
	if m.ThreadMM > 0 {
		out = append(out, Pair{"thread_mm", strconv.FormatFloat(m.ThreadMM, 'f', 1, 64)})
	}
	if m.Software != "" {
		out = append(out, Pair{"software", m.Software})
	}
	if m.RunID != "" {
		out = append(out, Pair{"run_id", m.RunID})
	}
	return out
}

// PNG writes the display image of v with one tEXt chunk per metadata pair,
// placed right after IHDR.
func PNG(w io.Writer, v grid.View, meta Metadata) error {
	img, err := Image(v)
	if err != nil {
		return fmt.Errorf("PNG: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("PNG: encode: %w", err)
	}
	raw := buf.Bytes()

	var text bytes.Buffer
	for _, p := range meta.Pairs() {
		if err := writeText(&text, p.Key, p.Value); err != nil {
			return fmt.Errorf("PNG: %w", err)
		}
	}

	for _, part := range [][]byte{raw[:ihdrEnd], text.Bytes(), raw[ihdrEnd:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("PNG: write: %w", err)
		}
	}
	return nil
}

// writeText appends a tEXt chunk: keyword, NUL, Latin-1 text.
func writeText(w *bytes.Buffer, key, value string) error {
	if len(key) == 0 || len(key) > maxKeyword {
		return fmt.Errorf("tEXt keyword %q must be 1-%d bytes", key, maxKeyword)
	}
	data := make([]byte, 0, len(key)+1+len(value))
	data = append(data, key...)
	data = append(data, 0)
	data = append(data, value...)

	var hdr [chunkHeader]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], "tEXt")

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(data)

	w.Write(hdr[:])
	w.Write(data)
	return binary.Write(w, binary.BigEndian, crc.Sum32())
}

// ReadText returns the tEXt key/value pairs of a PNG stream in file order.
// Chunk CRCs are not verified.
func ReadText(r io.Reader) ([]Pair, error) {
	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(r, sig); err != nil || !bytes.Equal(sig, pngSignature) {
		return nil, fmt.Errorf("ReadText: %w", ErrNotPNG)
	}

	var out []Pair
	var hdr [chunkHeader]byte
	for {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, fmt.Errorf("ReadText: chunk header: %w", ErrNotPNG)
		}
		n := binary.BigEndian.Uint32(hdr[:4])
		typ := string(hdr[4:])
		body := make([]byte, int(n)+4) // data + crc
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, fmt.Errorf("ReadText: %s chunk: %w", typ, ErrNotPNG)
		}
		switch typ {
		case "tEXt":
			key, value, _ := bytes.Cut(body[:n], []byte{0})
			out = append(out, Pair{string(key), string(value)})
		case "IEND":
			return out, nil
		}
	}
}
