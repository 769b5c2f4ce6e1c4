// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

import (
	"errors"
	"io"
	"unicode/utf8"
)

// TextCompressor is a byte-level pass-through around Compressor for string
// input; it holds no codec logic of its own.
type TextCompressor struct {
	compressor *Compressor
}

// NewTextCompressor constructs a TextCompressor writing to w.
func NewTextCompressor(w io.Writer, opts *CompressorOptions) (*TextCompressor, error) {
	c, err := NewCompressor(w, opts)
	if err != nil {
		return nil, err
	}
	return &TextCompressor{compressor: c}, nil
}

// Write compresses the UTF-8 bytes of s.
func (t *TextCompressor) Write(s string) (int, error) {
	return t.compressor.Write([]byte(s))
}

// Flush is equivalent to Compressor.Flush.
func (t *TextCompressor) Flush(writeToken bool) (int, error) {
	return t.compressor.Flush(writeToken)
}

// Close is equivalent to Compressor.Close.
func (t *TextCompressor) Close() error {
	return t.compressor.Close()
}

// TextDecompressor is a byte-level pass-through around Decompressor that
// validates the decoded bytes as UTF-8; it holds no codec logic of its own.
type TextDecompressor struct {
	decompressor *Decompressor
}

// NewTextDecompressor constructs a TextDecompressor reading from r.
func NewTextDecompressor(r io.Reader, opts *DecompressorOptions) (*TextDecompressor, error) {
	d, err := NewDecompressor(r, opts)
	if err != nil {
		return nil, err
	}
	return &TextDecompressor{decompressor: d}, nil
}

// ReadString decodes up to n bytes (or, if n is negative, until the source is
// exhausted) and returns them as a string. Returns an error wrapping
// utf8-validity failure if the decoded bytes are not valid UTF-8.
func (t *TextDecompressor) ReadString(n int) (string, error) {
	var buf []byte

	if n >= 0 {
		buf = make([]byte, n)
		read, err := t.decompressor.ReadInto(buf)
		if err != nil {
			return "", err
		}
		buf = buf[:read]
	} else {
		chunk := make([]byte, 4096)
		for {
			read, err := t.decompressor.ReadInto(chunk)
			if err != nil {
				return "", err
			}
			if read == 0 {
				break
			}
			buf = append(buf, chunk[:read]...)
		}
	}

	if !utf8.Valid(buf) {
		return "", errInvalidUTF8
	}
	return string(buf), nil
}

var errInvalidUTF8 = errors.New("tamp: decoded bytes are not valid UTF-8")
