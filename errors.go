// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

import "errors"

// Sentinel errors for the compressor and decompressor. Wrapped causes (e.g.
// an underlying io.Reader/io.Writer failure) are attached with
// github.com/pkg/errors so errors.Is still matches the sentinel.
var (
	// ErrInvalidParameter is returned when Window or Literal is out of range,
	// or a supplied dictionary's length does not match 1<<Window.
	ErrInvalidParameter = errors.New("tamp: invalid parameter")

	// ErrExcessBits is returned when a literal byte has bits set beyond the
	// configured Literal width.
	ErrExcessBits = errors.New("tamp: literal byte exceeds configured bit width")

	// ErrUnsupportedHeader is returned when the reserved or more-header-bytes
	// header bit is nonzero.
	ErrUnsupportedHeader = errors.New("tamp: unsupported header flags")

	// ErrDictionaryRequired is returned when the header advertises a custom
	// dictionary but the caller supplied none.
	ErrDictionaryRequired = errors.New("tamp: custom dictionary required but not supplied")

	// ErrUnexpectedEndOfStream is returned when the bit reader's source is
	// exhausted mid-field (e.g. mid-header).
	ErrUnexpectedEndOfStream = errors.New("tamp: unexpected end of stream")

	// ErrMalformedCode is returned when maxHuffmanBits (9) bits are consumed
	// without matching a Huffman code.
	ErrMalformedCode = errors.New("tamp: malformed huffman code")

	// ErrIO is returned when the underlying source or sink fails. Callers can
	// use errors.Is(err, tamp.ErrIO) and errors.Unwrap to inspect the cause.
	ErrIO = errors.New("tamp: i/o error")
)
