// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

import (
	"errors"
	"io"
)

// Decompressor is a streaming Tamp decoder: ReadInto decodes tokens from the
// bit stream, reproducing bytes into the ring buffer and the caller's
// output buffer, spilling any run too large for the buffer into an overflow
// held until the next call.
type Decompressor struct {
	br *bitReader

	window  uint8
	literal uint8
	pmin    int

	ring     *ringBuffer
	overflow []byte
}

// NewDecompressor reads the 8-bit header from r and constructs a Decompressor.
// opts may be nil (uses DefaultDecompressorOptions). Returns
// ErrUnsupportedHeader if the reserved or more-header-bytes bit is set, and
// ErrDictionaryRequired if the header advertises a custom dictionary but
// opts.Dictionary is nil.
func NewDecompressor(r io.Reader, opts *DecompressorOptions) (*Decompressor, error) {
	if opts == nil {
		opts = DefaultDecompressorOptions()
	}

	br := newBitReader(r)

	windowField, err := br.read(3)
	if err != nil {
		return nil, err
	}
	literalField, err := br.read(2)
	if err != nil {
		return nil, err
	}
	hasCustomDict, err := br.read(1)
	if err != nil {
		return nil, err
	}
	reserved, err := br.read(1)
	if err != nil {
		return nil, err
	}
	moreHeader, err := br.read(1)
	if err != nil {
		return nil, err
	}

	if reserved != 0 || moreHeader != 0 {
		return nil, ErrUnsupportedHeader
	}

	window := uint8(windowField) + 8
	literal := uint8(literalField) + 5
	capacity := 1 << window

	var dict []byte
	if hasCustomDict != 0 {
		if opts.Dictionary == nil {
			return nil, ErrDictionaryRequired
		}
		if len(opts.Dictionary) != capacity {
			return nil, ErrInvalidParameter
		}
		dict = make([]byte, capacity)
		copy(dict, opts.Dictionary)
	} else {
		dict = make([]byte, capacity)
		initializeDictionary(dict)
	}

	return &Decompressor{
		br:      br,
		window:  window,
		literal: literal,
		pmin:    computeMinPatternSize(window, literal),
		ring:    newRingBuffer(dict),
	}, nil
}

// ReadInto decodes bytes into out, returning the number produced. It first
// drains any overflow left over from a previous call's oversized pattern run,
// then decodes tokens until out is full or the source is exhausted at a
// token boundary. A mid-token end-of-stream is not an error: ReadInto simply
// returns the bytes produced before it, and the bit reader is restored to
// its pre-token position so a later call on a continued source would see no
// phantom consumption.
func (d *Decompressor) ReadInto(out []byte) (int, error) {
	written := 0

	if len(d.overflow) > 0 {
		n := copy(out, d.overflow)
		d.overflow = d.overflow[n:]
		written += n
		if written == len(out) {
			return written, nil
		}
	}

	for written < len(out) {
		d.br.backup()

		isLiteralBit, err := d.br.read(1)
		if err != nil {
			if errors.Is(err, ErrUnexpectedEndOfStream) {
				d.br.restore()
				break
			}
			return written, err
		}

		if isLiteralBit != 0 {
			c, err := d.br.read(d.literal)
			if err != nil {
				if errors.Is(err, ErrUnexpectedEndOfStream) {
					d.br.restore()
					break
				}
				return written, err
			}
			b := byte(c)
			d.ring.writeByte(b)
			out[written] = b
			written++
			continue
		}

		// A pattern token's 0 flag bit is also the leading bit of its Huffman
		// code: rewind to the token start so readHuffman sees the whole code,
		// and back up again so a mid-token end of stream still restores.
		d.br.restore()
		d.br.backup()
		lengthIdx, err := d.br.readHuffman()
		if err != nil {
			if errors.Is(err, ErrUnexpectedEndOfStream) {
				d.br.restore()
				break
			}
			return written, err
		}

		if lengthIdx == huffmanFlush {
			d.br.clear()
			continue
		}

		length := lengthIdx + d.pmin
		posField, err := d.br.read(d.window)
		if err != nil {
			if errors.Is(err, ErrUnexpectedEndOfStream) {
				d.br.restore()
				break
			}
			return written, err
		}
		pos := int(posField)

		run := make([]byte, length)
		for i := 0; i < length; i++ {
			run[i] = d.ring.at(pos + i)
		}
		d.ring.writeBytes(run)

		toCopy := len(out) - written
		if toCopy > length {
			toCopy = length
		}
		copy(out[written:written+toCopy], run[:toCopy])
		written += toCopy

		if toCopy < length {
			d.overflow = append(d.overflow, run[toCopy:]...)
			break
		}
	}

	return written, nil
}
