// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

/*
Package tamp implements the Tamp low-memory LZ-style compression codec.

Tamp is a dictionary-based compressor aimed at memory-constrained devices: a
fixed-size ring-buffer window doubles as the match dictionary, pattern
lengths are packed with a static Huffman table, and the wire format has no
checksum or random-access support. Given identical window (W), literal (L),
and dictionary parameters, a conforming compressor reproduces the reference
implementation's output byte-for-byte.

# Compress

Options may be nil (defaults to W=10, L=8, no custom dictionary):

	out, err := tamp.Compress(data, nil)
	out, err := tamp.Compress(data, &tamp.CompressorOptions{Window: 12, Literal: 8})

For streaming input, drive a Compressor directly:

	c, err := tamp.NewCompressor(w, nil)
	_, err = c.Write(chunk)
	_, err = c.Flush(true)
	err = c.Close()

# Decompress

	out, err := tamp.Decompress(compressed, nil)

Or stream decoded bytes into caller-supplied buffers:

	d, err := tamp.NewDecompressor(r, nil)
	n, err := d.ReadInto(buf)

# Text

TextCompressor and TextDecompressor are byte-level pass-throughs for string
input/output; they hold no codec logic of their own.
*/
package tamp
