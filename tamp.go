// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

import "bytes"

// Compress compresses data in one shot using the given options (nil uses
// DefaultCompressorOptions) and returns the complete encoded stream.
func Compress(data []byte, opts *CompressorOptions) ([]byte, error) {
	var buf bytes.Buffer
	c, err := NewCompressor(&buf, opts)
	if err != nil {
		return nil, err
	}
	if _, err := c.Write(data); err != nil {
		return nil, err
	}
	if _, err := c.Flush(false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes a complete Tamp stream in one shot using the given
// options (nil uses DefaultDecompressorOptions) and returns all decoded
// bytes.
func Decompress(data []byte, opts *DecompressorOptions) ([]byte, error) {
	d, err := NewDecompressor(bytes.NewReader(data), opts)
	if err != nil {
		return nil, err
	}

	out := bytes.NewBuffer([]byte{})
	chunk := make([]byte, 4096)
	for {
		n, err := d.ReadInto(chunk)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		out.Write(chunk[:n])
	}
	return out.Bytes(), nil
}
