// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

import "io"

// Compressor is a streaming Tamp encoder: Write queues input bytes, greedily
// matching against the ring-buffer dictionary once enough lookahead has
// accumulated; Flush drains the queue and finalizes the bit stream.
type Compressor struct {
	bw *bitWriter

	window  uint8
	literal uint8

	pmin        int
	pmax        int
	literalFlag uint32

	ring  *ringBuffer
	queue []byte
}

// NewCompressor constructs a Compressor writing to w. opts may be nil (uses
// DefaultCompressorOptions). Returns ErrInvalidParameter if Window/Literal are
// out of range or Dictionary's length doesn't match 1<<Window.
func NewCompressor(w io.Writer, opts *CompressorOptions) (*Compressor, error) {
	if opts == nil {
		opts = DefaultCompressorOptions()
	}

	window, literal := opts.Window, opts.Literal
	if window < 8 || window > 15 {
		return nil, ErrInvalidParameter
	}
	if literal < 5 || literal > 8 {
		return nil, ErrInvalidParameter
	}

	capacity := 1 << window
	hasCustomDict := opts.Dictionary != nil

	var dict []byte
	if hasCustomDict {
		if len(opts.Dictionary) != capacity {
			return nil, ErrInvalidParameter
		}
		dict = make([]byte, capacity)
		copy(dict, opts.Dictionary)
	} else {
		dict = make([]byte, capacity)
		initializeDictionary(dict)
	}

	pmin := computeMinPatternSize(window, literal)
	pmax := pmin + maxPatternSizeOffset

	bw := newBitWriter(w)

	var dictBit uint32
	if hasCustomDict {
		dictBit = 1
	}
	if _, err := bw.write(uint32(window-8), 3, false); err != nil {
		return nil, err
	}
	if _, err := bw.write(uint32(literal-5), 2, false); err != nil {
		return nil, err
	}
	if _, err := bw.write(dictBit, 1, false); err != nil {
		return nil, err
	}
	if _, err := bw.write(0, 1, false); err != nil { // reserved
		return nil, err
	}
	if _, err := bw.write(0, 1, false); err != nil { // more-header-bytes
		return nil, err
	}

	return &Compressor{
		bw:          bw,
		window:      window,
		literal:     literal,
		pmin:        pmin,
		pmax:        pmax,
		literalFlag: uint32(1) << literal,
		ring:        newRingBuffer(dict),
		queue:       make([]byte, 0, pmax),
	}, nil
}

// Write queues p for compression, running one encoding step each time the
// queue fills to Pmax. Returns the number of compressed bytes written to the
// sink during this call.
func (c *Compressor) Write(p []byte) (int, error) {
	written := 0
	for _, b := range p {
		c.queue = append(c.queue, b)
		if len(c.queue) == c.pmax {
			n, err := c.encodeStep()
			written += n
			if err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// encodeStep performs one greedy longest-match encoding step: it searches
// descending from the full queue length down to Pmin for the longest prefix
// present in the ring buffer, emits a pattern token on a hit or a literal
// token otherwise, and removes the consumed bytes from the queue.
func (c *Compressor) encodeStep() (int, error) {
	target := c.queue
	bestSize := 0
	bestPos := 0

	for size := len(target); size >= c.pmin; size-- {
		if pos := c.ring.index(target[:size], 0); pos >= 0 {
			bestSize = size
			bestPos = pos
			break
		}
	}

	if bestSize >= c.pmin {
		written := 0
		n, err := c.bw.writeHuffman(bestSize - c.pmin)
		written += n
		if err != nil {
			return written, err
		}
		n, err = c.bw.write(uint32(bestPos), c.window, true)
		written += n
		if err != nil {
			return written, err
		}

		c.ring.writeBytes(target[:bestSize])
		c.queue = append(c.queue[:0], c.queue[bestSize:]...)
		return written, nil
	}

	ch := c.queue[0]
	if ch>>c.literal != 0 {
		return 0, ErrExcessBits
	}
	n, err := c.bw.write(uint32(ch)|c.literalFlag, c.literal+1, true)
	if err != nil {
		return n, err
	}
	c.ring.writeByte(ch)
	c.queue = append(c.queue[:0], c.queue[1:]...)
	return n, nil
}

// Flush drains any queued bytes through repeated encoding steps, then flushes
// the bit writer. When writeToken is true and bits remain pending, a FLUSH
// marker precedes the final zero-padded byte.
func (c *Compressor) Flush(writeToken bool) (int, error) {
	written := 0
	for len(c.queue) > 0 {
		n, err := c.encodeStep()
		written += n
		if err != nil {
			return written, err
		}
	}
	n, err := c.bw.flush(writeToken)
	written += n
	return written, err
}

// Close is equivalent to Flush(false).
func (c *Compressor) Close() error {
	_, err := c.Flush(false)
	return err
}
