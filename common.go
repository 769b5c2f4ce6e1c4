// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

// commonCharacters is the 16-entry common-byte table used to deterministically
// seed a fresh dictionary. Its order and values are part of the wire contract:
// compressors and decompressors that disagree on this table will disagree on
// every back-reference into an unseeded window position.
var commonCharacters = [16]byte{
	0x20, 0x00, 0x30, 0x65, 0x69, 0x3e, 0x74, 0x6f,
	0x3c, 0x61, 0x6e, 0x73, 0x0a, 0x72, 0x2f, 0x2e,
}

// dictionarySeed is the fixed xorshift32 seed for deterministic dictionary
// initialization.
const dictionarySeed uint32 = 3758097560

// xorshift32 advances the 32-bit state per the reference's shift-xor sequence.
func xorshift32(state uint32) uint32 {
	x := state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

// initializeDictionary deterministically fills buf with a pseudo-random
// sequence drawn from commonCharacters, seeded from dictionarySeed. The
// result must be bit-for-bit identical across conforming implementations:
// it is the wire-compatible default dictionary when none is supplied.
func initializeDictionary(buf []byte) {
	seed := dictionarySeed
	var randBuf uint32
	for i := range buf {
		if i&0x7 == 0 {
			seed = xorshift32(seed)
			randBuf = seed
		}
		buf[i] = commonCharacters[randBuf&0xF]
		randBuf >>= 4
	}
}

// computeMinPatternSize derives Pmin from the window and literal parameters.
// This is the shortest back-reference that saves bits over literals at the
// given (window, literal) pair.
func computeMinPatternSize(window, literal uint8) int {
	min := 2
	if int(window) > 10+2*(int(literal)-5) {
		min++
	}
	return min
}

// maxPatternSizeOffset is the fixed span between Pmin and Pmax: the pattern-
// length Huffman alphabet always has exactly 14 usable entries.
const maxPatternSizeOffset = 13

// huffmanFlush is the sentinel length-index value signalling the 9-bit FLUSH
// marker rather than a length 0..13.
const huffmanFlush = 14

// huffmanCode and huffmanBits hold the fixed pattern-length Huffman table
// (spec §3), indexed 0..13 by (pattern size - Pmin); huffmanCode[14]/
// huffmanBits[14] hold the FLUSH marker. These codes are prefix-free among
// themselves and must never change: they are part of the wire format.
var huffmanCode = [15]uint32{
	0b0,
	0b11,
	0b1000,
	0b1011,
	0b10100,
	0b100100,
	0b100110,
	0b101011,
	0b1001011,
	0b1010100,
	0b10010100,
	0b10010101,
	0b10101010,
	0b100111,
	0b10101011, // FLUSH
}

var huffmanBits = [15]uint8{
	2, 3, 5, 5, 6, 7, 7, 7, 8, 8, 9, 9, 9, 7,
	9, // FLUSH
}

// maxHuffmanBits is the widest entry in the table (FLUSH and indices 10-12,
// at 9 bits). The bit reader must be willing to read this many bits before
// declaring a code malformed.
const maxHuffmanBits = 9
