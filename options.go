// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

// CompressorOptions configures a Compressor: the window size exponent W, the
// literal bit-width L, and an optional custom dictionary.
//
// Window must be in [8,15] (ring buffer capacity is 1<<Window). Literal must
// be in [5,8] (a literal byte occupies Literal+1 bits). Dictionary, if
// non-nil, must have length 1<<Window; otherwise a deterministic seed
// dictionary is generated (see the dictionary initializer).
type CompressorOptions struct {
	Window     uint8
	Literal    uint8
	Dictionary []byte
}

// DefaultCompressorOptions returns options for window=10, literal=8, and no
// custom dictionary — the parameters used by the literal-only regression
// fixture and most round-trip tests.
func DefaultCompressorOptions() *CompressorOptions {
	return &CompressorOptions{Window: 10, Literal: 8}
}

// DecompressorOptions configures a Decompressor. Window, Literal, and the
// custom-dictionary flag are all read from the 8-bit stream header; the
// caller only supplies Dictionary when the header advertises one.
type DecompressorOptions struct {
	Dictionary []byte
}

// DefaultDecompressorOptions returns options with no custom dictionary.
func DefaultDecompressorOptions() *DecompressorOptions {
	return &DecompressorOptions{}
}
