// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

import "testing"

func TestInitializeDictionaryIsDeterministic(t *testing.T) {
	a := make([]byte, 256)
	b := make([]byte, 256)
	initializeDictionary(a)
	initializeDictionary(b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs between two seeded dictionaries: %d != %d", i, a[i], b[i])
		}
	}
}

func TestInitializeDictionaryOnlyUsesCommonCharacters(t *testing.T) {
	allowed := map[byte]bool{}
	for _, b := range commonCharacters {
		allowed[b] = true
	}

	buf := make([]byte, 1024)
	initializeDictionary(buf)
	for i, b := range buf {
		if !allowed[b] {
			t.Fatalf("byte %d = 0x%02x, not in commonCharacters", i, b)
		}
	}
}

func TestComputeMinPatternSize(t *testing.T) {
	tests := []struct {
		window, literal uint8
		want            int
	}{
		{window: 10, literal: 8, want: 2},
		{window: 8, literal: 5, want: 2},
		{window: 11, literal: 5, want: 3},
		{window: 15, literal: 5, want: 3},
	}
	for _, tt := range tests {
		if got := computeMinPatternSize(tt.window, tt.literal); got != tt.want {
			t.Fatalf("computeMinPatternSize(%d,%d) = %d, want %d", tt.window, tt.literal, got, tt.want)
		}
	}
}

func TestHuffmanTableIsPrefixFree(t *testing.T) {
	for i := range huffmanCode {
		for j := range huffmanCode {
			if i == j {
				continue
			}
			if huffmanBits[i] <= huffmanBits[j] {
				continue
			}
			// i is strictly longer than j: j's code must not be a bit-prefix of i's.
			shift := huffmanBits[i] - huffmanBits[j]
			if huffmanCode[i]>>shift == huffmanCode[j] {
				t.Fatalf("code %d (len %d) has code %d (len %d) as a prefix", i, huffmanBits[i], j, huffmanBits[j])
			}
		}
	}
}
