// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

import (
	"bytes"
	"errors"
	"testing"
)

func TestTextRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	tc, err := NewTextCompressor(&buf, nil)
	if err != nil {
		t.Fatalf("NewTextCompressor: %v", err)
	}
	if _, err := tc.Write("hello, 世界"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := tc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	td, err := NewTextDecompressor(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("NewTextDecompressor: %v", err)
	}
	got, err := td.ReadString(-1)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "hello, 世界" {
		t.Fatalf("ReadString() = %q, want %q", got, "hello, 世界")
	}
}

func TestTextDecompressorRejectsInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewCompressor(&buf, nil)
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	if _, err := c.Write([]byte{0xFF, 0xFE}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	td, err := NewTextDecompressor(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("NewTextDecompressor: %v", err)
	}
	if _, err := td.ReadString(-1); !errors.Is(err, errInvalidUTF8) {
		t.Fatalf("ReadString err = %v, want errInvalidUTF8", err)
	}
}
