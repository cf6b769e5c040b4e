package asm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ethkit/evasm/ops"
)

func TestRadixImm(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		radix  int
		width  int
		want   []byte
	}{
		{"Zero", "0", 10, 1, []byte{0x00}},
		{"ZeroPadded", "0", 10, 4, []byte{0, 0, 0, 0}},
		{"One", "1", 2, 1, []byte{0x01}},
		{"OctalWord", "400", 8, 2, []byte{0x01, 0x00}},
		{"DecimalPadded", "42", 10, 2, []byte{0x00, 0x2a}},
		{"ExactWidth", "65535", 10, 2, []byte{0xff, 0xff}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := radixImm(tc.digits, tc.radix, tc.width)
			if err != nil {
				t.Fatalf("radixImm(%q, %d, %d): %v", tc.digits, tc.radix, tc.width, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("radixImm(%q, %d, %d) = %x, want %x", tc.digits, tc.radix, tc.width, got, tc.want)
			}
		})
	}
}

func TestRadixImmTooLarge(t *testing.T) {
	var tooBig *ImmediateTooLargeError

	// 256 needs two bytes
	if _, err := radixImm("256", 10, 1); !errors.As(err, &tooBig) {
		t.Fatalf("want ImmediateTooLargeError, got %v", err)
	}

	// the 128-bit range cap applies regardless of declared width
	huge := "1" + strings.Repeat("0", 39) // 10^39 > 2^128
	if _, err := radixImm(huge, 10, 32); !errors.As(err, &tooBig) {
		t.Fatalf("want ImmediateTooLargeError for %s, got %v", huge, err)
	}

	// 16 bytes is the most any radix literal can produce
	if _, err := radixImm(strings.Repeat("ff", 16), 16, 32); err != nil {
		t.Fatalf("16-byte value within range rejected: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	got, err := normalize([]byte{0x01}, 4)
	if err != nil {
		t.Fatalf("normalize pad: %v", err)
	}
	if !bytes.Equal(got, []byte{0, 0, 0, 0x01}) {
		t.Fatalf("normalize pad = %x", got)
	}

	var tooBig *ImmediateTooLargeError
	_, err = normalize([]byte{1, 2, 3}, 2)
	if !errors.As(err, &tooBig) {
		t.Fatalf("want ImmediateTooLargeError, got %v", err)
	}
	if tooBig.Len != 3 || tooBig.Width != 2 {
		t.Fatalf("want len 3 width 2, got %+v", tooBig)
	}
}

func TestSelectorImmWidth(t *testing.T) {
	// the byte count comes from the specifier's total size, one byte
	// short of it
	for _, n := range []int{1, 4, 20, 32} {
		spec, ok := ops.Push(n)
		if !ok {
			t.Fatalf("no push%d", n)
		}
		imm, err := selectorImm("transfer(address,uint256)", spec)
		if err != nil {
			t.Fatalf("selectorImm width %d: %v", n, err)
		}
		if len(imm) != n {
			t.Fatalf("selectorImm width %d: got %d bytes", n, len(imm))
		}
	}

	spec, _ := ops.Push(4)
	imm, err := selectorImm("name()", spec)
	if err != nil {
		t.Fatalf("selectorImm: %v", err)
	}
	if !bytes.Equal(imm, []byte{0x06, 0xfd, 0xde, 0x03}) {
		t.Fatalf("selector(\"name()\") = %x, want 06fdde03", imm)
	}
}
