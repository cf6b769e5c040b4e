package asm

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/ethkit/evasm/ops"
)

// maxRadixBits bounds binary, octal and decimal literals to the range of a
// 128-bit unsigned integer. Hex and selector operands are not subject to
// this bound and can fill all 32 immediate bytes.
const maxRadixBits = 128

// radixImm parses a digit string in the given radix and encodes its value
// as a width-byte big-endian immediate.
func radixImm(digits string, radix int, width int) ([]byte, error) {
	n, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		// digits were matched by the grammar, so this cannot happen
		return nil, &ImmediateTooLargeError{Width: width}
	}
	if n.BitLen() > maxRadixBits {
		return nil, &ImmediateTooLargeError{Width: width, Len: (n.BitLen() + 7) / 8}
	}
	raw := n.Bytes()
	if len(raw) == 0 {
		// zero still occupies one byte
		raw = []byte{0}
	}
	return normalize(raw, width)
}

// selectorImm hashes a function signature with Keccak-256 and keeps the
// leading bytes that fit the instruction's immediate, derived from its
// total encoded size.
func selectorImm(sig string, spec ops.Specifier) ([]byte, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(sig))
	width := spec.Size() - 1
	return normalize(h.Sum(nil)[:width], width)
}

// normalize left-pads raw to exactly width bytes. Anything longer than
// width is rejected; padding never truncates.
func normalize(raw []byte, width int) ([]byte, error) {
	if len(raw) > width {
		return nil, &ImmediateTooLargeError{Width: width, Len: len(raw)}
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out, nil
}
