// Package calldata provides a fixed-width reader over transaction call data.
// ABI-encoded call data is a 4-byte function selector followed by 32-byte
// argument words. The reader makes bounds behavior explicit: reads past the
// end of the payload yield zero values rather than panicking, so malformed
// or truncated inputs degrade instead of crashing the engine.
package calldata

import (
	"encoding/hex"
	"math/big"
	"strings"
)

const (
	selectorLength = 4
	wordLength     = 32
	addressLength  = 20
)

// Reader is an immutable view over a transaction's call-data payload.
type Reader struct {
	data []byte
}

// NewReader creates a reader over the given 0x-prefixed hex call data.
// Invalid hex (including an odd-length tail) yields an empty reader.
func NewReader(input string) *Reader {
	s := strings.TrimPrefix(strings.ToLower(input), "0x")
	if len(s)%2 != 0 {
		s = s[:len(s)-1]
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return &Reader{}
	}
	return &Reader{data: data}
}

// Len returns the payload length in bytes, selector included.
func (r *Reader) Len() int {
	return len(r.data)
}

// IsEmpty reports whether the payload carries no bytes at all.
func (r *Reader) IsEmpty() bool {
	return len(r.data) == 0
}

// Selector returns the 4-byte function selector as a 0x-prefixed lower-case
// hex string, or the empty string when the payload is shorter than 4 bytes.
func (r *Reader) Selector() string {
	if len(r.data) < selectorLength {
		return ""
	}
	return "0x" + hex.EncodeToString(r.data[:selectorLength])
}

// Word returns the i-th 32-byte argument word following the selector.
// A truncated final word is left-padded with zeros, so the surviving bytes
// keep their low-order value and short input decodes toward zero.
func (r *Reader) Word(i int) []byte {
	word := make([]byte, wordLength)
	start := selectorLength + i*wordLength
	if start >= len(r.data) {
		return word
	}
	tail := r.data[start:]
	if len(tail) > wordLength {
		tail = tail[:wordLength]
	}
	copy(word[wordLength-len(tail):], tail)
	return word
}

// AddressWord decodes argument word i as an address: the last 20 bytes of
// the 32-byte word, returned as a 0x-prefixed lower-case hex string. A word
// that is entirely out of range decodes to the zero address.
func (r *Reader) AddressWord(i int) string {
	word := r.Word(i)
	return "0x" + hex.EncodeToString(word[wordLength-addressLength:])
}

// BigIntWord decodes argument word i as an unsigned big-endian integer.
func (r *Reader) BigIntWord(i int) *big.Int {
	return new(big.Int).SetBytes(r.Word(i))
}

// Contains reports whether the payload's hex representation contains the
// given substring. This mirrors the loose call-data sniffing some
// classification fallbacks rely on; it is a heuristic, not a decode.
func (r *Reader) Contains(sub string) bool {
	return strings.Contains(hex.EncodeToString(r.data), strings.ToLower(sub))
}
