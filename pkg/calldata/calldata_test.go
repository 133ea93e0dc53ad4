package calldata

import (
	"math/big"
	"strings"
	"testing"
)

// approve(spender, 1000) against a dummy spender address.
const approveInput = "0x095ea7b3" +
	"000000000000000000000000a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2" +
	"00000000000000000000000000000000000000000000000000000000000003e8"

func TestSelector(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full call", approveInput, "0x095ea7b3"},
		{"selector only", "0xa9059cbb", "0xa9059cbb"},
		{"upper case input", "0x095EA7B3", "0x095ea7b3"},
		{"too short", "0x0102", ""},
		{"empty", "0x", ""},
		{"no prefix", "a9059cbb", "0xa9059cbb"},
	}

	for _, test := range tests {
		if result := NewReader(test.input).Selector(); result != test.expected {
			t.Errorf("%s: Selector() = %s, want %s", test.name, result, test.expected)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !NewReader("0x").IsEmpty() {
		t.Errorf("IsEmpty() = false for empty payload")
	}
	if !NewReader("").IsEmpty() {
		t.Errorf("IsEmpty() = false for empty string")
	}
	if NewReader("0x01").IsEmpty() {
		t.Errorf("IsEmpty() = true for non-empty payload")
	}
}

func TestInvalidHexYieldsEmptyReader(t *testing.T) {
	if !NewReader("0xzzzz").IsEmpty() {
		t.Errorf("invalid hex should decode to an empty reader")
	}
	// Odd-length input drops the trailing nibble rather than failing.
	r := NewReader("0xa9059cb")
	if r.Len() != 3 {
		t.Errorf("odd-length input Len() = %d, want 3", r.Len())
	}
}

func TestAddressWord(t *testing.T) {
	r := NewReader(approveInput)
	expected := "0xa1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2"
	if result := r.AddressWord(0); result != expected {
		t.Errorf("AddressWord(0) = %s, want %s", result, expected)
	}
}

func TestBigIntWord(t *testing.T) {
	r := NewReader(approveInput)
	if result := r.BigIntWord(1); result.Cmp(big.NewInt(1000)) != 0 {
		t.Errorf("BigIntWord(1) = %s, want 1000", result)
	}
}

func TestOutOfRangeWordsDecodeToZero(t *testing.T) {
	r := NewReader(approveInput)
	if result := r.BigIntWord(5); result.Sign() != 0 {
		t.Errorf("BigIntWord(5) = %s, want 0", result)
	}
	if result := r.AddressWord(5); result != "0x"+strings.Repeat("0", 40) {
		t.Errorf("AddressWord(5) = %s, want zero address", result)
	}
}

func TestTruncatedWordLeftPads(t *testing.T) {
	// Selector plus half an argument word. The surviving bytes are the
	// low-order ones, so the decoded value must not be inflated.
	r := NewReader("0x095ea7b3" + strings.Repeat("ff", 16))
	word := r.Word(0)
	if len(word) != 32 {
		t.Fatalf("Word(0) length = %d, want 32", len(word))
	}
	for i := 0; i < 16; i++ {
		if word[i] != 0 {
			t.Errorf("Word(0)[%d] = %x, want zero fill", i, word[i])
		}
	}
	for i := 16; i < 32; i++ {
		if word[i] != 0xff {
			t.Errorf("Word(0)[%d] = %x, want ff", i, word[i])
		}
	}

	expected, _ := new(big.Int).SetString(strings.Repeat("ff", 16), 16)
	if result := r.BigIntWord(0); result.Cmp(expected) != 0 {
		t.Errorf("BigIntWord(0) = %s, want %s", result, expected)
	}
}

func TestTruncatedAmountKeepsLowOrderValue(t *testing.T) {
	// approve(spender, 1e18) with the amount word cut to its last 8 bytes.
	r := NewReader("0x095ea7b3" +
		"000000000000000000000000a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2" +
		"0de0b6b3a7640000")
	expected, _ := new(big.Int).SetString("1000000000000000000", 10)
	if result := r.BigIntWord(1); result.Cmp(expected) != 0 {
		t.Errorf("BigIntWord(1) = %s, want %s", result, expected)
	}
}

func TestContains(t *testing.T) {
	r := NewReader(approveInput)
	if !r.Contains("095ea7b3") {
		t.Errorf("Contains(095ea7b3) = false")
	}
	if !r.Contains("095EA7B3") {
		t.Errorf("Contains should be case-insensitive")
	}
	if r.Contains("deadbeef") {
		t.Errorf("Contains(deadbeef) = true")
	}
}
