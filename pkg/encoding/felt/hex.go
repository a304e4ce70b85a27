package felt

import (
	"fmt"
	"strings"
)

// HasHexPrefix checks whether s starts with 0x.
func HasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x")
}

// RemoveHexPrefix returns s without leading 0x if there is one.
func RemoveHexPrefix(s string) string {
	return strings.TrimPrefix(s, "0x")
}

// AddHexPrefix returns s with 0x prepended unless it's already there.
func AddHexPrefix(s string) string {
	if HasHexPrefix(s) {
		return s
	}
	return "0x" + s
}

// HexAddress returns the address in hex form. Hex addresses are returned as
// is, decimal ones are converted to an even-length 0x-prefixed hex string.
func HexAddress(address string) (string, error) {
	if HasHexPrefix(address) {
		return address, nil
	}
	b, err := ParseBig(address)
	if err != nil {
		return "", fmt.Errorf("invalid address: %w", err)
	}
	h := b.Text(16)
	if len(h)%2 != 0 {
		h = "0" + h
	}
	return "0x" + h, nil
}

// SanitizeBytes left-pads s with the padding character up to the nearest
// multiple of byteSize characters.
func SanitizeBytes(s string, byteSize int, padding byte) string {
	if byteSize <= 0 {
		return s
	}
	rem := len(s) % byteSize
	if rem == 0 {
		return s
	}
	return strings.Repeat(string(padding), byteSize-rem) + s
}
