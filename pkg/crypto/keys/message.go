package keys

import (
	"encoding/hex"
	"strings"

	"github.com/starkyproject/starky-go/pkg/encoding/felt"
)

// maxUnshiftedDigits is the longest normalized hash that's signed as is.
const maxUnshiftedDigits = 62

// FixMessage normalizes a message hash before signing. The 0x prefix and
// leading zeroes are stripped, hashes longer than 62 hex digits get a
// trailing "0" appended. The signer truncates digests to the order bit
// length, so the appended nibble is dropped again and the signed integer is
// the hash itself.
func FixMessage(msg string) string {
	s := strings.TrimLeft(felt.RemoveHexPrefix(msg), "0")
	if len(s) <= maxUnshiftedDigits {
		return s
	}
	return s + "0"
}

// messageBytes decodes a FixMessage result into bytes, odd-length strings
// are left-padded with a zero nibble.
func messageBytes(fixed string) ([]byte, error) {
	if len(fixed)%2 != 0 {
		fixed = "0" + fixed
	}
	if fixed == "" {
		return []byte{0}, nil
	}
	return hex.DecodeString(fixed)
}
