/*
Package felt provides the field element type used for calldata, addresses,
selectors and hashes along with helpers to convert between its decimal and
hex string forms.
*/
package felt

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// PrimeHex is the field modulus 2^251 + 17·2^192 + 1.
const PrimeHex = "0x800000000000011000000000000000000000000000000000000000000000001"

var (
	prime    = mustParseUint256(PrimeHex)
	primeBig = prime.ToBig()

	// ErrOutOfRange is returned for values that are not less than the field
	// modulus.
	ErrOutOfRange = errors.New("value is out of field range")
)

// Felt is a field element. Its zero value is 0. Felt is a value type, copies
// are independent.
type Felt struct {
	v uint256.Int
}

func mustParseUint256(s string) *uint256.Int {
	b, ok := new(big.Int).SetString(RemoveHexPrefix(s), 16)
	if !ok {
		panic("bad constant " + s)
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		panic("constant overflow " + s)
	}
	return u
}

// Prime returns a copy of the field modulus.
func Prime() *big.Int {
	return new(big.Int).Set(primeBig)
}

// FromUint64 returns a Felt with the given value.
func FromUint64(u uint64) Felt {
	var f Felt
	f.v.SetUint64(u)
	return f
}

// FromBig converts b to a Felt, b must be in [0, p).
func FromBig(b *big.Int) (Felt, error) {
	var f Felt
	if b == nil {
		return f, errors.New("nil value")
	}
	if b.Sign() < 0 {
		return f, fmt.Errorf("negative value %s", b)
	}
	u, overflow := uint256.FromBig(b)
	if overflow || u.Cmp(prime) >= 0 {
		return f, ErrOutOfRange
	}
	f.v = *u
	return f, nil
}

// Parse parses a decimal or 0x-prefixed hex string into a Felt.
func Parse(s string) (Felt, error) {
	b, err := ParseBig(s)
	if err != nil {
		return Felt{}, err
	}
	f, err := FromBig(b)
	if err != nil {
		return Felt{}, fmt.Errorf("%q: %w", s, err)
	}
	return f, nil
}

// ParseBig parses a non-negative integer given either in decimal or as a
// 0x-prefixed hex string. No field range check is performed.
func ParseBig(s string) (*big.Int, error) {
	var (
		base = 10
		num  = s
	)
	if HasHexPrefix(s) {
		base = 16
		num = s[2:]
	}
	if num == "" || strings.HasPrefix(num, "+") || strings.HasPrefix(num, "-") {
		return nil, fmt.Errorf("not a non-negative integer: %q", s)
	}
	b, ok := new(big.Int).SetString(num, base)
	if !ok {
		return nil, fmt.Errorf("not a non-negative integer: %q", s)
	}
	return b, nil
}

// Big returns the value as a new big.Int.
func (f Felt) Big() *big.Int {
	return f.v.ToBig()
}

// IsZero returns true for zero value.
func (f Felt) IsZero() bool {
	return f.v.IsZero()
}

// Cmp compares f and g returning -1, 0 or +1.
func (f Felt) Cmp(g Felt) int {
	return f.v.Cmp(&g.v)
}

// Equal returns true if f and g hold the same value.
func (f Felt) Equal(g Felt) bool {
	return f.v.Eq(&g.v)
}

// String returns decimal representation of f.
func (f Felt) String() string {
	return f.Big().String()
}

// Hex returns 0x-prefixed lowercase hex representation of f without leading
// zeroes ("0x0" for zero).
func (f Felt) Hex() string {
	return "0x" + f.Big().Text(16)
}

// MarshalJSON implements the json.Marshaler interface, felts are encoded as
// decimal strings.
func (f Felt) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface, both decimal and
// hex strings are accepted.
func (f *Felt) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Strings converts a slice of Felts to their decimal string forms.
func Strings(fs []Felt) []string {
	res := make([]string, len(fs))
	for i := range fs {
		res[i] = fs[i].String()
	}
	return res
}
