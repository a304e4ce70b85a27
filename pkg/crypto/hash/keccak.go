package hash

import (
	"math/big"

	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"golang.org/x/crypto/sha3"
)

// KeccakBits is the number of low bits of Keccak-256 digest kept by
// StarknetKeccak.
const KeccakBits = 250

var keccakMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), KeccakBits), big.NewInt(1))

// Keccak256 returns legacy (pre-NIST) Keccak-256 digest of data.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// StarknetKeccak returns Keccak-256 of data truncated to its low 250 bits,
// the result always fits into a field element.
func StarknetKeccak(data []byte) felt.Felt {
	v := new(big.Int).SetBytes(Keccak256(data))
	v.And(v, keccakMask)
	f, err := felt.FromBig(v)
	if err != nil {
		panic(err) // 250 bits are always below the modulus
	}
	return f
}
