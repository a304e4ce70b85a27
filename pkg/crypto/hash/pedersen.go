/*
Package hash implements hash functions used to derive selectors and
transaction hashes: the truncated Keccak and the Pedersen hash over the
STARK curve.
*/
package hash

import (
	"math/big"

	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
)

// Pedersen computes Pedersen hashes on the given curve. It holds no mutable
// state and can be shared between goroutines.
type Pedersen struct {
	c *curve.Curve
}

// NewPedersen creates a Pedersen hasher using the standard constant points.
func NewPedersen(c *curve.Curve) *Pedersen {
	return &Pedersen{c: c}
}

// Hash returns Pedersen hash of two field elements.
func (p *Pedersen) Hash(a, b felt.Felt) felt.Felt {
	return mustFelt(p.c.PedersenHash(a.Big(), b.Big()))
}

// HashOnElements folds elements with Hash starting from zero and then hashes
// the result with the number of elements. Empty input is allowed.
func (p *Pedersen) HashOnElements(elems []felt.Felt) felt.Felt {
	in := make([]*big.Int, len(elems))
	for i := range elems {
		in[i] = elems[i].Big()
	}
	return mustFelt(p.c.HashOnElements(in))
}

// mustFelt converts a hash result. Felt inputs are always in the field, so
// neither the hash nor the conversion can fail.
func mustFelt(h *big.Int, err error) felt.Felt {
	if err != nil {
		panic(err)
	}
	res, err := felt.FromBig(h)
	if err != nil {
		panic(err)
	}
	return res
}
