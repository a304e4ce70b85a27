/*
Package curve provides the STARK-friendly short Weierstrass curve used to
derive keys, compute Pedersen hashes and sign transactions.

The curve is y² = x³ + α·x + β over the prime field of order
p = 2^251 + 17·2^192 + 1 with α = 1. Arithmetic is done by caigo, Curve adds
the crypto/elliptic conventions on top of it: (0, 0) is the point at
infinity, scalars are reduced modulo the group order and the base point is
the ECDSA generator. There is no package-level curve instance, callers
construct one with NewStark and pass it to whatever needs it. A Curve is
never modified after construction and can be shared between goroutines.
*/
package curve

import (
	"crypto/elliptic"
	"errors"
	"math/big"

	"github.com/dontpanicdao/caigo"
)

// BitSize is the bit length of the curve order.
const BitSize = 252

// Curve is the STARK curve implementing elliptic.Curve.
type Curve struct {
	sc     caigo.StarkCurve
	params *elliptic.CurveParams
}

var _ elliptic.Curve = (*Curve)(nil)

// NewStark returns a ready to use Curve with the STARK curve parameters.
func NewStark() *Curve {
	// caigo keeps the Pedersen shift point in Gx/Gy, the ECDSA generator is
	// EcGenX/EcGenY.
	sc := caigo.Curve
	return &Curve{
		sc: sc,
		params: &elliptic.CurveParams{
			P:       new(big.Int).Set(sc.P),
			N:       new(big.Int).Set(sc.N),
			B:       new(big.Int).Set(sc.B),
			Gx:      new(big.Int).Set(sc.EcGenX),
			Gy:      new(big.Int).Set(sc.EcGenY),
			BitSize: BitSize,
			Name:    "STARK",
		},
	}
}

// Params implements the elliptic.Curve interface. Only P, N, B, Gx, Gy and
// BitSize are meaningful, the generic CurveParams arithmetic assumes a = -3
// and must not be used.
func (c *Curve) Params() *elliptic.CurveParams {
	return c.params
}

// IsOnCurve implements the elliptic.Curve interface. The point at infinity
// is not on the curve.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	if isInfinity(x, y) || !c.inField(x) || !c.inField(y) {
		return false
	}
	return c.sc.IsOnCurve(x, y)
}

// Add implements the elliptic.Curve interface.
func (c *Curve) Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int) {
	switch {
	case isInfinity(x1, y1):
		return clone(x2, y2)
	case isInfinity(x2, y2):
		return clone(x1, y1)
	case x1.Cmp(x2) == 0:
		if y1.Cmp(y2) == 0 {
			return c.Double(x1, y1)
		}
		return new(big.Int), new(big.Int)
	}
	return c.sc.Add(x1, y1, x2, y2)
}

// Double implements the elliptic.Curve interface.
func (c *Curve) Double(x1, y1 *big.Int) (x, y *big.Int) {
	if isInfinity(x1, y1) || y1.Sign() == 0 {
		return new(big.Int), new(big.Int)
	}
	return c.sc.Double(x1, y1)
}

// ScalarMult implements the elliptic.Curve interface, k is a big-endian
// integer.
func (c *Curve) ScalarMult(x1, y1 *big.Int, k []byte) (x, y *big.Int) {
	m := new(big.Int).SetBytes(k)
	m.Mod(m, c.params.N)
	if m.Sign() == 0 || isInfinity(x1, y1) {
		return new(big.Int), new(big.Int)
	}
	// EcMult can hand back its input for m = 1.
	return clone(c.sc.EcMult(m, x1, y1))
}

// ScalarBaseMult implements the elliptic.Curve interface.
func (c *Curve) ScalarBaseMult(k []byte) (x, y *big.Int) {
	return c.ScalarMult(c.params.Gx, c.params.Gy, k)
}

// Decompress returns the curve point with the given x coordinate and the
// least significant bit of y.
func (c *Curve) Decompress(x *big.Int, ylsb uint) (*big.Int, *big.Int, error) {
	if x == nil || !c.inField(x) {
		return nil, nil, errors.New("x coordinate is out of field range")
	}
	y := c.sc.GetYCoordinate(x)
	if y == nil {
		return nil, nil, errors.New("x is not a coordinate of any curve point")
	}
	if y.Bit(0) != ylsb&0x1 {
		y.Sub(c.params.P, y)
	}
	if !c.IsOnCurve(x, y) {
		return nil, nil, errors.New("compressed (x, ylsb) not on curve")
	}
	return new(big.Int).Set(x), y, nil
}

// Verify checks the signature (r, s) of the message hash e made by the key
// (x, y). Keys are identified by x alone, so either y is accepted. The hash
// must be in (0, 2^251).
func (c *Curve) Verify(e, r, s, x, y *big.Int) bool {
	if e == nil || r == nil || s == nil || x == nil || y == nil {
		return false
	}
	return c.sc.Verify(e, r, s, x, y)
}

// PedersenHash returns the Pedersen hash of two field elements.
func (c *Curve) PedersenHash(a, b *big.Int) (*big.Int, error) {
	return c.sc.PedersenHash([]*big.Int{a, b})
}

// HashOnElements folds elems with PedersenHash starting from zero and then
// hashes the result with the number of elements.
func (c *Curve) HashOnElements(elems []*big.Int) (*big.Int, error) {
	in := make([]*big.Int, len(elems), len(elems)+1)
	copy(in, elems)
	return c.sc.ComputeHashOnElements(in)
}

func (c *Curve) inField(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(c.params.P) < 0
}

func isInfinity(x, y *big.Int) bool {
	return x == nil || y == nil || (x.Sign() == 0 && y.Sign() == 0)
}

func clone(x, y *big.Int) (*big.Int, *big.Int) {
	if x == nil || y == nil {
		return new(big.Int), new(big.Int)
	}
	return new(big.Int).Set(x), new(big.Int).Set(y)
}
