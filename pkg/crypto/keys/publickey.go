package keys

import (
	"math/big"

	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
)

// publicKeyAlign is the hex digit alignment of public key strings.
const publicKeyAlign = 8

// PublicKey represents a public key and provides a high level API around the
// X/Y point. Keys are identified by X alone, Verify accepts both Y
// candidates.
type PublicKey struct {
	X *big.Int
	Y *big.Int

	c     *curve.Curve
	xOnly bool
}

// NewPublicKeyFromString restores a public key from its hex (x coordinate)
// representation.
func NewPublicKeyFromString(c *curve.Curve, s string) (*PublicKey, error) {
	x, err := felt.ParseBig(felt.AddHexPrefix(s))
	if err != nil {
		return nil, err
	}
	x, y, err := c.Decompress(x, 0)
	if err != nil {
		return nil, err
	}
	return &PublicKey{X: x, Y: y, c: c, xOnly: true}, nil
}

// String returns 0x-prefixed hex x coordinate left-padded with zeroes to a
// multiple of 8 digits.
func (p *PublicKey) String() string {
	return "0x" + felt.SanitizeBytes(p.X.Text(16), publicKeyAlign, '0')
}

// Equal returns true in case public keys are equal.
func (p *PublicKey) Equal(key *PublicKey) bool {
	if p.xOnly || key.xOnly {
		return p.X.Cmp(key.X) == 0
	}
	return p.X.Cmp(key.X) == 0 && p.Y.Cmp(key.Y) == 0
}

// Verify checks signature (r, s) of the message hash given as a hex string.
// The hash goes through the same FixMessage normalization signing does.
func (p *PublicKey) Verify(msgHash string, r, s *big.Int) bool {
	digest, err := messageBytes(FixMessage(msgHash))
	if err != nil {
		return false
	}
	return p.c.Verify(hashToInt(digest, p.c.Params().N), r, s, p.X, p.Y)
}

// hashToInt converts the digest to an integer the same way signing does,
// leaving only the top bits that fit into the order.
func hashToInt(hash []byte, n *big.Int) *big.Int {
	orderBits := n.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	excess := len(hash)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}
