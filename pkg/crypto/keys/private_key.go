/*
Package keys implements STARK curve key material: private key generation,
public key derivation, signing and signature verification.
*/
package keys

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/nspcc-dev/rfc6979"
	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/errs"
)

// DefaultKeyLength is the number of random hex digits used for new private
// keys.
const DefaultKeyLength = 63

// keyHexWidth is the minimal number of hex digits in a private key string.
const keyHexWidth = 64

const hexDigits = "0123456789abcdef"

// maxHashBits is the maximum bit length of a signed message hash.
const maxHashBits = 251

var curveOrder = curve.NewStark().Params().N

// PrivateKey represents a STARK private key and provides a high level API
// around ecdsa.PrivateKey.
type PrivateKey struct {
	ecdsa.PrivateKey
	c *curve.Curve
}

// CreatePrivateKey returns a random private key made of length hex digits
// (DefaultKeyLength if length isn't positive) as a 0x-prefixed string of at
// least 64 hex digits. Zero is never returned and for keys not wider than the
// default length the value is always below the curve order.
func CreatePrivateKey(length int) (string, error) {
	if length <= 0 {
		length = DefaultKeyLength
	}
	var (
		buf   = make([]byte, length)
		rnd   = make([]byte, length)
		k     = new(big.Int)
		bound = length <= DefaultKeyLength
	)
	for {
		if _, err := rand.Read(rnd); err != nil {
			return "", fmt.Errorf("failed to read random data: %w", err)
		}
		for i := range rnd {
			buf[i] = hexDigits[rnd[i]&0x0f]
		}
		k.SetString(string(buf), 16)
		if new(big.Int).Mod(k, curveOrder).Sign() == 0 {
			continue
		}
		if bound && k.Cmp(curveOrder) >= 0 {
			continue
		}
		return formatPrivateKey(k), nil
	}
}

func formatPrivateKey(k *big.Int) string {
	h := k.Text(16)
	if len(h) < keyHexWidth {
		h = strings.Repeat("0", keyHexWidth-len(h)) + h
	}
	return "0x" + h
}

// NewPrivateKey creates a new random private key on curve c.
func NewPrivateKey(c *curve.Curve) (*PrivateKey, error) {
	s, err := CreatePrivateKey(DefaultKeyLength)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyFromHex(c, s)
}

// NewPrivateKeyFromHex returns a PrivateKey created from the given hex string
// with an optional 0x prefix. The scalar is reduced modulo the curve order,
// *errs.KeyDerivationError is returned for invalid hex and for keys that are
// zero modulo the order.
func NewPrivateKeyFromHex(c *curve.Curve, str string) (*PrivateKey, error) {
	s := felt.RemoveHexPrefix(str)
	if s == "" {
		return nil, &errs.KeyDerivationError{Key: str, Err: errors.New("empty key")}
	}
	d, ok := new(big.Int).SetString(s, 16)
	if !ok || s[0] == '+' || s[0] == '-' {
		return nil, &errs.KeyDerivationError{Key: str, Err: errors.New("invalid hex")}
	}
	d.Mod(d, c.Params().N)
	if d.Sign() == 0 {
		return nil, &errs.KeyDerivationError{Key: str, Err: errors.New("zero scalar")}
	}
	x, y := c.ScalarBaseMult(d.Bytes())
	return &PrivateKey{
		PrivateKey: ecdsa.PrivateKey{
			PublicKey: ecdsa.PublicKey{
				Curve: c,
				X:     x,
				Y:     y,
			},
			D: d,
		},
		c: c,
	}, nil
}

// PublicKey derives the public key from the private key.
func (p *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		c: p.c,
	}
}

// SignHash signs the given message hash (hex with or without 0x) using
// deterministic RFC 6979 nonces. The hash is normalized with FixMessage
// first, it must be in (0, 2^251) like any hash that can be verified.
func (p *PrivateKey) SignHash(msgHash string) (r, s *big.Int, err error) {
	digest, err := messageBytes(FixMessage(msgHash))
	if err != nil {
		return nil, nil, errs.NewValidationError("invalid message hash %q", msgHash)
	}
	if e := hashToInt(digest, p.c.Params().N); e.Sign() == 0 || e.BitLen() > maxHashBits {
		return nil, nil, errs.NewValidationError("message hash %s is out of signing range", msgHash)
	}
	r, s = rfc6979.SignECDSA(&p.PrivateKey, digest, sha256.New)
	return r, s, nil
}

// String returns 0x-prefixed hex representation of the key (64 hex digits).
func (p *PrivateKey) String() string {
	return formatPrivateKey(p.D)
}
