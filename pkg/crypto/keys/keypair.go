package keys

import (
	"github.com/starkyproject/starky-go/pkg/crypto/curve"
)

// KeyPair is a freshly generated key along with its string forms.
type KeyPair struct {
	PrivateKey string
	PublicKey  string
	Key        *PrivateKey
}

// CreateKeyPair generates a new random key pair on curve c.
func CreateKeyPair(c *curve.Curve) (*KeyPair, error) {
	k, err := NewPrivateKey(c)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: k.String(),
		PublicKey:  k.PublicKey().String(),
		Key:        k,
	}, nil
}

// DerivePublicKey returns the public key string for the given private key
// hex string.
func DerivePublicKey(c *curve.Curve, privHex string) (string, error) {
	k, err := NewPrivateKeyFromHex(c, privHex)
	if err != nil {
		return "", err
	}
	return k.PublicKey().String(), nil
}
