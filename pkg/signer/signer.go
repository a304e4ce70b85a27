/*
Package signer provides a Signer owning a STARK key pair for its lifetime.
*/
package signer

import (
	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/crypto/keys"
	"github.com/starkyproject/starky-go/pkg/transaction"
)

// Signer signs message hashes with its private key. It is immutable and safe
// for concurrent use.
type Signer struct {
	PrivateKey string
	PublicKey  string

	key *keys.PrivateKey
}

// New creates a Signer from the given private key hex string.
func New(c *curve.Curve, privateKey string) (*Signer, error) {
	k, err := keys.NewPrivateKeyFromHex(c, privateKey)
	if err != nil {
		return nil, err
	}
	return fromKey(k), nil
}

// Create creates a Signer with a new random key.
func Create(c *curve.Curve) (*Signer, error) {
	k, err := keys.NewPrivateKey(c)
	if err != nil {
		return nil, err
	}
	return fromKey(k), nil
}

func fromKey(k *keys.PrivateKey) *Signer {
	return &Signer{
		PrivateKey: k.String(),
		PublicKey:  k.PublicKey().String(),
		key:        k,
	}
}

// Sign signs the message hash (hex) returning [r, s] as decimal strings.
func (s *Signer) Sign(messageHash string) (transaction.Signature, error) {
	r, ss, err := s.key.SignHash(messageHash)
	if err != nil {
		return nil, err
	}
	return transaction.Signature{r.String(), ss.String()}, nil
}

// Verify checks the signature of messageHash made by this signer.
func (s *Signer) Verify(messageHash string, sig transaction.Signature) bool {
	r, ss, ok := parseSignature(sig)
	if !ok {
		return false
	}
	return s.key.PublicKey().Verify(messageHash, r, ss)
}
