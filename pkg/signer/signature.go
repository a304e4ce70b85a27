package signer

import (
	"math/big"

	"github.com/starkyproject/starky-go/pkg/transaction"
)

func parseSignature(sig transaction.Signature) (r, s *big.Int, ok bool) {
	if len(sig) != 2 {
		return nil, nil, false
	}
	r, ok = new(big.Int).SetString(sig[0], 10)
	if !ok {
		return nil, nil, false
	}
	s, ok = new(big.Int).SetString(sig[1], 10)
	if !ok {
		return nil, nil, false
	}
	return r, s, true
}
