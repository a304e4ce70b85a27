package account

import (
	"context"
	"math/big"

	"github.com/starkyproject/starky-go/pkg/signer"
	"github.com/starkyproject/starky-go/pkg/transaction"
)

// ExecuteEntryPoint is the multicall entry point of Argent accounts.
const ExecuteEntryPoint = "__execute__"

// NonceGetter returns the nonce of an account, provider.Provider implements
// it.
type NonceGetter interface {
	GetNonce(ctx context.Context, accountAddress string) (*big.Int, error)
}

// Argent is an Argent account contract controlled by a single signer.
type Argent struct {
	address string
	signer  *signer.Signer
	nonces  NonceGetter
}

var _ Account = (*Argent)(nil)

// NewArgent returns an Argent account at address.
func NewArgent(address string, s *signer.Signer, nonces NonceGetter) *Argent {
	return &Argent{
		address: address,
		signer:  s,
		nonces:  nonces,
	}
}

// Address implements the Account interface.
func (a *Argent) Address() string {
	return a.address
}

// Signer returns the account owner.
func (a *Argent) Signer() *signer.Signer {
	return a.signer
}

// Signatures implements the Account interface.
func (a *Argent) Signatures(hash string) (transaction.Signature, error) {
	return a.signer.Sign(hash)
}

// Nonce implements the Account interface.
func (a *Argent) Nonce(ctx context.Context) (*big.Int, error) {
	return a.nonces.GetNonce(ctx, a.address)
}

// ExecutionEntryPoint implements the Account interface.
func (a *Argent) ExecutionEntryPoint() string {
	return ExecuteEntryPoint
}
