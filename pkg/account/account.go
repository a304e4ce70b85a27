/*
Package account implements contract interaction through an account contract.
Calls are bundled into a multicall, its hash is signed by the account owner
and the result is sent to the account's execution entry point.
*/
package account

import (
	"context"
	"math/big"

	"github.com/starkyproject/starky-go/pkg/transaction"
)

// Account is an account contract able to sign multicalls.
type Account interface {
	// Address returns the account contract address.
	Address() string
	// Signatures signs the multicall hash.
	Signatures(hash string) (transaction.Signature, error)
	// Nonce returns the current account nonce.
	Nonce(ctx context.Context) (*big.Int, error)
	// ExecutionEntryPoint returns the name of the function executing
	// multicalls.
	ExecutionEntryPoint() string
}
