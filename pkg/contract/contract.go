/*
Package contract provides a Contract bound to an address that calls and
invokes its functions directly (without going through an account) and a
Factory deploying new contracts.
*/
package contract

import (
	"context"

	"github.com/starkyproject/starky-go/pkg/gateway/result"
	"github.com/starkyproject/starky-go/pkg/transaction"
)

type (
	// Gateway is the transport contracts use, provider.Provider implements
	// it.
	Gateway interface {
		Call(ctx context.Context, payload *transaction.InvokeFunction) ([]string, error)
		AddTransaction(ctx context.Context, tx *transaction.InvokeFunction) (*result.AddTransaction, error)
		EstimateFee(ctx context.Context, tx *transaction.InvokeFunction) (*result.Fee, error)
	}

	// Interactor sends function calls to some contract. Signatures are
	// passed as is, nothing is signed by it.
	Interactor interface {
		Call(ctx context.Context, function string, calldata []string, sig transaction.Signature) ([]string, error)
		Invoke(ctx context.Context, function string, calldata []string, sig transaction.Signature, opts transaction.CallOptions) (*result.AddTransaction, error)
		EstimateFee(ctx context.Context, function string, calldata []string, sig transaction.Signature) (*result.Fee, error)
	}
)

// Contract is a deployed contract. It's immutable, Attach returns a new one.
type Contract struct {
	address string
	abi     ABI
	gw      Gateway
}

var _ Interactor = (*Contract)(nil)

// New returns a Contract at the given address.
func New(address string, abi ABI, gw Gateway) *Contract {
	return &Contract{
		address: address,
		abi:     abi,
		gw:      gw,
	}
}

// Attach returns a contract with the same ABI and gateway at another
// address.
func (c *Contract) Attach(address string) *Contract {
	return New(address, c.abi, c.gw)
}

// Address returns the contract address.
func (c *Contract) Address() string {
	return c.address
}

// ABI returns the contract ABI, it can be nil.
func (c *Contract) ABI() ABI {
	return c.abi
}

// Call calls a view function and returns its raw output.
func (c *Contract) Call(ctx context.Context, function string, calldata []string, sig transaction.Signature) ([]string, error) {
	payload, err := transaction.BuildCallPayload(c.address, function, calldata, sig)
	if err != nil {
		return nil, err
	}
	return c.gw.Call(ctx, payload)
}

// Invoke sends an invoke transaction for function.
func (c *Contract) Invoke(ctx context.Context, function string, calldata []string, sig transaction.Signature, opts transaction.CallOptions) (*result.AddTransaction, error) {
	tx, err := transaction.NewInvoke(c.address, function, calldata, sig, opts)
	if err != nil {
		return nil, err
	}
	return c.gw.AddTransaction(ctx, tx)
}

// EstimateFee estimates the fee of invoking function.
func (c *Contract) EstimateFee(ctx context.Context, function string, calldata []string, sig transaction.Signature) (*result.Fee, error) {
	tx, err := transaction.NewInvoke(c.address, function, calldata, sig, transaction.CallOptions{})
	if err != nil {
		return nil, err
	}
	return c.gw.EstimateFee(ctx, tx)
}
