package contract

import (
	"context"

	"github.com/starkyproject/starky-go/pkg/errs"
	"github.com/starkyproject/starky-go/pkg/gateway/result"
	"github.com/starkyproject/starky-go/pkg/signer"
	"github.com/starkyproject/starky-go/pkg/transaction"
)

// Deployer is a Gateway that can also deploy contracts.
type Deployer interface {
	Gateway
	DeployContract(ctx context.Context, salt string, def transaction.ContractDefinition, constructorCalldata []string) (*result.AddTransaction, error)
}

// Factory deploys contracts using signer's public key as the address salt.
type Factory struct {
	d      Deployer
	signer *signer.Signer
}

// Deployment is the result of Factory.Deploy.
type Deployment struct {
	Contract        *Contract
	TransactionHash string
}

// NewFactory creates a Factory, s can be nil in which case Deploy fails.
func NewFactory(d Deployer, s *signer.Signer) *Factory {
	return &Factory{d: d, signer: s}
}

// Deploy deploys def and returns the new contract bound to the address
// reported by the gateway.
func (f *Factory) Deploy(ctx context.Context, def transaction.ContractDefinition, constructorCalldata []string) (*Deployment, error) {
	if f.signer == nil {
		return nil, errs.NewValidationError("signer is required to deploy a contract")
	}
	var abi ABI
	if len(def.ABI) != 0 {
		var err error
		abi, err = ParseABI(def.ABI)
		if err != nil {
			return nil, errs.NewValidationError("%s", err)
		}
	}
	res, err := f.d.DeployContract(ctx, f.signer.PublicKey, def, constructorCalldata)
	if err != nil {
		return nil, err
	}
	return &Deployment{
		Contract:        New(res.Address, abi, f.d),
		TransactionHash: res.TransactionHash,
	}, nil
}
