package provider

import (
	"context"
	"fmt"
	"math/big"

	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/errs"
	"github.com/starkyproject/starky-go/pkg/gateway"
	"github.com/starkyproject/starky-go/pkg/gateway/result"
	"github.com/starkyproject/starky-go/pkg/transaction"
)

// NonceEntryPoint is the account entry point returning its current nonce.
const NonceEntryPoint = "get_nonce"

// ContractInteraction describes a single unsigned or presigned contract call.
type ContractInteraction struct {
	ContractAddress string
	FunctionName    string
	Calldata        []string
	Signature       transaction.Signature
}

// GetLatestBlock returns the latest block.
func (p *Provider) GetLatestBlock(ctx context.Context) (*result.Block, error) {
	var resp = new(result.Block)
	if err := p.performRequest(ctx, gateway.GetLatestBlock{}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockByNumber returns a block by its number.
func (p *Provider) GetBlockByNumber(ctx context.Context, blockNumber int64) (*result.Block, error) {
	var resp = new(result.Block)
	if err := p.performRequest(ctx, gateway.GetBlockByNumber{BlockNumber: blockNumber}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockByHash returns a block by its hash.
func (p *Provider) GetBlockByHash(ctx context.Context, blockHash string) (*result.Block, error) {
	var resp = new(result.Block)
	if err := p.performRequest(ctx, gateway.GetBlockByHash{BlockHash: blockHash}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBlockHashByID returns the hash of the block with the given ID.
func (p *Provider) GetBlockHashByID(ctx context.Context, blockID int64) (string, error) {
	var resp result.BlockHash
	if err := p.performRequest(ctx, gateway.GetBlockHashByID{BlockID: blockID}, &resp); err != nil {
		return "", err
	}
	return string(resp), nil
}

// GetBlockIDByHash returns the ID of the block with the given hash.
func (p *Provider) GetBlockIDByHash(ctx context.Context, blockHash string) (uint64, error) {
	var resp result.ID
	if err := p.performRequest(ctx, gateway.GetBlockIDByHash{BlockHash: blockHash}, &resp); err != nil {
		return 0, err
	}
	return uint64(resp), nil
}

// GetTransaction returns a transaction along with its inclusion data.
func (p *Provider) GetTransaction(ctx context.Context, txHash string) (*result.TransactionInfo, error) {
	var resp = new(result.TransactionInfo)
	if err := p.performRequest(ctx, gateway.GetTransaction{TransactionHash: txHash}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTransactionStatus returns the status of a transaction.
func (p *Provider) GetTransactionStatus(ctx context.Context, txHash string) (*result.TransactionStatus, error) {
	var resp = new(result.TransactionStatus)
	if err := p.performRequest(ctx, gateway.GetTransactionStatus{TransactionHash: txHash}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTransactionReceipt returns the receipt of a transaction.
func (p *Provider) GetTransactionReceipt(ctx context.Context, txHash string) (*result.Receipt, error) {
	var resp = new(result.Receipt)
	if err := p.performRequest(ctx, gateway.GetTransactionReceipt{TransactionHash: txHash}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTransactionHashByID returns the hash of the transaction with the given
// ID.
func (p *Provider) GetTransactionHashByID(ctx context.Context, txID int64) (string, error) {
	var resp result.TransactionHash
	if err := p.performRequest(ctx, gateway.GetTransactionHashByID{TransactionID: txID}, &resp); err != nil {
		return "", err
	}
	return string(resp), nil
}

// GetTransactionIDByHash returns the ID of the transaction with the given
// hash.
func (p *Provider) GetTransactionIDByHash(ctx context.Context, txHash string) (uint64, error) {
	var resp result.ID
	if err := p.performRequest(ctx, gateway.GetTransactionIDByHash{TransactionHash: txHash}, &resp); err != nil {
		return 0, err
	}
	return uint64(resp), nil
}

// GetCode returns the bytecode and ABI of a contract. Decimal addresses are
// converted to hex.
func (p *Provider) GetCode(ctx context.Context, contractAddress string) (*result.Code, error) {
	var resp = new(result.Code)
	if err := p.performRequest(ctx, gateway.GetCode{ContractAddress: contractAddress}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetContractAddresses returns addresses of the L1 contracts.
func (p *Provider) GetContractAddresses(ctx context.Context) (*result.ContractAddresses, error) {
	var resp = new(result.ContractAddresses)
	if err := p.performRequest(ctx, gateway.GetContractAddresses{}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetStorageAt returns the value of a contract storage slot. The key is a
// non-negative integer in decimal or hex.
func (p *Provider) GetStorageAt(ctx context.Context, contractAddress string, key string) (string, error) {
	var resp result.Storage
	if err := p.performRequest(ctx, gateway.GetStorageAt{ContractAddress: contractAddress, Key: key}, &resp); err != nil {
		return "", err
	}
	return string(resp), nil
}

// GetNonce returns the current nonce of an account contract.
func (p *Provider) GetNonce(ctx context.Context, accountAddress string) (*big.Int, error) {
	payload, err := transaction.BuildCallPayload(accountAddress, NonceEntryPoint, nil, nil)
	if err != nil {
		return nil, err
	}
	var resp result.CallResult
	if err := p.performRequest(ctx, gateway.GetNonce{Payload: payload}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Result) == 0 {
		return nil, &errs.SchemaError{Operation: gateway.GetNonce{}.Name(), Err: fmt.Errorf("empty result")}
	}
	nonce, err := felt.ParseBig(resp.Result[0])
	if err != nil {
		return nil, &errs.SchemaError{Operation: gateway.GetNonce{}.Name(), Err: err}
	}
	return nonce, nil
}

// CallContract calls a view function and returns its raw output.
func (p *Provider) CallContract(ctx context.Context, c ContractInteraction) ([]string, error) {
	payload, err := transaction.BuildCallPayload(c.ContractAddress, c.FunctionName, c.Calldata, c.Signature)
	if err != nil {
		return nil, err
	}
	return p.Call(ctx, payload)
}

// Call sends a prepared call payload.
func (p *Provider) Call(ctx context.Context, payload *transaction.InvokeFunction) ([]string, error) {
	var resp result.CallResult
	if err := p.performRequest(ctx, gateway.CallContract{Payload: payload}, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// InvokeContract submits an invoke transaction built from c.
func (p *Provider) InvokeContract(ctx context.Context, c ContractInteraction, opts transaction.CallOptions) (*result.AddTransaction, error) {
	payload, err := transaction.NewInvoke(c.ContractAddress, c.FunctionName, c.Calldata, c.Signature, opts)
	if err != nil {
		return nil, err
	}
	return p.AddTransaction(ctx, payload)
}

// AddTransaction submits a prepared invoke transaction.
func (p *Provider) AddTransaction(ctx context.Context, tx *transaction.InvokeFunction) (*result.AddTransaction, error) {
	var resp = new(result.AddTransaction)
	if err := p.performRequest(ctx, gateway.AddTransaction{Payload: gateway.InvokeTransaction{InvokeFunction: tx}}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// EstimateFee estimates the fee of a prepared invoke transaction.
func (p *Provider) EstimateFee(ctx context.Context, tx *transaction.InvokeFunction) (*result.Fee, error) {
	var resp = new(result.Fee)
	if err := p.performRequest(ctx, gateway.EstimateFee{Payload: tx}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeployContract submits a deploy transaction with the given salt.
func (p *Provider) DeployContract(ctx context.Context, salt string, def transaction.ContractDefinition, constructorCalldata []string) (*result.AddTransaction, error) {
	tx, err := transaction.BuildDeployPayload(def, salt, constructorCalldata)
	if err != nil {
		return nil, err
	}
	var resp = new(result.AddTransaction)
	if err := p.performRequest(ctx, gateway.AddTransaction{Payload: gateway.DeployTransaction{Deploy: tx}}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
