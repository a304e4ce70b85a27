/*
Package gateway describes the closed set of sequencer gateway operations and
turns them into HTTP requests.
*/
package gateway

import (
	"github.com/starkyproject/starky-go/pkg/transaction"
)

// Operation is one of the gateway operations defined in this package. The
// set is closed, operations can't be implemented outside of it.
type Operation interface {
	// Name returns the operation name used in logs and metrics.
	Name() string
	isOperation()
}

type (
	// GetLatestBlock requests the latest block.
	GetLatestBlock struct{}
	// GetBlockByNumber requests a block by its number.
	GetBlockByNumber struct{ BlockNumber int64 }
	// GetBlockByHash requests a block by its hash.
	GetBlockByHash struct{ BlockHash string }
	// GetBlockHashByID requests a block hash by block ID.
	GetBlockHashByID struct{ BlockID int64 }
	// GetBlockIDByHash requests a block ID by block hash.
	GetBlockIDByHash struct{ BlockHash string }
	// GetTransaction requests a transaction.
	GetTransaction struct{ TransactionHash string }
	// GetTransactionStatus requests a transaction status.
	GetTransactionStatus struct{ TransactionHash string }
	// GetTransactionReceipt requests a transaction receipt.
	GetTransactionReceipt struct{ TransactionHash string }
	// GetTransactionHashByID requests a transaction hash by transaction ID.
	GetTransactionHashByID struct{ TransactionID int64 }
	// GetTransactionIDByHash requests a transaction ID by transaction hash.
	GetTransactionIDByHash struct{ TransactionHash string }
	// GetCode requests contract code and ABI, decimal addresses are allowed.
	GetCode struct{ ContractAddress string }
	// GetContractAddresses requests L1 contract addresses.
	GetContractAddresses struct{}
	// GetStorageAt requests a storage slot value, Key is a non-negative
	// integer in decimal or hex.
	GetStorageAt struct {
		ContractAddress string
		Key             string
	}
	// GetNonce calls get_nonce of an account contract.
	GetNonce struct{ Payload *transaction.InvokeFunction }
	// CallContract calls a contract view function.
	CallContract struct{ Payload *transaction.InvokeFunction }
	// EstimateFee estimates invoke transaction fee.
	EstimateFee struct{ Payload *transaction.InvokeFunction }
	// AddTransaction submits an invoke or deploy transaction.
	AddTransaction struct{ Payload Transaction }
)

// Transaction is a payload accepted by AddTransaction.
type Transaction interface {
	isTransaction()
}

// InvokeTransaction wraps an invoke payload for AddTransaction.
type InvokeTransaction struct{ *transaction.InvokeFunction }

// DeployTransaction wraps a deploy payload for AddTransaction.
type DeployTransaction struct{ *transaction.Deploy }

func (InvokeTransaction) isTransaction() {}
func (DeployTransaction) isTransaction() {}

func (GetLatestBlock) isOperation()         {}
func (GetBlockByNumber) isOperation()       {}
func (GetBlockByHash) isOperation()         {}
func (GetBlockHashByID) isOperation()       {}
func (GetBlockIDByHash) isOperation()       {}
func (GetTransaction) isOperation()         {}
func (GetTransactionStatus) isOperation()   {}
func (GetTransactionReceipt) isOperation()  {}
func (GetTransactionHashByID) isOperation() {}
func (GetTransactionIDByHash) isOperation() {}
func (GetCode) isOperation()                {}
func (GetContractAddresses) isOperation()   {}
func (GetStorageAt) isOperation()           {}
func (GetNonce) isOperation()               {}
func (CallContract) isOperation()           {}
func (EstimateFee) isOperation()            {}
func (AddTransaction) isOperation()         {}

// Name implements the Operation interface.
func (GetLatestBlock) Name() string { return "get_latest_block" }

// Name implements the Operation interface.
func (GetBlockByNumber) Name() string { return "get_block_by_number" }

// Name implements the Operation interface.
func (GetBlockByHash) Name() string { return "get_block_by_hash" }

// Name implements the Operation interface.
func (GetBlockHashByID) Name() string { return "get_block_hash_by_id" }

// Name implements the Operation interface.
func (GetBlockIDByHash) Name() string { return "get_block_id_by_hash" }

// Name implements the Operation interface.
func (GetTransaction) Name() string { return "get_transaction_by_hash" }

// Name implements the Operation interface.
func (GetTransactionStatus) Name() string { return "get_transaction_status" }

// Name implements the Operation interface.
func (GetTransactionReceipt) Name() string { return "get_transaction_receipt" }

// Name implements the Operation interface.
func (GetTransactionHashByID) Name() string { return "get_transaction_hash_by_id" }

// Name implements the Operation interface.
func (GetTransactionIDByHash) Name() string { return "get_transaction_id_by_hash" }

// Name implements the Operation interface.
func (GetCode) Name() string { return "get_code" }

// Name implements the Operation interface.
func (GetContractAddresses) Name() string { return "get_contract_addresses" }

// Name implements the Operation interface.
func (GetStorageAt) Name() string { return "get_storage_at" }

// Name implements the Operation interface.
func (GetNonce) Name() string { return "get_nonce" }

// Name implements the Operation interface.
func (CallContract) Name() string { return "call_contract" }

// Name implements the Operation interface.
func (EstimateFee) Name() string { return "estimate_fee" }

// Name implements the Operation interface.
func (AddTransaction) Name() string { return "add_transaction" }
