package result

import (
	"fmt"
)

// Transaction types.
const (
	InvokeFunctionType = "INVOKE_FUNCTION"
	DeployType         = "DEPLOY"
)

// contractAddressMinLength is the minimal length of transaction contract
// addresses.
const contractAddressMinLength = 63

// Transaction is either an invoke or a deploy transaction, Type tells which
// fields are set.
type Transaction struct {
	TransactionHash string `json:"transaction_hash"`
	ContractAddress string `json:"contract_address"`
	Type            string `json:"type"`

	EntryPointSelector string   `json:"entry_point_selector,omitempty"`
	EntryPointType     string   `json:"entry_point_type,omitempty"`
	Calldata           []string `json:"calldata,omitempty"`
	Signature          []string `json:"signature,omitempty"`
	MaxFee             string   `json:"max_fee,omitempty"`

	ContractAddressSalt string   `json:"contract_address_salt,omitempty"`
	ConstructorCalldata []string `json:"constructor_calldata,omitempty"`
	ClassHash           string   `json:"class_hash,omitempty"`
}

// Validate implements the Validator interface.
func (t *Transaction) Validate() error {
	if err := checkHash("transaction_hash", t.TransactionHash); err != nil {
		return err
	}
	if len(t.ContractAddress) < contractAddressMinLength {
		return fmt.Errorf("contract_address: expected at least %d characters, got %d", contractAddressMinLength, len(t.ContractAddress))
	}
	switch t.Type {
	case InvokeFunctionType:
		if t.ContractAddressSalt != "" || t.ConstructorCalldata != nil || t.ClassHash != "" {
			return fmt.Errorf("unexpected deploy fields in %s transaction", t.Type)
		}
		for _, err := range []error{
			checkRequired("entry_point_selector", t.EntryPointSelector),
			checkRequired("entry_point_type", t.EntryPointType),
			checkArray("calldata", t.Calldata),
			checkArray("signature", t.Signature),
			checkRequired("max_fee", t.MaxFee),
		} {
			if err != nil {
				return err
			}
		}
	case DeployType:
		if t.EntryPointSelector != "" || t.EntryPointType != "" || t.Calldata != nil || t.Signature != nil || t.MaxFee != "" {
			return fmt.Errorf("unexpected invoke fields in %s transaction", t.Type)
		}
		if err := checkRequired("contract_address_salt", t.ContractAddressSalt); err != nil {
			return err
		}
		return checkArray("constructor_calldata", t.ConstructorCalldata)
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return nil
}

// TransactionInfo is a get_transaction response.
type TransactionInfo struct {
	Status           Status      `json:"status"`
	BlockHash        string      `json:"block_hash"`
	BlockNumber      uint64      `json:"block_number"`
	TransactionIndex uint64      `json:"transaction_index"`
	Transaction      Transaction `json:"transaction"`
}

// Validate implements the Validator interface.
func (t *TransactionInfo) Validate() error {
	if err := checkStatus("status", t.Status); err != nil {
		return err
	}
	if err := checkHash("block_hash", t.BlockHash); err != nil {
		return err
	}
	if err := t.Transaction.Validate(); err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	return nil
}

// TransactionStatus is a get_transaction_status response.
type TransactionStatus struct {
	TxStatus  Status `json:"tx_status"`
	BlockHash string `json:"block_hash"`
}

// Validate implements the Validator interface.
func (t *TransactionStatus) Validate() error {
	if err := checkStatus("tx_status", t.TxStatus); err != nil {
		return err
	}
	return checkHash("block_hash", t.BlockHash)
}

// TransactionHash is a get_transaction_hash_by_id response.
type TransactionHash string

// Validate implements the Validator interface.
func (h *TransactionHash) Validate() error {
	return checkHash("transaction hash", string(*h))
}

// AddTransaction is an add_transaction response.
type AddTransaction struct {
	Code            string `json:"code"`
	TransactionHash string `json:"transaction_hash"`
	Address         string `json:"address,omitempty"`
}

// Validate implements the Validator interface.
func (a *AddTransaction) Validate() error {
	if err := checkRequired("code", a.Code); err != nil {
		return err
	}
	return checkHash("transaction_hash", a.TransactionHash)
}
