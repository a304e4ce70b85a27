package result

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Code is a get_code response.
type Code struct {
	Bytecode []string          `json:"bytecode"`
	ABI      []json.RawMessage `json:"abi"`
}

// Validate implements the Validator interface.
func (c *Code) Validate() error {
	if err := checkArray("bytecode", c.Bytecode); err != nil {
		return err
	}
	if c.ABI == nil {
		return fmt.Errorf("abi is required")
	}
	return nil
}

// ContractAddresses is a get_contract_addresses response.
type ContractAddresses struct {
	Starknet             string `json:"Starknet"`
	GpsStatementVerifier string `json:"GpsStatementVerifier"`
}

// Validate implements the Validator interface.
func (c *ContractAddresses) Validate() error {
	if err := checkRequired("Starknet", c.Starknet); err != nil {
		return err
	}
	return checkRequired("GpsStatementVerifier", c.GpsStatementVerifier)
}

// Storage is a get_storage_at response, the hex value of the slot.
type Storage string

// CallResult is a call_contract response.
type CallResult struct {
	Result []string `json:"result"`
}

// Validate implements the Validator interface.
func (c *CallResult) Validate() error {
	return checkArray("result", c.Result)
}

// Fee is an estimate_fee response.
type Fee struct {
	Amount *big.Int `json:"amount"`
	Unit   string   `json:"unit"`
}

// Validate implements the Validator interface.
func (f *Fee) Validate() error {
	if f.Amount == nil {
		return fmt.Errorf("amount is required")
	}
	return checkRequired("unit", f.Unit)
}
