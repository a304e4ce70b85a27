package result

import (
	"fmt"
)

// Block is a get_block response.
type Block struct {
	BlockHash           string        `json:"block_hash"`
	ParentBlockHash     string        `json:"parent_block_hash"`
	BlockNumber         uint64        `json:"block_number"`
	StateRoot           string        `json:"state_root"`
	Status              Status        `json:"status"`
	Timestamp           uint64        `json:"timestamp"`
	Transactions        []Transaction `json:"transactions"`
	TransactionReceipts []Receipt     `json:"transaction_receipts"`
}

// Validate implements the Validator interface.
func (b *Block) Validate() error {
	if err := checkHash("block_hash", b.BlockHash); err != nil {
		return err
	}
	if err := checkHash("parent_block_hash", b.ParentBlockHash); err != nil {
		return err
	}
	if err := checkStatus("status", b.Status); err != nil {
		return err
	}
	if b.Transactions == nil {
		return fmt.Errorf("transactions is required")
	}
	if b.TransactionReceipts == nil {
		return fmt.Errorf("transaction_receipts is required")
	}
	for i := range b.Transactions {
		if err := b.Transactions[i].Validate(); err != nil {
			return fmt.Errorf("transactions[%d]: %w", i, err)
		}
	}
	for i := range b.TransactionReceipts {
		if err := b.TransactionReceipts[i].Validate(); err != nil {
			return fmt.Errorf("transaction_receipts[%d]: %w", i, err)
		}
	}
	return nil
}

// BlockHash is a get_block_hash_by_id response.
type BlockHash string

// Validate implements the Validator interface.
func (h *BlockHash) Validate() error {
	return checkHash("block hash", string(*h))
}

// ID is a response of get_block_id_by_hash and get_transaction_id_by_hash.
type ID uint64
