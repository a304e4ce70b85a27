package result

import (
	"fmt"
)

type (
	// Receipt is a get_transaction_receipt response, it's also embedded into
	// blocks.
	Receipt struct {
		Status                Status              `json:"status,omitempty"`
		BlockHash             string              `json:"block_hash,omitempty"`
		BlockNumber           *uint64             `json:"block_number,omitempty"`
		TransactionIndex      uint64              `json:"transaction_index"`
		TransactionHash       string              `json:"transaction_hash"`
		L2ToL1Messages        []L2ToL1Message     `json:"l2_to_l1_messages"`
		L1ToL2ConsumedMessage *L1ToL2Message      `json:"l1_to_l2_consumed_message,omitempty"`
		ActualFee             string              `json:"actual_fee,omitempty"`
		Events                []Event             `json:"events"`
		ExecutionResources    *ExecutionResources `json:"execution_resources"`
	}

	// L2ToL1Message is a message sent to L1.
	L2ToL1Message struct {
		FromAddress string   `json:"from_address"`
		ToAddress   string   `json:"to_address"`
		Payload     []string `json:"payload"`
	}

	// L1ToL2Message is a message consumed from L1.
	L1ToL2Message struct {
		FromAddress string   `json:"from_address"`
		ToAddress   string   `json:"to_address"`
		Selector    string   `json:"selector"`
		Payload     []string `json:"payload"`
		Nonce       string   `json:"nonce"`
	}

	// Event is an event emitted during transaction execution.
	Event struct {
		FromAddress string   `json:"from_address"`
		Keys        []string `json:"keys"`
		Data        []string `json:"data"`
	}

	// ExecutionResources describes resources consumed by the transaction.
	// Builtin counters are keyed by builtin name.
	ExecutionResources struct {
		NSteps                 uint64            `json:"n_steps"`
		BuiltinInstanceCounter map[string]uint64 `json:"builtin_instance_counter"`
		NMemoryHoles           uint64            `json:"n_memory_holes"`
	}
)

// Validate implements the Validator interface.
func (r *Receipt) Validate() error {
	if r.Status != "" {
		if err := checkStatus("status", r.Status); err != nil {
			return err
		}
	}
	if r.BlockHash != "" {
		if err := checkHash("block_hash", r.BlockHash); err != nil {
			return err
		}
	}
	if err := checkHash("transaction_hash", r.TransactionHash); err != nil {
		return err
	}
	if r.L2ToL1Messages == nil {
		return fmt.Errorf("l2_to_l1_messages is required")
	}
	for i, m := range r.L2ToL1Messages {
		if err := checkArray("payload", m.Payload); err != nil {
			return fmt.Errorf("l2_to_l1_messages[%d]: %w", i, err)
		}
	}
	if r.Events == nil {
		return fmt.Errorf("events is required")
	}
	for i, e := range r.Events {
		if err := checkArray("keys", e.Keys); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
		if err := checkArray("data", e.Data); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
	}
	if r.ExecutionResources == nil {
		return fmt.Errorf("execution_resources is required")
	}
	if r.ExecutionResources.BuiltinInstanceCounter == nil {
		return fmt.Errorf("execution_resources: builtin_instance_counter is required")
	}
	return nil
}
