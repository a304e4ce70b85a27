package transaction

import (
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/errs"
	"github.com/starkyproject/starky-go/pkg/selector"
)

// InvokeFunctionType is the gateway type tag of invoke transactions.
const InvokeFunctionType = "INVOKE_FUNCTION"

// Signature is a transaction signature, [r, s] in decimal form for STARK keys.
type Signature []string

// InvokeFunction is the JSON payload of invoke transactions, calls and fee
// estimations. Field order matches the gateway format.
type InvokeFunction struct {
	Type               string    `json:"type,omitempty"`
	ContractAddress    string    `json:"contract_address"`
	EntryPointSelector string    `json:"entry_point_selector"`
	Calldata           []string  `json:"calldata"`
	Signature          Signature `json:"signature"`
	MaxFee             string    `json:"max_fee,omitempty"`
}

// BuildInvokePayload creates an invoke transaction of entryPoint at
// contractAddress with the flattened args as calldata.
func BuildInvokePayload(contractAddress string, entryPoint string, args Args, sig Signature, opts CallOptions) (*InvokeFunction, error) {
	return NewInvoke(contractAddress, entryPoint, felt.Strings(args.Flatten()), sig, opts)
}

// NewInvoke creates an invoke transaction of entryPoint at contractAddress.
// Calldata is given as decimal or hex strings and is normalized to decimal,
// a non-empty max fee is encoded as hex.
func NewInvoke(contractAddress string, entryPoint string, calldata []string, sig Signature, opts CallOptions) (*InvokeFunction, error) {
	tx, err := BuildCallPayload(contractAddress, entryPoint, calldata, sig)
	if err != nil {
		return nil, err
	}
	tx.Type = InvokeFunctionType
	if opts.MaxFee != "" {
		fee, err := opts.ParseMaxFee()
		if err != nil {
			return nil, err
		}
		tx.MaxFee = "0x" + fee.Text(16)
	}
	return tx, nil
}

// BuildCallPayload creates a call of entryPoint at contractAddress with
// calldata given as decimal or hex strings. Calldata is normalized to decimal.
// Calls carry no type tag and no fee, the signature may be empty.
func BuildCallPayload(contractAddress string, entryPoint string, calldata []string, sig Signature) (*InvokeFunction, error) {
	addr, err := felt.HexAddress(contractAddress)
	if err != nil {
		return nil, errs.NewValidationError("invalid contract address %q", contractAddress)
	}
	data := make([]string, len(calldata))
	for i, s := range calldata {
		v, err := felt.Parse(s)
		if err != nil {
			return nil, errs.NewValidationError("invalid calldata[%d] %q", i, s)
		}
		data[i] = v.String()
	}
	return &InvokeFunction{
		ContractAddress:    addr,
		EntryPointSelector: selector.FromName(entryPoint).Hex,
		Calldata:           data,
		Signature:          nonNil(sig),
	}, nil
}

func nonNil(sig Signature) Signature {
	if sig == nil {
		return Signature{}
	}
	return sig
}
