/*
Package transaction builds transactions for the gateway: the canonical
multicall hash an account signs, the __execute__ calldata and the JSON
payloads of invoke, call and deploy requests.
*/
package transaction

import (
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
)

// CallParameters is a single contract call of a multicall batch. Calldata
// entries are decimal or 0x-prefixed hex strings.
type CallParameters struct {
	To           string   `json:"contractAddress"`
	FunctionName string   `json:"entrypoint"`
	Calldata     []string `json:"calldata,omitempty"`
}

// CallDescriptor describes one call inside the flattened calldata: target,
// selector and the slice of shared calldata it owns.
type CallDescriptor struct {
	To         felt.Felt
	Selector   felt.Felt
	DataOffset felt.Felt
	DataLen    felt.Felt
}

// Args are the arguments of the account __execute__ entry point.
type Args struct {
	CallArray []CallDescriptor
	Calldata  []felt.Felt
	Nonce     felt.Felt
}

// Flatten returns the __execute__ calldata: call count, descriptors,
// calldata length, calldata and nonce.
func (a Args) Flatten() []felt.Felt {
	res := make([]felt.Felt, 0, 3+4*len(a.CallArray)+len(a.Calldata))
	res = append(res, felt.FromUint64(uint64(len(a.CallArray))))
	for _, d := range a.CallArray {
		res = append(res, d.To, d.Selector, d.DataOffset, d.DataLen)
	}
	res = append(res, felt.FromUint64(uint64(len(a.Calldata))))
	res = append(res, a.Calldata...)
	return append(res, a.Nonce)
}
