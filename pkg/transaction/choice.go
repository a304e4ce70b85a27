package transaction

import (
	"math/big"
)

// InteractChoice selects how an account multicall is dispatched.
type InteractChoice byte

// Possible interaction choices.
const (
	Call InteractChoice = iota
	Invoke
	EstimateFee
)

// QueryVersion is the transaction version used for hashes that are never
// going to be executed (calls and fee estimations), 2^128 + 0.
var QueryVersion = new(big.Int).Lsh(big.NewInt(1), 128)

// String implements the fmt.Stringer interface.
func (c InteractChoice) String() string {
	switch c {
	case Call:
		return "CALL"
	case Invoke:
		return "INVOKE"
	case EstimateFee:
		return "ESTIMATE_FEE"
	default:
		return "UNKNOWN"
	}
}

// Command returns the name of the contract interaction the choice is
// dispatched to.
func (c InteractChoice) Command() string {
	switch c {
	case Call:
		return "call"
	case Invoke:
		return "invoke"
	case EstimateFee:
		return "estimateFee"
	default:
		return ""
	}
}

// Version returns the transaction version to hash with.
func (c InteractChoice) Version() *big.Int {
	if c == Invoke {
		return big.NewInt(0)
	}
	return new(big.Int).Set(QueryVersion)
}
