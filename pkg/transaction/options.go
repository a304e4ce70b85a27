package transaction

import (
	"math/big"

	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/errs"
)

// SigningContext carries per-transaction signing parameters. A nil Nonce
// means the nonce is fetched from the account.
type SigningContext struct {
	Nonce *big.Int
}

// CallOptions are the options of a state-changing call.
type CallOptions struct {
	// MaxFee is a decimal or 0x-prefixed hex string, empty means zero.
	MaxFee string
}

// ParseMaxFee returns the max fee value, *errs.ValidationError is returned
// for anything that's not a non-negative integer.
func (o CallOptions) ParseMaxFee() (*big.Int, error) {
	if o.MaxFee == "" {
		return big.NewInt(0), nil
	}
	v, err := felt.ParseBig(o.MaxFee)
	if err != nil {
		return nil, errs.NewValidationError("maxFee must be a positive integer")
	}
	return v, nil
}
