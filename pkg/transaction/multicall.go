package transaction

import (
	"math/big"

	"github.com/starkyproject/starky-go/pkg/crypto/hash"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/errs"
	"github.com/starkyproject/starky-go/pkg/selector"
)

// Multicall is the result of assembling a batch of calls: the hash to sign
// and the __execute__ arguments it covers.
type Multicall struct {
	MessageHash felt.Felt
	Args        Args
}

// Builder assembles multicall hashes. It's stateless and safe for concurrent
// use, every call produces a fresh hash.
type Builder struct {
	p *hash.Pedersen
}

// NewBuilder creates a Builder hashing with p.
func NewBuilder(p *hash.Pedersen) *Builder {
	return &Builder{p: p}
}

// Batch is a validated list of calls made by an account. It only lacks the
// nonce, max fee and version to be hashed.
type Batch struct {
	account felt.Felt
	args    Args
}

// NewBatch parses the account address, call targets and calldata, any
// malformed value is reported as *errs.ValidationError. An empty batch is
// valid.
func NewBatch(account string, calls []CallParameters) (*Batch, error) {
	acc, err := felt.Parse(account)
	if err != nil {
		return nil, errs.NewValidationError("invalid account address %q", account)
	}
	args := Args{
		CallArray: make([]CallDescriptor, 0, len(calls)),
	}
	for i, c := range calls {
		to, err := felt.Parse(c.To)
		if err != nil {
			return nil, errs.NewValidationError("calls[%d]: invalid contract address %q", i, c.To)
		}
		sel, err := felt.Parse(selector.FromName(c.FunctionName).Int)
		if err != nil {
			return nil, err
		}
		offset := len(args.Calldata)
		for j, s := range c.Calldata {
			v, err := felt.Parse(s)
			if err != nil {
				return nil, errs.NewValidationError("calls[%d]: invalid calldata[%d] %q", i, j, s)
			}
			args.Calldata = append(args.Calldata, v)
		}
		args.CallArray = append(args.CallArray, CallDescriptor{
			To:         to,
			Selector:   sel,
			DataOffset: felt.FromUint64(uint64(offset)),
			DataLen:    felt.FromUint64(uint64(len(c.Calldata))),
		})
	}
	return &Batch{account: acc, args: args}, nil
}

// BuildMulticallHash computes the message hash of the given calls executed
// by account. The hashed sequence is
//
//	[len(calls), (to, selector, offset, len)..., len(calldata), calldata..., nonce, maxFee, version]
//
// and the message hash is HashOnElements([account, HashOnElements(sequence)]).
// An empty batch is valid.
func (b *Builder) BuildMulticallHash(account string, calls []CallParameters, nonce, maxFee, version *big.Int) (*Multicall, error) {
	batch, err := NewBatch(account, calls)
	if err != nil {
		return nil, err
	}
	return b.BuildHash(batch, nonce, maxFee, version)
}

// BuildHash computes the message hash of the batch, see BuildMulticallHash.
func (b *Builder) BuildHash(batch *Batch, nonce, maxFee, version *big.Int) (*Multicall, error) {
	n, err := bigToFelt("nonce", nonce)
	if err != nil {
		return nil, err
	}
	fee, err := bigToFelt("maxFee", maxFee)
	if err != nil {
		return nil, err
	}
	ver, err := bigToFelt("version", version)
	if err != nil {
		return nil, err
	}

	args := batch.args
	args.Nonce = n
	seq := args.Flatten()
	// Flatten ends with the nonce, the hashed sequence continues with fee
	// and version.
	seq = append(seq, fee, ver)
	inner := b.p.HashOnElements(seq)
	return &Multicall{
		MessageHash: b.p.HashOnElements([]felt.Felt{batch.account, inner}),
		Args:        args,
	}, nil
}

func bigToFelt(name string, v *big.Int) (felt.Felt, error) {
	if v == nil {
		return felt.Felt{}, nil
	}
	f, err := felt.FromBig(v)
	if err != nil {
		return felt.Felt{}, errs.NewValidationError("%s must be a positive integer", name)
	}
	return f, nil
}
