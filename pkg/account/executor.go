package account

import (
	"context"
	"fmt"

	"github.com/starkyproject/starky-go/pkg/contract"
	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/crypto/hash"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/errs"
	"github.com/starkyproject/starky-go/pkg/gateway/result"
	"github.com/starkyproject/starky-go/pkg/transaction"
	"go.uber.org/zap"
)

type (
	// Call is a single function call of a multicall.
	Call struct {
		Contract *contract.Contract
		Function string
		Calldata []string
	}

	// Options are multicall options. A nil nonce is fetched from the
	// account.
	Options struct {
		transaction.SigningContext
		transaction.CallOptions
	}

	// Output is the decoded output of a call, values are keyed by output
	// name.
	Output map[string]string

	interaction struct {
		call []string
		tx   *result.AddTransaction
		fee  *result.Fee
	}
)

// Executor sends calls through an account. Executor doesn't serialize
// transactions sent in parallel, so concurrent invocations through the same
// account can end up with the same nonce unless it's set explicitly in
// Options.
type Executor struct {
	acc     Account
	entry   contract.Interactor
	builder *transaction.Builder
	log     *zap.Logger
}

// NewExecutor creates an Executor for acc sending transactions via gw. If
// log is nil, no logging is performed.
func NewExecutor(acc Account, gw contract.Gateway, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		acc:     acc,
		entry:   contract.New(acc.Address(), nil, gw),
		builder: transaction.NewBuilder(hash.NewPedersen(curve.NewStark())),
		log:     log,
	}
}

// Account returns the account used.
func (e *Executor) Account() Account {
	return e.acc
}

// Invoke invokes a single function through the account.
func (e *Executor) Invoke(ctx context.Context, c Call, opts Options) (*result.AddTransaction, error) {
	return e.MultiInvoke(ctx, []Call{c}, opts)
}

// Call calls a single function through the account and decodes its output
// with the target contract ABI.
func (e *Executor) Call(ctx context.Context, c Call, opts Options) (Output, error) {
	res, err := e.MultiCall(ctx, []Call{c}, opts)
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// EstimateFee estimates the fee of invoking a single function through the
// account.
func (e *Executor) EstimateFee(ctx context.Context, c Call, opts Options) (*result.Fee, error) {
	return e.MultiEstimateFee(ctx, []Call{c}, opts)
}

// MultiInvoke sends all calls as a single transaction.
func (e *Executor) MultiInvoke(ctx context.Context, calls []Call, opts Options) (*result.AddTransaction, error) {
	res, err := e.multiInteract(ctx, transaction.Invoke, calls, opts)
	if err != nil {
		return nil, err
	}
	return res.tx, nil
}

// MultiCall performs all calls at once and returns their outputs in the same
// order.
func (e *Executor) MultiCall(ctx context.Context, calls []Call, opts Options) ([]Output, error) {
	for i, c := range calls {
		if c.Contract == nil || c.Contract.ABI() == nil {
			return nil, errs.NewValidationError("calls[%d]: contract ABI is required to decode output", i)
		}
		if _, ok := c.Contract.ABI().Function(c.Function); !ok {
			return nil, errs.NewValidationError("calls[%d]: function %q is not in ABI", i, c.Function)
		}
	}
	res, err := e.multiInteract(ctx, transaction.Call, calls, opts)
	if err != nil {
		return nil, err
	}
	out, err := splitOutput(res.call, calls)
	if err != nil {
		return nil, &errs.SchemaError{Operation: transaction.Call.Command(), Err: err}
	}
	return out, nil
}

// MultiEstimateFee estimates the total fee of all calls.
func (e *Executor) MultiEstimateFee(ctx context.Context, calls []Call, opts Options) (*result.Fee, error) {
	res, err := e.multiInteract(ctx, transaction.EstimateFee, calls, opts)
	if err != nil {
		return nil, err
	}
	return res.fee, nil
}

func (e *Executor) multiInteract(ctx context.Context, choice transaction.InteractChoice, calls []Call, opts Options) (*interaction, error) {
	params := make([]transaction.CallParameters, len(calls))
	for i, c := range calls {
		if c.Contract == nil {
			return nil, errs.NewValidationError("calls[%d]: contract is required", i)
		}
		params[i] = transaction.CallParameters{
			To:           c.Contract.Address(),
			FunctionName: c.Function,
			Calldata:     c.Calldata,
		}
	}
	batch, err := transaction.NewBatch(e.acc.Address(), params)
	if err != nil {
		return nil, err
	}
	maxFee, err := opts.ParseMaxFee()
	if err != nil {
		return nil, err
	}
	// Everything local is validated by now, the nonce may need a request.
	nonce := opts.Nonce
	if nonce == nil {
		nonce, err = e.acc.Nonce(ctx)
		if err != nil {
			return nil, err
		}
	}
	mc, err := e.builder.BuildHash(batch, nonce, maxFee, choice.Version())
	if err != nil {
		return nil, err
	}
	sig, err := e.acc.Signatures(mc.MessageHash.Hex())
	if err != nil {
		return nil, err
	}
	e.log.Debug("sending multicall",
		zap.Stringer("choice", choice),
		zap.String("account", e.acc.Address()),
		zap.Int("calls", len(calls)),
		zap.Stringer("nonce", nonce),
		zap.String("hash", mc.MessageHash.Hex()))

	var (
		fn       = e.acc.ExecutionEntryPoint()
		calldata = felt.Strings(mc.Args.Flatten())
		res      = new(interaction)
	)
	switch choice {
	case transaction.Invoke:
		res.tx, err = e.entry.Invoke(ctx, fn, calldata, sig, opts.CallOptions)
	case transaction.Call:
		res.call, err = e.entry.Call(ctx, fn, calldata, sig)
	case transaction.EstimateFee:
		res.fee, err = e.entry.EstimateFee(ctx, fn, calldata, sig)
	default:
		return nil, fmt.Errorf("unknown interaction %s", choice)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// splitOutput decodes the response of __execute__ call. The first element is
// the number of the following ones, those are outputs of all calls in order.
func splitOutput(resp []string, calls []Call) ([]Output, error) {
	if len(resp) == 0 {
		return nil, fmt.Errorf("empty response")
	}
	n, err := felt.ParseBig(resp[0])
	if err != nil {
		return nil, fmt.Errorf("invalid response length: %w", err)
	}
	data := resp[1:]
	if !n.IsInt64() || n.Int64() != int64(len(data)) {
		return nil, fmt.Errorf("response length %s doesn't match %d returned values", resp[0], len(data))
	}
	out := make([]Output, len(calls))
	for i, c := range calls {
		var (
			res map[string]string
			err error
		)
		res, data, err = c.Contract.ABI().DecodeOutput(c.Function, data)
		if err != nil {
			return nil, fmt.Errorf("calls[%d]: %w", i, err)
		}
		out[i] = res
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%d unexpected trailing values", len(data))
	}
	return out, nil
}
