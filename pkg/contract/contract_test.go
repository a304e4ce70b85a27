package contract

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/errs"
	"github.com/starkyproject/starky-go/pkg/gateway/result"
	"github.com/starkyproject/starky-go/pkg/signer"
	"github.com/starkyproject/starky-go/pkg/transaction"
	"github.com/stretchr/testify/require"
)

const transferSelector = "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e"

type fakeGateway struct {
	calls    []*transaction.InvokeFunction
	txs      []*transaction.InvokeFunction
	fees     []*transaction.InvokeFunction
	salt     string
	def      transaction.ContractDefinition
	deployed []string
	err      error
}

func (f *fakeGateway) Call(_ context.Context, p *transaction.InvokeFunction) ([]string, error) {
	f.calls = append(f.calls, p)
	return []string{"0x1"}, f.err
}

func (f *fakeGateway) AddTransaction(_ context.Context, tx *transaction.InvokeFunction) (*result.AddTransaction, error) {
	f.txs = append(f.txs, tx)
	if f.err != nil {
		return nil, f.err
	}
	return &result.AddTransaction{Code: "TRANSACTION_RECEIVED", TransactionHash: "0x123"}, nil
}

func (f *fakeGateway) EstimateFee(_ context.Context, tx *transaction.InvokeFunction) (*result.Fee, error) {
	f.fees = append(f.fees, tx)
	return &result.Fee{Amount: big.NewInt(42), Unit: "wei"}, f.err
}

func (f *fakeGateway) DeployContract(_ context.Context, salt string, def transaction.ContractDefinition, calldata []string) (*result.AddTransaction, error) {
	f.salt = salt
	f.def = def
	f.deployed = calldata
	if f.err != nil {
		return nil, f.err
	}
	return &result.AddTransaction{Code: "TRANSACTION_RECEIVED", TransactionHash: "0x456", Address: "0x0def"}, nil
}

const testABI = `[
	{"type": "struct", "name": "Point", "size": 2, "members": [
		{"name": "x", "offset": 0, "type": "felt"},
		{"name": "y", "offset": 1, "type": "felt"}
	]},
	{"type": "function", "name": "balance", "inputs": [], "outputs": [{"name": "res", "type": "felt"}], "stateMutability": "view"},
	{"type": "function", "name": "point", "inputs": [], "outputs": [{"name": "p", "type": "Point"}, {"name": "ok", "type": "felt"}]},
	{"type": "function", "name": "list", "inputs": [], "outputs": [{"name": "arr_len", "type": "felt"}, {"name": "arr", "type": "felt*"}]},
	{"type": "function", "name": "bad", "inputs": [], "outputs": [{"name": "t", "type": "(felt, felt)"}]},
	{"type": "event", "name": "transfer", "keys": [], "data": [{"name": "amount", "type": "felt"}]}
]`

func mustABI(t *testing.T) ABI {
	a, err := ParseABI([]byte(testABI))
	require.NoError(t, err)
	return a
}

func TestContract(t *testing.T) {
	gw := new(fakeGateway)
	c := New("3567", nil, gw)
	require.Equal(t, "3567", c.Address())
	require.Nil(t, c.ABI())

	res, err := c.Call(context.Background(), "transfer", []string{"0x1", "100"}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"0x1"}, res)
	require.Len(t, gw.calls, 1)
	require.Equal(t, "0x0def", gw.calls[0].ContractAddress)
	require.Equal(t, transferSelector, gw.calls[0].EntryPointSelector)
	require.Equal(t, []string{"1", "100"}, gw.calls[0].Calldata)
	require.Equal(t, transaction.Signature{}, gw.calls[0].Signature)

	tx, err := c.Invoke(context.Background(), "transfer", []string{"1"}, transaction.Signature{"1", "2"}, transaction.CallOptions{MaxFee: "255"})
	require.NoError(t, err)
	require.Equal(t, "0x123", tx.TransactionHash)
	require.Len(t, gw.txs, 1)
	require.Equal(t, transaction.InvokeFunctionType, gw.txs[0].Type)
	require.Equal(t, transaction.Signature{"1", "2"}, gw.txs[0].Signature)
	require.Equal(t, "0xff", gw.txs[0].MaxFee)

	fee, err := c.EstimateFee(context.Background(), "transfer", nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(42), fee.Amount.Int64())
	require.Len(t, gw.fees, 1)
	require.Empty(t, gw.fees[0].MaxFee)

	_, err = c.Call(context.Background(), "transfer", []string{"zz"}, nil)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, gw.calls, 1)

	gw.err = errors.New("boom")
	_, err = c.Invoke(context.Background(), "transfer", nil, nil, transaction.CallOptions{})
	require.ErrorIs(t, err, gw.err)
}

func TestAttach(t *testing.T) {
	gw := new(fakeGateway)
	abi := mustABI(t)
	c := New("0x1", abi, gw)
	d := c.Attach("0x2")
	require.Equal(t, "0x1", c.Address())
	require.Equal(t, "0x2", d.Address())
	require.Equal(t, abi, d.ABI())

	_, err := d.Call(context.Background(), "balance", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "0x2", gw.calls[0].ContractAddress)
}

func TestABI(t *testing.T) {
	a := mustABI(t)

	fn, ok := a.Function("balance")
	require.True(t, ok)
	require.Equal(t, "view", fn.StateMutability)
	_, ok = a.Function("transfer")
	require.False(t, ok)
	_, ok = a.Function("Point")
	require.False(t, ok)

	w, err := a.OutputWidth("balance")
	require.NoError(t, err)
	require.Equal(t, 1, w)
	w, err = a.OutputWidth("point")
	require.NoError(t, err)
	require.Equal(t, 3, w)
	_, err = a.OutputWidth("list")
	require.Error(t, err)
	_, err = a.OutputWidth("bad")
	require.Error(t, err)
	_, err = a.OutputWidth("missing")
	require.Error(t, err)

	_, err = ParseABI([]byte(`{}`))
	require.Error(t, err)
}

func TestDecodeOutput(t *testing.T) {
	a := mustABI(t)

	res, rest, err := a.DecodeOutput("point", []string{"0x1", "0x2", "0x1", "0x5"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"p": "0x1 0x2", "ok": "0x1"}, res)
	require.Equal(t, []string{"0x5"}, rest)

	res, rest, err = a.DecodeOutput("list", []string{"0x2", "0xa", "0xb", "0x7"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"arr_len": "0x2", "arr": "0xa 0xb"}, res)
	require.Equal(t, []string{"0x7"}, rest)

	res, rest, err = a.DecodeOutput("list", []string{"0"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"arr_len": "0", "arr": ""}, res)
	require.Empty(t, rest)

	_, _, err = a.DecodeOutput("list", []string{"0x3", "0xa"})
	require.Error(t, err)
	_, _, err = a.DecodeOutput("list", []string{"zz"})
	require.Error(t, err)
	_, _, err = a.DecodeOutput("point", []string{"0x1"})
	require.Error(t, err)
	_, _, err = a.DecodeOutput("bad", []string{"0x1", "0x2"})
	require.Error(t, err)
	_, _, err = a.DecodeOutput("missing", nil)
	require.Error(t, err)
}

func TestNegativeStructSize(t *testing.T) {
	a, err := ParseABI([]byte(`[
		{"type": "struct", "name": "S", "size": -1, "members": []},
		{"type": "function", "name": "f", "inputs": [], "outputs": [{"name": "s", "type": "S"}]}
	]`))
	require.NoError(t, err)

	require.NotPanics(t, func() {
		_, _, err = a.DecodeOutput("f", []string{"0x1", "0x2"})
	})
	require.Error(t, err)
	_, err = a.OutputWidth("f")
	require.Error(t, err)
}

func TestFactory(t *testing.T) {
	gw := new(fakeGateway)
	def := transaction.ContractDefinition{
		ABI:     []byte(testABI),
		Program: []byte(`{"b": 1, "a": 2}`),
	}

	_, err := NewFactory(gw, nil).Deploy(context.Background(), def, nil)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "signer is required to deploy a contract", ve.Error())

	s, err := signer.New(curve.NewStark(), "0x1")
	require.NoError(t, err)
	d, err := NewFactory(gw, s).Deploy(context.Background(), def, []string{"1"})
	require.NoError(t, err)
	require.Equal(t, "0x456", d.TransactionHash)
	require.Equal(t, "0x0def", d.Contract.Address())
	require.Equal(t, s.PublicKey, gw.salt)
	require.Equal(t, []string{"1"}, gw.deployed)
	_, ok := d.Contract.ABI().Function("balance")
	require.True(t, ok)

	_, err = NewFactory(gw, s).Deploy(context.Background(), transaction.ContractDefinition{ABI: []byte(`"x"`)}, nil)
	require.ErrorAs(t, err, &ve)

	gw.err = errors.New("boom")
	_, err = NewFactory(gw, s).Deploy(context.Background(), def, nil)
	require.ErrorIs(t, err, gw.err)
}
