package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/starkyproject/starky-go/pkg/config"
	"github.com/starkyproject/starky-go/pkg/errs"
	"github.com/starkyproject/starky-go/pkg/transaction"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var hash62 = "0x" + strings.Repeat("a", 62)

type recorded struct {
	method string
	uri    string
	body   string
	header http.Header
}

type fakeGateway struct {
	t         *testing.T
	mtx       sync.Mutex
	responses map[string]string
	status    int
	requests  []recorded
}

func (f *fakeGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	require.NoError(f.t, err)
	f.mtx.Lock()
	f.requests = append(f.requests, recorded{method: r.Method, uri: r.URL.RequestURI(), body: string(body), header: r.Header.Clone()})
	f.mtx.Unlock()

	if f.status != 0 {
		w.WriteHeader(f.status)
	}
	resp, ok := f.responses[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = w.Write([]byte(resp))
}

func (f *fakeGateway) last() recorded {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.requests[len(f.requests)-1]
}

func newTestProvider(t *testing.T, responses map[string]string) (*Provider, *fakeGateway) {
	fg := &fakeGateway{t: t, responses: responses}
	srv := httptest.NewServer(fg)
	t.Cleanup(srv.Close)

	p, err := New(srv.URL, Options{Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	p.newRequestID = func() string { return "test-id" }
	t.Cleanup(p.Close)
	return p, fg
}

func TestGetters(t *testing.T) {
	ctx := context.Background()
	p, fg := newTestProvider(t, map[string]string{
		"/feeder_gateway/get_block_hash_by_id":       `"` + hash62 + `"`,
		"/feeder_gateway/get_block_id_by_hash":       `5`,
		"/feeder_gateway/get_transaction_hash_by_id": `"` + hash62 + `"`,
		"/feeder_gateway/get_transaction_id_by_hash": `17`,
		"/feeder_gateway/get_transaction_status":     `{"tx_status":"ACCEPTED_ON_L2","block_hash":"` + hash62 + `"}`,
		"/feeder_gateway/get_code":                   `{"bytecode":["0x1"],"abi":[]}`,
		"/feeder_gateway/get_contract_addresses":     `{"Starknet":"0x1","GpsStatementVerifier":"0x2"}`,
		"/feeder_gateway/get_storage_at":             `"0x5"`,
	})

	h, err := p.GetBlockHashByID(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, hash62, h)
	require.Equal(t, "/feeder_gateway/get_block_hash_by_id?blockId=3", fg.last().uri)
	require.Equal(t, http.MethodGet, fg.last().method)
	require.Equal(t, "test-id", fg.last().header.Get(RequestIDHeader))

	id, err := p.GetBlockIDByHash(ctx, hash62)
	require.NoError(t, err)
	require.Equal(t, uint64(5), id)

	h, err = p.GetTransactionHashByID(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, hash62, h)

	id, err = p.GetTransactionIDByHash(ctx, hash62)
	require.NoError(t, err)
	require.Equal(t, uint64(17), id)

	st, err := p.GetTransactionStatus(ctx, hash62)
	require.NoError(t, err)
	require.Equal(t, "ACCEPTED_ON_L2", string(st.TxStatus))

	code, err := p.GetCode(ctx, "3567")
	require.NoError(t, err)
	require.Equal(t, []string{"0x1"}, code.Bytecode)
	require.Equal(t, "/feeder_gateway/get_code?contractAddress=0x0def", fg.last().uri)

	addrs, err := p.GetContractAddresses(ctx)
	require.NoError(t, err)
	require.Equal(t, "0x2", addrs.GpsStatementVerifier)

	v, err := p.GetStorageAt(ctx, "0x0def", "10")
	require.NoError(t, err)
	require.Equal(t, "0x5", v)
	require.Equal(t, "/feeder_gateway/get_storage_at?contractAddress=0x0def&key=10", fg.last().uri)
}

func TestValidationBeforeRequest(t *testing.T) {
	ctx := context.Background()
	p, fg := newTestProvider(t, nil)

	check := func(err error, msg string) {
		var ve *errs.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, msg, ve.Error())
	}
	_, err := p.GetBlockByNumber(ctx, -1)
	check(err, "blockNumber must be a positive integer")
	_, err = p.GetBlockHashByID(ctx, -1)
	check(err, "blockId must be a positive integer")
	_, err = p.GetTransactionHashByID(ctx, -1)
	check(err, "transactionId must be a positive integer")
	_, err = p.GetStorageAt(ctx, "0x1", "0.5")
	check(err, "key must be a positive integer")
	_, err = p.GetStorageAt(ctx, "0x1", "-1")
	check(err, "key must be a positive integer")

	require.Empty(t, fg.requests)
}

func TestGetNonce(t *testing.T) {
	p, fg := newTestProvider(t, map[string]string{
		"/feeder_gateway/call_contract": `{"result":["0x7"]}`,
	})
	n, err := p.GetNonce(context.Background(), "0x0abc")
	require.NoError(t, err)
	require.Equal(t, int64(7), n.Int64())

	req := fg.last()
	require.Equal(t, http.MethodPost, req.method)
	require.Equal(t, "application/json", req.header.Get("Content-Type"))
	require.JSONEq(t, `{"contract_address":"0x0abc","entry_point_selector":"0x1ac47721ee58ba2813c2a816bca188512839a00d3970f67c05eab986b14006d","calldata":[],"signature":[]}`, req.body)
}

func TestGetNonceEmpty(t *testing.T) {
	p, _ := newTestProvider(t, map[string]string{
		"/feeder_gateway/call_contract": `{"result":[]}`,
	})
	_, err := p.GetNonce(context.Background(), "0x0abc")
	var se *errs.SchemaError
	require.ErrorAs(t, err, &se)
}

func TestWrites(t *testing.T) {
	ctx := context.Background()
	p, fg := newTestProvider(t, map[string]string{
		"/feeder_gateway/call_contract": `{"result":["0x1","0x2"]}`,
		"/feeder_gateway/estimate_fee":  `{"amount":1200,"unit":"wei"}`,
		"/gateway/add_transaction":      `{"code":"TRANSACTION_RECEIVED","transaction_hash":"` + hash62 + `","address":"0x1"}`,
	})

	out, err := p.CallContract(ctx, ContractInteraction{ContractAddress: "0x0def", FunctionName: "balance_of", Calldata: []string{"0x1"}})
	require.NoError(t, err)
	require.Equal(t, []string{"0x1", "0x2"}, out)

	res, err := p.InvokeContract(ctx, ContractInteraction{ContractAddress: "0x0def", FunctionName: "transfer", Calldata: []string{"1"}, Signature: transaction.Signature{"3", "4"}}, transaction.CallOptions{MaxFee: "0x10"})
	require.NoError(t, err)
	require.Equal(t, "TRANSACTION_RECEIVED", res.Code)
	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(fg.last().body), &sent))
	require.Equal(t, "INVOKE_FUNCTION", sent["type"])
	require.Equal(t, "0x10", sent["max_fee"])

	tx, err := transaction.NewInvoke("0x0def", "transfer", nil, nil, transaction.CallOptions{})
	require.NoError(t, err)
	fee, err := p.EstimateFee(ctx, tx)
	require.NoError(t, err)
	require.Equal(t, int64(1200), fee.Amount.Int64())

	dep, err := p.DeployContract(ctx, "0x1", transaction.ContractDefinition{Program: json.RawMessage(`{"a":1}`)}, nil)
	require.NoError(t, err)
	require.Equal(t, "0x1", dep.Address)
	require.Contains(t, fg.last().body, `"type":"DEPLOY"`)
}

func TestGatewayErrors(t *testing.T) {
	ctx := context.Background()
	p, fg := newTestProvider(t, map[string]string{
		"/feeder_gateway/get_block": `{"code":"StarknetErrorCode.BLOCK_NOT_FOUND","message":"Block number 1000000 was not found."}`,
	})
	fg.status = http.StatusBadRequest

	_, err := p.GetBlockByNumber(ctx, 1000000)
	var te *errs.TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, http.StatusBadRequest, te.Status)
	require.Equal(t, "StarknetErrorCode.BLOCK_NOT_FOUND", te.Code)
	require.Equal(t, "Block number 1000000 was not found.", te.Message)

	fg.status = http.StatusInternalServerError
	_, err = p.GetCode(ctx, "0x1")
	require.ErrorAs(t, err, &te)
	require.Equal(t, http.StatusInternalServerError, te.Status)
	require.Equal(t, "HTTP 500/Internal Server Error: empty response", te.Error())
}

func TestSchemaError(t *testing.T) {
	p, _ := newTestProvider(t, map[string]string{
		"/feeder_gateway/get_transaction_status": `{"tx_status":"WHATEVER","block_hash":"` + hash62 + `"}`,
		"/feeder_gateway/get_contract_addresses": `{"Starknet":"0x1","GpsStatementVerifier":"0x2","Extra":"0x3"}`,
	})
	var se *errs.SchemaError

	_, err := p.GetTransactionStatus(context.Background(), hash62)
	require.ErrorAs(t, err, &se)
	require.Equal(t, "get_transaction_status", se.Operation)

	_, err = p.GetContractAddresses(context.Background())
	require.ErrorAs(t, err, &se)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p, err := New(url, Options{})
	require.NoError(t, err)
	_, err = p.GetLatestBlock(context.Background())
	var te *errs.TransportError
	require.ErrorAs(t, err, &te)
	require.Zero(t, te.Status)
	require.NotEmpty(t, te.Message)
}

func TestRequestTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(done) })

	p, err := New(srv.URL, Options{RequestTimeout: 50 * time.Millisecond})
	require.NoError(t, err)
	_, err = p.GetLatestBlock(context.Background())
	var te *errs.TransportError
	require.ErrorAs(t, err, &te)
}

func TestConstructors(t *testing.T) {
	p, err := NewForNetwork("goerli", Options{})
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = NewForNetwork("devnet", Options{})
	require.Error(t, err)

	_, err = New("not a url", Options{})
	require.Error(t, err)

	p, err = NewFromConfig(config.Default(), nil)
	require.NoError(t, err)
	require.NotNil(t, p.log)
}
