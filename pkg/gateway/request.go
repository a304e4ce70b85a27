package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/errs"
)

// Gateway path prefixes.
const (
	FeederGateway = "feeder_gateway"
	Gateway       = "gateway"
)

// Request is a ready to send gateway HTTP request description.
type Request struct {
	Operation string
	Method    string
	URL       string
	// Body is nil for GET requests.
	Body []byte
}

// RequestBuilder creates requests for the gateway at the given base URL.
type RequestBuilder struct {
	baseURL string
}

// NewRequestBuilder creates a RequestBuilder for the gateway located at
// baseURL (scheme and host, an optional path prefix is kept).
func NewRequestBuilder(baseURL string) (*RequestBuilder, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid gateway URL %q: scheme and host are required", baseURL)
	}
	return &RequestBuilder{baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Build validates op and creates the corresponding request. Validation
// failures are returned as *errs.ValidationError.
func (b *RequestBuilder) Build(op Operation) (*Request, error) {
	var (
		endpoint string
		query    = url.Values{}
		payload  interface{}
		gw       = FeederGateway
	)
	switch o := op.(type) {
	case GetLatestBlock:
		endpoint = "get_block"
	case GetBlockByNumber:
		if o.BlockNumber < 0 {
			return nil, errs.NewValidationError("blockNumber must be a positive integer")
		}
		endpoint = "get_block"
		query.Set("blockNumber", strconv.FormatInt(o.BlockNumber, 10))
	case GetBlockByHash:
		endpoint = "get_block"
		if err := setRequired(query, "blockHash", o.BlockHash); err != nil {
			return nil, err
		}
	case GetBlockHashByID:
		if o.BlockID < 0 {
			return nil, errs.NewValidationError("blockId must be a positive integer")
		}
		endpoint = "get_block_hash_by_id"
		query.Set("blockId", strconv.FormatInt(o.BlockID, 10))
	case GetBlockIDByHash:
		endpoint = "get_block_id_by_hash"
		if err := setRequired(query, "blockHash", o.BlockHash); err != nil {
			return nil, err
		}
	case GetTransaction:
		endpoint = "get_transaction"
		if err := setRequired(query, "transactionHash", o.TransactionHash); err != nil {
			return nil, err
		}
	case GetTransactionStatus:
		endpoint = "get_transaction_status"
		if err := setRequired(query, "transactionHash", o.TransactionHash); err != nil {
			return nil, err
		}
	case GetTransactionReceipt:
		endpoint = "get_transaction_receipt"
		if err := setRequired(query, "transactionHash", o.TransactionHash); err != nil {
			return nil, err
		}
	case GetTransactionHashByID:
		if o.TransactionID < 0 {
			return nil, errs.NewValidationError("transactionId must be a positive integer")
		}
		endpoint = "get_transaction_hash_by_id"
		query.Set("transactionId", strconv.FormatInt(o.TransactionID, 10))
	case GetTransactionIDByHash:
		endpoint = "get_transaction_id_by_hash"
		if err := setRequired(query, "transactionHash", o.TransactionHash); err != nil {
			return nil, err
		}
	case GetCode:
		addr, err := contractAddress(o.ContractAddress)
		if err != nil {
			return nil, err
		}
		endpoint = "get_code"
		query.Set("contractAddress", addr)
	case GetContractAddresses:
		endpoint = "get_contract_addresses"
	case GetStorageAt:
		key, err := felt.ParseBig(o.Key)
		if err != nil {
			return nil, errs.NewValidationError("key must be a positive integer")
		}
		addr, err := contractAddress(o.ContractAddress)
		if err != nil {
			return nil, err
		}
		endpoint = "get_storage_at"
		query.Set("contractAddress", addr)
		query.Set("key", key.String())
	case GetNonce:
		endpoint = "call_contract"
		if o.Payload == nil {
			return nil, errs.NewValidationError("payload is required")
		}
		payload = o.Payload
	case CallContract:
		endpoint = "call_contract"
		if o.Payload == nil {
			return nil, errs.NewValidationError("payload is required")
		}
		payload = o.Payload
	case EstimateFee:
		endpoint = "estimate_fee"
		if o.Payload == nil {
			return nil, errs.NewValidationError("payload is required")
		}
		payload = o.Payload
	case AddTransaction:
		gw = Gateway
		endpoint = "add_transaction"
		switch t := o.Payload.(type) {
		case InvokeTransaction:
			if t.InvokeFunction == nil {
				return nil, errs.NewValidationError("payload is required")
			}
			payload = t.InvokeFunction
		case DeployTransaction:
			if t.Deploy == nil {
				return nil, errs.NewValidationError("payload is required")
			}
			payload = t.Deploy
		default:
			return nil, errs.NewValidationError("unsupported transaction %T", o.Payload)
		}
	default:
		return nil, errs.NewValidationError("unsupported operation %T", op)
	}

	req := &Request{
		Operation: op.Name(),
		Method:    http.MethodGet,
		URL:       b.baseURL + "/" + gw + "/" + endpoint,
	}
	if len(query) != 0 {
		req.URL += "?" + query.Encode()
	}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", op.Name(), err)
		}
		req.Method = http.MethodPost
		req.Body = body
	}
	return req, nil
}

func setRequired(q url.Values, name, value string) error {
	if value == "" {
		return errs.NewValidationError("%s is required", name)
	}
	q.Set(name, value)
	return nil
}

func contractAddress(addr string) (string, error) {
	h, err := felt.HexAddress(addr)
	if err != nil {
		return "", errs.NewValidationError("contractAddress must be a hex or decimal address")
	}
	return h, nil
}
