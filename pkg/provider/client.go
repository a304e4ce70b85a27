/*
Package provider implements a client for the sequencer gateway. Provider
methods map one-to-one to gateway operations, they validate input before
sending anything and check the shape of every response.
*/
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/starkyproject/starky-go/pkg/config"
	"github.com/starkyproject/starky-go/pkg/config/netmode"
	"github.com/starkyproject/starky-go/pkg/errs"
	"github.com/starkyproject/starky-go/pkg/gateway"
	"github.com/starkyproject/starky-go/pkg/gateway/result"
	"go.uber.org/zap"
)

// RequestIDHeader is the header carrying a unique ID of each request.
const RequestIDHeader = "X-Request-ID"

// maxErrorBodyLength limits the part of a non-JSON error body kept in
// TransportError.
const maxErrorBodyLength = 512

// Provider is a gateway client. It's safe for concurrent use.
type Provider struct {
	cli     *http.Client
	builder *gateway.RequestBuilder
	log     *zap.Logger
	opts    Options

	// newRequestID returns an ID for the subsequent request, it's a field
	// so that tests can make IDs predictable.
	newRequestID func() string
}

// Options defines options for the Provider. All values are optional, zero
// timeouts mean no limit.
type Options struct {
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// HTTPClient replaces the client built from the settings above.
	HTTPClient *http.Client
	// Logger is used for request tracing, nop logger by default.
	Logger *zap.Logger
}

// gatewayError is the body of gateway error responses.
type gatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// New returns a Provider for the gateway at baseURL.
func New(baseURL string, opts Options) (*Provider, error) {
	b, err := gateway.NewRequestBuilder(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: opts.DialTimeout,
				}).DialContext,
				MaxConnsPerHost: opts.MaxConnsPerHost,
			},
		}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{
		cli:          httpClient,
		builder:      b,
		log:          log,
		opts:         opts,
		newRequestID: uuid.NewString,
	}, nil
}

// NewForNetwork returns a Provider for the default gateway of the network.
func NewForNetwork(n netmode.Network, opts Options) (*Provider, error) {
	u := n.BaseURL()
	if u == "" {
		return nil, fmt.Errorf("unknown network %q", n)
	}
	return New(u, opts)
}

// NewFromConfig returns a Provider configured according to cfg.
func NewFromConfig(cfg config.Config, log *zap.Logger) (*Provider, error) {
	return New(cfg.GatewayURL(), Options{
		DialTimeout:     cfg.Provider.DialTimeout,
		RequestTimeout:  cfg.Provider.RequestTimeout,
		MaxConnsPerHost: cfg.Provider.MaxConnsPerHost,
		Logger:          log,
	})
}

// Close closes unused underlying network connections.
func (p *Provider) Close() {
	p.cli.CloseIdleConnections()
}

// performRequest builds, sends and decodes a single operation. Errors are
// always one of errs kinds.
func (p *Provider) performRequest(ctx context.Context, op gateway.Operation, v interface{}) error {
	req, err := p.builder.Build(op)
	if err != nil {
		return normalizeError(err)
	}
	data, err := p.makeHTTPRequest(ctx, req)
	if err != nil {
		return normalizeError(err)
	}
	if err := result.Decode(data, v); err != nil {
		return &errs.SchemaError{Operation: req.Operation, Err: err}
	}
	return nil
}

func (p *Provider) makeHTTPRequest(ctx context.Context, r *gateway.Request) ([]byte, error) {
	if p.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.RequestTimeout)
		defer cancel()
	}
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}
	id := p.newRequestID()
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, id)

	log := p.log.With(zap.String("operation", r.Operation),
		zap.String("method", r.Method),
		zap.String("url", r.URL),
		zap.String("request_id", id))
	log.Debug("sending gateway request")

	start := time.Now()
	resp, err := p.cli.Do(req)
	if err != nil {
		addReqMetric(r.Operation, "error", time.Since(start))
		log.Debug("gateway request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		addReqMetric(r.Operation, "error", time.Since(start))
		log.Debug("failed to read gateway response", zap.Error(err))
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		addReqMetric(r.Operation, "http_error", time.Since(start))
		te := statusError(resp.StatusCode, data)
		log.Debug("gateway returned error", zap.Int("status", resp.StatusCode), zap.Error(te))
		return nil, te
	}
	addReqMetric(r.Operation, "ok", time.Since(start))
	return data, nil
}

// statusError creates TransportError for non-2xx response. The gateway
// might send us a proper JSON error, if it parses, it has more relevant data
// than the HTTP status.
func statusError(status int, body []byte) *errs.TransportError {
	te := &errs.TransportError{Status: status}
	var ge gatewayError
	if err := json.Unmarshal(body, &ge); err == nil && ge.Message != "" {
		te.Code = ge.Code
		te.Message = ge.Message
		return te
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBodyLength {
		msg = msg[:maxErrorBodyLength]
	}
	if msg == "" {
		msg = "empty response"
	}
	te.Message = msg
	return te
}

// normalizeError passes errs kinds through and turns anything else into a
// TransportError.
func normalizeError(err error) error {
	var (
		ve *errs.ValidationError
		te *errs.TransportError
		se *errs.SchemaError
	)
	if errors.As(err, &ve) || errors.As(err, &te) || errors.As(err, &se) {
		return err
	}
	return errs.NewTransportError(err)
}
