package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/starkyproject/starky-go/cli/app"
	"github.com/starkyproject/starky-go/cli/input"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

const (
	testPrivateKey = "0x1"
	testPublicKey  = "0x01ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca"
)

type gatewayRequest struct {
	method string
	uri    string
	body   string
}

// gateway is a fake gateway serving canned responses by path.
type gateway struct {
	*httptest.Server

	mtx       sync.Mutex
	responses map[string]string
	requests  []gatewayRequest
}

func newGateway(t *testing.T) *gateway {
	g := &gateway{responses: make(map[string]string)}
	g.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		g.mtx.Lock()
		defer g.mtx.Unlock()
		g.requests = append(g.requests, gatewayRequest{method: r.Method, uri: r.URL.RequestURI(), body: string(body)})
		resp, ok := g.responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code": "StarknetErrorCode.UNKNOWN", "message": "no handler"}`))
			return
		}
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(g.Close)
	return g
}

func (g *gateway) respond(op string, resp string) {
	path := "/feeder_gateway/" + op
	if op == "add_transaction" {
		path = "/gateway/" + op
	}
	g.mtx.Lock()
	g.responses[path] = resp
	g.mtx.Unlock()
}

func (g *gateway) last(t *testing.T) gatewayRequest {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	require.NotEmpty(t, g.requests)
	return g.requests[len(g.requests)-1]
}

func (g *gateway) count() int {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return len(g.requests)
}

// executor represents context for a test instance.
// It can be safely used in multiple tests, but not in parallel.
type executor struct {
	// CLI is a cli application to test.
	CLI *cli.App
	// Gateway is a fake gateway to query (can be empty).
	Gateway *gateway
	// Out contains command output.
	Out *bytes.Buffer
	// Err contains command errors.
	Err *bytes.Buffer
	// In contains command input.
	In *bytes.Buffer
}

func newExecutor(t *testing.T, needGateway bool) *executor {
	e := &executor{
		CLI: app.New(),
		Out: bytes.NewBuffer(nil),
		Err: bytes.NewBuffer(nil),
		In:  bytes.NewBuffer(nil),
	}
	e.CLI.Writer = e.Out
	e.CLI.ErrWriter = e.Err
	if needGateway {
		e.Gateway = newGateway(t)
	}
	t.Cleanup(func() {
		input.Terminal = nil
	})
	return e
}

// gatewayArgs returns flags pointing commands to the fake gateway.
func (e *executor) gatewayArgs() []string {
	return []string{"--gateway", e.Gateway.URL, "--timeout", "5s"}
}

func (e *executor) getNextLine(t *testing.T) string {
	line, err := e.Out.ReadString('\n')
	require.NoError(t, err)
	return strings.TrimSuffix(line, "\n")
}

func (e *executor) checkNextLine(t *testing.T, expected string) {
	line := e.getNextLine(t)
	e.checkLine(t, line, expected)
}

func (e *executor) checkLine(t *testing.T, line, expected string) {
	require.Regexp(t, expected, line)
}

func (e *executor) checkEOF(t *testing.T) {
	_, err := e.Out.ReadString('\n')
	require.True(t, errors.Is(err, io.EOF))
}

func setExitFunc() <-chan int {
	ch := make(chan int, 1)
	cli.OsExiter = func(code int) {
		ch <- code
	}
	return ch
}

func checkExit(t *testing.T, ch <-chan int, code int) {
	select {
	case c := <-ch:
		require.Equal(t, code, c)
	default:
		if code != 0 {
			require.Fail(t, "no exit was called")
		}
	}
}

// RunWithError runs command and checks that is exits with error.
func (e *executor) RunWithError(t *testing.T, args ...string) {
	ch := setExitFunc()
	require.Error(t, e.run(args...))
	checkExit(t, ch, 1)
}

// Run runs command and checks that there were no errors.
func (e *executor) Run(t *testing.T, args ...string) {
	ch := setExitFunc()
	require.NoError(t, e.run(args...))
	checkExit(t, ch, 0)
}

func (e *executor) run(args ...string) error {
	e.Out.Reset()
	e.Err.Reset()
	input.Terminal = term.NewTerminal(input.ReadWriter{
		Reader: e.In,
		Writer: io.Discard,
	}, "")
	err := e.CLI.Run(args)
	input.Terminal = nil
	e.In.Reset()
	return err
}
