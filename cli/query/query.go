package query

import (
	"context"
	"fmt"
	"strconv"

	"github.com/starkyproject/starky-go/cli/cmdargs"
	"github.com/starkyproject/starky-go/cli/options"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/provider"
	"github.com/urfave/cli"
)

type queryFunc func(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error)

// NewCommands returns 'query' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "query",
		Usage: "Query gateway state",
		Subcommands: []cli.Command{
			newQuery("block", "[<number> | <hash>]", "Get latest block, block by number or hash", 0, queryBlock),
			newQuery("block-hash", "<id>", "Get block hash by its number", 1, queryBlockHash),
			newQuery("block-id", "<hash>", "Get block number by its hash", 1, queryBlockID),
			newQuery("tx", "<hash>", "Get transaction", 1, queryTx),
			newQuery("status", "<hash>", "Get transaction status", 1, queryTxStatus),
			newQuery("receipt", "<hash>", "Get transaction receipt", 1, queryReceipt),
			newQuery("tx-hash", "<id>", "Get transaction hash by its ID", 1, queryTxHash),
			newQuery("tx-id", "<hash>", "Get transaction ID by its hash", 1, queryTxID),
			newQuery("code", "<address>", "Get contract code", 1, queryCode),
			newQuery("storage", "<address> <key>", "Get contract storage value", 2, queryStorage),
			newQuery("nonce", "<address>", "Get account nonce", 1, queryNonce),
			newQuery("addresses", "", "Get core contract addresses", 0, queryAddresses),
		},
	}}
}

func newQuery(name, args, usage string, nargs int, f queryFunc) cli.Command {
	return cli.Command{
		Name:      name,
		Usage:     usage,
		UsageText: "query " + name + " " + args + " [--network <network>] [--gateway <url>] [--timeout <time>]",
		Action: func(ctx *cli.Context) error {
			if len(ctx.Args()) < nargs {
				return cli.NewExitError(fmt.Sprintf("expected %d argument(s): %s", nargs, args), 1)
			}
			return runQuery(ctx, f)
		},
		Flags: options.Gateway,
	}
}

func runQuery(ctx *cli.Context, f queryFunc) error {
	p, log, exitErr := options.GetProvider(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer func() { _ = log.Sync() }()
	defer p.Close()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	res, err := f(gctx, p, ctx.Args())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return cmdargs.WriteJSON(ctx.App.Writer, res)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return id, nil
}

func queryBlock(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	if len(args) == 0 {
		return p.GetLatestBlock(ctx)
	}
	if felt.HasHexPrefix(args[0]) {
		return p.GetBlockByHash(ctx, args[0])
	}
	n, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	return p.GetBlockByNumber(ctx, n)
}

func queryBlockHash(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	return p.GetBlockHashByID(ctx, id)
}

func queryBlockID(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	return p.GetBlockIDByHash(ctx, args[0])
}

func queryTx(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	return p.GetTransaction(ctx, args[0])
}

func queryTxStatus(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	return p.GetTransactionStatus(ctx, args[0])
}

func queryReceipt(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	return p.GetTransactionReceipt(ctx, args[0])
}

func queryTxHash(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	return p.GetTransactionHashByID(ctx, id)
}

func queryTxID(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	return p.GetTransactionIDByHash(ctx, args[0])
}

func queryCode(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	return p.GetCode(ctx, args[0])
}

func queryStorage(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	return p.GetStorageAt(ctx, args[0], args[1])
}

func queryNonce(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	n, err := p.GetNonce(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return n.String(), nil
}

func queryAddresses(ctx context.Context, p *provider.Provider, args cli.Args) (interface{}, error) {
	return p.GetContractAddresses(ctx)
}
