package wallet

import (
	"fmt"

	"github.com/starkyproject/starky-go/cli/cmdargs"
	"github.com/starkyproject/starky-go/cli/flags"
	"github.com/starkyproject/starky-go/cli/options"
	"github.com/starkyproject/starky-go/pkg/account"
	"github.com/starkyproject/starky-go/pkg/contract"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/urfave/cli"
)

func newAccountCommand() cli.Command {
	baseFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "address, a",
			Usage: "account contract address",
		},
		cli.StringFlag{
			Name:  "contract, c",
			Usage: "target contract address",
		},
		cli.StringFlag{
			Name:  "nonce",
			Usage: "account nonce, fetched from the gateway if not given",
		},
		options.PrivateKey,
	}, options.Gateway...)
	baseFlags = flags.MarkRequired(baseFlags, "address", "contract")
	feeFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "max-fee",
			Usage: "maximum fee to pay (decimal or hex)",
		},
	}, baseFlags...)
	callFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "abi",
			Usage: "target contract ABI file used to decode output",
		},
	}, baseFlags...)
	callFlags = flags.MarkRequired(callFlags, "abi")
	return cli.Command{
		Name:  "account",
		Usage: "Interact with contracts through an Argent account",
		Subcommands: []cli.Command{
			{
				Name:        "invoke",
				Usage:       "Invoke a contract function through the account",
				UsageText:   "account invoke -a <account> -c <contract> [--max-fee <fee>] [--nonce <nonce>] <function> [<calldata>...]",
				Description: cmdargs.CalldataDoc,
				Action:      accountInvoke,
				Flags:       feeFlags,
			},
			{
				Name:        "call",
				Usage:       "Call a contract function through the account",
				UsageText:   "account call -a <account> -c <contract> --abi <file> [--nonce <nonce>] <function> [<calldata>...]",
				Description: cmdargs.CalldataDoc,
				Action:      accountCall,
				Flags:       callFlags,
			},
			{
				Name:        "estimate-fee",
				Usage:       "Estimate the fee of invoking a contract function through the account",
				UsageText:   "account estimate-fee -a <account> -c <contract> [--nonce <nonce>] <function> [<calldata>...]",
				Description: cmdargs.CalldataDoc,
				Action:      accountEstimateFee,
				Flags:       baseFlags,
			},
		},
	}
}

type accountContext struct {
	exec *account.Executor
	call account.Call
	opts account.Options
	done func()
}

func getAccountContext(ctx *cli.Context, abi contract.ABI) (*accountContext, error) {
	if len(ctx.Args()) == 0 {
		return nil, cli.NewExitError("function name is missing", 1)
	}
	var opts account.Options
	if n := ctx.String("nonce"); n != "" {
		v, err := felt.Parse(n)
		if err != nil {
			return nil, cli.NewExitError(fmt.Errorf("invalid nonce: %w", err), 1)
		}
		opts.Nonce = v.Big()
	}
	opts.MaxFee = ctx.String("max-fee")
	s, err := options.GetSigner(ctx)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	p, log, exitErr := options.GetProvider(ctx)
	if exitErr != nil {
		return nil, exitErr
	}
	acc := account.NewArgent(ctx.String("address"), s, p)
	return &accountContext{
		exec: account.NewExecutor(acc, p, log),
		call: account.Call{
			Contract: contract.New(ctx.String("contract"), abi, p),
			Function: ctx.Args().First(),
			Calldata: cmdargs.GetCalldata(ctx, 1),
		},
		opts: opts,
		done: func() {
			p.Close()
			_ = log.Sync()
		},
	}, nil
}

func accountInvoke(ctx *cli.Context) error {
	ac, err := getAccountContext(ctx, nil)
	if err != nil {
		return err
	}
	defer ac.done()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	res, err := ac.exec.Invoke(gctx, ac.call, ac.opts)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, res.TransactionHash)
	return nil
}

func accountCall(ctx *cli.Context) error {
	var abi contract.ABI
	if err := cmdargs.ReadJSONFile(ctx.String("abi"), &abi); err != nil {
		return cli.NewExitError(err, 1)
	}
	ac, err := getAccountContext(ctx, abi)
	if err != nil {
		return err
	}
	defer ac.done()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	res, err := ac.exec.Call(gctx, ac.call, ac.opts)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return cmdargs.WriteJSON(ctx.App.Writer, res)
}

func accountEstimateFee(ctx *cli.Context) error {
	ac, err := getAccountContext(ctx, nil)
	if err != nil {
		return err
	}
	defer ac.done()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	res, err := ac.exec.EstimateFee(gctx, ac.call, ac.opts)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return cmdargs.WriteJSON(ctx.App.Writer, res)
}
