package smartcontract

import (
	"fmt"

	"github.com/starkyproject/starky-go/cli/cmdargs"
	"github.com/starkyproject/starky-go/cli/flags"
	"github.com/starkyproject/starky-go/cli/options"
	"github.com/starkyproject/starky-go/pkg/contract"
	"github.com/starkyproject/starky-go/pkg/transaction"
	"github.com/urfave/cli"
)

// NewCommands returns 'contract' command.
func NewCommands() []cli.Command {
	interactFlags := flags.MarkRequired(append([]cli.Flag{
		cli.StringFlag{
			Name:  "address, a",
			Usage: "contract address",
		},
		cli.StringSliceFlag{
			Name:  "signature",
			Usage: "signature element, can be repeated",
		},
	}, options.Gateway...), "address")
	callFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "abi",
			Usage: "contract ABI file used to decode output",
		},
	}, interactFlags...)
	invokeFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "max-fee",
			Usage: "maximum fee to pay (decimal or hex)",
		},
	}, interactFlags...)
	deployFlags := flags.MarkRequired(append([]cli.Flag{
		cli.StringFlag{
			Name:  "definition, i",
			Usage: "compiled contract definition file",
		},
		options.PrivateKey,
	}, options.Gateway...), "definition")
	return []cli.Command{{
		Name:  "contract",
		Usage: "Call, invoke and deploy contracts directly",
		Subcommands: []cli.Command{
			{
				Name:      "call",
				Usage:     "Call a contract function",
				UsageText: "contract call -a <address> [--abi <file>] [--signature <sig>...] <function> [<calldata>...]",
				Description: `Calls a view function and prints its output. Raw output values are printed
   unless an ABI file is given, in which case they are decoded by output name.

` + cmdargs.CalldataDoc,
				Action: contractCall,
				Flags:  callFlags,
			},
			{
				Name:        "invoke",
				Usage:       "Send a function invocation transaction",
				UsageText:   "contract invoke -a <address> [--max-fee <fee>] [--signature <sig>...] <function> [<calldata>...]",
				Description: cmdargs.CalldataDoc,
				Action:      contractInvoke,
				Flags:       invokeFlags,
			},
			{
				Name:        "estimate-fee",
				Usage:       "Estimate the fee of a function invocation",
				UsageText:   "contract estimate-fee -a <address> [--signature <sig>...] <function> [<calldata>...]",
				Description: cmdargs.CalldataDoc,
				Action:      contractEstimateFee,
				Flags:       interactFlags,
			},
			{
				Name:      "deploy",
				Usage:     "Deploy a contract",
				UsageText: "contract deploy -i <definition.json> [--private-key <key>] [<constructor calldata>...]",
				Description: `Deploys the contract using the public key of the given private key as address
   salt. The program is compressed before sending. Prints the transaction hash
   and the contract address.

` + cmdargs.CalldataDoc,
				Action: contractDeploy,
				Flags:  deployFlags,
			},
		},
	}}
}

func contractCall(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("function name is missing", 1)
	}
	var abi contract.ABI
	if path := ctx.String("abi"); path != "" {
		if err := cmdargs.ReadJSONFile(path, &abi); err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	p, log, exitErr := options.GetProvider(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer func() { _ = log.Sync() }()
	defer p.Close()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	var (
		c  = contract.New(ctx.String("address"), abi, p)
		fn = ctx.Args().First()
	)
	res, err := c.Call(gctx, fn, cmdargs.GetCalldata(ctx, 1), ctx.StringSlice("signature"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if abi == nil {
		return cmdargs.WriteJSON(ctx.App.Writer, res)
	}
	out, rest, err := abi.DecodeOutput(fn, res)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("can't decode output: %w", err), 1)
	}
	if len(rest) != 0 {
		return cli.NewExitError(fmt.Errorf("can't decode output: %d extra values", len(rest)), 1)
	}
	return cmdargs.WriteJSON(ctx.App.Writer, out)
}

func contractInvoke(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("function name is missing", 1)
	}
	p, log, exitErr := options.GetProvider(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer func() { _ = log.Sync() }()
	defer p.Close()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c := contract.New(ctx.String("address"), nil, p)
	res, err := c.Invoke(gctx, ctx.Args().First(), cmdargs.GetCalldata(ctx, 1), ctx.StringSlice("signature"),
		transaction.CallOptions{MaxFee: ctx.String("max-fee")})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, res.TransactionHash)
	return nil
}

func contractEstimateFee(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return cli.NewExitError("function name is missing", 1)
	}
	p, log, exitErr := options.GetProvider(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer func() { _ = log.Sync() }()
	defer p.Close()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c := contract.New(ctx.String("address"), nil, p)
	res, err := c.EstimateFee(gctx, ctx.Args().First(), cmdargs.GetCalldata(ctx, 1), ctx.StringSlice("signature"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return cmdargs.WriteJSON(ctx.App.Writer, res)
}

func contractDeploy(ctx *cli.Context) error {
	var def transaction.ContractDefinition
	if err := cmdargs.ReadJSONFile(ctx.String("definition"), &def); err != nil {
		return cli.NewExitError(err, 1)
	}
	s, err := options.GetSigner(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	p, log, exitErr := options.GetProvider(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer func() { _ = log.Sync() }()
	defer p.Close()

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	d, err := contract.NewFactory(p, s).Deploy(gctx, def, cmdargs.GetCalldata(ctx, 0))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Transaction: %s\nContract: %s\n", d.TransactionHash, d.Contract.Address())
	return nil
}
