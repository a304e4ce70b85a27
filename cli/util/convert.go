package util

import (
	"fmt"

	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/crypto/hash"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/selector"
	"github.com/urfave/cli"
)

// NewCommands returns util commands for starky CLI.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:  "util",
			Usage: "Various helper commands",
			Subcommands: []cli.Command{
				{
					Name:      "selector",
					Usage:     "Compute entry point selector of a function",
					UsageText: "selector <name>",
					Action:    handleSelector,
				},
				{
					Name:      "keccak",
					Usage:     "Compute Keccak-256 of a string truncated to 250 bits",
					UsageText: "keccak <string>",
					Action:    handleKeccak,
				},
				{
					Name:      "pedersen",
					Usage:     "Compute Pedersen hash of field elements",
					UsageText: "pedersen <a> <b> | pedersen --elements <x>...",
					Description: `Hashes exactly two elements with Pedersen or, with --elements, any number
   of them with the hash chain used for transaction hashes.`,
					Action: handlePedersen,
					Flags: []cli.Flag{
						cli.BoolFlag{
							Name:  "elements, e",
							Usage: "hash a list of elements",
						},
					},
				},
			},
		},
	}
}

func handleSelector(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		return cli.NewExitError("function name is missing", 1)
	}
	s := selector.FromName(ctx.Args().First())
	fmt.Fprintf(ctx.App.Writer, "Hex:\t%s\nDecimal:\t%s\n", s.Hex, s.Int)
	return nil
}

func handleKeccak(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		return cli.NewExitError("exactly one argument is expected", 1)
	}
	fmt.Fprintln(ctx.App.Writer, hash.StarknetKeccak([]byte(ctx.Args().First())).Hex())
	return nil
}

func handlePedersen(ctx *cli.Context) error {
	args := ctx.Args()
	elems := make([]felt.Felt, len(args))
	for i, a := range args {
		v, err := felt.Parse(a)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("argument %d: %w", i, err), 1)
		}
		elems[i] = v
	}
	p := hash.NewPedersen(curve.NewStark())
	if ctx.Bool("elements") {
		fmt.Fprintln(ctx.App.Writer, p.HashOnElements(elems).Hex())
		return nil
	}
	if len(elems) != 2 {
		return cli.NewExitError("two elements are expected", 1)
	}
	fmt.Fprintln(ctx.App.Writer, p.Hash(elems[0], elems[1]).Hex())
	return nil
}
