package wallet

import (
	"fmt"

	"github.com/starkyproject/starky-go/cli/cmdargs"
	"github.com/starkyproject/starky-go/cli/options"
	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/crypto/keys"
	"github.com/urfave/cli"
)

type keyPair struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

// NewCommands returns 'key' and 'account' commands.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "key",
		Usage: "Generate and inspect STARK keys",
		Subcommands: []cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate a new random key pair",
				UsageText: "key generate [--length <digits>]",
				Description: `Generates a private key of the given number of hex digits (63 by default)
   and prints it along with the corresponding public key.`,
				Action: generateKey,
				Flags: []cli.Flag{
					cli.IntFlag{
						Name:  "length, l",
						Value: keys.DefaultKeyLength,
						Usage: "private key length in hex digits",
					},
				},
			},
			{
				Name:      "public",
				Usage:     "Derive public key from the private one",
				UsageText: "key public [--private-key <key>]",
				Action:    derivePublicKey,
				Flags:     []cli.Flag{options.PrivateKey},
			},
		},
	}, newAccountCommand()}
}

func generateKey(ctx *cli.Context) error {
	c := curve.NewStark()
	priv, err := keys.CreatePrivateKey(ctx.Int("length"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	pub, err := keys.DerivePublicKey(c, priv)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return cmdargs.WriteJSON(ctx.App.Writer, keyPair{PrivateKey: priv, PublicKey: pub})
}

func derivePublicKey(ctx *cli.Context) error {
	s, err := options.GetSigner(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, s.PublicKey)
	return nil
}
