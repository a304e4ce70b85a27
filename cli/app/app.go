package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/starkyproject/starky-go/cli/query"
	"github.com/starkyproject/starky-go/cli/smartcontract"
	"github.com/starkyproject/starky-go/cli/util"
	"github.com/starkyproject/starky-go/cli/wallet"
	"github.com/starkyproject/starky-go/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "Starky\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a Starky instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "starky"
	ctl.Version = config.Version
	ctl.Usage = "Go client for StarkNet gateways"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, wallet.NewCommands()...)
	ctl.Commands = append(ctl.Commands, smartcontract.NewCommands()...)
	ctl.Commands = append(ctl.Commands, query.NewCommands()...)
	ctl.Commands = append(ctl.Commands, util.NewCommands()...)
	return ctl
}
