/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/starkyproject/starky-go/cli/input"
	"github.com/starkyproject/starky-go/pkg/config"
	"github.com/starkyproject/starky-go/pkg/config/netmode"
	"github.com/starkyproject/starky-go/pkg/crypto/curve"
	"github.com/starkyproject/starky-go/pkg/provider"
	"github.com/starkyproject/starky-go/pkg/signer"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultTimeout is the default timeout used for gateway requests.
const DefaultTimeout = 30 * time.Second

// GatewayFlag is a long flag name for the gateway URL. It can be used to
// check for flag presence in the context.
const GatewayFlag = "gateway"

// PrivateKeyEnv is the environment variable the private key can be passed
// in.
const PrivateKeyEnv = "STARKY_PRIVATE_KEY"

// Network is a set of flags for choosing the network to operate on.
var Network = []cli.Flag{
	cli.StringFlag{
		Name:  "network, n",
		Usage: "network to use (mainnet/goerli), overrides configuration",
	},
	cli.StringFlag{
		Name:  GatewayFlag + ", g",
		Usage: "gateway base URL, overrides network default",
	},
	ConfigFile,
}

// Gateway is a set of flags used for gateway connections.
var Gateway = append([]cli.Flag{
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
	Debug,
}, Network...)

// ConfigFile is a flag for commands that use SDK configuration.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the configuration file",
}

// Debug is a flag enabling debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (overrides configuration)",
}

// PrivateKey is a flag for commands signing something.
var PrivateKey = cli.StringFlag{
	Name:   "private-key, k",
	Usage:  "hex private key, asked for interactively if not given",
	EnvVar: PrivateKeyEnv,
}

var errNoPrivateKey = errors.New("no private key given")

// GetTimeoutContext returns a context.Context with the default or a user-set timeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur == 0 {
		dur = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// GetConfigFromContext loads the configuration file if one is given and
// applies network and gateway flags on top of it.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.String("config-file"))
	if err != nil {
		return cfg, err
	}
	if name := ctx.String("network"); name != "" {
		n, err := netmode.Parse(name)
		if err != nil {
			return cfg, err
		}
		cfg.Network = n
	}
	if gw := ctx.String(GatewayFlag); gw != "" {
		if cfg.Gateways == nil {
			cfg.Gateways = make(map[netmode.Network]string)
		}
		cfg.Gateways[cfg.Network] = gw
	}
	return cfg, nil
}

// GetProvider returns a gateway provider and a logger for the given Context.
func GetProvider(ctx *cli.Context) (*provider.Provider, *zap.Logger, cli.ExitCoder) {
	cfg, err := GetConfigFromContext(ctx)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	log, _, err := HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	p, err := provider.NewFromConfig(cfg, log)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	return p, log, nil
}

// GetSigner returns a signer using the private key from the flag, the
// environment or the terminal.
func GetSigner(ctx *cli.Context) (*signer.Signer, error) {
	key := ctx.String("private-key")
	if key == "" {
		var err error
		key, err = input.ReadPassword(ctx.App.Writer, "Enter private key > ")
		if err != nil {
			return nil, fmt.Errorf("error reading private key: %w", err)
		}
	}
	if key == "" {
		return nil, errNoPrivateKey
	}
	return signer.New(curve.NewStark(), key)
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, *zap.AtomicLevel, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	if cfg.LogEncoding != "" {
		cc.Encoding = cfg.LogEncoding
	}
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
			return nil, nil, fmt.Errorf("could not create dir for logger: %w", err)
		}
		cc.OutputPaths = []string{logPath}
	}

	log, err := cc.Build()
	return log, &cc.Level, err
}
