package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/starkyproject/starky-go/pkg/config/netmode"
	"gopkg.in/yaml.v3"
)

// DefaultNetwork is the network used when none is configured.
const DefaultNetwork = netmode.Goerli

// Version is the version of the SDK, set at build time.
var Version string

// Config top level struct representing the SDK and CLI configuration.
type Config struct {
	Network netmode.Network `yaml:"Network"`
	// Gateways overrides default gateway URLs per network.
	Gateways                 map[netmode.Network]string `yaml:"Gateways"`
	Provider                 Provider                   `yaml:"Provider"`
	ApplicationConfiguration ApplicationConfiguration   `yaml:"ApplicationConfiguration"`
}

// Provider contains gateway client settings.
type Provider struct {
	// RequestTimeout limits a single gateway request, zero means no limit.
	RequestTimeout time.Duration `yaml:"RequestTimeout"`
	// DialTimeout limits connection establishment, zero means no limit.
	DialTimeout     time.Duration `yaml:"DialTimeout"`
	MaxConnsPerHost int           `yaml:"MaxConnsPerHost"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Network: DefaultNetwork,
		ApplicationConfiguration: ApplicationConfiguration{
			LogLevel: "info",
		},
	}
}

// Load attempts to load the config from the given file, the default
// configuration is returned for an empty path.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads config from the provided path. Unknown fields are rejected.
func LoadFile(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config '%s' doesn't exist", configPath)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if _, err := netmode.Parse(string(c.Network)); err != nil {
		if c.Gateways[c.Network] == "" {
			return fmt.Errorf("invalid Network: %w", err)
		}
	}
	if c.Provider.RequestTimeout < 0 || c.Provider.DialTimeout < 0 {
		return fmt.Errorf("negative Provider timeout")
	}
	return c.ApplicationConfiguration.Validate()
}

// GatewayURL returns the gateway URL for the configured network, overrides
// take precedence over defaults.
func (c Config) GatewayURL() string {
	if u := c.Gateways[c.Network]; u != "" {
		return u
	}
	return c.Network.BaseURL()
}
