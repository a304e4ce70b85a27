package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starkyproject/starky-go/pkg/config/netmode"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "starky.yml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, netmode.Goerli, cfg.Network)
	require.Equal(t, "https://alpha4.starknet.io", cfg.GatewayURL())
	require.Zero(t, cfg.Provider.RequestTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `
Network: mainnet
Gateways:
  mainnet: http://localhost:8080
Provider:
  RequestTimeout: 5s
ApplicationConfiguration:
  LogLevel: debug
  LogPath: ""
`)
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.Equal(t, netmode.MainNet, cfg.Network)
	require.Equal(t, "http://localhost:8080", cfg.GatewayURL())
	require.Equal(t, 5*time.Second, cfg.Provider.RequestTimeout)
	require.Equal(t, "debug", cfg.ApplicationConfiguration.LogLevel)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "Unknown: 1\n"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "Network: devnet\n"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "ApplicationConfiguration:\n  LogLevel: loud\n"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "ApplicationConfiguration:\n  LogEncoding: xml\n"))
	require.Error(t, err)
}

func TestCustomNetwork(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "Network: devnet\nGateways:\n  devnet: http://127.0.0.1:5050\n"))
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:5050", cfg.GatewayURL())
}

func TestShippedConfigs(t *testing.T) {
	for n, file := range map[netmode.Network]string{
		netmode.MainNet: "../../config/starky.mainnet.yml",
		netmode.Goerli:  "../../config/starky.goerli.yml",
	} {
		cfg, err := LoadFile(file)
		require.NoError(t, err, file)
		require.Equal(t, n, cfg.Network)
		require.Equal(t, n.BaseURL(), cfg.GatewayURL())
		require.Equal(t, 30*time.Second, cfg.Provider.RequestTimeout)
	}
}
