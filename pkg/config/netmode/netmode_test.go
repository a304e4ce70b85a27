package netmode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	n, err := Parse("mainnet")
	require.NoError(t, err)
	require.Equal(t, MainNet, n)
	require.Equal(t, "https://alpha-mainnet.starknet.io", n.BaseURL())

	n, err = Parse("goerli")
	require.NoError(t, err)
	require.Equal(t, "https://alpha4.starknet.io", n.BaseURL())
	require.Equal(t, "goerli", n.String())

	_, err = Parse("testnet")
	require.Error(t, err)
	require.Empty(t, Network("testnet").BaseURL())
}
