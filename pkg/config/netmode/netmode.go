/*
Package netmode contains the list of known gateway networks.
*/
package netmode

import (
	"fmt"
)

// Network is a gateway network name.
type Network string

const (
	// MainNet is the main public network.
	MainNet Network = "mainnet"
	// Goerli is the public test network.
	Goerli Network = "goerli"
)

var baseURLs = map[Network]string{
	MainNet: "https://alpha-mainnet.starknet.io",
	Goerli:  "https://alpha4.starknet.io",
}

// Parse returns the Network for the given name.
func Parse(name string) (Network, error) {
	n := Network(name)
	if _, ok := baseURLs[n]; !ok {
		return "", fmt.Errorf("unknown network %q", name)
	}
	return n, nil
}

// BaseURL returns the default gateway URL of the network, it's empty for
// unknown networks.
func (n Network) BaseURL() string {
	return baseURLs[n]
}

// String implements the fmt.Stringer interface.
func (n Network) String() string {
	return string(n)
}
