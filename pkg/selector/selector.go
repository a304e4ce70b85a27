/*
Package selector derives entry point selectors from function names.
*/
package selector

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru"
	"github.com/starkyproject/starky-go/pkg/crypto/hash"
)

const (
	// DefaultEntryPoint is the fallback entry point name.
	DefaultEntryPoint = "__default__"
	// L1DefaultEntryPoint is the fallback L1 handler name.
	L1DefaultEntryPoint = "__l1_default__"

	cacheSize = 1024
)

// Selector is an entry point selector in both hex and decimal forms.
type Selector struct {
	Hex string
	Int string
}

// zero is the selector of default entry points.
var zero = Selector{Hex: "0", Int: "0"}

var cache *lru.Cache

func init() {
	var err error
	cache, err = lru.New(cacheSize)
	if err != nil {
		panic(err)
	}
}

// IsDefaultEntryPoint checks whether name is one of the default entry points.
func IsDefaultEntryPoint(name string) bool {
	return name == DefaultEntryPoint || name == L1DefaultEntryPoint
}

// FromName returns the selector for the given function name. Default entry
// points map to zero, any other name to its Keccak-256 truncated to 250 bits.
func FromName(name string) Selector {
	if IsDefaultEntryPoint(name) {
		return zero
	}
	if v, ok := cache.Get(name); ok {
		return v.(Selector)
	}
	f := hash.StarknetKeccak([]byte(name))
	s := Selector{Hex: f.Hex(), Int: f.String()}
	cache.Add(name, s)
	return s
}

// Big returns the selector value as a big.Int.
func (s Selector) Big() *big.Int {
	v, _ := new(big.Int).SetString(s.Int, 10)
	return v
}
