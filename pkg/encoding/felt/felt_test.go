package felt

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := map[string]struct {
		in  string
		dec string
		hex string
	}{
		"zero":     {"0", "0", "0x0"},
		"hex zero": {"0x0", "0", "0x0"},
		"decimal":  {"100", "100", "0x64"},
		"hex":      {"0x0def", "3567", "0xdef"},
		"max": {
			"0x800000000000011000000000000000000000000000000000000000000000000",
			"3618502788666131213697322783095070105623107215331596699973092056135872020480",
			"0x800000000000011000000000000000000000000000000000000000000000000",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			f, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.dec, f.String())
			assert.Equal(t, tc.hex, f.Hex())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "0x", "-1", "+1", "0.5", "abc", "0xzz", PrimeHex} {
		_, err := Parse(s)
		require.Error(t, err, s)
	}
	_, err := FromBig(new(big.Int).Lsh(big.NewInt(1), 300))
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = FromBig(big.NewInt(-5))
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	a := FromUint64(5)
	b, err := FromBig(big.NewInt(5))
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.Equal(t, 0, a.Cmp(b))
	require.Equal(t, -1, FromUint64(1).Cmp(a))
	require.True(t, Felt{}.IsZero())
	require.False(t, a.IsZero())
	require.Equal(t, 0, Prime().Cmp(primeBig))
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal([]Felt{FromUint64(1), FromUint64(255)})
	require.NoError(t, err)
	require.Equal(t, `["1","255"]`, string(data))

	var fs []Felt
	require.NoError(t, json.Unmarshal([]byte(`["0xff","2"]`), &fs))
	require.Equal(t, []string{"255", "2"}, Strings(fs))

	require.Error(t, json.Unmarshal([]byte(`[1]`), &fs))
	require.Error(t, json.Unmarshal([]byte(`["x"]`), &fs))
}

func TestHexHelpers(t *testing.T) {
	require.True(t, HasHexPrefix("0x1"))
	require.False(t, HasHexPrefix("1"))
	require.Equal(t, "ab", RemoveHexPrefix("0xab"))
	require.Equal(t, "ab", RemoveHexPrefix("ab"))
	require.Equal(t, "0xab", AddHexPrefix("ab"))
	require.Equal(t, "0xab", AddHexPrefix("0xab"))

	h, err := HexAddress("0x0def")
	require.NoError(t, err)
	require.Equal(t, "0x0def", h)
	h, err = HexAddress("3567")
	require.NoError(t, err)
	require.Equal(t, "0x0def", h)
	_, err = HexAddress("zz")
	require.Error(t, err)

	require.Equal(t, "00abc", SanitizeBytes("abc", 5, '0'))
	require.Equal(t, "0000000a", SanitizeBytes("a", 8, '0'))
	require.Equal(t, "abcd", SanitizeBytes("abcd", 2, '0'))
	require.Equal(t, "abc", SanitizeBytes("abc", 0, '0'))
}
