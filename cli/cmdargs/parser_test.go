package cmdargs

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestGetCalldata(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, set.Parse([]string{"transfer", "0x1", "100"}))
	ctx := cli.NewContext(cli.NewApp(), set, nil)
	require.Equal(t, []string{"0x1", "100"}, GetCalldata(ctx, 1))
	require.Nil(t, GetCalldata(ctx, 3))
}

func TestJSONFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": [1, 2]}`), 0644))

	var v struct {
		A []int `json:"a"`
	}
	require.NoError(t, ReadJSONFile(path, &v))
	require.Equal(t, []int{1, 2}, v.A)

	require.Error(t, ReadJSONFile(filepath.Join(t.TempDir(), "missing"), &v))
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))
	require.Error(t, ReadJSONFile(path, &v))

	buf := new(bytes.Buffer)
	require.NoError(t, WriteJSON(buf, v))
	require.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n", buf.String())
}
