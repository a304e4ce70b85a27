package cmdargs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

// CalldataDoc is a documentation for calldata arguments.
const CalldataDoc = `   Calldata values are field elements given either as decimal numbers or as
   0x-prefixed hex strings. Structs and arrays are passed flattened, arrays
   are preceded by their length.
`

// GetCalldata returns command arguments starting from the given position.
func GetCalldata(ctx *cli.Context, from int) []string {
	args := ctx.Args()
	if len(args) <= from {
		return nil
	}
	return append([]string(nil), args[from:]...)
}

// ReadJSONFile decodes JSON from the given file into v.
func ReadJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("can't read file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("can't parse %s: %w", path, err)
	}
	return nil
}

// WriteJSON prints v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
