package contract

import (
	"fmt"

	"github.com/starkyproject/starky-go/pkg/encoding/felt"
)

// maxOutputLength bounds array lengths taken from call outputs.
const maxOutputLength = 1 << 20

func parseLength(s string) (int, error) {
	v, err := felt.ParseBig(s)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() || v.Int64() > maxOutputLength {
		return 0, fmt.Errorf("length %s is too big", v)
	}
	return int(v.Int64()), nil
}
