package contract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ABI entry types.
const (
	FunctionType    = "function"
	ConstructorType = "constructor"
	StructType      = "struct"
	L1HandlerType   = "l1_handler"
	EventType       = "event"
)

// Basic value types.
const (
	FeltType      = "felt"
	FeltArrayType = "felt*"
)

// arrayLenSuffix marks the output holding the length of the array following
// it.
const arrayLenSuffix = "_len"

type (
	// ABI is a contract ABI.
	ABI []Entry

	// Entry is a function, constructor, event or struct definition.
	Entry struct {
		Type            string     `json:"type"`
		Name            string     `json:"name"`
		StateMutability string     `json:"stateMutability,omitempty"`
		Inputs          []Argument `json:"inputs,omitempty"`
		Outputs         []Argument `json:"outputs,omitempty"`
		Members         []Member   `json:"members,omitempty"`
		Size            int        `json:"size,omitempty"`
		Keys            []Argument `json:"keys,omitempty"`
		Data            []Argument `json:"data,omitempty"`
	}

	// Argument is a function input or output.
	Argument struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}

	// Member is a struct member.
	Member struct {
		Name   string `json:"name"`
		Offset int    `json:"offset"`
		Type   string `json:"type"`
	}
)

// ParseABI decodes ABI from its JSON representation.
func ParseABI(data []byte) (ABI, error) {
	var a ABI
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("invalid ABI: %w", err)
	}
	return a, nil
}

// Function returns a function (or l1 handler) entry by name.
func (a ABI) Function(name string) (*Entry, bool) {
	for i := range a {
		if a[i].Name == name && (a[i].Type == FunctionType || a[i].Type == L1HandlerType) {
			return &a[i], true
		}
	}
	return nil, false
}

func (a ABI) structByName(name string) (*Entry, bool) {
	for i := range a {
		if a[i].Name == name && a[i].Type == StructType {
			return &a[i], true
		}
	}
	return nil, false
}

// typeWidth returns the number of felts a value of type typ occupies. Tuples
// and pointers other than felt* are not supported.
func (a ABI) typeWidth(typ string) (int, error) {
	if typ == FeltType {
		return 1, nil
	}
	if s, ok := a.structByName(typ); ok {
		if s.Size < 0 {
			return 0, fmt.Errorf("struct %q has negative size %d", typ, s.Size)
		}
		return s.Size, nil
	}
	return 0, fmt.Errorf("unsupported type %q", typ)
}

// OutputWidth returns the number of felts the outputs of function take. It
// fails for functions returning arrays since their size depends on data.
func (a ABI) OutputWidth(function string) (int, error) {
	fn, ok := a.Function(function)
	if !ok {
		return 0, fmt.Errorf("function %q is not in ABI", function)
	}
	var width int
	for _, o := range fn.Outputs {
		if o.Type == FeltArrayType {
			return 0, fmt.Errorf("output %q of %q has dynamic width", o.Name, function)
		}
		w, err := a.typeWidth(o.Type)
		if err != nil {
			return 0, fmt.Errorf("output %q of %q: %w", o.Name, function, err)
		}
		width += w
	}
	return width, nil
}

// DecodeOutput takes outputs of function from the beginning of data and
// returns them by name along with the rest of data. Struct and array values
// are joined with spaces.
func (a ABI) DecodeOutput(function string, data []string) (map[string]string, []string, error) {
	fn, ok := a.Function(function)
	if !ok {
		return nil, nil, fmt.Errorf("function %q is not in ABI", function)
	}
	var (
		res     = make(map[string]string, len(fn.Outputs))
		lengths = make(map[string]int)
	)
	for _, o := range fn.Outputs {
		var width int
		if o.Type == FeltArrayType {
			l, ok := lengths[o.Name+arrayLenSuffix]
			if !ok {
				return nil, nil, fmt.Errorf("no length for array output %q", o.Name)
			}
			width = l
		} else {
			w, err := a.typeWidth(o.Type)
			if err != nil {
				return nil, nil, fmt.Errorf("output %q: %w", o.Name, err)
			}
			width = w
		}
		if width > len(data) {
			return nil, nil, fmt.Errorf("output %q: expected %d values, got %d", o.Name, width, len(data))
		}
		if o.Type == FeltType && strings.HasSuffix(o.Name, arrayLenSuffix) {
			l, err := parseLength(data[0])
			if err != nil {
				return nil, nil, fmt.Errorf("output %q: %w", o.Name, err)
			}
			lengths[o.Name] = l
		}
		res[o.Name] = strings.Join(data[:width], " ")
		data = data[width:]
	}
	return res, data, nil
}
