package transaction

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	stdjson "encoding/json"
	"fmt"

	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/starkyproject/starky-go/pkg/encoding/felt"
	"github.com/starkyproject/starky-go/pkg/errs"
)

// DeployType is the gateway type tag of deploy transactions.
const DeployType = "DEPLOY"

// ContractDefinition is a compiled contract as produced by the compiler.
// Program is kept raw, it's compressed as is with key order preserved.
type ContractDefinition struct {
	ABI               stdjson.RawMessage `json:"abi"`
	EntryPointsByType stdjson.RawMessage `json:"entry_points_by_type"`
	Program           stdjson.RawMessage `json:"program"`
}

// CompressedDefinition is a ContractDefinition with the program compressed
// for transmission.
type CompressedDefinition struct {
	ABI               stdjson.RawMessage `json:"abi"`
	EntryPointsByType stdjson.RawMessage `json:"entry_points_by_type"`
	Program           string             `json:"program"`
}

// Deploy is the JSON payload of deploy transactions.
type Deploy struct {
	Type                string               `json:"type"`
	ContractAddressSalt string               `json:"contract_address_salt"`
	ConstructorCalldata []string             `json:"constructor_calldata"`
	ContractDefinition  CompressedDefinition `json:"contract_definition"`
}

// CompressProgram re-serializes the program JSON compactly keeping key order,
// gzips it and returns the result base64-encoded.
func CompressProgram(program []byte) (string, error) {
	d := json.NewDecoder(bytes.NewReader(program))
	d.UseOrderedObject()

	var v interface{}
	if err := d.Decode(&v); err != nil {
		return "", fmt.Errorf("invalid program: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// BuildDeployPayload creates a deploy transaction for the contract.
func BuildDeployPayload(def ContractDefinition, salt string, constructorCalldata []string) (*Deploy, error) {
	s, err := felt.Parse(salt)
	if err != nil {
		return nil, errs.NewValidationError("invalid contract address salt %q", salt)
	}
	data := make([]string, len(constructorCalldata))
	for i, c := range constructorCalldata {
		v, err := felt.Parse(c)
		if err != nil {
			return nil, errs.NewValidationError("invalid constructor calldata[%d] %q", i, c)
		}
		data[i] = v.String()
	}
	program, err := CompressProgram(def.Program)
	if err != nil {
		return nil, err
	}
	return &Deploy{
		Type:                DeployType,
		ContractAddressSalt: s.Hex(),
		ConstructorCalldata: data,
		ContractDefinition: CompressedDefinition{
			ABI:               orEmpty(def.ABI, "[]"),
			EntryPointsByType: orEmpty(def.EntryPointsByType, "{}"),
			Program:           program,
		},
	}, nil
}

func orEmpty(m stdjson.RawMessage, def string) stdjson.RawMessage {
	if len(m) == 0 {
		return stdjson.RawMessage(def)
	}
	return m
}
