/*
Package result contains the structures of gateway responses along with their
schema checks.
*/
package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Status is a transaction or block status.
type Status string

// Known statuses.
const (
	Received     Status = "RECEIVED"
	NotReceived  Status = "NOT_RECEIVED"
	Pending      Status = "PENDING"
	AcceptedOnL1 Status = "ACCEPTED_ON_L1"
	AcceptedOnL2 Status = "ACCEPTED_ON_L2"
	Rejected     Status = "REJECTED"
)

// HashMinLength is the minimal length of block and transaction hash strings.
const HashMinLength = 62

// Validator is implemented by every response type.
type Validator interface {
	Validate() error
}

// Valid checks whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case Received, NotReceived, Pending, AcceptedOnL1, AcceptedOnL2, Rejected:
		return true
	}
	return false
}

func checkStatus(field string, s Status) error {
	if !s.Valid() {
		return fmt.Errorf("%s: unknown status %q", field, s)
	}
	return nil
}

func checkHash(field string, h string) error {
	if len(h) < HashMinLength {
		return fmt.Errorf("%s: expected at least %d characters, got %d", field, HashMinLength, len(h))
	}
	return nil
}

func checkRequired(field string, s string) error {
	if s == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func checkArray(field string, a []string) error {
	if a == nil {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// Decode decodes data into v rejecting unknown fields and trailing data, then
// validates v if it implements Validator.
func Decode(data []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(v); err != nil {
		return err
	}
	if d.More() {
		return errors.New("unexpected data after JSON value")
	}
	if val, ok := v.(Validator); ok {
		return val.Validate()
	}
	return nil
}
