// Package document is the fiscal-document data model: invoices, fiscal
// events, and their tax sub-schedules. Entities are built by exactly one
// decoder invocation each (see the decoder package) and carry no behavior
// beyond JSON serialization.
package document

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Decimal is a fixed-precision numeric field. It marshals as a bare
// JSON number preserving the exact scale it was parsed with, never as
// a quoted string and never re-normalized (so "12.50" stays "12.50",
// not "12.5").
type Decimal struct {
	decimal.Decimal
}

// ParseDecimal parses s into a Decimal, preserving its original scale.
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

// MarshalJSON renders the decimal as an unquoted numeric literal.
func (d Decimal) MarshalJSON() ([]byte, error) {
	if d.Decimal == (decimal.Decimal{}) {
		return []byte("0"), nil
	}
	return []byte(d.String()), nil
}

// String renders the decimal with the scale it was parsed with.
func (d Decimal) String() string {
	if exp := d.Decimal.Exponent(); exp < 0 {
		return d.Decimal.StringFixed(-exp)
	}
	return d.Decimal.String()
}

// mergeJSON marshals each of objs independently and shallow-merges
// the resulting objects into one, in order (later keys win). It is
// the mechanism behind every "flattened" union in this package: a
// container whose own fields must appear alongside the fields of
// whichever variant it currently holds, with no wrapper key.
func mergeJSON(objs ...interface{}) ([]byte, error) {
	merged := make(map[string]json.RawMessage)
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		raw, err := json.Marshal(obj)
		if err != nil {
			return nil, err
		}
		if string(raw) == "null" {
			continue
		}
		var part map[string]json.RawMessage
		if err := json.Unmarshal(raw, &part); err != nil {
			return nil, err
		}
		for k, v := range part {
			merged[k] = v
		}
	}
	return marshalOrdered(merged)
}

// marshalOrdered marshals a map[string]json.RawMessage with keys in
// sorted order so output is deterministic (primarily for tests).
func marshalOrdered(m map[string]json.RawMessage) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortStrings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(m[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
