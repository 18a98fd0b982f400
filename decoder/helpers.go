// Package decoder turns streaming XML tokens from xmlcursor into the
// document package's entities. Every sub-decoder follows the same
// shape: accumulate scalar children by element name as they arrive,
// and resolve the record on the element's own End token. Unknown
// child elements are skipped rather than failing the document; no
// warning or other log line is emitted for them.
package decoder

import (
	"encoding/xml"
	"strconv"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// boolFromFlag implements the schema-wide textual boolean rule: "1"
// is true, anything else is false.
func boolFromFlag(s string) bool {
	return s == "1"
}

func parseDecimal(s string) (document.Decimal, error) {
	d, err := document.ParseDecimal(s)
	if err != nil {
		return document.Decimal{}, errors.NewXMLError("invalid decimal field", s, err)
	}
	return d, nil
}

func parseDecimalPtr(s string) (*document.Decimal, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewXMLError("invalid integer field", s, err)
	}
	return n, nil
}

func parseIntPtr(s string) (*int, error) {
	n, err := parseInt(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// readEmitenteIdField reads one of CNPJ/CPF/idEstrangeiro as the next
// child of the enclosing element, given its element name already
// arrived as start.
func readEmitenteIdField(cur *xmlcursor.Cursor, start xml.StartElement) (document.EmitenteId, error) {
	text, err := cur.ReadTextOf(start)
	if err != nil {
		return document.EmitenteId{}, err
	}
	switch start.Name.Local {
	case "CNPJ":
		return document.NewEmitenteIdCNPJ(text), nil
	case "CPF":
		return document.NewEmitenteIdCPF(text), nil
	case "idEstrangeiro":
		return document.NewEmitenteIdForeign(text), nil
	}
	return document.EmitenteId{}, nil
}

func isEmitenteIdField(name string) bool {
	return name == "CNPJ" || name == "CPF" || name == "idEstrangeiro"
}
