package decoder

import (
	"encoding/xml"
	"strings"
	"testing"

	nferrors "github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

func startElement(t *testing.T, cur *xmlcursor.Cursor, name string) xml.StartElement {
	t.Helper()
	for {
		tok, err := cur.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == name {
			return se
		}
	}
}

func TestDecodeISIncompleteChoice(t *testing.T) {
	cur := xmlcursor.New(strings.NewReader(`<IS><CSTIS>000</CSTIS><vBCIS>100.00</vBCIS><vIS>10.00</vIS></IS>`))
	start := startElement(t, cur, "IS")

	_, err := decodeIS(cur, start)
	if err == nil {
		t.Fatal("decodeIS() error = nil, want IncompleteChoice(IS) since the pIS witness is missing")
	}
	nfe, ok := err.(*nferrors.NFError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.NFError", err)
	}
	if nfe.Type != nferrors.ErrIncompleteChoice {
		t.Errorf("error Type = %v, want ErrIncompleteChoice", nfe.Type)
	}
	if nfe.Field != "IS" {
		t.Errorf("error Field = %q, want IS", nfe.Field)
	}
}

func TestDecodeISCompleteWitnessPair(t *testing.T) {
	cur := xmlcursor.New(strings.NewReader(`<IS><CSTIS>000</CSTIS><vBCIS>100.00</vBCIS><pIS>5.00</pIS><vIS>5.00</vIS></IS>`))
	start := startElement(t, cur, "IS")

	is, err := decodeIS(cur, start)
	if err != nil {
		t.Fatalf("decodeIS() error = %v", err)
	}
	if is.PIS == nil || is.PIS.String() != "5.00" {
		t.Errorf("IS.PIS = %v, want 5.00", is.PIS)
	}
	if is.VIS == nil || is.VIS.String() != "5.00" {
		t.Errorf("IS.VIS = %v, want 5.00", is.VIS)
	}
}
