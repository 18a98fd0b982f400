package xmlcursor

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestReadTextOf(t *testing.T) {
	c := New(strings.NewReader(`<root><vBC>100.00</vBC></root>`))

	var start xml.StartElement
	for {
		tok, err := c.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "vBC" {
			start = se
			break
		}
	}

	text, err := c.ReadTextOf(start)
	if err != nil {
		t.Fatalf("ReadTextOf() error = %v", err)
	}
	if text != "100.00" {
		t.Errorf("ReadTextOf() = %q, want %q", text, "100.00")
	}
}

func TestReadTextOfUnexpectedEOF(t *testing.T) {
	c := New(strings.NewReader(`<root><vBC>100.00`))

	var start xml.StartElement
	for {
		tok, err := c.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "vBC" {
			start = se
			break
		}
	}

	if _, err := c.ReadTextOf(start); err == nil {
		t.Error("ReadTextOf() expected error on truncated stream, got nil")
	}
}

func TestSkip(t *testing.T) {
	c := New(strings.NewReader(`<root><Signature><a><b/></a></Signature><after/></root>`))

	var start xml.StartElement
	for {
		tok, err := c.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "Signature" {
			start = se
			break
		}
	}

	if err := c.Skip(start); err != nil {
		t.Fatalf("Skip() error = %v", err)
	}

	tok, err := c.Next()
	if err != nil {
		t.Fatalf("Next() after Skip() error = %v", err)
	}
	se, ok := tok.(xml.StartElement)
	if !ok || se.Name.Local != "after" {
		t.Errorf("Next() after Skip() = %v, want <after>", tok)
	}
}

func TestAttr(t *testing.T) {
	c := New(strings.NewReader(`<infEvento Id="ID1101110001"></infEvento>`))

	tok, err := c.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	start := tok.(xml.StartElement)

	id, ok := c.Attr(start, "Id")
	if !ok || id != "ID1101110001" {
		t.Errorf("Attr(Id) = %q, %v, want %q, true", id, ok, "ID1101110001")
	}

	if _, ok := c.Attr(start, "missing"); ok {
		t.Error("Attr(missing) expected ok=false")
	}
}
