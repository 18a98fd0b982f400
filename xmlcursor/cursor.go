// Package xmlcursor is a thin pull-style wrapper over encoding/xml's
// streaming token reader. It plays the same role for this worker that
// quick_xml::Reader plays in the upstream source: a forward-only
// cursor the decoder package drives one token at a time, without
// buffering a whole document into a DOM.
package xmlcursor

import (
	"encoding/xml"
	"io"

	"github.com/biel-despair/fiscal-doc-worker/errors"
)

// Cursor wraps *xml.Decoder with the few operations the decoder
// package actually needs: advance one token, read the text content of
// an element, and read one of its attributes.
type Cursor struct {
	dec *xml.Decoder
}

// New builds a Cursor reading from r.
func New(r io.Reader) *Cursor {
	return &Cursor{dec: xml.NewDecoder(r)}
}

// Next returns the next XML token, or io.EOF when the stream is
// exhausted.
func (c *Cursor) Next() (xml.Token, error) {
	return c.dec.Token()
}

// Attr returns the value of the attribute named key on start, and
// whether it was present.
func (c *Cursor) Attr(start xml.StartElement, key string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == key {
			return a.Value, true
		}
	}
	return "", false
}

// ReadTextOf reads and concatenates character data until the matching
// end tag for start, then returns it. It fails with UnexpectedEOF if
// the stream ends before the matching end tag is seen.
func (c *Cursor) ReadTextOf(start xml.StartElement) (string, error) {
	var text string
	for {
		tok, err := c.dec.Token()
		if err == io.EOF {
			return "", errors.NewUnexpectedEOFError(start.Name.Local)
		}
		if err != nil {
			return "", errors.NewXMLError("token read failed", start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text += string(t)
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return text, nil
			}
		}
	}
}

// Skip discards every token up to and including the matching end tag
// for start, without inspecting its descendants. Used for
// recognized-and-skipped subtrees (e.g. Signature elements).
func (c *Cursor) Skip(start xml.StartElement) error {
	depth := 1
	for depth > 0 {
		tok, err := c.dec.Token()
		if err == io.EOF {
			return errors.NewUnexpectedEOFError(start.Name.Local)
		}
		if err != nil {
			return errors.NewXMLError("token read failed", start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == start.Name.Local {
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				depth--
			}
		}
	}
	return nil
}
