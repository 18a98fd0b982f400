package decoder

import (
	"encoding/xml"
	"io"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// DecodeInvoiceBatch scans r for a single invoice document (NFe,
// nfeProc, or their model-57/model-other rejects) and wraps the
// decoded result with the routing pair supplied by the job
// descriptor. Root elements that classify as transport-invoice,
// batch, or event documents are out of this decoder's scope; callers
// route those bytes to the appropriate sibling decoder instead.
func DecodeInvoiceBatch(r io.Reader, companyID, orgID int64) (document.InvoiceBatch, error) {
	cur := xmlcursor.New(r)
	root, err := firstStartElement(cur)
	if err != nil {
		return document.InvoiceBatch{}, err
	}

	var infNFeStart *xml.StartElement
	switch root.Name.Local {
	case "NFe":
		infNFeStart = &root
	case "nfeProc":
		start, err := findChild(cur, root, "NFe")
		if err != nil {
			return document.InvoiceBatch{}, err
		}
		infNFeStart = start
	default:
		return document.InvoiceBatch{}, errors.NewUnknownModelError(root.Name.Local)
	}

	infNFe, err := findChild(cur, *infNFeStart, "infNFe")
	if err != nil {
		return document.InvoiceBatch{}, err
	}

	nfe, err := decodeNFe(cur, *infNFe)
	if err == io.EOF {
		err = errors.NewUnexpectedEOFError(infNFe.Name.Local)
	}
	if err != nil {
		return document.InvoiceBatch{}, err
	}

	if mod := modelOf(nfe); mod != "55" && mod != "65" {
		return document.InvoiceBatch{}, errors.NewUnknownModelError("mod=" + mod)
	}

	return document.InvoiceBatch{
		CompanyID: companyID,
		OrgID:     orgID,
		Invoices:  []document.NFe{nfe},
	}, nil
}

func modelOf(nfe document.NFe) string {
	switch nfe.Ide.Mod {
	case 55:
		return "55"
	case 65:
		return "65"
	case 57:
		return "57"
	default:
		return ""
	}
}

// DecodeEventBatch scans r for a single event document (evento or
// procEventoNFe) and wraps it with the routing pair supplied by the
// job descriptor.
func DecodeEventBatch(r io.Reader, companyID, orgID int64) (document.EventBatch, error) {
	cur := xmlcursor.New(r)
	root, err := firstStartElement(cur)
	if err != nil {
		return document.EventBatch{}, err
	}

	var entry interface{}
	switch root.Name.Local {
	case "evento":
		v, err := decodeEvent(cur, root)
		if err == io.EOF {
			err = errors.NewUnexpectedEOFError(root.Name.Local)
		}
		if err != nil {
			return document.EventBatch{}, err
		}
		entry = v
	case "procEventoNFe":
		v, err := decodeProcEvent(cur, root)
		if err == io.EOF {
			err = errors.NewUnexpectedEOFError(root.Name.Local)
		}
		if err != nil {
			return document.EventBatch{}, err
		}
		entry = v
	default:
		return document.EventBatch{}, errors.NewUnknownModelError(root.Name.Local)
	}

	return document.EventBatch{
		CompanyID: companyID,
		OrgID:     orgID,
		Events:    []interface{}{entry},
	}, nil
}

// firstStartElement scans forward to the document's first Start
// token, matching spec.md §4.2's root-dispatch entry point.
func firstStartElement(cur *xmlcursor.Cursor) (xml.StartElement, error) {
	for {
		tok, err := cur.Next()
		if err == io.EOF {
			return xml.StartElement{}, errors.NewUnexpectedEOFError("document root")
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// findChild scans forward within the subtree opened by outer for the
// first Start token named name, skipping any other children
// encountered along the way.
func findChild(cur *xmlcursor.Cursor, outer xml.StartElement, name string) (*xml.StartElement, error) {
	for {
		tok, err := cur.Next()
		if err == io.EOF {
			return nil, errors.NewUnexpectedEOFError(outer.Name.Local)
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == name {
				return &t, nil
			}
			if err := cur.Skip(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if t.Name.Local == outer.Name.Local {
				return nil, errors.NewUnknownModelError(name + " not found in " + outer.Name.Local)
			}
		}
	}
}
