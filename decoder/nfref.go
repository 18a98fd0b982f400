package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeNFRef reads one <NFref> element. The first non-text child
// decides the variant.
func decodeNFRef(cur *xmlcursor.Cursor, start xml.StartElement) (document.NFRef, error) {
	for {
		tok, err := cur.Next()
		if err != nil {
			return document.NFRef{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "refNFe":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return document.NFRef{}, err
				}
				return document.NFRef{Kind: document.NFRefKeyNFe, KeyNFe: text}, nil
			case "refNFeSig":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return document.NFRef{}, err
				}
				return document.NFRef{Kind: document.NFRefKeyNFeSig, KeyNFeSig: text}, nil
			case "refNF":
				rnf, err := decodeRefNF(cur, t)
				if err != nil {
					return document.NFRef{}, err
				}
				return document.NFRef{Kind: document.NFRefNF, NF: rnf}, nil
			case "refNFP":
				rnfp, err := decodeRefNFP(cur, t)
				if err != nil {
					return document.NFRef{}, err
				}
				return document.NFRef{Kind: document.NFRefNFP, NFP: rnfp}, nil
			case "refCTe":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return document.NFRef{}, err
				}
				return document.NFRef{Kind: document.NFRefCTe, CTeKey: text}, nil
			case "refECF":
				recf, err := decodeRefECF(cur, t)
				if err != nil {
					return document.NFRef{}, err
				}
				return document.NFRef{Kind: document.NFRefECF, ECF: recf}, nil
			default:
				if err := cur.Skip(t); err != nil {
					return document.NFRef{}, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return document.NFRef{}, errors.NewIncompleteChoiceError(start.Name.Local)
			}
		}
	}
}

func decodeRefNF(cur *xmlcursor.Cursor, start xml.StartElement) (document.RefNF, error) {
	var r document.RefNF
	for {
		tok, err := cur.Next()
		if err != nil {
			return r, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return r, err
			}
			switch t.Name.Local {
			case "cUF":
				if r.CUF, err = parseInt(text); err != nil {
					return r, err
				}
			case "AAMM":
				r.AAMM = text
			case "CNPJ":
				r.CNPJ = text
			case "mod":
				if r.Mod, err = parseInt(text); err != nil {
					return r, err
				}
			case "serie":
				if r.Serie, err = parseInt(text); err != nil {
					return r, err
				}
			case "nNF":
				if r.NNF, err = parseInt(text); err != nil {
					return r, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return r, nil
			}
		}
	}
}

func decodeRefNFP(cur *xmlcursor.Cursor, start xml.StartElement) (document.RefNFP, error) {
	var r document.RefNFP
	for {
		tok, err := cur.Next()
		if err != nil {
			return r, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if isEmitenteIdField(t.Name.Local) {
				id, err := readEmitenteIdField(cur, t)
				if err != nil {
					return r, err
				}
				r.Id = id
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return r, err
			}
			switch t.Name.Local {
			case "cUF":
				if r.CUF, err = parseInt(text); err != nil {
					return r, err
				}
			case "AAMM":
				r.AAMM = text
			case "IE":
				r.IE = text
			case "mod":
				if r.Mod, err = parseInt(text); err != nil {
					return r, err
				}
			case "serie":
				if r.Serie, err = parseInt(text); err != nil {
					return r, err
				}
			case "nNF":
				if r.NNF, err = parseInt(text); err != nil {
					return r, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return r, nil
			}
		}
	}
}

func decodeRefECF(cur *xmlcursor.Cursor, start xml.StartElement) (document.RefECF, error) {
	var r document.RefECF
	for {
		tok, err := cur.Next()
		if err != nil {
			return r, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return r, err
			}
			switch t.Name.Local {
			case "mod":
				r.Mod = text
			case "nECF":
				r.NECF = text
			case "nCOO":
				r.NCOO = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return r, nil
			}
		}
	}
}
