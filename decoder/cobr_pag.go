package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

func decodeCobr(cur *xmlcursor.Cursor, start xml.StartElement) (document.Cobr, error) {
	var c document.Cobr
	for {
		tok, err := cur.Next()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "fat":
				v, err := decodeFat(cur, t)
				if err != nil {
					return c, err
				}
				c.Fat = &v
			case "dup":
				v, err := decodeDup(cur, t)
				if err != nil {
					return c, err
				}
				c.Dup = append(c.Dup, v)
			default:
				if err := cur.Skip(t); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return c, nil
			}
		}
	}
}

func decodeFat(cur *xmlcursor.Cursor, start xml.StartElement) (document.Fat, error) {
	var f document.Fat
	for {
		tok, err := cur.Next()
		if err != nil {
			return f, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return f, err
			}
			switch t.Name.Local {
			case "nFat":
				f.NFat = text
			case "vOrig":
				f.VOrig, err = parseDecimalPtr(text)
			case "vDesc":
				f.VDesc, err = parseDecimalPtr(text)
			case "vLiq":
				f.VLiq, err = parseDecimalPtr(text)
			}
			if err != nil {
				return f, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return f, nil
			}
		}
	}
}

func decodeDup(cur *xmlcursor.Cursor, start xml.StartElement) (document.Dup, error) {
	var d document.Dup
	for {
		tok, err := cur.Next()
		if err != nil {
			return d, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return d, err
			}
			switch t.Name.Local {
			case "nDup":
				d.NDup = text
			case "dVenc":
				d.DVenc = text
			case "vDup":
				if d.VDup, err = parseDecimal(text); err != nil {
					return d, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return d, nil
			}
		}
	}
}

func decodePag(cur *xmlcursor.Cursor, start xml.StartElement) (document.Pag, error) {
	var p document.Pag
	for {
		tok, err := cur.Next()
		if err != nil {
			return p, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "detPag":
				v, err := decodeDetPag(cur, t)
				if err != nil {
					return p, err
				}
				p.DetPag = append(p.DetPag, v)
			case "vTroco":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return p, err
				}
				if p.VTroco, err = parseDecimalPtr(text); err != nil {
					return p, err
				}
			default:
				if err := cur.Skip(t); err != nil {
					return p, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return p, nil
			}
		}
	}
}

func decodeDetPag(cur *xmlcursor.Cursor, start xml.StartElement) (document.DetPag, error) {
	var d document.DetPag
	for {
		tok, err := cur.Next()
		if err != nil {
			return d, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "card" {
				v, err := decodeCard(cur, t)
				if err != nil {
					return d, err
				}
				d.Card = &v
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return d, err
			}
			switch t.Name.Local {
			case "indPag":
				d.IndPag = text
			case "tPag":
				d.TPag = text
			case "xPag":
				d.XPag = text
			case "vPag":
				d.VPag, err = parseDecimal(text)
			case "dPag":
				d.DPag = text
			case "CNPJPag":
				d.CNPJPag = text
			case "UFPag":
				d.UFPag = text
			}
			if err != nil {
				return d, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return d, nil
			}
		}
	}
}

func decodeCard(cur *xmlcursor.Cursor, start xml.StartElement) (document.Card, error) {
	var c document.Card
	for {
		tok, err := cur.Next()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return c, err
			}
			switch t.Name.Local {
			case "tpIntegra":
				c.TpIntegra = text
			case "CNPJ":
				c.CNPJ = text
			case "tBand":
				c.TBand = text
			case "cAut":
				c.CAut = text
			case "CNPJReceb":
				c.CNPJReceb = text
			case "idTermPag":
				c.IdTermPag = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return c, nil
			}
		}
	}
}
