package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

func decodeGDif(cur *xmlcursor.Cursor, start xml.StartElement) (document.GDif, error) {
	var g document.GDif
	for {
		tok, err := cur.Next()
		if err != nil {
			return g, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return g, err
			}
			switch t.Name.Local {
			case "pDif":
				g.PDif, err = parseDecimalPtr(text)
			case "vDif":
				g.VDif, err = parseDecimalPtr(text)
			}
			if err != nil {
				return g, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return g, nil
			}
		}
	}
}

func decodeGDevTrib(cur *xmlcursor.Cursor, start xml.StartElement) (document.GDevTrib, error) {
	var g document.GDevTrib
	for {
		tok, err := cur.Next()
		if err != nil {
			return g, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return g, err
			}
			if t.Name.Local == "vDevTrib" {
				if g.VDevTrib, err = parseDecimal(text); err != nil {
					return g, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return g, nil
			}
		}
	}
}

func decodeGRed(cur *xmlcursor.Cursor, start xml.StartElement) (document.GRed, error) {
	var g document.GRed
	for {
		tok, err := cur.Next()
		if err != nil {
			return g, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return g, err
			}
			switch t.Name.Local {
			case "pRedAliq":
				g.PRedAliq, err = parseDecimalPtr(text)
			case "pAliqEfet":
				g.PAliqEfet, err = parseDecimalPtr(text)
			}
			if err != nil {
				return g, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return g, nil
			}
		}
	}
}

// decodeShareGroup reads the common gDif/gDevTrib/gRed/v{Share} shape
// shared by gIBSUF, gIBSMun, and gCBS. pName and vName are the local
// element names of the rate and the resulting value (they differ per
// caller: pIBSUF/vIBSUF, pIBSMun/vIBSMun, pCBS/vCBS).
func decodeShareGroup(cur *xmlcursor.Cursor, start xml.StartElement, pName, vName string) (document.Decimal, document.Decimal, *document.GDif, *document.GDevTrib, *document.GRed, error) {
	var p, v document.Decimal
	var dif *document.GDif
	var dev *document.GDevTrib
	var red *document.GRed
	for {
		tok, err := cur.Next()
		if err != nil {
			return p, v, dif, dev, red, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gDif":
				g, err := decodeGDif(cur, t)
				if err != nil {
					return p, v, dif, dev, red, err
				}
				dif = &g
				continue
			case "gDevTrib":
				g, err := decodeGDevTrib(cur, t)
				if err != nil {
					return p, v, dif, dev, red, err
				}
				dev = &g
				continue
			case "gRed":
				g, err := decodeGRed(cur, t)
				if err != nil {
					return p, v, dif, dev, red, err
				}
				red = &g
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return p, v, dif, dev, red, err
			}
			switch t.Name.Local {
			case pName:
				if p, err = parseDecimal(text); err != nil {
					return p, v, dif, dev, red, err
				}
			case vName:
				if v, err = parseDecimal(text); err != nil {
					return p, v, dif, dev, red, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return p, v, dif, dev, red, nil
			}
		}
	}
}

func decodeGIBSUF(cur *xmlcursor.Cursor, start xml.StartElement) (document.GIBSUF, error) {
	p, v, dif, dev, red, err := decodeShareGroup(cur, start, "pIBSUF", "vIBSUF")
	return document.GIBSUF{PIBSUF: p, GDif: dif, GDevTrib: dev, GRed: red, VIBSUF: v}, err
}

func decodeGIBSMun(cur *xmlcursor.Cursor, start xml.StartElement) (document.GIBSMun, error) {
	p, v, dif, dev, red, err := decodeShareGroup(cur, start, "pIBSMun", "vIBSMun")
	return document.GIBSMun{PIBSMun: p, GDif: dif, GDevTrib: dev, GRed: red, VIBSMun: v}, err
}

func decodeGCBS(cur *xmlcursor.Cursor, start xml.StartElement) (document.GCBS, error) {
	p, v, dif, dev, red, err := decodeShareGroup(cur, start, "pCBS", "vCBS")
	return document.GCBS{PCBS: p, GDif: dif, GDevTrib: dev, GRed: red, VCBS: v}, err
}

// decodeTCredPres reads gIBSCredPres/gCBSCredPres. Its valor choice
// between vCredPres and vCredPresCondSus resolves from whichever the
// decoder observed; at least one of the two must be present.
func decodeTCredPres(cur *xmlcursor.Cursor, start xml.StartElement) (document.TCredPres, error) {
	var c document.TCredPres
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
			case "cCredPres":
				c.CCredPres = text
			case "pCredPres":
				if c.PCredPres, err = parseDecimal(text); err != nil {
					return c, err
				}
			case "vCredPres":
				if c.VCredPres, err = parseDecimalPtr(text); err != nil {
					return c, err
				}
			case "vCredPresCondSus":
				if c.VCredPresCondSus, err = parseDecimalPtr(text); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				if c.VCredPres == nil && c.VCredPresCondSus == nil {
					return c, errors.NewIncompleteChoiceError(start.Name.Local)
				}
				return c, nil
			}
		}
	}
}

func decodeTTribRegular(cur *xmlcursor.Cursor, start xml.StartElement) (document.TTribRegular, error) {
	var r document.TTribRegular
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
			case "CSTReg":
				r.CSTReg = text
			case "cClassTribReg":
				r.CClassTribReg = text
			case "pAliqEfetRegIBSUF":
				r.PAliqEfetRegIBSUF, err = parseDecimal(text)
			case "vTribRegIBSUF":
				r.VTribRegIBSUF, err = parseDecimal(text)
			case "pAliqEfetRegIBSMun":
				r.PAliqEfetRegIBSMun, err = parseDecimal(text)
			case "vTribRegIBSMun":
				r.VTribRegIBSMun, err = parseDecimal(text)
			case "pAliqEfetRegCBS":
				r.PAliqEfetRegCBS, err = parseDecimal(text)
			case "vTribRegCBS":
				r.VTribRegCBS, err = parseDecimal(text)
			}
			if err != nil {
				return r, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return r, nil
			}
		}
	}
}

func decodeTTribCompraGov(cur *xmlcursor.Cursor, start xml.StartElement) (document.TTribCompraGov, error) {
	var g document.TTribCompraGov
	for {
		tok, err := cur.Next()
		if err != nil {
			return g, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return g, err
			}
			switch t.Name.Local {
			case "pAliqIBSUF":
				g.PAliqIBSUF, err = parseDecimal(text)
			case "vTribIBSUF":
				g.VTribIBSUF, err = parseDecimal(text)
			case "pAliqIBSMun":
				g.PAliqIBSMun, err = parseDecimal(text)
			case "vTribIBSMun":
				g.VTribIBSMun, err = parseDecimal(text)
			case "pAliqCBS":
				g.PAliqCBS, err = parseDecimal(text)
			case "vTribCBS":
				g.VTribCBS, err = parseDecimal(text)
			}
			if err != nil {
				return g, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return g, nil
			}
		}
	}
}

// decodeTCIBS reads <IBSCBS>, the item-level IBS/CBS reform schedule.
func decodeTCIBS(cur *xmlcursor.Cursor, start xml.StartElement) (document.TCIBS, error) {
	var c document.TCIBS
	for {
		tok, err := cur.Next()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gIBSUF":
				g, err := decodeGIBSUF(cur, t)
				if err != nil {
					return c, err
				}
				c.GIBSUF = g
				continue
			case "gIBSMun":
				g, err := decodeGIBSMun(cur, t)
				if err != nil {
					return c, err
				}
				c.GIBSMun = g
				continue
			case "gCBS":
				g, err := decodeGCBS(cur, t)
				if err != nil {
					return c, err
				}
				c.GCBS = g
				continue
			case "gTribRegular":
				g, err := decodeTTribRegular(cur, t)
				if err != nil {
					return c, err
				}
				c.GTribRegular = &g
				continue
			case "gIBSCredPres":
				g, err := decodeTCredPres(cur, t)
				if err != nil {
					return c, err
				}
				c.GIBSCredPres = &g
				continue
			case "gCBSCredPres":
				g, err := decodeTCredPres(cur, t)
				if err != nil {
					return c, err
				}
				c.GCBSCredPres = &g
				continue
			case "gTribCompraGov":
				g, err := decodeTTribCompraGov(cur, t)
				if err != nil {
					return c, err
				}
				c.GTribCompraGov = &g
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return c, err
			}
			switch t.Name.Local {
			case "vBC":
				if c.VBC, err = parseDecimal(text); err != nil {
					return c, err
				}
			case "vIBS":
				if c.VIBS, err = parseDecimal(text); err != nil {
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
