package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodePIS reads the wrapper <PIS> element: its single child
// (PISAliq, PISQtde, PISNT, or PISOutr) pre-selects the variant, and
// PISOutr itself resolves its rate-vs-quantity choice from whichever
// witness pair completed before its own End.
func decodePIS(cur *xmlcursor.Cursor, outer xml.StartElement) (document.PIS, error) {
	var pis document.PIS
	for {
		tok, err := cur.Next()
		if err != nil {
			return pis, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := decodePISCOFINSInner(cur, t, &pis.CST, &pis.VBC, &pis.PPIS, &pis.QBCProd, &pis.VAliqProd, &pis.VPIS); err != nil {
				return pis, err
			}
		case xml.EndElement:
			if t.Name.Local == outer.Name.Local {
				return pis, nil
			}
		}
	}
}

// decodeCOFINS mirrors decodePIS.
func decodeCOFINS(cur *xmlcursor.Cursor, outer xml.StartElement) (document.COFINS, error) {
	var c document.COFINS
	for {
		tok, err := cur.Next()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := decodePISCOFINSInner(cur, t, &c.CST, &c.VBC, &c.PCOFINS, &c.QBCProd, &c.VAliqProd, &c.VCOFINS); err != nil {
				return c, err
			}
		case xml.EndElement:
			if t.Name.Local == outer.Name.Local {
				return c, nil
			}
		}
	}
}

// decodePISCOFINSInner accumulates the candidate fields of one
// PISAliq/PISQtde/PISNT/PISOutr-shaped inner element into the
// caller's PIS or COFINS record, via pointers to its fields (rate,
// quantity, and result share the same shape for both taxes).
func decodePISCOFINSInner(
	cur *xmlcursor.Cursor,
	start xml.StartElement,
	cst *string,
	vBC, pRate, qBCProd, vAliqProd, vResult **document.Decimal,
) error {
	for {
		tok, err := cur.Next()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return err
			}
			switch t.Name.Local {
			case "CST":
				*cst = text
			case "vBC":
				if *vBC, err = parseDecimalPtr(text); err != nil {
					return err
				}
			case "pPIS", "pCOFINS":
				if *pRate, err = parseDecimalPtr(text); err != nil {
					return err
				}
			case "qBCProd":
				if *qBCProd, err = parseDecimalPtr(text); err != nil {
					return err
				}
			case "vAliqProd":
				if *vAliqProd, err = parseDecimalPtr(text); err != nil {
					return err
				}
			case "vPIS", "vCOFINS":
				if *vResult, err = parseDecimalPtr(text); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				rateComplete := *vBC != nil && *pRate != nil
				qtyComplete := *qBCProd != nil && *vAliqProd != nil
				if start.Name.Local != "PISNT" && start.Name.Local != "COFINSNT" && !rateComplete && !qtyComplete {
					// PISOutr/COFINSOutr and the Aliq/Qtde containers all
					// require a complete witness pair; PISNT/COFINSNT
					// (not taxed) legitimately carries neither.
					return errors.NewIncompleteChoiceError(start.Name.Local)
				}
				return nil
			}
		}
	}
}

// decodePISST reads <PISST>, resolving the rate-vs-quantity choice
// from whichever witness pair completed. vPIS is mandatory regardless
// of which pair was used.
func decodePISST(cur *xmlcursor.Cursor, start xml.StartElement) (document.PISST, error) {
	var p document.PISST
	var vPISSet bool
	for {
		tok, err := cur.Next()
		if err != nil {
			return p, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return p, err
			}
			switch t.Name.Local {
			case "vBC":
				if p.VBC, err = parseDecimalPtr(text); err != nil {
					return p, err
				}
			case "pPIS":
				if p.PPIS, err = parseDecimalPtr(text); err != nil {
					return p, err
				}
			case "qBCProd":
				if p.QBCProd, err = parseDecimalPtr(text); err != nil {
					return p, err
				}
			case "vAliqProd":
				if p.VAliqProd, err = parseDecimalPtr(text); err != nil {
					return p, err
				}
			case "vPIS":
				if p.VPIS, err = parseDecimal(text); err != nil {
					return p, err
				}
				vPISSet = true
			case "indSomaPISST":
				b := boolFromFlag(text)
				p.IndSomaPISST = &b
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				rateComplete := p.VBC != nil && p.PPIS != nil
				qtyComplete := p.QBCProd != nil && p.VAliqProd != nil
				if !vPISSet || (!rateComplete && !qtyComplete) {
					return p, errors.NewIncompleteChoiceError(start.Name.Local)
				}
				return p, nil
			}
		}
	}
}

// decodeCOFINSST mirrors decodePISST, with the numeric soma flag.
func decodeCOFINSST(cur *xmlcursor.Cursor, start xml.StartElement) (document.COFINSST, error) {
	var c document.COFINSST
	var vCOFINSSet bool
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
			case "vBC":
				if c.VBC, err = parseDecimalPtr(text); err != nil {
					return c, err
				}
			case "pCOFINS":
				if c.PCOFINS, err = parseDecimalPtr(text); err != nil {
					return c, err
				}
			case "qBCProd":
				if c.QBCProd, err = parseDecimalPtr(text); err != nil {
					return c, err
				}
			case "vAliqProd":
				if c.VAliqProd, err = parseDecimalPtr(text); err != nil {
					return c, err
				}
			case "vCOFINS":
				if c.VCOFINS, err = parseDecimal(text); err != nil {
					return c, err
				}
				vCOFINSSet = true
			case "indSomaCOFINSST":
				n, err := parseInt(text)
				if err != nil {
					return c, err
				}
				c.IndSomaCOFINSST = &n
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				rateComplete := c.VBC != nil && c.PCOFINS != nil
				qtyComplete := c.QBCProd != nil && c.VAliqProd != nil
				if !vCOFINSSet || (!rateComplete && !qtyComplete) {
					return c, errors.NewIncompleteChoiceError(start.Name.Local)
				}
				return c, nil
			}
		}
	}
}
