package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeIPI reads <IPI>. CNPJProd/cSelo/qSelo are siblings of the
// wrapper; CEnq and the CST/calculation fields live inside the
// IPITrib/IPINT inner element, whose rate-vs-quantity choice resolves
// the same way as PIS/COFINS.
func decodeIPI(cur *xmlcursor.Cursor, outer xml.StartElement) (document.IPI, error) {
	var ipi document.IPI
	for {
		tok, err := cur.Next()
		if err != nil {
			return ipi, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "IPITrib", "IPINT":
				if err := decodeIPIInner(cur, t, &ipi); err != nil {
					return ipi, err
				}
			default:
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return ipi, err
				}
				switch t.Name.Local {
				case "CNPJProd":
					ipi.CNPJProd = text
				case "cSelo":
					ipi.CSelo = text
				case "qSelo":
					n, err := parseInt(text)
					if err != nil {
						return ipi, err
					}
					ipi.QSelo = &n
				}
			}
		case xml.EndElement:
			if t.Name.Local == outer.Name.Local {
				return ipi, nil
			}
		}
	}
}

func decodeIPIInner(cur *xmlcursor.Cursor, start xml.StartElement, ipi *document.IPI) error {
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
			case "cEnq":
				ipi.CEnq = text
			case "CST":
				ipi.CST = text
			case "vBC":
				if ipi.VBC, err = parseDecimalPtr(text); err != nil {
					return err
				}
			case "pIPI":
				if ipi.PIPI, err = parseDecimalPtr(text); err != nil {
					return err
				}
			case "qUnid":
				if ipi.QUnid, err = parseDecimalPtr(text); err != nil {
					return err
				}
			case "vUnid":
				if ipi.VUnid, err = parseDecimalPtr(text); err != nil {
					return err
				}
			case "vIPI":
				if ipi.VIPI, err = parseDecimalPtr(text); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				if start.Name.Local == "IPINT" {
					return nil
				}
				rateComplete := ipi.VBC != nil && ipi.PIPI != nil
				qtyComplete := ipi.QUnid != nil && ipi.VUnid != nil
				if !rateComplete && !qtyComplete {
					return errors.NewIncompleteChoiceError(start.Name.Local)
				}
				return nil
			}
		}
	}
}

func decodeII(cur *xmlcursor.Cursor, start xml.StartElement) (document.II, error) {
	var ii document.II
	for {
		tok, err := cur.Next()
		if err != nil {
			return ii, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return ii, err
			}
			switch t.Name.Local {
			case "vBC":
				if ii.VBC, err = parseDecimal(text); err != nil {
					return ii, err
				}
			case "vDespAdu":
				if ii.VDespAdu, err = parseDecimal(text); err != nil {
					return ii, err
				}
			case "vII":
				if ii.VII, err = parseDecimal(text); err != nil {
					return ii, err
				}
			case "vIOF":
				if ii.VIOF, err = parseDecimal(text); err != nil {
					return ii, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return ii, nil
			}
		}
	}
}

func decodeISSQN(cur *xmlcursor.Cursor, start xml.StartElement) (document.ISSQN, error) {
	var s document.ISSQN
	for {
		tok, err := cur.Next()
		if err != nil {
			return s, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return s, err
			}
			if err := assignISSQNField(&s, t.Name.Local, text); err != nil {
				return s, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return s, nil
			}
		}
	}
}

func assignISSQNField(s *document.ISSQN, name, text string) error {
	var err error
	switch name {
	case "vBC":
		s.VBC, err = parseDecimal(text)
	case "vAliq":
		s.VAliq, err = parseDecimal(text)
	case "vISSQN":
		s.VISSQN, err = parseDecimal(text)
	case "cMunFG":
		s.CMunFG, err = parseInt(text)
	case "cListServ":
		s.CListServ = text
	case "vDeducao":
		s.VDeducao, err = parseDecimalPtr(text)
	case "vOutro":
		s.VOutro, err = parseDecimalPtr(text)
	case "vDescIncond":
		s.VDescIncond, err = parseDecimalPtr(text)
	case "vDescCond":
		s.VDescCond, err = parseDecimalPtr(text)
	case "vISSRet":
		s.VISSRet, err = parseDecimalPtr(text)
	case "indISS":
		s.IndISS, err = parseInt(text)
	case "cServico":
		s.CServico = text
	case "cMun":
		s.CMun, err = parseIntPtr(text)
	case "cPais":
		s.CPais = text
	case "nProcesso":
		s.NProcesso = text
	case "indIncentivo":
		s.IndIncentivo, err = parseInt(text)
	}
	return err
}

// decodeIS reads <IS>. Its calculation sub-group (vBCIS, pIS, etc.) is
// optional but must appear as a complete witness pair when present.
func decodeIS(cur *xmlcursor.Cursor, start xml.StartElement) (document.IS, error) {
	var is document.IS
	for {
		tok, err := cur.Next()
		if err != nil {
			return is, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return is, err
			}
			switch t.Name.Local {
			case "CSTIS":
				is.CSTIS = text
			case "cClassTribIS":
				is.CClassTribIS = text
			case "vBCIS":
				if is.VBCIS, err = parseDecimalPtr(text); err != nil {
					return is, err
				}
			case "pIS":
				if is.PIS, err = parseDecimalPtr(text); err != nil {
					return is, err
				}
			case "pISEspec":
				if is.PISEspec, err = parseDecimalPtr(text); err != nil {
					return is, err
				}
			case "uTrib":
				is.UTrib = &text
			case "qTrib":
				if is.QTrib, err = parseDecimalPtr(text); err != nil {
					return is, err
				}
			case "vIS":
				if is.VIS, err = parseDecimalPtr(text); err != nil {
					return is, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				anyCalc := is.VBCIS != nil || is.PIS != nil || is.VIS != nil
				calcComplete := is.VBCIS != nil && is.PIS != nil
				if anyCalc && !calcComplete {
					return is, errors.NewIncompleteChoiceError(start.Name.Local)
				}
				return is, nil
			}
		}
	}
}

func decodeICMSUFDest(cur *xmlcursor.Cursor, start xml.StartElement) (document.ICMSUFDest, error) {
	var u document.ICMSUFDest
	for {
		tok, err := cur.Next()
		if err != nil {
			return u, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return u, err
			}
			switch t.Name.Local {
			case "vBCUFDest":
				u.VBCUFDest, err = parseDecimal(text)
			case "vBCFCPUFDest":
				u.VBCFCPUFDest, err = parseDecimalPtr(text)
			case "pFCPUFDest":
				u.PFCPUFDest, err = parseDecimalPtr(text)
			case "pICMSUFDest":
				u.PICMSUFDest, err = parseDecimal(text)
			case "pICMSInter":
				u.PICMSInter = text
			case "pICMSInterPart":
				u.PICMSInterPart, err = parseDecimal(text)
			case "vFCPUFDest":
				u.VFCPUFDest, err = parseDecimalPtr(text)
			case "vICMSUFDest":
				u.VICMSUFDest, err = parseDecimal(text)
			case "vICMSUFRemet":
				u.VICMSUFRemet, err = parseDecimal(text)
			}
			if err != nil {
				return u, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return u, nil
			}
		}
	}
}
