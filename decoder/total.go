package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeTotal reads <total>. ICMSTot is mandatory; the remaining
// nested groups decode independently and are optional.
func decodeTotal(cur *xmlcursor.Cursor, start xml.StartElement) (document.Total, error) {
	var t document.Total
	for {
		tok, err := cur.Next()
		if err != nil {
			return t, err
		}
		switch e := tok.(type) {
		case xml.StartElement:
			switch e.Name.Local {
			case "ICMSTot":
				v, err := decodeICMSTot(cur, e)
				if err != nil {
					return t, err
				}
				t.ICMSTot = v
			case "ISSQNtot":
				v, err := decodeISSQNTot(cur, e)
				if err != nil {
					return t, err
				}
				t.ISSQNTot = &v
			case "retTrib":
				v, err := decodeRetTrib(cur, e)
				if err != nil {
					return t, err
				}
				t.RetTrib = &v
			case "ISTot":
				v, err := decodeISTot(cur, e)
				if err != nil {
					return t, err
				}
				t.ISTot = &v
			case "IBSCBSTot":
				v, err := decodeIBSCBSTot(cur, e)
				if err != nil {
					return t, err
				}
				t.IBSCBSTot = &v
			default:
				if err := cur.Skip(e); err != nil {
					return t, err
				}
			}
		case xml.EndElement:
			if e.Name.Local == start.Name.Local {
				return t, nil
			}
		}
	}
}

func decodeICMSTot(cur *xmlcursor.Cursor, start xml.StartElement) (document.ICMSTot, error) {
	var v document.ICMSTot
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			if err := assignICMSTotField(&v, t.Name.Local, text); err != nil {
				return v, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func assignICMSTotField(v *document.ICMSTot, name, text string) error {
	var err error
	switch name {
	case "vBC":
		v.VBC, err = parseDecimal(text)
	case "vICMS":
		v.VICMS, err = parseDecimal(text)
	case "vICMSDeson":
		v.VICMSDeson, err = parseDecimal(text)
	case "vFCPUFDest":
		v.VFCPUFDest, err = parseDecimalPtr(text)
	case "vICMSUFDest":
		v.VICMSUFDest, err = parseDecimalPtr(text)
	case "vICMSUFRemet":
		v.VICMSUFRemet, err = parseDecimalPtr(text)
	case "vFCP":
		v.VFCP, err = parseDecimal(text)
	case "vBCST":
		v.VBCST, err = parseDecimal(text)
	case "vST":
		v.VST, err = parseDecimal(text)
	case "vFCPST":
		v.VFCPST, err = parseDecimal(text)
	case "vFCPSTRet":
		v.VFCPSTRet, err = parseDecimal(text)
	case "qBCMono":
		v.QBCMono, err = parseDecimalPtr(text)
	case "vICMSMono":
		v.VICMSMono, err = parseDecimalPtr(text)
	case "qBCMonoReten":
		v.QBCMonoReten, err = parseDecimalPtr(text)
	case "vICMSMonoReten":
		v.VICMSMonoReten, err = parseDecimalPtr(text)
	case "qBCMonoRet":
		v.QBCMonoRet, err = parseDecimalPtr(text)
	case "vICMSMonoRet":
		v.VICMSMonoRet, err = parseDecimalPtr(text)
	case "vProd":
		v.VProd, err = parseDecimal(text)
	case "vFrete":
		v.VFrete, err = parseDecimal(text)
	case "vSeg":
		v.VSeg, err = parseDecimal(text)
	case "vDesc":
		v.VDesc, err = parseDecimal(text)
	case "vII":
		v.VII, err = parseDecimal(text)
	case "vIPI":
		v.VIPI, err = parseDecimal(text)
	case "vIPIDevol":
		v.VIPIDevol, err = parseDecimal(text)
	case "vPIS":
		v.VPIS, err = parseDecimal(text)
	case "vCOFINS":
		v.VCOFINS, err = parseDecimal(text)
	case "vOutro":
		v.VOutro, err = parseDecimal(text)
	case "vNF":
		v.VNF, err = parseDecimal(text)
	case "vTotTrib":
		v.VTotTrib, err = parseDecimalPtr(text)
	}
	return err
}

func decodeISSQNTot(cur *xmlcursor.Cursor, start xml.StartElement) (document.ISSQNTot, error) {
	var v document.ISSQNTot
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			switch t.Name.Local {
			case "vServ":
				v.VServ, err = parseDecimalPtr(text)
			case "vBC":
				v.VBC, err = parseDecimalPtr(text)
			case "vISS":
				v.VISS, err = parseDecimalPtr(text)
			case "vPIS":
				v.VPIS, err = parseDecimalPtr(text)
			case "vCOFINS":
				v.VCOFINS, err = parseDecimalPtr(text)
			case "dCompet":
				v.DCompet = text
			case "vDeducao":
				v.VDeducao, err = parseDecimalPtr(text)
			case "vOutro":
				v.VOutro, err = parseDecimalPtr(text)
			case "vDescIncond":
				v.VDescIncond, err = parseDecimalPtr(text)
			case "vDescCond":
				v.VDescCond, err = parseDecimalPtr(text)
			case "vISSRet":
				v.VISSRet, err = parseDecimalPtr(text)
			case "cRegTrib":
				v.CRegTrib = text
			}
			if err != nil {
				return v, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeRetTrib(cur *xmlcursor.Cursor, start xml.StartElement) (document.RetTrib, error) {
	var v document.RetTrib
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			switch t.Name.Local {
			case "vRetPIS":
				v.VRetPIS, err = parseDecimalPtr(text)
			case "vRetCOFINS":
				v.VRetCOFINS, err = parseDecimalPtr(text)
			case "vRetCSLL":
				v.VRetCSLL, err = parseDecimalPtr(text)
			case "vBCIRRF":
				v.VBCIRRF, err = parseDecimalPtr(text)
			case "vIRRF":
				v.VIRRF, err = parseDecimalPtr(text)
			case "vBCRetPrev":
				v.VBCRetPrev, err = parseDecimalPtr(text)
			case "vRetPrev":
				v.VRetPrev, err = parseDecimalPtr(text)
			}
			if err != nil {
				return v, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeISTot(cur *xmlcursor.Cursor, start xml.StartElement) (document.ISTot, error) {
	var v document.ISTot
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			switch t.Name.Local {
			case "vIS":
				v.VIS, err = parseDecimal(text)
			case "vISBCIS":
				v.VISBCIS, err = parseDecimalPtr(text)
			}
			if err != nil {
				return v, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeGIBSTot(cur *xmlcursor.Cursor, start xml.StartElement) (document.GIBSTot, error) {
	var v document.GIBSTot
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gIBSCredPres":
				g, err := decodeTCredPres(cur, t)
				if err != nil {
					return v, err
				}
				v.GIBSCredPres = &g
				continue
			case "gIBSCredPresFinanc":
				g, err := decodeTCredPres(cur, t)
				if err != nil {
					return v, err
				}
				v.GIBSCredPresFinanc = &g
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			switch t.Name.Local {
			case "vIBSUF":
				v.VIBSUF, err = parseDecimal(text)
			case "vIBSMun":
				v.VIBSMun, err = parseDecimal(text)
			case "vIBS":
				v.VIBS, err = parseDecimal(text)
			}
			if err != nil {
				return v, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeGCBSTot(cur *xmlcursor.Cursor, start xml.StartElement) (document.GCBSTot, error) {
	var v document.GCBSTot
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gCBSCredPres":
				g, err := decodeTCredPres(cur, t)
				if err != nil {
					return v, err
				}
				v.GCBSCredPres = &g
				continue
			case "gCBSCredPresFinanc":
				g, err := decodeTCredPres(cur, t)
				if err != nil {
					return v, err
				}
				v.GCBSCredPresFinanc = &g
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			if t.Name.Local == "vCBS" {
				if v.VCBS, err = parseDecimal(text); err != nil {
					return v, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeIBSCBSTot(cur *xmlcursor.Cursor, start xml.StartElement) (document.IBSCBSTot, error) {
	var v document.IBSCBSTot
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gIBS":
				g, err := decodeGIBSTot(cur, t)
				if err != nil {
					return v, err
				}
				v.GIBS = g
				continue
			case "gCBS":
				g, err := decodeGCBSTot(cur, t)
				if err != nil {
					return v, err
				}
				v.GCBS = g
				continue
			case "gMono":
				g, err := decodeTMonofasia(cur, t)
				if err != nil {
					return v, err
				}
				v.GMono = &g
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			if t.Name.Local == "vBCIBSCBS" {
				if v.VBCIBSCBS, err = parseDecimal(text); err != nil {
					return v, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeTMonofasia(cur *xmlcursor.Cursor, start xml.StartElement) (document.TMonofasia, error) {
	var m document.TMonofasia
	for {
		tok, err := cur.Next()
		if err != nil {
			return m, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gMonoPadrao":
				g, err := decodeGMonoPadrao(cur, t)
				if err != nil {
					return m, err
				}
				m.GMonoPadrao = &g
				continue
			case "gMonoReten":
				g, err := decodeGMonoReten(cur, t)
				if err != nil {
					return m, err
				}
				m.GMonoReten = &g
				continue
			case "gMonoRet":
				g, err := decodeGMonoRet(cur, t)
				if err != nil {
					return m, err
				}
				m.GMonoRet = &g
				continue
			case "gMonoDif":
				g, err := decodeGMonoDif(cur, t)
				if err != nil {
					return m, err
				}
				m.GMonoDif = &g
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return m, err
			}
			switch t.Name.Local {
			case "vTotIBSMonoItem":
				m.VTotIBSMonoItem, err = parseDecimal(text)
			case "vTotCBSMonoItem":
				m.VTotCBSMonoItem, err = parseDecimal(text)
			}
			if err != nil {
				return m, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return m, nil
			}
		}
	}
}

func decodeGMonoPadrao(cur *xmlcursor.Cursor, start xml.StartElement) (document.GMonoPadrao, error) {
	var g document.GMonoPadrao
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
			case "qBCMono":
				g.QBCMono, err = parseDecimal(text)
			case "adRemIBS":
				g.AdRemIBS, err = parseDecimal(text)
			case "vIBSMono":
				g.VIBSMono, err = parseDecimal(text)
			case "adRemCBS":
				g.AdRemCBS, err = parseDecimal(text)
			case "vCBSMono":
				g.VCBSMono, err = parseDecimal(text)
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

func decodeGMonoReten(cur *xmlcursor.Cursor, start xml.StartElement) (document.GMonoReten, error) {
	var g document.GMonoReten
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
			case "qBCMonoReten":
				g.QBCMonoReten, err = parseDecimal(text)
			case "adRemIBSReten":
				g.AdRemIBSReten, err = parseDecimal(text)
			case "vIBSMonoReten":
				g.VIBSMonoReten, err = parseDecimal(text)
			case "adRemCBSReten":
				g.AdRemCBSReten, err = parseDecimal(text)
			case "vCBSMonoReten":
				g.VCBSMonoReten, err = parseDecimal(text)
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

func decodeGMonoRet(cur *xmlcursor.Cursor, start xml.StartElement) (document.GMonoRet, error) {
	var g document.GMonoRet
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
			case "qBCMonoRet":
				g.QBCMonoRet, err = parseDecimal(text)
			case "adRemIBSRet":
				g.AdRemIBSRet, err = parseDecimal(text)
			case "vIBSMonoRet":
				g.VIBSMonoRet, err = parseDecimal(text)
			case "adRemCBSRet":
				g.AdRemCBSRet, err = parseDecimal(text)
			case "vCBSMonoRet":
				g.VCBSMonoRet, err = parseDecimal(text)
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

func decodeGMonoDif(cur *xmlcursor.Cursor, start xml.StartElement) (document.GMonoDif, error) {
	var g document.GMonoDif
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
			case "pDifIBS":
				g.PDifIBS, err = parseDecimalPtr(text)
			case "vIBSMonoDif":
				g.VIBSMonoDif, err = parseDecimal(text)
			case "pDifCBS":
				g.PDifCBS, err = parseDecimalPtr(text)
			case "vCBSMonoDif":
				g.VCBSMonoDif, err = parseDecimal(text)
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
