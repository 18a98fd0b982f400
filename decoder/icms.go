package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeICMS reads the wrapper <ICMS> element. Its first child's local
// name (e.g. ICMS00, ICMSSN500, ICMSPart, ICMSST) becomes kind; every
// further scalar child of that inner element accumulates into the
// wide ICMS record. Unknown fields are ignored, per spec.
func decodeICMS(cur *xmlcursor.Cursor, outer xml.StartElement) (document.ICMS, error) {
	var icms document.ICMS
	for {
		tok, err := cur.Next()
		if err != nil {
			return icms, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			icms.Kind = t.Name.Local
			if err := decodeICMSInner(cur, t, &icms); err != nil {
				return icms, err
			}
		case xml.EndElement:
			if t.Name.Local == outer.Name.Local {
				return icms, nil
			}
		}
	}
}

func decodeICMSInner(cur *xmlcursor.Cursor, start xml.StartElement, icms *document.ICMS) error {
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
			if err := assignICMSField(icms, t.Name.Local, text); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

func assignICMSField(icms *document.ICMS, name, text string) error {
	var err error
	setDec := func(dst **document.Decimal) {
		if err != nil {
			return
		}
		*dst, err = parseDecimalPtr(text)
	}
	setStrPtr := func(dst **string) { s := text; *dst = &s }
	setBoolPtr := func(dst **bool) { b := boolFromFlag(text); *dst = &b }

	switch name {
	case "orig":
		icms.Orig = text
	case "CST":
		icms.CST = text
	case "CSOSN":
		icms.CSOSN = text
	case "modBC":
		setStrPtr(&icms.ModBC)
	case "vBC":
		setDec(&icms.VBC)
	case "pRedBC":
		setDec(&icms.PRedBC)
	case "pICMS":
		setDec(&icms.PICMS)
	case "vICMS":
		setDec(&icms.VICMS)
	case "vICMSOp":
		setDec(&icms.VICMSOp)
	case "vBCFCP":
		setDec(&icms.VBCFCP)
	case "pFCP":
		setDec(&icms.PFCP)
	case "vFCP":
		setDec(&icms.VFCP)
	case "modBCST":
		setStrPtr(&icms.ModBCST)
	case "pMVAST":
		setDec(&icms.PMVAST)
	case "pRedBCST":
		setDec(&icms.PRedBCST)
	case "vBCST":
		setDec(&icms.VBCST)
	case "pICMSST":
		setDec(&icms.PICMSST)
	case "vICMSST":
		setDec(&icms.VICMSST)
	case "vBCFCPST":
		setDec(&icms.VBCFCPST)
	case "pFCPST":
		setDec(&icms.PFCPST)
	case "vFCPST":
		setDec(&icms.VFCPST)
	case "vBCSTRet":
		setDec(&icms.VBCSTRet)
	case "pST":
		setDec(&icms.PST)
	case "vICMSSubstituto":
		setDec(&icms.VICMSSubstituto)
	case "vICMSSTRet":
		setDec(&icms.VICMSSTRet)
	case "vBCFCPSTRet":
		setDec(&icms.VBCFCPSTRet)
	case "pFCPSTRet":
		setDec(&icms.PFCPSTRet)
	case "vFCPSTRet":
		setDec(&icms.VFCPSTRet)
	case "vICMSDeson":
		setDec(&icms.VICMSDeson)
	case "motDesICMS":
		setStrPtr(&icms.MotDesICMS)
	case "indDeduzDeson":
		setBoolPtr(&icms.IndDeduzDeson)
	case "vICMSSTDeson":
		setDec(&icms.VICMSSTDeson)
	case "motDesICMSST":
		setStrPtr(&icms.MotDesICMSST)
	case "pRedBCEfet":
		setDec(&icms.PRedBCEfet)
	case "vBCEfet":
		setDec(&icms.VBCEfet)
	case "pICMSEfet":
		setDec(&icms.PICMSEfet)
	case "vICMSEfet":
		setDec(&icms.VICMSEfet)
	case "pDif":
		setDec(&icms.PDif)
	case "vICMSDif":
		setDec(&icms.VICMSDif)
	case "cBenefRBC":
		setStrPtr(&icms.CBenefRBC)
	case "pFCPDif":
		setDec(&icms.PFCPDif)
	case "vFCPDif":
		setDec(&icms.VFCPDif)
	case "vFCPEfet":
		setDec(&icms.VFCPEfet)
	case "qBCMono":
		setDec(&icms.QBCMono)
	case "adRemICMS":
		setDec(&icms.AdRemICMS)
	case "vICMSMono":
		setDec(&icms.VICMSMono)
	case "qBCMonoReten":
		setDec(&icms.QBCMonoReten)
	case "adRemICMSReten":
		setDec(&icms.AdRemICMSReten)
	case "vICMSMonoReten":
		setDec(&icms.VICMSMonoReten)
	case "pRedAdRem":
		setDec(&icms.PRedAdRem)
	case "motRedAdRem":
		setStrPtr(&icms.MotRedAdRem)
	case "qBCMonoRet":
		setDec(&icms.QBCMonoRet)
	case "adRemICMSRet":
		setDec(&icms.AdRemICMSRet)
	case "vICMSMonoRet":
		setDec(&icms.VICMSMonoRet)
	case "vICMSMonoOp":
		setDec(&icms.VICMSMonoOp)
	case "vICMSMonoDif":
		setDec(&icms.VICMSMonoDif)
	case "qBCMonoDif":
		setDec(&icms.QBCMonoDif)
	case "adRemICMSDif":
		setDec(&icms.AdRemICMSDif)
	case "pBCOp":
		setDec(&icms.PBCOp)
	case "UFST":
		setStrPtr(&icms.UFST)
	case "vBCSTDest":
		setDec(&icms.VBCSTDest)
	case "vICMSSTDest":
		setDec(&icms.VICMSSTDest)
	case "pCredSN":
		setDec(&icms.PCredSN)
	case "vCredICMSSN":
		setDec(&icms.VCredICMSSN)
	}
	return err
}
