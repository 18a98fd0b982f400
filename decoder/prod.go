package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeDet reads one <det> item, including its nItem attribute.
func decodeDet(cur *xmlcursor.Cursor, start xml.StartElement) (document.Det, error) {
	var det document.Det
	if nItem, ok := cur.Attr(start, "nItem"); ok {
		n, err := parseInt(nItem)
		if err != nil {
			return det, err
		}
		det.NItem = n
	}
	for {
		tok, err := cur.Next()
		if err != nil {
			return det, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "prod":
				v, err := decodeProd(cur, t)
				if err != nil {
					return det, err
				}
				det.Prod = v
			case "imposto":
				v, err := decodeImposto(cur, t)
				if err != nil {
					return det, err
				}
				det.Imposto = v
			case "impostoDevol":
				v, err := decodeImpostoDevol(cur, t)
				if err != nil {
					return det, err
				}
				det.ImpostoDevol = &v
			case "infAdProd":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return det, err
				}
				det.InfAdProd = text
			case "vItem":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return det, err
				}
				v, err := parseDecimalPtr(text)
				if err != nil {
					return det, err
				}
				det.VItem = v
			default:
				if err := cur.Skip(t); err != nil {
					return det, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return det, nil
			}
		}
	}
}

func decodeImpostoDevol(cur *xmlcursor.Cursor, start xml.StartElement) (document.ImpostoDevol, error) {
	var id document.ImpostoDevol
	for {
		tok, err := cur.Next()
		if err != nil {
			return id, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "IPI":
				v, err := decodeIpiDevol(cur, t)
				if err != nil {
					return id, err
				}
				id.IPI = v
			case "pDevol":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return id, err
				}
				if id.PDevol, err = parseDecimal(text); err != nil {
					return id, err
				}
			default:
				if err := cur.Skip(t); err != nil {
					return id, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return id, nil
			}
		}
	}
}

func decodeIpiDevol(cur *xmlcursor.Cursor, start xml.StartElement) (document.IpiDevol, error) {
	var v document.IpiDevol
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "vIPIDevol" {
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return v, err
				}
				if v.VIPIDevol, err = parseDecimal(text); err != nil {
					return v, err
				}
				continue
			}
			if err := cur.Skip(t); err != nil {
				return v, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

// decodeProd reads <prod>. The specifics union (vehicle / med / arma /
// fuel / RECOPI) is folded structurally: veicProd, comb, and nRECOPI
// are single-shot and mutually exclusive, while med and arma accumulate
// as repeated children. A second signal of a different single-shot
// variant is malformed and fails decoding.
func decodeProd(cur *xmlcursor.Cursor, start xml.StartElement) (document.Prod, error) {
	var p document.Prod
	var specificsSet string
	setSpecific := func(signal string) error {
		if specificsSet != "" && specificsSet != signal {
			return errors.NewIncompleteChoiceError("prod.specifics")
		}
		specificsSet = signal
		return nil
	}
	for {
		tok, err := cur.Next()
		if err != nil {
			return p, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "DI":
				v, err := decodeDI(cur, t)
				if err != nil {
					return p, err
				}
				p.DI = append(p.DI, v)
				continue
			case "detExport":
				v, err := decodeDetExport(cur, t)
				if err != nil {
					return p, err
				}
				p.DetExport = append(p.DetExport, v)
				continue
			case "gCred":
				v, err := decodeGCredProd(cur, t)
				if err != nil {
					return p, err
				}
				p.GCred = append(p.GCred, v)
				continue
			case "veicProd":
				if err := setSpecific("veicProd"); err != nil {
					return p, err
				}
				v, err := decodeTVeiculo(cur, t)
				if err != nil {
					return p, err
				}
				p.VeicProd = &v
				continue
			case "med":
				v, err := decodeMedicamento(cur, t)
				if err != nil {
					return p, err
				}
				p.Med = append(p.Med, v)
				continue
			case "arma":
				v, err := decodeArma(cur, t)
				if err != nil {
					return p, err
				}
				p.Arma = append(p.Arma, v)
				continue
			case "comb":
				if err := setSpecific("comb"); err != nil {
					return p, err
				}
				v, err := decodeComb(cur, t)
				if err != nil {
					return p, err
				}
				p.Comb = &v
				continue
			case "infProdNFF":
				v, err := decodeInfProdNFF(cur, t)
				if err != nil {
					return p, err
				}
				p.InfProdNFF = &v
				continue
			case "infProdEmb":
				v, err := decodeInfProdEmb(cur, t)
				if err != nil {
					return p, err
				}
				p.InfProdEmb = &v
				continue
			case "NVE":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return p, err
				}
				p.NVE = append(p.NVE, text)
				continue
			case "nRECOPI":
				if err := setSpecific("nRECOPI"); err != nil {
					return p, err
				}
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return p, err
				}
				p.NRECOPI = text
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return p, err
			}
			if err := assignProdField(&p, t.Name.Local, text); err != nil {
				return p, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return p, nil
			}
		}
	}
}

func assignProdField(p *document.Prod, name, text string) error {
	var err error
	switch name {
	case "cProd":
		p.CProd = text
	case "cEAN":
		p.CEAN = text
	case "xProd":
		p.XProd = text
	case "NCM":
		p.NCM = text
	case "CEST":
		p.CEST = text
	case "indEscala":
		p.IndEscala = text
	case "CNPJFab":
		p.CNPJFab = text
	case "cBenef":
		p.CBenef = text
	case "EXTIPI":
		p.EXTIPI = text
	case "CFOP":
		p.CFOP = text
	case "uCom":
		p.UCom = text
	case "qCom":
		p.QCom, err = parseDecimal(text)
	case "vUnCom":
		p.VUnCom, err = parseDecimal(text)
	case "vProd":
		p.VProd, err = parseDecimal(text)
	case "cEANTrib":
		p.CEANTrib = text
	case "uTrib":
		p.UTrib = text
	case "qTrib":
		p.QTrib, err = parseDecimal(text)
	case "vUnTrib":
		p.VUnTrib, err = parseDecimal(text)
	case "vFrete":
		p.VFrete, err = parseDecimalPtr(text)
	case "vSeg":
		p.VSeg, err = parseDecimalPtr(text)
	case "vDesc":
		p.VDesc, err = parseDecimalPtr(text)
	case "vOutro":
		p.VOutro, err = parseDecimalPtr(text)
	case "indTot":
		p.IndTot = boolFromFlag(text)
	case "indBemMovelUsado":
		b := boolFromFlag(text)
		p.IndBemMovelUsado = &b
	}
	return err
}

func decodeDI(cur *xmlcursor.Cursor, start xml.StartElement) (document.DI, error) {
	var di document.DI
	for {
		tok, err := cur.Next()
		if err != nil {
			return di, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "adi" {
				v, err := decodeDIAdicao(cur, t)
				if err != nil {
					return di, err
				}
				di.Adi = append(di.Adi, v)
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return di, err
			}
			switch t.Name.Local {
			case "nDI":
				di.NDI = text
			case "dDI":
				di.DDI = text
			case "xLocDesemb":
				di.XLocDesemb = text
			case "UFDesemb":
				di.UFDesemb = text
			case "dDesemb":
				di.DDesemb = text
			case "tpViaTransp":
				di.TpViaTransp = text
			case "vAFRMM":
				if di.VAFRMM, err = parseDecimalPtr(text); err != nil {
					return di, err
				}
			case "tpIntermedio":
				di.TpIntermedio = text
			case "CNPJ":
				di.CNPJ = text
			case "UFTerceiro":
				di.UFTerceiro = text
			case "cExportador":
				di.CExportador = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return di, nil
			}
		}
	}
}

func decodeDIAdicao(cur *xmlcursor.Cursor, start xml.StartElement) (document.DIAdicao, error) {
	var a document.DIAdicao
	for {
		tok, err := cur.Next()
		if err != nil {
			return a, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return a, err
			}
			switch t.Name.Local {
			case "nAdicao":
				a.NAdicao, err = parseInt(text)
			case "nSeqAdic":
				a.NSeqAdic, err = parseInt(text)
			case "cFabricante":
				a.CFabricante = text
			case "vDescDI":
				a.VDescDI, err = parseDecimalPtr(text)
			case "nDraw":
				a.NDraw = text
			}
			if err != nil {
				return a, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return a, nil
			}
		}
	}
}

func decodeDetExport(cur *xmlcursor.Cursor, start xml.StartElement) (document.DetExport, error) {
	var d document.DetExport
	for {
		tok, err := cur.Next()
		if err != nil {
			return d, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "exportInd" {
				v, err := decodeExportInd(cur, t)
				if err != nil {
					return d, err
				}
				d.ExportInd = &v
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return d, err
			}
			if t.Name.Local == "nDraw" {
				d.NDraw = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return d, nil
			}
		}
	}
}

func decodeExportInd(cur *xmlcursor.Cursor, start xml.StartElement) (document.ExportInd, error) {
	var e document.ExportInd
	for {
		tok, err := cur.Next()
		if err != nil {
			return e, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return e, err
			}
			switch t.Name.Local {
			case "nRE":
				e.NRE = text
			case "chNFe":
				e.ChNFe = text
			case "qExport":
				if e.QExport, err = parseDecimal(text); err != nil {
					return e, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return e, nil
			}
		}
	}
}

func decodeGCredProd(cur *xmlcursor.Cursor, start xml.StartElement) (document.GCred, error) {
	var g document.GCred
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
			case "cCredPresumido":
				g.CCredPresumido = text
			case "pCredPresumido":
				if g.PCredPresumido, err = parseDecimalPtr(text); err != nil {
					return g, err
				}
			case "vCredPresumido":
				if g.VCredPresumido, err = parseDecimalPtr(text); err != nil {
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

func decodeTVeiculo(cur *xmlcursor.Cursor, start xml.StartElement) (document.TVeiculo, error) {
	var v document.TVeiculo
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
			case "tpOp":
				v.TpOp = text
			case "chassi":
				v.Chassi = text
			case "cCor":
				v.CCor = text
			case "xCor":
				v.XCor = text
			case "pot":
				v.Pot = text
			case "cilin":
				v.Cilin = text
			case "pesoL":
				v.PesoL = text
			case "pesoB":
				v.PesoB = text
			case "nSerie":
				v.NSerie = text
			case "tpComb":
				v.TpComb = text
			case "nMotor":
				v.NMotor = text
			case "CMT":
				v.CMT = text
			case "dist":
				v.Dist = text
			case "anoMod":
				v.AnoMod = text
			case "anoFab":
				v.AnoFab = text
			case "tpPint":
				v.TpPint = text
			case "tpVeic":
				v.TpVeic = text
			case "especVeic":
				v.EspVeic = text
			case "VIN":
				v.VIN = text
			case "condVeic":
				v.CondVeic = text
			case "cMod":
				v.CMod = text
			case "cCorDENATRAN":
				v.CCorDENATRAN = text
			case "lota":
				v.Lota = text
			case "tpRest":
				v.TpRest = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeMedicamento(cur *xmlcursor.Cursor, start xml.StartElement) (document.Medicamento, error) {
	var m document.Medicamento
	for {
		tok, err := cur.Next()
		if err != nil {
			return m, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return m, err
			}
			switch t.Name.Local {
			case "cProdANVISA":
				m.CProdANVISA = text
			case "xMotivoIsencao":
				m.XMotivoIsencao = text
			case "vPMC":
				if m.VPMC, err = parseDecimal(text); err != nil {
					return m, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return m, nil
			}
		}
	}
}

func decodeArma(cur *xmlcursor.Cursor, start xml.StartElement) (document.Arma, error) {
	var a document.Arma
	for {
		tok, err := cur.Next()
		if err != nil {
			return a, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return a, err
			}
			switch t.Name.Local {
			case "tpArma":
				a.TpArma = text
			case "nSerie":
				a.NSerie = text
			case "nCano":
				a.NCano = text
			case "descr":
				a.Descr = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return a, nil
			}
		}
	}
}

func decodeComb(cur *xmlcursor.Cursor, start xml.StartElement) (document.Comb, error) {
	var c document.Comb
	for {
		tok, err := cur.Next()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "CIDE":
				v, err := decodeCIDE(cur, t)
				if err != nil {
					return c, err
				}
				c.CIDE = &v
				continue
			case "encerrante":
				v, err := decodeEncerrante(cur, t)
				if err != nil {
					return c, err
				}
				c.Encerrante = &v
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return c, err
			}
			switch t.Name.Local {
			case "cProdANP":
				c.CProdANP = text
			case "descANP":
				c.DescANP = text
			case "pGLP":
				c.PGLP, err = parseDecimalPtr(text)
			case "pGNn":
				c.PGNn, err = parseDecimalPtr(text)
			case "pGNi":
				c.PGNi, err = parseDecimalPtr(text)
			case "vPart":
				c.VPart, err = parseDecimalPtr(text)
			case "CODIF":
				c.CODIF = text
			case "qTemp":
				c.QTemp, err = parseDecimalPtr(text)
			case "UFCons":
				c.UFCons = text
			case "pBio":
				c.PBio, err = parseDecimalPtr(text)
			}
			if err != nil {
				return c, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return c, nil
			}
		}
	}
}

func decodeCIDE(cur *xmlcursor.Cursor, start xml.StartElement) (document.CIDE, error) {
	var c document.CIDE
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
			case "qBCProd":
				c.QBCProd, err = parseDecimal(text)
			case "vAliqProd":
				c.VAliqProd, err = parseDecimal(text)
			case "vCIDE":
				c.VCIDE, err = parseDecimal(text)
			}
			if err != nil {
				return c, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return c, nil
			}
		}
	}
}

func decodeEncerrante(cur *xmlcursor.Cursor, start xml.StartElement) (document.Encerrante, error) {
	var e document.Encerrante
	for {
		tok, err := cur.Next()
		if err != nil {
			return e, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return e, err
			}
			switch t.Name.Local {
			case "nBico":
				e.NBico = text
			case "nBomba":
				e.NBomba = text
			case "nTanque":
				e.NTanque = text
			case "qTemp":
				if e.QTemp, err = parseDecimal(text); err != nil {
					return e, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return e, nil
			}
		}
	}
}

func decodeInfProdNFF(cur *xmlcursor.Cursor, start xml.StartElement) (document.InfProdNFF, error) {
	var v document.InfProdNFF
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
			case "cProdFisco":
				v.CProdFisco = text
			case "cOperNFF":
				v.COperNFF = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeInfProdEmb(cur *xmlcursor.Cursor, start xml.StartElement) (document.InfProdEmb, error) {
	var v document.InfProdEmb
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
			case "xEmb":
				v.XEmb = text
			case "qVolEmb":
				if v.QVolEmb, err = parseDecimal(text); err != nil {
					return v, err
				}
			case "uEmb":
				v.UEmb = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}
