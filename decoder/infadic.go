package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

func decodeInfAdic(cur *xmlcursor.Cursor, start xml.StartElement) (document.InfAdic, error) {
	var a document.InfAdic
	for {
		tok, err := cur.Next()
		if err != nil {
			return a, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "obsCont":
				v, err := decodeObsCont(cur, t)
				if err != nil {
					return a, err
				}
				a.ObsCont = append(a.ObsCont, v)
				continue
			case "obsFisco":
				v, err := decodeObsFisco(cur, t)
				if err != nil {
					return a, err
				}
				a.ObsFisco = append(a.ObsFisco, v)
				continue
			case "procRef":
				v, err := decodeProcRef(cur, t)
				if err != nil {
					return a, err
				}
				a.ProcRef = append(a.ProcRef, v)
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return a, err
			}
			switch t.Name.Local {
			case "infAdFisco":
				a.InfAdFisco = text
			case "infCpl":
				a.InfCpl = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return a, nil
			}
		}
	}
}

func decodeObsCont(cur *xmlcursor.Cursor, start xml.StartElement) (document.ObsCont, error) {
	var o document.ObsCont
	for {
		tok, err := cur.Next()
		if err != nil {
			return o, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return o, err
			}
			switch t.Name.Local {
			case "xCampo":
				o.XCampo = text
			case "xTexto":
				o.XTexto = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return o, nil
			}
		}
	}
}

func decodeObsFisco(cur *xmlcursor.Cursor, start xml.StartElement) (document.ObsFisco, error) {
	var o document.ObsFisco
	for {
		tok, err := cur.Next()
		if err != nil {
			return o, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return o, err
			}
			switch t.Name.Local {
			case "xCampo":
				o.XCampo = text
			case "xTexto":
				o.XTexto = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return o, nil
			}
		}
	}
}

func decodeProcRef(cur *xmlcursor.Cursor, start xml.StartElement) (document.ProcRef, error) {
	var p document.ProcRef
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
			case "nProc":
				p.NProc = text
			case "indProc":
				p.IndProc = text
			case "tpAto":
				p.TpAto = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return p, nil
			}
		}
	}
}

func decodeInfIntermed(cur *xmlcursor.Cursor, start xml.StartElement) (document.InfIntermed, error) {
	var v document.InfIntermed
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
			case "CNPJ":
				v.CNPJ = text
			case "idCadIntTran":
				v.IdCadIntTran = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeInfRespTec(cur *xmlcursor.Cursor, start xml.StartElement) (document.InfRespTec, error) {
	var v document.InfRespTec
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
			case "CNPJ":
				v.CNPJ = text
			case "xContato":
				v.XContato = text
			case "email":
				v.Email = text
			case "fone":
				v.Fone = text
			case "idCSRT":
				v.IdCSRT = text
			case "hashCSRT":
				v.HashCSRT = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeExporta(cur *xmlcursor.Cursor, start xml.StartElement) (document.Exporta, error) {
	var v document.Exporta
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
			case "UFSaidaPais":
				v.UFSaidaPais = text
			case "xLocExporta":
				v.XLocExporta = text
			case "xLocDespacho":
				v.XLocDespacho = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeCompra(cur *xmlcursor.Cursor, start xml.StartElement) (document.Compra, error) {
	var v document.Compra
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
			case "xNEmp":
				v.XNEmp = text
			case "xPed":
				v.XPed = text
			case "xCont":
				v.XCont = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeForDia(cur *xmlcursor.Cursor, start xml.StartElement) (document.ForDia, error) {
	var v document.ForDia
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
			case "dia":
				v.Dia, err = parseInt(text)
			case "qtde":
				v.Qtde, err = parseDecimal(text)
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

func decodeDeduc(cur *xmlcursor.Cursor, start xml.StartElement) (document.Deduc, error) {
	var v document.Deduc
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
			case "xDed":
				v.XDed = text
			case "vDed":
				v.VDed, err = parseDecimal(text)
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

func decodeCana(cur *xmlcursor.Cursor, start xml.StartElement) (document.Cana, error) {
	var v document.Cana
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "forDia":
				f, err := decodeForDia(cur, t)
				if err != nil {
					return v, err
				}
				v.ForDia = append(v.ForDia, f)
				continue
			case "deduc":
				d, err := decodeDeduc(cur, t)
				if err != nil {
					return v, err
				}
				v.Deduc = append(v.Deduc, d)
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			switch t.Name.Local {
			case "safra":
				v.Safra = text
			case "ref":
				v.Ref = text
			case "qTotMes":
				v.QTotMes, err = parseDecimal(text)
			case "qTotAnt":
				v.QTotAnt, err = parseDecimal(text)
			case "qTotGer":
				v.QTotGer, err = parseDecimal(text)
			case "vFor":
				v.VFor, err = parseDecimal(text)
			case "vTotDed":
				v.VTotDed, err = parseDecimal(text)
			case "vLiqFor":
				v.VLiqFor, err = parseDecimal(text)
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

func decodeDefensivo(cur *xmlcursor.Cursor, start xml.StartElement) (document.Defensivo, error) {
	var v document.Defensivo
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
			case "nReceituario":
				v.NReceituario = text
			case "CPFRespTec":
				v.CPFRespTec = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeGuiaTransito(cur *xmlcursor.Cursor, start xml.StartElement) (document.GuiaTransito, error) {
	var v document.GuiaTransito
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
			case "tpGuia":
				v.TpGuia = text
			case "UFGuia":
				v.UFGuia = text
			case "serieGuia":
				v.SerieGuia = text
			case "nGuia":
				v.NGuia = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

// decodeAgropecuario distinguishes the repeatable defensivo list from
// the single-shot guiaTransito variant by which signal element the
// decoder observes.
func decodeAgropecuario(cur *xmlcursor.Cursor, start xml.StartElement) (document.Agropecuario, error) {
	var v document.Agropecuario
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "defensivo":
				d, err := decodeDefensivo(cur, t)
				if err != nil {
					return v, err
				}
				v.Defensivo = append(v.Defensivo, d)
			case "guiaTransito":
				g, err := decodeGuiaTransito(cur, t)
				if err != nil {
					return v, err
				}
				v.GuiaTransito = &g
			default:
				if err := cur.Skip(t); err != nil {
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
