package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeTransp reads <transp>. Veiculo's road/wagon/barge choice is
// resolved structurally: whichever of veicTransp/reboque/vagao/balsa
// the decoder observes populates the corresponding field.
func decodeTransp(cur *xmlcursor.Cursor, start xml.StartElement) (document.Transp, error) {
	var t document.Transp
	for {
		tok, err := cur.Next()
		if err != nil {
			return t, err
		}
		switch e := tok.(type) {
		case xml.StartElement:
			switch e.Name.Local {
			case "transporta":
				v, err := decodeTransporta(cur, e)
				if err != nil {
					return t, err
				}
				t.Transporta = &v
			case "retTransp":
				v, err := decodeRetTransp(cur, e)
				if err != nil {
					return t, err
				}
				t.RetTransp = &v
			case "veiculo":
				v, err := decodeVeiculo(cur, e)
				if err != nil {
					return t, err
				}
				t.Veiculo = &v
			case "vol":
				v, err := decodeVol(cur, e)
				if err != nil {
					return t, err
				}
				t.Vol = append(t.Vol, v)
			case "modFrete":
				text, err := cur.ReadTextOf(e)
				if err != nil {
					return t, err
				}
				if t.ModFrete, err = parseDecimal(text); err != nil {
					return t, err
				}
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

func decodeTransporta(cur *xmlcursor.Cursor, start xml.StartElement) (document.Transporta, error) {
	var tr document.Transporta
	for {
		tok, err := cur.Next()
		if err != nil {
			return tr, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if isEmitenteIdField(t.Name.Local) {
				id, err := readEmitenteIdField(cur, t)
				if err != nil {
					return tr, err
				}
				tr.Id = id
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return tr, err
			}
			switch t.Name.Local {
			case "xNome":
				tr.XNome = text
			case "IE":
				tr.IE = text
			case "xEnder":
				tr.XEnder = text
			case "xMun":
				tr.XMun = text
			case "UF":
				tr.UF = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return tr, nil
			}
		}
	}
}

func decodeRetTransp(cur *xmlcursor.Cursor, start xml.StartElement) (document.RetTransp, error) {
	var r document.RetTransp
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
			case "vServ":
				r.VServ, err = parseDecimal(text)
			case "vBCRet":
				r.VBCRet, err = parseDecimal(text)
			case "pICMSRet":
				r.PICMSRet, err = parseDecimal(text)
			case "vICMSRet":
				r.VICMSRet, err = parseDecimal(text)
			case "CFOP":
				r.CFOP = text
			case "cMunFG":
				r.CMunFG, err = parseInt(text)
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

func decodeTransportVeiculo(cur *xmlcursor.Cursor, start xml.StartElement) (document.TransportVeiculo, error) {
	var v document.TransportVeiculo
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
			case "placa":
				v.Placa = text
			case "UF":
				v.UF = text
			case "RNTC":
				v.RNTC = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeVeiculo(cur *xmlcursor.Cursor, start xml.StartElement) (document.Veiculo, error) {
	var v document.Veiculo
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "veicTransp":
				tv, err := decodeTransportVeiculo(cur, t)
				if err != nil {
					return v, err
				}
				v.VeicTransp = &tv
				continue
			case "reboque":
				tv, err := decodeTransportVeiculo(cur, t)
				if err != nil {
					return v, err
				}
				v.Reboque = append(v.Reboque, tv)
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			switch t.Name.Local {
			case "vagao":
				v.Vagao = text
			case "balsa":
				v.Balsa = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return v, nil
			}
		}
	}
}

func decodeLacre(cur *xmlcursor.Cursor, start xml.StartElement) (document.Lacre, error) {
	var l document.Lacre
	for {
		tok, err := cur.Next()
		if err != nil {
			return l, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return l, err
			}
			if t.Name.Local == "nLacre" {
				l.NLacre = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return l, nil
			}
		}
	}
}

func decodeVol(cur *xmlcursor.Cursor, start xml.StartElement) (document.Vol, error) {
	var v document.Vol
	for {
		tok, err := cur.Next()
		if err != nil {
			return v, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "lacres" {
				l, err := decodeLacre(cur, t)
				if err != nil {
					return v, err
				}
				v.Lacres = append(v.Lacres, l)
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return v, err
			}
			switch t.Name.Local {
			case "qVol":
				n, err := parseInt(text)
				if err != nil {
					return v, err
				}
				v.QVol = &n
			case "esp":
				v.Esp = text
			case "marca":
				v.Marca = text
			case "nVol":
				v.NVol = text
			case "pesoL":
				v.PesoL, err = parseDecimalPtr(text)
				if err != nil {
					return v, err
				}
			case "pesoB":
				v.PesoB, err = parseDecimalPtr(text)
				if err != nil {
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
