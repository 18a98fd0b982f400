package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/types"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

func decodeLocal(cur *xmlcursor.Cursor, start xml.StartElement) (document.Local, error) {
	var l document.Local
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
			switch t.Name.Local {
			case "xLgr":
				l.XLgr = text
			case "nro":
				l.Nro = text
			case "xCpl":
				l.XCpl = text
			case "xBairro":
				l.XBairro = text
			case "cMun":
				l.CMun, err = parseInt(text)
			case "xMun":
				l.XMun = text
			case "UF":
				l.UF = types.UFFromString(text)
			case "CEP":
				l.CEP = text
			case "cPais":
				l.CPais = text
			case "xPais":
				l.XPais = text
			case "fone":
				l.Fone = text
			}
			if err != nil {
				return l, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return l, nil
			}
		}
	}
}

// decodeEmit reads <emit>, flattening its CNPJ/CPF/idEstrangeiro
// sibling into the Id field rather than a dedicated struct field.
func decodeEmit(cur *xmlcursor.Cursor, start xml.StartElement) (document.Emit, error) {
	var e document.Emit
	for {
		tok, err := cur.Next()
		if err != nil {
			return e, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "enderEmit" {
				v, err := decodeLocal(cur, t)
				if err != nil {
					return e, err
				}
				e.EnderEmit = v
				continue
			}
			if isEmitenteIdField(t.Name.Local) {
				id, err := readEmitenteIdField(cur, t)
				if err != nil {
					return e, err
				}
				e.Id = id
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return e, err
			}
			switch t.Name.Local {
			case "xNome":
				e.XNome = text
			case "xFant":
				e.XFant = text
			case "IE":
				e.IE = text
			case "IEST":
				e.IEST = text
			case "IM":
				e.IM = text
			case "CNAE":
				e.CNAE = text
			case "CRT":
				e.CRT, err = parseInt(text)
				if err != nil {
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

func decodeAvulsa(cur *xmlcursor.Cursor, start xml.StartElement) (document.Avulsa, error) {
	var a document.Avulsa
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
			case "CNPJ":
				a.CNPJ = text
			case "xOrgao":
				a.XOrgao = text
			case "matr":
				a.Matr = text
			case "xAgente":
				a.XAgente = text
			case "fone":
				a.Fone = text
			case "UF":
				a.UF = types.UFFromString(text)
			case "nDAR":
				a.NDAR = text
			case "dEmi":
				a.DEmi = text
			case "vDAR":
				a.VDAR, err = parseDecimalPtr(text)
			case "repEmi":
				a.RepEmi = text
			case "dPag":
				a.DPag = text
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

// decodeDest reads <dest>, flattening its EmitenteId sibling the same
// way decodeEmit does.
func decodeDest(cur *xmlcursor.Cursor, start xml.StartElement) (document.Dest, error) {
	var d document.Dest
	for {
		tok, err := cur.Next()
		if err != nil {
			return d, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "enderDest" {
				v, err := decodeLocal(cur, t)
				if err != nil {
					return d, err
				}
				d.EnderDest = &v
				continue
			}
			if isEmitenteIdField(t.Name.Local) {
				id, err := readEmitenteIdField(cur, t)
				if err != nil {
					return d, err
				}
				d.Id = id
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return d, err
			}
			switch t.Name.Local {
			case "xNome":
				d.XNome = text
			case "indIEDest":
				d.IndIEDest, err = parseInt(text)
			case "IE":
				d.IE = text
			case "ISUF":
				d.ISUF = text
			case "IM":
				d.IM = text
			case "email":
				d.Email = text
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
