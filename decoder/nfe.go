package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeNFe reads one <infNFe> subtree, dispatching every top-level
// child to its own sub-decoder.
func decodeNFe(cur *xmlcursor.Cursor, start xml.StartElement) (document.NFe, error) {
	var nfe document.NFe
	if id, ok := cur.Attr(start, "Id"); ok {
		nfe.Id = id
	}
	for {
		tok, err := cur.Next()
		if err != nil {
			return nfe, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ide":
				v, err := decodeIde(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Ide = v
			case "emit":
				v, err := decodeEmit(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Emit = v
			case "avulsa":
				v, err := decodeAvulsa(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Avulsa = &v
			case "dest":
				v, err := decodeDest(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Dest = &v
			case "retirada":
				v, err := decodeLocal(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Retirada = &v
			case "entrega":
				v, err := decodeLocal(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Entrega = &v
			case "det":
				v, err := decodeDet(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Items = append(nfe.Items, v)
			case "total":
				v, err := decodeTotal(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Total = v
			case "transp":
				v, err := decodeTransp(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Transp = v
			case "cobr":
				v, err := decodeCobr(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Cobr = &v
			case "pag":
				v, err := decodePag(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Pag = v
			case "infIntermed":
				v, err := decodeInfIntermed(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.InfIntermed = &v
			case "infAdic":
				v, err := decodeInfAdic(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.InfAdic = &v
			case "exporta":
				v, err := decodeExporta(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Exporta = &v
			case "compra":
				v, err := decodeCompra(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Compra = &v
			case "cana":
				v, err := decodeCana(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Cana = &v
			case "agropecuario":
				v, err := decodeAgropecuario(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.Agropecuario = &v
			case "infRespTec":
				v, err := decodeInfRespTec(cur, t)
				if err != nil {
					return nfe, err
				}
				nfe.InfRespTec = &v
			case "Signature":
				if err := cur.Skip(t); err != nil {
					return nfe, err
				}
			default:
				if err := cur.Skip(t); err != nil {
					return nfe, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nfe, nil
			}
		}
	}
}
