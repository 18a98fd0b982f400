package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeImposto reads <imposto>, dispatching each tax schedule to its
// own sub-decoder. The goods-vs-service regime choice is not resolved
// here: ICMS/IPI/II/ISSQN/IS/IBSCBS simply populate whichever optional
// fields were present in the source document.
func decodeImposto(cur *xmlcursor.Cursor, start xml.StartElement) (document.Imposto, error) {
	var imp document.Imposto
	for {
		tok, err := cur.Next()
		if err != nil {
			return imp, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ICMS":
				v, err := decodeICMS(cur, t)
				if err != nil {
					return imp, err
				}
				imp.ICMS = &v
			case "IPI":
				v, err := decodeIPI(cur, t)
				if err != nil {
					return imp, err
				}
				imp.IPI = &v
			case "II":
				v, err := decodeII(cur, t)
				if err != nil {
					return imp, err
				}
				imp.II = &v
			case "ISSQN":
				v, err := decodeISSQN(cur, t)
				if err != nil {
					return imp, err
				}
				imp.ISSQN = &v
			case "PIS":
				v, err := decodePIS(cur, t)
				if err != nil {
					return imp, err
				}
				imp.PIS = &v
			case "PISST":
				v, err := decodePISST(cur, t)
				if err != nil {
					return imp, err
				}
				imp.PISST = &v
			case "COFINS":
				v, err := decodeCOFINS(cur, t)
				if err != nil {
					return imp, err
				}
				imp.COFINS = &v
			case "COFINSST":
				v, err := decodeCOFINSST(cur, t)
				if err != nil {
					return imp, err
				}
				imp.COFINSST = &v
			case "ICMSUFDest":
				v, err := decodeICMSUFDest(cur, t)
				if err != nil {
					return imp, err
				}
				imp.ICMSUFDest = &v
			case "IS":
				v, err := decodeIS(cur, t)
				if err != nil {
					return imp, err
				}
				imp.IS = &v
			case "IBSCBS":
				v, err := decodeTCIBS(cur, t)
				if err != nil {
					return imp, err
				}
				imp.IBSCBS = &v
			case "vTotTrib":
				text, err := cur.ReadTextOf(t)
				if err != nil {
					return imp, err
				}
				v, err := parseDecimalPtr(text)
				if err != nil {
					return imp, err
				}
				imp.VTotTrib = v
			default:
				if err := cur.Skip(t); err != nil {
					return imp, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return imp, nil
			}
		}
	}
}
