package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

// decodeEvent reads one <evento> subtree. Its Signature child is
// recognized-and-skipped, matching infNFe's treatment.
func decodeEvent(cur *xmlcursor.Cursor, start xml.StartElement) (document.Event, error) {
	var ev document.Event
	for {
		tok, err := cur.Next()
		if err != nil {
			return ev, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "infEvento" {
				if id, ok := cur.Attr(t, "Id"); ok {
					ev.Id = id
				}
				v, err := decodeEventInfo(cur, t)
				if err != nil {
					return ev, err
				}
				ev.InfEvento = v
				continue
			}
			if err := cur.Skip(t); err != nil {
				return ev, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return ev, nil
			}
		}
	}
}

func decodeEventInfo(cur *xmlcursor.Cursor, start xml.StartElement) (document.EventInfo, error) {
	var info document.EventInfo
	for {
		tok, err := cur.Next()
		if err != nil {
			return info, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "detEvento" {
				if err := cur.Skip(t); err != nil {
					return info, err
				}
				continue
			}
			if isEmitenteIdField(t.Name.Local) {
				id, err := readEmitenteIdField(cur, t)
				if err != nil {
					return info, err
				}
				info.Id = id
				continue
			}
			text, err := cur.ReadTextOf(t)
			if err != nil {
				return info, err
			}
			switch t.Name.Local {
			case "cOrgao":
				info.COrgao, err = parseInt(text)
			case "tpAmb":
				info.TpAmb, err = parseInt(text)
			case "chNFe":
				info.ChNFe = text
			case "dhEvento":
				info.DhEvento = text
			case "tpEvento":
				info.TpEvento = text
			case "nSeqEvento":
				info.NSeqEvento, err = parseInt(text)
			case "verEvento":
				info.VerEvento = text
			case "descEvento":
				info.DescEvento = text
			case "nProt":
				info.NProt = text
			case "xJust":
				info.XJust = text
			}
			if err != nil {
				return info, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return info, nil
			}
		}
	}
}

func decodeEventReturn(cur *xmlcursor.Cursor, start xml.StartElement) (document.EventReturn, error) {
	var r document.EventReturn
	if id, ok := cur.Attr(start, "Id"); ok {
		r.Id = id
	}
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
			case "tpAmb":
				r.TpAmb, err = parseInt(text)
			case "verAplic":
				r.VerAplic = text
			case "cOrgao":
				r.COrgao, err = parseInt(text)
			case "cStat":
				r.CStat, err = parseInt(text)
			case "xMotivo":
				r.XMotivo = text
			case "dhRegEvento":
				r.DhRegEvento = text
			case "chNFe":
				r.ChNFe = text
			case "tpEvento":
				r.TpEvento = text
			case "nSeqEvento":
				r.NSeqEvento, err = parseIntPtr(text)
			case "cOrgaoAutor":
				r.COrgaoAutor, err = parseIntPtr(text)
			case "nProt":
				r.NProt = text
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

// decodeProcEvent reads <procEventoNFe>: the submitted event paired
// with its authority acknowledgement.
func decodeProcEvent(cur *xmlcursor.Cursor, start xml.StartElement) (document.ProcEvent, error) {
	var p document.ProcEvent
	for {
		tok, err := cur.Next()
		if err != nil {
			return p, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "evento":
				v, err := decodeEvent(cur, t)
				if err != nil {
					return p, err
				}
				p.Event = v
			case "retEvento":
				v, err := decodeEventReturn(cur, t)
				if err != nil {
					return p, err
				}
				p.Ret = v
			default:
				if err := cur.Skip(t); err != nil {
					return p, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return p, nil
			}
		}
	}
}
