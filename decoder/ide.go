package decoder

import (
	"encoding/xml"

	"github.com/biel-despair/fiscal-doc-worker/document"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

func decodeIde(cur *xmlcursor.Cursor, start xml.StartElement) (document.Ide, error) {
	var ide document.Ide
	for {
		tok, err := cur.Next()
		if err != nil {
			return ide, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "NFref":
				ref, err := decodeNFRef(cur, t)
				if err != nil {
					return ide, err
				}
				ide.NFref = append(ide.NFref, ref)
				continue
			case "gCompraGov":
				g, err := decodeCompraGov(cur, t)
				if err != nil {
					return ide, err
				}
				ide.GCompraGov = &g
				continue
			case "gPagAntecipado":
				// Each child element inside gPagAntecipado carries one
				// prior-payment invoice key as plain text.
				for {
					tok, err := cur.Next()
					if err != nil {
						return ide, err
					}
					if e, ok := tok.(xml.EndElement); ok && e.Name.Local == t.Name.Local {
						break
					}
					if s, ok := tok.(xml.StartElement); ok {
						text, err := cur.ReadTextOf(s)
						if err != nil {
							return ide, err
						}
						ide.GPagAntecipado = append(ide.GPagAntecipado, text)
					}
				}
				continue
			}

			text, err := cur.ReadTextOf(t)
			if err != nil {
				return ide, err
			}
			if err := assignIdeField(&ide, t.Name.Local, text); err != nil {
				return ide, err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return ide, nil
			}
		}
	}
}

func assignIdeField(ide *document.Ide, name, text string) error {
	var err error
	switch name {
	case "cUF":
		ide.CUF, err = parseInt(text)
	case "cNF":
		ide.CNF = text
	case "natOp":
		ide.NatOp = text
	case "mod":
		ide.Mod, err = parseInt(text)
	case "serie":
		ide.Serie, err = parseInt(text)
	case "nNF":
		ide.NNF, err = parseInt(text)
	case "dhEmi":
		ide.DhEmi = text
	case "dhSaiEnt":
		ide.DhSaiEnt = text
	case "tpNF":
		ide.TpNF = boolFromFlag(text)
	case "idDest":
		ide.IdDest, err = parseInt(text)
	case "cMunFG":
		ide.CMunFG, err = parseInt(text)
	case "cMunFGIBS":
		ide.CMunFGIBS, err = parseIntPtr(text)
	case "tpImp":
		ide.TpImp, err = parseInt(text)
	case "tpEmis":
		ide.TpEmis, err = parseInt(text)
	case "cDV":
		ide.CDV, err = parseInt(text)
	case "tpAmb":
		ide.TpAmb, err = parseInt(text)
	case "finNFe":
		ide.FinNFe, err = parseInt(text)
	case "tpNFDebito":
		ide.TpNFDebito, err = parseIntPtr(text)
	case "tpNFCredito":
		ide.TpNFCredito, err = parseIntPtr(text)
	case "indFinal":
		ide.IndFinal = boolFromFlag(text)
	case "indPres":
		ide.IndPres, err = parseInt(text)
	case "indIntermed":
		b := boolFromFlag(text)
		ide.IndIntermed = &b
	case "procEmi":
		ide.ProcEmi, err = parseInt(text)
	case "verProc":
		ide.VerProc = text
	case "dhCont":
		ide.DhCont = text
	case "xJust":
		ide.XJust = text
	}
	return err
}

func decodeCompraGov(cur *xmlcursor.Cursor, start xml.StartElement) (document.CompraGov, error) {
	var g document.CompraGov
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
			case "tpEnteGov":
				g.TpEnteGov = text
			case "pRedutor":
				d, err := parseDecimal(text)
				if err != nil {
					return g, err
				}
				g.PRedutor = d
			case "tpOperGov":
				g.TpOperGov = text
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return g, nil
			}
		}
	}
}
