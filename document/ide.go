package document

// Ide is the invoice's identification block (<ide>).
type Ide struct {
	CUF             int        `json:"cUF"`
	CNF             string     `json:"cNF"`
	NatOp           string     `json:"natOp"`
	Mod             int        `json:"mod"`
	Serie           int        `json:"serie"`
	NNF             int        `json:"nNF"`
	DhEmi           string     `json:"dhEmi"`
	DhSaiEnt        string     `json:"dhSaiEnt,omitempty"`
	TpNF            bool       `json:"tpNF"`
	IdDest          int        `json:"idDest"`
	CMunFG          int        `json:"cMunFG"`
	CMunFGIBS       *int       `json:"cMunFGIBS,omitempty"`
	TpImp           int        `json:"tpImp"`
	TpEmis          int        `json:"tpEmis"`
	CDV             int        `json:"cDV"`
	TpAmb           int        `json:"tpAmb"`
	FinNFe          int        `json:"finNFe"`
	TpNFDebito      *int       `json:"tpNFDebito,omitempty"`
	TpNFCredito     *int       `json:"tpNFCredito,omitempty"`
	IndFinal        bool       `json:"indFinal"`
	IndPres         int        `json:"indPres"`
	IndIntermed     *bool      `json:"indIntermed,omitempty"`
	ProcEmi         int        `json:"procEmi"`
	VerProc         string     `json:"verProc"`
	DhCont          string     `json:"dhCont,omitempty"`
	XJust           string     `json:"xJust,omitempty"`
	NFref           []NFRef    `json:"NFref,omitempty"`
	GCompraGov      *CompraGov `json:"gCompraGov,omitempty"`
	GPagAntecipado  []string   `json:"gPagAntecipado,omitempty"`
}

// BoolFromFlag implements the schema-wide textual boolean rule:
// "1" is true, anything else is false.
func BoolFromFlag(s string) bool {
	return s == "1"
}
