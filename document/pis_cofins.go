package document

// PIS is the PIS contribution schedule. Its rate-vs-quantity choice
// (and the PISNT/PISOutr cases) is realized structurally: only the
// fields the decoder actually observed are populated, so the correct
// subset serializes without an explicit variant tag.
type PIS struct {
	CST       string   `json:"CST"`
	VBC       *Decimal `json:"vBC,omitempty"`
	PPIS      *Decimal `json:"pPIS,omitempty"`
	QBCProd   *Decimal `json:"qBCProd,omitempty"`
	VAliqProd *Decimal `json:"vAliqProd,omitempty"`
	VPIS      *Decimal `json:"vPIS,omitempty"`
}

// COFINS mirrors PIS.
type COFINS struct {
	CST       string   `json:"CST"`
	VBC       *Decimal `json:"vBC,omitempty"`
	PCOFINS   *Decimal `json:"pCOFINS,omitempty"`
	QBCProd   *Decimal `json:"qBCProd,omitempty"`
	VAliqProd *Decimal `json:"vAliqProd,omitempty"`
	VCOFINS   *Decimal `json:"vCOFINS,omitempty"`
}

// PISST is the PIS substituição tributária schedule.
//
// indSomaPISST is carried as a bool (derived from the textual "1"
// rule) while COFINSST's analogous flag is numeric — this mirrors a
// discrepancy observed in the upstream source and is preserved
// deliberately rather than normalized.
type PISST struct {
	VBC          *Decimal `json:"vBC,omitempty"`
	PPIS         *Decimal `json:"pPIS,omitempty"`
	QBCProd      *Decimal `json:"qBCProd,omitempty"`
	VAliqProd    *Decimal `json:"vAliqProd,omitempty"`
	VPIS         Decimal  `json:"vPIS"`
	IndSomaPISST *bool    `json:"indSomaPISST,omitempty"`
}

// COFINSST mirrors PISST, except its soma flag is numeric (u8 in the
// source) rather than boolean.
type COFINSST struct {
	VBC             *Decimal `json:"vBC,omitempty"`
	PCOFINS         *Decimal `json:"pCOFINS,omitempty"`
	QBCProd         *Decimal `json:"qBCProd,omitempty"`
	VAliqProd       *Decimal `json:"vAliqProd,omitempty"`
	VCOFINS         Decimal  `json:"vCOFINS"`
	IndSomaCOFINSST *int     `json:"indSomaCOFINSST,omitempty"`
}
