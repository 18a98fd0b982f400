package document

// NFe is the central invoice entity, built from a single <infNFe>
// subtree by one decoder invocation.
type NFe struct {
	Id           string        `json:"id"`
	Ide          Ide           `json:"ide"`
	Emit         Emit          `json:"emit"`
	Avulsa       *Avulsa       `json:"avulsa,omitempty"`
	Dest         *Dest         `json:"dest,omitempty"`
	Retirada     *Local        `json:"retirada,omitempty"`
	Entrega      *Local        `json:"entrega,omitempty"`
	Items        []Det         `json:"items"`
	Total        Total         `json:"total"`
	Transp       Transp        `json:"transport"`
	Cobr         *Cobr         `json:"billing,omitempty"`
	Pag          Pag           `json:"payment"`
	InfIntermed  *InfIntermed  `json:"intermediary,omitempty"`
	InfAdic      *InfAdic      `json:"adic,omitempty"`
	Exporta      *Exporta      `json:"exporta,omitempty"`
	Compra       *Compra       `json:"compra,omitempty"`
	Cana         *Cana         `json:"cana,omitempty"`
	Agropecuario *Agropecuario `json:"agropecuario,omitempty"`
	InfRespTec   *InfRespTec   `json:"respTec,omitempty"`
}

// InvoiceBatch is the decoded-document envelope for invoice inputs,
// carrying the company/org routing pair the descriptor supplied. Its
// JSON shape matches the outbound publish message exactly:
// {"company_id", "org_id", "nfes": [...]}.
type InvoiceBatch struct {
	CompanyID int64 `json:"company_id"`
	OrgID     int64 `json:"org_id"`
	Invoices  []NFe `json:"nfes"`
}
