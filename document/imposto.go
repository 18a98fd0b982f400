package document

// Imposto is an item's tax bundle. Its regime choice — goods (ICMS +
// optional IPI/II) versus services (optional IPI + ISSQN) — is
// realized the same way as the rate-vs-quantity choices: both regimes
// are optional fields, and only the one the decoder actually observed
// is populated. The remaining sub-groups are independent of the
// regime and of each other.
type Imposto struct {
	ICMS       *ICMS       `json:"ICMS,omitempty"`
	IPI        *IPI        `json:"IPI,omitempty"`
	II         *II         `json:"II,omitempty"`
	ISSQN      *ISSQN      `json:"ISSQN,omitempty"`
	PIS        *PIS        `json:"PIS,omitempty"`
	PISST      *PISST      `json:"PISST,omitempty"`
	COFINS     *COFINS     `json:"COFINS,omitempty"`
	COFINSST   *COFINSST   `json:"COFINSST,omitempty"`
	ICMSUFDest *ICMSUFDest `json:"ICMSUFDest,omitempty"`
	IS         *IS         `json:"IS,omitempty"`
	IBSCBS     *TCIBS      `json:"IBSCBS,omitempty"`
	VTotTrib   *Decimal    `json:"vTotTrib,omitempty"`
}
