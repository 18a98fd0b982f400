package document

import "github.com/biel-despair/fiscal-doc-worker/types"

// Local is the shared address shape used by emitter, recipient,
// pickup, and delivery locations.
type Local struct {
	XLgr    string   `json:"xLgr"`
	Nro     string   `json:"nro"`
	XCpl    string   `json:"xCpl,omitempty"`
	XBairro string   `json:"xBairro"`
	CMun    int      `json:"cMun"`
	XMun    string   `json:"xMun"`
	UF      types.UF `json:"UF"`
	CEP     string   `json:"CEP,omitempty"`
	CPais   string   `json:"cPais,omitempty"`
	XPais   string   `json:"xPais,omitempty"`
	Fone    string   `json:"fone,omitempty"`
}

// Emit is the invoice's issuer (<emit>).
type Emit struct {
	Id       EmitenteId `json:"-"`
	XNome    string     `json:"xNome"`
	XFant    string     `json:"xFant,omitempty"`
	EnderEmit Local     `json:"enderEmit"`
	IE       string     `json:"IE"`
	IEST     string     `json:"IEST,omitempty"`
	IM       string     `json:"IM,omitempty"`
	CNAE     string     `json:"CNAE,omitempty"`
	CRT      int        `json:"CRT"`
}

// MarshalJSON flattens Emit's EmitenteId alongside its own fields.
func (e Emit) MarshalJSON() ([]byte, error) {
	type alias Emit
	return mergeJSON(alias(e), e.Id.asMap())
}

// Avulsa describes an invoice issued on the taxpayer's behalf by a
// tax authority (avulsa).
type Avulsa struct {
	CNPJ    string   `json:"CNPJ"`
	XOrgao  string   `json:"xOrgao"`
	Matr    string   `json:"matr"`
	XAgente string   `json:"xAgente"`
	Fone    string   `json:"fone,omitempty"`
	UF      types.UF `json:"UF"`
	NDAR    string   `json:"nDAR,omitempty"`
	DEmi    string   `json:"dEmi,omitempty"`
	VDAR    *Decimal `json:"vDAR,omitempty"`
	RepEmi  string   `json:"repEmi"`
	DPag    string   `json:"dPag,omitempty"`
}

// Dest is the invoice's recipient (<dest>).
type Dest struct {
	Id         EmitenteId `json:"-"`
	XNome      string     `json:"xNome,omitempty"`
	EnderDest  *Local     `json:"enderDest,omitempty"`
	IndIEDest  int        `json:"indIEDest"`
	IE         string     `json:"IE,omitempty"`
	ISUF       string     `json:"ISUF,omitempty"`
	IM         string     `json:"IM,omitempty"`
	Email      string     `json:"email,omitempty"`
}

// MarshalJSON flattens Dest's EmitenteId alongside its own fields.
func (d Dest) MarshalJSON() ([]byte, error) {
	type alias Dest
	return mergeJSON(alias(d), d.Id.asMap())
}
