package document

// Transporta identifies the carrier.
type Transporta struct {
	Id     EmitenteId `json:"-"`
	XNome  string     `json:"xNome,omitempty"`
	IE     string     `json:"IE,omitempty"`
	XEnder string     `json:"xEnder,omitempty"`
	XMun   string     `json:"xMun,omitempty"`
	UF     string     `json:"UF,omitempty"`
}

// MarshalJSON flattens Transporta's EmitenteId alongside its own fields.
func (t Transporta) MarshalJSON() ([]byte, error) {
	type alias Transporta
	return mergeJSON(alias(t), t.Id.asMap())
}

// RetTransp is the freight-withholding sub-group.
type RetTransp struct {
	VServ   Decimal `json:"vServ"`
	VBCRet  Decimal `json:"vBCRet"`
	PICMSRet Decimal `json:"pICMSRet"`
	VICMSRet Decimal `json:"vICMSRet"`
	CFOP    string  `json:"CFOP"`
	CMunFG  int     `json:"cMunFG"`
}

// TransportVeiculo is the shared placa/UF/RNTC shape used by the
// transport vehicle, trailer, wagon, and barge sub-groups.
type TransportVeiculo struct {
	Placa string `json:"placa"`
	UF    string `json:"UF,omitempty"`
	RNTC  string `json:"RNTC,omitempty"`
}

// Lacre is a seal attached to a transport volume.
type Lacre struct {
	NLacre string `json:"nLacre"`
}

// Vol is one transport volume.
type Vol struct {
	QVol   *int    `json:"qVol,omitempty"`
	Esp    string  `json:"esp,omitempty"`
	Marca  string  `json:"marca,omitempty"`
	NVol   string  `json:"nVol,omitempty"`
	PesoL  *Decimal `json:"pesoL,omitempty"`
	PesoB  *Decimal `json:"pesoB,omitempty"`
	Lacres []Lacre `json:"lacres,omitempty"`
}

// Veiculo is the road/wagon/barge transport-mode choice. Road is
// selected when either VeicTransp or Reboque signals it; only one of
// the three modes is ever populated on a given Transp.
type Veiculo struct {
	VeicTransp *TransportVeiculo  `json:"veicTransp,omitempty"`
	Reboque    []TransportVeiculo `json:"reboque,omitempty"`
	Vagao      string             `json:"vagao,omitempty"`
	Balsa      string             `json:"balsa,omitempty"`
}

// Transp is the invoice's transport block.
type Transp struct {
	ModFrete   Decimal     `json:"modFrete"`
	Transporta *Transporta `json:"transporta,omitempty"`
	RetTransp  *RetTransp  `json:"retTransp,omitempty"`
	Veiculo    *Veiculo    `json:"veiculo,omitempty"`
	Vol        []Vol       `json:"vol,omitempty"`
}
