package document

// ObsCont is a taxpayer-defined observation field.
type ObsCont struct {
	XCampo string `json:"xCampo"`
	XTexto string `json:"xTexto"`
}

// ObsFisco is a tax-authority-defined observation field.
type ObsFisco struct {
	XCampo string `json:"xCampo"`
	XTexto string `json:"xTexto"`
}

// ProcRef references the administrative or judicial process that
// justifies a tax benefit applied on the invoice.
type ProcRef struct {
	NProc   string `json:"nProc"`
	IndProc string `json:"indProc"`
	TpAto   string `json:"tpAto,omitempty"`
}

// InfAdic is the invoice's additional-information block.
type InfAdic struct {
	InfAdFisco string     `json:"infAdFisco,omitempty"`
	InfCpl     string     `json:"infCpl,omitempty"`
	ObsCont    []ObsCont  `json:"obsCont,omitempty"`
	ObsFisco   []ObsFisco `json:"obsFisco,omitempty"`
	ProcRef    []ProcRef  `json:"procRef,omitempty"`
}

// InfIntermed identifies the marketplace intermediary in a sale.
type InfIntermed struct {
	CNPJ         string `json:"CNPJ"`
	IdCadIntTran string `json:"idCadIntTran"`
}

// InfRespTec identifies the software house responsible for the
// issuing system.
type InfRespTec struct {
	CNPJ     string `json:"CNPJ"`
	XContato string `json:"xContato"`
	Email    string `json:"email"`
	Fone     string `json:"fone"`
	IdCSRT   string `json:"idCSRT,omitempty"`
	HashCSRT string `json:"hashCSRT,omitempty"`
}

// Exporta is the invoice's export block.
type Exporta struct {
	UFSaidaPais  string `json:"UFSaidaPais"`
	XLocExporta  string `json:"xLocExporta"`
	XLocDespacho string `json:"xLocDespacho,omitempty"`
}

// Compra references the purchase order that originated the invoice.
type Compra struct {
	XNEmp string `json:"xNEmp,omitempty"`
	XPed  string `json:"xPed,omitempty"`
	XCont string `json:"xCont,omitempty"`
}

// ForDia is one daily production figure within a sugarcane schedule.
type ForDia struct {
	Dia   int     `json:"dia"`
	Qtde  Decimal `json:"qtde"`
}

// Deduc is one deduction line within a sugarcane schedule.
type Deduc struct {
	XDed string  `json:"xDed"`
	VDed Decimal `json:"vDed"`
}

// Cana is the sugarcane-purchase schedule.
type Cana struct {
	Safra   string   `json:"safra"`
	Ref     string   `json:"ref"`
	ForDia  []ForDia `json:"forDia"`
	QTotMes Decimal  `json:"qTotMes"`
	QTotAnt Decimal  `json:"qTotAnt"`
	QTotGer Decimal  `json:"qTotGer"`
	Deduc   []Deduc  `json:"deduc,omitempty"`
	VFor    Decimal  `json:"vFor"`
	VTotDed Decimal  `json:"vTotDed"`
	VLiqFor Decimal  `json:"vLiqFor"`
}

// Defensivo is one pesticide prescription line, repeatable within
// Agropecuario.
type Defensivo struct {
	NReceituario string `json:"nReceituario"`
	CPFRespTec   string `json:"CPFRespTec"`
}

// GuiaTransito is the single-shot livestock-transit-permit variant of
// Agropecuario.
type GuiaTransito struct {
	TpGuia    string `json:"tpGuia"`
	UFGuia    string `json:"UFGuia"`
	SerieGuia string `json:"serieGuia,omitempty"`
	NGuia     string `json:"nGuia"`
}

// Agropecuario is a union over repeatable pesticide prescriptions and
// a single-shot transit permit; the decoder distinguishes them by
// which signal element it first observes.
type Agropecuario struct {
	Defensivo    []Defensivo   `json:"defensivo,omitempty"`
	GuiaTransito *GuiaTransito `json:"guiaTransito,omitempty"`
}
