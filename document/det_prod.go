package document

// DIAdicao is one addition line within an import declaration.
type DIAdicao struct {
	NAdicao     int      `json:"nAdicao"`
	NSeqAdic    int      `json:"nSeqAdic"`
	CFabricante string   `json:"cFabricante"`
	VDescDI     *Decimal `json:"vDescDI,omitempty"`
	NDraw       string   `json:"nDraw,omitempty"`
}

// DI is an import declaration attached to a product.
type DI struct {
	NDI          string     `json:"nDI"`
	DDI          string     `json:"dDI"`
	XLocDesemb   string     `json:"xLocDesemb"`
	UFDesemb     string     `json:"UFDesemb"`
	DDesemb      string     `json:"dDesemb"`
	TpViaTransp  string     `json:"tpViaTransp"`
	VAFRMM       *Decimal   `json:"vAFRMM,omitempty"`
	TpIntermedio string     `json:"tpIntermedio"`
	CNPJ         string     `json:"CNPJ,omitempty"`
	UFTerceiro   string     `json:"UFTerceiro,omitempty"`
	CExportador  string     `json:"cExportador"`
	Adi          []DIAdicao `json:"adi"`
}

// ExportInd is the export-registration sub-group of DetExport.
type ExportInd struct {
	NRE     string  `json:"nRE"`
	ChNFe   string  `json:"chNFe"`
	QExport Decimal `json:"qExport"`
}

// DetExport is an export-detail line attached to a product.
type DetExport struct {
	NDraw     string     `json:"nDraw,omitempty"`
	ExportInd *ExportInd `json:"exportInd,omitempty"`
}

// GCred is a presumed-credit group attached to a product.
type GCred struct {
	CCredPresumido string   `json:"cCredPresumido,omitempty"`
	PCredPresumido *Decimal `json:"pCredPresumido,omitempty"`
	VCredPresumido *Decimal `json:"vCredPresumido,omitempty"`
}

// TVeiculo describes a new vehicle being sold (veicProd).
type TVeiculo struct {
	TpOp        string   `json:"tpOp"`
	Chassi      string   `json:"chassi"`
	CCor        string   `json:"cCor"`
	XCor        string   `json:"xCor"`
	Pot         string   `json:"pot,omitempty"`
	Cilin       string   `json:"cilin,omitempty"`
	PesoL       string   `json:"pesoL,omitempty"`
	PesoB       string   `json:"pesoB,omitempty"`
	NSerie      string   `json:"nSerie,omitempty"`
	TpComb      string   `json:"tpComb,omitempty"`
	NMotor      string   `json:"nMotor,omitempty"`
	CMT         string   `json:"CMT,omitempty"`
	Dist        string   `json:"dist,omitempty"`
	AnoMod      string   `json:"anoMod"`
	AnoFab      string   `json:"anoFab"`
	TpPint      string   `json:"tpPint,omitempty"`
	TpVeic      string   `json:"tpVeic,omitempty"`
	EspVeic     string   `json:"especVeic,omitempty"`
	VIN         string   `json:"VIN,omitempty"`
	CondVeic    string   `json:"condVeic,omitempty"`
	CMod        string   `json:"cMod"`
	CCorDENATRAN string  `json:"cCorDENATRAN,omitempty"`
	Lota        string   `json:"lota,omitempty"`
	TpRest      string   `json:"tpRest,omitempty"`
}

// Medicamento is one medicine line (med), repeatable on the product.
type Medicamento struct {
	CProdANVISA     string   `json:"cProdANVISA"`
	XMotivoIsencao  string   `json:"xMotivoIsencao,omitempty"`
	VPMC            Decimal  `json:"vPMC"`
}

// Arma is one firearm line (arma), repeatable on the product.
type Arma struct {
	TpArma string `json:"tpArma"`
	NSerie string `json:"nSerie"`
	NCano  string `json:"nCano"`
	Descr  string `json:"descr"`
}

// CIDE is the fuels CIDE contribution sub-group.
type CIDE struct {
	QBCProd   Decimal `json:"qBCProd"`
	VAliqProd Decimal `json:"vAliqProd"`
	VCIDE     Decimal `json:"vCIDE"`
}

// Encerrante is the fuel-pump meter reading sub-group.
type Encerrante struct {
	NBico   string  `json:"nBico,omitempty"`
	NBomba  string  `json:"nBomba,omitempty"`
	NTanque string  `json:"nTanque"`
	QTemp   Decimal `json:"qTemp"`
}

// Comb is the fuels product sub-group.
type Comb struct {
	CProdANP   string      `json:"cProdANP"`
	DescANP    string      `json:"descANP"`
	PGLP       *Decimal    `json:"pGLP,omitempty"`
	PGNn       *Decimal    `json:"pGNn,omitempty"`
	PGNi       *Decimal    `json:"pGNi,omitempty"`
	VPart      *Decimal    `json:"vPart,omitempty"`
	CODIF      string      `json:"CODIF,omitempty"`
	QTemp      *Decimal    `json:"qTemp,omitempty"`
	UFCons     string      `json:"UFCons"`
	CIDE       *CIDE       `json:"CIDE,omitempty"`
	Encerrante *Encerrante `json:"encerrante,omitempty"`
	PBio       *Decimal    `json:"pBio,omitempty"`
}

// InfProdNFF carries the fiscal-coupon cross-reference fields.
type InfProdNFF struct {
	CProdFisco string `json:"cProdFisco"`
	COperNFF   string `json:"cOperNFF"`
}

// InfProdEmb describes the product's shipping package.
type InfProdEmb struct {
	XEmb   string  `json:"xEmb"`
	QVolEmb Decimal `json:"qVolEmb"`
	UEmb   string  `json:"uEmb"`
}

// Prod is the product/service line of an item. Its specifics union
// (vehicle / medicines / firearms / fuel / RECOPI code) is realized
// structurally: VeicProd and Comb and NRECOPI are mutually exclusive
// single-shot fields, while Med and Arma accumulate as repeatable
// lists, matching how the decoder folds repeated signal children.
type Prod struct {
	CProd            string       `json:"cProd"`
	CEAN             string       `json:"cEAN,omitempty"`
	XProd            string       `json:"xProd"`
	NCM              string       `json:"NCM"`
	NVE              []string     `json:"NVE,omitempty"`
	CEST             string       `json:"CEST,omitempty"`
	IndEscala        string       `json:"indEscala,omitempty"`
	CNPJFab          string       `json:"CNPJFab,omitempty"`
	CBenef           string       `json:"cBenef,omitempty"`
	EXTIPI           string       `json:"EXTIPI,omitempty"`
	CFOP             string       `json:"CFOP"`
	UCom             string       `json:"uCom"`
	QCom             Decimal      `json:"qCom"`
	VUnCom           Decimal      `json:"vUnCom"`
	VProd            Decimal      `json:"vProd"`
	CEANTrib         string       `json:"cEANTrib,omitempty"`
	UTrib            string       `json:"uTrib"`
	QTrib            Decimal      `json:"qTrib"`
	VUnTrib          Decimal      `json:"vUnTrib"`
	VFrete           *Decimal     `json:"vFrete,omitempty"`
	VSeg             *Decimal     `json:"vSeg,omitempty"`
	VDesc            *Decimal     `json:"vDesc,omitempty"`
	VOutro           *Decimal     `json:"vOutro,omitempty"`
	IndTot           bool         `json:"indTot"`
	IndBemMovelUsado *bool        `json:"indBemMovelUsado,omitempty"`
	DI               []DI         `json:"DI,omitempty"`
	DetExport        []DetExport  `json:"detExport,omitempty"`
	GCred            []GCred      `json:"gCred,omitempty"`
	VeicProd         *TVeiculo    `json:"veicProd,omitempty"`
	Med              []Medicamento `json:"med,omitempty"`
	Arma             []Arma       `json:"arma,omitempty"`
	Comb             *Comb        `json:"comb,omitempty"`
	NRECOPI          string       `json:"nRECOPI,omitempty"`
	InfProdNFF       *InfProdNFF  `json:"infProdNFF,omitempty"`
	InfProdEmb       *InfProdEmb  `json:"infProdEmb,omitempty"`
}

// Det is one invoice item (<det>).
type Det struct {
	NItem       int           `json:"nItem"`
	Prod        Prod          `json:"prod"`
	Imposto     Imposto       `json:"imposto"`
	ImpostoDevol *ImpostoDevol `json:"impostoDevol,omitempty"`
	InfAdProd   string        `json:"infAdProd,omitempty"`
	VItem       *Decimal      `json:"vItem,omitempty"`
}
