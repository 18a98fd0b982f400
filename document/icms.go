package document

// ICMS is the wide ICMS record: one struct for every CST/CSOSN
// variant, discriminated by Kind (the XML element name that selected
// it, e.g. "ICMS00", "ICMSSN102", "ICMSPart", "ICMSST"). Only the
// fields the decoder actually observed as child elements are
// populated; every optional field is nil unless its element was
// present in the source document, so Kind does not need to drive
// serialization directly — the per-CST field subset falls out of
// which elements that CST's schema actually carries.
type ICMS struct {
	Kind string `json:"-"`

	// Identification.
	Orig   string `json:"orig"`
	CST    string `json:"CST,omitempty"`
	CSOSN  string `json:"CSOSN,omitempty"`

	// Normal calculation.
	ModBC    *string  `json:"modBC,omitempty"`
	VBC      *Decimal `json:"vBC,omitempty"`
	PRedBC   *Decimal `json:"pRedBC,omitempty"`
	PICMS    *Decimal `json:"pICMS,omitempty"`
	VICMS    *Decimal `json:"vICMS,omitempty"`
	VICMSOp  *Decimal `json:"vICMSOp,omitempty"`

	// FCP (fundo de combate à pobreza).
	VBCFCP *Decimal `json:"vBCFCP,omitempty"`
	PFCP   *Decimal `json:"pFCP,omitempty"`
	VFCP   *Decimal `json:"vFCP,omitempty"`

	// Substituição tributária (ST).
	ModBCST  *string  `json:"modBCST,omitempty"`
	PMVAST   *Decimal `json:"pMVAST,omitempty"`
	PRedBCST *Decimal `json:"pRedBCST,omitempty"`
	VBCST    *Decimal `json:"vBCST,omitempty"`
	PICMSST  *Decimal `json:"pICMSST,omitempty"`
	VICMSST  *Decimal `json:"vICMSST,omitempty"`

	// FCP-ST.
	VBCFCPST *Decimal `json:"vBCFCPST,omitempty"`
	PFCPST   *Decimal `json:"pFCPST,omitempty"`
	VFCPST   *Decimal `json:"vFCPST,omitempty"`

	// ST retido por substituição anterior.
	VBCSTRet         *Decimal `json:"vBCSTRet,omitempty"`
	PST              *Decimal `json:"pST,omitempty"`
	VICMSSubstituto  *Decimal `json:"vICMSSubstituto,omitempty"`
	VICMSSTRet       *Decimal `json:"vICMSSTRet,omitempty"`

	// FCP-ST retido.
	VBCFCPSTRet *Decimal `json:"vBCFCPSTRet,omitempty"`
	PFCPSTRet   *Decimal `json:"pFCPSTRet,omitempty"`
	VFCPSTRet   *Decimal `json:"vFCPSTRet,omitempty"`

	// Desoneração.
	VICMSDeson   *Decimal `json:"vICMSDeson,omitempty"`
	MotDesICMS   *string  `json:"motDesICMS,omitempty"`
	IndDeduzDeson *bool   `json:"indDeduzDeson,omitempty"`

	// ST desonerada.
	VICMSSTDeson *Decimal `json:"vICMSSTDeson,omitempty"`
	MotDesICMSST *string  `json:"motDesICMSST,omitempty"`

	// Tributação efetiva.
	PRedBCEfet *Decimal `json:"pRedBCEfet,omitempty"`
	VBCEfet    *Decimal `json:"vBCEfet,omitempty"`
	PICMSEfet  *Decimal `json:"pICMSEfet,omitempty"`
	VICMSEfet  *Decimal `json:"vICMSEfet,omitempty"`

	// Diferimento (CST 51).
	PDif      *Decimal `json:"pDif,omitempty"`
	VICMSDif  *Decimal `json:"vICMSDif,omitempty"`
	CBenefRBC *string  `json:"cBenefRBC,omitempty"`
	PFCPDif   *Decimal `json:"pFCPDif,omitempty"`
	VFCPDif   *Decimal `json:"vFCPDif,omitempty"`
	VFCPEfet  *Decimal `json:"vFCPEfet,omitempty"`

	// Monofásico (combustíveis).
	QBCMono        *Decimal `json:"qBCMono,omitempty"`
	AdRemICMS      *Decimal `json:"adRemICMS,omitempty"`
	VICMSMono      *Decimal `json:"vICMSMono,omitempty"`
	QBCMonoReten   *Decimal `json:"qBCMonoReten,omitempty"`
	AdRemICMSReten *Decimal `json:"adRemICMSReten,omitempty"`
	VICMSMonoReten *Decimal `json:"vICMSMonoReten,omitempty"`
	PRedAdRem      *Decimal `json:"pRedAdRem,omitempty"`
	MotRedAdRem    *string  `json:"motRedAdRem,omitempty"`
	QBCMonoRet     *Decimal `json:"qBCMonoRet,omitempty"`
	AdRemICMSRet   *Decimal `json:"adRemICMSRet,omitempty"`
	VICMSMonoRet   *Decimal `json:"vICMSMonoRet,omitempty"`
	VICMSMonoOp    *Decimal `json:"vICMSMonoOp,omitempty"`
	VICMSMonoDif   *Decimal `json:"vICMSMonoDif,omitempty"`
	QBCMonoDif     *Decimal `json:"qBCMonoDif,omitempty"`
	AdRemICMSDif   *Decimal `json:"adRemICMSDif,omitempty"`

	// Partilha interestadual (ICMSPart).
	PBCOp *Decimal `json:"pBCOp,omitempty"`
	UFST  *string  `json:"UFST,omitempty"`

	// Repasse de ST (ST-repasse).
	VBCSTDest   *Decimal `json:"vBCSTDest,omitempty"`
	VICMSSTDest *Decimal `json:"vICMSSTDest,omitempty"`

	// Crédito do Simples Nacional.
	PCredSN      *Decimal `json:"pCredSN,omitempty"`
	VCredICMSSN  *Decimal `json:"vCredICMSSN,omitempty"`
}
