package document

// ICMSTot is the invoice-wide ICMS, product, and freight aggregate.
type ICMSTot struct {
	VBC            Decimal  `json:"vBC"`
	VICMS          Decimal  `json:"vICMS"`
	VICMSDeson     Decimal  `json:"vICMSDeson"`
	VFCPUFDest     *Decimal `json:"vFCPUFDest,omitempty"`
	VICMSUFDest    *Decimal `json:"vICMSUFDest,omitempty"`
	VICMSUFRemet   *Decimal `json:"vICMSUFRemet,omitempty"`
	VFCP           Decimal  `json:"vFCP"`
	VBCST          Decimal  `json:"vBCST"`
	VST            Decimal  `json:"vST"`
	VFCPST         Decimal  `json:"vFCPST"`
	VFCPSTRet      Decimal  `json:"vFCPSTRet"`
	QBCMono        *Decimal `json:"qBCMono,omitempty"`
	VICMSMono      *Decimal `json:"vICMSMono,omitempty"`
	QBCMonoReten   *Decimal `json:"qBCMonoReten,omitempty"`
	VICMSMonoReten *Decimal `json:"vICMSMonoReten,omitempty"`
	QBCMonoRet     *Decimal `json:"qBCMonoRet,omitempty"`
	VICMSMonoRet   *Decimal `json:"vICMSMonoRet,omitempty"`
	VProd          Decimal  `json:"vProd"`
	VFrete         Decimal  `json:"vFrete"`
	VSeg           Decimal  `json:"vSeg"`
	VDesc          Decimal  `json:"vDesc"`
	VII            Decimal  `json:"vII"`
	VIPI           Decimal  `json:"vIPI"`
	VIPIDevol      Decimal  `json:"vIPIDevol"`
	VPIS           Decimal  `json:"vPIS"`
	VCOFINS        Decimal  `json:"vCOFINS"`
	VOutro         Decimal  `json:"vOutro"`
	VNF            Decimal  `json:"vNF"`
	VTotTrib       *Decimal `json:"vTotTrib,omitempty"`
}

// ISSQNTot is the services-tax aggregate.
type ISSQNTot struct {
	VServ       *Decimal `json:"vServ,omitempty"`
	VBC         *Decimal `json:"vBC,omitempty"`
	VISS        *Decimal `json:"vISS,omitempty"`
	VPIS        *Decimal `json:"vPIS,omitempty"`
	VCOFINS     *Decimal `json:"vCOFINS,omitempty"`
	DCompet     string   `json:"dCompet"`
	VDeducao    *Decimal `json:"vDeducao,omitempty"`
	VOutro      *Decimal `json:"vOutro,omitempty"`
	VDescIncond *Decimal `json:"vDescIncond,omitempty"`
	VDescCond   *Decimal `json:"vDescCond,omitempty"`
	VISSRet     *Decimal `json:"vISSRet,omitempty"`
	CRegTrib    string   `json:"cRegTrib,omitempty"`
}

// RetTrib is the federal-withholding aggregate.
type RetTrib struct {
	VRetPIS    *Decimal `json:"vRetPIS,omitempty"`
	VRetCOFINS *Decimal `json:"vRetCOFINS,omitempty"`
	VRetCSLL   *Decimal `json:"vRetCSLL,omitempty"`
	VBCIRRF    *Decimal `json:"vBCIRRF,omitempty"`
	VIRRF      *Decimal `json:"vIRRF,omitempty"`
	VBCRetPrev *Decimal `json:"vBCRetPrev,omitempty"`
	VRetPrev   *Decimal `json:"vRetPrev,omitempty"`
}

// ISTot is the selective-tax aggregate.
type ISTot struct {
	VIS     Decimal  `json:"vIS"`
	VISBCIS *Decimal `json:"vISBCIS,omitempty"`
}

// GIBSTot and GCBSTot mirror the item-level credit-presumption shape
// at the total level, adding a financing-specific credit figure that
// only appears in the aggregate.
type GIBSTot struct {
	VIBSUF              Decimal    `json:"vIBSUF"`
	VIBSMun             Decimal    `json:"vIBSMun"`
	VIBS                Decimal    `json:"vIBS"`
	GIBSCredPres        *TCredPres `json:"gIBSCredPres,omitempty"`
	GIBSCredPresFinanc  *TCredPres `json:"gIBSCredPresFinanc,omitempty"`
}

type GCBSTot struct {
	VCBS                Decimal    `json:"vCBS"`
	GCBSCredPres        *TCredPres `json:"gCBSCredPres,omitempty"`
	GCBSCredPresFinanc  *TCredPres `json:"gCBSCredPresFinanc,omitempty"`
}

// IBSCBSTot is the invoice-wide IBS/CBS reform aggregate.
type IBSCBSTot struct {
	VBCIBSCBS Decimal     `json:"vBCIBSCBS"`
	GIBS      GIBSTot     `json:"gIBS"`
	GCBS      GCBSTot     `json:"gCBS"`
	GMono     *TMonofasia `json:"gMono,omitempty"`
}

// Total is the invoice's totals block.
type Total struct {
	ICMSTot   ICMSTot    `json:"ICMSTot"`
	ISSQNTot  *ISSQNTot  `json:"ISSQNtot,omitempty"`
	RetTrib   *RetTrib   `json:"retTrib,omitempty"`
	ISTot     *ISTot     `json:"ISTot,omitempty"`
	IBSCBSTot *IBSCBSTot `json:"IBSCBSTot,omitempty"`
}
