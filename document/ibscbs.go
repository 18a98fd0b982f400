package document

// GDif is the deferral sub-group shared by IBS-UF, IBS-municipal, and
// CBS schedules.
type GDif struct {
	PDif *Decimal `json:"pDif,omitempty"`
	VDif *Decimal `json:"vDif,omitempty"`
}

// GDevTrib is the returned-tax sub-group shared by the same schedules.
type GDevTrib struct {
	VDevTrib Decimal `json:"vDevTrib"`
}

// GRed is the reduced-rate sub-group shared by the same schedules.
type GRed struct {
	PRedAliq  *Decimal `json:"pRedAliq,omitempty"`
	PAliqEfet *Decimal `json:"pAliqEfet,omitempty"`
}

// GIBSUF is the state-level IBS share.
type GIBSUF struct {
	PIBSUF   Decimal   `json:"pIBSUF"`
	GDif     *GDif     `json:"gDif,omitempty"`
	GDevTrib *GDevTrib `json:"gDevTrib,omitempty"`
	GRed     *GRed     `json:"gRed,omitempty"`
	VIBSUF   Decimal   `json:"vIBSUF"`
}

// GIBSMun is the municipal-level IBS share.
type GIBSMun struct {
	PIBSMun  Decimal   `json:"pIBSMun"`
	GDif     *GDif     `json:"gDif,omitempty"`
	GDevTrib *GDevTrib `json:"gDevTrib,omitempty"`
	GRed     *GRed     `json:"gRed,omitempty"`
	VIBSMun  Decimal   `json:"vIBSMun"`
}

// GCBS is the federal CBS share.
type GCBS struct {
	PCBS     Decimal   `json:"pCBS"`
	GDif     *GDif     `json:"gDif,omitempty"`
	GDevTrib *GDevTrib `json:"gDevTrib,omitempty"`
	GRed     *GRed     `json:"gRed,omitempty"`
	VCBS     Decimal   `json:"vCBS"`
}

// TCredPres is the presumed-credit sub-group attached to the IBS and
// CBS schedules. Its valor is a choice between vCredPres and
// vCredPresCondSus, realized the same field-presence way as the
// PIS/COFINS rate-vs-quantity choice.
type TCredPres struct {
	CCredPres        string   `json:"cCredPres"`
	PCredPres        Decimal  `json:"pCredPres"`
	VCredPres        *Decimal `json:"vCredPres,omitempty"`
	VCredPresCondSus *Decimal `json:"vCredPresCondSus,omitempty"`
}

// TTribRegular carries the regular-regime comparison figures used
// during the IBS/CBS transition period.
type TTribRegular struct {
	CSTReg            string  `json:"CSTReg"`
	CClassTribReg     string  `json:"cClassTribReg"`
	PAliqEfetRegIBSUF Decimal `json:"pAliqEfetRegIBSUF"`
	VTribRegIBSUF     Decimal `json:"vTribRegIBSUF"`
	PAliqEfetRegIBSMun Decimal `json:"pAliqEfetRegIBSMun"`
	VTribRegIBSMun    Decimal `json:"vTribRegIBSMun"`
	PAliqEfetRegCBS   Decimal `json:"pAliqEfetRegCBS"`
	VTribRegCBS       Decimal `json:"vTribRegCBS"`
}

// TTribCompraGov carries the government-procurement comparison figures.
type TTribCompraGov struct {
	PAliqIBSUF  Decimal `json:"pAliqIBSUF"`
	VTribIBSUF  Decimal `json:"vTribIBSUF"`
	PAliqIBSMun Decimal `json:"pAliqIBSMun"`
	VTribIBSMun Decimal `json:"vTribIBSMun"`
	PAliqCBS    Decimal `json:"pAliqCBS"`
	VTribCBS    Decimal `json:"vTribCBS"`
}

// TCIBS is the item-level IBS/CBS reform tax schedule.
type TCIBS struct {
	VBC            Decimal         `json:"vBC"`
	GIBSUF         GIBSUF          `json:"gIBSUF"`
	GIBSMun        GIBSMun         `json:"gIBSMun"`
	VIBS           Decimal         `json:"vIBS"`
	GCBS           GCBS            `json:"gCBS"`
	GTribRegular   *TTribRegular   `json:"gTribRegular,omitempty"`
	GIBSCredPres   *TCredPres      `json:"gIBSCredPres,omitempty"`
	GCBSCredPres   *TCredPres      `json:"gCBSCredPres,omitempty"`
	GTribCompraGov *TTribCompraGov `json:"gTribCompraGov,omitempty"`
}

// GMonoPadrao, GMonoReten, GMonoRet and GMonoDif are the four mutually
// independent sub-groups of the fuels monophase schedule; any subset
// may appear together on the same item, so they are modeled as
// optional siblings rather than a single choice.
type GMonoPadrao struct {
	QBCMono   Decimal `json:"qBCMono"`
	AdRemIBS  Decimal `json:"adRemIBS"`
	VIBSMono  Decimal `json:"vIBSMono"`
	AdRemCBS  Decimal `json:"adRemCBS"`
	VCBSMono  Decimal `json:"vCBSMono"`
}

type GMonoReten struct {
	QBCMonoReten  Decimal `json:"qBCMonoReten"`
	AdRemIBSReten Decimal `json:"adRemIBSReten"`
	VIBSMonoReten Decimal `json:"vIBSMonoReten"`
	AdRemCBSReten Decimal `json:"adRemCBSReten"`
	VCBSMonoReten Decimal `json:"vCBSMonoReten"`
}

type GMonoRet struct {
	QBCMonoRet  Decimal `json:"qBCMonoRet"`
	AdRemIBSRet Decimal `json:"adRemIBSRet"`
	VIBSMonoRet Decimal `json:"vIBSMonoRet"`
	AdRemCBSRet Decimal `json:"adRemCBSRet"`
	VCBSMonoRet Decimal `json:"vCBSMonoRet"`
}

type GMonoDif struct {
	PDifIBS      *Decimal `json:"pDifIBS,omitempty"`
	VIBSMonoDif  Decimal  `json:"vIBSMonoDif"`
	PDifCBS      *Decimal `json:"pDifCBS,omitempty"`
	VCBSMonoDif  Decimal  `json:"vCBSMonoDif"`
}

// TMonofasia is the fuels monophase schedule, attached at Total level
// rather than to the item's TCIBS.
type TMonofasia struct {
	GMonoPadrao    *GMonoPadrao `json:"gMonoPadrao,omitempty"`
	GMonoReten     *GMonoReten  `json:"gMonoReten,omitempty"`
	GMonoRet       *GMonoRet    `json:"gMonoRet,omitempty"`
	GMonoDif       *GMonoDif    `json:"gMonoDif,omitempty"`
	VTotIBSMonoItem Decimal     `json:"vTotIBSMonoItem"`
	VTotCBSMonoItem Decimal     `json:"vTotCBSMonoItem"`
}
