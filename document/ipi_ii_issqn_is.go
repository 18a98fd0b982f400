package document

// IPI is the excise-tax schedule. Like PIS/COFINS, its Tributada-vs-
// NaoTributada choice and its Aliquota-vs-Unidade calculation choice
// are both realized by field presence rather than an explicit tag.
type IPI struct {
	CNPJProd string   `json:"CNPJProd,omitempty"`
	CSelo    string   `json:"cSelo,omitempty"`
	QSelo    *int     `json:"qSelo,omitempty"`
	CEnq     string   `json:"cEnq"`
	CST      string   `json:"CST"`
	VBC      *Decimal `json:"vBC,omitempty"`
	PIPI     *Decimal `json:"pIPI,omitempty"`
	QUnid    *Decimal `json:"qUnid,omitempty"`
	VUnid    *Decimal `json:"vUnid,omitempty"`
	VIPI     *Decimal `json:"vIPI,omitempty"`
}

// IpiDevol is the returned-IPI value inside ImpostoDevol.
type IpiDevol struct {
	VIPIDevol Decimal `json:"vIPIDevol"`
}

// ImpostoDevol records IPI returned on a partial cancellation.
type ImpostoDevol struct {
	PDevol Decimal  `json:"pDevol"`
	IPI    IpiDevol `json:"IPI"`
}

// II is the import-tax schedule.
type II struct {
	VBC      Decimal `json:"vBC"`
	VDespAdu Decimal `json:"vDespAdu"`
	VII      Decimal `json:"vII"`
	VIOF     Decimal `json:"vIOF"`
}

// ISSQN is the municipal services tax schedule.
type ISSQN struct {
	VBC           Decimal  `json:"vBC"`
	VAliq         Decimal  `json:"vAliq"`
	VISSQN        Decimal  `json:"vISSQN"`
	CMunFG        int      `json:"cMunFG"`
	CListServ     string   `json:"cListServ"`
	VDeducao      *Decimal `json:"vDeducao,omitempty"`
	VOutro        *Decimal `json:"vOutro,omitempty"`
	VDescIncond   *Decimal `json:"vDescIncond,omitempty"`
	VDescCond     *Decimal `json:"vDescCond,omitempty"`
	VISSRet       *Decimal `json:"vISSRet,omitempty"`
	IndISS        int      `json:"indISS"`
	CServico      string   `json:"cServico,omitempty"`
	CMun          *int     `json:"cMun,omitempty"`
	CPais         string   `json:"cPais,omitempty"`
	NProcesso     string   `json:"nProcesso,omitempty"`
	IndIncentivo  int      `json:"indIncentivo"`
}

// IS is the selective tax (imposto seletivo) schedule. Its
// calculation sub-group is optional and is realized the same
// field-presence way as the other choice schedules.
type IS struct {
	CSTIS        string   `json:"CSTIS"`
	CClassTribIS string   `json:"cClassTribIS"`
	VBCIS        *Decimal `json:"vBCIS,omitempty"`
	PIS          *Decimal `json:"pIS,omitempty"`
	PISEspec     *Decimal `json:"pISEspec,omitempty"`
	UTrib        *string  `json:"uTrib,omitempty"`
	QTrib        *Decimal `json:"qTrib,omitempty"`
	VIS          *Decimal `json:"vIS,omitempty"`
}

// ICMSUFDest splits ICMS owed between the origin and destination
// states on interstate consumer operations (DIFAL).
type ICMSUFDest struct {
	VBCUFDest     Decimal  `json:"vBCUFDest"`
	VBCFCPUFDest  *Decimal `json:"vBCFCPUFDest,omitempty"`
	PFCPUFDest    *Decimal `json:"pFCPUFDest,omitempty"`
	PICMSUFDest   Decimal  `json:"pICMSUFDest"`
	PICMSInter    string   `json:"pICMSInter"`
	PICMSInterPart Decimal `json:"pICMSInterPart"`
	VFCPUFDest    *Decimal `json:"vFCPUFDest,omitempty"`
	VICMSUFDest   Decimal  `json:"vICMSUFDest"`
	VICMSUFRemet  Decimal  `json:"vICMSUFRemet"`
}
