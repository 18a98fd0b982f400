package document

import "encoding/json"

// NFRefKind discriminates the six reference shapes an <NFref>
// element may take.
type NFRefKind int

const (
	NFRefKeyNFe NFRefKind = iota
	NFRefKeyNFeSig
	NFRefNF
	NFRefNFP
	NFRefCTe
	NFRefECF
)

// RefNF is the data carried by a <refNF> reference to a model-1/1A
// paper invoice.
type RefNF struct {
	CUF   int    `json:"cUF"`
	AAMM  string `json:"AAMM"`
	CNPJ  string `json:"CNPJ"`
	Mod   int    `json:"mod"`
	Serie int    `json:"serie"`
	NNF   int    `json:"nNF"`
}

// RefNFP is the data carried by a <refNFP> reference to a rural
// producer's invoice.
type RefNFP struct {
	CUF   int        `json:"cUF"`
	AAMM  string      `json:"AAMM"`
	Id    EmitenteId  `json:"-"`
	IE    string      `json:"IE"`
	Mod   int         `json:"mod"`
	Serie int         `json:"serie"`
	NNF   int         `json:"nNF"`
}

// MarshalJSON flattens RefNFP's EmitenteId into the object alongside
// its own fields.
func (r RefNFP) MarshalJSON() ([]byte, error) {
	type alias RefNFP
	return mergeJSON(alias(r), r.Id.asMap())
}

// RefECF is the data carried by a <refECF> reference to a fiscal
// receipt (cupom fiscal).
type RefECF struct {
	Mod  string `json:"mod"`
	NECF string `json:"nECF"`
	NCOO string `json:"nCOO"`
}

// NFRef is the tagged union of the six reference shapes a prior
// document may be cited with. Exactly one of the *payload fields is
// populated, selected by Kind. Serialization wraps the populated
// variant under its original XSD element name, e.g.
// {"refNF": {...}} or {"refNFe": "NFe350..."}.
type NFRef struct {
	Kind NFRefKind

	KeyNFe    string
	KeyNFeSig string
	NF        RefNF
	NFP       RefNFP
	CTeKey    string
	ECF       RefECF
}

// MarshalJSON wraps the active variant under its element-name key.
func (r NFRef) MarshalJSON() ([]byte, error) {
	var key string
	var value interface{}
	switch r.Kind {
	case NFRefKeyNFe:
		key, value = "refNFe", r.KeyNFe
	case NFRefKeyNFeSig:
		key, value = "refNFeSig", r.KeyNFeSig
	case NFRefNF:
		key, value = "refNF", r.NF
	case NFRefNFP:
		key, value = "refNFP", r.NFP
	case NFRefCTe:
		key, value = "refCTe", r.CTeKey
	case NFRefECF:
		key, value = "refECF", r.ECF
	}
	return json.Marshal(map[string]interface{}{key: value})
}

// CompraGov describes a government procurement modifier on the
// invoice's identification block.
type CompraGov struct {
	TpEnteGov string  `json:"tpEnteGov"`
	PRedutor  Decimal `json:"pRedutor"`
	TpOperGov string  `json:"tpOperGov"`
}
