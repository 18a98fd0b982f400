package document

// EventInfo is an event's <infEvento> subtree, flattened per
// original_source/src/nfe/eventos/evento.rs's InfEvento: emitter-id
// sum, organ, environment, key, timestamps, type, sequence, schema
// version, description, protocol, and justification all live as
// sibling fields on one object.
type EventInfo struct {
	Id        EmitenteId `json:"-"`
	COrgao    int        `json:"cOrgao"`
	TpAmb     int        `json:"tpAmb"`
	ChNFe     string     `json:"chNFe"`
	DhEvento  string     `json:"dhEvento"`
	TpEvento  string     `json:"tpEvento"`
	NSeqEvento int       `json:"nSeqEvento"`
	VerEvento string     `json:"verEvento"`
	DescEvento string    `json:"descEvento,omitempty"`
	NProt     string     `json:"nProt,omitempty"`
	XJust     string     `json:"xJust,omitempty"`
}

// MarshalJSON flattens EventInfo's EmitenteId alongside its own fields.
func (e EventInfo) MarshalJSON() ([]byte, error) {
	type alias EventInfo
	return mergeJSON(alias(e), e.Id.asMap())
}

// Event is a single <evento> document: its own envelope Id attribute
// plus the infEvento subtree. The Signature and detEvento child
// elements present in the source are recognized-and-skipped by the
// decoder, not modeled here.
type Event struct {
	Id        string    `json:"id"`
	InfEvento EventInfo `json:"infEvento"`
}

// EventReturn mirrors TRetEvento: the acknowledgement a SEFAZ
// authority returns for a submitted event. Only the core status
// fields are required; the rest match an optional ack.
type EventReturn struct {
	Id          string `json:"id,omitempty"`
	TpAmb       int    `json:"tpAmb"`
	VerAplic    string `json:"verAplic"`
	COrgao      int    `json:"cOrgao"`
	CStat       int    `json:"cStat"`
	XMotivo     string `json:"xMotivo"`
	DhRegEvento string `json:"dhRegEvento"`
	ChNFe       string `json:"chNFe,omitempty"`
	TpEvento    string `json:"tpEvento,omitempty"`
	NSeqEvento  *int   `json:"nSeqEvento,omitempty"`
	COrgaoAutor *int   `json:"cOrgaoAutor,omitempty"`
	NProt       string `json:"nProt,omitempty"`
}

// ProcEvent pairs a submitted Event with its EventReturn, matching
// TProcEvento: a single-event document plus its authority ack.
type ProcEvent struct {
	Event Event       `json:"evento"`
	Ret   EventReturn `json:"retEvento"`
}

// EventBatch is the decoded-document envelope for event inputs. Each
// element is either a bare Event or a ProcEvent, matching whichever
// root the decoder observed for that entry. Its JSON shape matches
// the outbound publish message exactly: {"company_id", "org_id",
// "eventos": [...]}.
type EventBatch struct {
	CompanyID int64         `json:"company_id"`
	OrgID     int64         `json:"org_id"`
	Events    []interface{} `json:"eventos"`
}
