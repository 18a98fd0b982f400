// Package job decodes the broker's inbound JSON descriptor, grounded
// on original_source/src/rabbitmq/common.rs's delivery payload and
// spec §4.7/§6: {"company_id", "org_id", "file"}.
package job

import (
	"encoding/json"

	"github.com/biel-despair/fiscal-doc-worker/errors"
)

// Descriptor is the inbound broker message: which object to fetch and
// which tenant/org it routes to.
type Descriptor struct {
	CompanyID int64  `json:"company_id"`
	OrgID     int64  `json:"org_id"`
	File      string `json:"file"`
}

// Decode parses a delivery body into a Descriptor. Any JSON error is
// reported as ErrDescriptorDecode, which the worker treats as a
// reject-without-requeue.
func Decode(body []byte) (Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(body, &d); err != nil {
		return Descriptor{}, errors.NewDescriptorDecodeError(err)
	}
	return d, nil
}
