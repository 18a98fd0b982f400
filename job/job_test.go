package job

import (
	"testing"

	"github.com/biel-despair/fiscal-doc-worker/errors"
)

func TestDecode(t *testing.T) {
	body := []byte(`{"company_id": 7, "org_id": 9, "file": "invoices/2026/01/doc1.xml"}`)

	d, err := Decode(body)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.CompanyID != 7 {
		t.Errorf("CompanyID = %d, want 7", d.CompanyID)
	}
	if d.OrgID != 9 {
		t.Errorf("OrgID = %d, want 9", d.OrgID)
	}
	if d.File != "invoices/2026/01/doc1.xml" {
		t.Errorf("File = %q, want invoices/2026/01/doc1.xml", d.File)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	if err == nil {
		t.Fatal("Decode() error = nil, want ErrDescriptorDecode")
	}
	nfe, ok := err.(*errors.NFError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.NFError", err)
	}
	if nfe.Type != errors.ErrDescriptorDecode {
		t.Errorf("error Type = %v, want ErrDescriptorDecode", nfe.Type)
	}
}
