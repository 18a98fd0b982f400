package decoder

import (
	"strings"
	"testing"

	nferrors "github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/xmlcursor"
)

func TestDecodeProdSpecificsConflict(t *testing.T) {
	xmlDoc := `<prod>
		<cProd>001</cProd>
		<xProd>Widget</xProd>
		<veicProd><chassi>ABC123</chassi></veicProd>
		<comb><cProdANP>820101001</cProdANP></comb>
	</prod>`
	cur := xmlcursor.New(strings.NewReader(xmlDoc))
	start := startElement(t, cur, "prod")

	_, err := decodeProd(cur, start)
	if err == nil {
		t.Fatal("decodeProd() error = nil, want malformed error for conflicting veicProd/comb signals")
	}
	nfe, ok := err.(*nferrors.NFError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.NFError", err)
	}
	if nfe.Type != nferrors.ErrIncompleteChoice {
		t.Errorf("error Type = %v, want ErrIncompleteChoice", nfe.Type)
	}
}

func TestDecodeProdSpecificsSingleVariant(t *testing.T) {
	xmlDoc := `<prod>
		<cProd>001</cProd>
		<xProd>Widget</xProd>
		<comb><cProdANP>820101001</cProdANP></comb>
	</prod>`
	cur := xmlcursor.New(strings.NewReader(xmlDoc))
	start := startElement(t, cur, "prod")

	p, err := decodeProd(cur, start)
	if err != nil {
		t.Fatalf("decodeProd() error = %v", err)
	}
	if p.Comb == nil || p.Comb.CProdANP != "820101001" {
		t.Errorf("Prod.Comb = %v, want cProdANP 820101001", p.Comb)
	}
	if p.VeicProd != nil {
		t.Errorf("Prod.VeicProd = %v, want nil", p.VeicProd)
	}
}

func TestDecodeProdMedArmaRepeatWithSpecific(t *testing.T) {
	xmlDoc := `<prod>
		<cProd>001</cProd>
		<xProd>Widget</xProd>
		<comb><cProdANP>820101001</cProdANP></comb>
		<arma><tpArma>0</tpArma><nSerie>1</nSerie><nCano>2</nCano><descr>rifle</descr></arma>
		<arma><tpArma>0</tpArma><nSerie>3</nSerie><nCano>4</nCano><descr>pistol</descr></arma>
	</prod>`
	cur := xmlcursor.New(strings.NewReader(xmlDoc))
	start := startElement(t, cur, "prod")

	p, err := decodeProd(cur, start)
	if err != nil {
		t.Fatalf("decodeProd() error = %v, want repeated arma alongside single-shot comb to succeed", err)
	}
	if len(p.Arma) != 2 {
		t.Errorf("len(Prod.Arma) = %d, want 2", len(p.Arma))
	}
	if p.Comb == nil {
		t.Error("Prod.Comb = nil, want set")
	}
}
