package worker

import (
	"encoding/json"
	"testing"
)

const sampleInvoiceXML = `<NFe><infNFe Id="NFe1">
	<ide><cUF>35</cUF><cNF>1</cNF><natOp>Venda</natOp><mod>55</mod><serie>1</serie>
	<nNF>1</nNF><dhEmi>2026-01-01T10:00:00-03:00</dhEmi><tpNF>1</tpNF><idDest>1</idDest>
	<cMunFG>3550308</cMunFG><tpImp>1</tpImp><tpEmis>1</tpEmis><cDV>1</cDV><tpAmb>1</tpAmb>
	<finNFe>1</finNFe><indFinal>0</indFinal><indPres>1</indPres><procEmi>0</procEmi><verProc>1.0</verProc></ide>
	<emit><CNPJ>00000000000191</CNPJ><xNome>Loja</xNome>
	<enderEmit><xLgr>Rua</xLgr><nro>1</nro><xBairro>Centro</xBairro><cMun>3550308</cMun>
	<xMun>Sao Paulo</xMun><UF>SP</UF><CEP>01000000</CEP><cPais>1058</cPais><xPais>Brasil</xPais></enderEmit>
	<IE>123</IE><CRT>1</CRT></emit>
	<det nItem="1">
		<prod><cProd>X1</cProd><xProd>Produto</xProd><NCM>12345678</NCM><CFOP>5102</CFOP>
		<uCom>UN</uCom><qCom>1.0000</qCom><vUnCom>10.00</vUnCom><vProd>10.00</vProd>
		<uTrib>UN</uTrib><qTrib>1.0000</qTrib><vUnTrib>10.00</vUnTrib><indTot>1</indTot></prod>
		<imposto><ICMS><ICMS00><orig>0</orig><CST>00</CST><modBC>0</modBC><vBC>10.00</vBC>
		<pICMS>18.00</pICMS><vICMS>1.80</vICMS></ICMS00></ICMS></imposto>
	</det>
	<total><ICMSTot><vBC>10.00</vBC><vICMS>1.80</vICMS><vICMSDeson>0.00</vICMSDeson>
	<vFCP>0.00</vFCP><vBCST>0.00</vBCST><vST>0.00</vST><vFCPST>0.00</vFCPST><vFCPSTRet>0.00</vFCPSTRet>
	<vProd>10.00</vProd><vFrete>0.00</vFrete><vSeg>0.00</vSeg><vDesc>0.00</vDesc><vII>0.00</vII>
	<vIPI>0.00</vIPI><vIPIDevol>0.00</vIPIDevol><vPIS>0.00</vPIS><vCOFINS>0.00</vCOFINS>
	<vOutro>0.00</vOutro><vNF>10.00</vNF></ICMSTot></total>
	<transp><modFrete>9</modFrete></transp>
	<pag><detPag><indPag>0</indPag><tPag>01</tPag><vPag>10.00</vPag></detPag></pag>
</infNFe></NFe>`

func TestDecodeAndSerializeInvoice(t *testing.T) {
	body, err := decodeAndSerialize([]byte(sampleInvoiceXML), 7, 9)
	if err != nil {
		t.Fatalf("decodeAndSerialize() error = %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("published payload is not valid JSON: %v", err)
	}
	if out["company_id"].(float64) != 7 {
		t.Errorf("company_id = %v, want 7", out["company_id"])
	}
	if out["org_id"].(float64) != 9 {
		t.Errorf("org_id = %v, want 9", out["org_id"])
	}
	nfes, ok := out["nfes"].([]interface{})
	if !ok || len(nfes) != 1 {
		t.Fatalf("nfes = %v, want a one-element array", out["nfes"])
	}
}

func TestDecodeAndSerializeMalformedDocumentFails(t *testing.T) {
	_, err := decodeAndSerialize([]byte(`<notADocument></notADocument>`), 1, 1)
	if err == nil {
		t.Fatal("decodeAndSerialize() error = nil, want a decode failure for an unrecognized root")
	}
}
