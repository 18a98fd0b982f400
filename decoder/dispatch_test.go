package decoder

import (
	"strings"
	"testing"

	"github.com/biel-despair/fiscal-doc-worker/document"
	nferrors "github.com/biel-despair/fiscal-doc-worker/errors"
)

func TestDecodeInvoiceBatchNFCeCPFBuyer(t *testing.T) {
	xmlDoc := `<nfeProc><NFe><infNFe Id="NFe1">
		<ide><cUF>35</cUF><cNF>12345678</cNF><natOp>Venda</natOp><mod>65</mod>
		<serie>1</serie><nNF>1</nNF><dhEmi>2026-01-01T10:00:00-03:00</dhEmi>
		<tpNF>1</tpNF><idDest>1</idDest><cMunFG>3550308</cMunFG><tpImp>4</tpImp>
		<tpEmis>1</tpEmis><cDV>1</cDV><tpAmb>1</tpAmb><finNFe>1</finNFe>
		<indFinal>1</indFinal><indPres>1</indPres><procEmi>0</procEmi><verProc>1.0</verProc></ide>
		<emit><CNPJ>00935769000100</CNPJ><xNome>Loja</xNome>
		<enderEmit><xLgr>Rua</xLgr><nro>1</nro><xBairro>Centro</xBairro><cMun>3550308</cMun>
		<xMun>Sao Paulo</xMun><UF>SP</UF><CEP>01000000</CEP><cPais>1058</cPais><xPais>Brasil</xPais></enderEmit>
		<IE>123</IE><CRT>1</CRT></emit>
		<dest><CPF>12345678909</CPF><xNome>Cliente</xNome></dest>
		<det nItem="1">
			<prod><cProd>X1</cProd><xProd>Produto</xProd><NCM>12345678</NCM><CFOP>5102</CFOP>
			<uCom>UN</uCom><qCom>1.0000</qCom><vUnCom>12.50</vUnCom><vProd>12.50</vProd>
			<uTrib>UN</uTrib><qTrib>1.0000</qTrib><vUnTrib>12.50</vUnTrib><indTot>1</indTot></prod>
			<imposto><ICMS><ICMSSN102><orig>0</orig><CSOSN>102</CSOSN></ICMSSN102></ICMS></imposto>
		</det>
		<total><ICMSTot><vBC>0.00</vBC><vICMS>0.00</vICMS><vICMSDeson>0.00</vICMSDeson>
		<vFCP>0.00</vFCP><vBCST>0.00</vBCST><vST>0.00</vST><vFCPST>0.00</vFCPST><vFCPSTRet>0.00</vFCPSTRet>
		<vProd>12.50</vProd><vFrete>0.00</vFrete><vSeg>0.00</vSeg><vDesc>0.00</vDesc><vII>0.00</vII>
		<vIPI>0.00</vIPI><vIPIDevol>0.00</vIPIDevol><vPIS>0.00</vPIS><vCOFINS>0.00</vCOFINS>
		<vOutro>0.00</vOutro><vNF>12.50</vNF></ICMSTot></total>
		<transp><modFrete>9</modFrete></transp>
		<pag><detPag><indPag>0</indPag><tPag>01</tPag><vPag>12.50</vPag></detPag></pag>
	</infNFe></NFe></nfeProc>`

	batch, err := DecodeInvoiceBatch(strings.NewReader(xmlDoc), 7, 9)
	if err != nil {
		t.Fatalf("DecodeInvoiceBatch() error = %v", err)
	}
	if batch.CompanyID != 7 || batch.OrgID != 9 {
		t.Errorf("batch routing = %d/%d, want 7/9", batch.CompanyID, batch.OrgID)
	}
	if len(batch.Invoices) != 1 {
		t.Fatalf("len(Invoices) = %d, want 1", len(batch.Invoices))
	}
	nfe := batch.Invoices[0]
	if nfe.Ide.Mod != 65 {
		t.Errorf("Ide.Mod = %d, want 65", nfe.Ide.Mod)
	}
	if nfe.Emit.Id.Kind != document.EmitenteIdCNPJ || nfe.Emit.Id.Value != "00935769000100" {
		t.Errorf("Emit.Id = %+v, want CNPJ/00935769000100", nfe.Emit.Id)
	}
	if nfe.Dest == nil || nfe.Dest.Id.Kind != document.EmitenteIdCPF || nfe.Dest.Id.Value != "12345678909" {
		t.Fatalf("Dest.Id = %+v, want CPF/12345678909", nfe.Dest)
	}
	if len(nfe.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(nfe.Items))
	}
	prod := nfe.Items[0].Prod
	if prod.VProd.String() != "12.50" {
		t.Errorf("Prod.VProd = %s, want 12.50", prod.VProd.String())
	}
	icms := nfe.Items[0].Imposto.ICMS
	if icms.CSOSN != "102" {
		t.Errorf("ICMS.CSOSN = %q, want %q", icms.CSOSN, "102")
	}
	if icms.CST != "" {
		t.Errorf("ICMS.CST = %q, want empty (CSOSN variant carries no CST)", icms.CST)
	}
}

func TestDecodeInvoiceBatchPISOutrQuantityVariant(t *testing.T) {
	xmlDoc := minimalNFeWithPIS(`<PISOutr><CST>99</CST><qBCProd>100.0000</qBCProd>
		<vAliqProd>0.0100</vAliqProd><vPIS>1.00</vPIS></PISOutr>`)

	batch, err := DecodeInvoiceBatch(strings.NewReader(xmlDoc), 1, 1)
	if err != nil {
		t.Fatalf("DecodeInvoiceBatch() error = %v", err)
	}
	pis := batch.Invoices[0].Items[0].Imposto.PIS
	if pis.CST != "99" {
		t.Errorf("PIS.CST = %q, want 99", pis.CST)
	}
	if pis.QBCProd == nil || pis.QBCProd.String() != "100.0000" {
		t.Errorf("PIS.QBCProd = %v, want 100.0000", pis.QBCProd)
	}
	if pis.VAliqProd == nil || pis.VAliqProd.String() != "0.0100" {
		t.Errorf("PIS.VAliqProd = %v, want 0.0100", pis.VAliqProd)
	}
	if pis.VPIS == nil || pis.VPIS.String() != "1.00" {
		t.Errorf("PIS.VPIS = %v, want 1.00", pis.VPIS)
	}
	if pis.VBC != nil {
		t.Errorf("PIS.VBC = %v, want nil (rate witness pair absent)", pis.VBC)
	}
	if pis.PPIS != nil {
		t.Errorf("PIS.PPIS = %v, want nil (rate witness pair absent)", pis.PPIS)
	}
}

func TestDecodeInvoiceBatchTwoNFrefVariants(t *testing.T) {
	xmlDoc := `<NFe><infNFe Id="NFe1">
		<ide><cUF>35</cUF><cNF>1</cNF><natOp>Venda</natOp><mod>55</mod><serie>1</serie>
		<nNF>1</nNF><dhEmi>2026-01-01T10:00:00-03:00</dhEmi><tpNF>1</tpNF><idDest>1</idDest>
		<cMunFG>3550308</cMunFG><tpImp>1</tpImp><tpEmis>1</tpEmis><cDV>1</cDV><tpAmb>1</tpAmb>
		<finNFe>1</finNFe><indFinal>0</indFinal><indPres>1</indPres><procEmi>0</procEmi><verProc>1.0</verProc>
		<NFref><refNFe>NFe3501...</refNFe></NFref>
		<NFref><refNF><cUF>35</cUF><AAMM>2301</AAMM><CNPJ>00000000000191</CNPJ><mod>1</mod>
		<serie>2</serie><nNF>3</nNF></refNF></NFref>
		</ide>
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

	batch, err := DecodeInvoiceBatch(strings.NewReader(xmlDoc), 1, 1)
	if err != nil {
		t.Fatalf("DecodeInvoiceBatch() error = %v", err)
	}
	refs := batch.Invoices[0].Ide.NFref
	if len(refs) != 2 {
		t.Fatalf("len(NFref) = %d, want 2", len(refs))
	}
	if refs[0].Kind != document.NFRefKeyNFe {
		t.Errorf("refs[0].Kind = %v, want the refNFe variant", refs[0].Kind)
	}
	if refs[0].KeyNFe != "NFe3501..." {
		t.Errorf("refs[0].KeyNFe = %q, want NFe3501...", refs[0].KeyNFe)
	}
	if refs[1].NF.CUF != 35 || refs[1].NF.AAMM != "2301" || refs[1].NF.CNPJ != "00000000000191" ||
		refs[1].NF.Mod != 1 || refs[1].NF.Serie != 2 || refs[1].NF.NNF != 3 {
		t.Errorf("refs[1].NF = %+v, want cUF=35 AAMM=2301 CNPJ=00000000000191 mod=1 serie=2 nNF=3", refs[1].NF)
	}
}

func TestDecodeInvoiceBatchMalformedIPIChoice(t *testing.T) {
	xmlDoc := minimalNFeWithIPI(`<IPITrib><CST>50</CST><vBC>100.00</vBC></IPITrib>`)

	_, err := DecodeInvoiceBatch(strings.NewReader(xmlDoc), 1, 1)
	if err == nil {
		t.Fatal("DecodeInvoiceBatch() error = nil, want IncompleteChoice(IPITrib)")
	}
	nfe, ok := err.(*nferrors.NFError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.NFError", err)
	}
	if nfe.Type != nferrors.ErrIncompleteChoice {
		t.Errorf("error Type = %v, want ErrIncompleteChoice", nfe.Type)
	}
	if nfe.Field != "IPITrib" {
		t.Errorf("error Field = %q, want IPITrib", nfe.Field)
	}
}

func TestDecodeEventBatchCancellation(t *testing.T) {
	xmlDoc := `<procEventoNFe>
		<evento>
			<infEvento Id="ID1101110001">
				<cOrgao>35</cOrgao><tpAmb>1</tpAmb><CNPJ>00000000000191</CNPJ>
				<chNFe>NFe35260100000000000191550010000000011000000017</chNFe>
				<dhEvento>2026-01-01T10:00:00-03:00</dhEvento><tpEvento>110111</tpEvento>
				<nSeqEvento>1</nSeqEvento><verEvento>1.00</verEvento>
			</infEvento>
		</evento>
		<retEvento Id="ID2101110001">
			<tpAmb>1</tpAmb><verAplic>SP1.0</verAplic><cOrgao>35</cOrgao><cStat>135</cStat>
			<xMotivo>Evento registrado</xMotivo><dhRegEvento>2026-01-01T10:01:00-03:00</dhRegEvento>
			<chNFe>NFe35260100000000000191550010000000011000000017</chNFe>
		</retEvento>
	</procEventoNFe>`

	batch, err := DecodeEventBatch(strings.NewReader(xmlDoc), 1, 1)
	if err != nil {
		t.Fatalf("DecodeEventBatch() error = %v", err)
	}
	if len(batch.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(batch.Events))
	}
	proc, ok := batch.Events[0].(document.ProcEvent)
	if !ok {
		t.Fatalf("Events[0] type = %T, want document.ProcEvent", batch.Events[0])
	}
	if proc.Event.Id != "ID1101110001" {
		t.Errorf("Event.Id = %q, want ID1101110001", proc.Event.Id)
	}
	if proc.Event.InfEvento.Id.Kind != document.EmitenteIdCNPJ || proc.Event.InfEvento.Id.Value != "00000000000191" {
		t.Errorf("InfEvento.Id = %+v, want CNPJ 00000000000191", proc.Event.InfEvento.Id)
	}
	if proc.Ret.ChNFe != "NFe35260100000000000191550010000000011000000017" {
		t.Errorf("Ret.ChNFe not propagated verbatim: %q", proc.Ret.ChNFe)
	}
}

// minimalNFeWithPIS builds a one-item NF-e whose <PIS> content is
// replaced with pisXML, for tests that only care about the PIS tax
// schedule.
func minimalNFeWithPIS(pisXML string) string {
	return minimalNFeWithTax(`<ICMS><ICMS00><orig>0</orig><CST>00</CST><modBC>0</modBC><vBC>10.00</vBC>
		<pICMS>18.00</pICMS><vICMS>1.80</vICMS></ICMS00></ICMS>` + `<PIS>` + pisXML + `</PIS>`)
}

// minimalNFeWithIPI builds a one-item NF-e whose <IPI> content is
// replaced with ipiXML.
func minimalNFeWithIPI(ipiXML string) string {
	return minimalNFeWithTax(`<ICMS><ICMS00><orig>0</orig><CST>00</CST><modBC>0</modBC><vBC>10.00</vBC>
		<pICMS>18.00</pICMS><vICMS>1.80</vICMS></ICMS00></ICMS>` + `<IPI>` + ipiXML + `</IPI>`)
}

func minimalNFeWithTax(impostoInner string) string {
	return `<NFe><infNFe Id="NFe1">
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
			<imposto>` + impostoInner + `</imposto>
		</det>
		<total><ICMSTot><vBC>10.00</vBC><vICMS>1.80</vICMS><vICMSDeson>0.00</vICMSDeson>
		<vFCP>0.00</vFCP><vBCST>0.00</vBCST><vST>0.00</vST><vFCPST>0.00</vFCPST><vFCPSTRet>0.00</vFCPSTRet>
		<vProd>10.00</vProd><vFrete>0.00</vFrete><vSeg>0.00</vSeg><vDesc>0.00</vDesc><vII>0.00</vII>
		<vIPI>0.00</vIPI><vIPIDevol>0.00</vIPIDevol><vPIS>0.00</vPIS><vCOFINS>0.00</vCOFINS>
		<vOutro>0.00</vOutro><vNF>10.00</vNF></ICMSTot></total>
		<transp><modFrete>9</modFrete></transp>
		<pag><detPag><indPag>0</indPag><tPag>01</tPag><vPag>10.00</vPag></detPag></pag>
	</infNFe></NFe>`
}
