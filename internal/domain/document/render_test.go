package document

import (
	"testing"
	"time"

	"sales_contract/internal/domain/entities"
)

func sampleContract() entities.Contract {
	c := entities.Contract{
		ID:           "c-1",
		ContractNo:   "C20250101-001",
		EstimateNo:   "E20250101-001",
		ContractDate: "2025-01-01",
		CustomerName: "홍길동",
		Address:      "서울시 강남구 역삼동 래미안아파트 101동 1203호",
		Rows: []entities.LineItem{
			{Space: "거실", ProductName: "커튼", Width: 2400, TotalPrice: price(500000)},
			{Space: "안방", ProductName: "설치비", TotalPrice: price(0)},
		},
		PaymentRecord: entities.PaymentRecord{TotalAmount: 1000000, DiscountedAmount: 1000000, DepositAmount: 300000},
		Agreement: entities.AgreementRecord{
			Agreed:    true,
			Method:    entities.AgreementMethodSignature,
			Signature: "data:image/png;base64,AAAA",
			AgreedAt:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	c.Recompute()
	return c
}

func kinds(doc Document) []SectionKind {
	out := make([]SectionKind, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		out = append(out, s.Kind)
	}
	return out
}

func TestCompose_AllSections(t *testing.T) {
	tmpl := entities.Template{
		Key:              "all",
		Fields:           []string{FieldTotalPrice, FieldSpace, "mystery"},
		ShowHeader:       true,
		ShowCustomerInfo: true,
		ShowCompanyInfo:  true,
		ShowNotice:       true,
		ShowSignature:    true,
	}
	doc := Compose(Input{
		Contract: sampleContract(),
		Template: tmpl,
		Company:  entities.CompanyProfile{Name: "루미 인테리어"},
		Notice:   "시공 3일 전까지 변경 가능합니다.",
	}, nil)

	want := []SectionKind{SectionHeader, SectionCustomer, SectionCompany, SectionItems, SectionNotice, SectionSignature}
	got := kinds(doc)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	items := doc.Sections[3]
	if items.Columns[0].Key != FieldTotalPrice || items.Columns[1].Key != FieldSpace || items.Columns[2].Label != "mystery" {
		t.Fatalf("unexpected columns: %+v", items.Columns)
	}
	if items.Rows[0][0] != "500,000원" || items.Rows[0][1] != "거실" || items.Rows[0][2] != Placeholder {
		t.Fatalf("unexpected first row: %v", items.Rows[0])
	}
	if items.Rows[1][0] != ServiceLabel {
		t.Fatalf("expected service label, got %q", items.Rows[1][0])
	}
	if doc.Sections[5].Image != "data:image/png;base64,AAAA" {
		t.Fatalf("expected signature image to be carried")
	}
	if doc.Sections[4].Text != "시공 3일 전까지 변경 가능합니다." {
		t.Fatalf("unexpected notice: %q", doc.Sections[4].Text)
	}
}

func TestCompose_DisabledSectionsOmitted(t *testing.T) {
	tmpl := entities.Template{Key: "bare", Fields: []string{FieldSpace}}
	doc := Compose(Input{Contract: sampleContract(), Template: tmpl}, DefaultRegistry())
	got := kinds(doc)
	if len(got) != 1 || got[0] != SectionItems {
		t.Fatalf("expected only items section, got %v", got)
	}
	if doc.TemplateKey != "bare" || doc.ContractNo != "C20250101-001" {
		t.Fatalf("unexpected document identity: %+v", doc)
	}
	remaining := doc.Sections[0].Entries[3]
	if remaining.Value != "700,000원" {
		t.Fatalf("expected remaining 700,000원, got %q", remaining.Value)
	}
}

func TestBuiltinTemplates(t *testing.T) {
	got := BuiltinTemplates()
	if len(got) != 3 || got[0].Key != TemplateMinimal || got[1].Key != TemplateDetailed || got[2].Key != TemplateFull {
		t.Fatalf("unexpected builtins: %+v", got)
	}

	full := got[2].Fields
	catalog := DefaultRegistry().Keys()
	if len(full) != len(catalog) {
		t.Fatalf("full template should cover the catalog: %v vs %v", full, catalog)
	}
	for i := range catalog {
		if full[i] != catalog[i] {
			t.Fatalf("full template order differs at %d: %q vs %q", i, full[i], catalog[i])
		}
	}

	got[0].Fields[0] = "mutated"
	if BuiltinTemplates()[0].Fields[0] == "mutated" {
		t.Fatalf("builtins must be returned as copies")
	}
}

func TestParseTemplates(t *testing.T) {
	if _, err := ParseTemplates([]byte("- name: nokey\n")); err == nil {
		t.Fatalf("expected error for template without key")
	}
	if _, err := ParseTemplates([]byte(":::")); err == nil {
		t.Fatalf("expected yaml error")
	}
	out, err := ParseTemplates([]byte("- key: x\n  fields: [b, a]\n  show_notice: true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Fields[0] != "b" || !out[0].ShowNotice {
		t.Fatalf("unexpected template: %+v", out[0])
	}
}
