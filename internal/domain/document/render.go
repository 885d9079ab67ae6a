package document

import (
	"time"

	"sales_contract/internal/domain/entities"
)

type SectionKind string

const (
	SectionHeader    SectionKind = "header"
	SectionCustomer  SectionKind = "customer"
	SectionCompany   SectionKind = "company"
	SectionItems     SectionKind = "items"
	SectionNotice    SectionKind = "notice"
	SectionSignature SectionKind = "signature"
)

type Entry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Section is one printable block. Only the members relevant to Kind are set.
type Section struct {
	Kind    SectionKind `json:"kind"`
	Title   string      `json:"title,omitempty"`
	Entries []Entry     `json:"entries,omitempty"`
	Columns []Column    `json:"columns,omitempty"`
	Rows    [][]string  `json:"rows,omitempty"`
	Text    string      `json:"text,omitempty"`
	Image   string      `json:"image,omitempty"`
}

// Document is what the export collaborator prints.
type Document struct {
	ContractID  string    `json:"contract_id"`
	ContractNo  string    `json:"contract_no"`
	TemplateKey string    `json:"template_key"`
	Sections    []Section `json:"sections"`
}

type Input struct {
	Contract entities.Contract
	Template entities.Template
	Company  entities.CompanyProfile
	Notice   entities.NoticeText
}

// Compose builds the document sections in print order. Sections whose toggle
// is off are left out entirely; the line-item table is always present.
func Compose(in Input, reg *Registry) Document {
	if reg == nil {
		reg = defaultRegistry
	}
	c := in.Contract
	t := in.Template

	doc := Document{ContractID: c.ID, ContractNo: c.ContractNo, TemplateKey: t.Key}

	if t.ShowHeader {
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionHeader,
			Title: "계약서",
			Entries: []Entry{
				{Label: "계약번호", Value: orPlaceholder(c.ContractNo)},
				{Label: "계약일", Value: orPlaceholder(c.ContractDate)},
				{Label: "견적번호", Value: orPlaceholder(c.EstimateNo)},
			},
		})
	}

	if t.ShowCustomerInfo {
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionCustomer,
			Title: "고객 정보",
			Entries: []Entry{
				{Label: "고객명", Value: orPlaceholder(c.CustomerName)},
				{Label: "연락처", Value: orPlaceholder(c.Contact)},
				{Label: "주소", Value: orPlaceholder(c.Address)},
				{Label: "프로젝트", Value: orPlaceholder(c.ProjectName)},
				{Label: "실측일", Value: orPlaceholder(c.MeasurementDate)},
				{Label: "시공일", Value: orPlaceholder(c.ConstructionDate)},
			},
		})
	}

	if t.ShowCompanyInfo {
		p := in.Company
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionCompany,
			Title: "회사 정보",
			Entries: []Entry{
				{Label: "상호", Value: orPlaceholder(p.Name)},
				{Label: "대표자", Value: orPlaceholder(p.Representative)},
				{Label: "사업자번호", Value: orPlaceholder(p.BusinessNo)},
				{Label: "주소", Value: orPlaceholder(p.Address)},
				{Label: "전화", Value: orPlaceholder(p.Phone)},
				{Label: "이메일", Value: orPlaceholder(p.Email)},
				{Label: "입금계좌", Value: orPlaceholder(p.BankAccount)},
			},
		})
	}

	doc.Sections = append(doc.Sections, itemsSection(c, t.Fields, reg))

	if t.ShowNotice {
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionNotice,
			Title: "안내 사항",
			Text:  string(in.Notice),
		})
	}

	if t.ShowSignature {
		agreedAt := Placeholder
		if !c.Agreement.AgreedAt.IsZero() {
			agreedAt = c.Agreement.AgreedAt.Format(time.DateTime)
		}
		doc.Sections = append(doc.Sections, Section{
			Kind:  SectionSignature,
			Title: "서명",
			Entries: []Entry{
				{Label: "동의 방식", Value: orPlaceholder(string(c.Agreement.Method))},
				{Label: "동의 일시", Value: agreedAt},
			},
			Image: c.Agreement.Signature,
		})
	}

	return doc
}

func itemsSection(c entities.Contract, fields []string, reg *Registry) Section {
	s := Section{Kind: SectionItems, Title: "품목"}
	for _, key := range fields {
		s.Columns = append(s.Columns, Column{Key: key, Label: reg.Label(key)})
	}
	for _, item := range c.Rows {
		row := make([]string, 0, len(fields))
		for _, key := range fields {
			row = append(row, reg.Resolve(item, key))
		}
		s.Rows = append(s.Rows, row)
	}
	s.Entries = []Entry{
		{Label: "합계", Value: FormatWon(c.TotalAmount)},
		{Label: "할인 금액", Value: FormatWon(c.DiscountedAmount)},
		{Label: "계약금", Value: FormatWon(c.DepositAmount)},
		{Label: "잔금", Value: FormatWon(c.RemainingAmount)},
	}
	return s
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
