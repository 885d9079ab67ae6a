package response

import (
	"time"

	"sales_contract/internal/domain/entities"
)

type TemplateResponse struct {
	Key              string    `json:"key"`
	Name             string    `json:"name"`
	Fields           []string  `json:"fields"`
	ShowHeader       bool      `json:"show_header"`
	ShowCustomerInfo bool      `json:"show_customer_info"`
	ShowCompanyInfo  bool      `json:"show_company_info"`
	ShowNotice       bool      `json:"show_notice"`
	ShowSignature    bool      `json:"show_signature"`
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
}

func FromTemplate(t entities.Template) TemplateResponse {
	fields := t.Fields
	if fields == nil {
		fields = []string{}
	}
	return TemplateResponse{
		Key:              t.Key,
		Name:             t.Name,
		Fields:           fields,
		ShowHeader:       t.ShowHeader,
		ShowCustomerInfo: t.ShowCustomerInfo,
		ShowCompanyInfo:  t.ShowCompanyInfo,
		ShowNotice:       t.ShowNotice,
		ShowSignature:    t.ShowSignature,
		UpdatedAt:        t.UpdatedAt,
	}
}

func FromTemplates(ts []entities.Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTemplate(t))
	}
	return out
}

type CompanyProfileResponse struct {
	Name           string `json:"name"`
	Representative string `json:"representative"`
	BusinessNo     string `json:"business_no"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BankAccount    string `json:"bank_account"`
}

func FromCompanyProfile(p entities.CompanyProfile) CompanyProfileResponse {
	return CompanyProfileResponse(p)
}

type NoticeTextResponse struct {
	Text string `json:"text"`
}
