package request

import (
	"strings"

	"sales_contract/internal/domain/entities"
)

type TemplateUpdateRequest struct {
	Name             string   `json:"name"`
	Fields           []string `json:"fields"`
	ShowHeader       bool     `json:"show_header"`
	ShowCustomerInfo bool     `json:"show_customer_info"`
	ShowCompanyInfo  bool     `json:"show_company_info"`
	ShowNotice       bool     `json:"show_notice"`
	ShowSignature    bool     `json:"show_signature"`
}

func (r TemplateUpdateRequest) ToEntity() entities.Template {
	fields := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return entities.Template{
		Name:             strings.TrimSpace(r.Name),
		Fields:           fields,
		ShowHeader:       r.ShowHeader,
		ShowCustomerInfo: r.ShowCustomerInfo,
		ShowCompanyInfo:  r.ShowCompanyInfo,
		ShowNotice:       r.ShowNotice,
		ShowSignature:    r.ShowSignature,
	}
}

type TemplateSelectRequest struct {
	Key string `json:"key" binding:"required"`
}

type CompanyProfileRequest struct {
	Name           string `json:"name"`
	Representative string `json:"representative"`
	BusinessNo     string `json:"business_no"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BankAccount    string `json:"bank_account"`
}

func (r CompanyProfileRequest) ToEntity() entities.CompanyProfile {
	return entities.CompanyProfile(r)
}

type NoticeTextRequest struct {
	Text string `json:"text"`
}
