package entities

import "time"

// Template selects which line-item fields and document sections appear when a
// contract is rendered.
//
// Storage model (DynamoDB):
//   - PK: key
//
// Fields keeps the caller's order and is not checked against the catalog.
type Template struct {
	Key              string    `json:"key" yaml:"key"`
	Name             string    `json:"name" yaml:"name"`
	Fields           []string  `json:"fields" yaml:"fields"`
	ShowHeader       bool      `json:"show_header" yaml:"show_header"`
	ShowCustomerInfo bool      `json:"show_customer_info" yaml:"show_customer_info"`
	ShowCompanyInfo  bool      `json:"show_company_info" yaml:"show_company_info"`
	ShowNotice       bool      `json:"show_notice" yaml:"show_notice"`
	ShowSignature    bool      `json:"show_signature" yaml:"show_signature"`
	UpdatedAt        time.Time `json:"updated_at,omitempty" yaml:"-"`
}

// CompanyProfile is printed in the company-info block of a contract.
type CompanyProfile struct {
	Name           string `json:"name"`
	Representative string `json:"representative"`
	BusinessNo     string `json:"business_no"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BankAccount    string `json:"bank_account"`
}

// NoticeText is the free-form footer printed under the line-item table.
type NoticeText string
