package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"sales_contract/internal/domain/document"
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"
)

// Settings keys.
const (
	SettingSelectedTemplate = "template.selected"
	SettingNoticeText       = "notice.text"

	settingCompanyName           = "company.name"
	settingCompanyRepresentative = "company.representative"
	settingCompanyBusinessNo     = "company.business_no"
	settingCompanyAddress        = "company.address"
	settingCompanyPhone          = "company.phone"
	settingCompanyEmail          = "company.email"
	settingCompanyBankAccount    = "company.bank_account"
)

var companyKeys = []string{
	settingCompanyName,
	settingCompanyRepresentative,
	settingCompanyBusinessNo,
	settingCompanyAddress,
	settingCompanyPhone,
	settingCompanyEmail,
	settingCompanyBankAccount,
}

// ITemplateUseCase is the template configuration store plus the render query
// used by document export.
type ITemplateUseCase interface {
	ListTemplates(ctx context.Context) ([]entities.Template, error)
	SelectTemplate(ctx context.Context, key string) error
	SelectedTemplate(ctx context.Context) (entities.Template, error)
	UpdateTemplate(ctx context.Context, key string, t entities.Template) (entities.Template, error)
	ResolveFieldValue(item entities.LineItem, fieldKey string) string
	RenderContract(ctx context.Context, contractID, templateKey string) (document.Document, error)

	GetCompanyProfile(ctx context.Context) (entities.CompanyProfile, error)
	UpdateCompanyProfile(ctx context.Context, p entities.CompanyProfile) (entities.CompanyProfile, error)
	GetNoticeText(ctx context.Context) (entities.NoticeText, error)
	UpdateNoticeText(ctx context.Context, text entities.NoticeText) (entities.NoticeText, error)
}

type TemplateUseCase struct {
	templates interfaces.ITemplateRepository
	settings  interfaces.ISettingsRepository
	contracts interfaces.IContractRepository
	registry  *document.Registry
	now       func() time.Time
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(templates interfaces.ITemplateRepository, settings interfaces.ISettingsRepository, contracts interfaces.IContractRepository) *TemplateUseCase {
	return &TemplateUseCase{
		templates: templates,
		settings:  settings,
		contracts: contracts,
		registry:  document.DefaultRegistry(),
		now:       defaultClock,
	}
}

// ListTemplates returns the built-ins in declaration order, each replaced by
// its saved customization if any, followed by custom keys in lexical order.
func (u *TemplateUseCase) ListTemplates(ctx context.Context) ([]entities.Template, error) {
	saved, err := u.templates.List(ctx)
	if err != nil {
		return nil, opErr("list templates", "", err)
	}
	byKey := make(map[string]entities.Template, len(saved))
	for _, t := range saved {
		byKey[t.Key] = t
	}

	builtins := document.BuiltinTemplates()
	out := make([]entities.Template, 0, len(builtins)+len(saved))
	seen := make(map[string]bool, len(builtins))
	for _, b := range builtins {
		seen[b.Key] = true
		if t, ok := byKey[b.Key]; ok {
			out = append(out, t)
			continue
		}
		out = append(out, b)
	}

	var custom []entities.Template
	for _, t := range saved {
		if !seen[t.Key] {
			custom = append(custom, t)
		}
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i].Key < custom[j].Key })
	return append(out, custom...), nil
}

func (u *TemplateUseCase) lookup(ctx context.Context, key string) (entities.Template, bool, error) {
	all, err := u.ListTemplates(ctx)
	if err != nil {
		return entities.Template{}, false, err
	}
	for _, t := range all {
		if t.Key == key {
			return t, true, nil
		}
	}
	return entities.Template{}, false, nil
}

// SelectTemplate only checks that the key exists.
func (u *TemplateUseCase) SelectTemplate(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	_, ok, err := u.lookup(ctx, key)
	if err != nil {
		return opErr("select template", key, err)
	}
	if !ok {
		return opErr("select template", key, ErrTemplateNotFound)
	}
	if err := u.settings.PutMany(ctx, map[string]string{SettingSelectedTemplate: key}); err != nil {
		return opErr("select template", key, err)
	}
	log.Printf("[template][usecase] selected key=%s", key)
	return nil
}

// SelectedTemplate falls back to the default when nothing (or a since-removed
// key) was selected.
func (u *TemplateUseCase) SelectedTemplate(ctx context.Context) (entities.Template, error) {
	key, ok, err := u.settings.Get(ctx, SettingSelectedTemplate)
	if err != nil {
		return entities.Template{}, opErr("get selected template", "", err)
	}
	if !ok || key == "" {
		key = document.DefaultTemplateKey
	}
	t, found, err := u.lookup(ctx, key)
	if err != nil {
		return entities.Template{}, opErr("get selected template", key, err)
	}
	if !found {
		log.Printf("[template][usecase] selected key missing, using default key=%s", key)
		t, _, err = u.lookup(ctx, document.DefaultTemplateKey)
		if err != nil {
			return entities.Template{}, opErr("get selected template", key, err)
		}
	}
	return t, nil
}

// UpdateTemplate replaces the field list and toggles. Field keys are stored
// verbatim, including ones the catalog does not know.
func (u *TemplateUseCase) UpdateTemplate(ctx context.Context, key string, t entities.Template) (entities.Template, error) {
	key = strings.TrimSpace(key)
	current, ok, err := u.lookup(ctx, key)
	if err != nil {
		return entities.Template{}, opErr("update template", key, err)
	}
	if !ok {
		return entities.Template{}, opErr("update template", key, ErrTemplateNotFound)
	}

	next := entities.Template{
		Key:              key,
		Name:             current.Name,
		Fields:           append([]string{}, t.Fields...),
		ShowHeader:       t.ShowHeader,
		ShowCustomerInfo: t.ShowCustomerInfo,
		ShowCompanyInfo:  t.ShowCompanyInfo,
		ShowNotice:       t.ShowNotice,
		ShowSignature:    t.ShowSignature,
		UpdatedAt:        u.now(),
	}
	if name := strings.TrimSpace(t.Name); name != "" {
		next.Name = name
	}

	saved, err := u.templates.Put(ctx, next)
	if err != nil {
		log.Printf("[template][usecase] put failed key=%s err=%v", key, err)
		return entities.Template{}, opErr("update template", key, err)
	}
	log.Printf("[template][usecase] updated key=%s fields=%d", key, len(saved.Fields))
	return saved, nil
}

func (u *TemplateUseCase) ResolveFieldValue(item entities.LineItem, fieldKey string) string {
	return u.registry.Resolve(item, fieldKey)
}

// RenderContract composes the printable sections of a contract. An empty
// templateKey uses the selected template.
func (u *TemplateUseCase) RenderContract(ctx context.Context, contractID, templateKey string) (document.Document, error) {
	contractID = strings.TrimSpace(contractID)
	c, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return document.Document{}, opErr("render contract", contractID, err)
	}
	if c.ID == "" {
		return document.Document{}, opErr("render contract", contractID, ErrContractNotFound)
	}

	var t entities.Template
	if key := strings.TrimSpace(templateKey); key != "" {
		var ok bool
		t, ok, err = u.lookup(ctx, key)
		if err != nil {
			return document.Document{}, opErr("render contract", contractID, err)
		}
		if !ok {
			return document.Document{}, opErr("render contract", contractID, withCause(ErrTemplateNotFound, errKey(key)))
		}
	} else {
		t, err = u.SelectedTemplate(ctx)
		if err != nil {
			return document.Document{}, opErr("render contract", contractID, err)
		}
	}

	values, err := u.settings.GetMany(ctx, append([]string{SettingNoticeText}, companyKeys...))
	if err != nil {
		return document.Document{}, opErr("render contract", contractID, err)
	}

	return document.Compose(document.Input{
		Contract: c,
		Template: t,
		Company:  companyFromSettings(values),
		Notice:   entities.NoticeText(values[SettingNoticeText]),
	}, u.registry), nil
}

func (u *TemplateUseCase) GetCompanyProfile(ctx context.Context) (entities.CompanyProfile, error) {
	values, err := u.settings.GetMany(ctx, companyKeys)
	if err != nil {
		return entities.CompanyProfile{}, opErr("get company profile", "", err)
	}
	return companyFromSettings(values), nil
}

func (u *TemplateUseCase) UpdateCompanyProfile(ctx context.Context, p entities.CompanyProfile) (entities.CompanyProfile, error) {
	values := map[string]string{
		settingCompanyName:           strings.TrimSpace(p.Name),
		settingCompanyRepresentative: strings.TrimSpace(p.Representative),
		settingCompanyBusinessNo:     strings.TrimSpace(p.BusinessNo),
		settingCompanyAddress:        strings.TrimSpace(p.Address),
		settingCompanyPhone:          strings.TrimSpace(p.Phone),
		settingCompanyEmail:          strings.TrimSpace(p.Email),
		settingCompanyBankAccount:    strings.TrimSpace(p.BankAccount),
	}
	if err := u.settings.PutMany(ctx, values); err != nil {
		return entities.CompanyProfile{}, opErr("update company profile", "", err)
	}
	log.Printf("[settings][usecase] company profile updated name=%s", values[settingCompanyName])
	return companyFromSettings(values), nil
}

func (u *TemplateUseCase) GetNoticeText(ctx context.Context) (entities.NoticeText, error) {
	v, _, err := u.settings.Get(ctx, SettingNoticeText)
	if err != nil {
		return "", opErr("get notice text", "", err)
	}
	return entities.NoticeText(v), nil
}

func (u *TemplateUseCase) UpdateNoticeText(ctx context.Context, text entities.NoticeText) (entities.NoticeText, error) {
	if err := u.settings.PutMany(ctx, map[string]string{SettingNoticeText: string(text)}); err != nil {
		return "", opErr("update notice text", "", err)
	}
	log.Printf("[settings][usecase] notice text updated len=%d", len(text))
	return text, nil
}

func companyFromSettings(v map[string]string) entities.CompanyProfile {
	return entities.CompanyProfile{
		Name:           v[settingCompanyName],
		Representative: v[settingCompanyRepresentative],
		BusinessNo:     v[settingCompanyBusinessNo],
		Address:        v[settingCompanyAddress],
		Phone:          v[settingCompanyPhone],
		Email:          v[settingCompanyEmail],
		BankAccount:    v[settingCompanyBankAccount],
	}
}
