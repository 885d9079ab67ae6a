package document

import (
	_ "embed"
	"fmt"

	"sales_contract/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

const (
	TemplateMinimal  = "minimal"
	TemplateDetailed = "detailed"
	TemplateFull     = "full"

	DefaultTemplateKey = TemplateDetailed
)

//go:embed templates.yaml
var builtinTemplatesYAML []byte

var builtinTemplates = mustParseTemplates(builtinTemplatesYAML)

// BuiltinTemplates returns fresh copies of the default templates in declaration order.
func BuiltinTemplates() []entities.Template {
	out := make([]entities.Template, 0, len(builtinTemplates))
	for _, t := range builtinTemplates {
		t.Fields = append([]string(nil), t.Fields...)
		out = append(out, t)
	}
	return out
}

// ParseTemplates decodes a YAML list of templates.
func ParseTemplates(data []byte) ([]entities.Template, error) {
	var out []entities.Template
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("document: parse templates: %w", err)
	}
	for i, t := range out {
		if t.Key == "" {
			return nil, fmt.Errorf("document: template %d has no key", i)
		}
	}
	return out, nil
}

func mustParseTemplates(data []byte) []entities.Template {
	out, err := ParseTemplates(data)
	if err != nil {
		panic(err)
	}
	return out
}
