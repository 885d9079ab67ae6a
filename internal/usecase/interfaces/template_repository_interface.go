package interfaces

import (
	"context"
	"sales_contract/internal/domain/entities"
)

// ITemplateRepository stores customized templates. Built-ins live in code.
type ITemplateRepository interface {
	List(ctx context.Context) ([]entities.Template, error)
	Get(ctx context.Context, key string) (entities.Template, error)
	Put(ctx context.Context, t entities.Template) (entities.Template, error)
}

// ISettingsRepository is a flat key/value store for company profile,
// notice text and the selected template.
type ISettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
	PutMany(ctx context.Context, values map[string]string) error
}
