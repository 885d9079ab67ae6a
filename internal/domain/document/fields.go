// Package document turns a contract and a template into renderable sections.
package document

import (
	"sales_contract/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Catalog field keys.
const (
	FieldSpace         = "space"
	FieldBrand         = "brand"
	FieldProductCode   = "productCode"
	FieldProductName   = "productName"
	FieldProductType   = "productType"
	FieldWidth         = "width"
	FieldHeight        = "height"
	FieldArea          = "area"
	FieldPleatCount    = "pleatCount"
	FieldPleatWidth    = "pleatWidth"
	FieldPleatMultiple = "pleatMultiple"
	FieldQuantity      = "quantity"
	FieldUnitPrice     = "unitPrice"
	FieldTotalPrice    = "totalPrice"
	FieldNote          = "note"
)

const (
	Placeholder  = "-"
	ServiceLabel = "서비스"
)

var printer = message.NewPrinter(language.Korean)

// Formatter renders one line-item value. It must not fail: missing data
// degrades to Placeholder.
type Formatter func(item entities.LineItem) string

type Field struct {
	Key    string
	Label  string
	Format Formatter
}

// Registry maps catalog keys to formatters and keeps catalog order.
type Registry struct {
	fields map[string]Field
	order  []string
}

func NewRegistry(fields ...Field) *Registry {
	r := &Registry{fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		r.Register(f)
	}
	return r
}

// Register adds or replaces a field. Replacing keeps the original position.
func (r *Registry) Register(f Field) {
	if _, ok := r.fields[f.Key]; !ok {
		r.order = append(r.order, f.Key)
	}
	r.fields[f.Key] = f
}

// Keys returns the catalog in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Label returns the column label; unknown keys are labelled with the key itself.
func (r *Registry) Label(key string) string {
	if f, ok := r.fields[key]; ok {
		return f.Label
	}
	return key
}

// Resolve formats a line-item field. Unknown keys render the placeholder.
func (r *Registry) Resolve(item entities.LineItem, key string) string {
	f, ok := r.fields[key]
	if !ok || f.Format == nil {
		return Placeholder
	}
	return f.Format(item)
}

var defaultRegistry = NewRegistry(
	Field{Key: FieldSpace, Label: "공간", Format: text(func(i entities.LineItem) string { return i.Space })},
	Field{Key: FieldBrand, Label: "브랜드", Format: text(func(i entities.LineItem) string { return i.Brand })},
	Field{Key: FieldProductCode, Label: "제품코드", Format: text(func(i entities.LineItem) string { return i.ProductCode })},
	Field{Key: FieldProductName, Label: "제품명", Format: text(func(i entities.LineItem) string { return i.ProductName })},
	Field{Key: FieldProductType, Label: "제품유형", Format: text(func(i entities.LineItem) string { return i.ProductType })},
	Field{Key: FieldWidth, Label: "가로", Format: measure(func(i entities.LineItem) float64 { return i.Width }, 0, "mm")},
	Field{Key: FieldHeight, Label: "세로", Format: measure(func(i entities.LineItem) float64 { return i.Height }, 0, "mm")},
	Field{Key: FieldArea, Label: "면적", Format: measure(func(i entities.LineItem) float64 { return i.Area }, 2, "㎡")},
	Field{Key: FieldPleatCount, Label: "폭수", Format: measure(func(i entities.LineItem) float64 { return i.PleatCount }, 1, "폭")},
	Field{Key: FieldPleatWidth, Label: "주름폭", Format: measure(func(i entities.LineItem) float64 { return i.PleatWidth }, 1, "cm")},
	Field{Key: FieldPleatMultiple, Label: "배수", Format: measure(func(i entities.LineItem) float64 { return i.PleatMultiple }, 1, "배")},
	Field{Key: FieldQuantity, Label: "수량", Format: measure(func(i entities.LineItem) float64 { return i.Quantity }, 0, "")},
	Field{Key: FieldUnitPrice, Label: "단가", Format: measure(func(i entities.LineItem) float64 { return i.UnitPrice }, 0, "원")},
	Field{Key: FieldTotalPrice, Label: "금액", Format: formatTotalPrice},
	Field{Key: FieldNote, Label: "비고", Format: text(func(i entities.LineItem) string { return i.Note })},
)

// DefaultRegistry returns the registry for the fixed output-field catalog.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// ResolveFieldValue formats a field with the default catalog.
func ResolveFieldValue(item entities.LineItem, key string) string {
	return defaultRegistry.Resolve(item, key)
}

// FormatNumber groups digits the Korean way and trims to maxFrac decimals.
func FormatNumber(v float64, maxFrac int) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(maxFrac)))
}

// FormatWon renders an amount in won, e.g. 1,000,000원.
func FormatWon(v float64) string {
	return FormatNumber(v, 0) + "원"
}

func formatTotalPrice(i entities.LineItem) string {
	if i.TotalPrice == nil {
		return Placeholder
	}
	if *i.TotalPrice == 0 {
		return ServiceLabel
	}
	return FormatWon(*i.TotalPrice)
}

func text(get func(entities.LineItem) string) Formatter {
	return func(i entities.LineItem) string {
		if v := get(i); v != "" {
			return v
		}
		return Placeholder
	}
}

func measure(get func(entities.LineItem) float64, maxFrac int, unit string) Formatter {
	return func(i entities.LineItem) string {
		v := get(i)
		if v == 0 {
			return Placeholder
		}
		return FormatNumber(v, maxFrac) + unit
	}
}
