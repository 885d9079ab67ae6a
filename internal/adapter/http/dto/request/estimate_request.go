package request

import (
	"strings"

	"sales_contract/internal/domain/entities"
)

type LineItemRequest struct {
	Space         string        `json:"space"`
	Brand         string        `json:"brand"`
	ProductCode   string        `json:"product_code"`
	ProductName   string        `json:"product_name"`
	ProductType   string        `json:"product_type"`
	Width         LenientFloat  `json:"width" swaggertype:"number"`
	Height        LenientFloat  `json:"height" swaggertype:"number"`
	Area          LenientFloat  `json:"area" swaggertype:"number"`
	PleatCount    LenientFloat  `json:"pleat_count" swaggertype:"number"`
	PleatWidth    LenientFloat  `json:"pleat_width" swaggertype:"number"`
	PleatMultiple LenientFloat  `json:"pleat_multiple" swaggertype:"number"`
	Quantity      LenientFloat  `json:"quantity" swaggertype:"number"`
	UnitPrice     LenientFloat  `json:"unit_price" swaggertype:"number"`
	TotalPrice    *LenientFloat `json:"total_price" swaggertype:"number"`
	Note          string        `json:"note"`
}

// EstimateEnqueueRequest adds an approved estimate to the awaiting-contract
// queue. estimate_no is generated when empty.
type EstimateEnqueueRequest struct {
	EstimateNo       string            `json:"estimate_no"`
	CustomerName     string            `json:"customer_name" binding:"required"`
	Contact          string            `json:"contact"`
	Address          string            `json:"address"`
	ProjectName      string            `json:"project_name"`
	ProjectType      string            `json:"project_type"`
	Rows             []LineItemRequest `json:"rows"`
	TotalAmount      LenientFloat      `json:"total_amount" swaggertype:"number"`
	DiscountedAmount LenientFloat      `json:"discounted_amount" swaggertype:"number"`
}

func (r EstimateEnqueueRequest) ToEntity() entities.Estimate {
	rows := make([]entities.LineItem, 0, len(r.Rows))
	for _, it := range r.Rows {
		rows = append(rows, entities.LineItem{
			Space:         strings.TrimSpace(it.Space),
			Brand:         strings.TrimSpace(it.Brand),
			ProductCode:   strings.TrimSpace(it.ProductCode),
			ProductName:   strings.TrimSpace(it.ProductName),
			ProductType:   strings.TrimSpace(it.ProductType),
			Width:         float64(it.Width),
			Height:        float64(it.Height),
			Area:          float64(it.Area),
			PleatCount:    float64(it.PleatCount),
			PleatWidth:    float64(it.PleatWidth),
			PleatMultiple: float64(it.PleatMultiple),
			Quantity:      float64(it.Quantity),
			UnitPrice:     float64(it.UnitPrice),
			TotalPrice:    it.TotalPrice.Ptr(),
			Note:          it.Note,
		})
	}
	return entities.Estimate{
		EstimateNo:       strings.TrimSpace(r.EstimateNo),
		CustomerName:     strings.TrimSpace(r.CustomerName),
		Contact:          strings.TrimSpace(r.Contact),
		Address:          strings.TrimSpace(r.Address),
		ProjectName:      strings.TrimSpace(r.ProjectName),
		ProjectType:      strings.TrimSpace(r.ProjectType),
		Rows:             rows,
		TotalAmount:      float64(r.TotalAmount),
		DiscountedAmount: float64(r.DiscountedAmount),
	}
}
