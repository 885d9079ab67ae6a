package entities

import (
	"strings"
	"time"
)

// EstimateStatus represents the lifecycle of an estimate as seen by the contract service.
//
// Domain notes:
//   - Estimates are owned by the external estimate system; this service only
//     writes back the "contracted" marker once a contract exists.
type EstimateStatus string

const (
	EstimateStatusPending    EstimateStatus = "pending"
	EstimateStatusApproved   EstimateStatus = "approved"
	EstimateStatusContracted EstimateStatus = "contracted"
)

// FinalMarker separates the origin estimate number from a final-variant suffix.
// "E20250101-001-final" is the final variant of "E20250101-001".
const FinalMarker = "-final"

// LineItem is one priced row of an estimate.
//
// Numeric zero means "absent" on every field except TotalPrice, where a nil
// pointer is absent and zero marks a service item with no charge.
type LineItem struct {
	Space         string   `json:"space"`
	Brand         string   `json:"brand"`
	ProductCode   string   `json:"product_code"`
	ProductName   string   `json:"product_name"`
	ProductType   string   `json:"product_type"`
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	Area          float64  `json:"area"`
	PleatCount    float64  `json:"pleat_count"`
	PleatWidth    float64  `json:"pleat_width"`
	PleatMultiple float64  `json:"pleat_multiple"`
	Quantity      float64  `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	TotalPrice    *float64 `json:"total_price,omitempty"`
	Note          string   `json:"note"`
}

// Estimate is the approved price proposal a contract is derived from.
//
// Storage model (DynamoDB):
//   - PK: estimate_no
//
// The same shape is stored in the external estimates table and in the
// awaiting-contract table.
type Estimate struct {
	EstimateNo       string         `json:"estimate_no"`
	CustomerName     string         `json:"customer_name"`
	Contact          string         `json:"contact"`
	Address          string         `json:"address"`
	ProjectName      string         `json:"project_name"`
	ProjectType      string         `json:"project_type"`
	Rows             []LineItem     `json:"rows"`
	TotalAmount      float64        `json:"total_amount"`
	DiscountedAmount float64        `json:"discounted_amount,omitempty"`
	Status           EstimateStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IsFinalVariant reports whether the estimate number carries the final marker.
func IsFinalVariant(estimateNo string) bool {
	return strings.Contains(estimateNo, FinalMarker)
}

// OriginEstimateNo strips the final-variant suffix. Non-final numbers are returned as-is.
func OriginEstimateNo(estimateNo string) string {
	if i := strings.Index(estimateNo, FinalMarker); i > 0 {
		return estimateNo[:i]
	}
	return estimateNo
}

func (e Estimate) IsFinalVariant() bool {
	return IsFinalVariant(e.EstimateNo)
}

func (e Estimate) OriginEstimateNo() string {
	return OriginEstimateNo(e.EstimateNo)
}

// EffectiveAmount is the discounted amount when one was quoted, otherwise the total.
func (e Estimate) EffectiveAmount() float64 {
	if e.DiscountedAmount > 0 {
		return e.DiscountedAmount
	}
	return e.TotalAmount
}
