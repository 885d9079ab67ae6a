package response

import (
	"time"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase"
)

type LineItemResponse struct {
	Space         string   `json:"space"`
	Brand         string   `json:"brand,omitempty"`
	ProductCode   string   `json:"product_code,omitempty"`
	ProductName   string   `json:"product_name"`
	ProductType   string   `json:"product_type,omitempty"`
	Width         float64  `json:"width,omitempty"`
	Height        float64  `json:"height,omitempty"`
	Area          float64  `json:"area,omitempty"`
	PleatCount    float64  `json:"pleat_count,omitempty"`
	PleatWidth    float64  `json:"pleat_width,omitempty"`
	PleatMultiple float64  `json:"pleat_multiple,omitempty"`
	Quantity      float64  `json:"quantity,omitempty"`
	UnitPrice     float64  `json:"unit_price,omitempty"`
	TotalPrice    *float64 `json:"total_price,omitempty"`
	Note          string   `json:"note,omitempty"`
}

type AgreementResponse struct {
	Agreed    bool      `json:"agreed"`
	Method    string    `json:"method"`
	Signature string    `json:"signature,omitempty"`
	AgreedAt  time.Time `json:"agreed_at"`
}

type ContractResponse struct {
	ID               string             `json:"id"`
	ContractNo       string             `json:"contract_no"`
	EstimateNo       string             `json:"estimate_no"`
	ContractDate     string             `json:"contract_date"`
	CustomerName     string             `json:"customer_name"`
	Contact          string             `json:"contact"`
	Address          string             `json:"address"`
	ProjectName      string             `json:"project_name"`
	ProjectType      string             `json:"project_type"`
	Status           string             `json:"status"`
	Rows             []LineItemResponse `json:"rows"`
	TotalAmount      float64            `json:"total_amount"`
	DiscountedAmount float64            `json:"discounted_amount"`
	DepositAmount    float64            `json:"deposit_amount"`
	RemainingAmount  float64            `json:"remaining_amount"`
	PaymentMethod    string             `json:"payment_method"`
	PaymentDate      string             `json:"payment_date"`
	MeasurementDate  string             `json:"measurement_date,omitempty"`
	ConstructionDate string             `json:"construction_date,omitempty"`
	Memo             string             `json:"memo,omitempty"`
	Agreement        AgreementResponse  `json:"agreement"`
	ScheduleSync     string             `json:"schedule_sync_status,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromLineItems(rows []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, LineItemResponse(r))
	}
	return out
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:               c.ID,
		ContractNo:       c.ContractNo,
		EstimateNo:       c.EstimateNo,
		ContractDate:     c.ContractDate,
		CustomerName:     c.CustomerName,
		Contact:          c.Contact,
		Address:          c.Address,
		ProjectName:      c.ProjectName,
		ProjectType:      c.ProjectType,
		Status:           string(c.Status),
		Rows:             FromLineItems(c.Rows),
		TotalAmount:      c.TotalAmount,
		DiscountedAmount: c.DiscountedAmount,
		DepositAmount:    c.DepositAmount,
		RemainingAmount:  c.RemainingAmount,
		PaymentMethod:    string(c.PaymentMethod),
		PaymentDate:      c.PaymentDate,
		MeasurementDate:  c.MeasurementDate,
		ConstructionDate: c.ConstructionDate,
		Memo:             c.Memo,
		Agreement: AgreementResponse{
			Agreed:    c.Agreement.Agreed,
			Method:    string(c.Agreement.Method),
			Signature: c.Agreement.Signature,
			AgreedAt:  c.Agreement.AgreedAt,
		},
		ScheduleSync: string(c.ScheduleSyncStatus),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromContracts(cs []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContract(c))
	}
	return out
}

type ScheduleSyncResponse struct {
	Action string              `json:"action"`
	Entry  ScheduleEntryResult `json:"entry"`
	Change *usecase.TimeChange `json:"change,omitempty"`
}

type ScheduleEntryResult struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

func FromSyncOutcome(o *usecase.SyncOutcome) *ScheduleSyncResponse {
	if o == nil {
		return nil
	}
	return &ScheduleSyncResponse{
		Action: string(o.Action),
		Entry: ScheduleEntryResult{
			ID:    o.Entry.ID,
			Title: o.Entry.Title,
			Date:  o.Entry.Date,
			Time:  o.Entry.Time,
		},
		Change: o.Change,
	}
}

// ContractMutationResponse is returned by edits and finalization. Schedule
// failures never fail the request; they are listed in warnings.
type ContractMutationResponse struct {
	Contract ContractResponse      `json:"contract"`
	Schedule *ScheduleSyncResponse `json:"schedule,omitempty"`
	Warnings []string              `json:"warnings"`
}

func NewContractMutationResponse(c entities.Contract, schedule *usecase.SyncOutcome, warnings []string) ContractMutationResponse {
	if warnings == nil {
		warnings = []string{}
	}
	return ContractMutationResponse{
		Contract: FromContract(c),
		Schedule: FromSyncOutcome(schedule),
		Warnings: warnings,
	}
}
