package entities

import (
	"math"
	"time"
)

// ContractStatus represents the lifecycle of a sales contract.
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "draft"
	ContractStatusPending    ContractStatus = "pending"
	ContractStatusSigned     ContractStatus = "signed"
	ContractStatusCompleted  ContractStatus = "completed"
	ContractStatusCancelled  ContractStatus = "cancelled"
	ContractStatusInProgress ContractStatus = "in_progress"
)

var contractStatuses = map[ContractStatus]struct{}{
	ContractStatusDraft:      {},
	ContractStatusPending:    {},
	ContractStatusSigned:     {},
	ContractStatusCompleted:  {},
	ContractStatusCancelled:  {},
	ContractStatusInProgress: {},
}

func (s ContractStatus) Valid() bool {
	_, ok := contractStatuses[s]
	return ok
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

type AgreementMethod string

const (
	AgreementMethodSignature AgreementMethod = "signature"
	AgreementMethodCheckbox  AgreementMethod = "checkbox"
)

// ScheduleSyncStatus records the outcome of the last schedule reconciliation.
type ScheduleSyncStatus string

const (
	ScheduleSyncNone      ScheduleSyncStatus = ""
	ScheduleSyncSynced    ScheduleSyncStatus = "synced"
	ScheduleSyncFailed    ScheduleSyncStatus = "failed"
	ScheduleSyncCancelled ScheduleSyncStatus = "cancelled"
)

// PaymentRecord holds the agreed payment terms.
//
// RemainingAmount is derived. Call Recompute after touching either operand;
// it is never taken from input.
type PaymentRecord struct {
	TotalAmount      float64       `json:"total_amount"`
	DiscountedAmount float64       `json:"discounted_amount"`
	DepositAmount    float64       `json:"deposit_amount"`
	RemainingAmount  float64       `json:"remaining_amount"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	PaymentDate      string        `json:"payment_date"`
	MeasurementDate  string        `json:"measurement_date,omitempty"`
	ConstructionDate string        `json:"construction_date,omitempty"`
	Memo             string        `json:"memo,omitempty"`
}

// Recompute coerces non-finite amounts to zero and derives RemainingAmount.
// No clamping: a discount below the deposit yields a negative remainder.
func (p *PaymentRecord) Recompute() {
	p.TotalAmount = finiteOrZero(p.TotalAmount)
	p.DiscountedAmount = finiteOrZero(p.DiscountedAmount)
	p.DepositAmount = finiteOrZero(p.DepositAmount)
	p.RemainingAmount = p.DiscountedAmount - p.DepositAmount
}

// AgreementRecord captures how the customer agreed to the contract.
type AgreementRecord struct {
	Agreed    bool            `json:"agreed"`
	Method    AgreementMethod `json:"method"`
	Signature string          `json:"signature,omitempty"`
	AgreedAt  time.Time       `json:"agreed_at"`
}

// Valid enforces the signature payload rule.
func (a AgreementRecord) Valid() bool {
	switch a.Method {
	case AgreementMethodSignature:
		return a.Signature != ""
	case AgreementMethodCheckbox:
		return true
	}
	return false
}

// Contract is the sales contract persisted by the contract service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_no-index): estimate_no
//
// EstimateNo always holds the origin estimate number, so a final variant
// finds the contract of the estimate it revises.
type Contract struct {
	ID           string         `json:"id"`
	ContractNo   string         `json:"contract_no"`
	EstimateNo   string         `json:"estimate_no"`
	ContractDate string         `json:"contract_date"`
	CustomerName string         `json:"customer_name"`
	Contact      string         `json:"contact"`
	Address      string         `json:"address"`
	ProjectName  string         `json:"project_name"`
	ProjectType  string         `json:"project_type"`
	Status       ContractStatus `json:"status"`
	Rows         []LineItem     `json:"rows"`

	PaymentRecord
	Agreement AgreementRecord `json:"agreement"`

	ScheduleSyncStatus ScheduleSyncStatus `json:"schedule_sync_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
