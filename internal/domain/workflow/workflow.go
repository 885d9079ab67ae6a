// Package workflow drives contract creation: payment terms, then customer
// agreement, then finalization.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"sales_contract/internal/domain/entities"
)

type Stage string

const (
	StageAwaitingPayment   Stage = "awaiting_payment"
	StageAwaitingAgreement Stage = "awaiting_agreement"
	StageReadyToFinalize   Stage = "ready_to_finalize"
)

var (
	ErrInvalidTransition = errors.New("invalid workflow transition")
	ErrInvalidAgreement  = errors.New("invalid agreement")
	ErrClosed            = errors.New("workflow already finalized")
)

// Issue describes an input that was rejected while the previous value was kept.
type Issue struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// PaymentInput carries raw form values. Empty strings leave the current value untouched.
type PaymentInput struct {
	DiscountedAmount string
	DepositAmount    string
	PaymentMethod    string
	PaymentDate      string
	MeasurementDate  string
	ConstructionDate string
	Memo             *string
}

// Finalizer turns the collected records into a contract.
type Finalizer interface {
	Create(ctx context.Context, estimate entities.Estimate, payment entities.PaymentRecord, agreement entities.AgreementRecord) (entities.Contract, error)
}

// Workflow is a single contract-creation session. It is not safe for
// concurrent use; callers serialize access.
type Workflow struct {
	stage     Stage
	closed    bool
	estimate  entities.Estimate
	payment   entities.PaymentRecord
	agreement entities.AgreementRecord
}

// New starts a workflow for an approved estimate with payment defaults:
// discounted = estimate discount (or total), deposit = 0, method = cash.
func New(estimate entities.Estimate, now time.Time) *Workflow {
	p := entities.PaymentRecord{
		TotalAmount:      estimate.TotalAmount,
		DiscountedAmount: estimate.EffectiveAmount(),
		PaymentMethod:    entities.PaymentMethodCash,
		PaymentDate:      now.Format(time.DateOnly),
	}
	p.Recompute()
	return &Workflow{stage: StageAwaitingPayment, estimate: estimate, payment: p}
}

func (w *Workflow) Stage() Stage                        { return w.stage }
func (w *Workflow) Closed() bool                        { return w.closed }
func (w *Workflow) Estimate() entities.Estimate         { return w.estimate }
func (w *Workflow) Payment() entities.PaymentRecord     { return w.payment }
func (w *Workflow) Agreement() entities.AgreementRecord { return w.agreement }

// SubmitPayment applies the payment form and moves to AwaitingAgreement.
// Rejected fields keep their previous value and are reported as issues.
func (w *Workflow) SubmitPayment(in PaymentInput) (entities.PaymentRecord, []Issue, error) {
	if err := w.expect(StageAwaitingPayment); err != nil {
		return entities.PaymentRecord{}, nil, err
	}

	var issues []Issue
	p := w.payment

	if v, issue, ok := parseAmount("discounted_amount", in.DiscountedAmount); ok {
		p.DiscountedAmount = v
	} else if issue != nil {
		issues = append(issues, *issue)
	}
	if v, issue, ok := parseAmount("deposit_amount", in.DepositAmount); ok {
		p.DepositAmount = v
	} else if issue != nil {
		issues = append(issues, *issue)
	}

	if m := strings.TrimSpace(in.PaymentMethod); m != "" {
		if method := entities.PaymentMethod(m); method.Valid() {
			p.PaymentMethod = method
		} else {
			issues = append(issues, Issue{Field: "payment_method", Value: m, Message: "unknown payment method"})
		}
	}

	if d, issue := parseDate("payment_date", in.PaymentDate); issue != nil {
		issues = append(issues, *issue)
	} else if d != "" {
		p.PaymentDate = d
	}
	if d, issue := parseDate("construction_date", in.ConstructionDate); issue != nil {
		issues = append(issues, *issue)
	} else if d != "" {
		p.ConstructionDate = d
	}
	if v := strings.TrimSpace(in.MeasurementDate); v != "" {
		if _, _, err := entities.ParseMeasurementDate(v); err != nil {
			issues = append(issues, Issue{Field: "measurement_date", Value: in.MeasurementDate, Message: "expected YYYY-MM-DD or YYYY-MM-DDTHH:MM"})
		} else {
			p.MeasurementDate = v
		}
	}
	if in.Memo != nil {
		p.Memo = *in.Memo
	}

	p.Recompute()
	w.payment = p
	w.stage = StageAwaitingAgreement
	return p, issues, nil
}

// Back returns from AwaitingAgreement to AwaitingPayment. Entered payment data is kept.
func (w *Workflow) Back() error {
	if err := w.expect(StageAwaitingAgreement); err != nil {
		return err
	}
	w.stage = StageAwaitingPayment
	return nil
}

// SubmitAgreement records the customer's agreement and moves to ReadyToFinalize.
// The signature method requires a payload; checkbox ignores it.
func (w *Workflow) SubmitAgreement(method entities.AgreementMethod, signature string, at time.Time) (entities.AgreementRecord, error) {
	if err := w.expect(StageAwaitingAgreement); err != nil {
		return entities.AgreementRecord{}, err
	}

	a := entities.AgreementRecord{Agreed: true, Method: method, AgreedAt: at}
	switch method {
	case entities.AgreementMethodSignature:
		if strings.TrimSpace(signature) == "" {
			return entities.AgreementRecord{}, fmt.Errorf("%w: signature method requires a signature payload", ErrInvalidAgreement)
		}
		a.Signature = signature
	case entities.AgreementMethodCheckbox:
	default:
		return entities.AgreementRecord{}, fmt.Errorf("%w: unknown method %q", ErrInvalidAgreement, method)
	}

	w.agreement = a
	w.stage = StageReadyToFinalize
	return a, nil
}

// Finalize hands the records to f and closes the workflow on success.
// On failure the workflow stays ReadyToFinalize so the call can be retried.
func (w *Workflow) Finalize(ctx context.Context, f Finalizer) (entities.Contract, error) {
	if err := w.expect(StageReadyToFinalize); err != nil {
		return entities.Contract{}, err
	}
	c, err := f.Create(ctx, w.estimate, w.payment, w.agreement)
	if err != nil {
		return entities.Contract{}, err
	}
	w.closed = true
	return c, nil
}

func (w *Workflow) expect(s Stage) error {
	if w.closed {
		return ErrClosed
	}
	if w.stage != s {
		return fmt.Errorf("%w: stage is %s, expected %s", ErrInvalidTransition, w.stage, s)
	}
	return nil
}

// parseAmount returns ok=false with a nil issue for empty input.
func parseAmount(field, raw string) (float64, *Issue, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &Issue{Field: field, Value: raw, Message: "not a number"}, false
	}
	if v < 0 {
		return 0, &Issue{Field: field, Value: raw, Message: "must not be negative"}, false
	}
	return v, nil, true
}

func parseDate(field, raw string) (string, *Issue) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", &Issue{Field: field, Value: raw, Message: "expected YYYY-MM-DD"}
	}
	return s, nil
}
