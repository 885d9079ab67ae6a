package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales_contract/internal/domain/entities"
)

var now = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type finalizerFunc func(ctx context.Context, e entities.Estimate, p entities.PaymentRecord, a entities.AgreementRecord) (entities.Contract, error)

func (f finalizerFunc) Create(ctx context.Context, e entities.Estimate, p entities.PaymentRecord, a entities.AgreementRecord) (entities.Contract, error) {
	return f(ctx, e, p, a)
}

func newWorkflow() *Workflow {
	return New(entities.Estimate{EstimateNo: "E20250101-001", TotalAmount: 1000000}, now)
}

func TestNew_Defaults(t *testing.T) {
	w := newWorkflow()
	p := w.Payment()
	if w.Stage() != StageAwaitingPayment {
		t.Fatalf("expected awaiting payment, got %s", w.Stage())
	}
	if p.DiscountedAmount != 1000000 || p.DepositAmount != 0 || p.RemainingAmount != 1000000 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.PaymentMethod != entities.PaymentMethodCash || p.PaymentDate != "2025-01-01" {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	w2 := New(entities.Estimate{TotalAmount: 1000000, DiscountedAmount: 950000}, now)
	if w2.Payment().DiscountedAmount != 950000 {
		t.Fatalf("expected estimate discount as default, got %+v", w2.Payment())
	}
}

func TestSubmitPayment(t *testing.T) {
	t.Run("derives remaining", func(t *testing.T) {
		w := newWorkflow()
		p, issues, err := w.SubmitPayment(PaymentInput{DepositAmount: "300,000", PaymentMethod: "transfer"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(issues) != 0 {
			t.Fatalf("unexpected issues: %+v", issues)
		}
		if p.RemainingAmount != 700000 || p.PaymentMethod != entities.PaymentMethodTransfer {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if w.Stage() != StageAwaitingAgreement {
			t.Fatalf("expected awaiting agreement, got %s", w.Stage())
		}
	})

	t.Run("rejects malformed and negative, keeps previous", func(t *testing.T) {
		w := newWorkflow()
		p, issues, err := w.SubmitPayment(PaymentInput{
			DiscountedAmount: "abc",
			DepositAmount:    "-5",
			PaymentMethod:    "bitcoin",
			PaymentDate:      "01/02/2025",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(issues) != 4 {
			t.Fatalf("expected 4 issues, got %+v", issues)
		}
		if p.DiscountedAmount != 1000000 || p.DepositAmount != 0 || p.RemainingAmount != 1000000 {
			t.Fatalf("expected previous values retained, got %+v", p)
		}
		if p.PaymentMethod != entities.PaymentMethodCash || p.PaymentDate != "2025-01-01" {
			t.Fatalf("expected previous values retained, got %+v", p)
		}
	})

	t.Run("unparseable measurement date keeps previous", func(t *testing.T) {
		w := newWorkflow()
		if _, issues, _ := w.SubmitPayment(PaymentInput{MeasurementDate: "2025-01-15T09:00"}); len(issues) != 0 {
			t.Fatalf("unexpected issues: %+v", issues)
		}
		if err := w.Back(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p, issues, err := w.SubmitPayment(PaymentInput{MeasurementDate: "next tuesday", PaymentDate: "bogus"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(issues) != 2 {
			t.Fatalf("expected 2 issues, got %+v", issues)
		}
		fields := map[string]bool{}
		for _, is := range issues {
			fields[is.Field] = true
		}
		if !fields["measurement_date"] || !fields["payment_date"] {
			t.Fatalf("expected measurement_date and payment_date issues, got %+v", issues)
		}
		if p.MeasurementDate != "2025-01-15T09:00" || p.PaymentDate != "2025-01-01" {
			t.Fatalf("expected previous values retained, got %+v", p)
		}
	})

	t.Run("NaN is never stored", func(t *testing.T) {
		w := newWorkflow()
		p, issues, _ := w.SubmitPayment(PaymentInput{DepositAmount: "NaN", DiscountedAmount: "Inf"})
		if len(issues) != 2 || p.DepositAmount != 0 || p.DiscountedAmount != 1000000 {
			t.Fatalf("unexpected result %+v %+v", p, issues)
		}
	})

	t.Run("wrong stage", func(t *testing.T) {
		w := newWorkflow()
		_, _, _ = w.SubmitPayment(PaymentInput{})
		if _, _, err := w.SubmitPayment(PaymentInput{}); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestBack_PreservesPayment(t *testing.T) {
	w := newWorkflow()
	memo := "벽지 제외"
	if _, _, err := w.SubmitPayment(PaymentInput{DepositAmount: "300000", DiscountedAmount: "900000", Memo: &memo, MeasurementDate: "2025-01-15T09:00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Back(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Stage() != StageAwaitingPayment {
		t.Fatalf("expected awaiting payment, got %s", w.Stage())
	}
	p := w.Payment()
	if p.DepositAmount != 300000 || p.DiscountedAmount != 900000 || p.Memo != memo || p.MeasurementDate != "2025-01-15T09:00" {
		t.Fatalf("expected prefilled payment, got %+v", p)
	}

	p, _, err := w.SubmitPayment(PaymentInput{DepositAmount: "400000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RemainingAmount != 500000 || p.Memo != memo {
		t.Fatalf("unexpected payment after re-edit: %+v", p)
	}

	if err := newWorkflow().Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from awaiting payment, got %v", err)
	}
}

func TestSubmitAgreement(t *testing.T) {
	ready := func() *Workflow {
		w := newWorkflow()
		_, _, _ = w.SubmitPayment(PaymentInput{})
		return w
	}

	t.Run("signature without payload", func(t *testing.T) {
		w := ready()
		if _, err := w.SubmitAgreement(entities.AgreementMethodSignature, " ", now); !errors.Is(err, ErrInvalidAgreement) {
			t.Fatalf("expected ErrInvalidAgreement, got %v", err)
		}
		if w.Stage() != StageAwaitingAgreement {
			t.Fatalf("failed agreement must not advance, got %s", w.Stage())
		}
	})

	t.Run("signature with payload", func(t *testing.T) {
		w := ready()
		a, err := w.SubmitAgreement(entities.AgreementMethodSignature, "data:image/png;base64,xx", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !a.Agreed || a.Signature == "" || !a.Valid() {
			t.Fatalf("unexpected agreement: %+v", a)
		}
		if w.Stage() != StageReadyToFinalize {
			t.Fatalf("expected ready, got %s", w.Stage())
		}
	})

	t.Run("checkbox ignores payload", func(t *testing.T) {
		w := ready()
		a, err := w.SubmitAgreement(entities.AgreementMethodCheckbox, "ignored", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Signature != "" || !a.AgreedAt.Equal(now) {
			t.Fatalf("unexpected agreement: %+v", a)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		w := ready()
		if _, err := w.SubmitAgreement("stamp", "", now); !errors.Is(err, ErrInvalidAgreement) {
			t.Fatalf("expected ErrInvalidAgreement, got %v", err)
		}
	})

	t.Run("before payment", func(t *testing.T) {
		if _, err := newWorkflow().SubmitAgreement(entities.AgreementMethodCheckbox, "", now); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestFinalize(t *testing.T) {
	w := newWorkflow()
	_, _, _ = w.SubmitPayment(PaymentInput{DepositAmount: "300000"})
	_, _ = w.SubmitAgreement(entities.AgreementMethodCheckbox, "", now)

	boom := errors.New("db")
	if _, err := w.Finalize(context.Background(), finalizerFunc(func(context.Context, entities.Estimate, entities.PaymentRecord, entities.AgreementRecord) (entities.Contract, error) {
		return entities.Contract{}, boom
	})); !errors.Is(err, boom) {
		t.Fatalf("expected db error, got %v", err)
	}
	if w.Closed() {
		t.Fatalf("failed finalize must keep the workflow open")
	}

	var gotPayment entities.PaymentRecord
	c, err := w.Finalize(context.Background(), finalizerFunc(func(_ context.Context, e entities.Estimate, p entities.PaymentRecord, a entities.AgreementRecord) (entities.Contract, error) {
		gotPayment = p
		return entities.Contract{ID: "c-1", EstimateNo: e.EstimateNo, PaymentRecord: p, Agreement: a}, nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "c-1" || gotPayment.RemainingAmount != 700000 {
		t.Fatalf("unexpected contract: %+v", c)
	}
	if !w.Closed() {
		t.Fatalf("expected workflow closed")
	}
	if _, _, err := w.SubmitPayment(PaymentInput{}); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
