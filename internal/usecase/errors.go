package usecase

import (
	"errors"
	"fmt"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/domain/workflow"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidAgreement    = workflow.ErrInvalidAgreement
	ErrInvalidTransition   = workflow.ErrInvalidTransition
	ErrWorkflowClosed      = workflow.ErrClosed
	ErrIdentifierCollision = errors.New("identifier collision")
	ErrScheduleSyncFailed  = errors.New("schedule sync failed")

	ErrContractNotFound = errors.New("contract not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrEstimateNotFound = errors.New("estimate not found")
	ErrSessionNotFound  = errors.New("workflow session not found")

	ErrDepositChargeNotFound = errors.New("deposit charge not found")
	ErrInvalidDeposit        = errors.New("contract has no deposit to charge")
)

// OpError names the operation and identifier a failure belongs to, so the
// message can be shown as is.
type OpError struct {
	Op  string
	ID  string
	Err error
}

func (e *OpError) Error() string {
	if e.ID == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.ID, e.Err.Error())
}

func (e *OpError) Unwrap() error { return e.Err }

func opErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	var existing *OpError
	if errors.As(err, &existing) {
		return err
	}
	return &OpError{Op: op, ID: id, Err: err}
}

func errUnknownStatus(s entities.ContractStatus) error {
	return fmt.Errorf("unknown contract status %q", s)
}

func errUnknownPaymentMethod(m entities.PaymentMethod) error {
	return fmt.Errorf("unknown payment method %q", m)
}

func errKey(key string) error {
	return fmt.Errorf("key %q", key)
}
