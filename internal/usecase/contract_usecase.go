package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"sales_contract/internal/domain/contractno"
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// StatusFilterAll disables the status predicate of ListFiltered.
const StatusFilterAll = "all"

// ContractPatch is a field-level edit. Nil fields are left alone.
// RemainingAmount is deliberately absent: it is always derived.
type ContractPatch struct {
	ContractDate     *string
	CustomerName     *string
	Contact          *string
	Address          *string
	ProjectName      *string
	ProjectType      *string
	Status           *entities.ContractStatus
	TotalAmount      *float64
	DiscountedAmount *float64
	DepositAmount    *float64
	PaymentMethod    *entities.PaymentMethod
	PaymentDate      *string
	MeasurementDate  *string
	ConstructionDate *string
	Memo             *string
}

// IContractUseCase is the contract lifecycle manager.
type IContractUseCase interface {
	Create(ctx context.Context, estimate entities.Estimate, payment entities.PaymentRecord, agreement entities.AgreementRecord) (entities.Contract, error)
	Update(ctx context.Context, id string, patch ContractPatch) (entities.Contract, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	FindByEstimate(ctx context.Context, estimateNo string) (entities.Contract, error)
	ListFiltered(ctx context.Context, search, status string) ([]entities.Contract, error)
}

type ContractUseCase struct {
	repo      interfaces.IContractRepository
	estimates interfaces.IEstimateRepository
	sequencer *contractno.Sequencer
	now       func() time.Time
	newID     func() string
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, estimates interfaces.IEstimateRepository) *ContractUseCase {
	u := &ContractUseCase{repo: repo, estimates: estimates, now: defaultClock, newID: newContractID}
	if repo != nil {
		u.sequencer = contractno.NewSequencer(contractno.PrefixContract, repo.ListContractNos)
	}
	return u
}

// WithClock replaces the time source. Used by tests and the retry job.
func (u *ContractUseCase) WithClock(now func() time.Time) *ContractUseCase {
	u.now = now
	return u
}

// Create stores the contract for a finalized workflow.
//
// A final-variant estimate whose origin already has a contract updates that
// contract in place (same id and number, createdAt kept). Everything else
// gets a new contract with the next C-number and status signed.
func (u *ContractUseCase) Create(ctx context.Context, estimate entities.Estimate, payment entities.PaymentRecord, agreement entities.AgreementRecord) (entities.Contract, error) {
	estimateNo := strings.TrimSpace(estimate.EstimateNo)
	if estimateNo == "" {
		return entities.Contract{}, opErr("create contract", "", ErrValidation)
	}
	estimate.EstimateNo = estimateNo
	origin := estimate.OriginEstimateNo()
	now := u.now()
	payment.Recompute()

	log.Printf("[contract][usecase] create start estimate_no=%s origin=%s final=%t", estimateNo, origin, estimate.IsFinalVariant())

	if estimate.IsFinalVariant() {
		existing, err := u.repo.GetByEstimateNo(ctx, origin)
		if err != nil {
			log.Printf("[contract][usecase] lookup by origin failed origin=%s err=%v", origin, err)
			return entities.Contract{}, opErr("create contract", estimateNo, err)
		}
		if existing.ID != "" {
			return u.supersede(ctx, existing, estimate, payment, agreement, now)
		}
	}

	no, err := u.sequencer.Next(ctx, now)
	if err != nil {
		log.Printf("[contract][usecase] contract number allocation failed estimate_no=%s err=%v", estimateNo, err)
		return entities.Contract{}, opErr("create contract", estimateNo, withCause(ErrIdentifierCollision, err))
	}

	c := entities.Contract{
		ID:           u.newID(),
		ContractNo:   no,
		EstimateNo:   origin,
		ContractDate: now.Format(time.DateOnly),
		Status:       entities.ContractStatusSigned,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	copyEstimate(&c, estimate)
	c.PaymentRecord = payment
	c.Agreement = agreement
	c.Recompute()

	created, err := u.repo.Create(ctx, c, estimateNo)
	if err != nil {
		log.Printf("[contract][usecase] repository create failed contract_no=%s err=%v", no, err)
		return entities.Contract{}, opErr("create contract", estimateNo, err)
	}
	u.markContracted(ctx, estimateNo)
	log.Printf("[contract][usecase] create success id=%s contract_no=%s remaining=%.0f", created.ID, created.ContractNo, created.RemainingAmount)
	return created, nil
}

func (u *ContractUseCase) supersede(ctx context.Context, existing entities.Contract, estimate entities.Estimate, payment entities.PaymentRecord, agreement entities.AgreementRecord, now time.Time) (entities.Contract, error) {
	c := existing
	copyEstimate(&c, estimate)
	c.PaymentRecord = payment
	c.Agreement = agreement
	c.Recompute()
	c.UpdatedAt = now

	saved, err := u.repo.Supersede(ctx, c, estimate.EstimateNo)
	if err != nil {
		log.Printf("[contract][usecase] supersede failed contract_no=%s err=%v", c.ContractNo, err)
		return entities.Contract{}, opErr("create contract", estimate.EstimateNo, err)
	}
	if saved.ID == "" {
		return entities.Contract{}, opErr("create contract", estimate.EstimateNo, ErrContractNotFound)
	}
	u.markContracted(ctx, estimate.EstimateNo)
	log.Printf("[contract][usecase] superseded id=%s contract_no=%s by estimate_no=%s", saved.ID, saved.ContractNo, estimate.EstimateNo)
	return saved, nil
}

// markContracted writes the status back to the estimate store. The contract
// is already committed, so a failure here is only logged.
func (u *ContractUseCase) markContracted(ctx context.Context, estimateNo string) {
	if u.estimates == nil {
		return
	}
	e, err := u.estimates.MarkContracted(ctx, estimateNo)
	if err != nil {
		log.Printf("[contract][usecase] mark estimate contracted failed estimate_no=%s err=%v", estimateNo, err)
		return
	}
	if e.EstimateNo == "" {
		log.Printf("[contract][usecase] estimate not in estimate store; status not written estimate_no=%s", estimateNo)
	}
}

// Update applies a patch and always recomputes the remaining amount.
func (u *ContractUseCase) Update(ctx context.Context, id string, patch ContractPatch) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, opErr("update contract", "", ErrValidation)
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, opErr("update contract", id, err)
	}
	if c.ID == "" {
		return entities.Contract{}, opErr("update contract", id, ErrContractNotFound)
	}

	if err := applyPatch(&c, patch); err != nil {
		return entities.Contract{}, opErr("update contract", id, err)
	}
	c.Recompute()
	c.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		log.Printf("[contract][usecase] update failed id=%s err=%v", id, err)
		return entities.Contract{}, opErr("update contract", id, err)
	}
	if updated.ID == "" {
		return entities.Contract{}, opErr("update contract", id, ErrContractNotFound)
	}
	log.Printf("[contract][usecase] update success id=%s status=%s remaining=%.0f", updated.ID, updated.Status, updated.RemainingAmount)
	return updated, nil
}

// Delete removes the contract permanently. The originating estimate is not
// returned to the awaiting-contract collection.
func (u *ContractUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return opErr("delete contract", "", ErrValidation)
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return opErr("delete contract", id, err)
	}
	if !deleted {
		return opErr("delete contract", id, ErrContractNotFound)
	}
	log.Printf("[contract][usecase] deleted id=%s", id)
	return nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, opErr("get contract", "", ErrValidation)
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, opErr("get contract", id, err)
	}
	if c.ID == "" {
		return entities.Contract{}, opErr("get contract", id, ErrContractNotFound)
	}
	return c, nil
}

// FindByEstimate accepts either the origin number or a final variant of it.
func (u *ContractUseCase) FindByEstimate(ctx context.Context, estimateNo string) (entities.Contract, error) {
	estimateNo = strings.TrimSpace(estimateNo)
	if estimateNo == "" {
		return entities.Contract{}, opErr("find contract by estimate", "", ErrValidation)
	}
	c, err := u.repo.GetByEstimateNo(ctx, entities.OriginEstimateNo(estimateNo))
	if err != nil {
		return entities.Contract{}, opErr("find contract by estimate", estimateNo, err)
	}
	if c.ID == "" {
		return entities.Contract{}, opErr("find contract by estimate", estimateNo, ErrContractNotFound)
	}
	return c, nil
}

// ListFiltered matches search case-sensitively against contract number,
// customer name and project name, and status exactly unless it is "all" or
// empty. Newest contracts come first.
func (u *ContractUseCase) ListFiltered(ctx context.Context, search, status string) ([]entities.Contract, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, opErr("list contracts", "", err)
	}

	out := make([]entities.Contract, 0, len(all))
	for _, c := range all {
		if status != "" && status != StatusFilterAll && string(c.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(c.ContractNo, search) &&
			!strings.Contains(c.CustomerName, search) &&
			!strings.Contains(c.ProjectName, search) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ContractNo > out[j].ContractNo
	})
	return out, nil
}

func copyEstimate(c *entities.Contract, e entities.Estimate) {
	c.CustomerName = e.CustomerName
	c.Contact = e.Contact
	c.Address = e.Address
	c.ProjectName = e.ProjectName
	c.ProjectType = e.ProjectType
	c.Rows = append([]entities.LineItem(nil), e.Rows...)
}

func applyPatch(c *entities.Contract, p ContractPatch) error {
	if p.Status != nil {
		if !p.Status.Valid() {
			return withCause(ErrValidation, errUnknownStatus(*p.Status))
		}
		c.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		if !p.PaymentMethod.Valid() {
			return withCause(ErrValidation, errUnknownPaymentMethod(*p.PaymentMethod))
		}
		c.PaymentMethod = *p.PaymentMethod
	}
	if p.MeasurementDate != nil {
		if v := strings.TrimSpace(*p.MeasurementDate); v != "" {
			if _, _, err := entities.ParseMeasurementDate(v); err != nil {
				return withCause(ErrValidation, err)
			}
		}
	}
	setString(&c.ContractDate, p.ContractDate)
	setString(&c.CustomerName, p.CustomerName)
	setString(&c.Contact, p.Contact)
	setString(&c.Address, p.Address)
	setString(&c.ProjectName, p.ProjectName)
	setString(&c.ProjectType, p.ProjectType)
	setString(&c.PaymentDate, p.PaymentDate)
	setString(&c.MeasurementDate, p.MeasurementDate)
	setString(&c.ConstructionDate, p.ConstructionDate)
	setString(&c.Memo, p.Memo)
	setFloat(&c.TotalAmount, p.TotalAmount)
	setFloat(&c.DiscountedAmount, p.DiscountedAmount)
	setFloat(&c.DepositAmount, p.DepositAmount)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func newContractID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
