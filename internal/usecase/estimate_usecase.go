package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"sales_contract/internal/domain/contractno"
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"
)

// IEstimateResolver looks an estimate up across the estimate sources.
type IEstimateResolver interface {
	Resolve(ctx context.Context, estimateNo string) (entities.Estimate, error)
}

// EstimateSource is anything that can return an estimate by number.
// A zero-value Estimate means not found.
type EstimateSource interface {
	GetByEstimateNo(ctx context.Context, estimateNo string) (entities.Estimate, error)
}

// EstimateResolver tries each source in order and returns the first hit.
type EstimateResolver struct {
	sources []EstimateSource
}

var _ IEstimateResolver = (*EstimateResolver)(nil)

// NewEstimateResolver chains the primary store with its fallbacks.
func NewEstimateResolver(primary EstimateSource, fallbacks ...EstimateSource) *EstimateResolver {
	sources := make([]EstimateSource, 0, 1+len(fallbacks))
	for _, s := range append([]EstimateSource{primary}, fallbacks...) {
		if s != nil {
			sources = append(sources, s)
		}
	}
	return &EstimateResolver{sources: sources}
}

func (r *EstimateResolver) Resolve(ctx context.Context, estimateNo string) (entities.Estimate, error) {
	estimateNo = strings.TrimSpace(estimateNo)
	if estimateNo == "" {
		return entities.Estimate{}, opErr("resolve estimate", "", ErrValidation)
	}
	for i, src := range r.sources {
		e, err := src.GetByEstimateNo(ctx, estimateNo)
		if err != nil {
			return entities.Estimate{}, opErr("resolve estimate", estimateNo, err)
		}
		if e.EstimateNo != "" {
			if i > 0 {
				log.Printf("[estimate][resolver] resolved from fallback source=%d estimate_no=%s", i, estimateNo)
			}
			return e, nil
		}
	}
	return entities.Estimate{}, opErr("resolve estimate", estimateNo, ErrEstimateNotFound)
}

// IEstimateUseCase manages the awaiting-contract queue.
type IEstimateUseCase interface {
	Enqueue(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	ListPending(ctx context.Context) ([]entities.Estimate, error)
	GetPending(ctx context.Context, estimateNo string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	pending   interfaces.IPendingEstimateRepository
	sequencer *contractno.Sequencer
	now       func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(pending interfaces.IPendingEstimateRepository) *EstimateUseCase {
	u := &EstimateUseCase{pending: pending, now: defaultClock}
	if pending != nil {
		u.sequencer = contractno.NewSequencer(contractno.PrefixEstimate, pending.ListEstimateNos)
	}
	return u
}

// Enqueue adds an approved estimate to the awaiting-contract collection.
// Estimates that arrive without a number get one from the E-sequence.
func (u *EstimateUseCase) Enqueue(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.EstimateNo = strings.TrimSpace(e.EstimateNo)
	now := u.now()
	if e.EstimateNo == "" {
		no, err := u.sequencer.Next(ctx, now)
		if err != nil {
			log.Printf("[estimate][usecase] sequence failed err=%v", err)
			return entities.Estimate{}, opErr("enqueue estimate", "", withCause(ErrIdentifierCollision, err))
		}
		e.EstimateNo = no
	}
	if e.Status == "" {
		e.Status = entities.EstimateStatusApproved
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	saved, err := u.pending.Put(ctx, e)
	if err != nil {
		return entities.Estimate{}, opErr("enqueue estimate", e.EstimateNo, err)
	}
	log.Printf("[estimate][usecase] enqueued estimate_no=%s rows=%d", saved.EstimateNo, len(saved.Rows))
	return saved, nil
}

func (u *EstimateUseCase) ListPending(ctx context.Context) ([]entities.Estimate, error) {
	return u.pending.List(ctx)
}

func (u *EstimateUseCase) GetPending(ctx context.Context, estimateNo string) (entities.Estimate, error) {
	estimateNo = strings.TrimSpace(estimateNo)
	if estimateNo == "" {
		return entities.Estimate{}, opErr("get pending estimate", "", ErrValidation)
	}
	e, err := u.pending.GetByEstimateNo(ctx, estimateNo)
	if err != nil {
		return entities.Estimate{}, opErr("get pending estimate", estimateNo, err)
	}
	if e.EstimateNo == "" {
		return entities.Estimate{}, opErr("get pending estimate", estimateNo, ErrEstimateNotFound)
	}
	return e, nil
}
