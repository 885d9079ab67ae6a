package interfaces

import (
	"context"
	"sales_contract/internal/domain/entities"
)

// IEstimateRepository reaches the external estimate store.
//
// The contract service only reads estimates and writes back the
// "contracted" marker once a contract exists. A zero-value Estimate means
// not found.
type IEstimateRepository interface {
	GetByEstimateNo(ctx context.Context, estimateNo string) (entities.Estimate, error)
	MarkContracted(ctx context.Context, estimateNo string) (entities.Estimate, error)
}

// IPendingEstimateRepository abstracts the awaiting-contract collection.
//
// Removal happens inside IContractRepository writes so the contract and the
// queue never disagree.
type IPendingEstimateRepository interface {
	Put(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByEstimateNo(ctx context.Context, estimateNo string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	ListEstimateNos(ctx context.Context, prefix string) ([]string, error)
}
