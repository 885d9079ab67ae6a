package interfaces

import (
	"context"
	"sales_contract/internal/domain/entities"
)

// IContractRepository abstracts persistence for Contract.
//
// Create and Supersede also remove pendingEstimateNo from the
// awaiting-contract collection in the same write. A zero-value Contract
// means not found.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract, pendingEstimateNo string) (entities.Contract, error)
	Supersede(ctx context.Context, c entities.Contract, pendingEstimateNo string) (entities.Contract, error)
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByEstimateNo(ctx context.Context, estimateNo string) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
	ListContractNos(ctx context.Context, prefix string) ([]string, error)
	ListByScheduleSyncStatus(ctx context.Context, status entities.ScheduleSyncStatus) ([]entities.Contract, error)
	UpdateScheduleSyncStatus(ctx context.Context, id string, status entities.ScheduleSyncStatus) error
	Delete(ctx context.Context, id string) (bool, error)
}
