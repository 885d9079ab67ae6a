package interfaces

import (
	"context"
	"sales_contract/internal/domain/entities"
)

// IDepositChargeRepository abstracts DynamoDB persistence for DepositCharge.
type IDepositChargeRepository interface {
	Create(ctx context.Context, c entities.DepositCharge) (entities.DepositCharge, error)
	GetByID(ctx context.Context, id string) (entities.DepositCharge, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.DepositCharge, error)
}
