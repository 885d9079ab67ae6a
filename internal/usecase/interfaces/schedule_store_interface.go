package interfaces

import (
	"context"
	"errors"
	"sales_contract/internal/domain/entities"
)

// ErrScheduleEntryNotFound is returned by Update when the id is unknown to the store.
var ErrScheduleEntryNotFound = errors.New("schedule entry not found")

// IScheduleStore is the external appointment service.
type IScheduleStore interface {
	List(ctx context.Context) ([]entities.ScheduleEntry, error)
	Create(ctx context.Context, e entities.ScheduleEntry) (entities.ScheduleEntry, error)
	Update(ctx context.Context, id string, e entities.ScheduleEntry) (entities.ScheduleEntry, error)
}
