package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"sales_contract/internal/domain/address"
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"
)

// DefaultMeasurementTime is used when the measurement date carries no time.
const DefaultMeasurementTime = entities.DefaultMeasurementTime

var errScheduleStoreMissing = errors.New("schedule store not configured")

type Decision int

const (
	DecisionCancel Decision = iota
	DecisionConfirm
)

// TimeChange is what the caller is asked to confirm before an existing
// appointment is moved.
type TimeChange struct {
	ContractID string `json:"contract_id"`
	EstimateNo string `json:"estimate_no"`
	EntryID    string `json:"entry_id"`
	FromDate   string `json:"from_date"`
	FromTime   string `json:"from_time"`
	ToDate     string `json:"to_date"`
	ToTime     string `json:"to_time"`
}

// Confirmer decides whether a rescheduling may proceed. It runs before any
// remote write; returning an error aborts the sync the same way Cancel does.
type Confirmer func(ctx context.Context, change TimeChange) (Decision, error)

// ConfirmAll accepts every reschedule.
func ConfirmAll(context.Context, TimeChange) (Decision, error) { return DecisionConfirm, nil }

// DeclineReschedule refuses every reschedule. Unattended callers use it.
func DeclineReschedule(context.Context, TimeChange) (Decision, error) { return DecisionCancel, nil }

type SyncAction string

const (
	SyncActionCreated     SyncAction = "created"
	SyncActionUpdated     SyncAction = "updated"
	SyncActionRescheduled SyncAction = "rescheduled"
	SyncActionCancelled   SyncAction = "cancelled"
	SyncActionSkipped     SyncAction = "skipped"
)

type SyncOutcome struct {
	Action SyncAction             `json:"action"`
	Entry  entities.ScheduleEntry `json:"entry"`
	Change *TimeChange            `json:"change,omitempty"`
}

// IScheduleUseCase reconciles contracts with the external schedule store.
type IScheduleUseCase interface {
	Sync(ctx context.Context, c entities.Contract, confirm Confirmer) (SyncOutcome, error)
	RetryFailed(ctx context.Context) (int, error)
}

type ScheduleUseCase struct {
	store     interfaces.IScheduleStore
	contracts interfaces.IContractRepository
	resolver  IEstimateResolver
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(store interfaces.IScheduleStore, contracts interfaces.IContractRepository, resolver IEstimateResolver) *ScheduleUseCase {
	return &ScheduleUseCase{store: store, contracts: contracts, resolver: resolver}
}

// Sync makes the measurement appointment of c match its measurement date.
//
// The lookup always completes before the create/update decision. A changed
// date or time is only written after confirm says so; existing measurement
// data is carried over unchanged. Store failures come back wrapped in
// ErrScheduleSyncFailed and never touch the contract itself.
func (u *ScheduleUseCase) Sync(ctx context.Context, c entities.Contract, confirm Confirmer) (SyncOutcome, error) {
	if strings.TrimSpace(c.MeasurementDate) == "" {
		return SyncOutcome{Action: SyncActionSkipped}, nil
	}
	if confirm == nil {
		confirm = DeclineReschedule
	}

	date, clock, err := ParseMeasurementDate(c.MeasurementDate)
	if err != nil {
		return SyncOutcome{}, opErr("sync schedule", c.ContractNo, withCause(ErrValidation, err))
	}

	log.Printf("[schedule][usecase] sync start contract_no=%s estimate_no=%s date=%s time=%s", c.ContractNo, c.EstimateNo, date, clock)

	if u.store == nil {
		return u.fail(ctx, c, errScheduleStoreMissing)
	}
	entries, err := u.store.List(ctx)
	if err != nil {
		return u.fail(ctx, c, err)
	}
	existing, found := findMeasurementEntry(entries, c.EstimateNo)

	if !found {
		entry := u.describe(c, date, clock)
		entry.MeasurementData = u.seedMeasurementData(ctx, c)
		created, err := u.store.Create(ctx, entry)
		if err != nil {
			return u.fail(ctx, c, err)
		}
		u.record(ctx, c, entities.ScheduleSyncSynced)
		log.Printf("[schedule][usecase] entry created contract_no=%s entry_id=%s", c.ContractNo, created.ID)
		return SyncOutcome{Action: SyncActionCreated, Entry: created}, nil
	}

	action := SyncActionUpdated
	var change *TimeChange
	fromDate, fromTime := entities.NormalizeSlot(existing.Date, existing.Time)
	if fromDate != date || fromTime != clock {
		change = &TimeChange{
			ContractID: c.ID,
			EstimateNo: c.EstimateNo,
			EntryID:    existing.ID,
			FromDate:   fromDate,
			FromTime:   fromTime,
			ToDate:     date,
			ToTime:     clock,
		}
		decision, err := confirm(ctx, *change)
		if err != nil || decision != DecisionConfirm {
			u.record(ctx, c, entities.ScheduleSyncCancelled)
			log.Printf("[schedule][usecase] reschedule cancelled contract_no=%s entry_id=%s err=%v", c.ContractNo, existing.ID, err)
			return SyncOutcome{Action: SyncActionCancelled, Entry: existing, Change: change}, nil
		}
		action = SyncActionRescheduled
	}

	entry := u.describe(c, date, clock)
	entry.ID = existing.ID
	entry.MeasurementData = existing.MeasurementData
	if len(entry.MeasurementData) == 0 {
		entry.MeasurementData = u.seedMeasurementData(ctx, c)
	}

	var updated entities.ScheduleEntry
	if strings.TrimSpace(existing.ID) == "" {
		log.Printf("[schedule][usecase] entry without id, recreating contract_no=%s", c.ContractNo)
		entry.ID = ""
		updated, err = u.store.Create(ctx, entry)
		action = SyncActionCreated
	} else {
		updated, err = u.store.Update(ctx, existing.ID, entry)
		if errors.Is(err, interfaces.ErrScheduleEntryNotFound) {
			log.Printf("[schedule][usecase] entry vanished, recreating contract_no=%s entry_id=%s", c.ContractNo, existing.ID)
			entry.ID = ""
			updated, err = u.store.Create(ctx, entry)
			action = SyncActionCreated
		}
	}
	if err != nil {
		return u.fail(ctx, c, err)
	}

	u.record(ctx, c, entities.ScheduleSyncSynced)
	log.Printf("[schedule][usecase] entry %s contract_no=%s entry_id=%s", action, c.ContractNo, updated.ID)
	return SyncOutcome{Action: action, Entry: updated, Change: change}, nil
}

// RetryFailed re-runs Sync for every contract whose last sync failed.
// Reschedules are declined: a moved appointment always needs a person.
func (u *ScheduleUseCase) RetryFailed(ctx context.Context) (int, error) {
	failed, err := u.contracts.ListByScheduleSyncStatus(ctx, entities.ScheduleSyncFailed)
	if err != nil {
		return 0, opErr("retry schedule sync", "", err)
	}
	synced := 0
	for _, c := range failed {
		if err := ctx.Err(); err != nil {
			return synced, err
		}
		out, err := u.Sync(ctx, c, DeclineReschedule)
		if err != nil {
			log.Printf("[schedule][usecase] retry failed contract_no=%s err=%v", c.ContractNo, err)
			continue
		}
		if out.Action == SyncActionCreated || out.Action == SyncActionUpdated || out.Action == SyncActionRescheduled {
			synced++
		}
	}
	log.Printf("[schedule][usecase] retry done candidates=%d synced=%d", len(failed), synced)
	return synced, nil
}

func (u *ScheduleUseCase) fail(ctx context.Context, c entities.Contract, cause error) (SyncOutcome, error) {
	log.Printf("[schedule][usecase] store error contract_no=%s err=%v", c.ContractNo, cause)
	u.record(ctx, c, entities.ScheduleSyncFailed)
	return SyncOutcome{}, opErr("sync schedule", c.ContractNo, withCause(ErrScheduleSyncFailed, cause))
}

func (u *ScheduleUseCase) record(ctx context.Context, c entities.Contract, status entities.ScheduleSyncStatus) {
	if u.contracts == nil || c.ID == "" {
		return
	}
	if err := u.contracts.UpdateScheduleSyncStatus(ctx, c.ID, status); err != nil {
		log.Printf("[schedule][usecase] record sync status failed id=%s status=%s err=%v", c.ID, status, err)
	}
}

func (u *ScheduleUseCase) describe(c entities.Contract, date, clock string) entities.ScheduleEntry {
	title := address.Abbreviate(c.Address)
	if title == "" {
		title = c.CustomerName
	}
	return entities.ScheduleEntry{
		Title:        title,
		EstimateNo:   c.EstimateNo,
		Type:         entities.ScheduleTypeMeasurement,
		Date:         date,
		Time:         clock,
		CustomerName: c.CustomerName,
		Contact:      c.Contact,
		Address:      c.Address,
		ProjectName:  c.ProjectName,
		Memo:         c.Memo,
	}
}

// seedMeasurementData builds blank measurement slots from the origin estimate
// rows, falling back to the contract's own row snapshot.
func (u *ScheduleUseCase) seedMeasurementData(ctx context.Context, c entities.Contract) json.RawMessage {
	rows := c.Rows
	if u.resolver != nil {
		if e, err := u.resolver.Resolve(ctx, c.EstimateNo); err == nil {
			rows = e.Rows
		} else {
			log.Printf("[schedule][usecase] origin estimate unavailable, using contract rows estimate_no=%s err=%v", c.EstimateNo, err)
		}
	}

	slots := make([]entities.MeasurementSlot, 0, len(rows))
	for i, r := range rows {
		slots = append(slots, entities.MeasurementSlot{
			LineIndex:      i,
			Space:          r.Space,
			ProductName:    r.ProductName,
			EstimateWidth:  r.Width,
			EstimateHeight: r.Height,
		})
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return json.RawMessage("[]")
	}
	return raw
}

func findMeasurementEntry(entries []entities.ScheduleEntry, estimateNo string) (entities.ScheduleEntry, bool) {
	for _, e := range entries {
		if e.EstimateNo == estimateNo && e.Type == entities.ScheduleTypeMeasurement {
			return e, true
		}
	}
	return entities.ScheduleEntry{}, false
}

// ParseMeasurementDate splits a measurement date into YYYY-MM-DD and HH:MM.
func ParseMeasurementDate(v string) (date string, clock string, err error) {
	return entities.ParseMeasurementDate(v)
}
