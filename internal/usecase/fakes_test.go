package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"
)

// In-memory stores for multi-step scenarios. Error paths use gomock instead.

type fakeContractRepo struct {
	mu         sync.Mutex
	byID       map[string]entities.Contract
	pending    *fakePendingRepo
	syncStatus map[string]entities.ScheduleSyncStatus
}

func newFakeContractRepo(pending *fakePendingRepo) *fakeContractRepo {
	return &fakeContractRepo{
		byID:       map[string]entities.Contract{},
		pending:    pending,
		syncStatus: map[string]entities.ScheduleSyncStatus{},
	}
}

var _ interfaces.IContractRepository = (*fakeContractRepo)(nil)

func (r *fakeContractRepo) Create(_ context.Context, c entities.Contract, pendingEstimateNo string) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID] = c
	if r.pending != nil {
		r.pending.remove(pendingEstimateNo)
	}
	return c, nil
}

func (r *fakeContractRepo) Supersede(_ context.Context, c entities.Contract, pendingEstimateNo string) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return entities.Contract{}, nil
	}
	r.byID[c.ID] = c
	if r.pending != nil {
		r.pending.remove(pendingEstimateNo)
	}
	return c, nil
}

func (r *fakeContractRepo) Update(_ context.Context, c entities.Contract) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return entities.Contract{}, nil
	}
	r.byID[c.ID] = c
	return c, nil
}

func (r *fakeContractRepo) GetByID(_ context.Context, id string) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *fakeContractRepo) GetByEstimateNo(_ context.Context, estimateNo string) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.EstimateNo == estimateNo {
			return c, nil
		}
	}
	return entities.Contract{}, nil
}

func (r *fakeContractRepo) List(_ context.Context) ([]entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Contract, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeContractRepo) ListContractNos(_ context.Context, prefix string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.byID {
		if strings.HasPrefix(c.ContractNo, prefix) {
			out = append(out, c.ContractNo)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) ListByScheduleSyncStatus(_ context.Context, status entities.ScheduleSyncStatus) ([]entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Contract
	for _, c := range r.byID {
		if c.ScheduleSyncStatus == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) UpdateScheduleSyncStatus(_ context.Context, id string, status entities.ScheduleSyncStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncStatus[id] = status
	if c, ok := r.byID[id]; ok {
		c.ScheduleSyncStatus = status
		r.byID[id] = c
	}
	return nil
}

func (r *fakeContractRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *fakeContractRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

type fakePendingRepo struct {
	mu    sync.Mutex
	items map[string]entities.Estimate
}

func newFakePendingRepo(es ...entities.Estimate) *fakePendingRepo {
	r := &fakePendingRepo{items: map[string]entities.Estimate{}}
	for _, e := range es {
		r.items[e.EstimateNo] = e
	}
	return r
}

var _ interfaces.IPendingEstimateRepository = (*fakePendingRepo)(nil)

func (r *fakePendingRepo) Put(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[e.EstimateNo] = e
	return e, nil
}

func (r *fakePendingRepo) GetByEstimateNo(_ context.Context, estimateNo string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[estimateNo], nil
}

func (r *fakePendingRepo) List(_ context.Context) ([]entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Estimate, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EstimateNo < out[j].EstimateNo })
	return out, nil
}

func (r *fakePendingRepo) ListEstimateNos(_ context.Context, prefix string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for no := range r.items {
		if strings.HasPrefix(no, prefix) {
			out = append(out, no)
		}
	}
	return out, nil
}

func (r *fakePendingRepo) has(estimateNo string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[estimateNo]
	return ok
}

func (r *fakePendingRepo) remove(estimateNo string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, estimateNo)
}

type fakeEstimateRepo struct {
	mu         sync.Mutex
	items      map[string]entities.Estimate
	contracted []string
}

func newFakeEstimateRepo(es ...entities.Estimate) *fakeEstimateRepo {
	r := &fakeEstimateRepo{items: map[string]entities.Estimate{}}
	for _, e := range es {
		r.items[e.EstimateNo] = e
	}
	return r
}

var _ interfaces.IEstimateRepository = (*fakeEstimateRepo)(nil)

func (r *fakeEstimateRepo) GetByEstimateNo(_ context.Context, estimateNo string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[estimateNo], nil
}

func (r *fakeEstimateRepo) MarkContracted(_ context.Context, estimateNo string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracted = append(r.contracted, estimateNo)
	e, ok := r.items[estimateNo]
	if !ok {
		return entities.Estimate{}, nil
	}
	e.Status = entities.EstimateStatusContracted
	r.items[estimateNo] = e
	return e, nil
}

type fakeScheduleStore struct {
	mu      sync.Mutex
	entries []entities.ScheduleEntry
	nextID  int
	creates int
	updates int
}

var _ interfaces.IScheduleStore = (*fakeScheduleStore)(nil)

func (s *fakeScheduleStore) List(_ context.Context) ([]entities.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.ScheduleEntry(nil), s.entries...), nil
}

func (s *fakeScheduleStore) Create(_ context.Context, e entities.ScheduleEntry) (entities.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.creates++
	e.ID = "sch-" + strconv.Itoa(s.nextID)
	s.entries = append(s.entries, e)
	return e, nil
}

func (s *fakeScheduleStore) Update(_ context.Context, id string, e entities.ScheduleEntry) (entities.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.updates++
			e.ID = id
			s.entries[i] = e
			return e, nil
		}
	}
	return entities.ScheduleEntry{}, interfaces.ErrScheduleEntryNotFound
}

type fakeTemplateRepo struct {
	mu    sync.Mutex
	items map[string]entities.Template
}

var _ interfaces.ITemplateRepository = (*fakeTemplateRepo)(nil)

func (r *fakeTemplateRepo) List(_ context.Context) ([]entities.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Template, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTemplateRepo) Get(_ context.Context, key string) (entities.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[key], nil
}

func (r *fakeTemplateRepo) Put(_ context.Context, t entities.Template) (entities.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items == nil {
		r.items = map[string]entities.Template{}
	}
	r.items[t.Key] = t
	return t, nil
}

type fakeSettingsRepo struct {
	mu     sync.Mutex
	values map[string]string
}

var _ interfaces.ISettingsRepository = (*fakeSettingsRepo)(nil)

func (r *fakeSettingsRepo) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *fakeSettingsRepo) GetMany(_ context.Context, keys []string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := r.values[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (r *fakeSettingsRepo) PutMany(_ context.Context, values map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values == nil {
		r.values = map[string]string{}
	}
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}

// tickingClock returns start, start+1s, start+2s, ...
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func newDay() time.Time {
	return time.Date(2025, 1, 1, 10, 0, 0, 0, kst)
}

func estimateA() entities.Estimate {
	return entities.Estimate{
		EstimateNo:   "E20250101-001",
		CustomerName: "김철수",
		Contact:      "010-1234-5678",
		Address:      "서울시 강남구 역삼동 래미안아파트 101동 1203호",
		ProjectName:  "거실 커튼",
		TotalAmount:  1000000,
		Status:       entities.EstimateStatusApproved,
		Rows: []entities.LineItem{
			{Space: "거실", ProductName: "암막 커튼", Width: 2400, Height: 2300, Quantity: 1},
			{Space: "안방", ProductName: "블라인드", Width: 1200, Height: 1500, Quantity: 2},
		},
	}
}

func estimateB() entities.Estimate {
	return entities.Estimate{
		EstimateNo:   "E20250101-002",
		CustomerName: "이영희",
		Address:      "경기도 성남시 분당구 정자동 123-45",
		ProjectName:  "사무실 블라인드",
		TotalAmount:  500000,
		Status:       entities.EstimateStatusApproved,
	}
}
