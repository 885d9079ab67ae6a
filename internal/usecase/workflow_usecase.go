package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/domain/workflow"

	"github.com/google/uuid"
)

// WorkflowSession is a snapshot of one contract-creation session.
type WorkflowSession struct {
	ID        string                   `json:"id"`
	Stage     workflow.Stage           `json:"stage"`
	Closed    bool                     `json:"closed"`
	Estimate  entities.Estimate        `json:"estimate"`
	Payment   entities.PaymentRecord   `json:"payment"`
	Agreement entities.AgreementRecord `json:"agreement"`
	Issues    []workflow.Issue         `json:"issues,omitempty"`
}

// FinalizeResult carries the stored contract and, when a measurement date was
// set, the schedule reconciliation outcome. Warnings hold non-fatal failures.
type FinalizeResult struct {
	Contract entities.Contract `json:"contract"`
	Schedule *SyncOutcome      `json:"schedule,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

type IWorkflowUseCase interface {
	Start(ctx context.Context, estimateNo string) (WorkflowSession, error)
	Get(ctx context.Context, id string) (WorkflowSession, error)
	SubmitPayment(ctx context.Context, id string, in workflow.PaymentInput) (WorkflowSession, error)
	Back(ctx context.Context, id string) (WorkflowSession, error)
	SubmitAgreement(ctx context.Context, id string, method entities.AgreementMethod, signature string) (WorkflowSession, error)
	Finalize(ctx context.Context, id string, confirm Confirmer) (FinalizeResult, error)
	Discard(ctx context.Context, id string) error
}

const defaultSessionTTL = 24 * time.Hour

type session struct {
	mu sync.Mutex
	wf *workflow.Workflow

	// guarded by WorkflowUseCase.mu
	lastSeen time.Time
}

// WorkflowUseCase keeps in-memory sessions. Each session serializes its own
// calls; the map lock is only held for lookups. Sessions idle longer than
// the TTL are dropped by PurgeExpired.
type WorkflowUseCase struct {
	resolver  IEstimateResolver
	contracts IContractUseCase
	schedule  IScheduleUseCase
	now       func() time.Time
	ttl       time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(resolver IEstimateResolver, contracts IContractUseCase, schedule IScheduleUseCase) *WorkflowUseCase {
	return &WorkflowUseCase{
		resolver:  resolver,
		contracts: contracts,
		schedule:  schedule,
		now:       defaultClock,
		ttl:       sessionTTLFromEnv(),
		sessions:  make(map[string]*session),
	}
}

// sessionTTLFromEnv reads WORKFLOW_SESSION_TTL as a Go duration ("24h", "90m").
func sessionTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("WORKFLOW_SESSION_TTL"))
	if raw == "" {
		return defaultSessionTTL
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[workflow][usecase] invalid WORKFLOW_SESSION_TTL=%q, using %s", raw, defaultSessionTTL)
		return defaultSessionTTL
	}
	return d
}

// Start resolves the estimate and opens a session in AwaitingPayment.
func (u *WorkflowUseCase) Start(ctx context.Context, estimateNo string) (WorkflowSession, error) {
	estimateNo = strings.TrimSpace(estimateNo)
	if estimateNo == "" {
		return WorkflowSession{}, opErr("start workflow", "", ErrValidation)
	}
	e, err := u.resolver.Resolve(ctx, estimateNo)
	if err != nil {
		return WorkflowSession{}, opErr("start workflow", estimateNo, err)
	}

	id := uuid.NewString()
	now := u.now()
	s := &session{wf: workflow.New(e, now), lastSeen: now}
	u.mu.Lock()
	u.sessions[id] = s
	u.mu.Unlock()

	log.Printf("[workflow][usecase] started session=%s estimate_no=%s", id, e.EstimateNo)
	return snapshot(id, s.wf, nil), nil
}

func (u *WorkflowUseCase) Get(_ context.Context, id string) (WorkflowSession, error) {
	s, err := u.session("get workflow", id)
	if err != nil {
		return WorkflowSession{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(id, s.wf, nil), nil
}

// SubmitPayment never fails on bad amounts; they come back as Issues and the
// previous values stay in place.
func (u *WorkflowUseCase) SubmitPayment(_ context.Context, id string, in workflow.PaymentInput) (WorkflowSession, error) {
	s, err := u.session("submit payment", id)
	if err != nil {
		return WorkflowSession{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, issues, err := s.wf.SubmitPayment(in)
	if err != nil {
		return WorkflowSession{}, opErr("submit payment", id, err)
	}
	if len(issues) > 0 {
		log.Printf("[workflow][usecase] payment input issues session=%s count=%d", id, len(issues))
	}
	return snapshot(id, s.wf, issues), nil
}

func (u *WorkflowUseCase) Back(_ context.Context, id string) (WorkflowSession, error) {
	s, err := u.session("workflow back", id)
	if err != nil {
		return WorkflowSession{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wf.Back(); err != nil {
		return WorkflowSession{}, opErr("workflow back", id, err)
	}
	return snapshot(id, s.wf, nil), nil
}

func (u *WorkflowUseCase) SubmitAgreement(_ context.Context, id string, method entities.AgreementMethod, signature string) (WorkflowSession, error) {
	s, err := u.session("submit agreement", id)
	if err != nil {
		return WorkflowSession{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.wf.SubmitAgreement(method, signature, u.now()); err != nil {
		return WorkflowSession{}, opErr("submit agreement", id, err)
	}
	log.Printf("[workflow][usecase] agreement recorded session=%s method=%s", id, method)
	return snapshot(id, s.wf, nil), nil
}

// Finalize stores the contract and then reconciles the measurement
// appointment. A schedule failure is reported as a warning; the contract
// stays committed.
func (u *WorkflowUseCase) Finalize(ctx context.Context, id string, confirm Confirmer) (FinalizeResult, error) {
	s, err := u.session("finalize workflow", id)
	if err != nil {
		return FinalizeResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.wf.Finalize(ctx, u.contracts)
	if err != nil {
		log.Printf("[workflow][usecase] finalize failed session=%s err=%v", id, err)
		return FinalizeResult{}, opErr("finalize workflow", id, err)
	}

	u.mu.Lock()
	delete(u.sessions, id)
	u.mu.Unlock()

	res := FinalizeResult{Contract: c}
	if u.schedule != nil && strings.TrimSpace(c.MeasurementDate) != "" {
		out, err := u.schedule.Sync(ctx, c, confirm)
		if err != nil {
			res.Warnings = append(res.Warnings, err.Error())
		} else {
			res.Schedule = &out
		}
	}
	log.Printf("[workflow][usecase] finalized session=%s contract_no=%s warnings=%d", id, c.ContractNo, len(res.Warnings))
	return res, nil
}

func (u *WorkflowUseCase) Discard(_ context.Context, id string) error {
	if _, err := u.session("discard workflow", id); err != nil {
		return err
	}
	u.mu.Lock()
	delete(u.sessions, id)
	u.mu.Unlock()
	return nil
}

func (u *WorkflowUseCase) session(op, id string) (*session, error) {
	u.mu.Lock()
	s, ok := u.sessions[id]
	if ok {
		s.lastSeen = u.now()
	}
	u.mu.Unlock()
	if !ok {
		return nil, opErr(op, id, ErrSessionNotFound)
	}
	return s, nil
}

// PurgeExpired drops sessions not touched within the TTL and returns how
// many were removed. A call already holding a dropped session finishes
// normally; later lookups report ErrSessionNotFound.
func (u *WorkflowUseCase) PurgeExpired(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cutoff := u.now().Add(-u.ttl)
	u.mu.Lock()
	defer u.mu.Unlock()
	purged := 0
	for id, s := range u.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(u.sessions, id)
			purged++
		}
	}
	if purged > 0 {
		log.Printf("[workflow][usecase] purged idle sessions count=%d remaining=%d ttl=%s", purged, len(u.sessions), u.ttl)
	}
	return purged, nil
}

func snapshot(id string, wf *workflow.Workflow, issues []workflow.Issue) WorkflowSession {
	return WorkflowSession{
		ID:        id,
		Stage:     wf.Stage(),
		Closed:    wf.Closed(),
		Estimate:  wf.Estimate(),
		Payment:   wf.Payment(),
		Agreement: wf.Agreement(),
		Issues:    issues,
	}
}

// IsWarning reports whether err should be shown next to a successful result
// rather than instead of it.
func IsWarning(err error) bool {
	return errors.Is(err, ErrScheduleSyncFailed)
}
