package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"sales_contract/internal/adapter/http/handlers/mocks"
	"sales_contract/internal/domain/document"
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type contractHandlerFixture struct {
	router    *gin.Engine
	contracts *mocks.MockIContractUseCase
	schedule  *mocks.MockIScheduleUseCase
	templates *mocks.MockITemplateUseCase
}

func newContractHandlerFixture(t *testing.T) contractHandlerFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := contractHandlerFixture{
		contracts: mocks.NewMockIContractUseCase(ctrl),
		schedule:  mocks.NewMockIScheduleUseCase(ctrl),
		templates: mocks.NewMockITemplateUseCase(ctrl),
	}
	h := NewContractHandler(f.contracts, f.schedule, f.templates)

	r := gin.New()
	r.GET("/v1/contracts", h.ListContracts)
	r.GET("/v1/contracts/:id", h.GetContract)
	r.GET("/v1/contracts/by-estimate/:estimate_no", h.GetContractByEstimate)
	r.PATCH("/v1/contracts/:id", h.UpdateContract)
	r.POST("/v1/contracts/:id/schedule-sync", h.SyncSchedule)
	r.DELETE("/v1/contracts/:id", h.DeleteContract)
	r.GET("/v1/contracts/:id/document", h.RenderContract)
	f.router = r
	return f
}

func signedContract() entities.Contract {
	return entities.Contract{
		ID:              "c-1",
		ContractNo:      "C20250101-001",
		EstimateNo:      "E20250101-001",
		CustomerName:    "김철수",
		Address:         "서울특별시 강남구 테헤란로 1",
		Status:       entities.ContractStatusSigned,
		PaymentRecord: entities.PaymentRecord{
			TotalAmount:     1000000,
			DepositAmount:   300000,
			RemainingAmount: 700000,
			MeasurementDate: "2025-01-15T09:00",
		},
	}
}

func TestContractHandler_List(t *testing.T) {
	t.Run("passes filters", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().ListFiltered(gomock.Any(), "김", "signed").Return([]entities.Contract{signedContract()}, nil)

		w := perform(f.router, http.MethodGet, "/v1/contracts?search=%EA%B9%80&status=signed", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().ListFiltered(gomock.Any(), "", "bogus").Return(nil, fmt.Errorf("list contracts: %w: unknown contract status \"bogus\"", usecase.ErrValidation))

		w := perform(f.router, http.MethodGet, "/v1/contracts?status=bogus", "")
		expectStatus(t, w, http.StatusBadRequest)
		body := decodeBody(t, w)
		if body["message"] != `Invalid request: unknown contract status "bogus"` {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})
}

func TestContractHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contract{}, &usecase.OpError{Op: "get contract", ID: "missing", Err: usecase.ErrContractNotFound})

		w := perform(f.router, http.MethodGet, "/v1/contracts/missing", "")
		expectStatus(t, w, http.StatusNotFound)
		body := decodeBody(t, w)
		if body["code"] != "CONTRACT_NOT_FOUND" {
			t.Fatalf("expected CONTRACT_NOT_FOUND, got %v", body["code"])
		}
		if body["message"] != "get contract missing: contract not found" {
			t.Fatalf("expected operation and id in message, got %v", body["message"])
		}
	})

	t.Run("by estimate", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().FindByEstimate(gomock.Any(), "E20250101-001-final").Return(signedContract(), nil)

		w := perform(f.router, http.MethodGet, "/v1/contracts/by-estimate/E20250101-001-final", "")
		expectStatus(t, w, http.StatusOK)
		if no := decodeBody(t, w)["contract_no"]; no != "C20250101-001" {
			t.Fatalf("expected C20250101-001, got %v", no)
		}
	})
}

func TestContractHandler_Update(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		w := perform(f.router, http.MethodPatch, "/v1/contracts/c-1", "{")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("update with reschedule confirmation", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		updated := signedContract()
		updated.MeasurementDate = "2025-01-16T10:00"

		f.contracts.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, patch usecase.ContractPatch) (entities.Contract, error) {
			if patch.MeasurementDate == nil || *patch.MeasurementDate != "2025-01-16T10:00" {
				t.Fatalf("expected measurement date in patch, got %+v", patch.MeasurementDate)
			}
			if patch.DepositAmount == nil || *patch.DepositAmount != 400000 {
				t.Fatalf("expected lenient deposit amount, got %v", patch.DepositAmount)
			}
			return updated, nil
		})
		f.schedule.EXPECT().Sync(gomock.Any(), updated, gomock.Any()).DoAndReturn(func(ctx context.Context, _ entities.Contract, confirm usecase.Confirmer) (usecase.SyncOutcome, error) {
			d, _ := confirm(ctx, usecase.TimeChange{})
			if d != usecase.DecisionConfirm {
				t.Fatalf("expected confirming callback, got %v", d)
			}
			return usecase.SyncOutcome{Action: usecase.SyncActionRescheduled, Entry: entities.ScheduleEntry{ID: "s-1"}}, nil
		})

		w := perform(f.router, http.MethodPatch, "/v1/contracts/c-1", `{"measurement_date":"2025-01-16T10:00","deposit_amount":"400,000","confirm_reschedule":true}`)
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		schedule, ok := body["schedule"].(map[string]any)
		if !ok || schedule["action"] != "rescheduled" {
			t.Fatalf("expected rescheduled outcome, got %v", body["schedule"])
		}
		if warnings, ok := body["warnings"].([]any); !ok || len(warnings) != 0 {
			t.Fatalf("expected empty warnings, got %v", body["warnings"])
		}
	})

	t.Run("schedule failure is reported as warning", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(signedContract(), nil)
		f.schedule.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.SyncOutcome{}, errors.New("schedule store unreachable"))

		w := perform(f.router, http.MethodPatch, "/v1/contracts/c-1", `{"memo":"x"}`)
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if _, ok := body["schedule"]; ok {
			t.Fatalf("expected no schedule outcome, got %v", body["schedule"])
		}
		warnings, _ := body["warnings"].([]any)
		if len(warnings) != 1 || warnings[0] != "schedule store unreachable" {
			t.Fatalf("expected one warning, got %v", body["warnings"])
		}
	})

	t.Run("usecase not found", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.Contract{}, usecase.ErrContractNotFound)

		w := perform(f.router, http.MethodPatch, "/v1/contracts/missing", `{}`)
		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestContractHandler_SyncSchedule(t *testing.T) {
	t.Run("no body declines reschedules and skipped sync has no outcome", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(signedContract(), nil)
		f.schedule.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ entities.Contract, confirm usecase.Confirmer) (usecase.SyncOutcome, error) {
			if d, _ := confirm(ctx, usecase.TimeChange{}); d != usecase.DecisionCancel {
				t.Fatalf("expected declining callback, got %v", d)
			}
			return usecase.SyncOutcome{Action: usecase.SyncActionSkipped}, nil
		})

		w := perform(f.router, http.MethodPost, "/v1/contracts/c-1/schedule-sync", "")
		expectStatus(t, w, http.StatusOK)
		if _, ok := decodeBody(t, w)["schedule"]; ok {
			t.Fatalf("expected skipped sync to omit schedule")
		}
	})
}

func TestContractHandler_DeleteAndRender(t *testing.T) {
	t.Run("delete", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		w := perform(f.router, http.MethodDelete, "/v1/contracts/c-1", "")
		expectStatus(t, w, http.StatusNoContent)
	})

	t.Run("delete unknown", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.contracts.EXPECT().Delete(gomock.Any(), "x").Return(usecase.ErrContractNotFound)

		w := perform(f.router, http.MethodDelete, "/v1/contracts/x", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("render with template", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.templates.EXPECT().RenderContract(gomock.Any(), "c-1", document.TemplateFull).Return(document.Document{TemplateKey: document.TemplateFull}, nil)

		w := perform(f.router, http.MethodGet, "/v1/contracts/c-1/document?template=full", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("render unknown template", func(t *testing.T) {
		f := newContractHandlerFixture(t)
		f.templates.EXPECT().RenderContract(gomock.Any(), "c-1", "nope").Return(document.Document{}, usecase.ErrTemplateNotFound)

		w := perform(f.router, http.MethodGet, "/v1/contracts/c-1/document?template=nope", "")
		expectStatus(t, w, http.StatusNotFound)
	})
}
