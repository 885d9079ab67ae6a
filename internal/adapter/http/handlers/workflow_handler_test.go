package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"sales_contract/internal/adapter/http/handlers/mocks"
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/domain/workflow"
	"sales_contract/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWorkflowRouter(t *testing.T) (*gin.Engine, *mocks.MockIWorkflowUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWorkflowUseCase(ctrl)
	h := NewWorkflowHandler(uc)

	r := gin.New()
	r.POST("/v1/workflows", h.StartWorkflow)
	r.GET("/v1/workflows/:id", h.GetWorkflow)
	r.PUT("/v1/workflows/:id/payment", h.SubmitPayment)
	r.POST("/v1/workflows/:id/back", h.Back)
	r.PUT("/v1/workflows/:id/agreement", h.SubmitAgreement)
	r.POST("/v1/workflows/:id/finalize", h.Finalize)
	r.DELETE("/v1/workflows/:id", h.DiscardWorkflow)
	return r, uc
}

func TestWorkflowHandler_Start(t *testing.T) {
	t.Run("missing estimate number", func(t *testing.T) {
		r, _ := newWorkflowRouter(t)
		w := perform(r, http.MethodPost, "/v1/workflows", `{}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown estimate", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().Start(gomock.Any(), "E20250101-404").Return(usecase.WorkflowSession{}, fmt.Errorf("start workflow: %w", usecase.ErrEstimateNotFound))

		w := perform(r, http.MethodPost, "/v1/workflows", `{"estimate_no":"E20250101-404"}`)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().Start(gomock.Any(), "E20250101-001").Return(usecase.WorkflowSession{
			ID:       "wf-1",
			Stage:    workflow.StageAwaitingPayment,
			Estimate: entities.Estimate{EstimateNo: "E20250101-001", TotalAmount: 1000000},
			Payment:  entities.PaymentRecord{TotalAmount: 1000000, DiscountedAmount: 1000000, PaymentMethod: entities.PaymentMethodCash},
		}, nil)

		w := perform(r, http.MethodPost, "/v1/workflows", `{"estimate_no":"E20250101-001"}`)
		expectStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		if body["id"] != "wf-1" || body["stage"] != string(workflow.StageAwaitingPayment) {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestWorkflowHandler_Steps(t *testing.T) {
	t.Run("payment form values are passed as text", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().SubmitPayment(gomock.Any(), "wf-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, in workflow.PaymentInput) (usecase.WorkflowSession, error) {
			if in.DepositAmount != "300,000" || in.DiscountedAmount != "900000" {
				t.Fatalf("unexpected input %+v", in)
			}
			return usecase.WorkflowSession{ID: "wf-1", Stage: workflow.StageAwaitingAgreement}, nil
		})

		w := perform(r, http.MethodPut, "/v1/workflows/wf-1/payment", `{"deposit_amount":"300,000","discounted_amount":900000}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("back out of order", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().Back(gomock.Any(), "wf-1").Return(usecase.WorkflowSession{}, usecase.ErrInvalidTransition)

		w := perform(r, http.MethodPost, "/v1/workflows/wf-1/back", "")
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("signature required", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().SubmitAgreement(gomock.Any(), "wf-1", entities.AgreementMethodSignature, "").Return(usecase.WorkflowSession{}, usecase.ErrInvalidAgreement)

		w := perform(r, http.MethodPut, "/v1/workflows/wf-1/agreement", `{"method":"signature"}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("unknown session", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().Get(gomock.Any(), "nope").Return(usecase.WorkflowSession{}, usecase.ErrSessionNotFound)

		w := perform(r, http.MethodGet, "/v1/workflows/nope", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("discard", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().Discard(gomock.Any(), "wf-1").Return(nil)

		w := perform(r, http.MethodDelete, "/v1/workflows/wf-1", "")
		expectStatus(t, w, http.StatusNoContent)
	})
}

func TestWorkflowHandler_Finalize(t *testing.T) {
	t.Run("contract with schedule warning", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().Finalize(gomock.Any(), "wf-1", gomock.Any()).Return(usecase.FinalizeResult{
			Contract: signedContract(),
			Warnings: []string{"schedule sync failed: connection refused"},
		}, nil)

		w := perform(r, http.MethodPost, "/v1/workflows/wf-1/finalize", "")
		expectStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		contract, _ := body["contract"].(map[string]any)
		if contract["contract_no"] != "C20250101-001" {
			t.Fatalf("expected committed contract, got %v", body["contract"])
		}
		if warnings, _ := body["warnings"].([]any); len(warnings) != 1 {
			t.Fatalf("expected one warning, got %v", body["warnings"])
		}
	})

	t.Run("too early", func(t *testing.T) {
		r, uc := newWorkflowRouter(t)
		uc.EXPECT().Finalize(gomock.Any(), "wf-1", gomock.Any()).Return(usecase.FinalizeResult{}, usecase.ErrInvalidTransition)

		w := perform(r, http.MethodPost, "/v1/workflows/wf-1/finalize", `{"confirm_reschedule":true}`)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newWorkflowRouter(t)
		w := perform(r, http.MethodPost, "/v1/workflows/wf-1/finalize", `{`)
		expectStatus(t, w, http.StatusBadRequest)
	})
}
