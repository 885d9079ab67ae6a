package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sales_contract/internal/domain/entities"
	mock_interfaces "sales_contract/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDepositChargeUseCase_Charge_Validations(t *testing.T) {
	ctx := context.Background()

	t.Run("empty contract id", func(t *testing.T) {
		uc := NewDepositChargeUseCase(nil, nil, nil, false)
		_, err := uc.Charge(ctx, " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewDepositChargeUseCase(nil, nil, nil, false)
		_, err := uc.Charge(ctx, "c-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(nil, nil, gateway, false)

		_, err := uc.Charge(ctx, "c-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(nil, contracts, gateway, false)

		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{}, nil)

		_, err := uc.Charge(ctx, "c-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("no deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(nil, contracts, gateway, false)

		c := contractA()
		c.DepositAmount = 0
		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)

		_, err := uc.Charge(ctx, "c-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrInvalidDeposit) {
			t.Fatalf("expected ErrInvalidDeposit, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(nil, contracts, gateway, false)
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractA(), nil)

		_, err := uc.Charge(ctx, "c-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})
}

func TestDepositChargeUseCase_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("amount and reference come from the contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositChargeRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(repo, contracts, gateway, false)
		uc.now = newDay

		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractA(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			if err := json.Unmarshal(payload, &m); err != nil {
				t.Fatalf("expected json payload, got %v", err)
			}
			if m["transaction_amount"] != float64(300000) {
				t.Fatalf("expected deposit amount, got %v", m["transaction_amount"])
			}
			if m["external_reference"] != "C20250101-001" {
				t.Fatalf("expected contract number reference, got %v", m["external_reference"])
			}
			return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ch entities.DepositCharge) (entities.DepositCharge, error) {
			return ch, nil
		})

		got, err := uc.Charge(ctx, "c-1", json.RawMessage(`{"payment_method_id":"visa","transaction_amount":1,"payer":{"email":"buyer@test.com"}}`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != "123" || got.Status != entities.DepositChargeStatusApproved || got.Amount != 300000 || got.ContractNo != "C20250101-001" {
			t.Fatalf("unexpected charge %+v", got)
		}
		if got.ProviderPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %v", got.ProviderPayload)
		}
	})

	t.Run("lenient mode accepts an empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositChargeRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(repo, contracts, gateway, true)

		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractA(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("m-1", "in_process", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ch entities.DepositCharge) (entities.DepositCharge, error) {
			return ch, nil
		})

		got, err := uc.Charge(ctx, "c-1", nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Status != entities.DepositChargeStatusPending {
			t.Fatalf("expected pending, got %q", got.Status)
		}
	})

	t.Run("lenient mode accepts a null payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositChargeRepository(ctrl)
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(repo, contracts, gateway, true)

		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractA(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			if err := json.Unmarshal(payload, &m); err != nil {
				t.Fatalf("expected json payload, got %v", err)
			}
			if m["transaction_amount"] != float64(300000) || m["external_reference"] != "C20250101-001" {
				t.Fatalf("expected contract amount and reference, got %v", m)
			}
			return "m-2", "approved", json.RawMessage(`{}`), nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ch entities.DepositCharge) (entities.DepositCharge, error) {
			return ch, nil
		})

		got, err := uc.Charge(ctx, "c-1", json.RawMessage(`null`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != "m-2" || got.Amount != 300000 {
			t.Fatalf("unexpected charge %+v", got)
		}
	})

	t.Run("strict mode rejects a null payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(nil, contracts, gateway, false)

		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractA(), nil)

		_, err := uc.Charge(ctx, "c-1", json.RawMessage(`null`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositChargeUseCase(nil, contracts, gateway, false)

		contracts.EXPECT().GetByID(gomock.Any(), "c-1").Return(contractA(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"status":401,"error":"unauthorized"}`))

		_, err := uc.Charge(ctx, "c-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"id":"42"}}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestDepositChargeUseCase_Reads(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDepositChargeRepository(ctrl)
	uc := NewDepositChargeUseCase(repo, nil, nil, false)

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.DepositCharge{}, nil)
		if _, err := uc.GetByID(ctx, "x"); !errors.Is(err, ErrDepositChargeNotFound) {
			t.Fatalf("expected ErrDepositChargeNotFound, got %v", err)
		}
	})

	t.Run("list by contract", func(t *testing.T) {
		repo.EXPECT().ListByContractID(gomock.Any(), "c-1").Return([]entities.DepositCharge{{ID: "1"}, {ID: "2"}}, nil)
		got, err := uc.ListByContractID(ctx, "c-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("expected 2 charges, got %d err=%v", len(got), err)
		}
	})

	t.Run("list requires contract id", func(t *testing.T) {
		if _, err := uc.ListByContractID(ctx, ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
