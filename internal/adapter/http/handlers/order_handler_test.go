package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"mecanica_goelzer/internal/adapter/http/handlers/mocks"
	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(uc *mocks.MockIOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc)
	r := gin.New()
	r.GET("/ordens/proximo_numero", h.NextOrderNumber)
	r.GET("/orcamentos/proximo_numero", h.NextBudgetNumber)
	r.GET("/ordens/:id/total", h.Total)
	r.POST("/ordens/:id/atualizar_estoque", h.UpdateStock)
	r.POST("/ordens/:id/registrar_movimentacao_financeira/:tipo", h.PostFinancialMovement)
	r.POST("/ordens/:id/finalizar", h.Fulfill)
	return r
}

func TestOrderHandler_Computations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().ComputeTotal(gomock.Any(), 5).Return(decimal.RequireFromString("310.5"), nil)

		w := serve(r, http.MethodGet, "/ordens/5/total", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["total"] != 310.5 || body["ordem_id"] != 5.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("next numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().NextOrderNumber(gomock.Any()).Return("2025-0004", nil)
		uc.EXPECT().NextBudgetNumber(gomock.Any()).Return("ORC-2025-0001", nil)

		w := serve(r, http.MethodGet, "/ordens/proximo_numero", "")
		if decodeBody(t, w)["proximo_numero"] != "2025-0004" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		w = serve(r, http.MethodGet, "/orcamentos/proximo_numero", "")
		if decodeBody(t, w)["proximo_numero"] != "ORC-2025-0001" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("stock depletion with alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().ApplyStockDepletion(gomock.Any(), 1).Return(entities.StockDepletion{
			Applied: true,
			Alerts:  []entities.StockAlert{{PartID: 3, Description: "Pastilha", Stock: decimal.NewFromInt(4), MinStock: decimal.NewFromInt(5)}},
		}, nil)

		w := serve(r, http.MethodPost, "/ordens/1/atualizar_estoque", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		alerts, _ := body["alertas_estoque"].([]any)
		if body["sucesso"] != true || len(alerts) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("financial movement kinds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().PostFinancialMovement(gomock.Any(), 1, "receita").Return(true, nil)
		uc.EXPECT().PostFinancialMovement(gomock.Any(), 1, "outro").Return(false, fmt.Errorf("%w: tipo", usecase.ErrInvalidInput))

		w := serve(r, http.MethodPost, "/ordens/1/registrar_movimentacao_financeira/receita", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["sucesso"] != true {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
		w = serve(r, http.MethodPost, "/ordens/1/registrar_movimentacao_financeira/outro", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Fulfill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().Fulfill(gomock.Any(), 1, "").Return(entities.FulfillmentReport{
			OperationID: "op-1", OrderID: 1, Total: decimal.NewFromInt(100),
			Closed: true, StockUpdated: true, RevenuePosted: true,
		}, nil)

		w := serve(r, http.MethodPost, "/ordens/1/finalizar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["concluida"] != true || body["operacao_id"] != "op-1" || body["conta_a_receber_id"] != nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("deferred payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().Fulfill(gomock.Any(), 1, "A Prazo").Return(entities.FulfillmentReport{
			OperationID: "op-2", OrderID: 1, Closed: true, ReceivableID: 4,
		}, nil)

		w := serve(r, http.MethodPost, "/ordens/1/finalizar", `{"forma_pagamento":" A Prazo "}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["conta_a_receber_id"] != 4.0 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl))

		if w := serve(r, http.MethodPost, "/ordens/1/finalizar", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().Fulfill(gomock.Any(), 9, "").Return(entities.FulfillmentReport{OrderID: 9}, usecase.ErrNotFound)

		w := serve(r, http.MethodPost, "/ordens/9/finalizar", "")
		if w.Code != http.StatusNotFound || decodeBody(t, w)["code"] != "ORDENS_NOT_FOUND" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("already closed order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().Fulfill(gomock.Any(), 1, "").Return(entities.FulfillmentReport{OrderID: 1},
			fmt.Errorf("%w: ordem 1", usecase.ErrOrderAlreadyClosed))

		w := serve(r, http.MethodPost, "/ordens/1/finalizar", "")
		if w.Code != http.StatusConflict || decodeBody(t, w)["code"] != "ORDER_ALREADY_CLOSED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("partial failure returns the report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc)

		uc.EXPECT().Fulfill(gomock.Any(), 1, "").Return(entities.FulfillmentReport{
			OperationID: "op-3", OrderID: 1, Closed: true,
			FailedStep: entities.FulfillmentStepStock, Failure: "persistence failed",
		}, fmt.Errorf("estoque: %w", usecase.ErrPersistence))

		w := serve(r, http.MethodPost, "/ordens/1/finalizar", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["concluida"] != false || body["ordem_fechada"] != true || body["etapa_com_falha"] != "estoque" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
