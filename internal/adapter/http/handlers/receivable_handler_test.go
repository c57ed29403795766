package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"mecanica_goelzer/internal/adapter/http/handlers/mocks"
	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReceivableRouter(uc *mocks.MockIReceivableUseCase) *gin.Engine {
	h := NewReceivableHandler(uc)
	r := gin.New()
	r.POST("/contas_a_receber", h.Create)
	r.POST("/contas_a_receber/:id/pagar", h.Pay)
	return r
}

func TestReceivableHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing ordem_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newReceivableRouter(mocks.NewMockIReceivableUseCase(ctrl))

		if w := serve(r, http.MethodPost, "/contas_a_receber", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not deferred", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceivableUseCase(ctrl)
		r := newReceivableRouter(uc)

		uc.EXPECT().CreateFromOrder(gomock.Any(), 1).Return(nil, usecase.ErrReceivableNotApplicable)

		w := serve(r, http.MethodPost, "/contas_a_receber", `{"ordem_id":1}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceivableUseCase(ctrl)
		r := newReceivableRouter(uc)

		uc.EXPECT().CreateFromOrder(gomock.Any(), 2).Return(nil, usecase.ErrNotFound)

		w := serve(r, http.MethodPost, "/contas_a_receber", `{"ordem_id":2}`)
		if w.Code != http.StatusNotFound || decodeBody(t, w)["code"] != "ORDENS_NOT_FOUND" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceivableUseCase(ctrl)
		r := newReceivableRouter(uc)

		uc.EXPECT().CreateFromOrder(gomock.Any(), 1).Return(entities.Record{"id": 1, "ordem_id": 1, "status": "Pendente"}, nil)

		w := serve(r, http.MethodPost, "/contas_a_receber", `{"ordem_id":1}`)
		if w.Code != http.StatusCreated || decodeBody(t, w)["status"] != "Pendente" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestReceivableHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newReceivableRouter(mocks.NewMockIReceivableUseCase(ctrl))

		for _, body := range []string{`{}`, `{"valor_pago":0}`, `{"valor_pago":-3}`, `{"valor_pago":"abc"}`} {
			if w := serve(r, http.MethodPost, "/contas_a_receber/1/pagar", body); w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("forwards amount method and payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceivableUseCase(ctrl)
		r := newReceivableRouter(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, in usecase.PaymentInput) (entities.Record, error) {
				if in.Amount.String() != "150.25" || in.PaymentMethod != "Pix" {
					t.Fatalf("unexpected input %+v", in)
				}
				var payload map[string]any
				if err := json.Unmarshal(in.MPPayload, &payload); err != nil || payload["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload %s", in.MPPayload)
				}
				return entities.Record{"id": 1, "status": "Parcial"}, nil
			},
		)

		w := serve(r, http.MethodPost, "/contas_a_receber/1/pagar",
			`{"valor_pago":150.25,"forma_pagamento":"Pix","mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "Parcial" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceivableUseCase(ctrl)
		r := newReceivableRouter(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), 1, gomock.Any()).
			Return(nil, errors.Join(usecase.ErrPaymentGatewayFailed, errors.New("declined")))

		w := serve(r, http.MethodPost, "/contas_a_receber/1/pagar", `{"valor_pago":10,"mp_payload":{}}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("receivable not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceivableUseCase(ctrl)
		r := newReceivableRouter(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), 8, gomock.Any()).Return(nil, usecase.ErrNotFound)

		w := serve(r, http.MethodPost, "/contas_a_receber/8/pagar", `{"valor_pago":10}`)
		if w.Code != http.StatusNotFound || decodeBody(t, w)["code"] != "CONTAS_A_RECEBER_NOT_FOUND" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
