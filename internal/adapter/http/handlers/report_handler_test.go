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

func newReportRouter(uc *mocks.MockIFinanceUseCase) *gin.Engine {
	h := NewReportHandler(uc)
	r := gin.New()
	r.GET("/dashboard", h.Dashboard)
	r.GET("/relatorios/financeiro-anual/:ano", h.Annual)
	r.GET("/relatorios/financeiro-mensal/:ano/:mes", h.Monthly)
	r.GET("/relatorios/estoque-baixo", h.LowStock)
	r.GET("/relatorios/servico/:id", h.ServiceReport)
	r.GET("/pecas/:id/margem-lucro", h.Margin)
	return r
}

func TestReportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		r := newReportRouter(uc)

		uc.EXPECT().Dashboard(gomock.Any()).Return(entities.Dashboard{
			TotalCustomers: 3, TotalVehicles: 4, OpenOrders: 2,
			Month: entities.FinancialSummary{Revenue: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(400)},
		}, nil)

		w := serve(r, http.MethodGet, "/dashboard", "")
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["totalClientes"] != 3.0 || body["osAbertas"] != 2.0 || body["lucroMensal"] != 600.0 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("annual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		r := newReportRouter(uc)

		uc.EXPECT().AnnualReport(gomock.Any(), 2025).Return(entities.AnnualReport{
			Year:             2025,
			FinancialSummary: entities.FinancialSummary{Revenue: decimal.NewFromInt(10), Expense: decimal.NewFromInt(15)},
		}, nil)

		w := serve(r, http.MethodGet, "/relatorios/financeiro-anual/2025", "")
		body := decodeBody(t, w)
		if body["ano"] != 2025.0 || body["lucroAnual"] != -5.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}

		if w := serve(r, http.MethodGet, "/relatorios/financeiro-anual/abc", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("monthly invalid month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		r := newReportRouter(uc)

		uc.EXPECT().MonthlyReport(gomock.Any(), 2025, 13).Return(entities.MonthlyReport{}, fmt.Errorf("%w: mes", usecase.ErrInvalidInput))

		if w := serve(r, http.MethodGet, "/relatorios/financeiro-mensal/2025/13", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("monthly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		r := newReportRouter(uc)

		uc.EXPECT().MonthlyReport(gomock.Any(), 2025, 3).Return(entities.MonthlyReport{Year: 2025, Month: 3}, nil)

		w := serve(r, http.MethodGet, "/relatorios/financeiro-mensal/2025/3", "")
		if body := decodeBody(t, w); body["mes"] != 3.0 || body["receitaMensal"] != 0.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("margin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		r := newReportRouter(uc)

		uc.EXPECT().Margin(gomock.Any(), 1).Return(decimal.NewFromInt(80), nil)

		w := serve(r, http.MethodGet, "/pecas/1/margem-lucro", "")
		if body := decodeBody(t, w); body["margem_lucro"] != 80.0 || body["peca_id"] != 1.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("low stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		r := newReportRouter(uc)

		uc.EXPECT().LowStock(gomock.Any()).Return(nil, nil)

		w := serve(r, http.MethodGet, "/relatorios/estoque-baixo", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("service report not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		r := newReportRouter(uc)

		uc.EXPECT().ServiceReport(gomock.Any(), 9).Return(entities.ServiceReport{}, usecase.ErrNotFound)

		w := serve(r, http.MethodGet, "/relatorios/servico/9", "")
		if w.Code != http.StatusNotFound || decodeBody(t, w)["code"] != "SERVICOS_NOT_FOUND" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestBackupHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIBackupUseCase) *gin.Engine {
		h := NewBackupHandler(uc)
		r := gin.New()
		r.GET("/backup", h.Backup)
		r.POST("/restore", h.Restore)
		return r
	}

	t.Run("backup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBackupUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Backup(gomock.Any()).Return(entities.Snapshot{"clientes": {{"id": 1}}}, nil)

		w := serve(r, http.MethodGet, "/backup", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if _, ok := decodeBody(t, w)["clientes"]; !ok {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("restore malformed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIBackupUseCase(ctrl))

		w := serve(r, http.MethodPost, "/restore", `{"clientes":{}}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_BACKUP" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("restore missing collections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBackupUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: missing pecas", usecase.ErrInvalidBackup))

		w := serve(r, http.MethodPost, "/restore", `{"clientes":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("restore success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBackupUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Restore(gomock.Any(), entities.Snapshot{"clientes": {{"id": 1.0}}}).Return(nil)

		w := serve(r, http.MethodPost, "/restore", `{"clientes":[{"id":1}]}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["sucesso"] != true {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
