package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"mecanica_goelzer/internal/adapter/persistence/repository"
	"mecanica_goelzer/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	storage := repository.NewSnapshotFileStorage(filepath.Join(t.TempDir(), "data.json"))
	repo, err := repository.NewEntityRepository(context.Background(), storage, entities.AllCollections)
	require.NoError(t, err)
	return &apiClient{t: t, router: newRouter(repo, nil, noop.NewTracerProvider().Tracer("test"))}
}

func (a *apiClient) do(method, path string, body any) (int, []byte) {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func (a *apiClient) object(method, path string, body any, wantStatus int) map[string]any {
	a.t.Helper()
	status, raw := a.do(method, path, body)
	require.Equal(a.t, wantStatus, status, "%s %s: %s", method, path, raw)
	var out map[string]any
	require.NoError(a.t, json.Unmarshal(raw, &out))
	return out
}

func (a *apiClient) list(path string) []map[string]any {
	a.t.Helper()
	status, raw := a.do(http.MethodGet, path, nil)
	require.Equal(a.t, http.StatusOK, status, "GET %s: %s", path, raw)
	var out []map[string]any
	require.NoError(a.t, json.Unmarshal(raw, &out))
	return out
}

func TestAPI_OrderLifecycle(t *testing.T) {
	api := newTestAPI(t)
	today := time.Now().Format(entities.DateLayout)

	client := api.object(http.MethodPost, "/api/clientes", map[string]any{"nome": "Ana", "id": 77}, http.StatusCreated)
	assert.Equal(t, 1.0, client["id"])

	api.object(http.MethodPost, "/api/veiculos", map[string]any{"cliente_id": 1, "placa": "ABC1D23"}, http.StatusCreated)

	order := api.object(http.MethodPost, "/api/ordens", map[string]any{
		"cliente_id":   1,
		"veiculo_id":   1,
		"servicos_ids": []int{1, 2},
		"pecas_usadas": []map[string]any{{"peca_id": 1, "quantidade": 2}},
		"desconto":     30,
		"status":       "Aberta",
	}, http.StatusCreated)
	orderID := int(order["id"].(float64))
	assert.Equal(t, fmt.Sprintf("%d-0001", time.Now().Year()), order["numero"])
	assert.Equal(t, today, order["data_abertura"])

	next := api.object(http.MethodGet, "/api/ordens/proximo_numero", nil, http.StatusOK)
	assert.Equal(t, fmt.Sprintf("%d-0002", time.Now().Year()), next["proximo_numero"])

	// 50 + 80 + 45*2 - 30
	total := api.object(http.MethodGet, fmt.Sprintf("/api/ordens/%d/total", orderID), nil, http.StatusOK)
	assert.Equal(t, 190.0, total["total"])

	report := api.object(http.MethodPost, fmt.Sprintf("/api/ordens/%d/finalizar", orderID),
		map[string]any{"forma_pagamento": "A prazo"}, http.StatusOK)
	assert.Equal(t, true, report["concluida"])
	assert.Equal(t, 1.0, report["conta_a_receber_id"])

	again := api.object(http.MethodPost, fmt.Sprintf("/api/ordens/%d/finalizar", orderID),
		map[string]any{"forma_pagamento": "A prazo"}, http.StatusConflict)
	assert.Equal(t, "ORDER_ALREADY_CLOSED", again["code"])

	closed := api.object(http.MethodGet, fmt.Sprintf("/api/ordens/%d", orderID), nil, http.StatusOK)
	assert.Equal(t, "Concluída", closed["status"])
	assert.Equal(t, 190.0, closed["valor_total"])

	oil := api.object(http.MethodGet, "/api/pecas/1", nil, http.StatusOK)
	assert.Equal(t, 48.0, oil["quantidadeEstoque"])
	assert.Len(t, api.list("/api/movimentacoes_estoque"), 1)

	paid := api.object(http.MethodPost, "/api/contas_a_receber/1/pagar", map[string]any{"valor_pago": 190}, http.StatusOK)
	assert.Equal(t, "Pago", paid["status"])

	dashboard := api.object(http.MethodGet, "/api/dashboard", nil, http.StatusOK)
	assert.Equal(t, 1.0, dashboard["totalClientes"])
	assert.Equal(t, 0.0, dashboard["osAbertas"])
	assert.Equal(t, 190.0, dashboard["receitaMensal"])
	assert.Equal(t, 50.0, dashboard["despesaMensal"])

	service := api.object(http.MethodGet, "/api/relatorios/servico/1", nil, http.StatusOK)
	assert.Equal(t, 1.0, service["vezes_usado"])

	filtered := api.list(fmt.Sprintf("/api/ordens?ano=%d&mes=%d", time.Now().Year(), int(time.Now().Month())))
	assert.Len(t, filtered, 1)
	assert.Len(t, api.list("/api/ordens?servico_id=5"), 0)
}

func TestAPI_Errors(t *testing.T) {
	api := newTestAPI(t)

	body := api.object(http.MethodGet, "/api/clientes/99", nil, http.StatusNotFound)
	assert.Equal(t, "CLIENTES_NOT_FOUND", body["code"])

	body = api.object(http.MethodGet, "/api/naves", nil, http.StatusNotFound)
	assert.Equal(t, "NOT_FOUND", body["code"])

	body = api.object(http.MethodPost, "/api/contas_a_receber", map[string]any{"ordem_id": 5}, http.StatusNotFound)
	assert.Equal(t, "ORDENS_NOT_FOUND", body["code"])

	api.object(http.MethodPost, "/api/ordens", map[string]any{"forma_pagamento": "Pix"}, http.StatusCreated)
	body = api.object(http.MethodPost, "/api/contas_a_receber", map[string]any{"ordem_id": 1}, http.StatusUnprocessableEntity)
	assert.Equal(t, "RECEIVABLE_NOT_APPLICABLE", body["code"])

	api.object(http.MethodPost, "/api/ordens/1/registrar_movimentacao_financeira/outro", nil, http.StatusBadRequest)
	api.object(http.MethodGet, "/api/relatorios/financeiro-mensal/2025/0", nil, http.StatusBadRequest)
}

func TestAPI_BackupRestore(t *testing.T) {
	api := newTestAPI(t)
	api.object(http.MethodPost, "/api/clientes", map[string]any{"nome": "Ana"}, http.StatusCreated)

	backup := api.object(http.MethodGet, "/api/backup", nil, http.StatusOK)
	assert.Len(t, backup, len(entities.AllCollections))

	status, _ := api.do(http.MethodDelete, "/api/clientes/1", nil)
	require.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, api.list("/api/clientes"))

	ok := api.object(http.MethodPost, "/api/restore", backup, http.StatusOK)
	assert.Equal(t, true, ok["sucesso"])
	assert.Len(t, api.list("/api/clientes"), 1)

	delete(backup, entities.CollectionPecas)
	body := api.object(http.MethodPost, "/api/restore", backup, http.StatusBadRequest)
	assert.Equal(t, "INVALID_BACKUP", body["code"])
}

func TestRouter_Middleware(t *testing.T) {
	api := newTestAPI(t)

	t.Run("ping", func(t *testing.T) {
		body := api.object(http.MethodGet, "/ping", nil, http.StatusOK)
		assert.Equal(t, "pong", body["message"])
	})

	t.Run("request id is echoed or generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(headerRequestID, "abc-123")
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(headerRequestID))

		w = httptest.NewRecorder()
		api.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.NotEmpty(t, w.Header().Get(headerRequestID))
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/clientes", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig("")
	assert.True(t, all.AllowAllOrigins)

	some := corsConfig(" http://a.com , ,http://b.com")
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, some.AllowOrigins)
}
