package handlers

import (
	"errors"
	"io"
	"net/http"

	request "mecanica_goelzer/internal/adapter/http/dto/request"
	response "mecanica_goelzer/internal/adapter/http/dto/response"
	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase"
	"mecanica_goelzer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler serves the order computations and side effects.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Total godoc
// @Summary  Compute an order total
// @Description  Labor plus parts minus discount, never below zero. A missing order totals 0.
// @Tags     ordens
// @Produce  json
// @Param    id  path  integer  true  "Order id"
// @Success  200  {object}  response.OrderTotalResponse
// @Router   /ordens/{id}/total [get]
func (h *OrderHandler) Total(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		writeAppError(c, errInvalidID)
		return
	}

	total, err := h.usecase.ComputeTotal(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, entities.CollectionOrdens)
		return
	}
	c.JSON(http.StatusOK, response.OrderTotalResponse{OrdemID: id, Total: total.InexactFloat64()})
}

// NextOrderNumber godoc
// @Summary  Preview the next order number
// @Tags     ordens
// @Produce  json
// @Success  200  {object}  response.NextNumberResponse
// @Router   /ordens/proximo_numero [get]
func (h *OrderHandler) NextOrderNumber(c *gin.Context) {
	n, err := h.usecase.NextOrderNumber(c.Request.Context())
	if err != nil {
		writeError(c, err, entities.CollectionOrdens)
		return
	}
	c.JSON(http.StatusOK, response.NextNumberResponse{ProximoNumero: n})
}

// NextBudgetNumber godoc
// @Summary  Preview the next budget number
// @Tags     orcamentos
// @Produce  json
// @Success  200  {object}  response.NextNumberResponse
// @Router   /orcamentos/proximo_numero [get]
func (h *OrderHandler) NextBudgetNumber(c *gin.Context) {
	n, err := h.usecase.NextBudgetNumber(c.Request.Context())
	if err != nil {
		writeError(c, err, entities.CollectionOrcamentos)
		return
	}
	c.JSON(http.StatusOK, response.NextNumberResponse{ProximoNumero: n})
}

// UpdateStock godoc
// @Summary  Deplete stock for the parts used by an order
// @Tags     ordens
// @Produce  json
// @Param    id  path  integer  true  "Order id"
// @Success  200  {object}  response.StockDepletionResponse
// @Router   /ordens/{id}/atualizar_estoque [post]
func (h *OrderHandler) UpdateStock(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		writeAppError(c, errInvalidID)
		return
	}

	depletion, err := h.usecase.ApplyStockDepletion(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, entities.CollectionOrdens)
		return
	}
	c.JSON(http.StatusOK, response.FromStockDepletion(depletion))
}

// PostFinancialMovement godoc
// @Summary  Post revenue or part expenses for an order
// @Tags     ordens
// @Produce  json
// @Param    id    path  integer  true  "Order id"
// @Param    tipo  path  string   true  "receita or despesa"
// @Success  200  {object}  response.SuccessResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /ordens/{id}/registrar_movimentacao_financeira/{tipo} [post]
func (h *OrderHandler) PostFinancialMovement(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		writeAppError(c, errInvalidID)
		return
	}

	posted, err := h.usecase.PostFinancialMovement(c.Request.Context(), id, c.Param("tipo"))
	if err != nil {
		writeError(c, err, entities.CollectionOrdens)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Sucesso: posted})
}

// Fulfill godoc
// @Summary  Close an order and apply every side effect
// @Description  Closes the order, depletes stock, posts revenue and part expenses and opens a receivable for "a prazo" payments. The report tells which steps were applied.
// @Tags     ordens
// @Accept   json
// @Produce  json
// @Param    id    path  integer                      true   "Order id"
// @Param    body  body  request.FulfillOrderRequest  false  "Payment method"
// @Success  200  {object}  response.FulfillmentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Failure  500  {object}  response.FulfillmentResponse
// @Router   /ordens/{id}/finalizar [post]
func (h *OrderHandler) Fulfill(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		writeAppError(c, errInvalidID)
		return
	}

	var payload request.FulfillOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeAppError(c, errInvalidRequest)
		return
	}

	report, err := h.usecase.Fulfill(c.Request.Context(), id, payload.ResolvePaymentMethod())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) || errors.Is(err, usecase.ErrOrderAlreadyClosed) {
			writeError(c, err, entities.CollectionOrdens)
			return
		}
		logger.Log.Error("[order][handler] fulfill failed",
			zap.Int("order_id", id),
			zap.String("operacao_id", report.OperationID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, response.FromFulfillmentReport(report))
		return
	}
	c.JSON(http.StatusOK, response.FromFulfillmentReport(report))
}
