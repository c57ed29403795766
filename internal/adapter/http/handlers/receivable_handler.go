package handlers

import (
	"net/http"

	request "mecanica_goelzer/internal/adapter/http/dto/request"
	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase"
	"mecanica_goelzer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReceivableHandler serves contas_a_receber creation and payments.
type ReceivableHandler struct {
	usecase usecase.IReceivableUseCase
}

func NewReceivableHandler(uc usecase.IReceivableUseCase) *ReceivableHandler {
	return &ReceivableHandler{usecase: uc}
}

// Create godoc
// @Summary  Open a receivable for an order paid "a prazo"
// @Tags     contas_a_receber
// @Accept   json
// @Produce  json
// @Param    body  body  request.CreateReceivableRequest  true  "Order reference"
// @Success  201  {object}  object
// @Failure  404  {object}  pkg.HTTPError
// @Failure  422  {object}  pkg.HTTPError
// @Router   /contas_a_receber [post]
func (h *ReceivableHandler) Create(c *gin.Context) {
	var payload request.CreateReceivableRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.OrdemID <= 0 {
		writeAppError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.CreateFromOrder(c.Request.Context(), payload.OrdemID)
	if err != nil {
		writeError(c, err, entities.CollectionOrdens)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Pay godoc
// @Summary  Record a payment against a receivable
// @Description  Adds valor_pago, recomputes the status and appends an installment. With mp_payload the amount is charged through Mercado Pago first.
// @Tags     contas_a_receber
// @Accept   json
// @Produce  json
// @Param    id    path  integer                       true  "Receivable id"
// @Param    body  body  request.PayReceivableRequest  true  "Payment"
// @Success  200  {object}  object
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contas_a_receber/{id}/pagar [post]
func (h *ReceivableHandler) Pay(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		writeAppError(c, errInvalidID)
		return
	}

	var payload request.PayReceivableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		writeAppError(c, errInvalidRequest)
		return
	}

	logger.Log.Info("[receivable][handler] pay start", zap.Int("receivable_id", id), zap.String("valor", amount.String()))
	updated, err := h.usecase.RecordPayment(c.Request.Context(), id, usecase.PaymentInput{
		Amount:        amount,
		PaymentMethod: payload.FormaPagamento,
		MPPayload:     payload.ResolveMPPayload(),
	})
	if err != nil {
		writeError(c, err, entities.CollectionContasAReceber)
		return
	}
	c.JSON(http.StatusOK, updated)
}
