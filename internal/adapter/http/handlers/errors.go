package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"mecanica_goelzer/internal/usecase"
	"mecanica_goelzer/pkg"
	"mecanica_goelzer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid id", http.StatusBadRequest)
	errInvalidBackup  = pkg.NewDomainErrorSimple("INVALID_BACKUP", "Backup is not a valid document", http.StatusBadRequest)
)

// notFoundCode turns a collection name into its NOT_FOUND error code,
// e.g. contas_a_receber -> CONTAS_A_RECEBER_NOT_FOUND.
func notFoundCode(collection string) string {
	return strings.ToUpper(collection) + "_NOT_FOUND"
}

// mapError translates usecase errors into the API envelope. collection
// names the resource for NOT_FOUND codes.
func mapError(err error, collection string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidMPPayload):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBackup):
		return pkg.NewDomainError("INVALID_BACKUP", "Backup is missing required collections", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCollection):
		return pkg.NewDomainError("COLLECTION_NOT_FOUND", "Collection not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple(notFoundCode(collection), "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceivableNotApplicable):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_APPLICABLE", "Order payment method is not 'a prazo'", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderAlreadyClosed):
		return pkg.NewDomainError("ORDER_ALREADY_CLOSED", "Order is already closed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider rejected the payment", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error, collection string) {
	appErr := mapError(err, collection)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Log.Error("[http][handler] request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// paramInt reads a positive integer path parameter.
func paramInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
