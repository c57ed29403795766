package interfaces

import (
	"context"
	"encoding/json"
	"mecanica_goelzer/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Receivable payments may be charged through it; the provider id is kept on
// the installment for reconciliation.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (entities.ProviderPayment, error)
}
