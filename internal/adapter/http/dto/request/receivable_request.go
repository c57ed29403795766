package request

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentValue = errors.New("invalid valor_pago")
)

// CreateReceivableRequest opens a receivable for an order paid on term.
type CreateReceivableRequest struct {
	OrdemID int `json:"ordem_id" binding:"required"`
}

// PayReceivableRequest records one installment. MPPayload, when present, is
// forwarded to Mercado Pago before the installment is stored.
type PayReceivableRequest struct {
	ValorPago      json.Number     `json:"valor_pago" binding:"required"`
	FormaPagamento string          `json:"forma_pagamento"`
	MPPayload      json.RawMessage `json:"mp_payload"`
}

func (r PayReceivableRequest) ResolveAmount() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.ValorPago.String()))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, ErrInvalidPaymentValue
	}
	return d, nil
}

func (r PayReceivableRequest) ResolveMPPayload() json.RawMessage {
	v := strings.TrimSpace(string(r.MPPayload))
	if v == "" || v == "null" {
		return nil
	}
	return r.MPPayload
}
