package request

import "strings"

// FulfillOrderRequest optionally sets the payment method used to close the order.
type FulfillOrderRequest struct {
	FormaPagamento string `json:"forma_pagamento"`
}

func (r FulfillOrderRequest) ResolvePaymentMethod() string {
	return strings.TrimSpace(r.FormaPagamento)
}
