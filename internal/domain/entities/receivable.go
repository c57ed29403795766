package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ReceivableStatus string

const (
	ReceivableStatusPendente ReceivableStatus = "Pendente"
	ReceivableStatusParcial  ReceivableStatus = "Parcial"
	ReceivableStatusPago     ReceivableStatus = "Pago"
)

// Receivable document fields.
const (
	FieldValorPago      = "valor_pago"
	FieldDataVencimento = "data_vencimento"
	FieldParcelas       = "parcelas"
)

// ReceivableDueDays is the term granted to orders paid "a prazo".
const ReceivableDueDays = 30

// ReceivableStatusFor derives the status from the amounts. Overpayment is
// reported as Pago.
func ReceivableStatusFor(paid, total decimal.Decimal) ReceivableStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return ReceivableStatusPago
	case paid.IsPositive():
		return ReceivableStatusParcial
	default:
		return ReceivableStatusPendente
	}
}

// IsDeferredPayment reports whether a payment method is paid on term.
func IsDeferredPayment(method string) bool {
	return strings.Contains(strings.ToLower(method), "prazo")
}

// Installment is one payment recorded against a receivable.
type Installment struct {
	Amount        decimal.Decimal
	Date          string
	PaymentMethod string
	ProviderID    string
}

func (i Installment) ToMap() map[string]any {
	m := map[string]any{
		FieldValor:          Number(i.Amount),
		FieldData:           i.Date,
		FieldFormaPagamento: i.PaymentMethod,
	}
	if i.ProviderID != "" {
		m["provider_payment_id"] = i.ProviderID
	}
	return m
}

// Receivable is a typed read view over a "contas_a_receber" record.
type Receivable struct {
	ID           int
	OrderID      int
	CustomerID   int
	Total        decimal.Decimal
	Paid         decimal.Decimal
	Status       ReceivableStatus
	DueDate      string
	Installments []map[string]any
}

func ReceivableFromRecord(r Record) Receivable {
	return Receivable{
		ID:           r.ID(),
		OrderID:      r.Int(FieldOrdemID),
		CustomerID:   r.Int(FieldClienteID),
		Total:        r.Decimal(FieldValorTotal),
		Paid:         r.Decimal(FieldValorPago),
		Status:       ReceivableStatus(r.String(FieldStatus)),
		DueDate:      r.String(FieldDataVencimento),
		Installments: r.Maps(FieldParcelas),
	}
}

func (r Receivable) ToRecord() Record {
	installments := make([]any, 0, len(r.Installments))
	for _, i := range r.Installments {
		installments = append(installments, i)
	}
	rec := Record{
		FieldOrdemID:        r.OrderID,
		FieldClienteID:      r.CustomerID,
		FieldValorTotal:     Number(r.Total),
		FieldValorPago:      Number(r.Paid),
		FieldStatus:         string(r.Status),
		FieldDataVencimento: r.DueDate,
		FieldParcelas:       installments,
	}
	if r.ID > 0 {
		rec[FieldID] = r.ID
	}
	return rec
}

// ProviderPayment is what an external payment provider returned for one charge.
type ProviderPayment struct {
	ID       string
	Status   string
	Response []byte
}
