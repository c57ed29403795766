package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind partitions "movimentacoes" into revenue and expense.
type MovementKind string

const (
	MovementKindReceita MovementKind = "receita"
	MovementKindDespesa MovementKind = "despesa"
)

func (k MovementKind) Valid() bool {
	return k == MovementKindReceita || k == MovementKindDespesa
}

// Ledger document fields shared by movements and general expenses.
const (
	FieldData  = "data"
	FieldValor = "valor"
	FieldTipo  = "tipo"
)

// DateLayout is the ISO date format used by every "data*" field.
const DateLayout = "2006-01-02"

// FinancialMovement is one "movimentacoes" entry to be written.
type FinancialMovement struct {
	Kind          MovementKind
	Description   string
	Amount        decimal.Decimal
	Category      string
	Date          string
	OrderID       int
	PaymentMethod string
	OperationID   string
}

func (m FinancialMovement) ToRecord() Record {
	r := Record{
		FieldTipo:      string(m.Kind),
		FieldDescricao: m.Description,
		FieldValor:     Number(m.Amount),
		FieldCategoria: m.Category,
		FieldData:      m.Date,
		FieldOrdemID:   m.OrderID,
	}
	if m.PaymentMethod != "" {
		r[FieldFormaPagamento] = m.PaymentMethod
	}
	if m.OperationID != "" {
		r[FieldOperacaoID] = m.OperationID
	}
	return r
}

// StockMovementKindSaida marks outbound stock.
const StockMovementKindSaida = "saida"

// Stock movement and log document fields.
const (
	FieldPecaID      = "peca_id"
	FieldQuantidade  = "quantidade"
	FieldMotivo      = "motivo"
	FieldTimestamp   = "timestamp"
	FieldAcao        = "acao"
	FieldDetalhes    = "detalhes"
	FieldDataEmissao = "data_emissao"
)

// StockMovement is one "movimentacoes_estoque" entry to be written.
type StockMovement struct {
	PartID      int
	Quantity    decimal.Decimal
	Kind        string
	Reason      string
	OrderID     int
	Timestamp   time.Time
	OperationID string
}

func (m StockMovement) ToRecord() Record {
	r := Record{
		FieldPecaID:     m.PartID,
		FieldQuantidade: Number(m.Quantity),
		FieldTipo:       m.Kind,
		FieldMotivo:     m.Reason,
		FieldOrdemID:    m.OrderID,
		FieldTimestamp:  m.Timestamp.UTC().Format(time.RFC3339),
	}
	if m.OperationID != "" {
		r[FieldOperacaoID] = m.OperationID
	}
	return r
}
