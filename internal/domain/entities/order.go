package entities

import (
	"slices"

	"github.com/shopspring/decimal"
)

// OrderStatus is free-form in the document; these are the values the
// backend gives meaning to.
type OrderStatus string

const (
	OrderStatusAberta     OrderStatus = "Aberta"
	OrderStatusEmExecucao OrderStatus = "Em Execução"
	OrderStatusConcluida  OrderStatus = "Concluída"
)

// OpenOrderStatuses are matched exactly and case-sensitively.
var OpenOrderStatuses = []OrderStatus{OrderStatusAberta, OrderStatusEmExecucao}

func IsOpenOrderStatus(status string) bool {
	return slices.Contains(OpenOrderStatuses, OrderStatus(status))
}

// Order document fields.
const (
	FieldClienteID      = "cliente_id"
	FieldVeiculoID      = "veiculo_id"
	FieldServicosIDs    = "servicos_ids"
	FieldPecasUsadas    = "pecas_usadas"
	FieldDesconto       = "desconto"
	FieldStatus         = "status"
	FieldValorTotal     = "valor_total"
	FieldFormaPagamento = "forma_pagamento"
	FieldDataAbertura   = "data_abertura"
	FieldDataFechamento = "data_fechamento"
	FieldNumero         = "numero"
	FieldOrdemID        = "ordem_id"
	FieldOperacaoID     = "operacao_id"
)

// PartUsage is one {peca_id, quantidade} line of an order. Older documents
// use "id", and some clients send "part_id"/"quantity"; all are accepted.
type PartUsage struct {
	PartID   int
	Quantity decimal.Decimal
}

// Order is a typed read view over an "ordens" record.
type Order struct {
	ID            int
	CustomerID    int
	VehicleID     int
	ServiceIDs    []int
	PartsUsed     []PartUsage
	Discount      decimal.Decimal
	Status        string
	TotalValue    decimal.Decimal
	HasTotalValue bool
	PaymentMethod string
	OpenedAt      string
	ClosedAt      string
	Number        string
	OperationID   string
}

func OrderFromRecord(r Record) Order {
	o := Order{
		ID:            r.ID(),
		CustomerID:    r.Int(FieldClienteID),
		VehicleID:     r.Int(FieldVeiculoID),
		ServiceIDs:    r.IntSlice(FieldServicosIDs),
		Discount:      r.Decimal(FieldDesconto),
		Status:        r.String(FieldStatus),
		TotalValue:    r.Decimal(FieldValorTotal),
		HasTotalValue: r.Has(FieldValorTotal),
		PaymentMethod: r.String(FieldFormaPagamento),
		OpenedAt:      r.String(FieldDataAbertura),
		ClosedAt:      r.String(FieldDataFechamento),
		Number:        r.String(FieldNumero),
		OperationID:   r.String(FieldOperacaoID),
	}
	for _, raw := range r.Maps(FieldPecasUsadas) {
		line := Record(raw)
		partID, ok := firstInt(line, FieldPecaID, FieldID, "part_id")
		if !ok {
			continue
		}
		qty := line.Decimal(FieldQuantidade)
		if !line.Has(FieldQuantidade) {
			qty = line.Decimal("quantity")
		}
		o.PartsUsed = append(o.PartsUsed, PartUsage{PartID: partID, Quantity: qty})
	}
	return o
}

// IsClosed reports an order already concluded, either by status or because a
// fulfillment run stamped it.
func (o Order) IsClosed() bool {
	return o.Status == string(OrderStatusConcluida) || o.OperationID != ""
}

func (o Order) UsesService(serviceID int) bool {
	return slices.Contains(o.ServiceIDs, serviceID)
}

func firstInt(r Record, keys ...string) (int, bool) {
	for _, key := range keys {
		if n, ok := ToInt(r[key]); ok {
			return n, true
		}
	}
	return 0, false
}
