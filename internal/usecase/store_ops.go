package usecase

import (
	"fmt"
	"strings"
	"time"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Operations shared by several usecases. They run against an IEntityTx so a
// caller can chain them under one store lock.

func loadOrder(tx interfaces.IEntityTx, orderID int) (entities.Order, bool, error) {
	rec, err := tx.GetByID(entities.CollectionOrdens, orderID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if rec == nil {
		return entities.Order{}, false, nil
	}
	return entities.OrderFromRecord(rec), true, nil
}

func loadPart(tx interfaces.IEntityTx, partID int) (entities.Part, bool, error) {
	rec, err := tx.GetByID(entities.CollectionPecas, partID)
	if err != nil || rec == nil {
		return entities.Part{}, false, err
	}
	return entities.PartFromRecord(rec), true, nil
}

// computeOrderTotal sums labor and parts, subtracts the discount and clamps
// at zero. References that no longer resolve are skipped.
func computeOrderTotal(tx interfaces.IEntityTx, order entities.Order) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, serviceID := range order.ServiceIDs {
		rec, err := tx.GetByID(entities.CollectionServicos, serviceID)
		if err != nil {
			return decimal.Zero, err
		}
		if rec == nil {
			continue
		}
		total = total.Add(entities.ServiceFromRecord(rec).LaborPrice)
	}
	for _, usage := range order.PartsUsed {
		part, ok, err := loadPart(tx, usage.PartID)
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			continue
		}
		total = total.Add(part.SalePrice.Mul(usage.Quantity))
	}
	total = total.Sub(order.Discount)
	if total.IsNegative() {
		return decimal.Zero, nil
	}
	return total, nil
}

// orderValue is the stored valor_total, or the computed total when absent.
func orderValue(tx interfaces.IEntityTx, order entities.Order) (decimal.Decimal, error) {
	if order.HasTotalValue {
		return order.TotalValue, nil
	}
	return computeOrderTotal(tx, order)
}

// summarize aggregates movements and general expenses whose date starts
// with prefix.
func summarize(tx interfaces.IEntityTx, prefix string) (entities.FinancialSummary, error) {
	var s entities.FinancialSummary
	datedWith := func(rec entities.Record) bool {
		return strings.HasPrefix(rec.String(entities.FieldData), prefix)
	}

	movements, err := tx.Find(entities.CollectionMovimentacoes, datedWith)
	if err != nil {
		return s, err
	}
	for _, mov := range movements {
		switch entities.MovementKind(mov.String(entities.FieldTipo)) {
		case entities.MovementKindReceita:
			s.Revenue = s.Revenue.Add(mov.Decimal(entities.FieldValor))
		case entities.MovementKindDespesa:
			s.Expense = s.Expense.Add(mov.Decimal(entities.FieldValor))
		}
	}

	expenses, err := tx.Find(entities.CollectionDespesasGerais, datedWith)
	if err != nil {
		return s, err
	}
	for _, exp := range expenses {
		s.Expense = s.Expense.Add(exp.Decimal(entities.FieldValor))
	}
	return s, nil
}

func countDatedIn(tx interfaces.IEntityTx, collection, field string, year int) (int, error) {
	prefix := fmt.Sprintf("%d", year)
	recs, err := tx.Find(collection, func(rec entities.Record) bool {
		return strings.HasPrefix(rec.String(field), prefix)
	})
	return len(recs), err
}

func nextOrderNumber(tx interfaces.IEntityTx, now time.Time) (string, error) {
	n, err := countDatedIn(tx, entities.CollectionOrdens, entities.FieldDataAbertura, now.Year())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%04d", now.Year(), n+1), nil
}

func nextBudgetNumber(tx interfaces.IEntityTx, now time.Time) (string, error) {
	n, err := countDatedIn(tx, entities.CollectionOrcamentos, entities.FieldDataEmissao, now.Year())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORC-%d-%04d", now.Year(), n+1), nil
}

// depleteStock decrements stock for every resolvable part of the order and
// writes one outbound stock movement per line.
func depleteStock(tx interfaces.IEntityTx, order entities.Order, operationID string, now time.Time) (entities.StockDepletion, error) {
	var out entities.StockDepletion
	if len(order.PartsUsed) == 0 {
		return out, nil
	}

	for _, usage := range order.PartsUsed {
		part, ok, err := loadPart(tx, usage.PartID)
		if err != nil {
			return out, err
		}
		if !ok {
			continue
		}

		part.Stock = part.Stock.Sub(usage.Quantity)
		if _, err := tx.Update(entities.CollectionPecas, part.ID, entities.Record{
			entities.FieldQuantidadeEstoque: entities.Number(part.Stock),
		}); err != nil {
			return out, err
		}

		movement := entities.StockMovement{
			PartID:      part.ID,
			Quantity:    usage.Quantity,
			Kind:        entities.StockMovementKindSaida,
			Reason:      fmt.Sprintf("OS %d", order.ID),
			OrderID:     order.ID,
			Timestamp:   now,
			OperationID: operationID,
		}
		if _, err := tx.Add(entities.CollectionMovimentacoesEstoque, movement.ToRecord()); err != nil {
			return out, err
		}

		if part.IsLowStock() {
			out.Alerts = append(out.Alerts, entities.StockAlert{
				PartID:      part.ID,
				Description: part.Description,
				Stock:       part.Stock,
				MinStock:    part.MinStock,
			})
		}
	}
	out.Applied = true
	return out, nil
}

func movementDate(order entities.Order, now time.Time) string {
	if order.ClosedAt != "" {
		return order.ClosedAt
	}
	return now.Format(entities.DateLayout)
}

// postRevenue writes one revenue movement for the order value.
func postRevenue(tx interfaces.IEntityTx, order entities.Order, operationID string, now time.Time) (entities.Record, error) {
	value, err := orderValue(tx, order)
	if err != nil {
		return nil, err
	}

	customer := "Cliente"
	if rec, err := tx.GetByID(entities.CollectionClientes, order.CustomerID); err != nil {
		return nil, err
	} else if name := rec.String("nome"); name != "" {
		customer = name
	}

	paymentMethod := order.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Dinheiro"
	}

	return tx.Add(entities.CollectionMovimentacoes, entities.FinancialMovement{
		Kind:          entities.MovementKindReceita,
		Description:   fmt.Sprintf("OS %d - %s", order.ID, customer),
		Amount:        value,
		Category:      "Serviços",
		Date:          movementDate(order, now),
		OrderID:       order.ID,
		PaymentMethod: paymentMethod,
		OperationID:   operationID,
	}.ToRecord())
}

// postPartExpenses writes one expense movement per resolvable part, valued at cost.
func postPartExpenses(tx interfaces.IEntityTx, order entities.Order, operationID string, now time.Time) (int, error) {
	posted := 0
	for _, usage := range order.PartsUsed {
		part, ok, err := loadPart(tx, usage.PartID)
		if err != nil {
			return posted, err
		}
		if !ok {
			continue
		}
		if _, err := tx.Add(entities.CollectionMovimentacoes, entities.FinancialMovement{
			Kind:        entities.MovementKindDespesa,
			Description: fmt.Sprintf("Peça: %s - OS %d", part.Description, order.ID),
			Amount:      part.UnitCost.Mul(usage.Quantity),
			Category:    "Peças",
			Date:        movementDate(order, now),
			OrderID:     order.ID,
			OperationID: operationID,
		}.ToRecord()); err != nil {
			return posted, err
		}
		posted++
	}
	return posted, nil
}

// createReceivable opens a receivable for an order paid on term.
func createReceivable(tx interfaces.IEntityTx, order entities.Order, operationID string, now time.Time) (entities.Record, error) {
	if !entities.IsDeferredPayment(order.PaymentMethod) {
		return nil, ErrReceivableNotApplicable
	}
	value, err := orderValue(tx, order)
	if err != nil {
		return nil, err
	}

	rec := entities.Receivable{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      value,
		Paid:       decimal.Zero,
		Status:     entities.ReceivableStatusPendente,
		DueDate:    now.AddDate(0, 0, entities.ReceivableDueDays).Format(entities.DateLayout),
	}.ToRecord()
	rec[entities.FieldFormaPagamento] = order.PaymentMethod
	rec["data_criacao"] = now.Format(entities.DateLayout)
	if operationID != "" {
		rec[entities.FieldOperacaoID] = operationID
	}
	return tx.Add(entities.CollectionContasAReceber, rec)
}
