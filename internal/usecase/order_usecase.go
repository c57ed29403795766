package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase/interfaces"
	"mecanica_goelzer/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IOrderUseCase groups the order-derived computations and side effects.
//
// ApplyStockDepletion, PostFinancialMovement and the receivable usecase stay
// individually callable; Fulfill chains them under one store lock and reports
// which steps were applied.
type IOrderUseCase interface {
	ComputeTotal(ctx context.Context, orderID int) (decimal.Decimal, error)
	NextOrderNumber(ctx context.Context) (string, error)
	NextBudgetNumber(ctx context.Context) (string, error)
	ApplyStockDepletion(ctx context.Context, orderID int) (entities.StockDepletion, error)
	PostFinancialMovement(ctx context.Context, orderID int, kind string) (bool, error)
	Fulfill(ctx context.Context, orderID int, paymentMethod string) (entities.FulfillmentReport, error)
}

type OrderUseCase struct {
	repo interfaces.IEntityRepository
	now  func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IEntityRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

// ComputeTotal returns zero for an order that does not exist.
func (u *OrderUseCase) ComputeTotal(ctx context.Context, orderID int) (decimal.Decimal, error) {
	total := decimal.Zero
	err := u.repo.View(ctx, func(tx interfaces.IEntityTx) error {
		order, ok, err := loadOrder(tx, orderID)
		if err != nil || !ok {
			return err
		}
		total, err = computeOrderTotal(tx, order)
		return err
	})
	return total, err
}

func (u *OrderUseCase) NextOrderNumber(ctx context.Context) (string, error) {
	var n string
	err := u.repo.View(ctx, func(tx interfaces.IEntityTx) (err error) {
		n, err = nextOrderNumber(tx, u.now())
		return err
	})
	return n, err
}

func (u *OrderUseCase) NextBudgetNumber(ctx context.Context) (string, error) {
	var n string
	err := u.repo.View(ctx, func(tx interfaces.IEntityTx) (err error) {
		n, err = nextBudgetNumber(tx, u.now())
		return err
	})
	return n, err
}

// ApplyStockDepletion reports Applied=false when the order is missing or
// uses no parts.
func (u *OrderUseCase) ApplyStockDepletion(ctx context.Context, orderID int) (entities.StockDepletion, error) {
	var out entities.StockDepletion
	err := u.repo.Tx(ctx, func(tx interfaces.IEntityTx) error {
		order, ok, err := loadOrder(tx, orderID)
		if err != nil || !ok {
			return err
		}
		out, err = depleteStock(tx, order, "", u.now())
		return err
	})
	if err != nil {
		logger.Log.Error("[order][usecase] stock depletion failed", zap.Int("order_id", orderID), zap.Error(err))
		return out, err
	}
	for _, alert := range out.Alerts {
		logger.Log.Warn("[order][usecase] low stock",
			zap.Int("peca_id", alert.PartID),
			zap.String("descricao", alert.Description),
			zap.String("estoque", alert.Stock.String()),
			zap.String("estoque_minimo", alert.MinStock.String()),
		)
	}
	return out, nil
}

// PostFinancialMovement posts revenue (one movement) or expense (one per
// part). It reports false when the order does not exist.
func (u *OrderUseCase) PostFinancialMovement(ctx context.Context, orderID int, kind string) (bool, error) {
	k := entities.MovementKind(kind)
	if !k.Valid() {
		return false, fmt.Errorf("%w: tipo=%q", ErrInvalidInput, kind)
	}

	posted := false
	err := u.repo.Tx(ctx, func(tx interfaces.IEntityTx) error {
		order, ok, err := loadOrder(tx, orderID)
		if err != nil || !ok {
			return err
		}
		now := u.now()
		if k == entities.MovementKindReceita {
			_, err = postRevenue(tx, order, "", now)
		} else {
			_, err = postPartExpenses(tx, order, "", now)
		}
		posted = err == nil
		return err
	})
	if err != nil {
		logger.Log.Error("[order][usecase] financial movement failed", zap.Int("order_id", orderID), zap.String("tipo", kind), zap.Error(err))
	}
	return posted, err
}

// Fulfill closes the order and applies every side effect in sequence. A
// failing step stops the run; the report tells which steps had already
// been applied, and every record written carries the same operacao_id.
// An order that is already closed is rejected with ErrOrderAlreadyClosed.
func (u *OrderUseCase) Fulfill(ctx context.Context, orderID int, paymentMethod string) (entities.FulfillmentReport, error) {
	report := entities.FulfillmentReport{OperationID: uuid.NewString(), OrderID: orderID}
	now := u.now()
	logger.Log.Info("[order][usecase] fulfill start", zap.Int("order_id", orderID), zap.String("operacao_id", report.OperationID))

	fail := func(step entities.FulfillmentStep, err error) error {
		report.FailedStep = step
		report.Failure = err.Error()
		return fmt.Errorf("%s: %w", step, err)
	}

	err := u.repo.Tx(ctx, func(tx interfaces.IEntityTx) error {
		order, ok, err := loadOrder(tx, orderID)
		if err != nil {
			return fail(entities.FulfillmentStepClose, err)
		}
		if !ok {
			return ErrNotFound
		}
		if order.IsClosed() {
			return fmt.Errorf("%w: ordem %d", ErrOrderAlreadyClosed, orderID)
		}

		if paymentMethod != "" {
			order.PaymentMethod = paymentMethod
		}
		if order.ClosedAt == "" {
			order.ClosedAt = now.Format(entities.DateLayout)
		}
		if !order.HasTotalValue {
			total, err := computeOrderTotal(tx, order)
			if err != nil {
				return fail(entities.FulfillmentStepClose, err)
			}
			order.TotalValue, order.HasTotalValue = total, true
		}
		report.Total = order.TotalValue

		patch := entities.Record{
			entities.FieldStatus:         string(entities.OrderStatusConcluida),
			entities.FieldDataFechamento: order.ClosedAt,
			entities.FieldValorTotal:     entities.Number(order.TotalValue),
			entities.FieldOperacaoID:     report.OperationID,
		}
		if order.PaymentMethod != "" {
			patch[entities.FieldFormaPagamento] = order.PaymentMethod
		}
		if _, err := tx.Update(entities.CollectionOrdens, order.ID, patch); err != nil {
			return fail(entities.FulfillmentStepClose, err)
		}
		report.Closed = true

		depletion, err := depleteStock(tx, order, report.OperationID, now)
		if err != nil {
			return fail(entities.FulfillmentStepStock, err)
		}
		report.StockUpdated = depletion.Applied
		report.StockAlerts = depletion.Alerts

		if _, err := postRevenue(tx, order, report.OperationID, now); err != nil {
			return fail(entities.FulfillmentStepRevenue, err)
		}
		report.RevenuePosted = true

		posted, err := postPartExpenses(tx, order, report.OperationID, now)
		if err != nil {
			return fail(entities.FulfillmentStepExpenses, err)
		}
		report.ExpensesPosted = posted > 0

		if entities.IsDeferredPayment(order.PaymentMethod) {
			rec, err := createReceivable(tx, order, report.OperationID, now)
			if err != nil {
				return fail(entities.FulfillmentStepReceivable, err)
			}
			report.ReceivableID = rec.ID()
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrOrderAlreadyClosed) {
			logger.Log.Error("[order][usecase] fulfill failed",
				zap.Int("order_id", orderID),
				zap.String("operacao_id", report.OperationID),
				zap.String("step", string(report.FailedStep)),
				zap.Error(err),
			)
		}
		return report, err
	}

	logger.Log.Info("[order][usecase] fulfill success",
		zap.Int("order_id", orderID),
		zap.String("operacao_id", report.OperationID),
		zap.Bool("estoque_atualizado", report.StockUpdated),
		zap.Int("conta_a_receber_id", report.ReceivableID),
		zap.Int("alertas_estoque", len(report.StockAlerts)),
	)
	return report, nil
}
