package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase/interfaces"
	"mecanica_goelzer/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidMPPayload     = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayFailed = errors.New("payment gateway failed")
)

const defaultInstallmentPaymentMethod = "Dinheiro"

// PaymentInput is one installment paid against a receivable. MPPayload,
// when present, is charged through the payment gateway before the
// installment is recorded.
type PaymentInput struct {
	Amount        decimal.Decimal
	PaymentMethod string
	MPPayload     json.RawMessage
}

// IReceivableUseCase manages contas_a_receber.
type IReceivableUseCase interface {
	CreateFromOrder(ctx context.Context, orderID int) (entities.Record, error)
	RecordPayment(ctx context.Context, receivableID int, in PaymentInput) (entities.Record, error)
}

type ReceivableUseCase struct {
	repo    interfaces.IEntityRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IReceivableUseCase = (*ReceivableUseCase)(nil)

func NewReceivableUseCase(repo interfaces.IEntityRepository, gateway interfaces.IPaymentGateway) *ReceivableUseCase {
	return &ReceivableUseCase{repo: repo, gateway: gateway, now: time.Now}
}

// CreateFromOrder only applies to orders whose payment method is "a prazo".
func (u *ReceivableUseCase) CreateFromOrder(ctx context.Context, orderID int) (entities.Record, error) {
	var created entities.Record
	err := u.repo.Tx(ctx, func(tx interfaces.IEntityTx) error {
		order, ok, err := loadOrder(tx, orderID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		created, err = createReceivable(tx, order, "", u.now())
		return err
	})
	if err != nil {
		logger.Log.Warn("[receivable][usecase] create failed", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	logger.Log.Info("[receivable][usecase] created",
		zap.Int("order_id", orderID),
		zap.Int("receivable_id", created.ID()),
		zap.String("data_vencimento", created.String(entities.FieldDataVencimento)),
	)
	return created, nil
}

// RecordPayment adds the amount to valor_pago, recomputes the status and
// appends an installment dated today. Overpayment is accepted.
func (u *ReceivableUseCase) RecordPayment(ctx context.Context, receivableID int, in PaymentInput) (entities.Record, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidPaymentAmount
	}

	current, err := u.repo.GetByID(ctx, entities.CollectionContasAReceber, receivableID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	var providerID string
	if len(in.MPPayload) > 0 {
		providerID, err = u.charge(ctx, receivableID, in)
		if err != nil {
			return nil, err
		}
	}

	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = defaultInstallmentPaymentMethod
	}

	var updated entities.Record
	err = u.repo.Tx(ctx, func(tx interfaces.IEntityTx) error {
		rec, err := tx.GetByID(entities.CollectionContasAReceber, receivableID)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrNotFound
		}

		r := entities.ReceivableFromRecord(rec)
		r.Paid = r.Paid.Add(in.Amount)
		r.Status = entities.ReceivableStatusFor(r.Paid, r.Total)

		installments := make([]any, 0, len(r.Installments)+1)
		for _, i := range r.Installments {
			installments = append(installments, i)
		}
		installments = append(installments, entities.Installment{
			Amount:        in.Amount,
			Date:          u.now().Format(entities.DateLayout),
			PaymentMethod: method,
			ProviderID:    providerID,
		}.ToMap())

		updated, err = tx.Update(entities.CollectionContasAReceber, receivableID, entities.Record{
			entities.FieldValorPago: entities.Number(r.Paid),
			entities.FieldStatus:    string(r.Status),
			entities.FieldParcelas:  installments,
		})
		return err
	})
	if err != nil {
		logger.Log.Error("[receivable][usecase] payment failed", zap.Int("receivable_id", receivableID), zap.Error(err))
		return nil, err
	}

	logger.Log.Info("[receivable][usecase] payment recorded",
		zap.Int("receivable_id", receivableID),
		zap.String("valor", in.Amount.String()),
		zap.String("status", updated.String(entities.FieldStatus)),
	)
	return updated, nil
}

// charge sends the payment to the provider outside the store lock. The
// amount in the payload is always the installment amount.
func (u *ReceivableUseCase) charge(ctx context.Context, receivableID int, in PaymentInput) (string, error) {
	if u.gateway == nil {
		logger.Log.Error("[receivable][usecase] gateway not configured", zap.Int("receivable_id", receivableID))
		return "", ErrPaymentGatewayFailed
	}

	var req map[string]any
	if err := json.Unmarshal(in.MPPayload, &req); err != nil || req == nil {
		return "", ErrInvalidMPPayload
	}
	req["transaction_amount"] = in.Amount.InexactFloat64()
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = "conta_a_receber-" + strconv.Itoa(receivableID)
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", ErrInvalidMPPayload
	}

	payment, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.Log.Error("[receivable][usecase] gateway create failed", zap.Int("receivable_id", receivableID), zap.Error(err))
		return "", errors.Join(ErrPaymentGatewayFailed, err)
	}
	logger.Log.Info("[receivable][usecase] gateway charged",
		zap.Int("receivable_id", receivableID),
		zap.String("provider_payment_id", payment.ID),
		zap.String("provider_status", payment.Status),
	)
	return payment.ID, nil
}
