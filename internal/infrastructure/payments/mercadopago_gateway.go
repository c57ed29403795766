package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase/interfaces"
	"mecanica_goelzer/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges receivable installments through Mercado Pago.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if IsMockEnabled() {
		logger.Log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		logger.Log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (entities.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		logger.Log.Error("[payment][gateway] gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	logger.Log.Info("[payment][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		logger.Log.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return entities.ProviderPayment{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logger.Log.Error("[payment][gateway] sdk create failed", zap.Error(err))
		return entities.ProviderPayment{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return entities.ProviderPayment{}, err
	}
	logger.Log.Info("[payment][gateway] create success",
		zap.Any("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)

	return entities.ProviderPayment{ID: fmt.Sprintf("%d", resp.ID), Status: resp.Status, Response: b}, nil
}

func mockPayment(requestPayload json.RawMessage) (entities.ProviderPayment, error) {
	logger.Log.Info("[payment][gateway] mock create start", zap.Int("payload_len", len(requestPayload)))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return entities.ProviderPayment{}, err
	}

	logger.Log.Info("[payment][gateway] mock create success", zap.String("provider_payment_id", id))
	return entities.ProviderPayment{ID: id, Status: "approved", Response: b}, nil
}

// IsMockEnabled reports whether PAYMENT_GATEWAY_MOCK (or MERCADOPAGO_MOCK) is set.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
