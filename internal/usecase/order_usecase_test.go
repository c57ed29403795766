package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_goelzer/internal/adapter/persistence/repository"
	"mecanica_goelzer/internal/domain/entities"
	mock_interfaces "mecanica_goelzer/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderUseCase(t *testing.T, seed entities.Snapshot) (*OrderUseCase, *EntityUseCase) {
	t.Helper()
	repo := newStore(t, seed)
	uc := NewOrderUseCase(repo)
	uc.now = fixedClock
	return uc, NewEntityUseCase(repo)
}

func TestOrderUseCase_ComputeTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("labor plus parts minus discount", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, shopSeed())
		total, err := uc.ComputeTotal(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 50 + 120 + 45*4 + 150*16 - 10
		if !total.Equal(decimal.NewFromInt(2740)) {
			t.Fatalf("expected 2740, got %s", total)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		seed := shopSeed()
		seed[entities.CollectionOrdens][0]["desconto"] = 100000
		uc, _ := newOrderUseCase(t, seed)
		total, err := uc.ComputeTotal(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Fatalf("expected 0, got %s", total)
		}
	})

	t.Run("dangling references are skipped", func(t *testing.T) {
		seed := shopSeed()
		seed[entities.CollectionOrdens][0]["servicos_ids"] = []any{1, 99}
		seed[entities.CollectionOrdens][0]["pecas_usadas"] = []any{map[string]any{"peca_id": 99, "quantidade": 1}}
		seed[entities.CollectionOrdens][0]["desconto"] = 0
		uc, _ := newOrderUseCase(t, seed)
		total, err := uc.ComputeTotal(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected 50, got %s", total)
		}
	})

	t.Run("missing order totals zero", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, shopSeed())
		total, err := uc.ComputeTotal(ctx, 42)
		if err != nil || !total.IsZero() {
			t.Fatalf("expected 0 and nil, got %s %v", total, err)
		}
	})
}

func TestOrderUseCase_NextNumbers(t *testing.T) {
	ctx := context.Background()
	seed := shopSeed()
	seed[entities.CollectionOrdens] = append(seed[entities.CollectionOrdens],
		entities.Record{"id": 2, "data_abertura": "2025-02-01"},
		entities.Record{"id": 3, "data_abertura": "2024-12-31"},
	)
	uc, _ := newOrderUseCase(t, seed)

	n, err := uc.NextOrderNumber(ctx)
	if err != nil || n != "2025-0003" {
		t.Fatalf("expected 2025-0003, got %q %v", n, err)
	}
	b, err := uc.NextBudgetNumber(ctx)
	if err != nil || b != "ORC-2025-0001" {
		t.Fatalf("expected ORC-2025-0001, got %q %v", b, err)
	}

	// previewing does not reserve
	again, _ := uc.NextOrderNumber(ctx)
	if again != n {
		t.Fatalf("expected preview to be stable, got %q then %q", n, again)
	}
}

func TestOrderUseCase_ApplyStockDepletion(t *testing.T) {
	ctx := context.Background()

	t.Run("depletes stock and alerts", func(t *testing.T) {
		uc, entity := newOrderUseCase(t, shopSeed())

		out, err := uc.ApplyStockDepletion(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Applied {
			t.Fatalf("expected applied")
		}
		if len(out.Alerts) != 1 || out.Alerts[0].PartID != 3 || !out.Alerts[0].Stock.Equal(decimal.NewFromInt(4)) {
			t.Fatalf("unexpected alerts %+v", out.Alerts)
		}

		oil, _ := entity.Get(ctx, entities.CollectionPecas, 1)
		if oil.Int(entities.FieldQuantidadeEstoque) != 46 {
			t.Fatalf("expected oil stock 46, got %v", oil[entities.FieldQuantidadeEstoque])
		}

		moves, _ := entity.List(ctx, entities.CollectionMovimentacoesEstoque, nil)
		if len(moves) != 2 {
			t.Fatalf("expected 2 stock movements, got %d", len(moves))
		}
		if moves[0].String(entities.FieldTipo) != entities.StockMovementKindSaida || moves[0].String(entities.FieldMotivo) != "OS 1" {
			t.Fatalf("unexpected movement %v", moves[0])
		}
	})

	t.Run("stock may go negative", func(t *testing.T) {
		seed := shopSeed()
		seed[entities.CollectionOrdens][0]["pecas_usadas"] = []any{map[string]any{"peca_id": 4, "quantidade": 20}}
		uc, entity := newOrderUseCase(t, seed)

		out, err := uc.ApplyStockDepletion(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		disc, _ := entity.Get(ctx, entities.CollectionPecas, 4)
		if disc.Int(entities.FieldQuantidadeEstoque) != -5 || len(out.Alerts) != 1 {
			t.Fatalf("unexpected stock %v alerts %+v", disc[entities.FieldQuantidadeEstoque], out.Alerts)
		}
	})

	t.Run("nothing to apply", func(t *testing.T) {
		seed := shopSeed()
		delete(seed[entities.CollectionOrdens][0], "pecas_usadas")
		uc, _ := newOrderUseCase(t, seed)

		out, err := uc.ApplyStockDepletion(ctx, 1)
		if err != nil || out.Applied {
			t.Fatalf("expected not applied, got %+v %v", out, err)
		}
		out, err = uc.ApplyStockDepletion(ctx, 42)
		if err != nil || out.Applied {
			t.Fatalf("expected not applied for missing order, got %+v %v", out, err)
		}
	})
}

func TestOrderUseCase_PostFinancialMovement(t *testing.T) {
	ctx := context.Background()

	t.Run("revenue", func(t *testing.T) {
		uc, entity := newOrderUseCase(t, shopSeed())
		posted, err := uc.PostFinancialMovement(ctx, 1, "receita")
		if err != nil || !posted {
			t.Fatalf("expected posted, got %v %v", posted, err)
		}
		moves, _ := entity.List(ctx, entities.CollectionMovimentacoes, nil)
		if len(moves) != 1 {
			t.Fatalf("expected 1 movement, got %d", len(moves))
		}
		m := moves[0]
		if m.String(entities.FieldDescricao) != "OS 1 - Ana" || m.Int(entities.FieldValor) != 2740 {
			t.Fatalf("unexpected movement %v", m)
		}
		if m.String(entities.FieldData) != "2025-03-15" || m.String(entities.FieldFormaPagamento) != "Dinheiro" {
			t.Fatalf("unexpected movement %v", m)
		}
	})

	t.Run("expense per part at cost", func(t *testing.T) {
		uc, entity := newOrderUseCase(t, shopSeed())
		posted, err := uc.PostFinancialMovement(ctx, 1, "despesa")
		if err != nil || !posted {
			t.Fatalf("expected posted, got %v %v", posted, err)
		}
		moves, _ := entity.List(ctx, entities.CollectionMovimentacoes, map[string]string{"tipo": "despesa"})
		if len(moves) != 2 {
			t.Fatalf("expected 2 movements, got %d", len(moves))
		}
		if moves[0].Int(entities.FieldValor) != 100 || moves[1].Int(entities.FieldValor) != 1280 {
			t.Fatalf("unexpected values %v %v", moves[0][entities.FieldValor], moves[1][entities.FieldValor])
		}
		if moves[1].String(entities.FieldDescricao) != "Peça: Pastilha de Freio - OS 1" {
			t.Fatalf("unexpected description %q", moves[1][entities.FieldDescricao])
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, shopSeed())
		if _, err := uc.PostFinancialMovement(ctx, 1, "transferencia"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, shopSeed())
		posted, err := uc.PostFinancialMovement(ctx, 42, "receita")
		if err != nil || posted {
			t.Fatalf("expected false and nil, got %v %v", posted, err)
		}
	})
}

func TestOrderUseCase_Fulfill(t *testing.T) {
	ctx := context.Background()

	t.Run("deferred payment runs every step", func(t *testing.T) {
		uc, entity := newOrderUseCase(t, shopSeed())

		report, err := uc.Fulfill(ctx, 1, "A Prazo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Completed() || !report.Closed || !report.StockUpdated || !report.RevenuePosted || !report.ExpensesPosted {
			t.Fatalf("unexpected report %+v", report)
		}
		if report.ReceivableID != 1 || len(report.StockAlerts) != 1 || !report.Total.Equal(decimal.NewFromInt(2740)) {
			t.Fatalf("unexpected report %+v", report)
		}

		order, _ := entity.Get(ctx, entities.CollectionOrdens, 1)
		if order.String(entities.FieldStatus) != string(entities.OrderStatusConcluida) ||
			order.String(entities.FieldDataFechamento) != "2025-03-15" ||
			order.String(entities.FieldFormaPagamento) != "A Prazo" ||
			order.String(entities.FieldOperacaoID) != report.OperationID {
			t.Fatalf("unexpected order %v", order)
		}

		recv, _ := entity.Get(ctx, entities.CollectionContasAReceber, report.ReceivableID)
		if recv.String(entities.FieldDataVencimento) != "2025-04-14" || recv.String(entities.FieldStatus) != "Pendente" {
			t.Fatalf("unexpected receivable %v", recv)
		}

		moves, _ := entity.List(ctx, entities.CollectionMovimentacoes, map[string]string{entities.FieldOperacaoID: report.OperationID})
		if len(moves) != 3 {
			t.Fatalf("expected 3 tagged movements, got %d", len(moves))
		}
	})

	t.Run("explicit valor_total is kept", func(t *testing.T) {
		seed := shopSeed()
		seed[entities.CollectionOrdens][0]["valor_total"] = 2500
		uc, entity := newOrderUseCase(t, seed)

		report, err := uc.Fulfill(ctx, 1, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Total.Equal(decimal.NewFromInt(2500)) || report.ReceivableID != 0 {
			t.Fatalf("unexpected report %+v", report)
		}
		revenue, _ := entity.List(ctx, entities.CollectionMovimentacoes, map[string]string{"tipo": "receita"})
		if len(revenue) != 1 || revenue[0].Int(entities.FieldValor) != 2500 {
			t.Fatalf("unexpected revenue %v", revenue)
		}
	})

	t.Run("already closed order is rejected", func(t *testing.T) {
		uc, entity := newOrderUseCase(t, shopSeed())

		first, err := uc.Fulfill(ctx, 1, "A prazo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		report, err := uc.Fulfill(ctx, 1, "A prazo")
		if !errors.Is(err, ErrOrderAlreadyClosed) {
			t.Fatalf("expected ErrOrderAlreadyClosed, got %v", err)
		}
		if report.Closed || report.ReceivableID != 0 {
			t.Fatalf("unexpected report %+v", report)
		}

		oil, _ := entity.Get(ctx, entities.CollectionPecas, 1)
		if oil.Int(entities.FieldQuantidadeEstoque) != 46 {
			t.Fatalf("expected stock 46, got %v", oil[entities.FieldQuantidadeEstoque])
		}
		revenue, _ := entity.List(ctx, entities.CollectionMovimentacoes, map[string]string{"tipo": "receita"})
		receivables, _ := entity.List(ctx, entities.CollectionContasAReceber, nil)
		if len(revenue) != 1 || len(receivables) != 1 {
			t.Fatalf("expected 1 revenue and 1 receivable, got %d and %d", len(revenue), len(receivables))
		}
		order, _ := entity.Get(ctx, entities.CollectionOrdens, 1)
		if order.String(entities.FieldOperacaoID) != first.OperationID {
			t.Fatalf("operacao_id was overwritten: %v", order)
		}
	})

	t.Run("order concluded by hand is rejected", func(t *testing.T) {
		seed := shopSeed()
		seed[entities.CollectionOrdens][0][entities.FieldStatus] = string(entities.OrderStatusConcluida)
		uc, entity := newOrderUseCase(t, seed)

		if _, err := uc.Fulfill(ctx, 1, ""); !errors.Is(err, ErrOrderAlreadyClosed) {
			t.Fatalf("expected ErrOrderAlreadyClosed, got %v", err)
		}
		moves, _ := entity.List(ctx, entities.CollectionMovimentacoesEstoque, nil)
		if len(moves) != 0 {
			t.Fatalf("expected no stock movements, got %d", len(moves))
		}
	})

	t.Run("missing order", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, shopSeed())
		if _, err := uc.Fulfill(ctx, 42, ""); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("failure reports applied steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mock_interfaces.NewMockISnapshotStorage(ctrl)
		raw := []byte(`{"clientes":[{"id":1,"nome":"Ana"}],` +
			`"pecas":[{"id":1,"descricao":"Óleo","custoUnitario":25,"precoVenda":45,"quantidadeEstoque":50,"estoqueMinimo":10}],` +
			`"ordens":[{"id":1,"cliente_id":1,"pecas_usadas":[{"peca_id":1,"quantidade":2}],"status":"Aberta"}]}`)
		storage.EXPECT().Load(gomock.Any()).Return(raw, nil)

		saves := 0
		storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []byte) error {
			saves++
			if saves == 2 {
				return errors.New("disk full")
			}
			return nil
		}).AnyTimes()

		repo, err := repository.NewEntityRepository(ctx, storage, entities.AllCollections)
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		uc := NewOrderUseCase(repo)
		uc.now = fixedClock

		report, err := uc.Fulfill(ctx, 1, "Pix")
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if !report.Closed || report.StockUpdated || report.RevenuePosted || report.FailedStep != entities.FulfillmentStepStock {
			t.Fatalf("unexpected report %+v", report)
		}
		if report.Failure == "" || report.OperationID == "" {
			t.Fatalf("expected failure details, got %+v", report)
		}
	})
}
