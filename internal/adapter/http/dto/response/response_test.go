package response

import (
	"testing"

	"mecanica_goelzer/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromDashboard(t *testing.T) {
	d := entities.Dashboard{
		TotalCustomers: 2,
		TotalVehicles:  1,
		OpenOrders:     3,
		Month:          entities.FinancialSummary{Revenue: decimal.NewFromInt(300), Expense: decimal.NewFromInt(170)},
	}

	res := FromDashboard(d)
	if res.TotalClientes != 2 || res.TotalVeiculos != 1 || res.OSAbertas != 3 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.ReceitaMensal != 300 || res.DespesaMensal != 170 || res.LucroMensal != 130 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
}

func TestFromAnnualReport(t *testing.T) {
	r := entities.AnnualReport{Year: 2024, FinancialSummary: entities.FinancialSummary{Revenue: decimal.NewFromInt(10), Expense: decimal.NewFromInt(25)}}
	res := FromAnnualReport(r)
	if res.Ano != 2024 || res.LucroAnual != -15 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromFulfillmentReport(t *testing.T) {
	t.Run("completed with receivable", func(t *testing.T) {
		res := FromFulfillmentReport(entities.FulfillmentReport{
			OperationID:  "op-1",
			OrderID:      7,
			Total:        decimal.RequireFromString("170.5"),
			Closed:       true,
			StockUpdated: true,
			ReceivableID: 3,
		})
		if !res.Concluida || res.ContaAReceberID == nil || *res.ContaAReceberID != 3 {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.ValorTotal != 170.5 {
			t.Fatalf("expected 170.5, got %v", res.ValorTotal)
		}
		if res.AlertasEstoque == nil {
			t.Fatalf("expected empty alert list, got nil")
		}
	})

	t.Run("failed step", func(t *testing.T) {
		res := FromFulfillmentReport(entities.FulfillmentReport{
			OperationID: "op-2",
			FailedStep:  entities.FulfillmentStepRevenue,
			Failure:     "disk full",
		})
		if res.Concluida || res.EtapaComFalha != "receita" || res.Erro != "disk full" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.ContaAReceberID != nil {
			t.Fatalf("expected no receivable id")
		}
	})
}

func TestFromServiceReport(t *testing.T) {
	res := FromServiceReport(entities.ServiceReport{
		Service:     entities.Service{ID: 1, Description: "Troca de Óleo"},
		TimesUsed:   2,
		TotalBilled: decimal.NewFromInt(100),
	})
	if res.VezesUsado != 2 || res.TotalFaturado != 100 || res.OrdensIDs == nil {
		t.Fatalf("unexpected response: %+v", res)
	}
}
