package response

import "mecanica_goelzer/internal/domain/entities"

type DashboardResponse struct {
	TotalClientes int     `json:"totalClientes"`
	TotalVeiculos int     `json:"totalVeiculos"`
	OSAbertas     int     `json:"osAbertas"`
	ReceitaMensal float64 `json:"receitaMensal"`
	DespesaMensal float64 `json:"despesaMensal"`
	LucroMensal   float64 `json:"lucroMensal"`
}

func FromDashboard(d entities.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalClientes: d.TotalCustomers,
		TotalVeiculos: d.TotalVehicles,
		OSAbertas:     d.OpenOrders,
		ReceitaMensal: d.Month.Revenue.InexactFloat64(),
		DespesaMensal: d.Month.Expense.InexactFloat64(),
		LucroMensal:   d.Month.Profit().InexactFloat64(),
	}
}

type AnnualReportResponse struct {
	Ano          int     `json:"ano"`
	ReceitaAnual float64 `json:"receitaAnual"`
	DespesaAnual float64 `json:"despesaAnual"`
	LucroAnual   float64 `json:"lucroAnual"`
}

func FromAnnualReport(r entities.AnnualReport) AnnualReportResponse {
	return AnnualReportResponse{
		Ano:          r.Year,
		ReceitaAnual: r.Revenue.InexactFloat64(),
		DespesaAnual: r.Expense.InexactFloat64(),
		LucroAnual:   r.Profit().InexactFloat64(),
	}
}

type MonthlyReportResponse struct {
	Ano           int     `json:"ano"`
	Mes           int     `json:"mes"`
	ReceitaMensal float64 `json:"receitaMensal"`
	DespesaMensal float64 `json:"despesaMensal"`
	LucroMensal   float64 `json:"lucroMensal"`
}

func FromMonthlyReport(r entities.MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		Ano:           r.Year,
		Mes:           r.Month,
		ReceitaMensal: r.Revenue.InexactFloat64(),
		DespesaMensal: r.Expense.InexactFloat64(),
		LucroMensal:   r.Profit().InexactFloat64(),
	}
}

type MarginResponse struct {
	PecaID      int     `json:"peca_id"`
	MargemLucro float64 `json:"margem_lucro"`
}

type PartResponse struct {
	ID                int     `json:"id"`
	Codigo            string  `json:"codigo,omitempty"`
	Descricao         string  `json:"descricao"`
	QuantidadeEstoque float64 `json:"quantidadeEstoque"`
	EstoqueMinimo     float64 `json:"estoqueMinimo"`
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, PartResponse{
			ID:                p.ID,
			Codigo:            p.Code,
			Descricao:         p.Description,
			QuantidadeEstoque: p.Stock.InexactFloat64(),
			EstoqueMinimo:     p.MinStock.InexactFloat64(),
		})
	}
	return out
}

type ServiceReportResponse struct {
	ServicoID     int     `json:"servico_id"`
	Descricao     string  `json:"descricao"`
	VezesUsado    int     `json:"vezes_usado"`
	TotalFaturado float64 `json:"total_faturado"`
	OrdensIDs     []int   `json:"ordens_ids"`
}

func FromServiceReport(r entities.ServiceReport) ServiceReportResponse {
	ids := r.OrderIDs
	if ids == nil {
		ids = []int{}
	}
	return ServiceReportResponse{
		ServicoID:     r.Service.ID,
		Descricao:     r.Service.Description,
		VezesUsado:    r.TimesUsed,
		TotalFaturado: r.TotalBilled.InexactFloat64(),
		OrdensIDs:     ids,
	}
}
