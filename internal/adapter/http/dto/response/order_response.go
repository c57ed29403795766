package response

import "mecanica_goelzer/internal/domain/entities"

type OrderTotalResponse struct {
	OrdemID int     `json:"ordem_id"`
	Total   float64 `json:"total"`
}

type NextNumberResponse struct {
	ProximoNumero string `json:"proximo_numero"`
}

type SuccessResponse struct {
	Sucesso bool `json:"sucesso"`
}

type StockAlertResponse struct {
	PecaID            int     `json:"peca_id"`
	Descricao         string  `json:"descricao"`
	QuantidadeEstoque float64 `json:"quantidadeEstoque"`
	EstoqueMinimo     float64 `json:"estoqueMinimo"`
}

type StockDepletionResponse struct {
	Sucesso        bool                 `json:"sucesso"`
	AlertasEstoque []StockAlertResponse `json:"alertas_estoque"`
}

func FromStockDepletion(d entities.StockDepletion) StockDepletionResponse {
	return StockDepletionResponse{Sucesso: d.Applied, AlertasEstoque: fromStockAlerts(d.Alerts)}
}

// FulfillmentResponse reports which side effects a fulfillment run applied.
type FulfillmentResponse struct {
	OperacaoID          string               `json:"operacao_id"`
	OrdemID             int                  `json:"ordem_id"`
	ValorTotal          float64              `json:"valor_total"`
	Concluida           bool                 `json:"concluida"`
	OrdemFechada        bool                 `json:"ordem_fechada"`
	EstoqueAtualizado   bool                 `json:"estoque_atualizado"`
	ReceitaRegistrada   bool                 `json:"receita_registrada"`
	DespesasRegistradas bool                 `json:"despesas_registradas"`
	ContaAReceberID     *int                 `json:"conta_a_receber_id"`
	AlertasEstoque      []StockAlertResponse `json:"alertas_estoque"`
	EtapaComFalha       string               `json:"etapa_com_falha,omitempty"`
	Erro                string               `json:"erro,omitempty"`
}

func FromFulfillmentReport(r entities.FulfillmentReport) FulfillmentResponse {
	res := FulfillmentResponse{
		OperacaoID:          r.OperationID,
		OrdemID:             r.OrderID,
		ValorTotal:          r.Total.InexactFloat64(),
		Concluida:           r.Completed(),
		OrdemFechada:        r.Closed,
		EstoqueAtualizado:   r.StockUpdated,
		ReceitaRegistrada:   r.RevenuePosted,
		DespesasRegistradas: r.ExpensesPosted,
		AlertasEstoque:      fromStockAlerts(r.StockAlerts),
		EtapaComFalha:       string(r.FailedStep),
		Erro:                r.Failure,
	}
	if r.ReceivableID > 0 {
		id := r.ReceivableID
		res.ContaAReceberID = &id
	}
	return res
}

func fromStockAlerts(alerts []entities.StockAlert) []StockAlertResponse {
	out := make([]StockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, StockAlertResponse{
			PecaID:            a.PartID,
			Descricao:         a.Description,
			QuantidadeEstoque: a.Stock.InexactFloat64(),
			EstoqueMinimo:     a.MinStock.InexactFloat64(),
		})
	}
	return out
}
