package entities

import "github.com/shopspring/decimal"

// Part document fields.
const (
	FieldCodigo            = "codigo"
	FieldDescricao         = "descricao"
	FieldFornecedor        = "fornecedor"
	FieldCustoUnitario     = "custoUnitario"
	FieldPrecoVenda        = "precoVenda"
	FieldQuantidadeEstoque = "quantidadeEstoque"
	FieldEstoqueMinimo     = "estoqueMinimo"
)

// Service document fields.
const (
	FieldCategoria     = "categoria"
	FieldValorMaoObra  = "valorMaoObra"
	FieldTempoEstimado = "tempoEstimado"
)

// Part is a typed read view over a "pecas" record.
type Part struct {
	ID          int
	Code        string
	Description string
	UnitCost    decimal.Decimal
	SalePrice   decimal.Decimal
	Stock       decimal.Decimal
	MinStock    decimal.Decimal
}

func PartFromRecord(r Record) Part {
	return Part{
		ID:          r.ID(),
		Code:        r.String(FieldCodigo),
		Description: r.String(FieldDescricao),
		UnitCost:    r.Decimal(FieldCustoUnitario),
		SalePrice:   r.Decimal(FieldPrecoVenda),
		Stock:       r.Decimal(FieldQuantidadeEstoque),
		MinStock:    r.Decimal(FieldEstoqueMinimo),
	}
}

// IsLowStock reports stock at or below the reorder threshold.
func (p Part) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.MinStock)
}

// Margin is ((sale - cost) / cost) * 100, or zero when cost is zero.
func (p Part) Margin() decimal.Decimal {
	if p.UnitCost.IsZero() {
		return decimal.Zero
	}
	return p.SalePrice.Sub(p.UnitCost).Div(p.UnitCost).Mul(decimal.NewFromInt(100))
}

// Service is a typed read view over a "servicos" record.
type Service struct {
	ID          int
	Description string
	Category    string
	LaborPrice  decimal.Decimal
}

func ServiceFromRecord(r Record) Service {
	return Service{
		ID:          r.ID(),
		Description: r.String(FieldDescricao),
		Category:    r.String(FieldCategoria),
		LaborPrice:  r.Decimal(FieldValorMaoObra),
	}
}
