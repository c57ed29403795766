package entities

import "github.com/shopspring/decimal"

// FinancialSummary is revenue, expense and profit over one date prefix.
type FinancialSummary struct {
	Revenue decimal.Decimal
	Expense decimal.Decimal
}

func (s FinancialSummary) Profit() decimal.Decimal {
	return s.Revenue.Sub(s.Expense)
}

type Dashboard struct {
	TotalCustomers int
	TotalVehicles  int
	OpenOrders     int
	Month          FinancialSummary
}

type AnnualReport struct {
	Year int
	FinancialSummary
}

type MonthlyReport struct {
	Year  int
	Month int
	FinancialSummary
}

// StockAlert is raised when a depletion leaves a part at or below its minimum.
type StockAlert struct {
	PartID      int
	Description string
	Stock       decimal.Decimal
	MinStock    decimal.Decimal
}

// StockDepletion is the outcome of applying an order's part usage to stock.
type StockDepletion struct {
	Applied bool
	Alerts  []StockAlert
}

// ServiceReport summarizes how often a service was used across orders.
type ServiceReport struct {
	Service     Service
	TimesUsed   int
	TotalBilled decimal.Decimal
	OrderIDs    []int
}

// FulfillmentStep names each stage of an order fulfillment run.
type FulfillmentStep string

const (
	FulfillmentStepClose      FulfillmentStep = "fechamento"
	FulfillmentStepStock      FulfillmentStep = "estoque"
	FulfillmentStepRevenue    FulfillmentStep = "receita"
	FulfillmentStepExpenses   FulfillmentStep = "despesas"
	FulfillmentStepReceivable FulfillmentStep = "conta_a_receber"
)

// FulfillmentReport tells which side effects of a fulfillment run were applied.
type FulfillmentReport struct {
	OperationID    string
	OrderID        int
	Total          decimal.Decimal
	Closed         bool
	StockUpdated   bool
	RevenuePosted  bool
	ExpensesPosted bool
	ReceivableID   int
	StockAlerts    []StockAlert
	FailedStep     FulfillmentStep
	Failure        string
}

func (r FulfillmentReport) Completed() bool {
	return r.FailedStep == ""
}
