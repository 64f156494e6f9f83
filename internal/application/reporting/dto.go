package reporting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/reporting"
)

// ReportFilter defines the request filter shared by all report endpoints
type ReportFilter struct {
	Year           int
	Month          int
	DateFrom       *time.Time
	DateTo         *time.Time
	OrganizationID *uuid.UUID
	OrderID        *uuid.UUID
}

// IncomeStatementColumnResponse is one view (actual or budget) of an
// income-statement month, with derived metrics materialized for the client
type IncomeStatementColumnResponse struct {
	Revenue          float64            `json:"revenue"`
	DirectCost       float64            `json:"direct_cost"`
	PersonnelCost    float64            `json:"personnel_cost"`
	PropertyCost     float64            `json:"property_cost"`
	OperatingCost    float64            `json:"operating_cost"`
	GrossProfit      float64            `json:"gross_profit"`
	Ebitda           float64            `json:"ebitda"`
	Normalizations   float64            `json:"normalizations"`
	NormalizedEbitda float64            `json:"normalized_ebitda"`
	CostsByType      map[string]float64 `json:"costs_by_type"`
}

// IncomeStatementMonthResponse is one month row of the income statement
type IncomeStatementMonthResponse struct {
	Month    string                        `json:"month"`
	Label    string                        `json:"label"`
	IsActual bool                          `json:"is_actual"`
	Actual   IncomeStatementColumnResponse `json:"actual"`
	Budget   IncomeStatementColumnResponse `json:"budget"`
}

// IncomeStatementResponse is the income statement over the report window
type IncomeStatementResponse struct {
	Year     int                            `json:"year"`
	Currency string                         `json:"currency"`
	Months   []IncomeStatementMonthResponse `json:"months"`
}

// CashflowMonthResponse is one month row of the cashflow report
type CashflowMonthResponse struct {
	Month           string  `json:"month"`
	Label           string  `json:"label"`
	IsActual        bool    `json:"is_actual"`
	Inflows         float64 `json:"inflows"`
	Outflows        float64 `json:"outflows"`
	Net             float64 `json:"net"`
	PlannedInflows  float64 `json:"planned_inflows"`
	PlannedOutflows float64 `json:"planned_outflows"`
	PlannedNet      float64 `json:"planned_net"`
}

// CashflowResponse is the cashflow report over the report window
type CashflowResponse struct {
	Months []CashflowMonthResponse `json:"months"`
}

// MonthRevenueResponse is the by-month revenue grouping row
type MonthRevenueResponse struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	IsActual bool    `json:"is_actual"`
	Invoiced float64 `json:"invoiced"`
	Paid     float64 `json:"paid"`
	Open     float64 `json:"open"`
}

// CustomerRevenueResponse is the by-customer revenue grouping row
type CustomerRevenueResponse struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Invoiced     float64 `json:"invoiced"`
	Paid         float64 `json:"paid"`
	Open         float64 `json:"open"`
}

// OrderRevenueResponse is the by-order revenue grouping row
type OrderRevenueResponse struct {
	OrderID  string  `json:"order_id"`
	Invoiced float64 `json:"invoiced"`
	Paid     float64 `json:"paid"`
	Open     float64 `json:"open"`
}

// RevenueOverviewResponse groups the invoice population three ways
type RevenueOverviewResponse struct {
	ByMonth    []MonthRevenueResponse    `json:"by_month"`
	ByCustomer []CustomerRevenueResponse `json:"by_customer"`
	ByOrder    []OrderRevenueResponse    `json:"by_order"`
}

// OpenItemResponse is one outstanding invoice
type OpenItemResponse struct {
	InvoiceID    string    `json:"invoice_id"`
	Number       string    `json:"number"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	Paid         float64   `json:"paid"`
	Open         float64   `json:"open"`
	DueAt        time.Time `json:"due_at"`
	DaysOverdue  int       `json:"days_overdue"`
	AgingBucket  string    `json:"aging_bucket"`
}

// OpenItemsResponse lists outstanding invoices and open sums per aging bucket
type OpenItemsResponse struct {
	Items   []OpenItemResponse `json:"items"`
	ByAging map[string]float64 `json:"by_aging"`
}

// BudgetVsActualRowResponse compares one order's plan against its actuals
type BudgetVsActualRowResponse struct {
	OrderID               string  `json:"order_id"`
	PlannedPersonnel      float64 `json:"planned_personnel"`
	PlannedExternal       float64 `json:"planned_external"`
	PlannedInfrastructure float64 `json:"planned_infrastructure"`
	PlannedRevenue        float64 `json:"planned_revenue"`
	PlannedTotal          float64 `json:"planned_total"`
	ActualBudgetCost      float64 `json:"actual_budget_cost"`
	ActualExpenseCost     float64 `json:"actual_expense_cost"`
	ActualTotal           float64 `json:"actual_total"`
	Variance              float64 `json:"variance"`
}

// BudgetVsActualResponse is the per-order budget comparison
type BudgetVsActualResponse struct {
	Rows []BudgetVsActualRowResponse `json:"rows"`
}

// toFloat64 rounds to two decimal places at the externalization boundary.
// All internal aggregation stays on decimals.
func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func toColumnResponse(c reporting.IncomeStatementColumn) IncomeStatementColumnResponse {
	byType := make(map[string]float64, len(c.ByType))
	for ct, amount := range c.ByType {
		byType[ct.String()] = toFloat64(amount)
	}
	return IncomeStatementColumnResponse{
		Revenue:          toFloat64(c.Revenue),
		DirectCost:       toFloat64(c.DirectCost),
		PersonnelCost:    toFloat64(c.PersonnelCost),
		PropertyCost:     toFloat64(c.PropertyCost),
		OperatingCost:    toFloat64(c.OperatingCost),
		GrossProfit:      toFloat64(c.GrossProfit()),
		Ebitda:           toFloat64(c.EBITDA()),
		Normalizations:   toFloat64(c.Normalizations),
		NormalizedEbitda: toFloat64(c.NormalizedEBITDA()),
		CostsByType:      byType,
	}
}
