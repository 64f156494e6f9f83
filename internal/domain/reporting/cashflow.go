package reporting

import (
	"github.com/shopspring/decimal"
)

// CashflowMonth is one row of the cashflow report. Realized and planned
// columns are always both computed; which one a consumer foregrounds is
// decided by the bucket's Actual flag, not here. Net figures are derived,
// never stored.
type CashflowMonth struct {
	Bucket          MonthBucket
	Inflows         decimal.Decimal
	Outflows        decimal.Decimal
	PlannedInflows  decimal.Decimal
	PlannedOutflows decimal.Decimal
}

// Net is realized inflows minus realized outflows
func (m CashflowMonth) Net() decimal.Decimal {
	return m.Inflows.Sub(m.Outflows)
}

// PlannedNet is planned inflows minus planned outflows
func (m CashflowMonth) PlannedNet() decimal.Decimal {
	return m.PlannedInflows.Sub(m.PlannedOutflows)
}

// CashflowData bundles the record streams the cashflow report is built from
type CashflowData struct {
	Revenue         []RevenueEntry
	Costs           []CostEntry
	BillingLines    []BillingPlanLine
	PlannedExpenses []PlannedExpense
}

// BuildCashflow reduces realized and planned cash events onto the month
// grid. Cashflow does not categorize: every realized cost is an outflow
// regardless of its type tag.
func BuildCashflow(buckets []MonthBucket, data CashflowData) []CashflowMonth {
	acc := NewMonthBucketAccumulator(buckets, func(b MonthBucket) CashflowMonth {
		return CashflowMonth{Bucket: b}
	})

	for _, r := range data.Revenue {
		acc.UpdateAt(r.ReceivedAt, func(row *CashflowMonth) {
			row.Inflows = row.Inflows.Add(r.Amount)
		})
	}

	for _, c := range data.Costs {
		acc.UpdateAt(c.PaidAt, func(row *CashflowMonth) {
			row.Outflows = row.Outflows.Add(c.Amount)
		})
	}

	for _, l := range data.BillingLines {
		acc.UpdateAt(l.DueAt, func(row *CashflowMonth) {
			row.PlannedInflows = row.PlannedInflows.Add(l.Amount)
		})
	}

	for _, e := range data.PlannedExpenses {
		acc.UpdateAt(e.PlannedFor, func(row *CashflowMonth) {
			row.PlannedOutflows = row.PlannedOutflows.Add(e.Amount)
		})
	}

	return acc.Rows()
}
