package reporting

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetVsActualRow compares one order's planned budget against the costs it
// actually incurred in the report window. Variance is derived; positive
// means overspend.
type BudgetVsActualRow struct {
	OrderID               uuid.UUID
	PlannedPersonnel      decimal.Decimal
	PlannedExternal       decimal.Decimal
	PlannedInfrastructure decimal.Decimal
	PlannedRevenue        decimal.Decimal
	ActualBudgetCost      decimal.Decimal
	ActualExpenseCost     decimal.Decimal
}

// PlannedTotal is the sum of the planned cost lines
func (r BudgetVsActualRow) PlannedTotal() decimal.Decimal {
	return r.PlannedPersonnel.Add(r.PlannedExternal).Add(r.PlannedInfrastructure)
}

// ActualTotal combines both actual-cost ledgers
func (r BudgetVsActualRow) ActualTotal() decimal.Decimal {
	return r.ActualBudgetCost.Add(r.ActualExpenseCost)
}

// Variance is actual minus planned spend
func (r BudgetVsActualRow) Variance() decimal.Decimal {
	return r.ActualTotal().Sub(r.PlannedTotal())
}

// BudgetVsActualData bundles the record streams the comparison is built from.
// BudgetMonths must already be restricted to the latest plan version and the
// report window; ExpenseCosts are the general cost ledger filtered by
// payment date.
type BudgetVsActualData struct {
	BudgetMonths []BudgetPlanMonth
	BudgetCosts  []BudgetActualCost
	ExpenseCosts []CostEntry
}

// BuildBudgetVsActual produces one row per order appearing in any of the
// three ledgers. An order with actuals but no plan compares against a zero
// plan rather than erroring.
func BuildBudgetVsActual(data BudgetVsActualData) []BudgetVsActualRow {
	rows := make(map[uuid.UUID]*BudgetVsActualRow)
	rowFor := func(orderID uuid.UUID) *BudgetVsActualRow {
		row, ok := rows[orderID]
		if !ok {
			row = &BudgetVsActualRow{OrderID: orderID}
			rows[orderID] = row
		}
		return row
	}

	for _, m := range data.BudgetMonths {
		row := rowFor(m.OrderID)
		row.PlannedPersonnel = row.PlannedPersonnel.Add(m.Personnel)
		row.PlannedExternal = row.PlannedExternal.Add(m.External)
		row.PlannedInfrastructure = row.PlannedInfrastructure.Add(m.Infrastructure)
		row.PlannedRevenue = row.PlannedRevenue.Add(m.Revenue)
	}

	for _, c := range data.BudgetCosts {
		row := rowFor(c.OrderID)
		row.ActualBudgetCost = row.ActualBudgetCost.Add(c.Amount)
	}

	for _, c := range data.ExpenseCosts {
		if c.OrderID == nil {
			continue
		}
		row := rowFor(*c.OrderID)
		row.ActualExpenseCost = row.ActualExpenseCost.Add(c.Amount)
	}

	result := make([]BudgetVsActualRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderID.String() < result[j].OrderID.String()
	})
	return result
}
