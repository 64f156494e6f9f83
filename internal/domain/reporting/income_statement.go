package reporting

import (
	"github.com/shopspring/decimal"
)

// IncomeStatementColumn holds the raw sums of one view (actual or budget) of
// an income-statement month. Derived metrics are methods, never stored, so
// they cannot drift from the sums they are defined over.
type IncomeStatementColumn struct {
	Revenue        decimal.Decimal
	DirectCost     decimal.Decimal
	PersonnelCost  decimal.Decimal
	PropertyCost   decimal.Decimal
	OperatingCost  decimal.Decimal
	Normalizations decimal.Decimal
	ByType         map[CostType]decimal.Decimal
}

// NewIncomeStatementColumn returns an empty column
func NewIncomeStatementColumn() IncomeStatementColumn {
	return IncomeStatementColumn{ByType: make(map[CostType]decimal.Decimal)}
}

// GrossProfit is revenue minus direct cost
func (c IncomeStatementColumn) GrossProfit() decimal.Decimal {
	return c.Revenue.Sub(c.DirectCost)
}

// EBITDA is gross profit minus personnel, property and operating cost
func (c IncomeStatementColumn) EBITDA() decimal.Decimal {
	return c.GrossProfit().Sub(c.PersonnelCost).Sub(c.PropertyCost).Sub(c.OperatingCost)
}

// NormalizedEBITDA is EBITDA adjusted by one-off normalization items
func (c IncomeStatementColumn) NormalizedEBITDA() decimal.Decimal {
	return c.EBITDA().Add(c.Normalizations)
}

// addCost books a cost into the column, splitting property spend out of the
// operating catch-all
func (c *IncomeStatementColumn) addCost(amount decimal.Decimal, costType CostType, category CostCategory) {
	switch {
	case category == CategoryDirect:
		c.DirectCost = c.DirectCost.Add(amount)
	case category == CategoryPersonnel:
		c.PersonnelCost = c.PersonnelCost.Add(amount)
	case costType == CostTypeProperty:
		c.PropertyCost = c.PropertyCost.Add(amount)
	default:
		c.OperatingCost = c.OperatingCost.Add(amount)
	}
	c.ByType[costType] = c.ByType[costType].Add(amount)
}

// IncomeStatementMonth is one row of the income statement: the same month
// seen through the actual and the budget column
type IncomeStatementMonth struct {
	Bucket MonthBucket
	Actual IncomeStatementColumn
	Budget IncomeStatementColumn
}

// IncomeStatementData bundles the record streams the income statement is
// built from
type IncomeStatementData struct {
	Revenue        []RevenueEntry
	Costs          []CostEntry
	BillingLines   []BillingPlanLine
	BudgetMonths   []BudgetPlanMonth
	Normalizations []NormalizationAdjustment
}

// BuildIncomeStatement reduces the record streams onto the month grid. Actual
// figures are bucketed by realization date, budget figures by plan month key
// or billing due date. Orders without a budget plan simply contribute nothing
// to the budget column.
func BuildIncomeStatement(buckets []MonthBucket, data IncomeStatementData) []IncomeStatementMonth {
	acc := NewMonthBucketAccumulator(buckets, func(b MonthBucket) IncomeStatementMonth {
		return IncomeStatementMonth{
			Bucket: b,
			Actual: NewIncomeStatementColumn(),
			Budget: NewIncomeStatementColumn(),
		}
	})

	for _, r := range data.Revenue {
		acc.UpdateAt(r.ReceivedAt, func(row *IncomeStatementMonth) {
			row.Actual.Revenue = row.Actual.Revenue.Add(r.Amount)
		})
	}

	for _, c := range data.Costs {
		acc.UpdateAt(c.PaidAt, func(row *IncomeStatementMonth) {
			row.Actual.addCost(c.Amount, c.Type, c.Category())
		})
	}

	for _, n := range data.Normalizations {
		acc.Update(n.Key, func(row *IncomeStatementMonth) {
			row.Actual.Normalizations = row.Actual.Normalizations.Add(n.Amount)
		})
	}

	for _, l := range data.BillingLines {
		acc.UpdateAt(l.DueAt, func(row *IncomeStatementMonth) {
			row.Budget.Revenue = row.Budget.Revenue.Add(l.Amount)
		})
	}

	for _, m := range data.BudgetMonths {
		acc.Update(m.Key, func(row *IncomeStatementMonth) {
			row.Budget.Revenue = row.Budget.Revenue.Add(m.Revenue)
			// Budget lines are per order, so external and infrastructure
			// spend is directly attributable by construction.
			row.Budget.addCost(m.External, CostTypeExternalService, CategoryDirect)
			row.Budget.addCost(m.Infrastructure, CostTypeInfrastructure, CategoryDirect)
			row.Budget.addCost(m.Personnel, CostTypeWage, CategoryPersonnel)
		})
	}

	return acc.Rows()
}
