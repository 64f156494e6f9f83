package reporting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestIncomeStatementColumn(t *testing.T) {
	t.Run("derived metrics follow from the raw sums", func(t *testing.T) {
		col := NewIncomeStatementColumn()
		col.Revenue = dec("1000")
		col.DirectCost = dec("300")
		col.PersonnelCost = dec("200")
		col.PropertyCost = dec("50")
		col.OperatingCost = dec("100")
		col.Normalizations = dec("25")

		assert.True(t, col.GrossProfit().Equal(dec("700")))
		assert.True(t, col.EBITDA().Equal(dec("350")))
		assert.True(t, col.NormalizedEBITDA().Equal(dec("375")))
	})

	t.Run("empty column derives to zero", func(t *testing.T) {
		col := NewIncomeStatementColumn()
		assert.True(t, col.GrossProfit().IsZero())
		assert.True(t, col.EBITDA().IsZero())
		assert.True(t, col.NormalizedEBITDA().IsZero())
	})

	t.Run("property spend is split out of operating", func(t *testing.T) {
		col := NewIncomeStatementColumn()
		col.addCost(dec("80"), CostTypeProperty, CategoryOperating)
		col.addCost(dec("40"), CostTypeOther, CategoryOperating)
		assert.True(t, col.PropertyCost.Equal(dec("80")))
		assert.True(t, col.OperatingCost.Equal(dec("40")))
		assert.True(t, col.ByType[CostTypeProperty].Equal(dec("80")))
	})
}

func TestBuildIncomeStatement(t *testing.T) {
	now := date(2024, time.June, 1)
	orderID := uuid.New()

	t.Run("single month with one payment and one wage cost", func(t *testing.T) {
		buckets := MonthRange(date(2024, time.March, 1), date(2024, time.March, 31), now)
		rows := BuildIncomeStatement(buckets, IncomeStatementData{
			Revenue: []RevenueEntry{
				{ID: uuid.New(), Amount: dec("1000"), ReceivedAt: date(2024, time.March, 15)},
			},
			Costs: []CostEntry{
				{ID: uuid.New(), Amount: dec("400"), PaidAt: date(2024, time.March, 20), Type: CostTypeWage},
			},
		})
		require.Len(t, rows, 1)
		actual := rows[0].Actual
		assert.True(t, actual.Revenue.Equal(dec("1000")))
		assert.True(t, actual.PersonnelCost.Equal(dec("400")))
		assert.True(t, actual.DirectCost.IsZero())
		assert.True(t, actual.GrossProfit().Equal(dec("1000")))
		assert.True(t, actual.EBITDA().Equal(dec("600")))
	})

	t.Run("costs land in the category their type and order resolve to", func(t *testing.T) {
		buckets := MonthRange(date(2024, time.March, 1), date(2024, time.March, 31), now)
		rows := BuildIncomeStatement(buckets, IncomeStatementData{
			Costs: []CostEntry{
				{Amount: dec("100"), PaidAt: date(2024, time.March, 2), Type: CostTypeExternalService, OrderID: &orderID},
				{Amount: dec("50"), PaidAt: date(2024, time.March, 3), Type: CostTypeExternalService},
				{Amount: dec("70"), PaidAt: date(2024, time.March, 4), Type: CostTypeTraining},
			},
		})
		require.Len(t, rows, 1)
		actual := rows[0].Actual
		assert.True(t, actual.DirectCost.Equal(dec("100")))
		assert.True(t, actual.OperatingCost.Equal(dec("50")))
		assert.True(t, actual.PersonnelCost.Equal(dec("70")))
		assert.True(t, actual.ByType[CostTypeExternalService].Equal(dec("150")))
	})

	t.Run("records outside the window are dropped", func(t *testing.T) {
		buckets := MonthRange(date(2024, time.March, 1), date(2024, time.March, 31), now)
		rows := BuildIncomeStatement(buckets, IncomeStatementData{
			Revenue: []RevenueEntry{
				{Amount: dec("500"), ReceivedAt: date(2024, time.April, 1)},
			},
		})
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Actual.Revenue.IsZero())
	})

	t.Run("budget column fed by billing lines and budget plan months", func(t *testing.T) {
		buckets := MonthRange(date(2024, time.March, 1), date(2024, time.April, 30), now)
		rows := BuildIncomeStatement(buckets, IncomeStatementData{
			BillingLines: []BillingPlanLine{
				{Amount: dec("2000"), DueAt: date(2024, time.March, 31)},
			},
			BudgetMonths: []BudgetPlanMonth{
				{
					OrderID:        orderID,
					Key:            MonthKey("2024-04"),
					Personnel:      dec("300"),
					External:       dec("150"),
					Infrastructure: dec("50"),
					Revenue:        dec("1200"),
				},
			},
		})
		require.Len(t, rows, 2)

		march := rows[0].Budget
		assert.True(t, march.Revenue.Equal(dec("2000")))
		assert.True(t, march.EBITDA().Equal(dec("2000")))

		april := rows[1].Budget
		assert.True(t, april.Revenue.Equal(dec("1200")))
		assert.True(t, april.DirectCost.Equal(dec("200")))
		assert.True(t, april.PersonnelCost.Equal(dec("300")))
		assert.True(t, april.GrossProfit().Equal(dec("1000")))
		assert.True(t, april.EBITDA().Equal(dec("700")))

		// Budget never leaks into the actual column.
		assert.True(t, rows[0].Actual.Revenue.IsZero())
		assert.True(t, rows[1].Actual.Revenue.IsZero())
	})

	t.Run("normalizations adjust the actual column only", func(t *testing.T) {
		buckets := MonthRange(date(2024, time.March, 1), date(2024, time.March, 31), now)
		rows := BuildIncomeStatement(buckets, IncomeStatementData{
			Revenue: []RevenueEntry{
				{Amount: dec("1000"), ReceivedAt: date(2024, time.March, 10)},
			},
			Normalizations: []NormalizationAdjustment{
				{Key: MonthKey("2024-03"), Amount: dec("-150"), Note: "one-off severance"},
			},
		})
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Actual.EBITDA().Equal(dec("1000")))
		assert.True(t, rows[0].Actual.NormalizedEBITDA().Equal(dec("850")))
		assert.True(t, rows[0].Budget.Normalizations.IsZero())
	})

	t.Run("no data yields zero-valued rows for every bucket", func(t *testing.T) {
		buckets := MonthRange(date(2024, time.January, 1), date(2024, time.March, 31), now)
		rows := BuildIncomeStatement(buckets, IncomeStatementData{})
		require.Len(t, rows, 3)
		for _, row := range rows {
			assert.True(t, row.Actual.Revenue.IsZero())
			assert.True(t, row.Actual.EBITDA().IsZero())
			assert.True(t, row.Budget.EBITDA().IsZero())
		}
	})
}
