package reporting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCashflow(t *testing.T) {
	now := date(2024, time.June, 1)
	buckets := MonthRange(date(2024, time.March, 1), date(2024, time.April, 30), now)

	t.Run("net is inflows minus outflows per month", func(t *testing.T) {
		rows := BuildCashflow(buckets, CashflowData{
			Revenue: []RevenueEntry{
				{Amount: dec("1500"), ReceivedAt: date(2024, time.March, 5)},
				{Amount: dec("500"), ReceivedAt: date(2024, time.March, 25)},
			},
			Costs: []CostEntry{
				{Amount: dec("800"), PaidAt: date(2024, time.March, 10), Type: CostTypeWage},
			},
		})
		require.Len(t, rows, 2)
		assert.True(t, rows[0].Inflows.Equal(dec("2000")))
		assert.True(t, rows[0].Outflows.Equal(dec("800")))
		assert.True(t, rows[0].Net().Equal(dec("1200")))
		assert.True(t, rows[1].Net().IsZero())
	})

	t.Run("every realized cost is an outflow regardless of type", func(t *testing.T) {
		orderID := uuid.New()
		rows := BuildCashflow(buckets, CashflowData{
			Costs: []CostEntry{
				{Amount: dec("100"), PaidAt: date(2024, time.March, 1), Type: CostTypeExternalService, OrderID: &orderID},
				{Amount: dec("200"), PaidAt: date(2024, time.March, 2), Type: CostTypeWage},
				{Amount: dec("300"), PaidAt: date(2024, time.March, 3), Type: CostTypeProperty},
			},
		})
		assert.True(t, rows[0].Outflows.Equal(dec("600")))
	})

	t.Run("planned columns come from billing lines and planned expenses", func(t *testing.T) {
		rows := BuildCashflow(buckets, CashflowData{
			BillingLines: []BillingPlanLine{
				{Amount: dec("900"), DueAt: date(2024, time.April, 15)},
			},
			PlannedExpenses: []PlannedExpense{
				{Amount: dec("250"), PlannedFor: date(2024, time.April, 20), Type: CostTypeInfrastructure},
			},
		})
		require.Len(t, rows, 2)
		assert.True(t, rows[1].PlannedInflows.Equal(dec("900")))
		assert.True(t, rows[1].PlannedOutflows.Equal(dec("250")))
		assert.True(t, rows[1].PlannedNet().Equal(dec("650")))
		assert.True(t, rows[1].Net().IsZero())
	})

	t.Run("months without activity report zero nets", func(t *testing.T) {
		rows := BuildCashflow(buckets, CashflowData{})
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.True(t, row.Net().IsZero())
			assert.True(t, row.PlannedNet().IsZero())
		}
	})
}
