package reporting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unpaidInvoice(number string, dueAt time.Time, total, paid string) Invoice {
	inv := Invoice{
		ID:           uuid.New(),
		Number:       number,
		CustomerID:   uuid.New(),
		CustomerName: "Acme GmbH",
		Status:       InvoiceStatusSent,
		CreatedAt:    dueAt.AddDate(0, 0, -14),
		DueAt:        dueAt,
		Items:        []InvoiceItem{{Quantity: dec("1"), UnitPrice: dec(total)}},
	}
	if paid != "0" {
		inv.Status = InvoiceStatusPartial
		inv.Payments = []InvoicePayment{{Amount: dec(paid), PaidAt: dueAt}}
	}
	return inv
}

func TestBuildOpenItems(t *testing.T) {
	now := date(2024, time.June, 1)

	t.Run("open amount is total minus paid", func(t *testing.T) {
		report := BuildOpenItems([]Invoice{
			unpaidInvoice("INV-010", date(2024, time.May, 20), "1000", "400"),
		}, now)
		require.Len(t, report.Items, 1)
		item := report.Items[0]
		assert.Equal(t, "1000.00", item.Total.StringFixed(2))
		assert.Equal(t, "400.00", item.Paid.StringFixed(2))
		assert.Equal(t, "600.00", item.Open.StringFixed(2))
		assert.Equal(t, 12, item.DaysOverdue)
		assert.Equal(t, Aging0To30, item.Bucket)
	})

	t.Run("fully covered invoices are excluded", func(t *testing.T) {
		overpaid := unpaidInvoice("INV-011", date(2024, time.April, 1), "500", "500")
		report := BuildOpenItems([]Invoice{overpaid}, now)
		assert.Empty(t, report.Items)
	})

	t.Run("status paid is excluded even with an open balance on record", func(t *testing.T) {
		inv := unpaidInvoice("INV-012", date(2024, time.April, 1), "500", "100")
		inv.Status = InvoiceStatusPaid
		report := BuildOpenItems([]Invoice{inv}, now)
		assert.Empty(t, report.Items)
	})

	t.Run("partial days before due floor to negative one", func(t *testing.T) {
		report := BuildOpenItems([]Invoice{
			unpaidInvoice("INV-019", now.Add(12*time.Hour), "300", "0"),
		}, now)
		require.Len(t, report.Items, 1)
		assert.Equal(t, -1, report.Items[0].DaysOverdue)
		assert.Equal(t, Aging0To30, report.Items[0].Bucket)
	})

	t.Run("not yet due invoices land in the first bucket", func(t *testing.T) {
		report := BuildOpenItems([]Invoice{
			unpaidInvoice("INV-013", date(2024, time.July, 15), "300", "0"),
		}, now)
		require.Len(t, report.Items, 1)
		assert.Less(t, report.Items[0].DaysOverdue, 0)
		assert.Equal(t, Aging0To30, report.Items[0].Bucket)
	})

	t.Run("aging totals sum the open amounts per bucket", func(t *testing.T) {
		report := BuildOpenItems([]Invoice{
			unpaidInvoice("INV-014", now.AddDate(0, 0, -10), "100", "0"),
			unpaidInvoice("INV-015", now.AddDate(0, 0, -30), "200", "0"),
			unpaidInvoice("INV-016", now.AddDate(0, 0, -45), "300", "0"),
			unpaidInvoice("INV-017", now.AddDate(0, 0, -75), "400", "0"),
			unpaidInvoice("INV-018", now.AddDate(0, 0, -120), "500", "0"),
		}, now)
		require.Len(t, report.Items, 5)
		assert.Equal(t, "300.00", report.ByAging[Aging0To30].StringFixed(2))
		assert.Equal(t, "300.00", report.ByAging[Aging31To60].StringFixed(2))
		assert.Equal(t, "400.00", report.ByAging[Aging61To90].StringFixed(2))
		assert.Equal(t, "500.00", report.ByAging[AgingOver90].StringFixed(2))
	})

	t.Run("every bucket is present even when empty", func(t *testing.T) {
		report := BuildOpenItems(nil, now)
		require.Len(t, report.ByAging, 4)
		for _, b := range AllAgingBuckets() {
			money, ok := report.ByAging[b]
			require.True(t, ok, b)
			assert.Equal(t, "0.00", money.StringFixed(2))
		}
	})
}
