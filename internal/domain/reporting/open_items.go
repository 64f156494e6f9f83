package reporting

import (
	"math"
	"time"

	"github.com/bizdesk/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// OpenItem is one outstanding invoice balance. An item exists only while its
// open amount is positive.
type OpenItem struct {
	InvoiceID    uuid.UUID
	Number       string
	CustomerID   uuid.UUID
	CustomerName string
	Total        valueobject.Money
	Paid         valueobject.Money
	Open         valueobject.Money
	DueAt        time.Time
	DaysOverdue  int
	Bucket       AgingBucket
}

// OpenItemsReport lists the outstanding invoices and the open sum per aging
// bucket
type OpenItemsReport struct {
	Items   []OpenItem
	ByAging map[AgingBucket]valueobject.Money
}

// daysOverdue is whole elapsed days between due date and now, floored;
// negative while the invoice is not yet due
func daysOverdue(dueAt, now time.Time) int {
	return int(math.Floor(now.Sub(dueAt).Hours() / 24))
}

// BuildOpenItems computes outstanding balances from unpaid invoices and
// classifies each into an overdue-age bucket. Fully covered invoices
// (paid >= total) are skipped even if their status lags behind.
func BuildOpenItems(invoices []Invoice, now time.Time) OpenItemsReport {
	report := OpenItemsReport{
		Items:   make([]OpenItem, 0, len(invoices)),
		ByAging: make(map[AgingBucket]valueobject.Money, 4),
	}
	for _, b := range AllAgingBuckets() {
		report.ByAging[b] = valueobject.ZeroEUR()
	}

	for _, inv := range invoices {
		if inv.Status == InvoiceStatusPaid {
			continue
		}
		open := inv.OpenAmount()
		if !open.IsPositive() {
			continue
		}

		overdue := daysOverdue(inv.DueAt, now)
		bucket := AgingBucketFor(overdue)
		openMoney := valueobject.NewMoneyEUR(open)

		report.Items = append(report.Items, OpenItem{
			InvoiceID:    inv.ID,
			Number:       inv.Number,
			CustomerID:   inv.CustomerID,
			CustomerName: inv.CustomerName,
			Total:        valueobject.NewMoneyEUR(inv.TotalAmount()),
			Paid:         valueobject.NewMoneyEUR(inv.PaidAmount()),
			Open:         openMoney,
			DueAt:        inv.DueAt,
			DaysOverdue:  overdue,
			Bucket:       bucket,
		})
		report.ByAging[bucket] = report.ByAging[bucket].MustAdd(openMoney)
	}

	return report
}
