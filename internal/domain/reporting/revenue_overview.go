package reporting

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueGroup is one accumulation cell of the revenue overview: invoiced
// versus collected for a month, a customer or an order
type RevenueGroup struct {
	Invoiced decimal.Decimal
	Paid     decimal.Decimal
}

// Open is the uncollected remainder
func (g RevenueGroup) Open() decimal.Decimal {
	return g.Invoiced.Sub(g.Paid)
}

// MonthRevenue is the by-month grouping row
type MonthRevenue struct {
	Bucket MonthBucket
	RevenueGroup
}

// CustomerRevenue is the by-customer grouping row
type CustomerRevenue struct {
	CustomerID   uuid.UUID
	CustomerName string
	RevenueGroup
}

// OrderRevenue is the by-order grouping row
type OrderRevenue struct {
	OrderID uuid.UUID
	RevenueGroup
}

// RevenueOverview aggregates the same invoice population three independent
// ways
type RevenueOverview struct {
	ByMonth    []MonthRevenue
	ByCustomer []CustomerRevenue
	ByOrder    []OrderRevenue
}

// BuildRevenueOverview groups invoices created within the report window by
// creation month, owning customer and owning order. Invoices without an
// order attribution appear in the month and customer groupings only.
func BuildRevenueOverview(buckets []MonthBucket, invoices []Invoice) RevenueOverview {
	acc := NewMonthBucketAccumulator(buckets, func(b MonthBucket) MonthRevenue {
		return MonthRevenue{Bucket: b}
	})

	byCustomer := make(map[uuid.UUID]*CustomerRevenue)
	byOrder := make(map[uuid.UUID]*OrderRevenue)

	for _, inv := range invoices {
		invoiced := inv.TotalAmount()
		paid := inv.PaidAmount()

		acc.UpdateAt(inv.CreatedAt, func(row *MonthRevenue) {
			row.Invoiced = row.Invoiced.Add(invoiced)
			row.Paid = row.Paid.Add(paid)
		})

		cust, ok := byCustomer[inv.CustomerID]
		if !ok {
			cust = &CustomerRevenue{CustomerID: inv.CustomerID, CustomerName: inv.CustomerName}
			byCustomer[inv.CustomerID] = cust
		}
		cust.Invoiced = cust.Invoiced.Add(invoiced)
		cust.Paid = cust.Paid.Add(paid)

		if inv.OrderID != nil {
			ord, ok := byOrder[*inv.OrderID]
			if !ok {
				ord = &OrderRevenue{OrderID: *inv.OrderID}
				byOrder[*inv.OrderID] = ord
			}
			ord.Invoiced = ord.Invoiced.Add(invoiced)
			ord.Paid = ord.Paid.Add(paid)
		}
	}

	overview := RevenueOverview{ByMonth: acc.Rows()}

	overview.ByCustomer = make([]CustomerRevenue, 0, len(byCustomer))
	for _, c := range byCustomer {
		overview.ByCustomer = append(overview.ByCustomer, *c)
	}
	sort.Slice(overview.ByCustomer, func(i, j int) bool {
		return overview.ByCustomer[i].CustomerID.String() < overview.ByCustomer[j].CustomerID.String()
	})

	overview.ByOrder = make([]OrderRevenue, 0, len(byOrder))
	for _, o := range byOrder {
		overview.ByOrder = append(overview.ByOrder, *o)
	}
	sort.Slice(overview.ByOrder, func(i, j int) bool {
		return overview.ByOrder[i].OrderID.String() < overview.ByOrder[j].OrderID.String()
	})

	return overview
}
