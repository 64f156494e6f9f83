package reporting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueEntry is a realized revenue event: a payment received and booked on
// a concrete date. It is the sole "actual" revenue signal.
type RevenueEntry struct {
	ID             uuid.UUID
	Amount         decimal.Decimal
	ReceivedAt     time.Time
	OrganizationID *uuid.UUID
	OrderID        *uuid.UUID
}

// CostEntry is a realized cost event: an amount paid on a concrete date,
// tagged with a cost type and optionally attributed to an order.
type CostEntry struct {
	ID             uuid.UUID
	Amount         decimal.Decimal
	PaidAt         time.Time
	Type           CostType
	OrganizationID *uuid.UUID
	OrderID        *uuid.UUID
}

// Category resolves the income-statement category of this cost
func (e CostEntry) Category() CostCategory {
	return ResolveCostCategory(e.Type, e.OrderID != nil)
}

// BillingPlanLine is a scheduled invoice line: revenue that is expected to be
// billed and collected on its due date. It is a "planned" revenue signal.
type BillingPlanLine struct {
	ID             uuid.UUID
	Amount         decimal.Decimal
	DueAt          time.Time
	OrganizationID *uuid.UUID
	OrderID        *uuid.UUID
}

// PlannedExpense is a scheduled outflow that has not been paid yet
type PlannedExpense struct {
	ID         uuid.UUID
	Amount     decimal.Decimal
	PlannedFor time.Time
	Type       CostType
	OrderID    *uuid.UUID
}

// BudgetPlanMonth is one month of an order's budget plan: forecast spend
// split by budget line plus projected revenue. Only months of the latest
// plan version count; the store resolves versioning.
type BudgetPlanMonth struct {
	OrderID        uuid.UUID
	Key            MonthKey
	Personnel      decimal.Decimal
	External       decimal.Decimal
	Infrastructure decimal.Decimal
	Revenue        decimal.Decimal
}

// PlannedTotal is the sum of the month's cost lines (revenue excluded)
func (m BudgetPlanMonth) PlannedTotal() decimal.Decimal {
	return m.Personnel.Add(m.External).Add(m.Infrastructure)
}

// BudgetActualCost is an actual-cost booking in the per-order budget ledger,
// assigned to a budget month rather than dated by payment
type BudgetActualCost struct {
	OrderID uuid.UUID
	Key     MonthKey
	Amount  decimal.Decimal
}

// NormalizationAdjustment is a manually entered one-off item excluded from
// EBITDA to arrive at the normalized figure
type NormalizationAdjustment struct {
	ID     uuid.UUID
	Key    MonthKey
	Amount decimal.Decimal
	Note   string
}

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPartial   InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPartial,
		InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// InvoiceItem is a single billed position
type InvoiceItem struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// InvoicePayment is a payment applied against an invoice
type InvoicePayment struct {
	Amount decimal.Decimal
	PaidAt time.Time
}

// Invoice is the read model the revenue overview and open-items reports are
// computed from
type Invoice struct {
	ID           uuid.UUID
	Number       string
	CustomerID   uuid.UUID
	CustomerName string
	OrderID      *uuid.UUID
	Status       InvoiceStatus
	CreatedAt    time.Time
	DueAt        time.Time
	Items        []InvoiceItem
	Payments     []InvoicePayment
}

// TotalAmount is the invoiced sum over all items
func (i Invoice) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.Items {
		total = total.Add(item.Quantity.Mul(item.UnitPrice))
	}
	return total
}

// PaidAmount is the sum of payments applied to the invoice
func (i Invoice) PaidAmount() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range i.Payments {
		paid = paid.Add(p.Amount)
	}
	return paid
}

// OpenAmount is the outstanding balance
func (i Invoice) OpenAmount() decimal.Decimal {
	return i.TotalAmount().Sub(i.PaidAmount())
}
