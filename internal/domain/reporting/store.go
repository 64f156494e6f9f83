package reporting

import (
	"context"

	"github.com/google/uuid"
)

// Query restricts a store fetch to a date window, an organization and/or an
// order. Nil ids mean "no restriction"; fetches that are not window-bound
// (open invoices) ignore the window.
type Query struct {
	Window         Window
	OrganizationID *uuid.UUID
	OrderID        *uuid.UUID
}

// Store exposes the read-only record fetches the report builders aggregate
// over. Each fetch is independent of the others; a builder invocation issues
// its fetches concurrently and fails as a whole if any of them fails.
type Store interface {
	// FetchRevenueEntries returns payments received within the window
	FetchRevenueEntries(ctx context.Context, q Query) ([]RevenueEntry, error)

	// FetchCostEntries returns costs paid within the window
	FetchCostEntries(ctx context.Context, q Query) ([]CostEntry, error)

	// FetchBillingPlanLines returns billing-plan lines due within the window
	FetchBillingPlanLines(ctx context.Context, q Query) ([]BillingPlanLine, error)

	// FetchPlannedExpenses returns expenses planned within the window
	FetchPlannedExpenses(ctx context.Context, q Query) ([]PlannedExpense, error)

	// FetchBudgetPlanMonths returns the latest budget-plan version's month
	// entries whose key falls in the window, per order in scope
	FetchBudgetPlanMonths(ctx context.Context, q Query) ([]BudgetPlanMonth, error)

	// FetchBudgetActualCosts returns budget-ledger actuals assigned to months
	// within the window
	FetchBudgetActualCosts(ctx context.Context, q Query) ([]BudgetActualCost, error)

	// FetchNormalizations returns normalization adjustments keyed to months
	// within the window
	FetchNormalizations(ctx context.Context, q Query) ([]NormalizationAdjustment, error)

	// FetchInvoices returns invoices created within the window, with their
	// items and payments loaded
	FetchInvoices(ctx context.Context, q Query) ([]Invoice, error)

	// FetchUnpaidInvoices returns all invoices whose status is not PAID,
	// regardless of the query window
	FetchUnpaidInvoices(ctx context.Context, q Query) ([]Invoice, error)

	// OrderExists reports whether the order is known to the store
	OrderExists(ctx context.Context, orderID uuid.UUID) (bool, error)
}
