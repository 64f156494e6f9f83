package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bizdesk/backend/internal/domain/reporting"
	"github.com/bizdesk/backend/internal/infrastructure/persistence/models"
)

// GormReportStore implements reporting.Store using GORM
type GormReportStore struct {
	db *gorm.DB
}

// NewGormReportStore creates a new GormReportStore
func NewGormReportStore(db *gorm.DB) *GormReportStore {
	return &GormReportStore{db: db}
}

// scoped applies the organization and order restrictions of the query
func scoped(tx *gorm.DB, q reporting.Query) *gorm.DB {
	if q.OrganizationID != nil {
		tx = tx.Where("organization_id = ?", *q.OrganizationID)
	}
	if q.OrderID != nil {
		tx = tx.Where("order_id = ?", *q.OrderID)
	}
	return tx
}

// monthKeyBounds returns the window's boundary months in "YYYY-MM" form.
// Lexical BETWEEN on these matches chronological order.
func monthKeyBounds(w reporting.Window) (string, string) {
	return reporting.MonthKeyFor(w.From).String(), reporting.MonthKeyFor(w.To).String()
}

// FetchRevenueEntries returns payments received within the window
func (s *GormReportStore) FetchRevenueEntries(ctx context.Context, q reporting.Query) ([]reporting.RevenueEntry, error) {
	var rows []models.PaymentModel
	tx := scoped(s.db.WithContext(ctx), q).
		Where("received_at BETWEEN ? AND ?", q.Window.From, q.Window.To)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]reporting.RevenueEntry, len(rows))
	for i := range rows {
		entries[i] = rows[i].ToDomain()
	}
	return entries, nil
}

// FetchCostEntries returns costs paid within the window
func (s *GormReportStore) FetchCostEntries(ctx context.Context, q reporting.Query) ([]reporting.CostEntry, error) {
	var rows []models.ExpenseRecordModel
	tx := scoped(s.db.WithContext(ctx), q).
		Where("paid_at BETWEEN ? AND ?", q.Window.From, q.Window.To)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]reporting.CostEntry, len(rows))
	for i := range rows {
		entries[i] = rows[i].ToDomain()
	}
	return entries, nil
}

// FetchBillingPlanLines returns billing-plan lines due within the window
func (s *GormReportStore) FetchBillingPlanLines(ctx context.Context, q reporting.Query) ([]reporting.BillingPlanLine, error) {
	var rows []models.BillingPlanLineModel
	tx := scoped(s.db.WithContext(ctx), q).
		Where("due_at BETWEEN ? AND ?", q.Window.From, q.Window.To)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	lines := make([]reporting.BillingPlanLine, len(rows))
	for i := range rows {
		lines[i] = rows[i].ToDomain()
	}
	return lines, nil
}

// FetchPlannedExpenses returns expenses planned within the window
func (s *GormReportStore) FetchPlannedExpenses(ctx context.Context, q reporting.Query) ([]reporting.PlannedExpense, error) {
	var rows []models.PlannedExpenseModel
	tx := s.db.WithContext(ctx).
		Where("planned_for BETWEEN ? AND ?", q.Window.From, q.Window.To)
	if q.OrderID != nil {
		tx = tx.Where("order_id = ?", *q.OrderID)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	expenses := make([]reporting.PlannedExpense, len(rows))
	for i := range rows {
		expenses[i] = rows[i].ToDomain()
	}
	return expenses, nil
}

// FetchBudgetPlanMonths returns month lines of the latest budget-plan version
// per order whose key falls in the window. Superseded plan versions never
// contribute.
func (s *GormReportStore) FetchBudgetPlanMonths(ctx context.Context, q reporting.Query) ([]reporting.BudgetPlanMonth, error) {
	fromKey, toKey := monthKeyBounds(q.Window)

	type planMonthRow struct {
		OrderID        uuid.UUID
		MonthKey       string
		Personnel      decimal.Decimal
		External       decimal.Decimal
		Infrastructure decimal.Decimal
		Revenue        decimal.Decimal
	}

	tx := s.db.WithContext(ctx).
		Table("budget_plan_months bpm").
		Select("bp.order_id, bpm.month_key, bpm.personnel, bpm.external, bpm.infrastructure, bpm.revenue").
		Joins("JOIN budget_plans bp ON bp.id = bpm.plan_id").
		Where("bp.version = (SELECT MAX(v.version) FROM budget_plans v WHERE v.order_id = bp.order_id)").
		Where("bpm.month_key BETWEEN ? AND ?", fromKey, toKey)
	if q.OrderID != nil {
		tx = tx.Where("bp.order_id = ?", *q.OrderID)
	}

	var rows []planMonthRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	months := make([]reporting.BudgetPlanMonth, len(rows))
	for i, r := range rows {
		months[i] = reporting.BudgetPlanMonth{
			OrderID:        r.OrderID,
			Key:            reporting.MonthKey(r.MonthKey),
			Personnel:      r.Personnel,
			External:       r.External,
			Infrastructure: r.Infrastructure,
			Revenue:        r.Revenue,
		}
	}
	return months, nil
}

// FetchBudgetActualCosts returns budget-ledger actuals assigned to months
// within the window
func (s *GormReportStore) FetchBudgetActualCosts(ctx context.Context, q reporting.Query) ([]reporting.BudgetActualCost, error) {
	fromKey, toKey := monthKeyBounds(q.Window)
	var rows []models.BudgetActualCostModel
	tx := s.db.WithContext(ctx).
		Where("month_key BETWEEN ? AND ?", fromKey, toKey)
	if q.OrderID != nil {
		tx = tx.Where("order_id = ?", *q.OrderID)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	costs := make([]reporting.BudgetActualCost, len(rows))
	for i := range rows {
		costs[i] = rows[i].ToDomain()
	}
	return costs, nil
}

// FetchNormalizations returns normalization adjustments keyed to months
// within the window. Adjustments are company-wide; organization and order
// restrictions do not apply.
func (s *GormReportStore) FetchNormalizations(ctx context.Context, q reporting.Query) ([]reporting.NormalizationAdjustment, error) {
	fromKey, toKey := monthKeyBounds(q.Window)
	var rows []models.NormalizationAdjustmentModel
	tx := s.db.WithContext(ctx).
		Where("month_key BETWEEN ? AND ?", fromKey, toKey)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	adjustments := make([]reporting.NormalizationAdjustment, len(rows))
	for i := range rows {
		adjustments[i] = rows[i].ToDomain()
	}
	return adjustments, nil
}

// FetchInvoices returns invoices created within the window, with their items
// and payments loaded
func (s *GormReportStore) FetchInvoices(ctx context.Context, q reporting.Query) ([]reporting.Invoice, error) {
	var rows []models.InvoiceModel
	tx := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("created_at BETWEEN ? AND ?", q.Window.From, q.Window.To)
	if q.OrderID != nil {
		tx = tx.Where("order_id = ?", *q.OrderID)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	invoices := make([]reporting.Invoice, len(rows))
	for i := range rows {
		invoices[i] = rows[i].ToDomain()
	}
	return invoices, nil
}

// FetchUnpaidInvoices returns all invoices whose status is not PAID or
// CANCELLED, regardless of the query window
func (s *GormReportStore) FetchUnpaidInvoices(ctx context.Context, q reporting.Query) ([]reporting.Invoice, error) {
	var rows []models.InvoiceModel
	tx := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("status NOT IN ?", []string{
			reporting.InvoiceStatusPaid.String(),
			reporting.InvoiceStatusCancelled.String(),
		})
	if q.OrderID != nil {
		tx = tx.Where("order_id = ?", *q.OrderID)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	invoices := make([]reporting.Invoice, len(rows))
	for i := range rows {
		invoices[i] = rows[i].ToDomain()
	}
	return invoices, nil
}

// OrderExists reports whether the order is known to the store
func (s *GormReportStore) OrderExists(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
