package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/reporting"
)

// OrderModel is the persistence model for client orders (engagements)
type OrderModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name           string     `gorm:"type:varchar(200);not null"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// PaymentModel is the persistence model for received payments
type PaymentModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReceivedAt     time.Time       `gorm:"not null;index"`
	OrganizationID *uuid.UUID      `gorm:"type:uuid;index"`
	OrderID        *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain RevenueEntry
func (m *PaymentModel) ToDomain() reporting.RevenueEntry {
	return reporting.RevenueEntry{
		ID:             m.ID,
		Amount:         m.Amount,
		ReceivedAt:     m.ReceivedAt,
		OrganizationID: m.OrganizationID,
		OrderID:        m.OrderID,
	}
}

// ExpenseRecordModel is the persistence model for paid costs
type ExpenseRecordModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidAt         time.Time       `gorm:"not null;index"`
	CostType       string          `gorm:"type:varchar(30);not null;index"`
	OrganizationID *uuid.UUID      `gorm:"type:uuid;index"`
	OrderID        *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ExpenseRecordModel) TableName() string {
	return "expense_records"
}

// ToDomain converts the persistence model to a domain CostEntry
func (m *ExpenseRecordModel) ToDomain() reporting.CostEntry {
	return reporting.CostEntry{
		ID:             m.ID,
		Amount:         m.Amount,
		PaidAt:         m.PaidAt,
		Type:           reporting.CostType(m.CostType),
		OrganizationID: m.OrganizationID,
		OrderID:        m.OrderID,
	}
}

// BillingPlanLineModel is the persistence model for scheduled invoice lines
type BillingPlanLineModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DueAt          time.Time       `gorm:"not null;index"`
	OrganizationID *uuid.UUID      `gorm:"type:uuid;index"`
	OrderID        *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BillingPlanLineModel) TableName() string {
	return "billing_plan_lines"
}

// ToDomain converts the persistence model to a domain BillingPlanLine
func (m *BillingPlanLineModel) ToDomain() reporting.BillingPlanLine {
	return reporting.BillingPlanLine{
		ID:             m.ID,
		Amount:         m.Amount,
		DueAt:          m.DueAt,
		OrganizationID: m.OrganizationID,
		OrderID:        m.OrderID,
	}
}

// PlannedExpenseModel is the persistence model for scheduled outflows
type PlannedExpenseModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PlannedFor time.Time       `gorm:"not null;index"`
	CostType   string          `gorm:"type:varchar(30);not null"`
	OrderID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PlannedExpenseModel) TableName() string {
	return "planned_expenses"
}

// ToDomain converts the persistence model to a domain PlannedExpense
func (m *PlannedExpenseModel) ToDomain() reporting.PlannedExpense {
	return reporting.PlannedExpense{
		ID:         m.ID,
		Amount:     m.Amount,
		PlannedFor: m.PlannedFor,
		Type:       reporting.CostType(m.CostType),
		OrderID:    m.OrderID,
	}
}

// BudgetPlanModel is the persistence model for a versioned per-order budget
// plan. Only the highest version per order is live; superseded versions are
// kept for audit.
type BudgetPlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_budget_plan_order_version,priority:1"`
	Version   int       `gorm:"not null;uniqueIndex:idx_budget_plan_order_version,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BudgetPlanModel) TableName() string {
	return "budget_plans"
}

// BudgetPlanMonthModel is one month line of a budget plan version
type BudgetPlanMonthModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	PlanID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthKey       string          `gorm:"type:varchar(7);not null;index"`
	Personnel      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	External       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Infrastructure decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Revenue        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (BudgetPlanMonthModel) TableName() string {
	return "budget_plan_months"
}

// BudgetActualCostModel is an actual-cost booking in the per-order budget
// ledger
type BudgetActualCostModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthKey  string          `gorm:"type:varchar(7);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BudgetActualCostModel) TableName() string {
	return "budget_actual_costs"
}

// ToDomain converts the persistence model to a domain BudgetActualCost
func (m *BudgetActualCostModel) ToDomain() reporting.BudgetActualCost {
	return reporting.BudgetActualCost{
		OrderID: m.OrderID,
		Key:     reporting.MonthKey(m.MonthKey),
		Amount:  m.Amount,
	}
}

// NormalizationAdjustmentModel is a manually entered one-off EBITDA
// adjustment
type NormalizationAdjustmentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	MonthKey  string          `gorm:"type:varchar(7);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Note      string          `gorm:"type:varchar(500)"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (NormalizationAdjustmentModel) TableName() string {
	return "normalization_adjustments"
}

// ToDomain converts the persistence model to a domain
// NormalizationAdjustment
func (m *NormalizationAdjustmentModel) ToDomain() reporting.NormalizationAdjustment {
	return reporting.NormalizationAdjustment{
		ID:     m.ID,
		Key:    reporting.MonthKey(m.MonthKey),
		Amount: m.Amount,
		Note:   m.Note,
	}
}

// InvoiceModel is the persistence model for invoices
type InvoiceModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	Number       string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerName string     `gorm:"type:varchar(200);not null"`
	OrderID      *uuid.UUID `gorm:"type:uuid;index"`
	Status       string     `gorm:"type:varchar(20);not null;index"`
	DueAt        time.Time  `gorm:"not null;index"`
	CreatedAt    time.Time  `gorm:"not null;index"`
	UpdatedAt    time.Time  `gorm:"not null"`

	Items    []InvoiceItemModel    `gorm:"foreignKey:InvoiceID"`
	Payments []InvoicePaymentModel `gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() reporting.Invoice {
	inv := reporting.Invoice{
		ID:           m.ID,
		Number:       m.Number,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		OrderID:      m.OrderID,
		Status:       reporting.InvoiceStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		DueAt:        m.DueAt,
		Items:        make([]reporting.InvoiceItem, len(m.Items)),
		Payments:     make([]reporting.InvoicePayment, len(m.Payments)),
	}
	for i, item := range m.Items {
		inv.Items[i] = reporting.InvoiceItem{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	for i, p := range m.Payments {
		inv.Payments[i] = reporting.InvoicePayment{
			Amount: p.Amount,
			PaidAt: p.PaidAt,
		}
	}
	return inv
}

// InvoiceItemModel is one billed position of an invoice
type InvoiceItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// InvoicePaymentModel is a payment applied against an invoice
type InvoicePaymentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoicePaymentModel) TableName() string {
	return "invoice_payments"
}
