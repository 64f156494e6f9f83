package reporting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bizdesk/backend/internal/domain/reporting"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/domain/shared/valueobject"
)

// Authorizer answers whether a subject may read financial reports
type Authorizer interface {
	CanViewReports(ctx context.Context, subjectID uuid.UUID) (bool, error)
}

// Service provides application-level reporting operations. Every entry point
// authorizes first, fetches its record streams concurrently and returns
// either a complete report or an error, never a partial result.
type Service struct {
	store  reporting.Store
	authz  Authorizer
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new reporting Service
func NewService(store reporting.Store, authz Authorizer, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		authz:  authz,
		logger: logger,
		now:    time.Now,
	}
}

// authorize denies unless the subject provably holds the reporting grant.
// Errors from the access check deny as well.
func (s *Service) authorize(ctx context.Context, subjectID uuid.UUID) error {
	ok, err := s.authz.CanViewReports(ctx, subjectID)
	if err != nil {
		s.logger.Error("Report access check failed",
			zap.String("subject_id", subjectID.String()),
			zap.Error(err))
		return shared.ErrForbidden
	}
	if !ok {
		s.logger.Warn("Report access denied", zap.String("subject_id", subjectID.String()))
		return shared.ErrForbidden
	}
	return nil
}

// resolveQuery validates the filter and derives the store query and month
// grid. An order filter that resolves to no known order is an error; every
// other degenerate filter yields an empty, well-typed report.
func (s *Service) resolveQuery(ctx context.Context, filter ReportFilter, now time.Time) (reporting.Query, []reporting.MonthBucket, error) {
	if filter.OrderID != nil {
		exists, err := s.store.OrderExists(ctx, *filter.OrderID)
		if err != nil {
			s.logger.Error("Order lookup failed", zap.Error(err))
			return reporting.Query{}, nil, shared.ErrStoreUnavailable
		}
		if !exists {
			return reporting.Query{}, nil, shared.NewDomainError("ORDER_NOT_FOUND", "order not found")
		}
	}

	window := reporting.Filter{
		Year:           filter.Year,
		Month:          time.Month(filter.Month),
		DateFrom:       filter.DateFrom,
		DateTo:         filter.DateTo,
		OrganizationID: filter.OrganizationID,
		OrderID:        filter.OrderID,
	}.ResolveWindow(now)

	query := reporting.Query{
		Window:         window,
		OrganizationID: filter.OrganizationID,
		OrderID:        filter.OrderID,
	}
	return query, reporting.MonthRange(window.From, window.To, now), nil
}

// IncomeStatement builds the income statement for the filtered window
func (s *Service) IncomeStatement(ctx context.Context, subjectID uuid.UUID, filter ReportFilter) (*IncomeStatementResponse, error) {
	if err := s.authorize(ctx, subjectID); err != nil {
		return nil, err
	}
	now := s.now()
	query, buckets, err := s.resolveQuery(ctx, filter, now)
	if err != nil {
		return nil, err
	}

	var data reporting.IncomeStatementData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Revenue, err = s.store.FetchRevenueEntries(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.Costs, err = s.store.FetchCostEntries(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.BillingLines, err = s.store.FetchBillingPlanLines(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.BudgetMonths, err = s.store.FetchBudgetPlanMonths(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.Normalizations, err = s.store.FetchNormalizations(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Income statement fetch failed", zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}

	months := reporting.BuildIncomeStatement(buckets, data)
	resp := &IncomeStatementResponse{
		Year:     query.Window.From.Year(),
		Currency: string(valueobject.DefaultCurrency),
		Months:   make([]IncomeStatementMonthResponse, len(months)),
	}
	for i, m := range months {
		resp.Months[i] = IncomeStatementMonthResponse{
			Month:    m.Bucket.Key.String(),
			Label:    m.Bucket.Label,
			IsActual: m.Bucket.Actual,
			Actual:   toColumnResponse(m.Actual),
			Budget:   toColumnResponse(m.Budget),
		}
	}
	return resp, nil
}

// Cashflow builds the cashflow report for the filtered window
func (s *Service) Cashflow(ctx context.Context, subjectID uuid.UUID, filter ReportFilter) (*CashflowResponse, error) {
	if err := s.authorize(ctx, subjectID); err != nil {
		return nil, err
	}
	now := s.now()
	query, buckets, err := s.resolveQuery(ctx, filter, now)
	if err != nil {
		return nil, err
	}

	var data reporting.CashflowData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Revenue, err = s.store.FetchRevenueEntries(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.Costs, err = s.store.FetchCostEntries(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.BillingLines, err = s.store.FetchBillingPlanLines(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.PlannedExpenses, err = s.store.FetchPlannedExpenses(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Cashflow fetch failed", zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}

	months := reporting.BuildCashflow(buckets, data)
	resp := &CashflowResponse{Months: make([]CashflowMonthResponse, len(months))}
	for i, m := range months {
		resp.Months[i] = CashflowMonthResponse{
			Month:           m.Bucket.Key.String(),
			Label:           m.Bucket.Label,
			IsActual:        m.Bucket.Actual,
			Inflows:         toFloat64(m.Inflows),
			Outflows:        toFloat64(m.Outflows),
			Net:             toFloat64(m.Net()),
			PlannedInflows:  toFloat64(m.PlannedInflows),
			PlannedOutflows: toFloat64(m.PlannedOutflows),
			PlannedNet:      toFloat64(m.PlannedNet()),
		}
	}
	return resp, nil
}

// RevenueOverview builds the revenue overview for the filtered window
func (s *Service) RevenueOverview(ctx context.Context, subjectID uuid.UUID, filter ReportFilter) (*RevenueOverviewResponse, error) {
	if err := s.authorize(ctx, subjectID); err != nil {
		return nil, err
	}
	now := s.now()
	query, buckets, err := s.resolveQuery(ctx, filter, now)
	if err != nil {
		return nil, err
	}

	invoices, err := s.store.FetchInvoices(ctx, query)
	if err != nil {
		s.logger.Error("Revenue overview fetch failed", zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}

	overview := reporting.BuildRevenueOverview(buckets, invoices)
	resp := &RevenueOverviewResponse{
		ByMonth:    make([]MonthRevenueResponse, len(overview.ByMonth)),
		ByCustomer: make([]CustomerRevenueResponse, len(overview.ByCustomer)),
		ByOrder:    make([]OrderRevenueResponse, len(overview.ByOrder)),
	}
	for i, m := range overview.ByMonth {
		resp.ByMonth[i] = MonthRevenueResponse{
			Month:    m.Bucket.Key.String(),
			Label:    m.Bucket.Label,
			IsActual: m.Bucket.Actual,
			Invoiced: toFloat64(m.Invoiced),
			Paid:     toFloat64(m.Paid),
			Open:     toFloat64(m.Open()),
		}
	}
	for i, c := range overview.ByCustomer {
		resp.ByCustomer[i] = CustomerRevenueResponse{
			CustomerID:   c.CustomerID.String(),
			CustomerName: c.CustomerName,
			Invoiced:     toFloat64(c.Invoiced),
			Paid:         toFloat64(c.Paid),
			Open:         toFloat64(c.Open()),
		}
	}
	for i, o := range overview.ByOrder {
		resp.ByOrder[i] = OrderRevenueResponse{
			OrderID:  o.OrderID.String(),
			Invoiced: toFloat64(o.Invoiced),
			Paid:     toFloat64(o.Paid),
			Open:     toFloat64(o.Open()),
		}
	}
	return resp, nil
}

// OpenItems builds the outstanding-invoices report. Aging is computed against
// the current clock, not the filter window.
func (s *Service) OpenItems(ctx context.Context, subjectID uuid.UUID, filter ReportFilter) (*OpenItemsResponse, error) {
	if err := s.authorize(ctx, subjectID); err != nil {
		return nil, err
	}
	now := s.now()
	query, _, err := s.resolveQuery(ctx, filter, now)
	if err != nil {
		return nil, err
	}

	invoices, err := s.store.FetchUnpaidInvoices(ctx, query)
	if err != nil {
		s.logger.Error("Open items fetch failed", zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}

	report := reporting.BuildOpenItems(invoices, now)
	resp := &OpenItemsResponse{
		Items:   make([]OpenItemResponse, len(report.Items)),
		ByAging: make(map[string]float64, len(report.ByAging)),
	}
	for i, item := range report.Items {
		resp.Items[i] = OpenItemResponse{
			InvoiceID:    item.InvoiceID.String(),
			Number:       item.Number,
			CustomerID:   item.CustomerID.String(),
			CustomerName: item.CustomerName,
			Total:        item.Total.Round(2).Float64(),
			Paid:         item.Paid.Round(2).Float64(),
			Open:         item.Open.Round(2).Float64(),
			DueAt:        item.DueAt,
			DaysOverdue:  item.DaysOverdue,
			AgingBucket:  item.Bucket.String(),
		}
	}
	for bucket, money := range report.ByAging {
		resp.ByAging[bucket.String()] = money.Round(2).Float64()
	}
	return resp, nil
}

// BudgetVsActual builds the per-order budget comparison for the filtered
// window
func (s *Service) BudgetVsActual(ctx context.Context, subjectID uuid.UUID, filter ReportFilter) (*BudgetVsActualResponse, error) {
	if err := s.authorize(ctx, subjectID); err != nil {
		return nil, err
	}
	now := s.now()
	query, _, err := s.resolveQuery(ctx, filter, now)
	if err != nil {
		return nil, err
	}

	var data reporting.BudgetVsActualData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.BudgetMonths, err = s.store.FetchBudgetPlanMonths(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.BudgetCosts, err = s.store.FetchBudgetActualCosts(gctx, query)
		return err
	})
	g.Go(func() (err error) {
		data.ExpenseCosts, err = s.store.FetchCostEntries(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Budget comparison fetch failed", zap.Error(err))
		return nil, shared.ErrStoreUnavailable
	}

	rows := reporting.BuildBudgetVsActual(data)
	resp := &BudgetVsActualResponse{Rows: make([]BudgetVsActualRowResponse, len(rows))}
	for i, row := range rows {
		resp.Rows[i] = BudgetVsActualRowResponse{
			OrderID:               row.OrderID.String(),
			PlannedPersonnel:      toFloat64(row.PlannedPersonnel),
			PlannedExternal:       toFloat64(row.PlannedExternal),
			PlannedInfrastructure: toFloat64(row.PlannedInfrastructure),
			PlannedRevenue:        toFloat64(row.PlannedRevenue),
			PlannedTotal:          toFloat64(row.PlannedTotal()),
			ActualBudgetCost:      toFloat64(row.ActualBudgetCost),
			ActualExpenseCost:     toFloat64(row.ActualExpenseCost),
			ActualTotal:           toFloat64(row.ActualTotal()),
			Variance:              toFloat64(row.Variance()),
		}
	}
	return resp, nil
}
