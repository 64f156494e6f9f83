package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reportingapp "github.com/bizdesk/backend/internal/application/reporting"
	"github.com/bizdesk/backend/internal/infrastructure/auth"
	"github.com/bizdesk/backend/internal/interfaces/http/middleware"
)

// reportQuery is the query string shape shared by all report endpoints.
// UUID parameters arrive as strings and are parsed explicitly.
type reportQuery struct {
	Year           int        `form:"year"`
	Month          int        `form:"month" binding:"omitempty,min=1,max=12"`
	DateFrom       *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo         *time.Time `form:"date_to" time_format:"2006-01-02"`
	OrganizationID string     `form:"organization_id"`
	OrderID        string     `form:"order_id"`
}

// ReportHandler handles financial report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportingapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportingapp.Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// RegisterRoutes registers report routes under /reports. Every route
// requires the reporting permission on top of request authentication.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.Use(middleware.RequirePermission(auth.PermissionViewReports))
	{
		reports.GET("/income-statement", h.IncomeStatement)
		reports.GET("/cashflow", h.Cashflow)
		reports.GET("/revenue-overview", h.RevenueOverview)
		reports.GET("/open-items", h.OpenItems)
		reports.GET("/budget-vs-actual", h.BudgetVsActual)
	}
}

// bindFilter binds the query string into a report filter. A binding failure
// is reported as 400 and the second return value is false.
func (h *ReportHandler) bindFilter(c *gin.Context) (reportingapp.ReportFilter, bool) {
	var query reportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "invalid report filter: "+err.Error())
		return reportingapp.ReportFilter{}, false
	}

	filter := reportingapp.ReportFilter{
		Year:     query.Year,
		Month:    query.Month,
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
	}
	if query.OrganizationID != "" {
		id, err := uuid.Parse(query.OrganizationID)
		if err != nil {
			h.BadRequest(c, "invalid organization_id")
			return reportingapp.ReportFilter{}, false
		}
		filter.OrganizationID = &id
	}
	if query.OrderID != "" {
		id, err := uuid.Parse(query.OrderID)
		if err != nil {
			h.BadRequest(c, "invalid order_id")
			return reportingapp.ReportFilter{}, false
		}
		filter.OrderID = &id
	}
	return filter, true
}

// IncomeStatement returns the month-by-month income statement
// GET /api/v1/reports/income-statement
func (h *ReportHandler) IncomeStatement(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "authentication required")
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.IncomeStatement(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// Cashflow returns monthly cash in and out totals
// GET /api/v1/reports/cashflow
func (h *ReportHandler) Cashflow(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "authentication required")
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.Cashflow(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// RevenueOverview returns invoiced and paid revenue grouped three ways
// GET /api/v1/reports/revenue-overview
func (h *ReportHandler) RevenueOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "authentication required")
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.RevenueOverview(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// OpenItems returns unpaid invoices with overdue aging buckets
// GET /api/v1/reports/open-items
func (h *ReportHandler) OpenItems(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "authentication required")
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.OpenItems(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// BudgetVsActual returns planned versus actual cost per order
// GET /api/v1/reports/budget-vs-actual
func (h *ReportHandler) BudgetVsActual(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "authentication required")
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.BudgetVsActual(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}
