package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/garage_books/internal/core/domain"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/SscSPs/garage_books/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/account-types", h.getAccountTypeTotals)
		reportingGroup.GET("/vendors/:vendor", h.getVendorActivity)
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/periods", h.getPeriodTotals)
		reportingGroup.GET("/tax", h.getTaxSummary)
	}
}

// getAccountTypeTotals godoc
// @Summary Totals per account type
// @Description Sums balances per account type and currency, with net equity (assets minus liabilities)
// @Tags reports
// @Produce json
// @Param type query []string false "Account types to include" collectionFormat(multi)
// @Param asOf query string false "Report date (YYYY-MM-DD); omitted means running balances"
// @Success 200 {object} domain.AccountTypeTotalsReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/account-types [get]
func (h *reportingHandler) getAccountTypeTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AccountTypeTotalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "AccountTypeTotals")
		return
	}
	asOf, err := dto.ParseDate(params.AsOf)
	if err != nil {
		respondError(c, logger, err, "Invalid asOf")
		return
	}
	types := make([]domain.AccountType, 0, len(params.Types))
	for _, t := range params.Types {
		types = append(types, domain.AccountType(strings.ToUpper(strings.TrimSpace(t))))
	}

	report, err := h.reportingService.AccountTypeTotals(c.Request.Context(), types, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate account type totals")
		return
	}
	if report.Currencies == nil {
		report.Currencies = []domain.TypeTotals{}
	}
	c.JSON(http.StatusOK, report)
}

// getVendorActivity godoc
// @Summary Vendor activity
// @Description Sums expense, purchase and payment activity tagged with a vendor over [from, to)
// @Tags reports
// @Produce json
// @Param vendor path string true "Vendor name (case-insensitive)"
// @Param from query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param to query string false "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {object} domain.VendorActivityReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/vendors/{vendor} [get]
func (h *reportingHandler) getVendorActivity(c *gin.Context) {
	vendor := c.Param("vendor")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("vendor", vendor))

	r, ok := bindRange(c, logger, "VendorActivity")
	if !ok {
		return
	}

	report, err := h.reportingService.VendorActivity(c.Request.Context(), vendor, r)
	if err != nil {
		respondError(c, logger, err, "Failed to generate vendor activity")
		return
	}
	if report.Currencies == nil {
		report.Currencies = []domain.VendorTotals{}
	}
	c.JSON(http.StatusOK, report)
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lists every account with a nonzero balance on its normal side, with per-currency totals
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD); omitted means running balances"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := dto.ParseDate(c.Query("asOf"))
	if err != nil {
		respondError(c, logger, err, "Invalid asOf")
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.NewTrialBalanceResponse(c.Query("asOf"), rows))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Revenue and expense movement over [from, to), one report per currency
// @Tags reports
// @Produce json
// @Param from query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param to query string false "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	r, ok := bindRange(c, logger, "ProfitAndLoss")
	if !ok {
		return
	}

	reports, err := h.reportingService.ProfitAndLoss(c.Request.Context(), r)
	if err != nil {
		respondError(c, logger, err, "Failed to generate profit and loss")
		return
	}
	if reports == nil {
		reports = []domain.PAndLReport{}
	}
	c.JSON(http.StatusOK, dto.ProfitAndLossResponse{From: c.Query("from"), To: c.Query("to"), Reports: reports})
}

// getPeriodTotals godoc
// @Summary Monthly activity
// @Description Debit, credit and net movement grouped by month, currency and account type
// @Tags reports
// @Produce json
// @Param from query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param to query string false "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodTotalsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/periods [get]
func (h *reportingHandler) getPeriodTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	r, ok := bindRange(c, logger, "PeriodTotals")
	if !ok {
		return
	}

	rows, err := h.reportingService.PeriodTotals(c.Request.Context(), r)
	if err != nil {
		respondError(c, logger, err, "Failed to generate period totals")
		return
	}
	if rows == nil {
		rows = []domain.PeriodTotalsRow{}
	}
	c.JSON(http.StatusOK, dto.PeriodTotalsResponse{Rows: rows})
}

// getTaxSummary godoc
// @Summary VAT summary
// @Description Input VAT, output VAT and net payable over [from, to), per currency
// @Tags reports
// @Produce json
// @Param from query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param to query string false "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.TaxSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/tax [get]
func (h *reportingHandler) getTaxSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	r, ok := bindRange(c, logger, "TaxSummary")
	if !ok {
		return
	}

	sums, err := h.reportingService.TaxSummary(c.Request.Context(), r)
	if err != nil {
		respondError(c, logger, err, "Failed to generate tax summary")
		return
	}
	if sums == nil {
		sums = []domain.TaxSummary{}
	}
	c.JSON(http.StatusOK, dto.TaxSummaryResponse{Summaries: sums})
}

// bindRange reads from/to query parameters. It writes the error response and
// returns false when they do not parse.
func bindRange(c *gin.Context, logger *slog.Logger, op string) (domain.DateRange, bool) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, op)
		return domain.DateRange{}, false
	}
	r, err := params.ToRange()
	if err != nil {
		respondError(c, logger, err, "Invalid date range")
		return domain.DateRange{}, false
	}
	return r, true
}
