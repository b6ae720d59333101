package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/SscSPs/garage_books/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler posts business documents as journal entries.
type documentHandler struct {
	documentService portssvc.DocumentSvc
}

func newDocumentHandler(ds portssvc.DocumentSvc) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers expense, purchase order, payment and VAT routes.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvc) {
	h := newDocumentHandler(documentService)

	rg.POST("/expenses", h.recordExpense)
	rg.POST("/purchase-orders", h.recordPurchaseOrder)
	rg.POST("/payments", h.recordPayment)
	rg.POST("/vat/split", h.splitVAT)
}

// recordExpense godoc
// @Summary Record an expense
// @Description Splits a VAT-inclusive amount and posts expense, input VAT and payment lines
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   expense body dto.RecordExpenseRequest true "Expense document"
// @Success 201 {object} dto.DocumentPostingResponse
// @Failure 400 {object} map[string]string "Invalid request, rate or account"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /expenses [post]
func (h *documentHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "RecordExpense")
		return
	}
	logger = logger.With(slog.String("document_ref", req.DocumentRef), slog.String("vendor", req.Vendor))

	resp, err := h.documentService.RecordExpense(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// recordPurchaseOrder godoc
// @Summary Record a purchase order
// @Description Posts received goods to inventory and input VAT against accounts payable
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   purchaseOrder body dto.RecordPurchaseOrderRequest true "Purchase order"
// @Success 201 {object} dto.DocumentPostingResponse
// @Failure 400 {object} map[string]string "Invalid request, rate or account"
// @Failure 500 {object} map[string]string "Failed to record purchase order"
// @Router /purchase-orders [post]
func (h *documentHandler) recordPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "RecordPurchaseOrder")
		return
	}
	logger = logger.With(slog.String("document_ref", req.DocumentRef), slog.String("vendor", req.Vendor))

	resp, err := h.documentService.RecordPurchaseOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record purchase order")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// recordPayment godoc
// @Summary Record a vendor payment
// @Description Debits accounts payable and credits the cash or bank account
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.DocumentPostingResponse
// @Failure 400 {object} map[string]string "Invalid request or account"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /payments [post]
func (h *documentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "RecordPayment")
		return
	}
	logger = logger.With(slog.String("document_ref", req.DocumentRef), slog.String("vendor", req.Vendor))

	resp, err := h.documentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// splitVAT godoc
// @Summary Split a gross amount
// @Description Computes net and tax for a VAT-inclusive amount without posting anything
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   split body dto.VATSplitRequest true "Gross amount and rate"
// @Success 200 {object} dto.VATSplitResponse
// @Failure 400 {object} map[string]string "Invalid amount or rate"
// @Router /vat/split [post]
func (h *documentHandler) splitVAT(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VATSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "SplitVAT")
		return
	}

	resp, err := h.documentService.SplitVAT(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to split VAT")
		return
	}
	c.JSON(http.StatusOK, resp)
}
