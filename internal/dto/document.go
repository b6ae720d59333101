package dto

import (
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordExpenseRequest is a VAT-inclusive expense paid from a cash or bank account.
type RecordExpenseRequest struct {
	DocumentRef        string          `json:"documentRef" binding:"required"`
	Vendor             string          `json:"vendor" binding:"required"`
	Date               *Date           `json:"date"`
	Description        string          `json:"description"`
	CurrencyCode       string          `json:"currencyCode" binding:"required,currency"`
	GrossAmount        decimal.Decimal `json:"grossAmount"`
	VATRate            string          `json:"vatRate"` // "0.18" or "18%"; empty means no VAT
	ExpenseAccountCode string          `json:"expenseAccountCode" binding:"required"`
	VATAccountCode     string          `json:"vatAccountCode"` // Required when tax is nonzero
	PaymentAccountCode string          `json:"paymentAccountCode" binding:"required"`
}

// PurchaseOrderItem is one line item of a purchase order.
type PurchaseOrderItem struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// RecordPurchaseOrderRequest is a received purchase order billed on credit.
type RecordPurchaseOrderRequest struct {
	DocumentRef          string              `json:"documentRef" binding:"required"`
	Vendor               string              `json:"vendor" binding:"required"`
	Date                 *Date               `json:"date"`
	Description          string              `json:"description"`
	CurrencyCode         string              `json:"currencyCode" binding:"required,currency"`
	Items                []PurchaseOrderItem `json:"items" binding:"required,min=1,dive"`
	VATRate              string              `json:"vatRate"`
	InventoryAccountCode string              `json:"inventoryAccountCode" binding:"required"`
	VATAccountCode       string              `json:"vatAccountCode"`
	PayableAccountCode   string              `json:"payableAccountCode" binding:"required"`
}

// RecordPaymentRequest settles a vendor payable from a cash or bank account.
type RecordPaymentRequest struct {
	DocumentRef        string          `json:"documentRef" binding:"required"`
	Vendor             string          `json:"vendor" binding:"required"`
	Date               *Date           `json:"date"`
	Description        string          `json:"description"`
	CurrencyCode       string          `json:"currencyCode" binding:"required,currency"`
	Amount             decimal.Decimal `json:"amount"`
	PayableAccountCode string          `json:"payableAccountCode" binding:"required"`
	PaymentAccountCode string          `json:"paymentAccountCode" binding:"required"`
}

// VATSplitRequest asks for the net/tax split of a gross amount without posting.
type VATSplitRequest struct {
	GrossAmount  decimal.Decimal `json:"grossAmount"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currency"`
	Rate         string          `json:"rate" binding:"required"`
}

// VATSplitResponse is the result of a VAT split.
type VATSplitResponse struct {
	Gross domain.Money    `json:"gross"`
	Net   domain.Money    `json:"net"`
	Tax   domain.Money    `json:"tax"`
	Rate  decimal.Decimal `json:"rate"`
}

// DocumentPostingResponse is returned after a document has been posted.
type DocumentPostingResponse struct {
	Journal  JournalResponse   `json:"journal"`
	VATSplit *VATSplitResponse `json:"vatSplit,omitempty"`
}
