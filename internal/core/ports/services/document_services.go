package services

import (
	"context"

	"github.com/SscSPs/garage_books/internal/dto"
)

// DocumentSvc turns business documents into balanced journal entries.
type DocumentSvc interface {
	// RecordExpense posts a VAT-inclusive expense paid from cash or bank.
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*dto.DocumentPostingResponse, error)

	// RecordPurchaseOrder posts received goods billed to accounts payable.
	RecordPurchaseOrder(ctx context.Context, req dto.RecordPurchaseOrderRequest) (*dto.DocumentPostingResponse, error)

	// RecordPayment posts a payment settling a vendor payable.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.DocumentPostingResponse, error)

	// SplitVAT previews a VAT split without posting.
	SplitVAT(ctx context.Context, req dto.VATSplitRequest) (*dto.VATSplitResponse, error)
}
