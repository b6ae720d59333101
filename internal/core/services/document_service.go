package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/core/vat"
	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/shopspring/decimal"
)

// documentService turns expenses, purchase orders and payments into
// balanced journal entries.
type documentService struct {
	BaseService
	ledger portsrepo.JournalLedger
}

// NewDocumentService creates a new DocumentSvc posting to ledger.
func NewDocumentService(ledger portsrepo.JournalLedger, options ...ServiceOption) portssvc.DocumentSvc {
	return &documentService{
		BaseService: newBaseService(options),
		ledger:      ledger,
	}
}

var _ portssvc.DocumentSvc = (*documentService)(nil)

// RecordExpense posts net to the expense account, tax to the VAT account and
// credits the payment account with the gross amount.
func (s *documentService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*dto.DocumentPostingResponse, error) {
	if err := checkDocumentRef(&req.DocumentRef, &req.Vendor); err != nil {
		return nil, err
	}
	gross, err := positiveAmount("grossAmount", req.GrossAmount, req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	rate, err := optionalRate(req.VATRate)
	if err != nil {
		return nil, err
	}
	split, err := vat.SplitGross(gross, rate)
	if err != nil {
		return nil, err
	}

	lines := []domain.JournalLineDraft{{AccountCode: req.ExpenseAccountCode, Debit: split.Net}}
	if !split.Tax.IsZero() {
		if strings.TrimSpace(req.VATAccountCode) == "" {
			return nil, fmt.Errorf("%w: vatAccountCode is required when VAT is charged", apperrors.ErrValidation)
		}
		lines = append(lines, domain.JournalLineDraft{AccountCode: req.VATAccountCode, Debit: split.Tax})
	}
	lines = append(lines, domain.JournalLineDraft{AccountCode: req.PaymentAccountCode, Credit: split.Gross})

	draft := domain.JournalEntryDraft{
		Date:        req.Date.TimeOrZero(),
		Description: describe(req.Description, "Expense %s from %s", req.DocumentRef, req.Vendor),
		SourceRef:   domain.NewSourceRef(domain.SourceExpense, req.DocumentRef, req.Vendor),
		Lines:       lines,
	}
	return s.post(ctx, draft, &split)
}

// RecordPurchaseOrder posts received goods: inventory and input VAT are
// debited, accounts payable is credited with the total.
func (s *documentService) RecordPurchaseOrder(ctx context.Context, req dto.RecordPurchaseOrderRequest) (*dto.DocumentPostingResponse, error) {
	if err := checkDocumentRef(&req.DocumentRef, &req.Vendor); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a purchase order needs at least one item", apperrors.ErrValidation)
	}
	sum := decimal.Zero
	for i, item := range req.Items {
		if !item.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: item %d quantity must be positive", apperrors.ErrValidation, i+1)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %d unit price must not be negative", apperrors.ErrValidation, i+1)
		}
		sum = sum.Add(item.Quantity.Mul(item.UnitPrice))
	}
	subtotal, err := domain.MoneyFromDecimal(sum, req.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("purchase order total: %w", err)
	}
	if !subtotal.IsPositive() {
		return nil, fmt.Errorf("%w: purchase order total must be positive", apperrors.ErrValidation)
	}

	rate, err := optionalRate(req.VATRate)
	if err != nil {
		return nil, err
	}
	split, err := vat.AddTax(subtotal, rate)
	if err != nil {
		return nil, err
	}

	lines := []domain.JournalLineDraft{{AccountCode: req.InventoryAccountCode, Debit: split.Net}}
	if !split.Tax.IsZero() {
		if strings.TrimSpace(req.VATAccountCode) == "" {
			return nil, fmt.Errorf("%w: vatAccountCode is required when VAT is charged", apperrors.ErrValidation)
		}
		lines = append(lines, domain.JournalLineDraft{AccountCode: req.VATAccountCode, Debit: split.Tax})
	}
	lines = append(lines, domain.JournalLineDraft{AccountCode: req.PayableAccountCode, Credit: split.Gross})

	draft := domain.JournalEntryDraft{
		Date:        req.Date.TimeOrZero(),
		Description: describe(req.Description, "Purchase order %s from %s", req.DocumentRef, req.Vendor),
		SourceRef:   domain.NewSourceRef(domain.SourcePurchaseOrder, req.DocumentRef, req.Vendor),
		Lines:       lines,
	}
	return s.post(ctx, draft, &split)
}

// RecordPayment settles a payable: accounts payable is debited and the cash
// or bank account credited.
func (s *documentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.DocumentPostingResponse, error) {
	if err := checkDocumentRef(&req.DocumentRef, &req.Vendor); err != nil {
		return nil, err
	}
	amount, err := positiveAmount("amount", req.Amount, req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	draft := domain.JournalEntryDraft{
		Date:        req.Date.TimeOrZero(),
		Description: describe(req.Description, "Payment %s to %s", req.DocumentRef, req.Vendor),
		SourceRef:   domain.NewSourceRef(domain.SourcePayment, req.DocumentRef, req.Vendor),
		Lines: []domain.JournalLineDraft{
			{AccountCode: req.PayableAccountCode, Debit: amount},
			{AccountCode: req.PaymentAccountCode, Credit: amount},
		},
	}
	return s.post(ctx, draft, nil)
}

func (s *documentService) SplitVAT(ctx context.Context, req dto.VATSplitRequest) (*dto.VATSplitResponse, error) {
	gross, err := domain.MoneyFromDecimalExact(req.GrossAmount, req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	rate, err := vat.ParseRate(req.Rate)
	if err != nil {
		return nil, err
	}
	split, err := vat.SplitGross(gross, rate)
	if err != nil {
		return nil, err
	}
	return toVATSplitResponse(split), nil
}

func (s *documentService) post(ctx context.Context, draft domain.JournalEntryDraft, split *vat.Split) (*dto.DocumentPostingResponse, error) {
	entry, err := s.ledger.Post(draft)
	if err != nil {
		s.postRejected(ctx, err, slog.String("source_ref", string(draft.SourceRef)))
		return nil, err
	}
	s.entryPosted(ctx, entry)

	resp := &dto.DocumentPostingResponse{Journal: dto.ToJournalResponse(&entry)}
	if split != nil {
		resp.VATSplit = toVATSplitResponse(*split)
	}
	return resp, nil
}

// checkDocumentRef trims the document reference and vendor in place and
// rejects values that would not survive the SourceRef encoding.
func checkDocumentRef(document, vendor *string) error {
	*document = strings.TrimSpace(*document)
	*vendor = strings.TrimSpace(*vendor)
	if *vendor == "" {
		return fmt.Errorf("%w: vendor is required", apperrors.ErrValidation)
	}
	return domain.ValidateSourceRefParts(*document, *vendor)
}

func positiveAmount(field string, d decimal.Decimal, currency string) (domain.Money, error) {
	m, err := domain.MoneyFromDecimalExact(d, currency)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%s: %w", field, err)
	}
	if !m.IsPositive() {
		return domain.Money{}, fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, field)
	}
	return m, nil
}

// optionalRate parses a VAT rate; an empty rate means no VAT.
func optionalRate(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return vat.ParseRate(s)
}

func describe(given, format, document, vendor string) string {
	if d := strings.TrimSpace(given); d != "" {
		return d
	}
	return fmt.Sprintf(format, strings.TrimSpace(document), strings.TrimSpace(vendor))
}

func toVATSplitResponse(split vat.Split) *dto.VATSplitResponse {
	return &dto.VATSplitResponse{Gross: split.Gross, Net: split.Net, Tax: split.Tax, Rate: split.Rate}
}
