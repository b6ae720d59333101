package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type DocumentServiceTestSuite struct {
	ServiceTestSuite
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}

func (s *DocumentServiceTestSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.fund("10000")
}

func fuelExpense() dto.RecordExpenseRequest {
	return dto.RecordExpenseRequest{
		DocumentRef:        "EXP-001",
		Vendor:             "Shell",
		CurrencyCode:       "INR",
		GrossAmount:        dec("531.00"),
		VATRate:            "18%",
		ExpenseAccountCode: "6010",
		VATAccountCode:     "1300",
		PaymentAccountCode: "1010",
	}
}

func (s *DocumentServiceTestSuite) TestRecordExpense_SplitsVAT() {
	resp, err := s.svc.Document.RecordExpense(s.ctx, fuelExpense())
	s.Require().NoError(err)

	s.Require().NotNil(resp.VATSplit)
	s.Equal(int64(45000), resp.VATSplit.Net.Amount)
	s.Equal(int64(8100), resp.VATSplit.Tax.Amount)
	s.Equal("Expense:EXP-001@Shell", resp.Journal.SourceRef)
	s.Equal("Expense EXP-001 from Shell", resp.Journal.Description)
	s.Len(resp.Journal.Lines, 3)

	s.Equal(int64(45000), s.balance("6010"))
	s.Equal(int64(8100), s.balance("1300"))
	s.Equal(int64(1000000-53100), s.balance("1010"))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.EntriesPosted.WithLabelValues("Expense")))
}

func (s *DocumentServiceTestSuite) TestRecordExpense_WithoutVAT() {
	req := fuelExpense()
	req.VATRate = ""
	req.VATAccountCode = ""
	req.Date = date(2025, time.March, 2)

	resp, err := s.svc.Document.RecordExpense(s.ctx, req)
	s.Require().NoError(err)
	s.Len(resp.Journal.Lines, 2)
	s.Equal("2025-03-02", resp.Journal.Date.Format(time.DateOnly))
	s.Equal(int64(53100), s.balance("6010"))
}

func (s *DocumentServiceTestSuite) TestRecordExpense_Rejected() {
	before := s.entryCount()

	noVATAccount := fuelExpense()
	noVATAccount.VATAccountCode = ""
	_, err := s.svc.Document.RecordExpense(s.ctx, noVATAccount)
	s.ErrorIs(err, apperrors.ErrValidation)

	negativeRate := fuelExpense()
	negativeRate.VATRate = "-5%"
	_, err = s.svc.Document.RecordExpense(s.ctx, negativeRate)
	s.ErrorIs(err, apperrors.ErrInvalidRate)

	unknown := fuelExpense()
	unknown.ExpenseAccountCode = "9999"
	_, err = s.svc.Document.RecordExpense(s.ctx, unknown)
	s.ErrorIs(err, apperrors.ErrUnknownAccount)

	zero := fuelExpense()
	zero.GrossAmount = dec("0")
	_, err = s.svc.Document.RecordExpense(s.ctx, zero)
	s.ErrorIs(err, apperrors.ErrValidation)

	s.Equal(before, s.entryCount())
	s.Equal(int64(1000000), s.balance("1010"))
}

func (s *DocumentServiceTestSuite) TestPurchaseOrderThenPayment() {
	po, err := s.svc.Document.RecordPurchaseOrder(s.ctx, dto.RecordPurchaseOrderRequest{
		DocumentRef:  "PO-7",
		Vendor:       "Bosch",
		Date:         date(2025, time.March, 5),
		CurrencyCode: "INR",
		Items: []dto.PurchaseOrderItem{
			{Description: "Brake pads", Quantity: dec("2"), UnitPrice: dec("250")},
			{Description: "Oil filter", Quantity: dec("1"), UnitPrice: dec("100")},
		},
		VATRate:              "0.18",
		InventoryAccountCode: "1200",
		VATAccountCode:       "1300",
		PayableAccountCode:   "2010",
	})
	s.Require().NoError(err)
	s.Equal(int64(60000), po.VATSplit.Net.Amount)
	s.Equal(int64(10800), po.VATSplit.Tax.Amount)
	s.Equal(int64(70800), po.VATSplit.Gross.Amount)
	s.Equal(int64(60000), s.balance("1200"))
	s.Equal(int64(70800), s.balance("2010"))

	pay, err := s.svc.Document.RecordPayment(s.ctx, dto.RecordPaymentRequest{
		DocumentRef:        "PAY-1",
		Vendor:             "Bosch",
		Date:               date(2025, time.March, 10),
		CurrencyCode:       "INR",
		Amount:             dec("708"),
		PayableAccountCode: "2010",
		PaymentAccountCode: "1010",
	})
	s.Require().NoError(err)
	s.Nil(pay.VATSplit)
	s.Zero(s.balance("2010"))

	report, err := s.svc.Reporting.VendorActivity(s.ctx, "Bosch", domain.DateRange{
		From: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Require().Len(report.Currencies, 1)
	s.Equal(int64(70800), report.Currencies[0].PurchaseTotal.Amount)
	s.Equal(int64(70800), report.Currencies[0].PaymentTotal.Amount)
	s.Equal(2, report.Currencies[0].EntryCount)
}

func (s *DocumentServiceTestSuite) TestPurchaseOrder_Rejected() {
	base := dto.RecordPurchaseOrderRequest{
		DocumentRef: "PO-8", Vendor: "Bosch", CurrencyCode: "INR",
		InventoryAccountCode: "1200", PayableAccountCode: "2010",
	}

	empty := base
	_, err := s.svc.Document.RecordPurchaseOrder(s.ctx, empty)
	s.ErrorIs(err, apperrors.ErrValidation)

	zeroQty := base
	zeroQty.Items = []dto.PurchaseOrderItem{{Description: "Bulb", Quantity: dec("0"), UnitPrice: dec("5")}}
	_, err = s.svc.Document.RecordPurchaseOrder(s.ctx, zeroQty)
	s.ErrorIs(err, apperrors.ErrValidation)

	taxedWithoutAccount := base
	taxedWithoutAccount.Items = []dto.PurchaseOrderItem{{Description: "Bulb", Quantity: dec("1"), UnitPrice: dec("5")}}
	taxedWithoutAccount.VATRate = "5%"
	_, err = s.svc.Document.RecordPurchaseOrder(s.ctx, taxedWithoutAccount)
	s.ErrorIs(err, apperrors.ErrValidation)

	tooLarge := base
	tooLarge.Items = []dto.PurchaseOrderItem{{Description: "Engine", Quantity: dec("1000000"), UnitPrice: dec("1e14")}}
	_, err = s.svc.Document.RecordPurchaseOrder(s.ctx, tooLarge)
	s.ErrorIs(err, apperrors.ErrValidation)

	// Fits on its own, but the tax pushes the total out of range.
	taxOverflow := base
	taxOverflow.Items = []dto.PurchaseOrderItem{{Description: "Engine", Quantity: dec("1"), UnitPrice: dec("90000000000000000")}}
	taxOverflow.VATRate = "18%"
	taxOverflow.VATAccountCode = "1300"
	_, err = s.svc.Document.RecordPurchaseOrder(s.ctx, taxOverflow)
	s.ErrorIs(err, apperrors.ErrValidation)

	s.Zero(s.balance("1200"))
}

func (s *DocumentServiceTestSuite) TestDocuments_RejectVendorTagSeparator() {
	before := s.entryCount()

	expense := fuelExpense()
	expense.Vendor = "parts@acme.in"
	_, err := s.svc.Document.RecordExpense(s.ctx, expense)
	s.ErrorIs(err, apperrors.ErrValidation)

	badRef := fuelExpense()
	badRef.DocumentRef = "EXP@001"
	_, err = s.svc.Document.RecordExpense(s.ctx, badRef)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Document.RecordPayment(s.ctx, dto.RecordPaymentRequest{
		DocumentRef: "PAY-2", Vendor: "parts@acme.in", CurrencyCode: "INR", Amount: dec("10"),
		PayableAccountCode: "2010", PaymentAccountCode: "1010",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Document.RecordPurchaseOrder(s.ctx, dto.RecordPurchaseOrderRequest{
		DocumentRef: "PO-9", Vendor: "parts@acme.in", CurrencyCode: "INR",
		Items:                []dto.PurchaseOrderItem{{Description: "Bulb", Quantity: dec("1"), UnitPrice: dec("5")}},
		InventoryAccountCode: "1200", PayableAccountCode: "2010",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(before, s.entryCount())
}

func (s *DocumentServiceTestSuite) TestRecordExpense_VendorIsTrimmed() {
	req := fuelExpense()
	req.Vendor = "  Apex Motors "
	resp, err := s.svc.Document.RecordExpense(s.ctx, req)
	s.Require().NoError(err)
	s.Equal("Expense:EXP-001@Apex Motors", resp.Journal.SourceRef)

	report, err := s.svc.Reporting.VendorActivity(s.ctx, "apex motors", domain.DateRange{})
	s.Require().NoError(err)
	s.Require().Len(report.Currencies, 1)
	s.Equal(int64(53100), report.Currencies[0].ExpenseTotal.Amount)
}

func (s *DocumentServiceTestSuite) TestSplitVAT() {
	split, err := s.svc.Document.SplitVAT(s.ctx, dto.VATSplitRequest{GrossAmount: dec("100"), CurrencyCode: "INR", Rate: "0.18"})
	s.Require().NoError(err)
	s.Equal(int64(8475), split.Net.Amount)
	s.Equal(int64(1525), split.Tax.Amount)
	s.Equal(int64(10000), split.Gross.Amount)

	_, err = s.svc.Document.SplitVAT(s.ctx, dto.VATSplitRequest{GrossAmount: dec("100"), CurrencyCode: "INR", Rate: "abc"})
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.svc.Document.SplitVAT(s.ctx, dto.VATSplitRequest{GrossAmount: dec("100"), CurrencyCode: "INR", Rate: "-0.1"})
	s.ErrorIs(err, apperrors.ErrInvalidRate)

	s.Equal(1, s.entryCount())
}
