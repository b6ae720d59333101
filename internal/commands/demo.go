package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SscSPs/garage_books/internal/core/domain"
	"github.com/SscSPs/garage_books/internal/core/ledger"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/core/services"
	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/SscSPs/garage_books/internal/middleware"
)

// demoReport is what the demo prints after posting its sample month.
type demoReport struct {
	TrialBalance  dto.TrialBalanceResponse `json:"trialBalance" yaml:"trialBalance"`
	ProfitAndLoss []domain.PAndLReport     `json:"profitAndLoss" yaml:"profitAndLoss"`
	Tax           []domain.TaxSummary      `json:"tax" yaml:"tax"`
}

func newDemoCommand() *cobra.Command {
	var currency string
	var output string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Post a sample month of garage activity to an in-memory ledger and print the reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := "error"
			if verbose {
				level = "debug"
			}
			ctx := middleware.WithLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))

			report, err := runDemo(ctx, currency)
			if err != nil {
				return err
			}
			return writeDemoReport(cmd.OutOrStdout(), output, report)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "INR", "currency of the sample chart of accounts")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every posting to stderr")

	return cmd
}

func runDemo(ctx context.Context, currency string) (*demoReport, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	l := ledger.New()
	if _, err := services.SeedDefaultChart(ctx, l, currency); err != nil {
		return nil, fmt.Errorf("seeding chart: %w", err)
	}
	svc := services.NewServiceContainer(portsrepo.RepositoryProvider{Ledger: l})

	if err := postSampleMonth(ctx, svc, currency); err != nil {
		return nil, err
	}

	rows, err := svc.Reporting.TrialBalance(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("trial balance: %w", err)
	}
	pl, err := svc.Reporting.ProfitAndLoss(ctx, domain.DateRange{})
	if err != nil {
		return nil, fmt.Errorf("profit and loss: %w", err)
	}
	tax, err := svc.Reporting.TaxSummary(ctx, domain.DateRange{})
	if err != nil {
		return nil, fmt.Errorf("tax summary: %w", err)
	}
	return &demoReport{TrialBalance: dto.NewTrialBalanceResponse("", rows), ProfitAndLoss: pl, Tax: tax}, nil
}

// postSampleMonth funds the garage, buys parts on credit and pays for them,
// records a fuel expense, invoices a service job and reverses a mistaken entry.
func postSampleMonth(ctx context.Context, svc *portssvc.ServiceContainer, currency string) error {
	d := decimal.RequireFromString
	logger := middleware.GetLoggerFromCtx(ctx)

	journals := []dto.CreateJournalRequest{
		{
			Description:  "Owner capital",
			SourceRef:    string(domain.NewSourceRef(domain.SourceManual, "CAP-1", "")),
			CurrencyCode: currency,
			Lines: []dto.JournalLineRequest{
				{AccountCode: "1020", Debit: d("200000")},
				{AccountCode: "3000", Credit: d("200000")},
			},
		},
		{
			Description:  "Petty cash top-up",
			CurrencyCode: currency,
			Lines: []dto.JournalLineRequest{
				{AccountCode: "1010", Debit: d("5000")},
				{AccountCode: "1020", Credit: d("5000")},
			},
		},
		{
			Description:  "Service job invoice",
			SourceRef:    string(domain.NewSourceRef(domain.SourceManual, "INV-1", "")),
			CurrencyCode: currency,
			Lines: []dto.JournalLineRequest{
				{AccountCode: "1100", Debit: d("11800")},
				{AccountCode: "4010", Credit: d("10000")},
				{AccountCode: "2200", Credit: d("1800")},
			},
		},
	}
	for _, j := range journals {
		entry, err := svc.Journal.PostJournal(ctx, j)
		if err != nil {
			return fmt.Errorf("posting %q: %w", j.Description, err)
		}
		logger.Debug("Posted journal", slog.String("journal_id", entry.EntryID), slog.String("description", entry.Description))
	}

	if _, err := svc.Document.RecordExpense(ctx, dto.RecordExpenseRequest{
		DocumentRef:        "EXP-001",
		Vendor:             "Shell",
		CurrencyCode:       currency,
		GrossAmount:        d("531"),
		VATRate:            "18%",
		ExpenseAccountCode: "6010",
		VATAccountCode:     "1300",
		PaymentAccountCode: "1010",
	}); err != nil {
		return fmt.Errorf("recording fuel expense: %w", err)
	}

	if _, err := svc.Document.RecordPurchaseOrder(ctx, dto.RecordPurchaseOrderRequest{
		DocumentRef:          "PO-7",
		Vendor:               "Bosch",
		CurrencyCode:         currency,
		Items:                []dto.PurchaseOrderItem{{Description: "Brake pads", Quantity: d("4"), UnitPrice: d("1250")}},
		VATRate:              "18%",
		InventoryAccountCode: "1200",
		VATAccountCode:       "1300",
		PayableAccountCode:   "2010",
	}); err != nil {
		return fmt.Errorf("recording purchase order: %w", err)
	}

	if _, err := svc.Document.RecordPayment(ctx, dto.RecordPaymentRequest{
		DocumentRef:        "PAY-1",
		Vendor:             "Bosch",
		CurrencyCode:       currency,
		Amount:             d("5900"),
		PayableAccountCode: "2010",
		PaymentAccountCode: "1020",
	}); err != nil {
		return fmt.Errorf("recording payment: %w", err)
	}

	wrong, err := svc.Document.RecordExpense(ctx, dto.RecordExpenseRequest{
		DocumentRef:        "EXP-002",
		Vendor:             "Apex Motors",
		CurrencyCode:       currency,
		GrossAmount:        d("1180"),
		VATRate:            "18%",
		ExpenseAccountCode: "6020",
		VATAccountCode:     "1300",
		PaymentAccountCode: "1010",
	})
	if err != nil {
		return fmt.Errorf("recording parts expense: %w", err)
	}
	if _, err := svc.Journal.ReverseJournal(ctx, wrong.Journal.JournalID, dto.ReverseJournalRequest{
		Description: "EXP-002 entered twice",
	}); err != nil {
		return fmt.Errorf("reversing parts expense: %w", err)
	}
	return nil
}

func writeDemoReport(w io.Writer, format string, report *demoReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		return writeDemoTable(w, report)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeDemoTable(w io.Writer, report *demoReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "TRIAL BALANCE\t\t\t")
	fmt.Fprintln(tw, "Code\tAccount\tDebit\tCredit\t")
	for _, r := range report.TrialBalance.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", r.Code, r.AccountName, r.Debit, r.Credit)
	}
	for _, t := range report.TrialBalance.Totals {
		fmt.Fprintf(tw, "\tTotal %s\t%s\t%s\t\n", t.Currency, t.Debit, t.Credit)
	}

	fmt.Fprintln(tw, "\t\t\t\t")
	fmt.Fprintln(tw, "PROFIT AND LOSS\t\t\t")
	for _, pl := range report.ProfitAndLoss {
		fmt.Fprintf(tw, "%s\tRevenue\t%s\t\t\n", pl.Currency, pl.TotalRevenue)
		fmt.Fprintf(tw, "%s\tExpenses\t%s\t\t\n", pl.Currency, pl.TotalExpenses)
		fmt.Fprintf(tw, "%s\tNet profit\t%s\t\t\n", pl.Currency, pl.NetProfit)
	}

	fmt.Fprintln(tw, "\t\t\t\t")
	fmt.Fprintln(tw, "VAT\t\t\t")
	for _, t := range report.Tax {
		fmt.Fprintf(tw, "%s\tInput\t%s\t\t\n", t.Currency, t.InputVAT)
		fmt.Fprintf(tw, "%s\tOutput\t%s\t\t\n", t.Currency, t.OutputVAT)
		fmt.Fprintf(tw, "%s\tNet payable\t%s\t\t\n", t.Currency, t.NetPayable)
	}
	return tw.Flush()
}
