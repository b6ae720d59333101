package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/SscSPs/garage_books/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fuelJournal = `{
	"date": "2025-03-02",
	"description": "Diesel for tow truck",
	"sourceRef": "Expense:R-77@Shell",
	"currencyCode": "INR",
	"lines": [
		{"accountCode": "6010", "debit": "450.00"},
		{"accountCode": "1300", "debit": "81.00"},
		{"accountCode": "1010", "credit": "531.00"}
	]
}`

func TestPostJournal_Created(t *testing.T) {
	r, _ := newLedgerRouter(t)
	fund(t, r, "1000.00")

	w := do(r, http.MethodPost, "/api/v1/journals", fuelJournal)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[dto.JournalResponse](t, w)
	assert.NotEmpty(t, resp.JournalID)
	assert.Equal(t, uint64(2), resp.Sequence)
	assert.Equal(t, "2025-03-02", resp.Date.Format("2006-01-02"))
	assert.Equal(t, "Expense:R-77@Shell", resp.SourceRef)
	require.Len(t, resp.Lines, 3)
	assert.Equal(t, int64(45000), resp.Lines[0].Debit.Amount)
	assert.Equal(t, int64(53100), resp.Lines[2].Credit.Amount)
}

func TestPostJournal_Unbalanced(t *testing.T) {
	r, l := newLedgerRouter(t)

	w := do(r, http.MethodPost, "/api/v1/journals", `{
		"currencyCode": "INR",
		"lines": [
			{"accountCode": "1010", "debit": "1000.00"},
			{"accountCode": "3000", "credit": "999.00"}
		]
	}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	body := decode[map[string]any](t, w)
	assert.Equal(t, "INR", body["currency"])
	assert.Equal(t, map[string]any{"amount": "1.00", "currency": "INR"}, body["imbalance"])
	_, entries := l.Counts()
	assert.Zero(t, entries)
}

func TestPostJournal_OverflowingDebitsRejected(t *testing.T) {
	r, l := newLedgerRouter(t)

	w := do(r, http.MethodPost, "/api/v1/journals", `{
		"currencyCode": "INR",
		"lines": [
			{"accountCode": "1010", "debit": "92233720368547758.07"},
			{"accountCode": "1300", "debit": "92233720368547758.07"},
			{"accountCode": "6010", "debit": "0.03"},
			{"accountCode": "1200", "credit": "0.01"}
		]
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	_, entries := l.Counts()
	assert.Zero(t, entries)
}

func TestPostJournal_BadRequests(t *testing.T) {
	r, _ := newLedgerRouter(t)

	cases := map[string]string{
		"one line":            `{"currencyCode":"INR","lines":[{"accountCode":"1010","debit":"1"}]}`,
		"unknown account":     `{"currencyCode":"INR","lines":[{"accountCode":"9999","debit":"1"},{"accountCode":"3000","credit":"1"}]}`,
		"sub-paisa amount":    `{"currencyCode":"INR","lines":[{"accountCode":"1010","debit":"1.005"},{"accountCode":"3000","credit":"1.005"}]}`,
		"missing account ref": `{"currencyCode":"INR","lines":[{"debit":"1"},{"accountCode":"3000","credit":"1"}]}`,
		"amount out of range": `{"currencyCode":"INR","lines":[{"accountCode":"1010","debit":"1e20"},{"accountCode":"3000","credit":"1e20"}]}`,
	}
	for name, body := range cases {
		w := do(r, http.MethodPost, "/api/v1/journals", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name+": "+w.Body.String())
	}
}

func TestReverseJournal(t *testing.T) {
	r, _ := newLedgerRouter(t)
	fund(t, r, "1000.00")
	posted := decode[dto.JournalResponse](t, do(r, http.MethodPost, "/api/v1/journals", fuelJournal))

	w := do(r, http.MethodPost, "/api/v1/journals/"+posted.JournalID+"/reverse", `{"date":"2025-03-20"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reversal := decode[dto.JournalResponse](t, w)
	assert.Equal(t, posted.JournalID, reversal.ReversalOf)
	assert.Equal(t, "2025-03-20", reversal.Date.Format("2006-01-02"))
	require.Len(t, reversal.Lines, 3)
	assert.Equal(t, int64(45000), reversal.Lines[0].Credit.Amount)

	w = do(r, http.MethodGet, "/api/v1/journals/"+posted.JournalID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, reversal.JournalID, decode[dto.JournalResponse](t, w).ReversedBy)

	w = do(r, http.MethodPost, "/api/v1/journals/"+posted.JournalID+"/reverse", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodGet, "/api/v1/accounts?code=6010", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[dto.ListAccountsResponse](t, w).Accounts[0].Balance.Amount)
}

func TestReverseJournal_DefaultsToToday(t *testing.T) {
	r, _ := newLedgerRouter(t)
	fund(t, r, "1000.00")
	posted := decode[dto.JournalResponse](t, do(r, http.MethodPost, "/api/v1/journals", fuelJournal))

	w := do(r, http.MethodPost, "/api/v1/journals/"+posted.JournalID+"/reverse", "")

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2025-03-14", decode[dto.JournalResponse](t, w).Date.Format("2006-01-02"))
}

func TestGetJournal_NotFound(t *testing.T) {
	r, _ := newLedgerRouter(t)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/journals/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/v1/journals/nope/reverse", "").Code)
}

func TestListJournals_Pages(t *testing.T) {
	r, _ := newLedgerRouter(t)
	fund(t, r, "1000.00")
	fund(t, r, "2000.00")
	fund(t, r, "3000.00")

	w := do(r, http.MethodGet, "/api/v1/journals?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[dto.ListJournalsResponse](t, w)
	require.Len(t, first.Journals, 2)
	require.NotNil(t, first.NextToken)
	assert.Equal(t, uint64(1), first.Journals[0].Sequence)

	w = do(r, http.MethodGet, "/api/v1/journals?limit=2&nextToken="+url.QueryEscape(*first.NextToken), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := decode[dto.ListJournalsResponse](t, w)
	require.Len(t, second.Journals, 1)
	assert.Equal(t, uint64(3), second.Journals[0].Sequence)
	assert.Nil(t, second.NextToken)
}

func TestListJournals_InvalidQuery(t *testing.T) {
	r, _ := newLedgerRouter(t)

	for _, q := range []string{
		"limit=0",
		"limit=101",
		"dateFrom=2025-03-10&dateTo=2025-03-01",
		"dateFrom=yesterday",
		"nextToken=not-a-token",
	} {
		w := do(r, http.MethodGet, "/api/v1/journals?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}
