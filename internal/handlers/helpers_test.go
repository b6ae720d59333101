package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/garage_books/internal/core/ledger"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/core/services"
	"github.com/SscSPs/garage_books/internal/handlers"
	"github.com/SscSPs/garage_books/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(cfg *config.Config, svc *portssvc.ServiceContainer) *gin.Engine {
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, svc, nil)
	return r
}

// newLedgerRouter serves real services over an in-memory ledger seeded with
// the INR chart of accounts.
func newLedgerRouter(t *testing.T) (*gin.Engine, *ledger.Ledger) {
	t.Helper()
	l := ledger.New(ledger.WithClock(func() time.Time { return today }))
	_, err := services.SeedDefaultChart(t.Context(), l, "INR")
	require.NoError(t, err)
	svc := services.NewServiceContainer(portsrepo.RepositoryProvider{Ledger: l})
	return newRouter(&config.Config{IsProduction: true}, svc), l
}

// do sends body (a JSON string, or nothing when empty) and records the response.
func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&v), w.Body.String())
	return v
}

// fund moves owner's capital into petty cash.
func fund(t *testing.T, r http.Handler, amount string) {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/journals", `{
		"date": "2025-03-01",
		"description": "Owner funding",
		"currencyCode": "INR",
		"lines": [
			{"accountCode": "1010", "debit": "`+amount+`"},
			{"accountCode": "3000", "credit": "`+amount+`"}
		]
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
