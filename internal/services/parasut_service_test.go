// internal/services/parasut_service_test.go
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/config"
)

func newParasutService(handler http.HandlerFunc) (*ParasutService, *httptest.Server) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"token","token_type":"bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/", handler)
	server := httptest.NewServer(mux)

	cfg := &config.Config{
		Parasut: config.ParasutConfig{
			BaseURL:      server.URL,
			TokenURL:     server.URL + "/token",
			CompanyID:    "42",
			ClientID:     "client",
			ClientSecret: "secret",
			Timeout:      5,
		},
	}
	return NewParasutService(cfg), server
}

func TestParasutContactUsesCompanyPath(t *testing.T) {
	var gotPath string
	svc, server := newParasutService(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"data":{"id":"7"}}`)
	})
	defer server.Close()

	raw, err := svc.GetContact(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "/42/contacts/7", gotPath)
	assert.JSONEq(t, `{"data":{"id":"7"}}`, string(raw))
}

func TestParasutInvoiceListFiltersByContact(t *testing.T) {
	var gotQuery string
	svc, server := newParasutService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/42/sales_invoices", r.URL.Path)
		gotQuery = r.URL.Query().Get("filter[contact_id]")
		fmt.Fprint(w, `{"data":[]}`)
	})
	defer server.Close()

	_, err := svc.GetSalesInvoicesByContact(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "7", gotQuery)
}

func TestParasutNotFoundTagsStep(t *testing.T) {
	svc, server := newParasutService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := svc.GetSalesInvoice(context.Background(), "9")
	ue, ok := AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, "parasut", ue.System)
	assert.Equal(t, "salesInvoice", ue.Step)
	assert.Equal(t, http.StatusNotFound, ue.Status)
}
