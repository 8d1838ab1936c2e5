// internal/services/parasut_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/config"
)

// ParasutService is a read-through proxy for the invoicing platform. The
// portal never stores invoice data; every read goes upstream.
type ParasutService struct {
	baseURL   string
	companyID string
	http      *http.Client
	tokens    *tokenProvider
}

func NewParasutService(cfg *config.Config) *ParasutService {
	httpClient := &http.Client{Timeout: time.Duration(cfg.Parasut.Timeout) * time.Second}

	return &ParasutService{
		baseURL:   strings.TrimRight(cfg.Parasut.BaseURL, "/"),
		companyID: cfg.Parasut.CompanyID,
		http:      httpClient,
		tokens:    newTokenProvider(cfg.Parasut.TokenURL, cfg.Parasut.ClientID, cfg.Parasut.ClientSecret, httpClient),
	}
}

func (s *ParasutService) GetContact(ctx context.Context, contactID string) (json.RawMessage, error) {
	return s.get(ctx, "contact", fmt.Sprintf("/%s/contacts/%s", s.companyID, contactID), nil)
}

func (s *ParasutService) GetSalesInvoicesByContact(ctx context.Context, contactID string) (json.RawMessage, error) {
	query := url.Values{"filter[contact_id]": {contactID}, "sort": {"-issue_date"}}
	return s.get(ctx, "salesInvoices", fmt.Sprintf("/%s/sales_invoices", s.companyID), query)
}

func (s *ParasutService) GetSalesInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return s.get(ctx, "salesInvoice", fmt.Sprintf("/%s/sales_invoices/%s", s.companyID, invoiceID), nil)
}

func (s *ParasutService) get(ctx context.Context, step, path string, query url.Values) (json.RawMessage, error) {
	raw, status, err := s.doGet(ctx, step, path, query)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		s.tokens.Reset()
		raw, status, err = s.doGet(ctx, step, path, query)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized {
			return nil, &UpstreamError{System: "parasut", Step: step, Status: status, Auth: true}
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &UpstreamError{System: "parasut", Step: step, Status: status}
	}

	return raw, nil
}

func (s *ParasutService) doGet(ctx context.Context, step, path string, query url.Values) (json.RawMessage, int, error) {
	token, err := s.tokens.Token()
	if err != nil {
		s.tokens.Reset()
		token, err = s.tokens.Token()
		if err != nil {
			return nil, 0, &UpstreamError{System: "parasut", Step: step, Auth: true, Err: err}
		}
	}

	reqURL := s.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, &UpstreamError{System: "parasut", Step: step, Err: err}
	}
	token.SetAuthHeader(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, 0, &UpstreamError{System: "parasut", Step: step, Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &UpstreamError{System: "parasut", Step: step, Err: err}
	}

	return body, resp.StatusCode, nil
}
