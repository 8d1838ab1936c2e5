// internal/services/acronis_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/cache"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/config"
)

// AcronisService talks to the cloud tenant-management platform. Several of
// its relations are only exposed as "get by id list", so tenant-scoped reads
// are a two-phase fan-out: list the ids, then fetch the records in one
// batched call.
type AcronisService struct {
	baseURL string
	http    *http.Client
	tokens  *tokenProvider
	cache   *cache.Cache
	infoTTL time.Duration
}

// TenantInfo is the composite of three independent sub-resources. It is
// all-or-nothing: no partial object is ever returned.
type TenantInfo struct {
	MFA      json.RawMessage `json:"mfa"`
	Pricing  json.RawMessage `json:"pricing"`
	Branding json.RawMessage `json:"branding"`
}

type idList struct {
	Items []string `json:"items"`
}

func NewAcronisService(cfg *config.Config, c *cache.Cache) *AcronisService {
	httpClient := &http.Client{Timeout: time.Duration(cfg.Acronis.Timeout) * time.Second}

	return &AcronisService{
		baseURL: strings.TrimRight(cfg.Acronis.BaseURL, "/"),
		http:    httpClient,
		tokens:  newTokenProvider(cfg.Acronis.TokenURL, cfg.Acronis.ClientID, cfg.Acronis.ClientSecret, httpClient),
		cache:   c,
		infoTTL: time.Duration(cfg.Acronis.InfoCacheTTL) * time.Second,
	}
}

// GetTenantInfo fetches mfa status, pricing and branding concurrently and
// merges them. If any sub-fetch fails the whole call fails, tagged with the
// failing step. The composite is briefly cached when Redis is configured.
func (s *AcronisService) GetTenantInfo(ctx context.Context, tenantID string) (*TenantInfo, error) {
	cacheKey := "acronis:tenant:info:" + tenantID
	if raw, ok := s.cache.Get(ctx, cacheKey); ok {
		var info TenantInfo
		if err := json.Unmarshal(raw, &info); err == nil {
			return &info, nil
		}
	}

	var info TenantInfo
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := s.get(gctx, "mfa", fmt.Sprintf("/tenants/%s/mfa/status", tenantID), nil)
		if err != nil {
			return err
		}
		info.MFA = raw
		return nil
	})
	g.Go(func() error {
		raw, err := s.get(gctx, "pricing", fmt.Sprintf("/tenants/%s/pricing", tenantID), nil)
		if err != nil {
			return err
		}
		info.Pricing = raw
		return nil
	})
	g.Go(func() error {
		raw, err := s.get(gctx, "brand", fmt.Sprintf("/tenants/%s/brand", tenantID), nil)
		if err != nil {
			return err
		}
		info.Branding = raw
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(&info); err == nil {
		s.cache.Set(ctx, cacheKey, buf, s.infoTTL)
	}

	return &info, nil
}

func (s *AcronisService) GetTenantUsers(ctx context.Context, tenantID string) (map[string]json.RawMessage, error) {
	return s.fetchRelation(ctx, tenantID, "users")
}

func (s *AcronisService) GetTenantContacts(ctx context.Context, tenantID string) (map[string]json.RawMessage, error) {
	return s.fetchRelation(ctx, tenantID, "contacts")
}

func (s *AcronisService) GetTenantLocations(ctx context.Context, tenantID string) (map[string]json.RawMessage, error) {
	return s.fetchRelation(ctx, tenantID, "locations")
}

// fetchRelation lists the tenant-scoped ids first and only issues the
// batched detail request when the list is non-empty. An empty id list must
// not produce a second call; the platform rejects an empty uuids parameter.
func (s *AcronisService) fetchRelation(ctx context.Context, tenantID, resource string) (map[string]json.RawMessage, error) {
	raw, err := s.get(ctx, resource, fmt.Sprintf("/tenants/%s/%s", tenantID, resource), nil)
	if err != nil {
		return nil, err
	}

	var ids idList
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, &UpstreamError{System: "acronis", Step: resource, Err: err}
	}

	if len(ids.Items) == 0 {
		return map[string]json.RawMessage{resource: json.RawMessage(`{"items":[]}`)}, nil
	}

	query := url.Values{"uuids": {strings.Join(ids.Items, ",")}}
	details, err := s.get(ctx, resource, "/"+resource, query)
	if err != nil {
		return nil, err
	}

	return map[string]json.RawMessage{resource: details}, nil
}

// GetTenantChildren lists the direct child tenants of a parent. Membership
// changes must be immediately visible, so this read is never cached.
func (s *AcronisService) GetTenantChildren(ctx context.Context, parentID string) (json.RawMessage, error) {
	return s.get(ctx, "children", "/tenants", url.Values{"parent_id": {parentID}})
}

func (s *AcronisService) GetTenantUsages(ctx context.Context, tenantID string) (json.RawMessage, error) {
	return s.get(ctx, "usages", fmt.Sprintf("/tenants/%s/usages", tenantID), nil)
}

func (s *AcronisService) GetTenantAlerts(ctx context.Context, tenantID string) (json.RawMessage, error) {
	return s.get(ctx, "alerts", "/alerts", url.Values{"tenant_id": {tenantID}})
}

// CheckLogin proxies the username availability check of the identity API.
func (s *AcronisService) CheckLogin(ctx context.Context, username string) (bool, error) {
	_, err := s.get(ctx, "checkLogin", "/users/check_login", url.Values{"username": {username}})
	if err != nil {
		if ue, ok := AsUpstreamError(err); ok && ue.Status == http.StatusConflict {
			// Taken usernames are reported as a conflict, not a failure.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// get issues one authenticated request. Upstream 401 responses are retried
// once with a freshly exchanged token before being reported as an
// authentication failure.
func (s *AcronisService) get(ctx context.Context, step, path string, query url.Values) (json.RawMessage, error) {
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
			return nil, &UpstreamError{System: "acronis", Step: step, Status: status, Auth: true}
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &UpstreamError{System: "acronis", Step: step, Status: status}
	}

	return raw, nil
}

func (s *AcronisService) doGet(ctx context.Context, step, path string, query url.Values) (json.RawMessage, int, error) {
	token, err := s.tokens.Token()
	if err != nil {
		// One more attempt with a clean source before giving up.
		s.tokens.Reset()
		token, err = s.tokens.Token()
		if err != nil {
			return nil, 0, &UpstreamError{System: "acronis", Step: step, Auth: true, Err: err}
		}
	}

	reqURL := s.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, &UpstreamError{System: "acronis", Step: step, Err: err}
	}
	token.SetAuthHeader(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, 0, &UpstreamError{System: "acronis", Step: step, Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &UpstreamError{System: "acronis", Step: step, Err: err}
	}

	return body, resp.StatusCode, nil
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
