// internal/services/token_provider.go
package services

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// tokenProvider wraps a client-credentials exchange (client id/secret sent as
// a Basic Authorization header against the platform token endpoint). The
// underlying TokenSource caches the bearer token until it expires; Reset
// forces a fresh exchange, used for the single retry after an upstream 401.
type tokenProvider struct {
	mu     sync.Mutex
	cfg    *clientcredentials.Config
	ctx    context.Context
	source oauth2.TokenSource
}

func newTokenProvider(tokenURL, clientID, clientSecret string, httpClient *http.Client) *tokenProvider {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// Route token requests through the same bounded-timeout client as the
	// API calls themselves.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)

	return &tokenProvider{cfg: cfg, ctx: ctx}
}

func (p *tokenProvider) Token() (*oauth2.Token, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.source == nil {
		p.source = p.cfg.TokenSource(p.ctx)
	}
	return p.source.Token()
}

func (p *tokenProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = nil
}
