package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstreamStatus marks a reachable upstream that answered non-2xx.
var ErrUpstreamStatus = errors.New("upstream status")

// SearchProxy forwards IPC queries to the Hugging Face inference endpoint.
type SearchProxy struct {
	url    string
	token  string
	client *http.Client
}

func NewSearchProxy(url, token string, timeout time.Duration) *SearchProxy {
	return &SearchProxy{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *SearchProxy) Do(ctx context.Context, query string) ([]byte, error) {
	payload := map[string]string{
		"inputs": fmt.Sprintf("Give me details and related cases for IPC section or topic: %s", query),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call inference upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}
	return raw, nil
}
