package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPExtractor calls a token-classification endpoint that answers with a
// ranked token list shaped [[{"word": "...", "score": 0.9}, ...]].
type HTTPExtractor struct {
	url    string
	client *http.Client
}

func NewHTTPExtractor(url string, timeout time.Duration) *HTTPExtractor {
	return &HTTPExtractor{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (e *HTTPExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("encode extraction request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call keyword extraction: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("keyword extraction status %d", resp.StatusCode)
	}

	var payload [][]struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}
	words := make([]string, 0, len(payload[0]))
	for _, token := range payload[0] {
		if token.Word != "" {
			words = append(words, token.Word)
		}
	}
	return words, nil
}
