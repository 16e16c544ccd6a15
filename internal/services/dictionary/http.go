package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPLexicon asks a remote word-check endpoint. The endpoint accepts
// {"word": "..."} and replies {"valid": bool}.
type HTTPLexicon struct {
	url        string
	httpClient *http.Client
}

// NewHTTPLexicon creates a lexicon that POSTs to url
func NewHTTPLexicon(url string, timeout time.Duration) *HTTPLexicon {
	return &HTTPLexicon{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ Lexicon = (*HTTPLexicon)(nil)

type checkRequest struct {
	Word string `json:"word"`
}

type checkResponse struct {
	Valid bool `json:"valid"`
}

func (l *HTTPLexicon) IsValidWord(ctx context.Context, word string) (bool, error) {
	body, err := json.Marshal(checkRequest{Word: word})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("word check request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("word check returned status %d", resp.StatusCode)
	}

	var out checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode word check response: %w", err)
	}
	return out.Valid, nil
}
