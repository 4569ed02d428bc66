// pkg/diagnosis/http_client.go

package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type httpClient struct {
	endpoint string
	httpc    *http.Client
}

// NewHTTP talks to the disease model served at endpoint.
func NewHTTP(endpoint string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &httpClient{endpoint: strings.TrimRight(endpoint, "/"), httpc: &http.Client{Timeout: timeout}}
}

// modelResponse mirrors the model server's payload.
type modelResponse struct {
	Success     bool    `json:"success"`
	Error       string  `json:"error"`
	Disease     string  `json:"nama_penyakit"`
	Confidence  float64 `json:"akurasi"`
	Severity    string  `json:"tingkat_keparahan"`
	Advice      string  `json:"saran"`
	Description string  `json:"deskripsi"`
	ImageURL    string  `json:"image_url"`
}

func (c *httpClient) Diagnose(ctx context.Context, imageURL string) (*Result, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrNoImage
	}
	b, _ := json.Marshal(map[string]string{"image_url": imageURL})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/model", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("inference service: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	var out modelResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "unsuccessful prediction"
		}
		return nil, fmt.Errorf("inference service: %s", msg)
	}
	if out.ImageURL == "" {
		out.ImageURL = imageURL
	}
	return &Result{
		Disease:     out.Disease,
		Confidence:  out.Confidence,
		Severity:    out.Severity,
		Advice:      out.Advice,
		Description: out.Description,
		ImageURL:    out.ImageURL,
	}, nil
}
