// pkg/diagnosis/client.go

package diagnosis

import (
	"context"
	"errors"
)

var ErrNoImage = errors.New("image_url is required")

// Result is the inference service's verdict for one leaf photo.
type Result struct {
	Disease     string  `json:"disease"`
	Confidence  float64 `json:"confidence"`
	Severity    string  `json:"severity"`
	Advice      string  `json:"advice"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

type Client interface {
	Diagnose(ctx context.Context, imageURL string) (*Result, error)
}
