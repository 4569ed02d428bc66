// pkg/diagnosis/mock_client.go

package diagnosis

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock answers without a model server.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Diagnose(ctx context.Context, imageURL string) (*Result, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrNoImage
	}
	if strings.Contains(strings.ToLower(imageURL), "healthy") {
		return &Result{
			Disease:     "Healthy",
			Confidence:  0.97,
			Severity:    "none",
			Advice:      "Keep the current care schedule.",
			Description: "No visible disease symptoms.",
			ImageURL:    imageURL,
		}, nil
	}
	return &Result{
		Disease:     "Leaf Blight",
		Confidence:  0.82,
		Severity:    "moderate",
		Advice:      "Remove affected leaves and avoid overhead watering.",
		Description: "Elongated grey-green lesions along the leaf blade. (mock)",
		ImageURL:    imageURL,
	}, nil
}
