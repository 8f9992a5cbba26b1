// Package visionrunner provides a thin client for a TorchServe-style image
// inference server exposing one endpoint per model.
package visionrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
)

// VisionAPIClient is a thin client for a TorchServe-compatible inference API.
type VisionAPIClient struct {
	baseURL string
	http    *http.Client
}

// NewVisionAPIClient creates a new client
func NewVisionAPIClient(baseURL string, httpClient *http.Client) VisionAPIClient {
	return VisionAPIClient{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// predictRequest is the inference request payload. The image is passed by
// reference; the inference server fetches it from shared storage.
type predictRequest struct {
	ImageRef string `json:"image_ref"`
	TopK     int    `json:"top_k,omitempty"`
}

// Predict calls POST /predictions/{model} and returns the predictions ordered
// by descending confidence.
func (c VisionAPIClient) Predict(ctx context.Context, model, imageRef string, topK int) ([]domain.Prediction, error) {
	endpoint, err := url.JoinPath(c.baseURL, "/predictions/", model)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	body, err := json.Marshal(predictRequest{ImageRef: imageRef, TopK: topK})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	// TorchServe classification handlers answer with a label->probability map.
	var scores map[string]float64
	if err := json.Unmarshal(respBody, &scores); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	predictions := make([]domain.Prediction, 0, len(scores))
	for label, confidence := range scores {
		predictions = append(predictions, domain.Prediction{Label: label, Confidence: confidence})
	}
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})
	if topK > 0 && len(predictions) > topK {
		predictions = predictions[:topK]
	}
	return predictions, nil
}
