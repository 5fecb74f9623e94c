package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"viralreel/types"
)

// APIClient is a thin HTTP client for the viralreel API
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// healthResponse mirrors GET /api/health
type healthResponse struct {
	Status      string `json:"status"`
	BankVersion string `json:"bankVersion"`
}

// Health returns the template bank version served by the API
func (c *APIClient) Health() (string, error) {
	resp, err := c.client.Get(c.baseURL + "/api/health")
	if err != nil {
		return "", fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return health.BankVersion, nil
}

// Generate requests the package for category
func (c *APIClient) Generate(category string) (*types.Package, string, error) {
	body, err := json.Marshal(map[string]string{"category": category})
	if err != nil {
		return nil, "", err
	}

	resp, err := c.client.Post(c.baseURL+"/api/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("server returned %d: %s", resp.StatusCode, string(data))
	}

	var pkg types.Package
	if err := json.NewDecoder(resp.Body).Decode(&pkg); err != nil {
		return nil, "", fmt.Errorf("failed to decode package: %w", err)
	}
	return &pkg, resp.Header.Get("X-Request-ID"), nil
}
