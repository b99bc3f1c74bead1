package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/whauf/sportscard-tracker/internal/metrics"
	"github.com/whauf/sportscard-tracker/internal/models"
)

const (
	backendDefaultTimeout = 10 * time.Second
	backendDefaultRPS     = 10
	backendDefaultBurst   = 5

	// maxErrorBodyBytes bounds how much of a rejection body is kept as the message
	maxErrorBodyBytes = 512
)

// BackendClient talks to the card backend REST API
type BackendClient struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewBackendClient creates a client for the backend at baseURL. Zero values
// for timeout, requestsPerSecond or burst select the defaults.
func NewBackendClient(baseURL string, timeout time.Duration, requestsPerSecond float64, burst int) *BackendClient {
	if timeout <= 0 {
		timeout = backendDefaultTimeout
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = backendDefaultRPS
	}
	if burst <= 0 {
		burst = backendDefaultBurst
	}

	return &BackendClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// BaseURL returns the backend root the client was configured with
func (c *BackendClient) BaseURL() string {
	return c.baseURL
}

// ListCards fetches every card, each with its last sale embedded
func (c *BackendClient) ListCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := c.do(ctx, "list_cards", http.MethodGet, "/api/cards", nil, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// SearchCards runs the filter on the backend. Results must match
// FilterCards over the same snapshot.
func (c *BackendClient) SearchCards(ctx context.Context, criteria Criteria) ([]models.Card, error) {
	var cards []models.Card
	if err := c.do(ctx, "search_cards", http.MethodGet, "/api/cards/search", criteria.Query(), nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// ListSales fetches a card's sales, newest first
func (c *BackendClient) ListSales(ctx context.Context, cardID int) ([]models.Sale, error) {
	var sales []models.Sale
	path := "/api/cards/" + strconv.Itoa(cardID) + "/sales"
	if err := c.do(ctx, "list_sales", http.MethodGet, path, nil, nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// GetLastSale returns the newest sale for a card, or nil if it never sold
func (c *BackendClient) GetLastSale(ctx context.Context, cardID int) (*models.Sale, error) {
	var sale models.Sale
	path := "/api/cards/" + strconv.Itoa(cardID) + "/last-sale"
	err := c.do(ctx, "last_sale", http.MethodGet, path, nil, nil, &sale)
	var rejErr *RejectionError
	if errors.As(err, &rejErr) && rejErr.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// CreateCard records a new card
func (c *BackendClient) CreateCard(ctx context.Context, req models.CreateCardRequest) (*models.Card, error) {
	var card models.Card
	if err := c.do(ctx, "create_card", http.MethodPost, "/api/cards", nil, req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateSale records a sale against an existing card
func (c *BackendClient) CreateSale(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error) {
	var sale models.Sale
	if err := c.do(ctx, "create_sale", http.MethodPost, "/api/sales", nil, req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (c *BackendClient) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	defer func() {
		metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "network_error").Inc()
		return &NetworkError{Op: op, Err: err}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "network_error").Inc()
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "network_error").Inc()
		return &NetworkError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequestsTotal.WithLabelValues(op, "rejected").Inc()
		return &RejectionError{Op: op, StatusCode: resp.StatusCode, Message: rejectionMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			metrics.BackendRequestsTotal.WithLabelValues(op, "decode_error").Inc()
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}

	metrics.BackendRequestsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}

// rejectionMessage pulls "error" or "message" out of a JSON error body,
// falling back to the raw text
func rejectionMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}

	text := strings.TrimSpace(string(data))
	if len(text) > maxErrorBodyBytes {
		text = text[:maxErrorBodyBytes]
	}
	return text
}
