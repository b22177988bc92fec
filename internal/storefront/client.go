package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is the wire shape of a catalog product as served by the API
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Tag         string          `json:"tag,omitempty"`
	Rating      float64         `json:"rating"`
	Image       string          `json:"image"`
}

// OrderConfirmation is the body of a successful order submission
type OrderConfirmation struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// Ack is the body of a successful contact or newsletter submission
type Ack struct {
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded from the server's error
// envelope
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Client is a thin HTTP client for the storefront API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given API base URL, e.g.
// "http://localhost:3000/api"
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Products fetches the full catalog
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Search fetches products matching the query. An empty query returns
// the full catalog.
func (c *Client) Search(ctx context.Context, query string) ([]Product, error) {
	var products []Product
	path := "/search?q=" + url.QueryEscape(query)
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SubmitOrder posts the cart as an order and returns the confirmation
func (c *Client) SubmitOrder(ctx context.Context, lines []CartLine, total decimal.Decimal, customerName string) (*OrderConfirmation, error) {
	body := map[string]any{
		"items":    lines,
		"total":    total,
		"customer": map[string]string{"name": customerName},
	}

	var confirmation OrderConfirmation
	if err := c.post(ctx, "/orders", body, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// SendMessage posts a contact form submission
func (c *Client) SendMessage(ctx context.Context, name, email, message string) (*Ack, error) {
	body := map[string]string{
		"name":    name,
		"email":   email,
		"message": message,
	}

	var ack Ack
	if err := c.post(ctx, "/contact", body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// Subscribe posts a newsletter signup
func (c *Client) Subscribe(ctx context.Context, email string) (*Ack, error) {
	body := map[string]string{"email": email}

	var ack Ack
	if err := c.post(ctx, "/newsletter", body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, data []byte) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Error.Message == "" {
		return &APIError{StatusCode: status, Code: "UNKNOWN", Message: strings.TrimSpace(string(data))}
	}
	return &APIError{StatusCode: status, Code: envelope.Error.Code, Message: envelope.Error.Message}
}
