// Package upstream is the HTTP client for the employees API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/mobility/internal/employee"
)

const tokenTTL = 5 * time.Minute

// APIError is a non-2xx answer from the employees API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	issuer  string
	secret  []byte
	client  *http.Client
	now     func() time.Time
}

// New creates a client for the API at baseURL. When secret is not empty every
// request carries an HS256 bearer token issued by issuer.
func New(baseURL, issuer, secret string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		issuer:  issuer,
		secret:  []byte(secret),
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// CreateEmployee posts p to /employees and returns the response body as is.
func (c *Client) CreateEmployee(ctx context.Context, p employee.Payload) (json.RawMessage, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/employees", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if len(c.secret) > 0 {
		token, err := c.token()
		if err != nil {
			return nil, err
		}

		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, respBody)}
	}

	if len(bytes.TrimSpace(respBody)) == 0 || !json.Valid(respBody) {
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(respBody), nil
}

func (c *Client) token() (string, error) {
	now := c.now()

	claims := jwt.RegisteredClaims{
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// errorMessage prefers the API's "detail" field and falls back to the status.
func errorMessage(status int, body []byte) string {
	var e struct {
		Detail any `json:"detail"`
	}

	if err := json.Unmarshal(body, &e); err == nil {
		switch d := e.Detail.(type) {
		case string:
			if d != "" {
				return d
			}
		case nil:
		default:
			if b, err := json.Marshal(d); err == nil {
				return string(b)
			}
		}
	}

	return fmt.Sprintf("server error (%d)", status)
}
