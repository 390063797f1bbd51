package planclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"planweaver/internal/models"
)

// ClientError is a 4xx response from the plan service. It is never retried
// and carries the server-provided message and code.
type ClientError struct {
	Status  int
	Code    string
	Message string
}

func (e *ClientError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("plan service rejected request (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("plan service rejected request (%d): %s", e.Status, e.Message)
}

// TransientError wraps a timeout, network failure, or 5xx response after the
// retry budget is exhausted.
type TransientError struct {
	Attempts int
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("plan service unreachable after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Client calls the remote plan-generation service
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	maxAttempts int
	baseDelay   time.Duration
}

// NewClient creates a plan-service client. timeout is the per-call wall-clock
// deadline; maxAttempts caps transient retries.
func NewClient(baseURL, apiKey string, timeout time.Duration, maxAttempts int) *Client {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		httpClient:  &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		baseDelay:   1 * time.Second,
	}
}

type generateRequest struct {
	Profile models.ChildProfile `json:"profile"`
}

// successEnvelope is the service's 2xx body
type successEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *models.MonthlyPlan `json:"data"`
}

// errorEnvelope is the service's non-2xx body
type errorEnvelope struct {
	Error struct {
		Message string          `json:"message"`
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

// GeneratePlan posts the profile to the plan service. 4xx responses fail
// immediately with a ClientError; timeouts, network errors, and 5xx responses
// are retried with a doubling backoff until the attempt budget runs out, then
// surface as a TransientError.
func (c *Client) GeneratePlan(ctx context.Context, profile models.ChildProfile) (*models.MonthlyPlan, error) {
	body, err := json.Marshal(generateRequest{Profile: profile})
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	delay := c.baseDelay
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		plan, err := c.generateOnce(ctx, body)
		if err == nil {
			return plan, nil
		}

		var clientErr *ClientError
		if errors.As(err, &clientErr) {
			return nil, err
		}

		lastErr = err
		if attempt == c.maxAttempts {
			break
		}

		log.Printf("Plan service request retrying (attempt %d/%d, next in %s): %v",
			attempt, c.maxAttempts, delay, err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		delay *= 2
	}

	return nil, &TransientError{Attempts: c.maxAttempts, Err: lastErr}
}

func (c *Client) generateOnce(ctx context.Context, body []byte) (*models.MonthlyPlan, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-plan", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token := SessionTokenFromContext(ctx); token != "" && tokenStillValid(token) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, clientErrorFrom(resp.StatusCode, raw)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("plan service returned status %d", resp.StatusCode)
	}

	var envelope successEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if !envelope.Success || envelope.Data == nil {
		message := envelope.Message
		if message == "" {
			message = "plan service reported failure without a message"
		}
		return nil, &ClientError{Status: resp.StatusCode, Message: message}
	}

	return envelope.Data, nil
}

func clientErrorFrom(status int, raw []byte) *ClientError {
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return &ClientError{Status: status, Code: envelope.Error.Code, Message: envelope.Error.Message}
	}
	return &ClientError{Status: status, Message: http.StatusText(status)}
}

// tokenStillValid does a claims-only expiry check on the portal session token.
// Signature verification belongs to the auth service that minted it; the
// client only avoids sending a token the plan service would reject as stale.
func tokenStillValid(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now())
}
