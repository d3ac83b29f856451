package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"videvida-booking-api/config"

	"github.com/sirupsen/logrus"
)

var (
	ErrMissingToken    = errors.New("upstream login response is missing the token")
	ErrMalformedRecord = errors.New("upstream user record is malformed")
)

// validRoles is the role vocabulary of the upstream API, which is wider
// than the roles this service manages itself.
var validRoles = map[string]struct{}{
	"patient":      {},
	"doctor":       {},
	"nurse":        {},
	"admin":        {},
	"receptionist": {},
}

// Client talks to the real backend API that the mock mode stands in for.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg config.UpstreamConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login exchanges credentials for an upstream bearer token.
func (c *Client) Login(ctx context.Context, credentials Credentials) (string, error) {
	var result struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/auth/login", credentials, &result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", ErrMissingToken
	}
	return result.Token, nil
}

// Register creates an upstream account and returns the stored record.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*UserRecord, error) {
	var record UserRecord
	if err := c.post(ctx, "/auth/register", payload, &record); err != nil {
		return nil, err
	}

	if record.ID == "" || record.Email == "" {
		return nil, ErrMalformedRecord
	}
	if _, ok := validRoles[record.Role]; !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrMalformedRecord, record.Role)
	}
	return &record, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := c.doWithRetry(ctx, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

// doWithRetry retries exactly once, and only on transport failure. HTTP
// error statuses are answers, not failures, and are never retried.
func (c *Client) doWithRetry(ctx context.Context, path string, payload []byte) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return nil, err
		}
		c.log.Warnf("Upstream request to %s failed, retrying: %+v", path, err)
	}
	return nil, fmt.Errorf("upstream request failed after retry: %w", lastErr)
}

func (c *Client) statusError(statusCode int, body []byte) error {
	var upstream struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &upstream)

	message := upstream.Message
	if message == "" {
		message = upstream.Error
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return fmt.Errorf("upstream returned %d: %s", statusCode, message)
}
