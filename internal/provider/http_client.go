package provider

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
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/models"
)

const authKeyHeader = "x-pnba-auth-key"

// HTTPClient talks JSON to the platform bridge for a single platform.
type HTTPClient struct {
	platform   string
	baseURL    string
	authKey    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a client for platform. The per-call deadline comes from ctx;
// timeout is a transport-level ceiling.
func NewHTTPClient(platform, baseURL, authKey string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		platform: platform,
		baseURL:  baseURL,
		authKey:  authKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type authorizationRequest struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code,omitempty"`
	Password    string `json:"password,omitempty"`
}

type messageRequest struct {
	PhoneNumber string `json:"phone_number"`
	Recipient   string `json:"recipient"`
	Text        string `json:"text"`
}

type errorEnvelope struct {
	Error struct {
		Code       Code   `json:"code"`
		Message    string `json:"message"`
		RetryAfter int    `json:"retry_after"`
	} `json:"error"`
}

func (c *HTTPClient) Name() string {
	return c.platform
}

func (c *HTTPClient) RequestCode(ctx context.Context, phone models.PhoneNumber) (*Ack, error) {
	return c.do(ctx, http.MethodPost, "authorizations", authorizationRequest{PhoneNumber: phone.String()})
}

func (c *HTTPClient) SubmitCode(ctx context.Context, phone models.PhoneNumber, code string) (*Ack, error) {
	return c.do(ctx, http.MethodPost, "validations", authorizationRequest{PhoneNumber: phone.String(), Code: code})
}

func (c *HTTPClient) SubmitSecondFactor(ctx context.Context, phone models.PhoneNumber, password string) (*Ack, error) {
	return c.do(ctx, http.MethodPost, "password-validations", authorizationRequest{PhoneNumber: phone.String(), Password: password})
}

func (c *HTTPClient) Invalidate(ctx context.Context, phone models.PhoneNumber) (*Ack, error) {
	return c.do(ctx, http.MethodDelete, "sessions/"+url.PathEscape(phone.String()), nil)
}

func (c *HTTPClient) SendMessage(ctx context.Context, phone, recipient models.PhoneNumber, text string) (*Ack, error) {
	return c.do(ctx, http.MethodPost, "messages", messageRequest{
		PhoneNumber: phone.String(),
		Recipient:   recipient.String(),
		Text:        text,
	})
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) (*Ack, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	endpoint := fmt.Sprintf("%s/v1/platforms/%s/%s", c.baseURL, url.PathEscape(c.platform), path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(authKeyHeader, c.authKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		var ack Ack
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &ack, nil
	}

	return nil, c.decodeError(resp)
}

func (c *HTTPClient) decodeError(resp *http.Response) error {
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Code == "" {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	providerErr := &Error{
		Code:       envelope.Error.Code,
		Message:    envelope.Error.Message,
		RetryAfter: time.Duration(envelope.Error.RetryAfter) * time.Second,
	}
	if providerErr.RetryAfter == 0 {
		if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
			providerErr.RetryAfter = time.Duration(seconds) * time.Second
		}
	}

	return providerErr
}
