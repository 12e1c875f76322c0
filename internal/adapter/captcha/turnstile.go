// Package captcha verifies Cloudflare Turnstile challenge tokens.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Verifier checks Turnstile tokens against the siteverify endpoint.
type Verifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Turnstile verifier. Parameters come from config.CaptchaConfig.
func New(secret, verifyURL string, logger *slog.Logger) *Verifier {
	return &Verifier{
		secret:     secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "turnstile"),
	}
}

// siteverifyResponse represents Turnstile's siteverify response.
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify reports whether the challenge token is valid for the given client IP.
// Transport and endpoint failures are returned as errors; a rejected token is
// (false, nil).
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	data := url.Values{}
	data.Set("secret", v.secret)
	data.Set("response", token)
	if remoteIP != "" {
		data.Set("remoteip", remoteIP)
	}
	encoded := data.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(encoded))
	if err != nil {
		return false, fmt.Errorf("captcha: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encoded)), nil
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "turnstile verify failed", slog.String("error", err.Error()))
		return false, fmt.Errorf("captcha: verify endpoint unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "turnstile verify failed", slog.Int("status", resp.StatusCode))
		return false, fmt.Errorf("captcha: verify endpoint unavailable")
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		v.log.ErrorContext(ctx, "turnstile verify failed", slog.String("error", "invalid json"))
		return false, fmt.Errorf("captcha: invalid siteverify response")
	}

	if !result.Success {
		v.log.DebugContext(ctx, "turnstile token rejected",
			slog.String("codes", strings.Join(result.ErrorCodes, ",")))
	}

	return result.Success, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors, with 500ms backoff. The body is reusable via GetBody.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil || (resp != nil && resp.StatusCode >= 500) {
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		resp, err = v.httpClient.Do(req)
	}

	return resp, err
}

// Disabled is a Verifier substitute that accepts every token. Wired when no
// Turnstile secret is configured, which is the default for local development.
type Disabled struct{}

// Verify always reports success.
func (Disabled) Verify(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}
