package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is Google's reCAPTCHA verification endpoint.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks reCAPTCHA tokens submitted with registration requests.
type Verifier struct {
	secret    string
	verifyURL string
	client    *http.Client
}

// Option customises a Verifier.
type Option func(*Verifier)

// WithVerifyURL overrides the verification endpoint. Used by tests.
func WithVerifyURL(u string) Option {
	return func(v *Verifier) { v.verifyURL = u }
}

// WithHTTPClient overrides the HTTP client used for verification calls.
func WithHTTPClient(c *http.Client) Option {
	return func(v *Verifier) { v.client = c }
}

// NewVerifier builds a Verifier. An empty secret disables verification, which
// keeps local development working without Google credentials.
func NewVerifier(secret string, opts ...Option) *Verifier {
	v := &Verifier{
		secret:    strings.TrimSpace(secret),
		verifyURL: DefaultVerifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Enabled reports whether a secret is configured.
func (v *Verifier) Enabled() bool {
	return v != nil && v.secret != ""
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a token against the verification endpoint. It reports success
// without a network call when verification is disabled.
func (v *Verifier) Verify(ctx context.Context, token string) (bool, error) {
	if !v.Enabled() {
		return true, nil
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha: verify endpoint returned %d", resp.StatusCode)
	}

	var payload verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, err
	}
	return payload.Success, nil
}
