package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// ResendClient implements adapter.EmailSender on top of Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	replyTo   string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail, replyTo string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		replyTo:   replyTo,
	}
}

// WithBaseURL points the client at another Resend-compatible endpoint.
func (c *ResendClient) WithBaseURL(raw string) (*ResendClient, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid resend base url: %w", err)
	}
	c.client.BaseURL = u
	return c, nil
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	to := input.To
	if input.Name != "" {
		to = fmt.Sprintf("%s <%s>", input.Name, input.To)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
		ReplyTo: c.replyTo,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"resend rejected the email",
				errors.Join(domainerror.ErrPermanentEmailFailure, err),
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"resend is unavailable",
			errors.Join(domainerror.ErrTemporaryEmailFailure, err),
		)
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

// permanentPatterns match 401/403/422 style rejections. Rate limits and 5xx are retried.
var permanentPatterns = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// MockEmailSender records emails instead of sending them. Used by tests and local runs.
type MockEmailSender struct {
	mu        sync.Mutex
	sent      []adapter.SendEmailInput
	failWith  error
	permanent bool
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send implements adapter.EmailSender.
func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		if m.permanent {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"mock permanent failure",
				errors.Join(domainerror.ErrPermanentEmailFailure, m.failWith),
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"mock temporary failure",
			errors.Join(domainerror.ErrTemporaryEmailFailure, m.failWith),
		)
	}

	m.sent = append(m.sent, input)
	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("mock-%d", len(m.sent))}, nil
}

// Sent returns a copy of the emails sent so far.
func (m *MockEmailSender) Sent() []adapter.SendEmailInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), m.sent...)
}

// SetFailure makes every following Send fail with err.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
	m.permanent = permanent
}

// Reset clears sent emails and any configured failure.
func (m *MockEmailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failWith = nil
	m.permanent = false
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
