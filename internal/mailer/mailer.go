// Package mailer sends transactional email through a Resend-compatible HTTP
// API. Delivery is best-effort: every outcome is reported as a boolean and
// logged, never as an error that could fail the triggering request.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Service sends newsletter emails via the configured provider
type Service struct {
	apiKey     string
	baseURL    string
	fromEmail  string
	adminEmail string
	client     *http.Client
	logger     *zap.Logger
}

// NewService creates a mailer. An empty apiKey disables sending: every send
// becomes a logged no-op returning false.
func NewService(apiKey, baseURL, fromEmail, adminEmail string, logger *zap.Logger) *Service {
	return &Service{
		apiKey:     apiKey,
		baseURL:    baseURL,
		fromEmail:  fromEmail,
		adminEmail: adminEmail,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// SendWelcomeEmail sends the fixed welcome message to a new subscriber
func (s *Service) SendWelcomeEmail(ctx context.Context, email, source string) bool {
	tmpl := welcomeTemplate(source)

	ok := s.send(ctx, email, tmpl)
	if ok {
		s.logger.Info("welcome email sent", zap.String("to", email))
	} else {
		s.logger.Error("failed to send welcome email", zap.String("to", email))
	}
	return ok
}

// SendAdminNotification notifies the admin address about a new signup
func (s *Service) SendAdminNotification(ctx context.Context, subscriberEmail, source, signupID string) bool {
	tmpl := adminNotificationTemplate(subscriberEmail, source, signupID, time.Now().UTC())

	ok := s.send(ctx, s.adminEmail, tmpl)
	if ok {
		s.logger.Info("admin notification sent", zap.String("subscriber", subscriberEmail))
	} else {
		s.logger.Error("failed to send admin notification", zap.String("subscriber", subscriberEmail))
	}
	return ok
}

func (s *Service) send(ctx context.Context, to string, tmpl emailTemplate) bool {
	if s.apiKey == "" {
		s.logger.Warn("email API key not configured, skipping send", zap.String("to", to))
		return false
	}

	body, err := json.Marshal(sendRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: tmpl.Subject,
		HTML:    tmpl.HTML,
		Text:    tmpl.Text,
	})
	if err != nil {
		s.logger.Error("failed to encode email request", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		s.logger.Error("failed to build email request", zap.Error(err))
		return false
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("email request failed", zap.String("to", to), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error("email provider rejected send",
			zap.String("to", to),
			zap.Int("status", resp.StatusCode),
		)
		return false
	}

	return true
}
