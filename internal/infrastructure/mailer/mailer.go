package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/pkg/logger"
)

// Config holds the SMTP connection settings
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	AppURL   string
}

// Configured reports whether enough settings are present to send mail
func (c Config) Configured() bool {
	return c.Host != "" && c.From != ""
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier sends account review notifications over SMTP
type SMTPNotifier struct {
	cfg    Config
	dialer dialer
}

func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// NotifyApproved tells the student their account was approved
func (s *SMTPNotifier) NotifyApproved(ctx context.Context, n repositories.Notification) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your account has been approved. You can now log in and complete your profile.</p><p><a href=%q>Log in</a></p>",
		displayName(n), s.cfg.AppURL+"/login")
	return s.send(ctx, n.To, "Your account has been approved", body)
}

// NotifyRejected tells the student their account request was rejected
func (s *SMTPNotifier) NotifyRejected(ctx context.Context, n repositories.Notification) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your account request was rejected. If you believe this is a mistake, contact the administration.</p>",
		displayName(n))
	return s.send(ctx, n.To, "Your account request was rejected", body)
}

func (s *SMTPNotifier) send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	logger.Info(ctx, "notification sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func displayName(n repositories.Notification) string {
	if n.Name != "" {
		return n.Name
	}
	return n.To
}

// LogNotifier stands in when SMTP is not configured. It records what
// would have been sent so local environments still show the flow.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (l *LogNotifier) NotifyApproved(ctx context.Context, n repositories.Notification) error {
	logger.Info(ctx, "approval notification (smtp not configured)", zap.String("to", n.To))
	return nil
}

func (l *LogNotifier) NotifyRejected(ctx context.Context, n repositories.Notification) error {
	logger.Info(ctx, "rejection notification (smtp not configured)", zap.String("to", n.To))
	return nil
}
