package email

import (
	"context"

	"lexportal_backend/platform/config"
)

// Sender delivers transactional emails to agents.
type Sender interface {
	SendTaskAssignedEmail(ctx context.Context, toEmail, assigneeName, taskTitle, taskURL string) error
	SendTaskDueReminderEmail(ctx context.Context, toEmail, assigneeName, taskTitle, dueDate, taskURL string) error
}

// NoopSender is used when SMTP is not configured. Every send succeeds
// without doing anything.
type NoopSender struct{}

func (NoopSender) SendTaskAssignedEmail(ctx context.Context, toEmail, assigneeName, taskTitle, taskURL string) error {
	return nil
}

func (NoopSender) SendTaskDueReminderEmail(ctx context.Context, toEmail, assigneeName, taskTitle, dueDate, taskURL string) error {
	return nil
}

// NewSender selects the sender implementation based on configuration. When
// email delivery is disabled or no SMTP host is set, all sends become no-ops.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() || cfg.GetSMTPHost() == "" {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}
