package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendTaskAssignedEmail(ctx context.Context, toEmail, assigneeName, taskTitle, taskURL string) error {
	content, err := renderEmailTemplate("task_assigned.html", taskAssignedEmailData{
		baseEmailData: baseEmailData{
			Title:    "New task assigned",
			Heading:  "New task assigned",
			CTALabel: "View task",
			CTAURL:   taskURL,
		},
		AssigneeName: assigneeName,
		TaskTitle:    taskTitle,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, fmt.Sprintf(subjectTaskAssignedFmt, taskTitle), content)
}

func (s *SMTPSender) SendTaskDueReminderEmail(ctx context.Context, toEmail, assigneeName, taskTitle, dueDate, taskURL string) error {
	content, err := renderEmailTemplate("task_due_reminder.html", taskDueReminderEmailData{
		baseEmailData: baseEmailData{
			Title:    "Task due soon",
			Heading:  "Task due soon",
			CTALabel: "View task",
			CTAURL:   taskURL,
		},
		AssigneeName: assigneeName,
		TaskTitle:    taskTitle,
		DueDate:      dueDate,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, fmt.Sprintf(subjectTaskDueReminderFmt, taskTitle), content)
}
