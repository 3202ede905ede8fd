package services

import (
	"CampusTour/config/environment"
	"CampusTour/logging"
	"CampusTour/models"
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"
)

const (
	feedbackSubject = "New Feedback Received"
	senderName      = "Campus Tour"
)

var ErrNotification = errors.New("notification failed")

// Notifier tells the administrator about new feedback.
type Notifier interface {
	NotifyFeedback(ctx context.Context, feedback models.Feedback) error
}

var feedbackTemplate = template.Must(template.New("feedback").Parse(`
<h3>New Feedback</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong> {{.Message}}</p>
{{if .Image}}<p><strong>Image:</strong> {{.Image}}</p>{{end}}
`))

// RenderFeedbackEmail renders the HTML body of the admin notification.
// Submitted values are HTML-escaped.
func RenderFeedbackEmail(feedback models.Feedback) (string, error) {
	view := struct {
		Name, Email, Message, Image string
	}{Name: feedback.Name, Email: feedback.Email, Message: feedback.Message}
	if feedback.ImageURL != nil {
		view.Image = *feedback.ImageURL
	}

	var buf bytes.Buffer
	if err := feedbackTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render feedback email: %w", err)
	}
	return buf.String(), nil
}

// mailSender is the part of *mail.Client used to deliver messages.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// MailService sends notifications over SMTP.
type MailService struct {
	sender mailSender
	from   string
	to     string
}

// NewMailService creates an SMTP client for cfg. It does not connect until
// the first message is sent.
func NewMailService(cfg environment.EmailConfig) (*MailService, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}
	return &MailService{sender: client, from: cfg.User, to: cfg.Recipient()}, nil
}

// BuildFeedbackMessage assembles the notification for feedback.
func (s *MailService) BuildFeedbackMessage(feedback models.Feedback) (*mail.Msg, error) {
	body, err := RenderFeedbackEmail(feedback)
	if err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.FromFormat(senderName, s.from); err != nil {
		return nil, fmt.Errorf("set sender %q: %w", s.from, err)
	}
	if err := m.To(s.to); err != nil {
		return nil, fmt.Errorf("set recipient %q: %w", s.to, err)
	}
	m.Subject(feedbackSubject)
	m.SetBodyString(mail.TypeTextHTML, body)
	return m, nil
}

func (s *MailService) NotifyFeedback(ctx context.Context, feedback models.Feedback) error {
	m, err := s.BuildFeedbackMessage(feedback)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotification, err)
	}
	if err := s.sender.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: send to %s: %v", ErrNotification, s.to, err)
	}
	return nil
}

// SkipNotifier is used when no email credentials are configured.
type SkipNotifier struct {
	Logger logging.Logger
}

func (n SkipNotifier) NotifyFeedback(ctx context.Context, feedback models.Feedback) error {
	n.Logger.Debug(ctx, "email not configured, skipping feedback notification", "feedback_id", feedback.ID)
	return nil
}
