package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	log "github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

// Notifier tells the site owner about a new contact message.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, msg *db.Message) error
}

// NopNotifier is used when no SMTP credentials are configured.
type NopNotifier struct{}

func (NopNotifier) NotifyNewMessage(context.Context, *db.Message) error { return nil }

type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Mailer delivers notifications over SMTP to the account it authenticates as.
type Mailer struct {
	cfg     MailerConfig
	timeout time.Duration
}

func NewMailer(cfg MailerConfig) *Mailer {
	return &Mailer{cfg: cfg, timeout: 15 * time.Second}
}

func (m *Mailer) NotifyNewMessage(ctx context.Context, msg *db.Message) error {
	message, err := buildNotification(m.cfg.Username, msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.timeout),
	}
	if m.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	log.Infof("Notification sent for message ID '%d'.", msg.ID)
	return nil
}

// buildNotification renders the plain-text and HTML bodies for msg.
func buildNotification(owner string, msg *db.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(owner); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(owner); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	if err := m.ReplyTo(msg.Email); err != nil {
		log.Debugf("buildNotification: unusable reply-to '%s': %v", msg.Email, err)
	}
	m.Subject(fmt.Sprintf("New portfolio message from %s", msg.Name))

	text := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message)
	m.SetBodyString(mail.TypeTextPlain, text)

	body := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")
	htmlBody := fmt.Sprintf("<h2>New contact message</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p>%s</p>",
		html.EscapeString(msg.Name), html.EscapeString(msg.Email), body)
	m.AddAlternativeString(mail.TypeTextHTML, htmlBody)
	return m, nil
}
