package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"archery/config"
	"archery/logger"
	"archery/metrics"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Notifier interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.SugaredLogger
}

// NewNotifier returns an SMTP notifier when SMTP_HOST is set and a logging one otherwise.
func NewNotifier() Notifier {
	env := config.Env()
	if env.SMTPHost == "" {
		return &LogNotifier{log: logger.Named("mail")}
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(env.SMTPHost, env.SMTPPort, env.SMTPUser, env.SMTPPassword),
		from:   env.SMTPFrom,
		log:    logger.Named("mail"),
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@archery>", uuid.New().String()))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	// reviewer comments may carry markdown
	var html bytes.Buffer
	if err := goldmark.Convert([]byte(body), &html); err == nil {
		msg.AddAlternative("text/html", html.String())
	}
	if err := n.dialer.DialAndSend(msg); err != nil {
		metrics.NotificationErrorCounter.WithLabelValues("mail").Inc()
		return err
	}
	n.log.Debugw("mail sent", "to", to, "subject", subject)
	return nil
}

type LogNotifier struct {
	log *zap.SugaredLogger
}

func (n *LogNotifier) Send(_ context.Context, to string, subject string, _ string) error {
	n.log.Infow("mail not configured, skipping", "to", to, "subject", subject)
	return nil
}
