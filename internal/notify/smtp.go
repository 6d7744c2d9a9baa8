package notify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"

	"github.com/BruksfildServices01/lawfirm-api/internal/config"
)

const (
	reasonConfigMissing = "email configuration missing"
	smtpTimeout         = 10 * time.Second
)

// SMTPNotifier mails each notification to the office address using STARTTLS
// and PLAIN auth.
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	logger logrus.FieldLogger
}

func NewSMTPNotifier(cfg config.SMTPConfig, logger logrus.FieldLogger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

func (s *SMTPNotifier) Name() string {
	return "smtp"
}

func (s *SMTPNotifier) Deliver(ctx context.Context, n Notification) Result {
	if !s.cfg.Complete() {
		s.logger.Error("Email configuration missing")
		return Failed(reasonConfigMissing)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return s.fail("invalid from address", err)
	}
	if err := msg.To(s.cfg.To); err != nil {
		return s.fail("invalid to address", err)
	}
	msg.Subject(n.Subject)
	msg.SetBodyString(mail.TypeTextPlain, n.Body)

	client, err := mail.NewClient(
		s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return s.fail("failed to create mail client", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return s.fail("failed to send email notification", err)
	}

	s.logger.WithField("to", s.cfg.To).Info("Email notification sent")
	return Sent()
}

func (s *SMTPNotifier) fail(reason string, err error) Result {
	s.logger.WithError(err).Error(reason)
	return Failed(reason + ": " + err.Error())
}
