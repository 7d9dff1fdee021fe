// package mail implements the outbound notification gateway.
//
// The core hands a pre-rendered body and a recipient to a [Sender]; the SMTP
// implementation lives here so transport failures never reach the data layer.
package mail

import (
	"bytes"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/taskman/internal/shared"
)

// Sender delivers a single message to a recipient.
type Sender interface {
	Send(recipient, subject, body string) error
}

// SMTPSender sends mail through a configured SMTP relay using PLAIN auth over
// STARTTLS (the standard submission setup, e.g. smtp.gmail.com:587).
type SMTPSender struct {
	config shared.SMTPConfig
	logger *log.Logger

	// send is swappable for tests; defaults to [smtp.SendMail].
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates an [SMTPSender] from SMTP configuration.
func NewSMTPSender(config shared.SMTPConfig, logger *log.Logger) *SMTPSender {
	return &SMTPSender{config: config, logger: logger, send: smtp.SendMail}
}

// Send delivers one message. Any transport failure is reported as a wrapped
// [shared.ErrNotificationSend]; nothing is retried.
func (s *SMTPSender) Send(recipient, subject, body string) error {
	from := s.config.Sender()
	if from == "" || s.config.Host == "" {
		return fmt.Errorf("%w: smtp host and sender must be configured", shared.ErrNotificationSend)
	}

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	msg := BuildMessage(from, recipient, subject, body)

	if err := s.send(addr, auth, from, []string{recipient}, msg); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrNotificationSend, err)
	}

	if s.logger != nil {
		s.logger.Info("sent notification", "recipient", recipient, "subject", subject)
	}
	return nil
}

// BuildMessage assembles an RFC 5322 message with From, To, Subject, Date and
// Message-ID headers followed by the plain-text body.
func BuildMessage(from, to, subject, body string) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: %s\r\n", shared.MessageID(from))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)

	return buf.Bytes()
}
