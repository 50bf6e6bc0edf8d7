package email

import (
	"gopkg.in/gomail.v2"
)

// SMTPSender sends through a plain SMTP relay. SMTP has no message ids, so
// Send always returns an empty id on success.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(to, subject, html string) (string, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", err
	}
	return "", nil
}

func (s *SMTPSender) Provider() string { return "smtp" }
