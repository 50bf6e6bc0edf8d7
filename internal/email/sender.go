// Package email abstracts the outbound email transport. Resend is the
// primary provider; plain SMTP covers deploys that only have SMTP creds.
package email

// Sender delivers a single HTML email and returns the provider message id,
// when the provider reports one.
type Sender interface {
	Send(to, subject, html string) (messageID string, err error)
	Provider() string
}
