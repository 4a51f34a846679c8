package notify

// Mailer sends transactional email. Delivery is best-effort: callers log
// failures and never fail the triggering request over them.
type Mailer interface {
	Send(toEmail, subject, htmlContent string) error
}
