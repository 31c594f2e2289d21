package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"time"

	"ayurveda/internal/domain"
)

// Mailer sends best-effort transactional mail over plain SMTP. A nil
// or unconfigured Mailer is valid and sends nothing; callers never
// treat a mail failure as an order failure.
type Mailer struct {
	Addr     string // host:port
	Host     string
	From     string
	Password string
	Timeout  time.Duration
}

func NewMailer(addr, host, from, password string, timeout time.Duration) *Mailer {
	return &Mailer{Addr: addr, Host: host, From: from, Password: password, Timeout: timeout}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.Addr != "" && m.From != ""
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h2>Thank you for your order, {{.CustomerName}}!</h2>
<p>Your order <strong>{{.ID}}</strong> has been placed.</p>
<table>
  <tr><td>Product</td><td>{{.ProductName}}</td></tr>
  <tr><td>Amount</td><td>&#8377;{{printf "%.0f" .Price}}</td></tr>
  <tr><td>Payment</td><td>{{.PaymentMethod}}</td></tr>
  <tr><td>Expected delivery</td><td>{{.DeliveryDate.Format "02 Jan 2006"}}</td></tr>
</table>
<p>Delivery address: {{.CustomerAddress}}</p>
`))

// SendOrderConfirmation renders and sends the confirmation message,
// giving up after the configured timeout. Failures are logged, not
// returned to the checkout path.
func (m *Mailer) SendOrderConfirmation(to string, o domain.Order) {
	if !m.Enabled() || to == "" {
		return
	}
	if err := m.send(to, "Order Confirmation - "+o.ID, confirmationTmpl, o); err != nil {
		log.Printf("mail: order confirmation for %s failed: %v", o.ID, err)
	}
}

var notificationTmpl = template.Must(template.New("notification").Parse(`
<p>{{.}}</p>
<p>&mdash; AyurVeda</p>
`))

// SendNotification delivers a free-form message; like order
// confirmations it is best effort only.
func (m *Mailer) SendNotification(to, subject, message string) {
	if !m.Enabled() || to == "" {
		return
	}
	if subject == "" {
		subject = "AyurVeda Notification"
	}
	if err := m.send(to, subject, notificationTmpl, message); err != nil {
		log.Printf("mail: notification to %s failed: %v", to, err)
	}
}

func (m *Mailer) send(to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.From, to, subject, body.String(),
	)

	var auth smtp.Auth
	if m.Password != "" {
		auth = smtp.PlainAuth("", m.From, m.Password, m.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.Addr, auth, m.From, []string{to}, []byte(message))
	}()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-time.After(m.timeout()):
		return errors.New("smtp send timed out")
	}
}

func (m *Mailer) timeout() time.Duration {
	if m.Timeout <= 0 {
		return 10 * time.Second
	}
	return m.Timeout
}
