package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTP delivers notices through a plain SMTP relay.
type SMTP struct {
	addr string // host:port
	from string
}

func NewSMTP(addr, from string) *SMTP { return &SMTP{addr: addr, from: from} }

func (n *SMTP) Send(_ context.Context, to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	if err := smtp.SendMail(n.addr, nil, n.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
