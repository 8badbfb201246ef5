package email

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.From != ""
}

// SendText delivers a plain-text message. Without SMTP configuration the
// body is logged instead of sent, so the notification channel still leaves a
// trace in development.
func SendText(cfg SMTPConfig, to, subject, body string) error {
	if !cfg.Configured() {
		log.Printf("[Email] smtp not configured, logging instead\nTo: %s\nSubject: %s\n%s", to, subject, body)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	}
	return smtp.SendMail(addr, auth, cfg.From, []string{to}, []byte(msg))
}
