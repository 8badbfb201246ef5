package email

import (
	"fmt"
	"time"
)

const notificationSubject = "New Contact Form Submission"

// NotificationBody is the owner-facing email for a contact-form submission.
func NotificationBody(name, fromEmail, subject, message, ipAddress string, submittedAt time.Time) string {
	return fmt.Sprintf(`New Contact Form Submission:

Name: %s
Email: %s
Subject: %s

Message:
%s

Submitted at: %s
IP Address: %s
`, name, fromEmail, subject, message, submittedAt.UTC().Format(time.RFC3339), ipAddress)
}

func NotificationSubject() string { return notificationSubject }

const autoReplySubject = "Thanks for reaching out!"

// AutoReplyBody is the confirmation sent back to the person who submitted
// the form.
func AutoReplyBody(contactName string) string {
	return fmt.Sprintf(`Dear %s,

Thank you for reaching out! I've received your message and will get back to you within 24 hours.

In the meantime, feel free to:
- Check out my projects on GitHub: https://github.com/sharan-555/
- Connect with me on LinkedIn: https://www.linkedin.com/in/sharandeep-reddy
- Download my resume from the portfolio website

Best regards,
Sharandeep Reddy
AI/ML Engineer & Data Scientist

Email: sharanreddy.adla@gmail.com
Phone: +1 (716) 750-9326
`, contactName)
}

func AutoReplySubject() string { return autoReplySubject }
