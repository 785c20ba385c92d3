// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import "context"

// SendEmailInput represents an email to be sent.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	// Send delivers the email.
	Send(ctx context.Context, input SendEmailInput) error
}
