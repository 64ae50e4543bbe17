// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders HTML
// bodies from embedded templates. The only mail this service sends is
// the payment receipt, dispatched from a background job so a slow or
// failing mail provider never delays the payment response.
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/profasthq/profast-api/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Client wraps the Resend client, sender identity, and a logger.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client with the API key and sender
// identity from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Mail.ResendAPIKey),
		from:   fmt.Sprintf("%s <%s>", cfg.Mail.FromName, cfg.Mail.FromAddress),
		logger: logger,
	}
}

// SendEmail sends an email with HTML rendered from an embedded
// template.
//
// Inputs:
//   - to: recipient email address
//   - subject: email subject line
//   - templateName: which template to use (e.g. "receipt")
//   - data: key/value pairs available inside the template
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	tmplPath := fmt.Sprintf("templates/%s.html", templateName)

	tmpl, err := template.ParseFS(templates, tmplPath)
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	sent, err := c.client.Emails.Send(params)
	if err != nil {
		return errors.Wrapf(err, "failed to send %s email to %s", templateName, to)
	}

	c.logger.Info().
		Str("email_id", sent.Id).
		Str("template", string(templateName)).
		Str("to", to).
		Msg("sent email")

	return nil
}
