// Package email sends transactional e-mail through Resend.
//
// Bodies are rendered from the HTML templates embedded in this package.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/sixfigure-api/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

const (
	senderName    = "Six-Figure AI Engineering"
	senderAddress = "onboarding@resend.dev"
)

//go:embed templates/*.html
var templateFS embed.FS

type Client struct {
	client *resend.Client
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		logger: logger,
	}
}

// RenderTemplate executes the named template with data.
func RenderTemplate(name Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.html", name))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}

	return body.String(), nil
}

// SendEmail renders templateName and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := RenderTemplate(templateName, data)
	if err != nil {
		return err
	}

	sent, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", senderName, senderAddress),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Str("template", string(templateName)).
		Msg("email sent")

	return nil
}
