// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"os"

	"github.com/resendlabs/resend-go"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/infrastructure/email/templates"
	"github.com/artfolio/artfolio-go/pkg/config"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendArtworkInquiry(senderName, senderEmail, message string, artwork *catalog.ArtworkRecord) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	recipient string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := os.Getenv("INQUIRY_EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@artfolio.art"
	}

	fromName := os.Getenv("INQUIRY_EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Artfolio"
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		recipient: config.InquiryRecipient,
	}, nil
}

// SendArtworkInquiry composes and sends a visitor's inquiry about an artwork
// to the configured recipient.
func (c *ResendClient) SendArtworkInquiry(senderName, senderEmail, message string, artwork *catalog.ArtworkRecord) error {
	if c.recipient == "" {
		return fmt.Errorf("no inquiry recipient configured")
	}

	subject := fmt.Sprintf("Inquiry about \"%s\"", artwork.Title)

	htmlContent := templates.GetInquiryEmailContent(templates.InquiryEmailProps{
		SenderName:    senderName,
		SenderEmail:   senderEmail,
		Message:       message,
		ArtworkTitle:  artwork.Title,
		ArtworkID:     artwork.ID,
		ArtworkURL:    fmt.Sprintf("%s/works/%s", config.CanonicalBaseURL, artwork.ID),
		ArtworkSize:   artwork.Size,
		ArtworkYear:   artwork.Year,
		ArtworkMedium: artwork.Technique,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.recipient},
		ReplyTo: senderEmail,
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send inquiry email via Resend: %w", err)
	}

	return nil
}
