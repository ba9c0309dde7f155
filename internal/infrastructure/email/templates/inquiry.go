// Package templates provides email template rendering
package templates

import (
	"bytes"
	"html/template"
	"log"
)

// InquiryEmailProps carries the fields rendered into an artwork inquiry email
type InquiryEmailProps struct {
	SenderName    string
	SenderEmail   string
	Message       string
	ArtworkTitle  string
	ArtworkID     string
	ArtworkURL    string
	ArtworkSize   string
	ArtworkYear   int
	ArtworkMedium string
}

var inquiryTemplate = template.Must(template.New("inquiryEmail").Parse(`
<!doctype html>
<html lang="en">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>Artwork inquiry</title>
  </head>
  <body style="background-color: #f6f6f6; font-family: Helvetica, sans-serif; font-size: 16px; margin: 0; padding: 0;">
    <div style="background: #ffffff; border-radius: 4px; margin: 24px auto; max-width: 580px; padding: 24px;">
      <h2 style="margin: 0 0 16px;">New artwork inquiry</h2>
      <p style="margin: 0 0 8px;"><strong>From:</strong> {{.SenderName}} &lt;{{.SenderEmail}}&gt;</p>
      <p style="margin: 0 0 8px;"><strong>Artwork:</strong> {{.ArtworkTitle}}{{if .ArtworkYear}} ({{.ArtworkYear}}){{end}}</p>
      {{if .ArtworkMedium}}<p style="margin: 0 0 8px;"><strong>Medium:</strong> {{.ArtworkMedium}}</p>{{end}}
      {{if .ArtworkSize}}<p style="margin: 0 0 8px;"><strong>Size:</strong> {{.ArtworkSize}} cm</p>{{end}}
      <p style="margin: 16px 0 8px;"><strong>Message:</strong></p>
      <p style="margin: 0 0 16px; white-space: pre-wrap;">{{.Message}}</p>
      <p style="margin: 0;"><a href="{{.ArtworkURL}}" target="_blank">View artwork</a></p>
    </div>
  </body>
</html>`))

// GetInquiryEmailContent renders the artwork inquiry email body
func GetInquiryEmailContent(props InquiryEmailProps) string {
	var buf bytes.Buffer
	if err := inquiryTemplate.Execute(&buf, props); err != nil {
		log.Printf("ERROR: failed to render inquiry email template: %v", err)
		return ""
	}
	return buf.String()
}
