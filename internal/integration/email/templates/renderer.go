// Package templates renders the embedded sponsor email templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render renders the HTML and plain text bodies of templateName.
// A missing text template yields an empty text body.
func (r *Renderer) Render(templateName string, data interface{}) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	if r.textTemplates.Lookup(templateName+".txt") == nil {
		return htmlBuf.String(), "", nil
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", templateName, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SponsorEmailData feeds the renewal_reminder and lapsed_follow_up templates.
type SponsorEmailData struct {
	Organization   string
	SponsorName    string
	ContactName    string
	TierName       string
	FiscalYear     string
	ExpirationDate string
	DaysRemaining  int
	TotalValue     string
	RenewalURL     string
}

// Greeting returns the salutation name, falling back to the sponsor organization.
func (d SponsorEmailData) Greeting() string {
	if d.ContactName != "" {
		return d.ContactName
	}
	return d.SponsorName
}

// DaysSinceExpiration is the positive number of days a lapsed sponsorship has been expired.
func (d SponsorEmailData) DaysSinceExpiration() int {
	if d.DaysRemaining < 0 {
		return -d.DaysRemaining
	}
	return 0
}
