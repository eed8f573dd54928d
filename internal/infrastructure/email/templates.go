package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"buyback_service/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"formatDate": func(t time.Time) string {
		return t.UTC().Format("January 2, 2006")
	},
}

// RendererConfig carries addressing and link settings for rendered emails.
type RendererConfig struct {
	From    string
	AdminTo string
	SiteURL string
}

// Renderer builds customer and admin email messages for quotes.
type Renderer struct {
	cfg          RendererConfig
	confirmation *template.Template
	reminder     *template.Template
	admin        *template.Template
}

func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	load := func(page string) (*template.Template, error) {
		t, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		return t, nil
	}

	r := &Renderer{cfg: cfg}
	var err error
	if r.confirmation, err = load("confirmation.html"); err != nil {
		return nil, err
	}
	if r.reminder, err = load("reminder.html"); err != nil {
		return nil, err
	}
	if r.admin, err = load("admin_notification.html"); err != nil {
		return nil, err
	}
	return r, nil
}

type pageData struct {
	Quote     entities.Quote
	QuoteURL  string
	Headline  string
	EmailType entities.EmailType
	Reason    string
}

func (r *Renderer) QuoteConfirmation(q entities.Quote) (entities.EmailMessage, error) {
	html, err := execute(r.confirmation, pageData{Quote: q, QuoteURL: r.quoteURL(q)})
	if err != nil {
		return entities.EmailMessage{}, err
	}
	return entities.EmailMessage{
		From:    r.cfg.From,
		To:      q.Customer.Email,
		Subject: fmt.Sprintf("Your buyback quote %s", q.QuoteNumber),
		HTML:    html,
	}, nil
}

func (r *Renderer) Reminder(q entities.Quote, t entities.EmailType) (entities.EmailMessage, error) {
	var subject, headline string
	switch t {
	case entities.EmailTypeReminder7Days:
		subject = fmt.Sprintf("One week left on your quote %s", q.QuoteNumber)
		headline = "Your quote expires in 7 days"
	case entities.EmailTypeReminder3Days:
		subject = fmt.Sprintf("3 days left on your quote %s", q.QuoteNumber)
		headline = "Your quote expires in 3 days"
	case entities.EmailTypeReminder1Day:
		subject = fmt.Sprintf("Last day for your quote %s", q.QuoteNumber)
		headline = "Your quote expires tomorrow"
	default:
		return entities.EmailMessage{}, fmt.Errorf("unsupported reminder type %q", t)
	}

	html, err := execute(r.reminder, pageData{Quote: q, QuoteURL: r.quoteURL(q), Headline: headline})
	if err != nil {
		return entities.EmailMessage{}, err
	}
	return entities.EmailMessage{
		From:    r.cfg.From,
		To:      q.Customer.Email,
		Subject: subject,
		HTML:    html,
	}, nil
}

// AdminNotification carries the full quote and customer contact details so
// staff can follow up when a customer email could not be delivered.
func (r *Renderer) AdminNotification(q entities.Quote, failed entities.EmailType, reason string) (entities.EmailMessage, error) {
	html, err := execute(r.admin, pageData{Quote: q, QuoteURL: r.quoteURL(q), EmailType: failed, Reason: reason})
	if err != nil {
		return entities.EmailMessage{}, err
	}
	return entities.EmailMessage{
		From:    r.cfg.From,
		To:      r.cfg.AdminTo,
		Subject: fmt.Sprintf("[Action needed] Email failed for quote %s", q.QuoteNumber),
		HTML:    html,
	}, nil
}

func (r *Renderer) quoteURL(q entities.Quote) string {
	return r.cfg.SiteURL + "/quotes/" + url.PathEscape(q.QuoteNumber)
}

func execute(t *template.Template, data pageData) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}
