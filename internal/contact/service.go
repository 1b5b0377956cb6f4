package contact

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/liorae/liora/internal/mail"
)

//go:embed templates
var templatesFS embed.FS

const clientSubject = "We got your inquiry — Lioraè Co."

// Service renders the contact email templates and hands them to the sender.
type Service struct {
	sender    mail.Sender
	recipient string
	html      *htmltemplate.Template
	text      *texttemplate.Template
}

// NewService parses the embedded email templates.
func NewService(sender mail.Sender, cfg mail.Config) (*Service, error) {
	html, err := htmltemplate.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html email templates: %w", err)
	}

	text, err := texttemplate.ParseFS(templatesFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text email templates: %w", err)
	}

	return &Service{
		sender:    sender,
		recipient: cfg.ContactRecipient,
		html:      html,
		text:      text,
	}, nil
}

// Notify sends the client acknowledgment and the team notification for a
// validated submission.
func (s *Service) Notify(ctx context.Context, form *Form) error {
	data := templateData(form)

	clientMsg, err := s.render("client", data)
	if err != nil {
		return err
	}
	clientMsg.To = []string{form.Email}
	clientMsg.Subject = clientSubject

	if err := s.sender.Send(ctx, clientMsg); err != nil {
		return fmt.Errorf("failed to send client acknowledgment: %w", err)
	}

	teamMsg, err := s.render("team", data)
	if err != nil {
		return err
	}
	teamMsg.To = []string{s.recipient}
	teamMsg.ReplyTo = form.Email
	teamMsg.Subject = teamSubject(form)

	if err := s.sender.Send(ctx, teamMsg); err != nil {
		return fmt.Errorf("failed to send team notification: %w", err)
	}

	return nil
}

func (s *Service) render(name string, data map[string]any) (*mail.Message, error) {
	var htmlBuf, textBuf bytes.Buffer

	if err := s.html.ExecuteTemplate(&htmlBuf, name+".html", data); err != nil {
		return nil, fmt.Errorf("failed to render %s html body: %w", name, err)
	}

	if err := s.text.ExecuteTemplate(&textBuf, name+".txt", data); err != nil {
		return nil, fmt.Errorf("failed to render %s text body: %w", name, err)
	}

	return &mail.Message{
		Text: textBuf.String(),
		HTML: htmlBuf.String(),
	}, nil
}

func teamSubject(form *Form) string {
	company := form.Company
	if company == "" {
		company = "No company"
	}
	return fmt.Sprintf("[New Inquiry] %s — %s", form.FullName, company)
}

func templateData(form *Form) map[string]any {
	return map[string]any{
		"FullName": form.FullName,
		"Email":    form.Email,
		"Company":  form.Company,
		"Website":  form.Website,
		"Budget":   BudgetChoices[form.Budget],
		"Timeline": TimelineChoices[form.Timeline],
		"Services": form.Services,
		"Message":  form.Message,
	}
}
