// Package contact validates contact-form submissions and sends the two
// transactional emails: the client acknowledgment and the team
// notification.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Submission choice sets, mirrored by the homepage form.
var (
	BudgetChoices = map[string]string{
		"50-75":   "PHP 50k – 75k",
		"75-120":  "PHP 75k – 120k",
		"120-200": "PHP 120k – 200k",
		"200+":    "PHP 200k+",
	}

	TimelineChoices = map[string]string{
		"asap": "ASAP (0–2 weeks)",
		"1m":   "1 month",
		"3m":   "3 months",
		"6m+":  "6+ months",
	}

	ServiceLabels = []string{
		"Content", "Reels", "Community", "Paid Social",
		"Landing Page", "CRM & Automation", "Analytics",
	}
)

const (
	maxNameLen    = 120
	maxCompanyLen = 120
	maxWebsiteLen = 200
)

// Form is one contact submission.
type Form struct {
	FullName string
	Email    string
	Company  string
	Website  string
	Budget   string
	Timeline string
	Services []string
	Message  string

	// Honeypot is a hidden field real visitors never fill in.
	Honeypot string
}

// FromValues builds a form from decoded urlencoded values, trimming every
// field.
func FromValues(values url.Values) *Form {
	var services []string
	for _, s := range values["services"] {
		services = append(services, strings.TrimSpace(s))
	}

	return &Form{
		FullName: strings.TrimSpace(values.Get("full_name")),
		Email:    strings.TrimSpace(values.Get("email")),
		Company:  strings.TrimSpace(values.Get("company")),
		Website:  strings.TrimSpace(values.Get("website")),
		Budget:   strings.TrimSpace(values.Get("budget")),
		Timeline: strings.TrimSpace(values.Get("timeline")),
		Services: services,
		Message:  strings.TrimSpace(values.Get("message")),
		Honeypot: values.Get("hp"),
	}
}

// Spam reports whether the honeypot field was filled in.
func (f *Form) Spam() bool {
	return strings.TrimSpace(f.Honeypot) != ""
}

// Validate checks required fields, lengths, and choice membership.
func (f *Form) Validate() error {
	switch {
	case f.FullName == "":
		return errors.New("full_name is required")
	case len(f.FullName) > maxNameLen:
		return fmt.Errorf("full_name exceeds %d characters", maxNameLen)
	case len(f.Company) > maxCompanyLen:
		return fmt.Errorf("company exceeds %d characters", maxCompanyLen)
	case len(f.Website) > maxWebsiteLen:
		return fmt.Errorf("website exceeds %d characters", maxWebsiteLen)
	case f.Message == "":
		return errors.New("message is required")
	}

	if _, err := mail.ParseAddress(f.Email); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	if _, ok := BudgetChoices[f.Budget]; !ok {
		return fmt.Errorf("unknown budget choice %q", f.Budget)
	}

	if _, ok := TimelineChoices[f.Timeline]; !ok {
		return fmt.Errorf("unknown timeline choice %q", f.Timeline)
	}

	for _, s := range f.Services {
		if !validService(s) {
			return fmt.Errorf("unknown service %q", s)
		}
	}

	return nil
}

func validService(s string) bool {
	for _, label := range ServiceLabels {
		if s == label {
			return true
		}
	}
	return false
}
