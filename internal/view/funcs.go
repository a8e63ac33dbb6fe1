package view

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/spec-kit/helpdesk/internal/domain"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

var flashMessages = map[string]string{
	"invalid_credentials": "Invalid email or password.",
	"user_exists":         "An account with that email already exists.",
	"password_too_long":   "Password is too long.",
	"account_created":     "Account created. You can log in now.",
}

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"markdown":    Markdown,
		"statusLabel": StatusLabel,
		"statusClass": StatusClass,
		"statuses":    func() []domain.TicketStatus { return knownStatuses },
		"flash":       FlashMessage,
	}
}

// RenderMarkdown converts a markdown string to sanitized HTML.
// Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

// Markdown is RenderMarkdown typed for direct use in templates.
func Markdown(src string) template.HTML {
	return template.HTML(RenderMarkdown(src)) //nolint:gosec // sanitized above
}

var knownStatuses = []domain.TicketStatus{
	domain.TicketStatusOpen,
	domain.TicketStatusInProgress,
	domain.TicketStatusClosed,
}

// StatusLabel returns a display label. Unknown statuses are shown verbatim.
func StatusLabel(s domain.TicketStatus) string {
	switch s {
	case domain.TicketStatusOpen:
		return "Open"
	case domain.TicketStatusInProgress:
		return "In progress"
	case domain.TicketStatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// StatusClass returns the CSS class for a status badge.
func StatusClass(s domain.TicketStatus) string {
	if !s.Known() {
		return "status-unknown"
	}
	return "status-" + string(s)
}

// FlashMessage maps an error/success query indicator to a sentence. Unknown
// indicators produce nothing.
func FlashMessage(code string) string {
	return flashMessages[code]
}
