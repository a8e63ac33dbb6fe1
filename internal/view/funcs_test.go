package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
}

func TestRenderMarkdown_Bold(t *testing.T) {
	assert.Contains(t, RenderMarkdown("**printer** is down"), "<strong>printer</strong>")
}

func TestRenderMarkdown_Link(t *testing.T) {
	result := RenderMarkdown("[runbook](https://example.com/runbook)")
	assert.Contains(t, result, `<a href="https://example.com/runbook"`)
	assert.Contains(t, result, "runbook</a>")
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	result := RenderMarkdown(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}

func TestRenderMarkdown_GFMStrikethrough(t *testing.T) {
	assert.Contains(t, RenderMarkdown("~~fixed~~"), "<del>fixed</del>")
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		status domain.TicketStatus
		label  string
		class  string
	}{
		{domain.TicketStatusOpen, "Open", "status-open"},
		{domain.TicketStatusInProgress, "In progress", "status-in_progress"},
		{domain.TicketStatusClosed, "Closed", "status-closed"},
		{"waiting", "waiting", "status-unknown"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.label, StatusLabel(tt.status))
			assert.Equal(t, tt.class, StatusClass(tt.status))
		})
	}
}

func TestFlashMessage(t *testing.T) {
	assert.NotEmpty(t, FlashMessage("invalid_credentials"))
	assert.NotEmpty(t, FlashMessage("user_exists"))
	assert.NotEmpty(t, FlashMessage("account_created"))
	assert.NotEmpty(t, FlashMessage("password_too_long"))
	assert.Empty(t, FlashMessage(""))
	assert.Empty(t, FlashMessage("<script>"))
}
