package http

import (
	"github.com/gofiber/fiber/v2"
)

// NewApp builds the fiber app. Paths match case-sensitively; a trailing slash
// is ignored.
func NewApp(name string, views fiber.Views) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               name,
		CaseSensitive:         true,
		StrictRouting:         false,
		Views:                 views,
		DisableStartupMessage: true,
	})
}
