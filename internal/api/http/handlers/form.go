package handlers

import "github.com/gofiber/fiber/v2"

// formField reads a submitted form field and reports whether it was present.
// Both urlencoded and multipart bodies are supported.
func formField(c *fiber.Ctx, key string) (string, bool) {
	if args := c.Request().PostArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}
	if form, err := c.MultipartForm(); err == nil {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			return vals[0], true
		}
	}
	return "", false
}

func optionalField(c *fiber.Ctx, key string) *string {
	val, ok := formField(c, key)
	if !ok {
		return nil
	}
	return &val
}

func field(c *fiber.Ctx, key string) string {
	val, _ := formField(c, key)
	return val
}
