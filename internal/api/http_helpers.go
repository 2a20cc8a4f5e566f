package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateParamLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDateParam(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateParamLayout, raw, location)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
}
