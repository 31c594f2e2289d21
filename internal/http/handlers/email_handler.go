package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "ayurveda/internal/log"
	"ayurveda/internal/services"
	"ayurveda/internal/validate"
)

// EmailHandler accepts the storefront's fire-and-forget notification
// request. Delivery is best effort: the response always reports
// success so a dead SMTP relay never breaks checkout.
type EmailHandler struct {
	Mail *services.Mailer
}

func (h *EmailHandler) Send(c *fiber.Ctx) error {
	var body struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	to, ok := validate.Email(body.To)
	if !ok {
		applog.Security(c, "email.badrequest", nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid email request"})
	}

	go h.Mail.SendNotification(to, body.Subject, body.Message)

	applog.Info(c, "email.queued", map[string]any{"to": to})
	return c.JSON(fiber.Map{"success": true, "message": "Email notification sent"})
}
