package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "ayurveda/internal/log"
	"ayurveda/internal/services"
	"ayurveda/internal/validate"
)

// AccountHandler exposes the mobile-number account flow. There is no
// password and no session: login is a lookup, and the frontend keeps
// the returned user in its own storage.
type AccountHandler struct {
	Accounts *services.AccountService
}

type accountBody struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (b *accountBody) check() (string, bool) {
	var ok bool
	if b.Name, ok = validate.Name(b.Name); !ok {
		return "Invalid name", false
	}
	if b.Mobile, ok = validate.Mobile(b.Mobile); !ok {
		return "Invalid mobile number", false
	}
	if b.Email != "" {
		if b.Email, ok = validate.Email(b.Email); !ok {
			return "Invalid email", false
		}
	}
	if b.Address, ok = validate.Address(b.Address); !ok {
		return "Invalid address", false
	}
	return "", true
}

func (h *AccountHandler) Signup(c *fiber.Ctx) error {
	var body accountBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if msg, ok := body.check(); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "signup"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": msg})
	}
	u, err := h.Accounts.Signup(body.Name, body.Mobile, body.Email, body.Address)
	if err != nil {
		if errors.Is(err, services.ErrMobileRegistered) {
			applog.Security(c, "signup.duplicate", map[string]any{"mobile": body.Mobile})
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Mobile number already registered. Please login instead."})
		}
		applog.Error(c, "signup.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving user"})
	}
	applog.Audit(c, "signup", map[string]any{"userId": u.UserID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "user": u})
}

func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Mobile string `json:"mobile"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	mobile, ok := validate.Mobile(body.Mobile)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "mobile"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid mobile number"})
	}
	u, err := h.Accounts.Login(mobile)
	if err != nil {
		if errors.Is(err, services.ErrUnknownMobile) {
			applog.Security(c, "login.unknown", map[string]any{"mobile": body.Mobile})
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Mobile number not found. Please sign up first."})
		}
		applog.Error(c, "login.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading users"})
	}
	applog.Audit(c, "login", map[string]any{"userId": u.UserID})
	return c.JSON(fiber.Map{"success": true, "user": u})
}

func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var body accountBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if msg, ok := body.check(); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "profile"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": msg})
	}
	u, err := h.Accounts.UpdateProfile(body.Name, body.Mobile, body.Email, body.Address)
	if err != nil {
		applog.Error(c, "profile.update.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving user"})
	}
	applog.Audit(c, "profile.update", map[string]any{"userId": u.UserID})
	return c.JSON(fiber.Map{"success": true, "user": u})
}
