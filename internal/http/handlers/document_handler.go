package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ayurveda/internal/domain"
	applog "ayurveda/internal/log"
	"ayurveda/internal/repos"
)

// DocumentHandler serves the whole-document endpoints the original
// static storefront talks to: each GET returns the entire collection,
// each POST replaces it. Last write wins; concurrent admin tabs can
// clobber each other, which matches the contract the frontend expects.
type DocumentHandler struct {
	Stores *repos.Stores
}

func (h *DocumentHandler) GetProducts(c *fiber.Ctx) error {
	ps, err := h.Stores.Products.List()
	if err != nil {
		applog.Error(c, "documents.products.read", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading products"})
	}
	if ps == nil {
		ps = []domain.Product{}
	}
	return c.JSON(fiber.Map{"success": true, "products": ps})
}

func (h *DocumentHandler) SaveProducts(c *fiber.Ctx) error {
	var body struct {
		Products []domain.Product `json:"products"`
	}
	if err := c.BodyParser(&body); err != nil {
		applog.Security(c, "documents.products.badbody", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := h.Stores.Products.ReplaceAll(body.Products); err != nil {
		applog.Error(c, "documents.products.save", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving products"})
	}
	applog.Audit(c, "documents.products.save", map[string]any{"count": len(body.Products)})
	return c.JSON(fiber.Map{"success": true, "message": "Products saved successfully"})
}

func (h *DocumentHandler) GetUsers(c *fiber.Ctx) error {
	us, err := h.Stores.Users.List()
	if err != nil {
		applog.Error(c, "documents.users.read", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading users"})
	}
	if us == nil {
		us = []domain.User{}
	}
	return c.JSON(fiber.Map{"success": true, "users": us})
}

func (h *DocumentHandler) SaveUsers(c *fiber.Ctx) error {
	var body struct {
		Users []domain.User `json:"users"`
	}
	if err := c.BodyParser(&body); err != nil {
		applog.Security(c, "documents.users.badbody", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := h.Stores.Users.ReplaceAll(body.Users); err != nil {
		applog.Error(c, "documents.users.save", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving users"})
	}
	applog.Audit(c, "documents.users.save", map[string]any{"count": len(body.Users)})
	return c.JSON(fiber.Map{"success": true, "message": "Users saved successfully"})
}

func (h *DocumentHandler) GetOrders(c *fiber.Ctx) error {
	os, err := h.Stores.Orders.List()
	if err != nil {
		applog.Error(c, "documents.orders.read", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading orders"})
	}
	if os == nil {
		os = []domain.Order{}
	}
	return c.JSON(fiber.Map{"success": true, "orders": os})
}

func (h *DocumentHandler) SaveOrders(c *fiber.Ctx) error {
	var body struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := c.BodyParser(&body); err != nil {
		applog.Security(c, "documents.orders.badbody", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := h.Stores.Orders.ReplaceAll(body.Orders); err != nil {
		applog.Error(c, "documents.orders.save", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving orders"})
	}
	applog.Audit(c, "documents.orders.save", map[string]any{"count": len(body.Orders)})
	return c.JSON(fiber.Map{"success": true, "message": "Orders saved successfully"})
}

func (h *DocumentHandler) GetCategories(c *fiber.Ctx) error {
	cats, err := h.Stores.Categories.List()
	if err != nil {
		applog.Error(c, "documents.categories.read", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading categories"})
	}
	if cats == nil {
		cats = []string{}
	}
	return c.JSON(fiber.Map{"success": true, "categories": cats})
}

func (h *DocumentHandler) SaveCategories(c *fiber.Ctx) error {
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := c.BodyParser(&body); err != nil {
		applog.Security(c, "documents.categories.badbody", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := h.Stores.Categories.ReplaceAll(body.Categories); err != nil {
		applog.Error(c, "documents.categories.save", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving categories"})
	}
	applog.Audit(c, "documents.categories.save", map[string]any{"count": len(body.Categories)})
	return c.JSON(fiber.Map{"success": true, "message": "Categories saved successfully"})
}
