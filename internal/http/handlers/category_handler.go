package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "ayurveda/internal/log"
	"ayurveda/internal/services"
	"ayurveda/internal/validate"
)

// CategoryHandler manages categories by name. Names are the identity;
// the legacy whole-list save remains available for the old admin
// bundle and simply overwrites whatever is stored.
type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "categories.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading categories"})
	}
	return c.JSON(fiber.Map{"success": true, "categories": cats})
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	name, ok := validate.CategoryName(body.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid category name"})
	}
	if err := h.Catalog.AddCategory(name); err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Category already exists"})
		}
		applog.Error(c, "categories.create", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving categories"})
	}
	applog.Audit(c, "categories.create", map[string]any{"name": name})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Category added"})
}

func (h *CategoryHandler) Rename(c *fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		NewName string `json:"newName"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	oldName, okOld := validate.CategoryName(body.Name)
	newName, okNew := validate.CategoryName(body.NewName)
	if !okOld || !okNew {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid category name"})
	}
	if err := h.Catalog.RenameCategory(oldName, newName); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryMissing):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Category not found"})
		case errors.Is(err, services.ErrCategoryExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Category already exists"})
		default:
			applog.Error(c, "categories.rename", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving categories"})
		}
	}
	applog.Audit(c, "categories.rename", map[string]any{"from": oldName, "to": newName})
	return c.JSON(fiber.Map{"success": true, "message": "Category renamed"})
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	name, ok := validate.CategoryName(body.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid category name"})
	}
	if err := h.Catalog.DeleteCategory(name); err != nil {
		if errors.Is(err, services.ErrCategoryMissing) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Category not found"})
		}
		applog.Error(c, "categories.delete", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving categories"})
	}
	applog.Audit(c, "categories.delete", map[string]any{"name": name})
	return c.JSON(fiber.Map{"success": true, "message": "Category deleted"})
}
