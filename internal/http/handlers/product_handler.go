package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ayurveda/internal/domain"
	applog "ayurveda/internal/log"
	"ayurveda/internal/repos"
	"ayurveda/internal/services"
	"ayurveda/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func parseProductID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

// List applies the storefront filters from query parameters; with no
// parameters it returns the whole catalog.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := services.ProductFilter{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		PriceRange: c.Query("priceRange"),
	}
	if f.Category != "" {
		slug, ok := validate.CategorySlug(f.Category)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid category"})
		}
		f.Category = slug
	}
	if v := c.Query("minDiscount"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || !validate.Discount(d) {
			applog.Security(c, "validation.fail", map[string]any{"field": "minDiscount"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid minDiscount"})
		}
		f.MinDiscount = d
	}
	ps, err := h.Catalog.Filter(f)
	if err != nil {
		applog.Error(c, "products.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading products"})
	}
	return c.JSON(fiber.Map{"success": true, "products": ps})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
	}
	p, err := h.Catalog.Get(id)
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
	}
	if err != nil {
		applog.Error(c, "products.get", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading product"})
	}
	return c.JSON(fiber.Map{"success": true, "product": p})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	created, err := h.Catalog.Create(p)
	if err != nil {
		if errors.Is(err, services.ErrProductFields) || errors.Is(err, services.ErrBadPrice) || errors.Is(err, services.ErrBadDiscount) {
			applog.Security(c, "validation.fail", map[string]any{"field": "product", "error": err.Error()})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		applog.Error(c, "products.create", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving product"})
	}
	applog.Audit(c, "products.create", map[string]any{"id": created.ID, "name": created.Name})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "product": created})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
	}
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	p.ID = id
	if err := h.Catalog.Update(p); err != nil {
		switch {
		case errors.Is(err, repos.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
		case errors.Is(err, services.ErrProductFields), errors.Is(err, services.ErrBadPrice), errors.Is(err, services.ErrBadDiscount):
			applog.Security(c, "validation.fail", map[string]any{"field": "product", "error": err.Error()})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		default:
			applog.Error(c, "products.update", err, map[string]any{"id": id})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving product"})
		}
	}
	applog.Audit(c, "products.update", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true, "product": p})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseProductID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
	}
	if err := h.Catalog.Delete(id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
		}
		applog.Error(c, "products.delete", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error deleting product"})
	}
	applog.Audit(c, "products.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted"})
}
