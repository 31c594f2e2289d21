package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "ayurveda/internal/log"
	"ayurveda/internal/repos"
	"ayurveda/internal/services"
	"ayurveda/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var body struct {
		ProductID     int64  `json:"productId"`
		Name          string `json:"name"`
		Mobile        string `json:"mobile"`
		Address       string `json:"address"`
		Email         string `json:"email"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid name"})
	}
	mobile, ok := validate.Mobile(body.Mobile)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "mobile"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid mobile number"})
	}
	address, ok := validate.Address(body.Address)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "address"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid address"})
	}
	email := ""
	if body.Email != "" {
		if email, ok = validate.Email(body.Email); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "email"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid email"})
		}
	}
	if body.PaymentMethod == "" {
		body.PaymentMethod = "cod"
	}

	o, err := h.Orders.Place(services.PlaceOrderInput{
		ProductID:     body.ProductID,
		Name:          name,
		Mobile:        mobile,
		Address:       address,
		Email:         email,
		PaymentMethod: body.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
		}
		applog.Error(c, "orders.place", err, map[string]any{"productId": body.ProductID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving order"})
	}
	applog.Audit(c, "orders.place", map[string]any{"orderId": o.ID, "productId": o.ProductID, "amount": o.Price})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "order": o})
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" {
		var ok bool
		if status, ok = validate.Status(status); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "status"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid status"})
		}
	}
	mobile := c.Query("mobile")
	if mobile != "" {
		var ok bool
		if mobile, ok = validate.Mobile(mobile); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "mobile"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid mobile number"})
		}
	}
	os, err := h.Orders.List(status, mobile)
	if err != nil {
		applog.Error(c, "orders.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading orders"})
	}
	return c.JSON(fiber.Map{"success": true, "orders": os})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.OrderID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "order"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found"})
	}
	o, err := h.Orders.Get(id)
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found"})
	}
	if err != nil {
		applog.Error(c, "orders.get", err, map[string]any{"orderId": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading order"})
	}
	return c.JSON(fiber.Map{"success": true, "order": o})
}

func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, ok := validate.OrderID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found"})
	}
	var body struct {
		Reason string `json:"reason"`
	}
	// body is optional, a bare POST cancels without a reason
	_ = c.BodyParser(&body)

	o, err := h.Orders.Cancel(id, body.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repos.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found"})
		case errors.Is(err, services.ErrOrderFinal):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Order is already completed or cancelled"})
		default:
			applog.Error(c, "orders.cancel", err, map[string]any{"orderId": id})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving order"})
		}
	}
	applog.Audit(c, "orders.cancel", map[string]any{"orderId": id, "reason": o.CancellationReason})
	return c.JSON(fiber.Map{"success": true, "order": o})
}

func (h *OrderHandler) Complete(c *fiber.Ctx) error {
	id, ok := validate.OrderID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found"})
	}
	o, err := h.Orders.Complete(id)
	if err != nil {
		switch {
		case errors.Is(err, repos.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found"})
		case errors.Is(err, services.ErrOrderFinal):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Order is already completed or cancelled"})
		default:
			applog.Error(c, "orders.complete", err, map[string]any{"orderId": id})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error saving order"})
		}
	}
	applog.Audit(c, "orders.complete", map[string]any{"orderId": id})
	return c.JSON(fiber.Map{"success": true, "order": o})
}

func (h *OrderHandler) Summary(c *fiber.Ctx) error {
	mobile := c.Query("mobile")
	if mobile != "" {
		var ok bool
		if mobile, ok = validate.Mobile(mobile); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "mobile"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid mobile number"})
		}
	}
	sum, err := h.Orders.Summary(mobile)
	if err != nil {
		applog.Error(c, "orders.summary", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error reading orders"})
	}
	return c.JSON(fiber.Map{"success": true, "summary": sum})
}

// Receipt renders a printable page for a single order.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, ok := validate.OrderID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Order not found")
	}
	o, err := h.Orders.Get(id)
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).SendString("Order not found")
	}
	if err != nil {
		applog.Error(c, "orders.receipt", err, map[string]any{"orderId": id})
		return c.Status(fiber.StatusInternalServerError).SendString("Error reading order")
	}
	return c.Render("receipt", fiber.Map{"Order": o})
}
