package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"ayurveda/internal/config"
	"ayurveda/internal/http/handlers"
	"ayurveda/internal/repos"
	"ayurveda/internal/repos/filerepo"
)

// newTestApp wires the full route surface over a throwaway flat-file
// store, mirroring the production setup minus rate limiting.
func newTestApp(t *testing.T) (*fiber.App, *repos.Stores) {
	t.Helper()
	stores, err := filerepo.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{ImagesDir: t.TempDir()}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 6 << 20
	app.Use(requestid.New())

	deps := handlers.NewDeps(stores, cfg)

	app.Get("/get-products", deps.DocumentHandler.GetProducts)
	app.Post("/save-products", deps.DocumentHandler.SaveProducts)
	app.Get("/get-users", deps.DocumentHandler.GetUsers)
	app.Post("/save-users", deps.DocumentHandler.SaveUsers)
	app.Get("/get-orders", deps.DocumentHandler.GetOrders)
	app.Post("/save-orders", deps.DocumentHandler.SaveOrders)
	app.Get("/get-categories", deps.DocumentHandler.GetCategories)
	app.Post("/save-categories", deps.DocumentHandler.SaveCategories)

	app.Post("/upload-image", deps.UploadHandler.Upload)
	app.Delete("/delete-image/:filename", deps.UploadHandler.Delete)
	app.Post("/send-email", deps.EmailHandler.Send)

	api := app.Group("/api")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/products", deps.ProductHandler.Create)
	api.Put("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Delete)
	api.Get("/categories", deps.CategoryHandler.List)
	api.Post("/categories", deps.CategoryHandler.Create)
	api.Put("/categories", deps.CategoryHandler.Rename)
	api.Delete("/categories", deps.CategoryHandler.Delete)
	api.Post("/signup", deps.AccountHandler.Signup)
	api.Post("/login", deps.AccountHandler.Login)
	api.Put("/profile", deps.AccountHandler.UpdateProfile)
	api.Post("/orders", deps.OrderHandler.Place)
	api.Get("/orders", deps.OrderHandler.List)
	api.Get("/orders/summary", deps.OrderHandler.Summary)
	api.Get("/orders/:id", deps.OrderHandler.Get)
	api.Post("/orders/:id/cancel", deps.OrderHandler.Cancel)
	api.Post("/orders/:id/complete", deps.OrderHandler.Complete)
	api.Get("/orders/:id/receipt", deps.OrderHandler.Receipt)

	return app, stores
}
