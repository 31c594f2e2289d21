package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"ayurveda/internal/config"
	"ayurveda/internal/http/handlers"
	applog "ayurveda/internal/log"
	"ayurveda/internal/repos"
	"ayurveda/internal/repos/filerepo"
	"ayurveda/internal/repos/sqlrepo"
)

func openStores(cfg config.Config) (*repos.Stores, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		return sqlrepo.Open(cfg.DBDSN)
	case "file", "":
		return filerepo.Open(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	stores, err := openStores(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer stores.Close()

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong. Please try again.",
			})
		},
	})
	// Image uploads are capped at 5 MB in the handler; leave headroom
	// for the multipart framing.
	app.Server().MaxRequestBodySize = 6 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/images/")
		},
	}))

	// ---------- Static assets ----------
	imagesDir := cfg.ImagesDir
	if !filepath.IsAbs(imagesDir) {
		if abs, err := filepath.Abs(imagesDir); err == nil {
			imagesDir = abs
		}
	}
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		log.Fatal(err)
	}
	log.Printf("[static] /images -> %s", imagesDir)
	app.Static("/images", imagesDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(stores, cfg)

	// Legacy whole-document endpoints for the static storefront
	app.Get("/get-products", deps.DocumentHandler.GetProducts)
	app.Post("/save-products", deps.DocumentHandler.SaveProducts)
	app.Get("/get-users", deps.DocumentHandler.GetUsers)
	app.Post("/save-users", deps.DocumentHandler.SaveUsers)
	app.Get("/get-orders", deps.DocumentHandler.GetOrders)
	app.Post("/save-orders", deps.DocumentHandler.SaveOrders)
	app.Get("/get-categories", deps.DocumentHandler.GetCategories)
	app.Post("/save-categories", deps.DocumentHandler.SaveCategories)

	// Images & mail
	app.Post("/upload-image", deps.UploadHandler.Upload)
	app.Delete("/delete-image/:filename", deps.UploadHandler.Delete)
	app.Post("/send-email", deps.EmailHandler.Send)

	// Typed API
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

	api.Post("/signup", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.signup.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"success": false, "message": "Too many attempts. Please try again later."})
		},
	}), deps.AccountHandler.Signup)
	api.Post("/login", deps.AccountHandler.Login)
	api.Put("/profile", deps.AccountHandler.UpdateProfile)

	api.Post("/orders", deps.OrderHandler.Place)
	api.Get("/orders", deps.OrderHandler.List)
	api.Get("/orders/summary", deps.OrderHandler.Summary)
	api.Get("/orders/:id", deps.OrderHandler.Get)
	api.Post("/orders/:id/cancel", deps.OrderHandler.Cancel)
	api.Post("/orders/:id/complete", deps.OrderHandler.Complete)
	api.Get("/orders/:id/receipt", deps.OrderHandler.Receipt)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
