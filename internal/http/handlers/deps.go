package handlers

import (
	"ayurveda/internal/config"
	"ayurveda/internal/repos"
	"ayurveda/internal/services"
)

type Deps struct {
	DocumentHandler *DocumentHandler
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	AccountHandler  *AccountHandler
	OrderHandler    *OrderHandler
	UploadHandler   *UploadHandler
	EmailHandler    *EmailHandler
}

func NewDeps(stores *repos.Stores, cfg config.Config) *Deps {
	mailer := services.NewMailer(cfg.SMTPAddr, cfg.SMTPHost, cfg.FromEmail, cfg.FromPassword, cfg.MailTimeout)

	catalogSvc := services.NewCatalogService(stores.Products, stores.Categories)
	accountSvc := services.NewAccountService(stores.Users)
	orderSvc := services.NewOrderService(stores.Products, stores.Orders, stores.Users, mailer)

	return &Deps{
		DocumentHandler: &DocumentHandler{Stores: stores},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		AccountHandler:  &AccountHandler{Accounts: accountSvc},
		OrderHandler:    &OrderHandler{Orders: orderSvc},
		UploadHandler:   &UploadHandler{Dir: cfg.ImagesDir},
		EmailHandler:    &EmailHandler{Mail: mailer},
	}
}
