package handlers

import (
	"morefix/internal/catalog"
	"morefix/internal/config"
	"morefix/internal/relay"
	"morefix/internal/repos"
	"morefix/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	ProductHandler  *ProductHandler
	WishlistHandler *WishlistHandler
	ContactHandler  *ContactHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, carousels *catalog.Carousels) *Deps {
	prodRepo := repos.NewProductRepo(db)
	wishRepo := repos.NewWishlistRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	wishSvc := services.NewWishlistService(wishRepo)
	contactSvc := services.NewContactService(relay.NewClient(cfg.RelayURL))
	adminSvc := services.NewProductAdminService(prodRepo)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc, Wish: wishSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Carousels: carousels},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
		ContactHandler:  &ContactHandler{Contact: contactSvc, Catalog: catalogSvc},
		AdminHandler:    &AdminHandler{Admin: adminSvc, Catalog: catalogSvc},
	}
}
