package handlers

import (
	"morefix/internal/catalog"
	"morefix/internal/domain"
	applog "morefix/internal/log"
	"morefix/internal/services"
	"morefix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
	Wish    *services.WishlistService
}

// Home renders the storefront: the full catalog narrowed by the query
// string (q, category, sort). Recomputed on every request.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))

	category := c.Query("category", domain.CategoryAll)
	if category != domain.CategoryAll && !domain.ValidCategory(category) {
		applog.Security(c, "validation.fail", map[string]any{"field": "category", "value": category})
		category = domain.CategoryAll
	}

	sortKey, ok := validate.SortKey(c.Query("sort"))
	if !ok {
		sortKey = catalog.SortNewest
	}

	products, err := h.Catalog.Browse(catalog.Query{Text: q, Category: category, Sort: sortKey})
	if err != nil {
		applog.Error(c, "catalog.browse.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger le catalogue. Veuillez réessayer."})
	}

	// Wishlist membership marks for the heart icons; empty when
	// signed out.
	saved := map[string]bool{}
	if u := sessionUser(c); u != nil {
		if ids, err := h.Wish.IDs(u.ID); err == nil {
			for _, id := range ids {
				saved[id] = true
			}
		}
	}

	return render(c, "home", fiber.Map{
		"Products":   products,
		"Count":      len(products),
		"Categories": append([]string{domain.CategoryAll}, domain.Categories...),
		"Q":          q,
		"Category":   category,
		"Sort":       sortKey,
		"Saved":      saved,
	})
}
