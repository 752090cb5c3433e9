package handlers

import (
	"strings"

	"morefix/internal/domain"
	applog "morefix/internal/log"
	"morefix/internal/services"
	"morefix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the product administration panel. Routes using it
// sit behind RequireAdmin.
type AdminHandler struct {
	Admin   *services.ProductAdminService
	Catalog *services.CatalogService
}

// GET /admin
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	products, err := h.Catalog.Prods.ListAll()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger les produits"})
	}
	return render(c, "admin_panel", fiber.Map{
		"Products":   products,
		"Categories": domain.Categories,
	})
}

// POST /admin/products
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	price, okPrice := validate.Price(c.FormValue("price"))
	if !okPrice {
		return c.Status(400).SendString("invalid price")
	}
	origPrice := 0.0
	if raw := strings.TrimSpace(c.FormValue("original_price")); raw != "" {
		v, ok := validate.Price(raw)
		if !ok {
			return c.Status(400).SendString("invalid original price")
		}
		origPrice = v
	}

	in := services.NewProduct{
		Title:         strings.TrimSpace(c.FormValue("title")),
		Description:   strings.TrimSpace(c.FormValue("description")),
		Category:      strings.TrimSpace(c.FormValue("category")),
		Condition:     strings.TrimSpace(c.FormValue("condition")),
		Price:         price,
		OriginalPrice: origPrice,
		Images:        splitLines(c.FormValue("images")),
		Features:      splitLines(c.FormValue("features")),
	}

	p, err := h.Admin.Create(in)
	if err != nil {
		applog.Error(c, "admin.products.create.fail", err, map[string]any{"title": in.Title})
		return c.Status(400).SendString("Veuillez remplir tous les champs obligatoires")
	}

	applog.Audit(c, "admin.products.create", map[string]any{"product": p.ID, "title": p.Title})
	return c.Redirect("/admin")
}

// POST /admin/products/:id/delete — requires the explicit confirm
// field from the panel's confirmation step.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if c.FormValue("confirm") != "yes" {
		return c.Status(400).SendString("confirmation required")
	}

	if err := h.Admin.Delete(id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product": id})
		return c.Status(400).SendString("Impossible de supprimer le produit")
	}

	applog.Audit(c, "admin.products.delete", map[string]any{"product": id})
	return c.Redirect("/admin")
}

// splitLines turns textarea input into a cleaned list, one entry per
// line.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
