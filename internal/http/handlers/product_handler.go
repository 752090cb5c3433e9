package handlers

import (
	"morefix/internal/catalog"
	applog "morefix/internal/log"
	"morefix/internal/services"
	"morefix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog   *services.CatalogService
	Carousels *catalog.Carousels
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce produit n'est plus disponible"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce produit n'est plus disponible"})
	}

	sid := ensureSID(c)
	images := p.Images()
	idx := h.Carousels.For(sid).Current(p.ID)
	if idx >= len(images) {
		idx = 0
	}

	return render(c, "product", fiber.Map{
		"P":          p,
		"Images":     images,
		"ImageIndex": idx,
		"ImageNum":   idx + 1,
		"Features":   p.Features(),
	})
}

// Navigate steps the per-session carousel for one product and returns
// to its page. dir is "next" or "prev"; anything else is rejected.
func (h *ProductHandler) Navigate(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing product id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce produit n'est plus disponible"})
	}

	sid := ensureSID(c)
	car := h.Carousels.For(sid)
	total := len(p.Images())

	switch c.FormValue("dir") {
	case "next":
		car.Next(p.ID, total)
	case "prev":
		car.Prev(p.ID, total)
	default:
		return c.Status(400).SendString("invalid direction")
	}

	return c.Redirect("/product/" + p.ID)
}
