package handlers

import (
	"net/url"
	"strings"

	"morefix/internal/gate"
	applog "morefix/internal/log"
	"morefix/internal/services"
	"morefix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	Wish *services.WishlistService
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	u := sessionUser(c)
	if err := gate.Check(u, gate.ToggleWishlist); err != nil {
		return c.Redirect("/login")
	}
	items, err := h.Wish.List(u.ID)
	if err != nil {
		applog.Error(c, "wishlist.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger vos favoris"})
	}
	return render(c, "wishlist", fiber.Map{"Items": items})
}

// Toggle flips one product's membership. Anonymous visitors are
// short-circuited before any persistence call.
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	u := sessionUser(c)
	if err := gate.Check(u, gate.ToggleWishlist); err != nil {
		applog.Security(c, "wishlist.toggle.denied", nil)
		return c.Redirect("/login")
	}

	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}

	added, err := h.Wish.Toggle(u.ID, pid)
	if err != nil {
		// Accepted policy: the interaction is not replayed; the next
		// page load re-reads the persisted set.
		applog.Error(c, "wishlist.toggle.fail", err, map[string]any{"product": pid})
	} else {
		applog.Audit(c, "wishlist.toggle", map[string]any{"product": pid, "added": added})
	}

	return c.Redirect(localPath(c.Get("Referer"), "/wishlist"))
}

// localPath reduces a referer value to a same-site path. Anything that
// does not resolve to a plain local path falls back.
func localPath(raw, fallback string) string {
	ref, err := url.Parse(raw)
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return fallback
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
