package handlers

import (
	"morefix/internal/gate"
	applog "morefix/internal/log"
	"morefix/internal/relay"
	"morefix/internal/services"
	"morefix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	Contact *services.ContactService
	Catalog *services.CatalogService
}

// Form opens the contact dialog, pre-filled from the session user and,
// when a product id is given, from the product.
func (h *ContactHandler) Form(c *fiber.Ctx) error {
	u := sessionUser(c)
	if err := gate.Check(u, gate.OpenContact); err != nil {
		applog.Security(c, "contact.open.denied", nil)
		return c.Redirect("/login")
	}

	data := fiber.Map{"Name": u.Name, "Email": u.Email}
	if pid, ok := validate.ID(c.Query("product")); ok {
		if p, err := h.Catalog.GetProduct(pid); err == nil && p.ID != "" {
			data["ProductID"] = p.ID
			data["ProductName"] = p.Title
			data["Message"] = h.Contact.Prefill(p)
		}
	}
	return render(c, "contact", data)
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	u := sessionUser(c)
	if err := gate.Check(u, gate.OpenContact); err != nil {
		applog.Security(c, "contact.submit.denied", nil)
		return c.Redirect("/login")
	}

	name, okName := validate.Name(c.FormValue("name"))
	email, okEmail := validate.Email(c.FormValue("email"))
	phone, okPhone := validate.Phone(c.FormValue("phone"))
	message, okMsg := validate.Message(c.FormValue("message"))
	if !okName || !okEmail || !okPhone || !okMsg {
		return c.Status(400).Render("contact", fiber.Map{
			"Err":       "Veuillez vérifier les champs du formulaire",
			"Name":      c.FormValue("name"),
			"Email":     c.FormValue("email"),
			"Message":   c.FormValue("message"),
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	msg := relay.Message{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
	}
	if pid, ok := validate.ID(c.FormValue("productId")); ok {
		msg.ProductID = pid
		msg.ProductName = c.FormValue("productName")
	}

	if err := h.Contact.Send(msg); err != nil {
		// The message is discarded; the user resubmits if they want.
		applog.Error(c, "contact.send.fail", err, nil)
		return c.Status(502).Render("contact", fiber.Map{
			"Err":       "Une erreur est survenue lors de l'envoi du message. Veuillez réessayer.",
			"Name":      name,
			"Email":     email,
			"Message":   message,
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	applog.Audit(c, "contact.send", map[string]any{"product": msg.ProductID})
	return render(c, "contact", fiber.Map{"Sent": true})
}
