package handlers

import (
	"errors"
	"time"

	applog "morefix/internal/log"
	"morefix/internal/services"
	"morefix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// authMessage maps the closed error-kind set to the French copy shown
// to users. Raw provider causes never surface.
func authMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return "Aucun compte trouvé avec cet email"
	case errors.Is(err, services.ErrWrongCredential):
		return "Email ou mot de passe incorrect"
	case errors.Is(err, services.ErrInvalidEmail):
		return "Email invalide"
	case errors.Is(err, services.ErrWeakPassword):
		return "Le mot de passe doit contenir au moins 6 caractères"
	case errors.Is(err, services.ErrEmailInUse):
		return "Un compte existe déjà avec cet email"
	default:
		return "Une erreur est survenue"
	}
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Email invalide", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.SignIn(sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": authMessage(err), "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	name, _ := validate.Name(c.FormValue("name"))

	_, err := h.Auth.SignUp(sid, email, pass, name)
	if err != nil {
		applog.Security(c, "auth.signup.fail", map[string]any{"email": email})
		return c.Status(400).Render("signup", fiber.Map{"Err": authMessage(err), "CSRFToken": c.Cookies("csrf_")})
	}

	applog.Audit(c, "auth.signup.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) ForgotForm(c *fiber.Ctx) error {
	return render(c, "forgot", fiber.Map{"Sent": false})
}

// Forgot always answers success-shaped so account existence does not
// leak.
func (h *AuthHandler) Forgot(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(400).Render("forgot", fiber.Map{"Sent": false, "Err": "Email invalide", "CSRFToken": c.Cookies("csrf_")})
	}
	if err := h.Auth.RequestReset(email); err != nil {
		applog.Error(c, "auth.reset.request.fail", err, map[string]any{"email": email})
	}
	applog.Audit(c, "auth.reset.request", map[string]any{"email": email})
	return render(c, "forgot", fiber.Map{"Sent": true})
}

func (h *AuthHandler) ResetForm(c *fiber.Ctx) error {
	token, ok := validate.ID(c.Query("token"))
	if !ok {
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Lien invalide ou expiré"})
	}
	return render(c, "reset", fiber.Map{"Token": token})
}

func (h *AuthHandler) Reset(c *fiber.Ctx) error {
	token, ok := validate.ID(c.FormValue("token"))
	if !ok {
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Lien invalide ou expiré"})
	}
	if err := h.Auth.ResetPassword(token, c.FormValue("password")); err != nil {
		applog.Security(c, "auth.reset.fail", nil)
		return c.Status(400).Render("reset", fiber.Map{"Token": token, "Err": authMessage(err), "CSRFToken": c.Cookies("csrf_")})
	}
	applog.Audit(c, "auth.reset.success", nil)
	return c.Redirect("/login")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.SignOut(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
