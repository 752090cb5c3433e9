package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"morefix/internal/catalog"
	"morefix/internal/config"
	"morefix/internal/http/handlers"
	applog "morefix/internal/log"
	"morefix/internal/mail"
	"morefix/internal/repos"
	"morefix/internal/services"
)

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

	db, err := repos.OpenDB(cfg.DBDSN, cfg.AdminEmail)
	if err != nil {
		log.Fatal(err)
	}

	// Session-change bus. The carousel store drops a session's
	// ephemeral image indexes when that session signs out.
	bus := EventBus.New()
	carousels := catalog.NewCarousels()
	_ = bus.Subscribe(services.TopicSignOut, func(sid string) {
		carousels.Drop(sid)
	})
	_ = bus.Subscribe(services.TopicSignIn, func(sid, userID string) {
		applog.Audit(nil, "session.signin", map[string]any{"sid": sid, "user_id": userID})
	})

	var mailer services.ResetMailer = mail.LogMailer{}
	if cfg.SMTPHost != "" {
		mailer = mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	resetRepo := repos.NewResetRepo(db)
	authSvc := &services.AuthService{
		Users:   userRepo,
		Resets:  resetRepo,
		Mailer:  mailer,
		Bus:     bus,
		BaseURL: cfg.BaseURL,
	}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Une erreur est survenue. Veuillez réessayer.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Une erreur est survenue. Veuillez réessayer.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if signed in (for templates/gating)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Vérification de sécurité échouée. Veuillez rafraîchir la page."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, carousels)

	// Catalog
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Post("/product/:id/image", deps.ProductHandler.Navigate)

	// Wishlist (gated)
	requireUser := handlers.RequireUser(authSvc)
	app.Get("/wishlist", requireUser, deps.WishlistHandler.List)
	app.Post("/wishlist/toggle", deps.WishlistHandler.Toggle)

	// Contact (gated, submission throttled)
	app.Get("/contact", requireUser, deps.ContactHandler.Form)
	app.Post("/contact", limiter.New(limiter.Config{Max: 5, Expiration: time.Minute}), deps.ContactHandler.Submit)

	// Auth (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Trop de tentatives. Veuillez réessayer plus tard."})
		},
	}), authH.Login)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Get("/forgot-password", authH.ForgotForm)
	app.Post("/forgot-password", authH.Forgot)
	app.Get("/reset-password", authH.ResetForm)
	app.Post("/reset-password", authH.Reset)
	app.Post("/logout", authH.Logout)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Panel)
	admin.Post("/products", deps.AdminHandler.Create)
	admin.Post("/products/:id/delete", deps.AdminHandler.Delete)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page introuvable"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
