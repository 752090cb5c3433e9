package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"morefix/internal/catalog"
	"morefix/internal/config"
	"morefix/internal/http/handlers"
	"morefix/internal/repos"
	"morefix/internal/services"
)

const adminEmail = "admin@morefix.test"

// newApp builds a minimal app with the real handlers, an in-memory
// store and the page middlewares the routes rely on.
func newApp(t *testing.T, cfg config.Config) (*fiber.App, *sqlx.DB, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:", adminEmail)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo, Resets: repos.NewResetRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, cfg, catalog.NewCarousels())

	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Post("/product/:id/image", deps.ProductHandler.Navigate)
	requireUser := handlers.RequireUser(authSvc)
	app.Get("/wishlist", requireUser, deps.WishlistHandler.List)
	app.Post("/wishlist/toggle", deps.WishlistHandler.Toggle)
	app.Get("/contact", requireUser, deps.ContactHandler.Form)
	app.Post("/contact", deps.ContactHandler.Submit)

	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Panel)
	admin.Post("/products", deps.AdminHandler.Create)
	admin.Post("/products/:id/delete", deps.AdminHandler.Delete)

	return app, db, userRepo
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken primes the csrf cookie with a GET and returns its value.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}
