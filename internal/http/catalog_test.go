package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"morefix/internal/config"
)

func TestHomeFiltersByQueryAndCategory(t *testing.T) {
	app, _, _ := newApp(t, config.Config{})

	// full catalog
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "SSD Samsung 870 EVO 1To") || !strings.Contains(string(body), "Casque JBL Tune 510BT") {
		t.Fatal("home must list the seeded catalog")
	}

	// category narrows
	resp, err = app.Test(httptest.NewRequest("GET", "/?category=Audio", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Casque JBL Tune 510BT") {
		t.Fatal("Audio category must keep the JBL headset")
	}
	if strings.Contains(string(body), "SSD Samsung 870 EVO 1To") {
		t.Fatal("Audio category must drop storage products")
	}

	// text query narrows further
	resp, err = app.Test(httptest.NewRequest("GET", "/?q="+url.QueryEscape("iphone"), nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "iPhone 12 128 Go") {
		t.Fatal("query must match case-insensitively on the title")
	}
	if strings.Contains(string(body), "Dell Latitude 5400") {
		t.Fatal("query must drop non-matching products")
	}
}

func TestHomeIgnoresInvalidSortAndCategory(t *testing.T) {
	app, _, _ := newApp(t, config.Config{})
	resp, err := app.Test(httptest.NewRequest("GET", "/?sort=bogus&category=Inconnu", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("invalid filters fall back to defaults, want 200, got %d", resp.StatusCode)
	}
}

func TestProductDetailAndCarouselNav(t *testing.T) {
	app, _, _ := newApp(t, config.Config{})
	tok := csrfToken(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/product/dell-latitude-5400", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("detail: want 200, got %d", resp.StatusCode)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("detail must mint a session cookie")
	}

	// step the carousel forward; the redirect returns to the product
	form := url.Values{"csrf": {tok}, "dir": {"next"}}
	req := httptest.NewRequest("POST", "/product/dell-latitude-5400/image", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("navigate: want redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/product/dell-latitude-5400" {
		t.Fatalf("navigate must return to the product page, got %q", loc)
	}

	// detail now shows the second image
	req = httptest.NewRequest("GET", "/product/dell-latitude-5400", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "latitude-5400-2.jpg") {
		t.Fatal("carousel did not advance to the second image")
	}

	// bad direction is rejected
	form = url.Values{"csrf": {tok}, "dir": {"sideways"}}
	req = httptest.NewRequest("POST", "/product/dell-latitude-5400/image", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid direction: want 400, got %d", resp.StatusCode)
	}
}

func TestUnknownProductIs404(t *testing.T) {
	app, _, _ := newApp(t, config.Config{})
	resp, err := app.Test(httptest.NewRequest("GET", "/product/nope", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}
