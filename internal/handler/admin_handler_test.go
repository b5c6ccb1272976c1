package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func loginForm(password string) *http.Request {
	form := url.Values{}
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	api, r, cleanup := newTestAPI(t, Options{AdminPassword: "admin"})
	defer cleanup()

	r.POST("/admin/login", api.Login)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, loginForm("not-the-password"))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestLoginAcceptsSharedSecret(t *testing.T) {
	api, r, cleanup := newTestAPI(t, Options{AdminPassword: "admin"})
	defer cleanup()

	r.POST("/admin/login", api.Login)
	auth := r.Group("/admin")
	auth.Use(api.AuthRequired())
	auth.GET("/dashboard", api.ShowDashboard)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, loginForm("admin"))

	if rr.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}

	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	// The persisted flag lets subsequent requests through with no expiry.
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected authenticated dashboard, got %d", rr.Code)
	}
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	api, r, cleanup := newTestAPI(t, Options{AdminPassword: "admin"})
	defer cleanup()

	auth := r.Group("/admin")
	auth.Use(api.AuthRequired())
	auth.GET("/dashboard", api.ShowDashboard)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
}

func TestLoginWithConfiguredHash(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	api, r, cleanup := newTestAPI(t, Options{
		AdminPassword:     "admin",
		AdminPasswordHash: string(hashed),
	})
	defer cleanup()

	r.POST("/admin/login", api.Login)

	// The hash takes precedence over the shared plaintext secret.
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, loginForm("admin"))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("plaintext secret must not match when a hash is set, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, loginForm("s3cret"))
	if rr.Code != http.StatusFound {
		t.Fatalf("expected redirect for hashed password, got %d", rr.Code)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	api, r, cleanup := newTestAPI(t, Options{AdminPassword: "admin"})
	defer cleanup()

	r.POST("/admin/login", api.Login)
	r.GET("/admin/logout", api.Logout)
	auth := r.Group("/admin")
	auth.Use(api.AuthRequired())
	auth.GET("/dashboard", api.ShowDashboard)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, loginForm("admin"))
	cookies := rr.Result().Cookies()

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	cookies = rr.Result().Cookies()

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected redirect after logout, got %d", rr.Code)
	}
}
