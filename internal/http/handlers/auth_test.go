package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"royalstudy/internal/http/handlers"
	"royalstudy/internal/repos"
	"royalstudy/internal/services"
)

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func authApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db), TokenSecret: "test-secret"}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{Max: 2, Expiration: time.Minute}), authH.Login)
	app.Get("/register", authH.RegisterForm)
	app.Post("/register", authH.Register)
	app.Post("/logout", authH.Logout)
	return app, db
}

func csrfToken(t *testing.T, app *fiber.App, path string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

func postForm(t *testing.T, app *fiber.App, path, tok, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader("csrf="+tok+"&"+body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestPasswordsSeededAreHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var hashes []string
	if err := db.Select(&hashes, `SELECT password_hash FROM users`); err != nil {
		t.Fatalf("select hashes: %v", err)
	}
	if len(hashes) == 0 {
		t.Fatal("no users seeded")
	}
	for _, h := range hashes {
		if strings.Contains(h, "Passw0rd!") {
			t.Fatalf("hash contains plaintext password")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Fatalf("unexpected hash format: %s", h)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("Passw0rd!")); err != nil {
			t.Fatalf("seed hash does not validate known password: %v", err)
		}
	}
}

func TestLoginSuccessFailAndThrottle(t *testing.T) {
	app, _ := authApp(t)
	tok := csrfToken(t, app, "/login")

	// bad password -> 401
	resp := postForm(t, app, "/login", tok, "email=layla@royalstudy.test&password=wrongpass!")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad creds, got %d", resp.StatusCode)
	}

	// good password -> redirect with sid + token cookies set
	resp = postForm(t, app, "/login", tok, "email=layla@royalstudy.test&password=Passw0rd!")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", resp.StatusCode)
	}
	if extractCookie(resp, "sid") == "" {
		t.Fatal("sid cookie missing after login")
	}
	if extractCookie(resp, "token") == "" {
		t.Fatal("bearer token cookie missing after login")
	}

	// throttle after 2 attempts; a third should 429
	resp = postForm(t, app, "/login", tok, "email=layla@royalstudy.test&password=wrongpass!")
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after throttle, got %d", resp.StatusCode)
	}
}

func TestRegisterValidationNeverTouchesDB(t *testing.T) {
	app, db := authApp(t)
	tok := csrfToken(t, app, "/register")

	countUsers := func() int {
		var n int
		if err := db.Get(&n, `SELECT COUNT(*) FROM users`); err != nil {
			t.Fatal(err)
		}
		return n
	}
	before := countUsers()

	// Short password -> 400, nothing written.
	resp := postForm(t, app, "/register", tok, "name=Huda&email=huda@example.com&password=short&confirm_password=short")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	// Mismatched confirmation -> 400, nothing written.
	resp = postForm(t, app, "/register", tok, "name=Huda&email=huda@example.com&password=GoodPass1&confirm_password=Different1")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if countUsers() != before {
		t.Fatal("invalid registration reached the database")
	}

	// Valid -> redirect, one new USER row.
	resp = postForm(t, app, "/register", tok, "name=Huda&email=huda@example.com&password=GoodPass1&confirm_password=GoodPass1")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if countUsers() != before+1 {
		t.Fatal("valid registration did not create a user")
	}
	var role string
	if err := db.Get(&role, `SELECT role FROM users WHERE email='huda@example.com'`); err != nil {
		t.Fatal(err)
	}
	if role != "USER" {
		t.Fatalf("self-registration produced role %q", role)
	}

	// Duplicate email -> 400.
	resp = postForm(t, app, "/register", tok, "name=Huda&email=huda@example.com&password=GoodPass1&confirm_password=GoodPass1")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", resp.StatusCode)
	}
}

func TestLogoutAlwaysClearsCookies(t *testing.T) {
	app, db := authApp(t)
	tok := csrfToken(t, app, "/login")

	resp := postForm(t, app, "/login", tok, "email=layla@royalstudy.test&password=Passw0rd!")
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("no sid after login")
	}

	// Break the session store: logout must still clear cookies locally.
	if _, err := db.Exec(`DROP TABLE sessions`); err != nil {
		t.Fatal(err)
	}

	resp = postForm(t, app, "/logout", tok, "", &http.Cookie{Name: "sid", Value: sid})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	var sidCleared, tokenCleared bool
	for _, c := range resp.Cookies() {
		if c.Name == "sid" && c.Value == "" {
			sidCleared = true
		}
		if c.Name == "token" && c.Value == "" {
			tokenCleared = true
		}
	}
	if !sidCleared || !tokenCleared {
		t.Fatalf("cookies not cleared on logout: sid=%v token=%v", sidCleared, tokenCleared)
	}
}
