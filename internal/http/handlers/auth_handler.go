package handlers

import (
	"strings"
	"time"

	applog "royalstudy/internal/log"
	"royalstudy/internal/services"
	"royalstudy/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
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
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}
	if !validate.Password(pass) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}

	_, token, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}

	// Bearer token for the JSON API; readable by scripts on purpose.
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Errors": map[string]string{}})
}

// Register validates synchronously and never touches the database when
// any field fails.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	pass := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	errors := map[string]string{}
	cleanName, ok := validate.Name(name)
	if !ok {
		errors["name"] = "Enter your name"
	}
	cleanEmail, ok := validate.Email(email)
	if !ok {
		errors["email"] = "Enter a valid email address"
	}
	if !validate.Password(pass) {
		errors["password"] = "Password must be at least 8 characters"
	}
	if pass != confirm {
		errors["confirm_password"] = "Passwords do not match"
	}
	if len(errors) > 0 {
		applog.Security(c, "auth.register.invalid", map[string]any{"fields": len(errors)})
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
			"Errors": errors, "Name": name, "Email": email,
		})
	}

	sid := ensureSID(c)
	_, token, err := h.Auth.Register(sid, cleanEmail, cleanName, pass)
	if err != nil {
		msg := "Could not create the account. Please try again."
		if err == services.ErrEmailTaken {
			msg = "This email is already registered"
		}
		applog.Error(c, "auth.register.fail", err, map[string]any{"email": cleanEmail})
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
			"Errors": map[string]string{"email": msg}, "Name": name, "Email": email,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	applog.Audit(c, "auth.register.success", map[string]any{"email": cleanEmail})
	return c.Redirect("/")
}

// Logout is always locally effective: the cookies are cleared even when
// the session unbind fails.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Auth.Logout(sid); err != nil {
		applog.Error(c, "auth.logout.unbind.fail", err, nil)
	}
	expired := time.Now().Add(-1 * time.Hour)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  expired,
	})
	c.Cookie(&fiber.Cookie{
		Name:    "token",
		Value:   "",
		Path:    "/",
		Expires: expired,
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}

// Me serves GET /api/v1/me from the Authorization bearer token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}
	u, err := h.Auth.UserFromToken(token)
	if err != nil {
		applog.Security(c, "auth.token.invalid", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}
	return c.JSON(fiber.Map{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role})
}
