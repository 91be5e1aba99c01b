package handlers

import (
	"strings"

	applog "royalstudy/internal/log"
	"royalstudy/internal/services"
	"royalstudy/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	Inquiries *services.InquiryService
	Catalog   *services.CatalogService
}

func (h *ContactHandler) Form(c *fiber.Ctx) error {
	data := fiber.Map{}
	if bookID, ok := validate.ID(c.Query("book")); ok {
		if b, err := h.Catalog.GetBook(bookID); err == nil {
			data["B"] = b
		}
	}
	return render(c, "contact", data)
}

// Submit validates the form, best-effort persists the inquiry and
// renders the confirmation page that opens WhatsApp. A failed insert
// is logged and swallowed; the visitor always gets their link.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).Render("contact", fiber.Map{"Err": "Enter your name"})
	}
	phone := ""
	if raw := strings.TrimSpace(c.FormValue("phone")); raw != "" {
		p, ok := validate.Phone(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "phone"})
			return c.Status(fiber.StatusBadRequest).Render("contact", fiber.Map{"Err": "Enter a valid phone number", "Name": name})
		}
		phone = p
	}
	email := ""
	if raw := strings.TrimSpace(c.FormValue("email")); raw != "" {
		e, ok := validate.Email(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "email"})
			return c.Status(fiber.StatusBadRequest).Render("contact", fiber.Map{"Err": "Enter a valid email", "Name": name})
		}
		email = e
	}
	bookID := ""
	if raw := strings.TrimSpace(c.FormValue("bookId")); raw != "" {
		id, ok := validate.ID(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).Render("contact", fiber.Map{"Err": "Invalid book", "Name": name})
		}
		bookID = id
	}
	note := strings.TrimSpace(c.FormValue("message"))
	// Rune cap so a multi-byte Arabic character is never cut in half.
	if r := []rune(note); len(r) > 500 {
		note = string(r[:500])
	}

	links, persistErr := h.Inquiries.Submit(services.InquiryForm{
		CustomerName: name,
		Phone:        phone,
		Email:        email,
		BookID:       bookID,
		Note:         note,
	})
	if persistErr != nil {
		// Best-effort record only; the conversation still opens.
		applog.Error(c, "inquiry.persist.fail", persistErr, map[string]any{"book": bookID})
	} else {
		applog.Audit(c, "inquiry.create", map[string]any{"book": bookID})
	}

	// Android gets the native URI first with a timed web fallback; the
	// confirmation template handles the delay client-side.
	ua := strings.ToLower(c.Get("User-Agent"))
	isAndroid := strings.Contains(ua, "android")

	return render(c, "inquiry_sent", fiber.Map{
		"WebURI":    links.WebURI,
		"NativeURI": links.NativeURI,
		"Android":   isAndroid,
	})
}
