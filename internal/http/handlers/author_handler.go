package handlers

import (
	applog "royalstudy/internal/log"
	"royalstudy/internal/services"
	"royalstudy/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthorHandler struct {
	Catalog *services.CatalogService
}

func (h *AuthorHandler) List(c *fiber.Ctx) error {
	authors, err := h.Catalog.ListAuthors()
	if err != nil {
		applog.Error(c, "authors.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load authors. Please retry."})
	}
	return render(c, "authors", fiber.Map{"Authors": authors, "Placeholder": services.PlaceholderCover})
}

func (h *AuthorHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Author not found"})
	}
	author, books, err := h.Catalog.AuthorWithBooks(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Author not found"})
	}
	return render(c, "author", fiber.Map{"A": author, "Books": books, "Placeholder": services.PlaceholderCover})
}
