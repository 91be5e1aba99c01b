package handlers

import (
	applog "royalstudy/internal/log"
	"royalstudy/internal/repos"
	"royalstudy/internal/services"
	"royalstudy/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "categories.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories. Please retry."})
	}
	return render(c, "categories", fiber.Map{"Categories": cats})
}

// Detail shows a category with its sub-categories and first page of books.
func (h *CategoryHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	cat, children, err := h.Catalog.CategoryWithChildren(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	page := validate.Page(c.Query("page"))
	books, err := h.Catalog.ListBooks(repos.BookFilter{CategoryID: id}, page, services.DefaultPageSize)
	if err != nil {
		applog.Error(c, "category.books.fail", err, map[string]any{"category": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load books. Please retry."})
	}
	return render(c, "category", fiber.Map{
		"C": cat, "Children": children, "Page": books,
		"Placeholder": services.PlaceholderCover,
	})
}
