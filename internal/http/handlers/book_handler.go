package handlers

import (
	"strings"

	applog "royalstudy/internal/log"
	"royalstudy/internal/repos"
	"royalstudy/internal/services"
	"royalstudy/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BookHandler struct {
	Catalog *services.CatalogService
}

func (h *BookHandler) Home(c *fiber.Ctx) error {
	featured, err := h.Catalog.FeaturedBooks(8)
	if err != nil {
		applog.Error(c, "home.featured.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the home page. Please retry."})
	}
	popular, err := h.Catalog.PopularCategories(6)
	if err != nil {
		applog.Error(c, "home.categories.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the home page. Please retry."})
	}
	return render(c, "home", fiber.Map{
		"Featured": featured, "PopularCategories": popular,
		"Placeholder": services.PlaceholderCover,
	})
}

// List serves /books with server-side pagination and filters. Every
// filter change arrives as a fresh request with the full parameter set.
func (h *BookHandler) List(c *fiber.Ctx) error {
	f := repos.BookFilter{}

	if rawQ := strings.TrimSpace(c.Query("q")); rawQ != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q"})
			return c.Status(fiber.StatusBadRequest).Render("books", fiber.Map{
				"Err": "Enter a valid search term", "Page": emptyPage(),
			})
		}
		f.Q = strings.ToLower(q)
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		if _, ok := validate.ID(cat); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return c.Status(fiber.StatusBadRequest).Render("books", fiber.Map{
				"Err": "Invalid category", "Page": emptyPage(),
			})
		}
		f.CategoryID = cat
	}
	if author := strings.TrimSpace(c.Query("author")); author != "" {
		if _, ok := validate.ID(author); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "author"})
			return c.Status(fiber.StatusBadRequest).Render("books", fiber.Map{
				"Err": "Invalid author", "Page": emptyPage(),
			})
		}
		f.AuthorID = author
	}

	page := validate.Page(c.Query("page"))
	result, err := h.Catalog.ListBooks(f, page, services.DefaultPageSize)
	if err != nil {
		applog.Error(c, "books.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load books. Please retry."})
	}

	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "books.categories.fail", err, nil)
		cats = nil // filters degrade, list still renders
	}

	return render(c, "books", fiber.Map{
		"Page": result, "Q": f.Q, "CategoryID": f.CategoryID, "AuthorID": f.AuthorID,
		"Categories": cats, "Placeholder": services.PlaceholderCover,
	})
}

func emptyPage() services.BookPage {
	return services.BookPage{Items: []services.BookView{}, Page: 1, PageSize: services.DefaultPageSize}
}

func (h *BookHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "book"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This book is no longer available"})
	}
	b, err := h.Catalog.GetBook(id)
	if err != nil || b.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This book is no longer available"})
	}
	return render(c, "book", fiber.Map{"B": b, "Placeholder": services.PlaceholderCover})
}

// Availability serves GET /api/v1/availability?bookId= as JSON.
func (h *BookHandler) Availability(c *fiber.Ctx) error {
	bookID, ok := validate.ID(c.Query("bookId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing bookId"})
	}
	avail, err := h.Catalog.CheckAvailability(bookID)
	if err != nil {
		applog.Error(c, "availability.fail", err, map[string]any{"book": bookID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not check availability"})
	}
	return c.JSON(avail)
}
