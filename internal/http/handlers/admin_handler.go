package handlers

import (
	"royalstudy/internal/domain"
	applog "royalstudy/internal/log"
	"royalstudy/internal/repos"
	"royalstudy/internal/services"
	"royalstudy/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	Books     *repos.BookRepo
	Authors   *repos.AuthorRepo
	Cats      *repos.CategoryRepo
	Lookups   *repos.LookupRepo
	Schedules *services.ScheduleService
	Inquiries *repos.InquiryRepo
	Users     *repos.UserRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	inquiries, _ := h.Inquiries.ListLatest(10)
	return render(c, "admin_dashboard", fiber.Map{"Inquiries": inquiries})
}

// ---------- Books ----------

// GET /admin/books
func (h *AdminHandler) BooksPage(c *fiber.Ctx) error {
	books, err := h.Books.ListAll(200, 0)
	if err != nil {
		applog.Error(c, "admin.books.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load books"})
	}
	authors, _ := h.Authors.List()
	cats, _ := h.Cats.List()
	publishers, _ := h.Lookups.Publishers()
	return render(c, "admin_books", fiber.Map{
		"Books": books, "Authors": authors, "Categories": cats, "Publishers": publishers,
	})
}

func (h *AdminHandler) bookFromForm(c *fiber.Ctx, id string) (domain.Book, string) {
	title, ok := validate.Name(c.FormValue("title"))
	if !ok {
		return domain.Book{}, "title is required"
	}
	authorID, ok := validate.ID(c.FormValue("author_id"))
	if !ok {
		return domain.Book{}, "invalid author"
	}
	categoryID, ok := validate.ID(c.FormValue("category_id"))
	if !ok {
		return domain.Book{}, "invalid category"
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return domain.Book{}, "invalid price"
	}
	qty, ok := validate.Qty(c.FormValue("stock_qty"))
	if !ok {
		return domain.Book{}, "invalid stock quantity"
	}
	return domain.Book{
		ID:          id,
		Title:       title,
		TitleAr:     c.FormValue("title_ar"),
		AuthorID:    authorID,
		CategoryID:  categoryID,
		PublisherID: c.FormValue("publisher_id"),
		Price:       price,
		StockQty:    qty,
		Available:   c.FormValue("available") != "0",
		Featured:    c.FormValue("featured") == "1",
		NewRelease:  c.FormValue("new_release") == "1",
		CoverURL:    c.FormValue("cover_url"),
		Description: c.FormValue("description"),
	}, ""
}

// refreshCounts keeps the denormalized per-author/category book counts
// in step after any book write.
func (h *AdminHandler) refreshCounts(c *fiber.Ctx) {
	if err := h.Authors.RefreshBookCounts(); err != nil {
		applog.Error(c, "admin.books.refresh_counts.fail", err, nil)
	}
	if err := h.Cats.RefreshBookCounts(); err != nil {
		applog.Error(c, "admin.books.refresh_counts.fail", err, nil)
	}
}

// POST /admin/books
func (h *AdminHandler) CreateBook(c *fiber.Ctx) error {
	b, msg := h.bookFromForm(c, uuid.NewString())
	if msg != "" {
		return c.Status(400).SendString(msg)
	}
	if err := h.Books.Create(b); err != nil {
		applog.Error(c, "admin.books.create.fail", err, nil)
		return c.Status(400).SendString("could not create book")
	}
	h.refreshCounts(c)
	applog.Audit(c, "admin.books.create", map[string]any{"book": b.ID})
	return c.Redirect("/admin/books")
}

// POST /admin/books/:id/update
func (h *AdminHandler) UpdateBook(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	b, msg := h.bookFromForm(c, id)
	if msg != "" {
		return c.Status(400).SendString(msg)
	}
	if err := h.Books.Update(b); err != nil {
		applog.Error(c, "admin.books.update.fail", err, map[string]any{"book": id})
		return c.Status(400).SendString("could not update book")
	}
	h.refreshCounts(c)
	applog.Audit(c, "admin.books.update", map[string]any{"book": id})
	return c.Redirect("/admin/books")
}

// POST /admin/books/:id/delete
func (h *AdminHandler) DeleteBook(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Books.Delete(id); err != nil {
		applog.Error(c, "admin.books.delete.fail", err, map[string]any{"book": id})
		return c.Status(400).SendString("could not delete book")
	}
	h.refreshCounts(c)
	applog.Audit(c, "admin.books.delete", map[string]any{"book": id})
	return c.Redirect("/admin/books")
}

// POST /admin/books/:id/stock
func (h *AdminHandler) UpdateStock(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	qty, ok := validate.Qty(c.FormValue("qty"))
	if !ok {
		return c.Status(400).SendString("invalid quantity")
	}
	if err := h.Books.UpsertStock(id, qty); err != nil {
		applog.Error(c, "admin.books.stock.fail", err, map[string]any{"book": id, "qty": qty})
		return c.Status(400).SendString("could not save stock")
	}
	applog.Audit(c, "admin.books.stock", map[string]any{"book": id, "qty": qty})
	return c.Redirect("/admin/books")
}

// ---------- Calendar ----------

// GET /admin/calendar
func (h *AdminHandler) CalendarPage(c *fiber.Ctx) error {
	schedules, usedFallback := h.Schedules.List()
	if usedFallback {
		// Admin needs the truth, not the public fallback.
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load schedules"})
	}
	return render(c, "admin_calendar", fiber.Map{"Schedules": schedules})
}

func scheduleFromForm(c *fiber.Ctx, id string) (domain.Schedule, string) {
	title, ok := validate.Name(c.FormValue("title"))
	if !ok {
		return domain.Schedule{}, "title is required"
	}
	typ, ok := validate.ScheduleType(c.FormValue("type"))
	if !ok {
		return domain.Schedule{}, "invalid type"
	}
	date, ok := validate.Date(c.FormValue("date"))
	if !ok {
		return domain.Schedule{}, "invalid date"
	}
	status := c.FormValue("status")
	if status != "active" && status != "upcoming" {
		status = "upcoming"
	}
	return domain.Schedule{
		ID:           id,
		Title:        title,
		Description:  c.FormValue("description"),
		Type:         typ,
		Date:         date,
		Status:       status,
		Downloadable: c.FormValue("downloadable") == "1",
		FileURL:      c.FormValue("file_url"),
	}, ""
}

// POST /admin/calendar
func (h *AdminHandler) CreateSchedule(c *fiber.Ctx) error {
	s, msg := scheduleFromForm(c, uuid.NewString())
	if msg != "" {
		return c.Status(400).SendString(msg)
	}
	if err := h.Schedules.Create(s); err != nil {
		applog.Error(c, "admin.calendar.create.fail", err, nil)
		return c.Status(400).SendString("could not create schedule")
	}
	applog.Audit(c, "admin.calendar.create", map[string]any{"schedule": s.ID})
	return c.Redirect("/admin/calendar")
}

// POST /admin/calendar/:id/update
func (h *AdminHandler) UpdateSchedule(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	s, msg := scheduleFromForm(c, id)
	if msg != "" {
		return c.Status(400).SendString(msg)
	}
	if err := h.Schedules.Update(s); err != nil {
		applog.Error(c, "admin.calendar.update.fail", err, map[string]any{"schedule": id})
		return c.Status(400).SendString("could not update schedule")
	}
	applog.Audit(c, "admin.calendar.update", map[string]any{"schedule": id})
	return c.Redirect("/admin/calendar")
}

// POST /admin/calendar/:id/delete
func (h *AdminHandler) DeleteSchedule(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Schedules.Delete(id); err != nil {
		applog.Error(c, "admin.calendar.delete.fail", err, map[string]any{"schedule": id})
		return c.Status(400).SendString("could not delete schedule")
	}
	applog.Audit(c, "admin.calendar.delete", map[string]any{"schedule": id})
	return c.Redirect("/admin/calendar")
}

// ---------- Inquiries ----------

// GET /admin/inquiries
func (h *AdminHandler) InquiriesPage(c *fiber.Ctx) error {
	rows, err := h.Inquiries.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.inquiries.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inquiries"})
	}
	return render(c, "admin_inquiries", fiber.Map{"Inquiries": rows})
}

// ---------- Users ----------

// UsersPage lists users (excluding admins).
func (h *AdminHandler) UsersPage(c *fiber.Ctx) error {
	var users []struct {
		ID    string `db:"id"`
		Email string `db:"email"`
		Name  string `db:"name"`
		Role  string `db:"role"`
	}
	if err := h.Users.DB.Select(&users, `SELECT id,email,name,role FROM users WHERE role != 'ADMIN' ORDER BY email`); err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	return render(c, "admin_users", fiber.Map{"Users": users})
}

// DeleteUser deletes a user together with their sessions and attempts.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Users.DeleteUserCascade(id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(400).SendString("could not delete user")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin/users")
}
