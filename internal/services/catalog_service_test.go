package services_test

import (
	"fmt"
	"testing"

	"royalstudy/internal/domain"
	"royalstudy/internal/repos"
	"royalstudy/internal/services"

	"github.com/jmoiron/sqlx"
)

func seededDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func catalog(db *sqlx.DB) *services.CatalogService {
	return services.NewCatalogService(repos.NewBookRepo(db), repos.NewAuthorRepo(db), repos.NewCategoryRepo(db))
}

func TestListBooksPagination(t *testing.T) {
	db := seededDB(t)
	bookRepo := repos.NewBookRepo(db)
	svc := catalog(db)

	// Seed leaves 3 available books; add 30 more for 33 total.
	for i := 0; i < 30; i++ {
		b := domain.Book{
			ID:         fmt.Sprintf("b-extra-%02d", i),
			Title:      fmt.Sprintf("Extra Book %02d", i),
			AuthorID:   "a-khalidi",
			CategoryID: "sciences",
			Price:      5,
			StockQty:   10,
			Available:  true,
		}
		if err := bookRepo.Create(b); err != nil {
			t.Fatalf("create book %d: %v", i, err)
		}
	}

	page, err := svc.ListBooks(repos.BookFilter{}, 1, services.DefaultPageSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 12 {
		t.Fatalf("want 12 items on page 1, got %d", len(page.Items))
	}
	if page.Total != 33 {
		t.Fatalf("want total 33, got %d", page.Total)
	}
	if page.TotalPages != 3 {
		t.Fatalf("want 3 pages for 33 books, got %d", page.TotalPages)
	}
	if page.PrevPage != 0 || page.NextPage != 2 {
		t.Fatalf("page 1 pager wrong: prev=%d next=%d", page.PrevPage, page.NextPage)
	}

	last, err := svc.ListBooks(repos.BookFilter{}, 3, services.DefaultPageSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(last.Items) != 9 {
		t.Fatalf("want 9 items on last page, got %d", len(last.Items))
	}
	if last.PrevPage != 2 || last.NextPage != 0 {
		t.Fatalf("last page pager wrong: prev=%d next=%d", last.PrevPage, last.NextPage)
	}

	// Count and List share the filter, so filtered page counts line up.
	filtered, err := svc.ListBooks(repos.BookFilter{CategoryID: "sciences"}, 1, services.DefaultPageSize)
	if err != nil {
		t.Fatal(err)
	}
	if filtered.Total != 30 {
		t.Fatalf("want 30 science books, got %d", filtered.Total)
	}
	if filtered.TotalPages != 3 {
		t.Fatalf("want 3 filtered pages, got %d", filtered.TotalPages)
	}
}

func TestListBooksExcludesUnavailable(t *testing.T) {
	db := seededDB(t)
	svc := catalog(db)

	page, err := svc.ListBooks(repos.BookFilter{}, 1, services.DefaultPageSize)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range page.Items {
		if b.ID == "b-eng12" {
			t.Fatal("unavailable book listed in catalog")
		}
	}
}

func TestCheckAvailabilityThresholds(t *testing.T) {
	db := seededDB(t)
	svc := catalog(db)

	a, err := svc.CheckAvailability("b-math12") // qty 20
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != "IN_STOCK" || a.Qty != 20 {
		t.Fatalf("want IN_STOCK(20), got %+v", a)
	}

	a, err = svc.CheckAvailability("b-phys12") // qty 3
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != "LOW_STOCK" {
		t.Fatalf("want LOW_STOCK, got %+v", a)
	}

	// Unknown book is not an error: it reads as out of stock.
	a, err = svc.CheckAvailability("no-such-book")
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != "OUT_OF_STOCK" || a.Qty != 0 {
		t.Fatalf("want OUT_OF_STOCK(0), got %+v", a)
	}
}

func TestBookViewNormalization(t *testing.T) {
	db := seededDB(t)
	bookRepo := repos.NewBookRepo(db)
	svc := catalog(db)

	// Seeded book prefers the Arabic title.
	v, err := svc.GetBook("b-math12")
	if err != nil {
		t.Fatal(err)
	}
	if v.DisplayTitle != "رياضيات التوجيهي" {
		t.Fatalf("want Arabic display title, got %q", v.DisplayTitle)
	}

	// A book with no Arabic title, cover or known author gets fallbacks,
	// never empty strings.
	bare := domain.Book{
		ID:         "b-bare",
		Title:      "Bare Book",
		AuthorID:   "a-missing",
		CategoryID: "sciences",
		Price:      1,
		Available:  true,
	}
	if err := bookRepo.Create(bare); err != nil {
		t.Fatal(err)
	}
	v, err = svc.GetBook("b-bare")
	if err != nil {
		t.Fatal(err)
	}
	if v.DisplayTitle != "Bare Book" {
		t.Fatalf("want English title fallback, got %q", v.DisplayTitle)
	}
	if v.AuthorName != "غير معروف" {
		t.Fatalf("want unknown-author fallback, got %q", v.AuthorName)
	}
	if v.CoverURL != services.PlaceholderCover {
		t.Fatal("want placeholder cover for missing cover")
	}
}
