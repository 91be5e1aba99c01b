package services

import (
	"database/sql"

	"royalstudy/internal/domain"
	"royalstudy/internal/repos"
)

const DefaultPageSize = 12

// PlaceholderCover is an inline image used wherever a cover, author or
// category image is missing or fails to load.
const PlaceholderCover = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHdpZHRoPSIyMDAiIGhlaWdodD0iMjgwIj48cmVjdCB3aWR0aD0iMTAwJSIgaGVpZ2h0PSIxMDAlIiBmaWxsPSIjZWVlIi8+PHRleHQgeD0iNTAlIiB5PSI1MCUiIHRleHQtYW5jaG9yPSJtaWRkbGUiIGZpbGw9IiM5OTkiPlJveWFsIFN0dWR5PC90ZXh0Pjwvc3ZnPg=="

type CatalogService struct {
	Books   *repos.BookRepo
	Authors *repos.AuthorRepo
	Cats    *repos.CategoryRepo
}

func NewCatalogService(books *repos.BookRepo, authors *repos.AuthorRepo, cats *repos.CategoryRepo) *CatalogService {
	return &CatalogService{Books: books, Authors: authors, Cats: cats}
}

// BookView is the fully-specified display shape: no optional fields are
// left to per-call-site fallback chains.
type BookView struct {
	ID           string
	DisplayTitle string
	Title        string
	TitleAr      string
	AuthorID     string
	AuthorName   string
	CategoryID   string
	CategoryName string
	Price        float64
	StockQty     int
	Availability domain.Availability
	Featured     bool
	NewRelease   bool
	CoverURL     string
	Description  string
}

type BookPage struct {
	Items      []BookView
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	PrevPage   int // 0 when there is no previous page
	NextPage   int // 0 when there is no next page
}

func availabilityFor(qty int) domain.Availability {
	status := "OUT_OF_STOCK"
	switch {
	case qty >= 5:
		status = "IN_STOCK"
	case qty > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: qty}
}

func (s *CatalogService) view(b domain.Book, authorName, categoryName string) BookView {
	title := b.TitleAr
	if title == "" {
		title = b.Title
	}
	if title == "" {
		title = "بدون عنوان"
	}
	cover := b.CoverURL
	if cover == "" {
		cover = PlaceholderCover
	}
	if authorName == "" {
		authorName = "غير معروف"
	}
	if categoryName == "" {
		categoryName = "عام"
	}
	return BookView{
		ID:           b.ID,
		DisplayTitle: title,
		Title:        b.Title,
		TitleAr:      b.TitleAr,
		AuthorID:     b.AuthorID,
		AuthorName:   authorName,
		CategoryID:   b.CategoryID,
		CategoryName: categoryName,
		Price:        b.Price,
		StockQty:     b.StockQty,
		Availability: availabilityFor(b.StockQty),
		Featured:     b.Featured,
		NewRelease:   b.NewRelease,
		CoverURL:     cover,
		Description:  b.Description,
	}
}

// names loads author/category display names once per page instead of per row.
func (s *CatalogService) names() (map[string]string, map[string]string, error) {
	authors, err := s.Authors.List()
	if err != nil {
		return nil, nil, err
	}
	cats, err := s.Cats.List()
	if err != nil {
		return nil, nil, err
	}
	an := make(map[string]string, len(authors))
	for _, a := range authors {
		n := a.NameAr
		if n == "" {
			n = a.Name
		}
		an[a.ID] = n
	}
	cn := make(map[string]string, len(cats))
	for _, c := range cats {
		n := c.NameAr
		if n == "" {
			n = c.Name
		}
		cn[c.ID] = n
	}
	return an, cn, nil
}

// ListBooks returns one page of the catalog plus the total page count
// for the same filter. Page numbers are 1-based.
func (s *CatalogService) ListBooks(f repos.BookFilter, page, pageSize int) (BookPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	offset := (page - 1) * pageSize

	books, err := s.Books.List(f, pageSize, offset)
	if err != nil {
		return BookPage{}, err
	}
	total, err := s.Books.Count(f)
	if err != nil {
		return BookPage{}, err
	}
	an, cn, err := s.names()
	if err != nil {
		return BookPage{}, err
	}

	items := make([]BookView, 0, len(books))
	for _, b := range books {
		items = append(items, s.view(b, an[b.AuthorID], cn[b.CategoryID]))
	}
	totalPages := (total + pageSize - 1) / pageSize
	result := BookPage{Items: items, Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
	if page > 1 {
		result.PrevPage = page - 1
	}
	if page < totalPages {
		result.NextPage = page + 1
	}
	return result, nil
}

func (s *CatalogService) GetBook(id string) (BookView, error) {
	b, err := s.Books.Get(id)
	if err != nil {
		return BookView{}, err
	}
	var authorName, categoryName string
	if a, err := s.Authors.Get(b.AuthorID); err == nil {
		authorName = a.NameAr
		if authorName == "" {
			authorName = a.Name
		}
	}
	if c, err := s.Cats.Get(b.CategoryID); err == nil {
		categoryName = c.NameAr
		if categoryName == "" {
			categoryName = c.Name
		}
	}
	return s.view(b, authorName, categoryName), nil
}

func (s *CatalogService) FeaturedBooks(limit int) ([]BookView, error) {
	books, err := s.Books.Featured(limit)
	if err != nil {
		return nil, err
	}
	an, cn, err := s.names()
	if err != nil {
		return nil, err
	}
	out := make([]BookView, 0, len(books))
	for _, b := range books {
		out = append(out, s.view(b, an[b.AuthorID], cn[b.CategoryID]))
	}
	return out, nil
}

func (s *CatalogService) ListAuthors() ([]domain.Author, error) {
	return s.Authors.List()
}

// AuthorWithBooks loads an author page: the record plus their books.
func (s *CatalogService) AuthorWithBooks(id string) (domain.Author, []BookView, error) {
	a, err := s.Authors.Get(id)
	if err != nil {
		return domain.Author{}, nil, err
	}
	books, err := s.Books.ByAuthor(id)
	if err != nil {
		return domain.Author{}, nil, err
	}
	name := a.NameAr
	if name == "" {
		name = a.Name
	}
	_, cn, err := s.names()
	if err != nil {
		return domain.Author{}, nil, err
	}
	out := make([]BookView, 0, len(books))
	for _, b := range books {
		out = append(out, s.view(b, name, cn[b.CategoryID]))
	}
	return a, out, nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) PopularCategories(limit int) ([]domain.Category, error) {
	return s.Cats.Popular(limit)
}

func (s *CatalogService) CategoryWithChildren(id string) (domain.Category, []domain.Category, error) {
	c, err := s.Cats.Get(id)
	if err != nil {
		return domain.Category{}, nil, err
	}
	children, err := s.Cats.Children(id)
	if err != nil {
		return domain.Category{}, nil, err
	}
	return c, children, nil
}

// CheckAvailability maps stock to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *CatalogService) CheckAvailability(bookID string) (domain.Availability, error) {
	qty, err := s.Books.Qty(bookID)
	if err != nil {
		// Unknown book: treat as no stock.
		if err == sql.ErrNoRows {
			return domain.Availability{Status: "OUT_OF_STOCK", Qty: 0}, nil
		}
		return domain.Availability{}, err
	}
	return availabilityFor(qty), nil
}
