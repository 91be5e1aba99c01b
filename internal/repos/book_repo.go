package repos

import (
	"royalstudy/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BookRepo struct{ db *sqlx.DB }

func NewBookRepo(db *sqlx.DB) *BookRepo { return &BookRepo{db: db} }

// BookFilter carries the catalog page's server-side filters. Empty
// fields are ignored; Q is matched as a substring of title/title_ar.
type BookFilter struct {
	Q          string
	CategoryID string
	AuthorID   string
}

const bookCols = `
  id, title, title_ar, author_id, category_id, publisher_id,
  price, stock_qty, available, featured, new_release, cover_url, description,
  created_at, COALESCE(updated_at,'') AS updated_at`

func (f BookFilter) where() (string, []any) {
	where := `available = 1`
	args := []any{}
	if f.Q != "" {
		where += ` AND (LOWER(title) LIKE ? OR title_ar LIKE ?)`
		args = append(args, "%"+f.Q+"%", "%"+f.Q+"%")
	}
	if f.CategoryID != "" {
		where += ` AND category_id = ?`
		args = append(args, f.CategoryID)
	}
	if f.AuthorID != "" {
		where += ` AND author_id = ?`
		args = append(args, f.AuthorID)
	}
	return where, args
}

func (r *BookRepo) List(f BookFilter, limit, offset int) ([]domain.Book, error) {
	where, args := f.where()
	sql := `SELECT ` + bookCols + ` FROM books WHERE ` + where + `
	  ORDER BY created_at DESC
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Book
	err := r.db.Select(&out, sql, args...)
	return out, err
}

// Count returns the number of books matching the same filter List uses,
// so page counts line up with the listed rows.
func (r *BookRepo) Count(f BookFilter) (int, error) {
	where, args := f.where()
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM books WHERE `+where, args...)
	return n, err
}

// ListAll returns every book regardless of availability. The admin
// catalog needs out-of-stock rows so they can still be edited and
// restocked.
func (r *BookRepo) ListAll(limit, offset int) ([]domain.Book, error) {
	var out []domain.Book
	err := r.db.Select(&out, `SELECT `+bookCols+` FROM books
	  ORDER BY created_at DESC
	  LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *BookRepo) Get(id string) (domain.Book, error) {
	var b domain.Book
	err := r.db.Get(&b, `SELECT `+bookCols+` FROM books WHERE id = ?`, id)
	return b, err
}

func (r *BookRepo) Featured(limit int) ([]domain.Book, error) {
	var out []domain.Book
	err := r.db.Select(&out, `SELECT `+bookCols+` FROM books
	  WHERE available = 1 AND featured = 1
	  ORDER BY created_at DESC LIMIT ?`, limit)
	return out, err
}

func (r *BookRepo) ByAuthor(authorID string) ([]domain.Book, error) {
	var out []domain.Book
	err := r.db.Select(&out, `SELECT `+bookCols+` FROM books
	  WHERE author_id = ?
	  ORDER BY created_at DESC`, authorID)
	return out, err
}

// Qty returns current stock for a book.
func (r *BookRepo) Qty(id string) (int, error) {
	var qty int
	err := r.db.Get(&qty, `SELECT stock_qty FROM books WHERE id = ?`, id)
	return qty, err
}

// ---------- Admin writes ----------

func (r *BookRepo) Create(b domain.Book) error {
	_, err := r.db.Exec(`
	  INSERT INTO books(id,title,title_ar,author_id,category_id,publisher_id,
	    price,stock_qty,available,featured,new_release,cover_url,description,created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)`,
		b.ID, b.Title, b.TitleAr, b.AuthorID, b.CategoryID, b.PublisherID,
		b.Price, b.StockQty, b.Available, b.Featured, b.NewRelease, b.CoverURL, b.Description)
	return err
}

func (r *BookRepo) Update(b domain.Book) error {
	_, err := r.db.Exec(`
	  UPDATE books SET title=?, title_ar=?, author_id=?, category_id=?, publisher_id=?,
	    price=?, stock_qty=?, available=?, featured=?, new_release=?, cover_url=?, description=?,
	    updated_at=CURRENT_TIMESTAMP
	  WHERE id=?`,
		b.Title, b.TitleAr, b.AuthorID, b.CategoryID, b.PublisherID,
		b.Price, b.StockQty, b.Available, b.Featured, b.NewRelease, b.CoverURL, b.Description, b.ID)
	return err
}

func (r *BookRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM books WHERE id=?`, id)
	return err
}

// UpsertStock sets stock for a book and flips availability to match.
func (r *BookRepo) UpsertStock(id string, qty int) error {
	_, err := r.db.Exec(`
	  UPDATE books SET stock_qty=?, available=CASE WHEN ? > 0 THEN 1 ELSE available END,
	    updated_at=CURRENT_TIMESTAMP
	  WHERE id=?`, qty, qty, id)
	return err
}
