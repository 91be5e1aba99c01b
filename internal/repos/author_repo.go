package repos

import (
	"royalstudy/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AuthorRepo struct{ db *sqlx.DB }

func NewAuthorRepo(db *sqlx.DB) *AuthorRepo { return &AuthorRepo{db: db} }

const authorCols = `
  id, name, name_ar, bio, birth_year, country, city, specialization,
  awards_json, website, book_count, created_at`

func (r *AuthorRepo) List() ([]domain.Author, error) {
	var out []domain.Author
	err := r.db.Select(&out, `SELECT `+authorCols+` FROM authors ORDER BY name`)
	return out, err
}

func (r *AuthorRepo) Get(id string) (domain.Author, error) {
	var a domain.Author
	err := r.db.Get(&a, `SELECT `+authorCols+` FROM authors WHERE id = ?`, id)
	return a, err
}

// RefreshBookCounts recomputes the denormalized per-author book count.
func (r *AuthorRepo) RefreshBookCounts() error {
	_, err := r.db.Exec(`UPDATE authors
	  SET book_count=(SELECT COUNT(*) FROM books WHERE books.author_id=authors.id)`)
	return err
}
