package repos

import (
	"royalstudy/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryCols = `
  id, name, name_ar, description, icon, featured, popular,
  COALESCE(parent_id,'') AS parent_id, book_count, subcategory_count,
  tags_json, created_at`

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT `+categoryCols+` FROM categories ORDER BY name`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT `+categoryCols+` FROM categories WHERE id = ?`, id)
	return c, err
}

func (r *CategoryRepo) Popular(limit int) ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT `+categoryCols+` FROM categories
	  WHERE popular = 1 ORDER BY book_count DESC LIMIT ?`, limit)
	return out, err
}

// Children returns one level of sub-categories.
func (r *CategoryRepo) Children(parentID string) ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT `+categoryCols+` FROM categories
	  WHERE parent_id = ? ORDER BY name`, parentID)
	return out, err
}

func (r *CategoryRepo) RefreshBookCounts() error {
	_, err := r.db.Exec(`UPDATE categories
	  SET book_count=(SELECT COUNT(*) FROM books WHERE books.category_id=categories.id)`)
	return err
}
