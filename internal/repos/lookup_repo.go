package repos

import (
	"royalstudy/internal/domain"

	"github.com/jmoiron/sqlx"
)

// LookupRepo serves the small flat tables backing admin and filter UIs:
// publishers, product types, grades and subjects.
type LookupRepo struct{ db *sqlx.DB }

func NewLookupRepo(db *sqlx.DB) *LookupRepo { return &LookupRepo{db: db} }

func (r *LookupRepo) Publishers() ([]domain.Publisher, error) {
	var out []domain.Publisher
	err := r.db.Select(&out, `SELECT id, name, country FROM publishers ORDER BY name`)
	return out, err
}

func (r *LookupRepo) ProductTypes() ([]domain.ProductType, error) {
	var out []domain.ProductType
	err := r.db.Select(&out, `SELECT id, name FROM product_types ORDER BY name`)
	return out, err
}

func (r *LookupRepo) Grades() ([]domain.Grade, error) {
	var out []domain.Grade
	err := r.db.Select(&out, `SELECT id, name, level FROM grades ORDER BY level`)
	return out, err
}

func (r *LookupRepo) Subjects() ([]domain.Subject, error) {
	var out []domain.Subject
	err := r.db.Select(&out, `SELECT id, name FROM subjects ORDER BY name`)
	return out, err
}

func (r *LookupRepo) Products() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, product_type_id, grade_id, subject_id, title, price, stock_qty, active, created_at
	  FROM products WHERE active = 1 ORDER BY title`)
	return out, err
}
