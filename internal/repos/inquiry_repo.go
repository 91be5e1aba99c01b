package repos

import (
	"royalstudy/internal/domain"

	"github.com/jmoiron/sqlx"
)

type InquiryRepo struct{ db *sqlx.DB }

func NewInquiryRepo(db *sqlx.DB) *InquiryRepo { return &InquiryRepo{db: db} }

func (r *InquiryRepo) Create(i domain.Inquiry) error {
	_, err := r.db.Exec(`
	  INSERT INTO inquiries(id,customer_name,phone,email,book_id,message,created_at)
	  VALUES(?,?,?,?,?,?,CURRENT_TIMESTAMP)`,
		i.ID, i.CustomerName, i.Phone, i.Email, i.BookID, i.Message)
	return err
}

// InquirySummary joins the book title for the admin list.
type InquirySummary struct {
	ID           string `db:"id"`
	CustomerName string `db:"customer_name"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	BookID       string `db:"book_id"`
	BookTitle    string `db:"book_title"`
	Message      string `db:"message"`
	CreatedAt    string `db:"created_at"`
}

func (r *InquiryRepo) ListLatest(limit int) ([]InquirySummary, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []InquirySummary
	err := r.db.Select(&out, `
	  SELECT i.id, i.customer_name, i.phone, i.email, i.book_id,
	         COALESCE(b.title,'') AS book_title, i.message, i.created_at
	  FROM inquiries i LEFT JOIN books b ON b.id = i.book_id
	  ORDER BY datetime(i.created_at) DESC
	  LIMIT ?`, limit)
	return out, err
}
