package repos

import (
	"royalstudy/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StudyMaterialRepo struct{ db *sqlx.DB }

func NewStudyMaterialRepo(db *sqlx.DB) *StudyMaterialRepo { return &StudyMaterialRepo{db: db} }

// ByKind lists tips or guide sections in display order.
func (r *StudyMaterialRepo) ByKind(kind string) ([]domain.StudyMaterial, error) {
	var out []domain.StudyMaterial
	err := r.db.Select(&out, `
	  SELECT id, kind, title, title_ar, body, position
	  FROM study_materials WHERE kind = ? ORDER BY position`, kind)
	return out, err
}
