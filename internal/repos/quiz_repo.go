package repos

import (
	"royalstudy/internal/domain"

	"github.com/jmoiron/sqlx"
)

type QuizRepo struct{ db *sqlx.DB }

func NewQuizRepo(db *sqlx.DB) *QuizRepo { return &QuizRepo{db: db} }

func (r *QuizRepo) List(subjectID, gradeID string) ([]domain.Quiz, error) {
	where := `active = 1`
	args := []any{}
	if subjectID != "" {
		where += ` AND subject_id = ?`
		args = append(args, subjectID)
	}
	if gradeID != "" {
		where += ` AND grade_id = ?`
		args = append(args, gradeID)
	}
	var out []domain.Quiz
	err := r.db.Select(&out, `
	  SELECT id, title, subject_id, grade_id, duration_minutes, active, created_at
	  FROM quizzes WHERE `+where+` ORDER BY created_at DESC`, args...)
	return out, err
}

func (r *QuizRepo) Get(id string) (domain.Quiz, error) {
	var q domain.Quiz
	err := r.db.Get(&q, `
	  SELECT id, title, subject_id, grade_id, duration_minutes, active, created_at
	  FROM quizzes WHERE id = ?`, id)
	return q, err
}

func (r *QuizRepo) Questions(quizID string) ([]domain.QuizQuestion, error) {
	var out []domain.QuizQuestion
	err := r.db.Select(&out, `
	  SELECT id, quiz_id, position, prompt, options_json, correct_index
	  FROM quiz_questions WHERE quiz_id = ? ORDER BY position`, quizID)
	return out, err
}

func (r *QuizRepo) InsertAttempt(a domain.QuizAttempt) error {
	_, err := r.db.Exec(`
	  INSERT INTO quiz_attempts(id,quiz_id,session_id,user_id,score,total,created_at)
	  VALUES(?,?,?,NULLIF(?,''),?,?,CURRENT_TIMESTAMP)`,
		a.ID, a.QuizID, a.SessionID, a.UserID, a.Score, a.Total)
	return err
}

func (r *QuizRepo) GetAttempt(id string) (domain.QuizAttempt, error) {
	var a domain.QuizAttempt
	err := r.db.Get(&a, `
	  SELECT id, quiz_id, session_id, COALESCE(user_id,'') AS user_id, score, total, created_at
	  FROM quiz_attempts WHERE id = ?`, id)
	return a, err
}

// AttemptRow joins the quiz title for the history page.
type AttemptRow struct {
	ID        string `db:"id"`
	QuizID    string `db:"quiz_id"`
	QuizTitle string `db:"quiz_title"`
	Score     int    `db:"score"`
	Total     int    `db:"total"`
	CreatedAt string `db:"created_at"`
}

// AttemptsFor lists attempts made in a session or by a user, newest first.
func (r *QuizRepo) AttemptsFor(sessionID, userID string) ([]AttemptRow, error) {
	var out []AttemptRow
	err := r.db.Select(&out, `
	  SELECT a.id, a.quiz_id, q.title AS quiz_title, a.score, a.total, a.created_at
	  FROM quiz_attempts a JOIN quizzes q ON q.id = a.quiz_id
	  WHERE a.session_id = ? OR (? != '' AND a.user_id = ?)
	  ORDER BY datetime(a.created_at) DESC`, sessionID, userID, userID)
	return out, err
}
