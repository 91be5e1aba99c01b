package domain

type Quiz struct {
	ID              string `db:"id"`
	Title           string `db:"title"`
	SubjectID       string `db:"subject_id"`
	GradeID         string `db:"grade_id"`
	DurationMinutes int    `db:"duration_minutes"`
	Active          bool   `db:"active"`
	CreatedAt       string `db:"created_at"`
}

type QuizQuestion struct {
	ID           string `db:"id"`
	QuizID       string `db:"quiz_id"`
	Position     int    `db:"position"`
	Prompt       string `db:"prompt"`
	OptionsJSON  string `db:"options_json"`
	CorrectIndex int    `db:"correct_index"`
}

type QuizAttempt struct {
	ID        string `db:"id"`
	QuizID    string `db:"quiz_id"`
	SessionID string `db:"session_id"`
	UserID    string `db:"user_id"`
	Score     int    `db:"score"`
	Total     int    `db:"total"`
	CreatedAt string `db:"created_at"`
}
