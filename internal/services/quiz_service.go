package services

import (
	"encoding/json"
	"errors"

	"royalstudy/internal/domain"
	"royalstudy/internal/repos"

	"github.com/google/uuid"
)

var ErrQuizInactive = errors.New("quiz is not active")

type QuizService struct {
	Repo *repos.QuizRepo
}

func NewQuizService(r *repos.QuizRepo) *QuizService { return &QuizService{Repo: r} }

// QuestionView is what a quiz taker sees: options without the answer key.
type QuestionView struct {
	ID       string
	Position int
	Prompt   string
	Options  []string
}

func (s *QuizService) List(subjectID, gradeID string) ([]domain.Quiz, error) {
	return s.Repo.List(subjectID, gradeID)
}

func (s *QuizService) Get(id string) (domain.Quiz, []QuestionView, error) {
	q, err := s.Repo.Get(id)
	if err != nil {
		return domain.Quiz{}, nil, err
	}
	if !q.Active {
		return domain.Quiz{}, nil, ErrQuizInactive
	}
	questions, err := s.Repo.Questions(id)
	if err != nil {
		return domain.Quiz{}, nil, err
	}
	views := make([]QuestionView, 0, len(questions))
	for _, qq := range questions {
		var opts []string
		if err := json.Unmarshal([]byte(qq.OptionsJSON), &opts); err != nil {
			return domain.Quiz{}, nil, err
		}
		views = append(views, QuestionView{ID: qq.ID, Position: qq.Position, Prompt: qq.Prompt, Options: opts})
	}
	return q, views, nil
}

// Grade scores the submitted answers (question id -> chosen option
// index) server-side and persists the attempt. Unanswered or unknown
// questions count as wrong.
func (s *QuizService) Grade(quizID, sessionID, userID string, answers map[string]int) (domain.QuizAttempt, error) {
	questions, err := s.Repo.Questions(quizID)
	if err != nil {
		return domain.QuizAttempt{}, err
	}
	if len(questions) == 0 {
		return domain.QuizAttempt{}, errors.New("quiz has no questions")
	}

	score := 0
	for _, q := range questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectIndex {
			score++
		}
	}

	a := domain.QuizAttempt{
		ID:        uuid.NewString(),
		QuizID:    quizID,
		SessionID: sessionID,
		UserID:    userID,
		Score:     score,
		Total:     len(questions),
	}
	if err := s.Repo.InsertAttempt(a); err != nil {
		return domain.QuizAttempt{}, err
	}
	return a, nil
}

func (s *QuizService) Attempt(id string) (domain.QuizAttempt, error) {
	return s.Repo.GetAttempt(id)
}

func (s *QuizService) History(sessionID, userID string) ([]repos.AttemptRow, error) {
	return s.Repo.AttemptsFor(sessionID, userID)
}
