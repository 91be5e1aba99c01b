package services_test

import (
	"testing"

	"royalstudy/internal/repos"
	"royalstudy/internal/services"
)

func TestQuizGetHidesAnswers(t *testing.T) {
	db := seededDB(t)
	svc := services.NewQuizService(repos.NewQuizRepo(db))

	quiz, questions, err := svc.Get("q-math-01")
	if err != nil {
		t.Fatal(err)
	}
	if quiz.Title != "Derivatives warm-up" {
		t.Fatalf("wrong quiz: %q", quiz.Title)
	}
	if len(questions) != 2 {
		t.Fatalf("want 2 questions, got %d", len(questions))
	}
	if len(questions[0].Options) != 4 {
		t.Fatalf("want 4 options, got %d", len(questions[0].Options))
	}
}

func TestQuizGradeScoresServerSide(t *testing.T) {
	db := seededDB(t)
	svc := services.NewQuizService(repos.NewQuizRepo(db))

	// Both correct.
	a, err := svc.Grade("q-math-01", "sid-1", "", map[string]int{"qq-m1": 1, "qq-m2": 0})
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != 2 || a.Total != 2 {
		t.Fatalf("want 2/2, got %d/%d", a.Score, a.Total)
	}

	// One wrong, one unanswered.
	a, err = svc.Grade("q-math-01", "sid-1", "", map[string]int{"qq-m1": 0})
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != 0 || a.Total != 2 {
		t.Fatalf("want 0/2, got %d/%d", a.Score, a.Total)
	}

	// Unknown question ids are ignored, not scored.
	a, err = svc.Grade("q-math-01", "sid-1", "", map[string]int{"qq-m2": 0, "bogus": 1})
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != 1 {
		t.Fatalf("want 1, got %d", a.Score)
	}

	// Attempts are persisted and scoped to the session.
	stored, err := svc.Attempt(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Score != a.Score || stored.SessionID != "sid-1" {
		t.Fatalf("stored attempt mismatch: %+v", stored)
	}

	rows, err := svc.History("sid-1", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 attempts in history, got %d", len(rows))
	}
	if rows[0].QuizTitle != "Derivatives warm-up" {
		t.Fatalf("history missing quiz title: %+v", rows[0])
	}

	other, err := svc.History("sid-other", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Fatalf("history leaked across sessions: %d rows", len(other))
	}
}
