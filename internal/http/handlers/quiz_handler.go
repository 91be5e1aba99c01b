package handlers

import (
	"strconv"
	"strings"

	applog "royalstudy/internal/log"
	"royalstudy/internal/repos"
	"royalstudy/internal/services"
	"royalstudy/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type QuizHandler struct {
	Quizzes *services.QuizService
	Lookups *repos.LookupRepo
	Auth    *services.AuthService
}

func (h *QuizHandler) List(c *fiber.Ctx) error {
	subjectID := strings.TrimSpace(c.Query("subject"))
	gradeID := strings.TrimSpace(c.Query("grade"))
	if subjectID != "" {
		if _, ok := validate.ID(subjectID); !ok {
			subjectID = ""
		}
	}
	if gradeID != "" {
		if _, ok := validate.ID(gradeID); !ok {
			gradeID = ""
		}
	}

	quizzes, err := h.Quizzes.List(subjectID, gradeID)
	if err != nil {
		applog.Error(c, "quizzes.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load quizzes. Please retry."})
	}
	subjects, _ := h.Lookups.Subjects()
	grades, _ := h.Lookups.Grades()
	return render(c, "quizzes", fiber.Map{
		"Quizzes": quizzes, "Subjects": subjects, "Grades": grades,
		"SubjectID": subjectID, "GradeID": gradeID,
	})
}

func (h *QuizHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Quiz not found"})
	}
	quiz, questions, err := h.Quizzes.Get(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Quiz not found"})
	}
	return render(c, "quiz", fiber.Map{"Quiz": quiz, "Questions": questions})
}

// Attempt grades a submission. Answers arrive as form fields named
// after question ids holding the chosen option index.
func (h *QuizHandler) Attempt(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Quiz not found"})
	}
	_, questions, err := h.Quizzes.Get(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Quiz not found"})
	}

	answers := map[string]int{}
	for _, q := range questions {
		raw := c.FormValue("answer_" + q.ID)
		if raw == "" {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			answers[q.ID] = n
		}
	}

	sid := ensureSID(c)
	userID := ""
	if u, err := h.Auth.CurrentUser(sid); err == nil && u != nil {
		userID = u.ID
	}

	attempt, err := h.Quizzes.Grade(id, sid, userID, answers)
	if err != nil {
		applog.Error(c, "quiz.grade.fail", err, map[string]any{"quiz": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not grade the quiz. Please retry."})
	}
	applog.Audit(c, "quiz.attempt", map[string]any{"quiz": id, "score": attempt.Score, "total": attempt.Total})
	return c.Redirect("/quiz/" + id + "/results/" + attempt.ID)
}

func (h *QuizHandler) Results(c *fiber.Ctx) error {
	attemptID, ok := validate.ID(c.Params("attempt"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Result not found"})
	}
	attempt, err := h.Quizzes.Attempt(attemptID)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Result not found"})
	}
	// Results are private to the session that produced them.
	if attempt.SessionID != c.Cookies("sid") {
		applog.Security(c, "access.denied.attempt", map[string]any{"attempt": attemptID})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Result not found"})
	}
	quiz, _, err := h.Quizzes.Get(attempt.QuizID)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Result not found"})
	}
	return render(c, "quiz_result", fiber.Map{"Quiz": quiz, "Attempt": attempt})
}

func (h *QuizHandler) History(c *fiber.Ctx) error {
	sid := ensureSID(c)
	userID := ""
	if u, err := h.Auth.CurrentUser(sid); err == nil && u != nil {
		userID = u.ID
	}
	attempts, err := h.Quizzes.History(sid, userID)
	if err != nil {
		applog.Error(c, "quiz.history.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load attempts. Please retry."})
	}
	return render(c, "attempts", fiber.Map{"Attempts": attempts})
}
