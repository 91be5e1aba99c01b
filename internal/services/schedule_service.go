package services

import (
	"royalstudy/internal/domain"
	"royalstudy/internal/repos"
)

type ScheduleService struct {
	Repo *repos.ScheduleRepo
}

func NewScheduleService(r *repos.ScheduleRepo) *ScheduleService { return &ScheduleService{Repo: r} }

// fallbackSchedules is shown when the calendar cannot be loaded. The
// public calendar never renders an error page.
func fallbackSchedules() []domain.Schedule {
	return []domain.Schedule{
		{
			ID:           "fallback-exams-1",
			Title:        "جدول امتحانات الشهر الأول",
			Description:  "First monthly exam timetable",
			Type:         "exams",
			Date:         "2026-10-05",
			Status:       "upcoming",
			Downloadable: false,
		},
		{
			ID:           "fallback-term-2",
			Title:        "رزنامة الفصل الدراسي الثاني",
			Description:  "Second-term study calendar",
			Type:         "calendar",
			Date:         "2027-02-01",
			Status:       "upcoming",
			Downloadable: false,
		},
	}
}

// List returns all schedules, or the fixed fallback pair when the load
// fails. The second return reports whether the fallback was used.
func (s *ScheduleService) List() ([]domain.Schedule, bool) {
	out, err := s.Repo.List()
	if err != nil {
		return fallbackSchedules(), true
	}
	return out, false
}

func (s *ScheduleService) Get(id string) (domain.Schedule, error) {
	return s.Repo.Get(id)
}

func (s *ScheduleService) Create(sch domain.Schedule) error {
	if sch.Status == "" {
		sch.Status = "upcoming"
	}
	return s.Repo.Create(sch)
}

func (s *ScheduleService) Update(sch domain.Schedule) error {
	return s.Repo.Update(sch)
}

func (s *ScheduleService) Delete(id string) error {
	return s.Repo.Delete(id)
}
