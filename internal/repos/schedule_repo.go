package repos

import (
	"royalstudy/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ScheduleRepo struct{ db *sqlx.DB }

func NewScheduleRepo(db *sqlx.DB) *ScheduleRepo { return &ScheduleRepo{db: db} }

const scheduleCols = `
  id, title, description, type, date, status, downloadable, file_url, created_at`

func (r *ScheduleRepo) List() ([]domain.Schedule, error) {
	var out []domain.Schedule
	err := r.db.Select(&out, `SELECT `+scheduleCols+` FROM schedules ORDER BY date`)
	return out, err
}

func (r *ScheduleRepo) Get(id string) (domain.Schedule, error) {
	var s domain.Schedule
	err := r.db.Get(&s, `SELECT `+scheduleCols+` FROM schedules WHERE id = ?`, id)
	return s, err
}

func (r *ScheduleRepo) Create(s domain.Schedule) error {
	_, err := r.db.Exec(`
	  INSERT INTO schedules(id,title,description,type,date,status,downloadable,file_url,created_at)
	  VALUES(?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)`,
		s.ID, s.Title, s.Description, s.Type, s.Date, s.Status, s.Downloadable, s.FileURL)
	return err
}

func (r *ScheduleRepo) Update(s domain.Schedule) error {
	_, err := r.db.Exec(`
	  UPDATE schedules SET title=?, description=?, type=?, date=?, status=?, downloadable=?, file_url=?
	  WHERE id=?`,
		s.Title, s.Description, s.Type, s.Date, s.Status, s.Downloadable, s.FileURL, s.ID)
	return err
}

func (r *ScheduleRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM schedules WHERE id=?`, id)
	return err
}

// ActivateDue flips upcoming entries whose date has arrived to active.
// Returns the number of rows changed.
func (r *ScheduleRepo) ActivateDue(today string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE schedules SET status='active'
	  WHERE status='upcoming' AND date <= ?`, today)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
