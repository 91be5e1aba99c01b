package scheduler

import (
	"log"
	"time"

	"royalstudy/internal/repos"

	"github.com/robfig/cron/v3"
)

// StartScheduleStatusJob promotes upcoming calendar entries to active
// once their date arrives. Runs shortly after midnight and once at
// startup so a restarted server catches up immediately.
func StartScheduleStatusJob(repo *repos.ScheduleRepo) *cron.Cron {
	run := func() {
		today := time.Now().Format("2006-01-02")
		n, err := repo.ActivateDue(today)
		if err != nil {
			log.Printf("[scheduler] activate due schedules: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[scheduler] activated %d schedule(s)", n)
		}
	}

	run()

	c := cron.New()
	if _, err := c.AddFunc("5 0 * * *", run); err != nil {
		log.Printf("[scheduler] cron setup: %v", err)
		return c
	}
	c.Start()
	return c
}
