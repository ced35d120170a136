package resolve

import (
	"context"
	"time"

	"missioncontrol/internal/models"

	"github.com/robfig/cron/v3"
)

// localCron is one entry of state/crons.json as the agent runtime writes it.
type localCron struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Schedule string `json:"schedule"`
	Status   string `json:"status"`
	LastRun  string `json:"last_run"`
	NextRun  string `json:"next_run"`
	Agent    string `json:"agent"`
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Crons lists all cron jobs, local registry first, mirror second. Jobs
// missing a nextRun get one computed from their schedule expression.
func (r *Resolver) Crons(ctx context.Context) []models.CronJob {
	var raw []localCron
	if r.ws.ReadJSON("state/crons.json", &raw) {
		crons := make([]models.CronJob, 0, len(raw))
		for _, c := range raw {
			jobID := c.ID
			if jobID == "" {
				jobID = c.Name
			}
			status := c.Status
			if status == "" {
				status = "unknown"
			}
			lastStatus := c.Status
			if lastStatus == "ok" {
				lastStatus = "success"
			}
			crons = append(crons, models.CronJob{
				JobID:      jobID,
				Name:       c.Name,
				Schedule:   c.Schedule,
				Status:     status,
				LastStatus: lastStatus,
				LastRun:    c.LastRun,
				NextRun:    c.NextRun,
				Agent:      c.Agent,
			})
		}
		return fillNextRuns(crons)
	}

	if r.remote != nil {
		if crons, err := r.remote.GetCronJobs(ctx); err == nil && len(crons) > 0 {
			return fillNextRuns(crons)
		}
	}
	return []models.CronJob{}
}

// fillNextRuns computes nextRun from the schedule for jobs that don't carry
// one. Unparseable schedules are left alone.
func fillNextRuns(crons []models.CronJob) []models.CronJob {
	now := time.Now()
	for i := range crons {
		if crons[i].NextRun != "" || crons[i].Schedule == "" {
			continue
		}
		sched, err := cronParser.Parse(crons[i].Schedule)
		if err != nil {
			continue
		}
		crons[i].NextRun = sched.Next(now).UTC().Format(time.RFC3339)
	}
	return crons
}
