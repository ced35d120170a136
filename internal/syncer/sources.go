package syncer

import (
	"context"
	"encoding/json"
	"fmt"

	"missioncontrol/internal/content"
	"missioncontrol/internal/listeners"
	"missioncontrol/internal/models"
)

// Raw shapes as they appear in the workspace files. Field names follow the
// files, not the mirror: the transform functions own the renames.

type rawCron struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Schedule string `json:"schedule"`
	Status   string `json:"status"`
	LastRun  string `json:"last_run"`
	NextRun  string `json:"next_run"`
	Agent    string `json:"agent"`
}

type rawAgent struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Model         string   `json:"model"`
	Status        string   `json:"status"`
	Role          string   `json:"role"`
	AutonomyLevel string   `json:"autonomy_level"`
	Level         string   `json:"level"`
	Channels      []string `json:"channels"`
	Capabilities  []string `json:"capabilities"`
	Description   string   `json:"description"`
	CronJobs      []string `json:"cron_jobs"`
}

type rawRevenue struct {
	CurrentMonth *float64    `json:"current_month"`
	CurrentMRR   *float64    `json:"currentMRR"`
	MonthlyBurn  *float64    `json:"monthly_burn"`
	MonthlyBurn2 *float64    `json:"monthlyBurn"`
	Net          *float64    `json:"net"`
	Currency     string      `json:"currency"`
	Note         string      `json:"note"`
	Projects     interface{} `json:"projects_with_revenue_potential"`
}

type rawSuggestedTask struct {
	ID         models.FlexID `json:"id"`
	Title      string        `json:"title"`
	Category   string        `json:"category"`
	Reasoning  string        `json:"reasoning"`
	NextAction string        `json:"next_action"`
	NextAlt    string        `json:"nextAction"`
	Priority   string        `json:"priority"`
	Effort     string        `json:"effort"`
	Status     string        `json:"status"`
	CreatedAt  string        `json:"createdAt"`
}

func (p *Pipeline) syncServices(ctx context.Context, ts string) Outcome {
	svcs := listeners.Snapshot(ctx, p.ExecTimeout)
	if err := p.Store.SyncSystemServices(ctx, svcs); err != nil {
		return failed("listener snapshot", err)
	}
	return ok(fmt.Sprintf("%d services", len(svcs)))
}

func (p *Pipeline) syncCrons(ctx context.Context, ts string) Outcome {
	var raw []rawCron
	if !p.Workspace.ReadJSON("state/crons.json", &raw) {
		return skipped("no file")
	}
	crons := transformCrons(raw)
	if err := p.Store.SyncCronJobs(ctx, crons); err != nil {
		return failed("cron registry", err)
	}
	return ok(fmt.Sprintf("%d crons", len(crons)))
}

func transformCrons(raw []rawCron) []models.CronJob {
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
	return crons
}

func (p *Pipeline) syncAgents(ctx context.Context, ts string) Outcome {
	var raw []rawAgent
	if !p.Workspace.ReadJSON("agents/registry.json", &raw) {
		return skipped("no registry")
	}
	agents := transformAgents(raw)
	if err := p.Store.SyncAgentStatus(ctx, agents); err != nil {
		return failed("agent registry", err)
	}
	return ok(fmt.Sprintf("%d agents", len(agents)))
}

func transformAgents(raw []rawAgent) []models.AgentStatus {
	agents := make([]models.AgentStatus, 0, len(raw))
	for _, a := range raw {
		status := a.Status
		if status == "" {
			status = "unknown"
		}
		level := a.AutonomyLevel
		if level == "" {
			level = a.Level
		}
		agents = append(agents, models.AgentStatus{
			AgentID:      a.ID,
			Name:         a.Name,
			Model:        a.Model,
			Status:       status,
			Role:         a.Role,
			Level:        level,
			Channels:     a.Channels,
			Capabilities: a.Capabilities,
			Description:  a.Description,
			CronJobs:     a.CronJobs,
		})
	}
	return agents
}

func (p *Pipeline) syncRevenue(ctx context.Context, ts string) Outcome {
	var raw rawRevenue
	if !p.Workspace.ReadJSON("state/revenue.json", &raw) {
		return skipped("no file")
	}
	revenue := transformRevenue(raw, ts)
	if err := p.Store.SyncRevenue(ctx, revenue); err != nil {
		return failed("revenue snapshot", err)
	}
	return ok("singleton replaced")
}

func transformRevenue(raw rawRevenue, ts string) models.Revenue {
	pick := func(vals ...*float64) float64 {
		for _, v := range vals {
			if v != nil {
				return *v
			}
		}
		return 0
	}
	currency := raw.Currency
	if currency == "" {
		currency = "EUR"
	}
	return models.Revenue{
		CurrentMRR:  pick(raw.CurrentMonth, raw.CurrentMRR),
		MonthlyBurn: pick(raw.MonthlyBurn, raw.MonthlyBurn2),
		Net:         pick(raw.Net),
		Currency:    currency,
		Note:        raw.Note,
		Projects:    raw.Projects,
		SyncedAt:    ts,
	}
}

func (p *Pipeline) syncRepos(ctx context.Context, ts string) Outcome {
	repos := p.Scanner.Scan(ctx)
	if err := p.Store.SyncRepos(ctx, repos); err != nil {
		return failed("repo scan", err)
	}
	return ok(fmt.Sprintf("%d repos", len(repos)))
}

func (p *Pipeline) syncObservations(ctx context.Context, ts string) Outcome {
	return p.syncStateFile(ctx, ts, "state/observations.md", "observations")
}

func (p *Pipeline) syncPriorities(ctx context.Context, ts string) Outcome {
	return p.syncStateFile(ctx, ts, "shared-context/priorities.md", "priorities")
}

// syncStateFile mirrors one markdown file verbatim under a systemState key.
func (p *Pipeline) syncStateFile(ctx context.Context, ts, rel, key string) Outcome {
	text := p.Workspace.ReadFile(rel)
	if text == "" {
		return skipped("no file")
	}
	if err := p.Store.SyncSystemState(ctx, key, text, ts); err != nil {
		return failed(rel, err)
	}
	return ok(fmt.Sprintf("%d bytes", len(text)))
}

func (p *Pipeline) syncSuggestedTasks(ctx context.Context, ts string) Outcome {
	var raw []rawSuggestedTask
	if !p.Workspace.ReadJSON("state/suggested-tasks.json", &raw) {
		return skipped("no file")
	}
	tasks := transformSuggestedTasks(raw)
	if err := p.Store.SyncSuggestedTasks(ctx, tasks); err != nil {
		return failed("suggested tasks", err)
	}
	return ok(fmt.Sprintf("%d tasks", len(tasks)))
}

func transformSuggestedTasks(raw []rawSuggestedTask) []models.SuggestedTask {
	tasks := make([]models.SuggestedTask, 0, len(raw))
	for _, t := range raw {
		next := t.NextAction
		if next == "" {
			next = t.NextAlt
		}
		status := t.Status
		if status == "" {
			status = "pending"
		}
		tasks = append(tasks, models.SuggestedTask{
			TaskID:     t.ID,
			Title:      t.Title,
			Category:   t.Category,
			Reasoning:  t.Reasoning,
			NextAction: next,
			Priority:   t.Priority,
			Effort:     t.Effort,
			Status:     status,
			CreatedAt:  t.CreatedAt,
		})
	}
	return tasks
}

// syncContentQueue mirrors the queue twice: the raw markdown under a
// systemState key for exact round-tripping, and the parsed items into the
// contentPipeline collection for structured queries.
func (p *Pipeline) syncContentQueue(ctx context.Context, ts string) Outcome {
	raw := p.Workspace.ReadFile("content/queue.md")
	if raw == "" {
		return skipped("no queue")
	}
	if err := p.Store.SyncSystemState(ctx, "contentQueue", raw, ts); err != nil {
		return failed("raw queue", err)
	}
	items := content.ParseQueue(raw)
	for i := range items {
		items[i].CreatedAt = ts
	}
	if err := p.Store.SyncContentPipeline(ctx, items); err != nil {
		return failed("parsed queue", err)
	}
	return ok(fmt.Sprintf("%d items", len(items)))
}

func (p *Pipeline) syncBranchCheck(ctx context.Context, ts string) Outcome {
	return p.syncJSONBlob(ctx, ts, "state/branch-check.json", "branchCheck")
}

func (p *Pipeline) syncServers(ctx context.Context, ts string) Outcome {
	return p.syncJSONBlob(ctx, ts, "state/servers.json", "servers")
}

// syncJSONBlob round-trips a JSON file through decode/encode so a malformed
// file is skipped rather than mirrored, then stores the normalized blob
// under a systemState key.
func (p *Pipeline) syncJSONBlob(ctx context.Context, ts, rel, key string) Outcome {
	var data interface{}
	if !p.Workspace.ReadJSON(rel, &data) {
		return skipped("no file")
	}
	blob, err := json.Marshal(data)
	if err != nil {
		return failed(rel, err)
	}
	if err := p.Store.SyncSystemState(ctx, key, string(blob), ts); err != nil {
		return failed(rel, err)
	}
	return ok(fmt.Sprintf("%d bytes", len(blob)))
}
