package syncer

import (
	"context"
	"sync"
	"time"

	"missioncontrol/internal/gitscan"
	"missioncontrol/internal/models"
	"missioncontrol/internal/services"
	"missioncontrol/internal/workspace"

	"github.com/sirupsen/logrus"
)

// Store is the write surface the pipeline needs from the remote mirror.
type Store interface {
	SyncSystemServices(ctx context.Context, svcs []models.SystemService) error
	SyncCronJobs(ctx context.Context, crons []models.CronJob) error
	SyncAgentStatus(ctx context.Context, agents []models.AgentStatus) error
	SyncRevenue(ctx context.Context, revenue models.Revenue) error
	SyncRepos(ctx context.Context, repos []models.Repo) error
	SyncSuggestedTasks(ctx context.Context, tasks []models.SuggestedTask) error
	SyncContentPipeline(ctx context.Context, items []models.ContentItem) error
	SyncSystemState(ctx context.Context, key, value, syncedAt string) error
}

// Outcome reports how one source settled.
type Outcome struct {
	Source string
	Status string // ok, skipped, failed
	Detail string
	Err    error
}

const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Pipeline pushes local workspace state into the remote mirror. Each source
// runs in its own goroutine and settles independently: a slow or failing
// source never blocks the other ten.
type Pipeline struct {
	Store       Store
	Workspace   *workspace.Workspace
	Scanner     *gitscan.Scanner
	ExecTimeout time.Duration
	Log         *logrus.Logger
}

// New creates a pipeline over the given store and workspace.
func New(store Store, ws *workspace.Workspace, scanner *gitscan.Scanner, execTimeout time.Duration) *Pipeline {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Pipeline{
		Store:       store,
		Workspace:   ws,
		Scanner:     scanner,
		ExecTimeout: execTimeout,
		Log:         log,
	}
}

type source struct {
	name string
	run  func(ctx context.Context, ts string) Outcome
}

// Run executes all sources concurrently and waits for every one to settle.
// The returned slice is ordered by source, one entry each, regardless of
// individual failures.
func (p *Pipeline) Run(ctx context.Context) []Outcome {
	ts := time.Now().UTC().Format(time.RFC3339)
	started := time.Now()
	p.Log.WithField("syncedAt", ts).Info("starting state sync")

	sources := []source{
		{"services", p.syncServices},
		{"crons", p.syncCrons},
		{"agents", p.syncAgents},
		{"revenue", p.syncRevenue},
		{"repos", p.syncRepos},
		{"observations", p.syncObservations},
		{"priorities", p.syncPriorities},
		{"suggestedTasks", p.syncSuggestedTasks},
		{"contentQueue", p.syncContentQueue},
		{"branchCheck", p.syncBranchCheck},
		{"servers", p.syncServers},
	}

	outcomes := make([]Outcome, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src source) {
			defer wg.Done()
			out := src.run(ctx, ts)
			out.Source = src.name
			outcomes[i] = out
		}(i, src)
	}
	wg.Wait()

	failed := 0
	for _, out := range outcomes {
		entry := p.Log.WithFields(logrus.Fields{
			"source": out.Source,
			"status": out.Status,
			"detail": out.Detail,
		})
		if out.Err != nil {
			failed++
			entry.WithError(out.Err).Error("sync source failed")
		} else {
			entry.Info("sync source settled")
		}
		services.SyncSourceOutcomes.WithLabelValues(out.Source, out.Status).Inc()
	}

	services.SyncRunsTotal.Inc()
	services.SyncDuration.Observe(time.Since(started).Seconds())
	if failed == 0 {
		services.SyncLastSuccess.SetToCurrentTime()
	}

	p.Log.WithFields(logrus.Fields{
		"failed":   failed,
		"duration": time.Since(started).Round(time.Millisecond).String(),
	}).Info("state sync done")
	return outcomes
}

func ok(detail string) Outcome {
	return Outcome{Status: StatusOK, Detail: detail}
}

func skipped(detail string) Outcome {
	return Outcome{Status: StatusSkipped, Detail: detail}
}

func failed(detail string, err error) Outcome {
	return Outcome{Status: StatusFailed, Detail: detail, Err: err}
}
