package syncer

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"missioncontrol/internal/gitscan"
	"missioncontrol/internal/models"
	"missioncontrol/internal/workspace"
)

type fakeStore struct {
	mu       sync.Mutex
	crons    []models.CronJob
	agents   []models.AgentStatus
	revenue  *models.Revenue
	repos    []models.Repo
	tasks    []models.SuggestedTask
	items    []models.ContentItem
	services []models.SystemService
	state    map[string]string

	cronsErr    error
	revenueGate <-chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{state: make(map[string]string)}
}

func (f *fakeStore) SyncSystemServices(ctx context.Context, svcs []models.SystemService) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.services = svcs
	return nil
}

func (f *fakeStore) SyncCronJobs(ctx context.Context, crons []models.CronJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cronsErr != nil {
		return f.cronsErr
	}
	f.crons = crons
	return nil
}

func (f *fakeStore) SyncAgentStatus(ctx context.Context, agents []models.AgentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agents = agents
	return nil
}

func (f *fakeStore) SyncRevenue(ctx context.Context, revenue models.Revenue) error {
	if f.revenueGate != nil {
		select {
		case <-f.revenueGate:
		case <-time.After(2 * time.Second):
			return errors.New("gate never opened")
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revenue = &revenue
	return nil
}

func (f *fakeStore) SyncRepos(ctx context.Context, repos []models.Repo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repos = repos
	return nil
}

func (f *fakeStore) SyncSuggestedTasks(ctx context.Context, tasks []models.SuggestedTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = tasks
	return nil
}

func (f *fakeStore) SyncContentPipeline(ctx context.Context, items []models.ContentItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
	return nil
}

func (f *fakeStore) SyncSystemState(ctx context.Context, key, value, syncedAt string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state[key] = value
	return nil
}

func testPipeline(t *testing.T, store Store) (*Pipeline, *workspace.Workspace) {
	t.Helper()
	ws := workspace.New(t.TempDir())
	p := New(store, ws, gitscan.NewScanner(t.TempDir()), time.Second)
	p.Log.SetOutput(io.Discard)
	return p, ws
}

func mustWrite(t *testing.T, ws *workspace.Workspace, rel, content string) {
	t.Helper()
	if !ws.WriteFile(rel, content) {
		t.Fatalf("write %s", rel)
	}
}

func outcomeFor(t *testing.T, outcomes []Outcome, source string) Outcome {
	t.Helper()
	for _, o := range outcomes {
		if o.Source == source {
			return o
		}
	}
	t.Fatalf("no outcome for %s", source)
	return Outcome{}
}

func TestRunSettlesAllSources(t *testing.T) {
	store := newFakeStore()
	p, ws := testPipeline(t, store)

	mustWrite(t, ws, "state/crons.json", `[{"id":"heartbeat","name":"Heartbeat","schedule":"*/5 * * * *","status":"ok","last_run":"2026-08-29T10:00:00Z"}]`)
	mustWrite(t, ws, "agents/registry.json", `[{"id":"scout","name":"Scout","autonomy_level":"high"}]`)
	mustWrite(t, ws, "state/revenue.json", `{"current_month":1500,"monthly_burn":900,"net":600}`)
	mustWrite(t, ws, "state/observations.md", "- saw a thing\n")
	mustWrite(t, ws, "shared-context/priorities.md", "# Priorities\n")
	mustWrite(t, ws, "state/suggested-tasks.json", `[{"id":7,"title":"Ship it"}]`)
	mustWrite(t, ws, "content/queue.md", "## Review\n- [ ] Draft post A\n## Published\n- [x] Post B\n")
	mustWrite(t, ws, "state/branch-check.json", `{"repos":[]}`)
	mustWrite(t, ws, "state/servers.json", `{"api":{"port":3001}}`)

	outcomes := p.Run(context.Background())
	if len(outcomes) != 11 {
		t.Fatalf("outcomes = %d, want 11", len(outcomes))
	}
	for _, src := range []string{"crons", "agents", "revenue", "observations", "priorities", "suggestedTasks", "contentQueue", "branchCheck", "servers"} {
		if o := outcomeFor(t, outcomes, src); o.Status != StatusOK {
			t.Errorf("%s = %s (%s, %v), want ok", src, o.Status, o.Detail, o.Err)
		}
	}

	if len(store.crons) != 1 || store.crons[0].JobID != "heartbeat" || store.crons[0].LastStatus != "success" {
		t.Errorf("crons = %+v", store.crons)
	}
	if len(store.agents) != 1 || store.agents[0].Level != "high" || store.agents[0].Status != "unknown" {
		t.Errorf("agents = %+v", store.agents)
	}
	if store.revenue == nil || store.revenue.CurrentMRR != 1500 || store.revenue.Currency != "EUR" {
		t.Errorf("revenue = %+v", store.revenue)
	}
	if len(store.tasks) != 1 || string(store.tasks[0].TaskID) != "7" || store.tasks[0].Status != "pending" {
		t.Errorf("tasks = %+v", store.tasks)
	}
	if len(store.items) != 2 {
		t.Fatalf("content items = %+v", store.items)
	}
	if store.items[0].Status != "review" || store.items[1].Status != "published" {
		t.Errorf("content statuses = %s, %s", store.items[0].Status, store.items[1].Status)
	}
	if store.state["contentQueue"] == "" || store.state["observations"] == "" {
		t.Errorf("state keys = %v", store.state)
	}
	if store.state["branchCheck"] != `{"repos":[]}` {
		t.Errorf("branchCheck = %q", store.state["branchCheck"])
	}
}

func TestRunEmptyWorkspaceSkipsFileSources(t *testing.T) {
	store := newFakeStore()
	p, _ := testPipeline(t, store)

	outcomes := p.Run(context.Background())
	for _, src := range []string{"crons", "agents", "revenue", "observations", "priorities", "suggestedTasks", "contentQueue", "branchCheck", "servers"} {
		if o := outcomeFor(t, outcomes, src); o.Status != StatusSkipped {
			t.Errorf("%s = %s, want skipped", src, o.Status)
		}
	}
	// services and repos derive from the machine, not files, so they still run
	if o := outcomeFor(t, outcomes, "repos"); o.Status != StatusOK {
		t.Errorf("repos = %s, want ok", o.Status)
	}
	if store.crons != nil || store.revenue != nil {
		t.Errorf("skipped sources must not write")
	}
}

func TestFailingSourceDoesNotAffectOthers(t *testing.T) {
	store := newFakeStore()
	store.cronsErr = errors.New("mirror unavailable")
	p, ws := testPipeline(t, store)
	mustWrite(t, ws, "state/crons.json", `[{"id":"a","name":"A"}]`)
	mustWrite(t, ws, "agents/registry.json", `[{"id":"scout","name":"Scout"}]`)

	outcomes := p.Run(context.Background())
	if o := outcomeFor(t, outcomes, "crons"); o.Status != StatusFailed || o.Err == nil {
		t.Errorf("crons = %+v, want failed", o)
	}
	if o := outcomeFor(t, outcomes, "agents"); o.Status != StatusOK {
		t.Errorf("agents = %s, want ok", o.Status)
	}
}

// A slow revenue write must not serialize the run: the gate only opens once
// the agent source has already settled, so both are provably in flight at
// the same time.
func TestSlowSourceRunsConcurrently(t *testing.T) {
	store := newFakeStore()
	gate := make(chan struct{})
	store.revenueGate = gate
	p, ws := testPipeline(t, store)
	mustWrite(t, ws, "state/revenue.json", `{"net":1}`)
	mustWrite(t, ws, "agents/registry.json", `[{"id":"scout","name":"Scout"}]`)

	done := make(chan []Outcome, 1)
	go func() { done <- p.Run(context.Background()) }()

	deadline := time.After(2 * time.Second)
	for {
		store.mu.Lock()
		settled := store.agents != nil
		store.mu.Unlock()
		if settled {
			break
		}
		select {
		case <-deadline:
			t.Fatal("agents never settled while revenue was blocked")
		case <-time.After(5 * time.Millisecond):
		}
	}
	close(gate)

	outcomes := <-done
	if o := outcomeFor(t, outcomes, "revenue"); o.Status != StatusOK {
		t.Errorf("revenue = %+v, want ok", o)
	}
}

func TestTransformRevenueVariantKeys(t *testing.T) {
	mrr := 2000.0
	burn := 750.0
	got := transformRevenue(rawRevenue{CurrentMRR: &mrr, MonthlyBurn2: &burn, Currency: "USD"}, "ts")
	if got.CurrentMRR != 2000 || got.MonthlyBurn != 750 || got.Net != 0 || got.Currency != "USD" {
		t.Errorf("got %+v", got)
	}
}

func TestTransformCronsFallsBackToName(t *testing.T) {
	got := transformCrons([]rawCron{{Name: "Nightly"}})
	if got[0].JobID != "Nightly" || got[0].Status != "unknown" {
		t.Errorf("got %+v", got[0])
	}
}

func TestTransformSuggestedTasksNextActionVariants(t *testing.T) {
	got := transformSuggestedTasks([]rawSuggestedTask{
		{ID: "1", Title: "a", NextAction: "call"},
		{ID: "2", Title: "b", NextAlt: "email"},
	})
	if got[0].NextAction != "call" || got[1].NextAction != "email" {
		t.Errorf("got %+v", got)
	}
}

func TestRunIsIdempotentForFileSources(t *testing.T) {
	store := newFakeStore()
	p, ws := testPipeline(t, store)
	mustWrite(t, ws, "state/crons.json", `[{"id":"a","name":"A","status":"ok"}]`)

	p.Run(context.Background())
	first := store.crons
	p.Run(context.Background())
	if len(store.crons) != len(first) || store.crons[0] != first[0] {
		t.Errorf("second run diverged: %+v vs %+v", store.crons, first)
	}
}
