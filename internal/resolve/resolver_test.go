package resolve

import (
	"context"
	"strings"
	"testing"

	"missioncontrol/internal/gitscan"
	"missioncontrol/internal/models"
	"missioncontrol/internal/workspace"
)

type fakeRemote struct {
	crons   []models.CronJob
	agents  []models.AgentStatus
	revenue *models.Revenue
	repos   []models.Repo
	state   map[string]string
	tasks   []models.SuggestedTask
	items   []models.ContentItem
}

func (f *fakeRemote) GetSystemServices(ctx context.Context) ([]models.SystemService, error) {
	return nil, nil
}
func (f *fakeRemote) GetCronJobs(ctx context.Context) ([]models.CronJob, error) {
	return f.crons, nil
}
func (f *fakeRemote) GetAgentStatus(ctx context.Context) ([]models.AgentStatus, error) {
	return f.agents, nil
}
func (f *fakeRemote) GetRevenue(ctx context.Context) (*models.Revenue, error) {
	return f.revenue, nil
}
func (f *fakeRemote) GetRepos(ctx context.Context) ([]models.Repo, error) {
	return f.repos, nil
}
func (f *fakeRemote) GetSystemState(ctx context.Context, key string) (*models.SystemState, error) {
	if f.state == nil {
		return nil, nil
	}
	v, ok := f.state[key]
	if !ok {
		return nil, nil
	}
	return &models.SystemState{Key: key, Value: v}, nil
}
func (f *fakeRemote) GetSuggestedTasks(ctx context.Context) ([]models.SuggestedTask, error) {
	return f.tasks, nil
}
func (f *fakeRemote) GetContentPipeline(ctx context.Context) ([]models.ContentItem, error) {
	return f.items, nil
}

func testResolver(t *testing.T, remote Remote) (*Resolver, *workspace.Workspace) {
	t.Helper()
	ws := workspace.New(t.TempDir())
	return New(ws, remote, gitscan.NewScanner(t.TempDir())), ws
}

func TestRevenueLocalWinsOverRemote(t *testing.T) {
	remote := &fakeRemote{revenue: &models.Revenue{CurrentMRR: 9999}}
	r, ws := testResolver(t, remote)
	ws.WriteFile("state/revenue.json", `{"current_month":1500,"monthly_burn":900,"net":600}`)

	got := r.Revenue(context.Background())
	if got.CurrentMRR != 1500 || got.MonthlyBurn != 900 || got.Net != 600 {
		t.Errorf("got %+v", got)
	}
	if got.Sources == nil || got.History == nil {
		t.Error("sources and history must be non-nil")
	}
}

func TestRevenueRemoteFallback(t *testing.T) {
	remote := &fakeRemote{revenue: &models.Revenue{CurrentMRR: 2000, MonthlyBurn: 500, Net: 1500, Currency: "EUR"}}
	r, _ := testResolver(t, remote)

	got := r.Revenue(context.Background())
	if got.CurrentMRR != 2000 || got.Currency != "EUR" {
		t.Errorf("got %+v", got)
	}
	if len(got.Sources) != 0 || len(got.History) != 0 {
		t.Errorf("fallback must reshape with empty slices, got %+v", got)
	}
}

func TestRevenueEmptyDefault(t *testing.T) {
	r, _ := testResolver(t, nil)
	got := r.Revenue(context.Background())
	if got.CurrentMRR != 0 || got.Sources == nil || got.History == nil {
		t.Errorf("got %+v", got)
	}
}

func TestCronsFillNextRun(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("state/crons.json", `[{"id":"hb","name":"Heartbeat","schedule":"*/5 * * * *","status":"ok"}]`)

	got := r.Crons(context.Background())
	if len(got) != 1 {
		t.Fatalf("got %d crons", len(got))
	}
	if got[0].LastStatus != "success" {
		t.Errorf("lastStatus = %s", got[0].LastStatus)
	}
	if got[0].NextRun == "" {
		t.Error("nextRun not computed from schedule")
	}
}

func TestCronsRemoteFallback(t *testing.T) {
	remote := &fakeRemote{crons: []models.CronJob{{JobID: "hb", Name: "Heartbeat"}}}
	r, _ := testResolver(t, remote)
	got := r.Crons(context.Background())
	if len(got) != 1 || got[0].JobID != "hb" {
		t.Errorf("got %+v", got)
	}
}

func TestAgentsRegistryEnrichedWithSoul(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("agents/registry.json", `[{"id":"scout","name":"Scout","autonomy_level":"L3"}]`)
	ws.WriteFile("agents/scout/SOUL.md", "# Scout\nCurious.")

	got := r.Agents(context.Background())
	if len(got) != 1 {
		t.Fatalf("got %d agents", len(got))
	}
	if got[0].Level != "L3" || !strings.Contains(got[0].Soul, "Curious") {
		t.Errorf("got %+v", got[0])
	}
}

func TestAgentsDirScanFallback(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("agents/night-watch/SOUL.md", "watchful")

	got := r.Agents(context.Background())
	if len(got) != 1 {
		t.Fatalf("got %d agents", len(got))
	}
	if got[0].AgentID != "night-watch" || got[0].Name != "Night Watch" || got[0].Status != "idle" {
		t.Errorf("got %+v", got[0])
	}
}

func TestAgentDetailUnknownIDStillResolves(t *testing.T) {
	r, _ := testResolver(t, nil)
	got := r.Agent(context.Background(), "ghost")
	if got.ID != "ghost" || got.Soul != "" || got.Outputs == nil {
		t.Errorf("got %+v", got)
	}
}

func TestBranchStatusCleanDefaultsTrue(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("state/branch-check.json", `[{"repo":"api","branch":"main"},{"repo":"web","branch":"main","clean":false,"behind":2}]`)

	_, branches := r.SystemStatus(context.Background())
	if len(branches) != 2 {
		t.Fatalf("got %d branches", len(branches))
	}
	if !branches[0].Clean || branches[0].Ahead != 0 {
		t.Errorf("first = %+v", branches[0])
	}
	if branches[1].Clean || branches[1].Behind != 2 {
		t.Errorf("second = %+v", branches[1])
	}
}

func TestSystemStatusRemoteFallbackIndependent(t *testing.T) {
	remote := &fakeRemote{state: map[string]string{
		"branchCheck": `{"repos":[{"repo":"api","branch":"main"}]}`,
	}}
	r, ws := testResolver(t, remote)
	ws.WriteFile("state/servers.json", `[{"name":"api","port":3001,"status":"up"}]`)

	servers, branches := r.SystemStatus(context.Background())
	if len(servers) != 1 || servers[0].Port != 3001 {
		t.Errorf("servers = %+v", servers)
	}
	if len(branches) != 1 || branches[0].Repo != "api" {
		t.Errorf("branches = %+v", branches)
	}
}

func TestObservationsParsing(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("state/observations.md", "2026-08-29 - deploy went fine\n- plain note\n\n- \n")

	got := r.Observations(context.Background())
	if len(got) != 2 {
		t.Fatalf("got %d observations: %+v", len(got), got)
	}
	if got[0].Date == nil || *got[0].Date != "2026-08-29" || got[0].Content != "deploy went fine" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Date != nil || got[1].Content != "plain note" {
		t.Errorf("second = %+v", got[1])
	}
}

func TestObservationsRemoteFallback(t *testing.T) {
	remote := &fakeRemote{state: map[string]string{"observations": "- mirrored note"}}
	r, _ := testResolver(t, remote)
	got := r.Observations(context.Background())
	if len(got) != 1 || got[0].Content != "mirrored note" {
		t.Errorf("got %+v", got)
	}
}

func TestContentPipelineResolutionOrder(t *testing.T) {
	remote := &fakeRemote{state: map[string]string{
		"contentQueue": "## Approved\n- [ ] Mirrored post",
	}}
	r, ws := testResolver(t, remote)

	// no local file, no parsed mirror items: raw blob wins
	got := r.ContentPipeline(context.Background())
	if len(got) != 1 || got[0].Status != "approved" {
		t.Fatalf("got %+v", got)
	}

	// local file beats everything
	ws.WriteFile("content/queue.md", "## Review\n- [ ] Local post")
	got = r.ContentPipeline(context.Background())
	if len(got) != 1 || got[0].Status != "review" || got[0].Title != "Local post" {
		t.Errorf("got %+v", got)
	}
}

func TestSuggestedTaskApprove(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("state/suggested-tasks.json", `[{"id":7,"title":"Ship it","status":"pending","owner":"scout"}]`)

	got := r.SetSuggestedTaskStatus("7", "approved")
	if len(got) != 1 || got[0].Status != "approved" {
		t.Fatalf("got %+v", got)
	}
	// unknown fields survive the rewrite
	if !strings.Contains(ws.ReadFile("state/suggested-tasks.json"), `"owner"`) {
		t.Error("mutation dropped unknown fields")
	}
}

func TestCreateSuggestedTask(t *testing.T) {
	r, ws := testResolver(t, nil)
	got := r.CreateSuggestedTask(map[string]interface{}{"title": "New idea"})
	if len(got) != 1 || got[0].Status != "pending" || got[0].Title != "New idea" {
		t.Fatalf("got %+v", got)
	}
	if !strings.HasPrefix(string(got[0].TaskID), "task-") {
		t.Errorf("id = %s", got[0].TaskID)
	}
	if !ws.Exists("state/suggested-tasks.json") {
		t.Error("file not written")
	}
}

func TestClientsParsing(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("clients/acme-corp.md", "status: Active\ncontact: jo@acme.test\nvalue: $12,500\nLong running account.")

	got := r.Clients()
	if len(got) != 1 {
		t.Fatalf("got %d clients", len(got))
	}
	c := got[0]
	if c.Name != "Acme Corp" || c.Status != "active" || c.Contact != "jo@acme.test" || c.Value != 12500 {
		t.Errorf("got %+v", c)
	}
}

func TestQueueChatMessage(t *testing.T) {
	r, ws := testResolver(t, nil)
	if n, ok := r.QueueChatMessage("hello", "web"); !ok || n != 1 {
		t.Fatalf("n=%d ok=%v", n, ok)
	}
	if n, ok := r.QueueChatMessage("again", "web"); !ok || n != 2 {
		t.Fatalf("n=%d ok=%v", n, ok)
	}
	if !strings.Contains(ws.ReadFile("state/chat-queue.json"), "hello") {
		t.Error("queue file missing message")
	}
}

func TestChatSessionsAndMessages(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("transcripts/telegram-ops.jsonl",
		`{"role":"user","content":"status?"}`+"\n"+`{"role":"assistant","content":"all green"}`+"\n")

	sessions := r.ChatSessions("")
	if len(sessions) != 1 || sessions[0].Channel != "telegram" {
		t.Fatalf("sessions = %+v", sessions)
	}

	msgs, total, session := r.ChatMessages("telegram-ops", "", "", 50, 0)
	if session == nil || total != 2 || len(msgs) != 2 {
		t.Fatalf("msgs=%d total=%d", len(msgs), total)
	}

	msgs, total, _ = r.ChatMessages("telegram-ops", "green", "", 50, 0)
	if total != 1 || msgs[0].Content != "all green" {
		t.Errorf("search failed: %+v", msgs)
	}

	if _, _, session := r.ChatMessages("nope", "", "", 50, 0); session != nil {
		t.Error("unknown session must resolve to nil")
	}
}

func TestSearchMemoizedUntilInvalidate(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("notes/a.md", "deploy target alpha")

	if got := r.Search("deploy"); len(got) != 1 {
		t.Fatalf("got %d results", len(got))
	}

	ws.WriteFile("notes/b.md", "deploy target beta")
	if got := r.Search("deploy"); len(got) != 1 {
		t.Errorf("cache miss: got %d results before invalidation", len(got))
	}

	r.Invalidate()
	if got := r.Search("deploy"); len(got) != 2 {
		t.Errorf("got %d results after invalidation", len(got))
	}
}

func TestEcosystemDoc(t *testing.T) {
	r, ws := testResolver(t, nil)
	ws.WriteFile("products/widget.md", "# Widget\nA product.")
	ws.WriteFile("products/widget.json", `{"mrr":100}`)

	got := r.Ecosystem("widget")
	if !strings.Contains(got.Content, "Widget") || got.Data == nil {
		t.Errorf("got %+v", got)
	}

	empty := r.Ecosystem("missing")
	if empty.Slug != "missing" || empty.Content != "" || empty.Data != nil {
		t.Errorf("got %+v", empty)
	}
}
