package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"missioncontrol/internal/gitscan"
	"missioncontrol/internal/resolve"
	"missioncontrol/internal/workspace"

	"github.com/gofiber/fiber/v2"
)

// setupApp builds the full route table over a temp workspace with no
// database: the degraded mode every endpoint must survive.
func setupApp(t *testing.T) (*fiber.App, *workspace.Workspace) {
	t.Helper()
	ws := workspace.New(t.TempDir())
	resolver := resolve.New(ws, nil, gitscan.NewScanner(t.TempDir()))

	dash := NewDashboardHandler(resolver)
	store := NewStoreHandler(resolver, nil, nil, nil, nil, nil, nil)
	health := NewHealthHandler(nil, time.Now())

	app := fiber.New()
	Register(app, dash, store, health)
	return app, ws
}

func getJSON(t *testing.T, app *fiber.App, path string, wantStatus int) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s = %d, want %d", path, resp.StatusCode, wantStatus)
	}
	body, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("GET %s: bad JSON: %v", path, err)
	}
	return out
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*fiber.App, int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	json.Unmarshal(raw, &out)
	return app, resp.StatusCode, out
}

func TestEveryReadEndpointAnswers200OnEmptyWorkspace(t *testing.T) {
	app, _ := setupApp(t)
	paths := []string{
		"/api/health", "/api/agents", "/api/cron-health", "/api/revenue",
		"/api/repos", "/api/system-state", "/api/observations",
		"/api/priorities", "/api/clients", "/api/content-pipeline",
		"/api/suggested-tasks", "/api/chat-history", "/api/tasks",
		"/api/contacts", "/api/content-drafts", "/api/calendar-events",
		"/api/activities", "/api/ecosystem-products", "/api/ecosystem/widget",
	}
	for _, path := range paths {
		getJSON(t, app, path, 200)
	}
}

func TestRevenueDefaultShape(t *testing.T) {
	app, _ := setupApp(t)
	got := getJSON(t, app, "/api/revenue", 200)
	if got["currentMRR"].(float64) != 0 {
		t.Errorf("currentMRR = %v", got["currentMRR"])
	}
	if _, ok := got["sources"].([]interface{}); !ok {
		t.Errorf("sources = %T, want array", got["sources"])
	}
	if _, ok := got["history"].([]interface{}); !ok {
		t.Errorf("history = %T, want array", got["history"])
	}
}

func TestRevenueFromWorkspaceFile(t *testing.T) {
	app, ws := setupApp(t)
	ws.WriteFile("state/revenue.json", `{"current_month":1500,"monthly_burn":900,"net":600}`)

	got := getJSON(t, app, "/api/revenue", 200)
	if got["currentMRR"].(float64) != 1500 || got["monthlyBurn"].(float64) != 900 || got["net"].(float64) != 600 {
		t.Errorf("got %v", got)
	}
}

func TestContentPipelineEnvelope(t *testing.T) {
	app, ws := setupApp(t)
	ws.WriteFile("content/queue.md", "## Review\n- [ ] Draft post A\n## Published\n- [x] Post B")

	got := getJSON(t, app, "/api/content-pipeline", 200)
	if got["total"].(float64) != 2 {
		t.Fatalf("total = %v", got["total"])
	}
	counts := got["counts"].(map[string]interface{})
	if counts["review"].(float64) != 1 || counts["published"].(float64) != 1 || counts["draft"].(float64) != 0 {
		t.Errorf("counts = %v", counts)
	}
}

func TestAgentsEnvelope(t *testing.T) {
	app, ws := setupApp(t)
	ws.WriteFile("agents/registry.json", `[{"id":"scout","name":"Scout","status":"active"}]`)

	got := getJSON(t, app, "/api/agents", 200)
	if got["count"].(float64) != 1 {
		t.Errorf("count = %v", got["count"])
	}
	agents := got["agents"].([]interface{})
	if agents[0].(map[string]interface{})["id"] != "scout" {
		t.Errorf("agents = %v", agents)
	}
}

func TestSuggestedTaskApproveFlow(t *testing.T) {
	app, ws := setupApp(t)
	ws.WriteFile("state/suggested-tasks.json", `[{"id":7,"title":"Ship it","status":"pending"}]`)

	_, status, got := postJSON(t, app, "/api/suggested-tasks", `{"action":"approve","id":"7"}`)
	if status != 200 || got["success"] != true {
		t.Fatalf("status=%d got=%v", status, got)
	}
	tasks := got["tasks"].([]interface{})
	if tasks[0].(map[string]interface{})["status"] != "approved" {
		t.Errorf("tasks = %v", tasks)
	}
}

func TestSuggestedTaskBadBody(t *testing.T) {
	app, _ := setupApp(t)
	if _, status, _ := postJSON(t, app, "/api/suggested-tasks", `{}`); status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestChatSendRequiresMessage(t *testing.T) {
	app, _ := setupApp(t)
	if _, status, _ := postJSON(t, app, "/api/chat-send", `{"channel":"web"}`); status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
	_, status, got := postJSON(t, app, "/api/chat-send", `{"message":"hello"}`)
	if status != 200 || got["queued"].(float64) != 1 {
		t.Errorf("status=%d got=%v", status, got)
	}
}

func TestKnowledgeRequiresQuery(t *testing.T) {
	app, ws := setupApp(t)
	got := getJSON(t, app, "/api/knowledge", 200)
	if got["error"] != "No query provided" {
		t.Errorf("got %v", got)
	}

	ws.WriteFile("notes/infra.md", "the backup server lives in the closet")
	got = getJSON(t, app, "/api/knowledge?q=backup", 200)
	if got["count"].(float64) != 1 {
		t.Errorf("count = %v", got["count"])
	}
}

func TestStoreWritesAnswer503WithoutDatabase(t *testing.T) {
	app, _ := setupApp(t)
	for _, path := range []string{"/api/tasks", "/api/contacts", "/api/activities"} {
		if _, status, _ := postJSON(t, app, path, `{"title":"x","name":"x","message":"x"}`); status != 503 {
			t.Errorf("POST %s = %d, want 503", path, status)
		}
	}
}

func TestHealthReportsDisconnectedDatabase(t *testing.T) {
	app, _ := setupApp(t)
	got := getJSON(t, app, "/api/health", 200)
	if got["status"] != "ok" || got["database"] != "disconnected" {
		t.Errorf("got %v", got)
	}
}

func TestSystemStateDefaultShape(t *testing.T) {
	app, _ := setupApp(t)
	got := getJSON(t, app, "/api/system-state", 200)
	if _, ok := got["servers"].([]interface{}); !ok {
		t.Errorf("servers = %T", got["servers"])
	}
	if _, ok := got["branches"].([]interface{}); !ok {
		t.Errorf("branches = %T", got["branches"])
	}
}
