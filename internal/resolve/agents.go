package resolve

import (
	"context"
	"strings"

	"missioncontrol/internal/models"
)

// registryAgent is one entry of agents/registry.json as written on disk.
// Older registries used autonomy_level where newer ones say level.
type registryAgent struct {
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

// Agents lists all agents. The registry is authoritative; without one the
// agents directory itself is scanned, and without either the mirror is
// consulted. Each registry agent is enriched with its SOUL.md and RULES.md
// when those exist.
func (r *Resolver) Agents(ctx context.Context) []models.AgentStatus {
	var registry []registryAgent
	if r.ws.ReadJSON("agents/registry.json", &registry) {
		agents := make([]models.AgentStatus, 0, len(registry))
		for _, entry := range registry {
			status := entry.Status
			if status == "" {
				status = "unknown"
			}
			level := entry.AutonomyLevel
			if level == "" {
				level = entry.Level
			}
			agents = append(agents, models.AgentStatus{
				AgentID:      entry.ID,
				Name:         entry.Name,
				Model:        entry.Model,
				Status:       status,
				Role:         entry.Role,
				Level:        level,
				Channels:     entry.Channels,
				Capabilities: entry.Capabilities,
				Description:  entry.Description,
				CronJobs:     entry.CronJobs,
				Soul:         r.ws.ReadFile("agents/" + entry.ID + "/SOUL.md"),
				Rules:        r.ws.ReadFile("agents/" + entry.ID + "/RULES.md"),
			})
		}
		return agents
	}

	if scanned := r.scanAgentDirs(); len(scanned) > 0 {
		return scanned
	}

	if r.remote != nil {
		if agents, err := r.remote.GetAgentStatus(ctx); err == nil && len(agents) > 0 {
			return agents
		}
	}
	return []models.AgentStatus{}
}

// scanAgentDirs builds a minimal listing from the agents directory when no
// registry exists. Every subdirectory counts as an idle agent.
func (r *Resolver) scanAgentDirs() []models.AgentStatus {
	agents := []models.AgentStatus{}
	for _, name := range r.ws.ListDir("agents") {
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".json") {
			continue
		}
		agents = append(agents, models.AgentStatus{
			AgentID: name,
			Name:    titleCase(name),
			Role:    "Agent",
			Model:   "unknown",
			Level:   "L1",
			Status:  "idle",
			Soul:    r.ws.ReadFile("agents/" + name + "/SOUL.md"),
		})
	}
	return agents
}

const maxAgentOutputs = 20

// Agent returns the detail view for one agent. Unknown ids still resolve:
// every field degrades to its empty value.
func (r *Resolver) Agent(ctx context.Context, id string) models.AgentDetail {
	detail := models.AgentDetail{
		ID:    id,
		Soul:  r.ws.ReadFile("agents/" + id + "/SOUL.md"),
		Rules: r.ws.ReadFile("agents/" + id + "/RULES.md"),
	}

	var registry []map[string]interface{}
	if r.ws.ReadJSON("agents/registry.json", &registry) {
		for _, entry := range registry {
			if entry["id"] == id {
				detail.Registry = entry
				break
			}
		}
	}

	outputs := r.ws.ListDir("agents/" + id + "/outputs")
	if len(outputs) > maxAgentOutputs {
		outputs = outputs[:maxAgentOutputs]
	}
	detail.Outputs = outputs
	return detail
}

func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "-", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
