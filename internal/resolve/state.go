package resolve

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"missioncontrol/internal/models"
)

// SystemStatus returns the static server inventory and per-repo branch
// state. Both degrade independently: a missing servers file doesn't blank
// the branches and vice versa.
func (r *Resolver) SystemStatus(ctx context.Context) ([]models.SystemService, []models.BranchStatus) {
	var servers []models.SystemService
	if !r.ws.ReadJSON("state/servers.json", &servers) {
		servers = decodeServers(r.remoteState(ctx, "servers"))
	}
	if servers == nil {
		servers = []models.SystemService{}
	}

	var branches []models.BranchStatus
	blob := r.ws.ReadFile("state/branch-check.json")
	if blob == "" {
		blob = r.remoteState(ctx, "branchCheck")
	}
	branches = decodeBranches(blob)

	return servers, branches
}

func decodeServers(blob string) []models.SystemService {
	if blob == "" {
		return nil
	}
	var servers []models.SystemService
	if err := json.Unmarshal([]byte(blob), &servers); err != nil {
		return nil
	}
	return servers
}

// decodeBranches accepts either a bare array or a {"repos": [...]} wrapper;
// both forms have shipped.
func decodeBranches(blob string) []models.BranchStatus {
	if blob == "" {
		return []models.BranchStatus{}
	}
	var branches []models.BranchStatus
	if err := json.Unmarshal([]byte(blob), &branches); err == nil {
		return branches
	}
	var wrapped struct {
		Repos []models.BranchStatus `json:"repos"`
	}
	if err := json.Unmarshal([]byte(blob), &wrapped); err == nil && wrapped.Repos != nil {
		return wrapped.Repos
	}
	return []models.BranchStatus{}
}

var observationDateRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s*[-:]\s*(.*)`)
var observationBulletRe = regexp.MustCompile(`^[-*]\s*`)

// Observations parses the observations log into dated entries. Lines without
// a leading date keep a nil date; blank lines and bare bullets are dropped.
func (r *Resolver) Observations(ctx context.Context) []models.Observation {
	text := r.ws.ReadFile("state/observations.md")
	if text == "" {
		text = r.remoteState(ctx, "observations")
	}
	return parseObservations(text)
}

func parseObservations(text string) []models.Observation {
	observations := []models.Observation{}
	if text == "" {
		return observations
	}
	id := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var obs models.Observation
		if m := observationDateRe.FindStringSubmatch(line); m != nil {
			date := m[1]
			obs = models.Observation{ID: id, Date: &date, Content: strings.TrimSpace(m[2])}
		} else {
			content := strings.TrimSpace(observationBulletRe.ReplaceAllString(line, ""))
			obs = models.Observation{ID: id, Content: content}
		}
		id++
		if obs.Content == "" {
			continue
		}
		observations = append(observations, obs)
	}
	return observations
}

// Priorities returns the shared priorities document verbatim, or "".
func (r *Resolver) Priorities(ctx context.Context) string {
	if text := r.ws.ReadFile("shared-context/priorities.md"); text != "" {
		return text
	}
	return r.remoteState(ctx, "priorities")
}
