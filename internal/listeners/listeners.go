// Package listeners enumerates TCP listening sockets on the local machine.
// It feeds the services sync directly from live OS state rather than a file.
package listeners

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"missioncontrol/internal/models"
)

var portRe = regexp.MustCompile(`:(\d+)$`)

// Snapshot shells out to lsof and returns one SystemService per distinct
// name:port pair. A failed or missing lsof yields an empty slice.
func Snapshot(ctx context.Context, timeout time.Duration) []models.SystemService {
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "lsof", "-iTCP", "-sTCP:LISTEN", "-P", "-n")
	out, err := cmd.Output()
	if err != nil {
		return []models.SystemService{}
	}
	return Parse(string(out), time.Now().UTC().Format(time.RFC3339))
}

// Parse turns lsof tabular output into service snapshots, deduplicating by
// name:port. The first line (column headers) is skipped.
func Parse(raw, lastCheck string) []models.SystemService {
	services := make([]models.SystemService, 0, 16)
	seen := make(map[string]bool)

	lines := strings.Split(raw, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 9 {
			continue
		}
		name := fields[0]
		pid, _ := strconv.Atoi(fields[1])

		port := 0
		if m := portRe.FindStringSubmatch(fields[8]); m != nil {
			port, _ = strconv.Atoi(m[1])
		}

		key := name + ":" + strconv.Itoa(port)
		if seen[key] {
			continue
		}
		seen[key] = true

		services = append(services, models.SystemService{
			Name:      name,
			Port:      port,
			Status:    "up",
			PID:       pid,
			LastCheck: lastCheck,
		})
	}
	return services
}
