package resolve

import (
	"regexp"
	"strconv"
	"strings"

	"missioncontrol/internal/models"
)

var (
	clientStatusRe  = regexp.MustCompile(`(?i)status:\s*(prospect|contacted|meeting|proposal|active)`)
	clientContactRe = regexp.MustCompile(`(?i)contact:\s*(.+)`)
	clientValueRe   = regexp.MustCompile(`(?i)value:\s*\$?([\d,]+)`)
)

const clientNotesPreview = 200

// Clients parses one client record per markdown file under clients/.
// Metadata lives in loose "key: value" lines anywhere in the file; status
// defaults to prospect.
func (r *Resolver) Clients() []models.ClientInfo {
	clients := []models.ClientInfo{}
	for _, file := range r.ws.ListDir("clients") {
		if !strings.HasSuffix(file, ".md") {
			continue
		}
		text := r.ws.ReadFile("clients/" + file)
		if text == "" {
			continue
		}

		id := strings.TrimSuffix(file, ".md")
		client := models.ClientInfo{
			ID:     id,
			Name:   titleCase(id),
			Status: "prospect",
			Notes:  text,
		}
		if len(client.Notes) > clientNotesPreview {
			client.Notes = client.Notes[:clientNotesPreview]
		}
		if m := clientStatusRe.FindStringSubmatch(text); m != nil {
			client.Status = strings.ToLower(m[1])
		}
		if m := clientContactRe.FindStringSubmatch(text); m != nil {
			client.Contact = strings.TrimSpace(m[1])
		}
		if m := clientValueRe.FindStringSubmatch(text); m != nil {
			if v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
				client.Value = v
			}
		}
		clients = append(clients, client)
	}
	return clients
}
