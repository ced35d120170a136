package resolve

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"time"

	"missioncontrol/internal/models"
)

var transcriptDirs = []string{"transcripts", "chat", "logs"}
var channelRe = regexp.MustCompile(`(?i)^(telegram|discord|web|cli)`)

// ChatSessions lists transcript files across the known transcript
// directories, newest first. channel narrows the list when non-empty.
func (r *Resolver) ChatSessions(channel string) []models.ChatSession {
	sessions := []models.ChatSession{}
	for _, dir := range transcriptDirs {
		for _, file := range r.ws.ListDir(dir) {
			if !strings.HasSuffix(file, ".jsonl") && !strings.HasSuffix(file, ".json") {
				continue
			}
			rel := dir + "/" + file
			info := r.ws.Stat(rel)
			if info == nil {
				continue
			}
			id := strings.TrimSuffix(strings.TrimSuffix(file, ".jsonl"), ".json")
			ch := "unknown"
			if m := channelRe.FindString(file); m != "" {
				ch = strings.ToLower(m)
			}
			sessions = append(sessions, models.ChatSession{
				ID:        id,
				Name:      titleCase(strings.ReplaceAll(id, "_", "-")),
				Channel:   ch,
				UpdatedAt: info.ModTime().UTC().Format(time.RFC3339),
				Path:      rel,
			})
		}
	}

	if channel != "" {
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.Channel == channel {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt > sessions[j].UpdatedAt
	})
	return sessions
}

// ChatMessages loads one session's transcript. The returned session is nil
// when the id is unknown. search and channel filter messages before the
// offset/limit window is applied; total counts the filtered set.
func (r *Resolver) ChatMessages(sessionID, search, channel string, limit, offset int) ([]models.ChatMessage, int, *models.ChatSession) {
	var session *models.ChatSession
	for _, s := range r.ChatSessions("") {
		if s.ID == sessionID {
			s := s
			session = &s
			break
		}
	}
	if session == nil {
		return []models.ChatMessage{}, 0, nil
	}

	messages := parseTranscript(r.ws.ReadFile(session.Path), strings.HasSuffix(session.Path, ".jsonl"))

	if search != "" {
		lower := strings.ToLower(search)
		filtered := messages[:0]
		for _, m := range messages {
			if strings.Contains(strings.ToLower(m.Content), lower) {
				filtered = append(filtered, m)
			}
		}
		messages = filtered
	}
	if channel != "" {
		filtered := messages[:0]
		for _, m := range messages {
			if m.Channel == channel {
				filtered = append(filtered, m)
			}
		}
		messages = filtered
	}

	total := len(messages)
	if offset > len(messages) {
		offset = len(messages)
	}
	end := offset + limit
	if end > len(messages) {
		end = len(messages)
	}
	return messages[offset:end], total, session
}

// parseTranscript reads either one-JSON-object-per-line or a plain JSON
// array (optionally wrapped in {"messages": [...]}). Malformed lines are
// dropped, not fatal.
func parseTranscript(raw string, jsonl bool) []models.ChatMessage {
	messages := []models.ChatMessage{}
	if raw == "" {
		return messages
	}
	if jsonl {
		for _, line := range strings.Split(raw, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			var m models.ChatMessage
			if err := json.Unmarshal([]byte(line), &m); err == nil {
				messages = append(messages, m)
			}
		}
		return messages
	}

	if err := json.Unmarshal([]byte(raw), &messages); err == nil {
		return messages
	}
	var wrapped struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && wrapped.Messages != nil {
		return wrapped.Messages
	}
	return []models.ChatMessage{}
}

const chatQueueFile = "state/chat-queue.json"

// QueueChatMessage appends an outbound message to the agent's inbox file and
// returns the queue depth. The agent runtime drains the file on its own
// schedule.
func (r *Resolver) QueueChatMessage(message, channel string) (int, bool) {
	var queue []map[string]interface{}
	r.ws.ReadJSON(chatQueueFile, &queue)
	queue = append(queue, map[string]interface{}{
		"message":   message,
		"channel":   channel,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if !r.ws.WriteJSON(chatQueueFile, queue) {
		return 0, false
	}
	return len(queue), true
}
