package models

// ChatMessage is one transcript line. Transcripts are plain files under the
// workspace; the dashboard only reads them.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
	Channel   string `json:"channel,omitempty"`
}

// ChatSession summarises one transcript file.
type ChatSession struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Channel      string `json:"channel"`
	LastMessage  string `json:"lastMessage"`
	MessageCount int    `json:"messageCount"`
	UpdatedAt    string `json:"updatedAt"`
	Path         string `json:"-"`
}
