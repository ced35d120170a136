package models

// ClientInfo is parsed from one markdown file under clients/.
type ClientInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
	Contact string `json:"contact,omitempty"`
	Value   int    `json:"value,omitempty"`
}
