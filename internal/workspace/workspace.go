package workspace

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Workspace reads and writes files under the agent workspace root. Every
// read resolves to an empty value on absence, I/O error, or parse failure;
// callers never see an error, they see "no data" and fall back.
type Workspace struct {
	root string
}

// New returns a Workspace rooted at dir.
func New(dir string) *Workspace {
	return &Workspace{root: dir}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// Abs resolves a relative path under the workspace root.
func (w *Workspace) Abs(rel string) string {
	return filepath.Join(w.root, rel)
}

// ReadFile returns the file's contents, or "" on any failure.
func (w *Workspace) ReadFile(rel string) string {
	data, err := os.ReadFile(w.Abs(rel))
	if err != nil {
		return ""
	}
	return string(data)
}

// ReadJSON decodes the file into v. It returns false on absence, read
// failure, or malformed JSON; v is left untouched in that case.
func (w *Workspace) ReadJSON(rel string, v interface{}) bool {
	data, err := os.ReadFile(w.Abs(rel))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// WriteFile writes content, creating parent directories as needed. Returns
// whether the write succeeded.
func (w *Workspace) WriteFile(rel, content string) bool {
	full := w.Abs(rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return false
	}
	return os.WriteFile(full, []byte(content), 0o644) == nil
}

// WriteJSON marshals v with indentation and writes it.
func (w *Workspace) WriteJSON(rel string, v interface{}) bool {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return false
	}
	return w.WriteFile(rel, string(data))
}

// ListDir returns directory entry names, or an empty slice when the
// directory is absent or unreadable.
func (w *Workspace) ListDir(rel string) []string {
	entries, err := os.ReadDir(w.Abs(rel))
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Exists reports whether the path exists under the root.
func (w *Workspace) Exists(rel string) bool {
	_, err := os.Stat(w.Abs(rel))
	return err == nil
}

// Stat returns file info, or nil when the path is absent.
func (w *Workspace) Stat(rel string) fs.FileInfo {
	info, err := os.Stat(w.Abs(rel))
	if err != nil {
		return nil
	}
	return info
}

// ParseMarkdownSections splits markdown into heading-keyed sections. Text
// before the first heading lands under "intro". Heading keys are lowercased.
func ParseMarkdownSections(content string) map[string]string {
	sections := make(map[string]string)
	current := "intro"
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			sections[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimLeft(line, "#")
		level := len(line) - len(trimmed)
		if level >= 1 && level <= 3 && strings.HasPrefix(trimmed, " ") {
			flush()
			current = strings.ToLower(strings.TrimSpace(trimmed))
			buf = nil
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return sections
}
