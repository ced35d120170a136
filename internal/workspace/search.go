package workspace

import (
	"os"
	"path/filepath"
	"strings"
)

// maxSearchResults is a hard resource bound, not a pagination cursor.
// Callers cannot retrieve more.
const maxSearchResults = 100

// searchExtensions is the fixed set of file types the full-text search scans.
var searchExtensions = []string{".md", ".json", ".txt", ".ts"}

// SearchResult is one matching line.
type SearchResult struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Content string `json:"content"`
}

// Search walks the workspace tree and returns lines containing query,
// case-insensitively. Hidden entries and dependency directories are skipped.
// The walk stops after maxSearchResults matches.
func (w *Workspace) Search(query string) []SearchResult {
	results := make([]SearchResult, 0, 16)
	lower := strings.ToLower(query)
	w.searchDir(w.root, "", lower, &results)
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

func (w *Workspace) searchDir(dir, prefix, lowerQuery string, results *[]SearchResult) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") || entry.Name() == "node_modules" {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		rel := entry.Name()
		if prefix != "" {
			rel = prefix + "/" + entry.Name()
		}
		if entry.IsDir() {
			w.searchDir(full, rel, lowerQuery, results)
		} else if hasSearchableExt(entry.Name()) {
			scanFile(full, rel, lowerQuery, results)
		}
		if len(*results) >= maxSearchResults {
			return
		}
	}
}

func hasSearchableExt(name string) bool {
	for _, ext := range searchExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func scanFile(full, rel, lowerQuery string, results *[]SearchResult) {
	data, err := os.ReadFile(full)
	if err != nil {
		return
	}
	for i, line := range strings.Split(string(data), "\n") {
		if strings.Contains(strings.ToLower(line), lowerQuery) {
			*results = append(*results, SearchResult{
				Path:    rel,
				Line:    i + 1,
				Content: strings.TrimSpace(line),
			})
		}
	}
}
