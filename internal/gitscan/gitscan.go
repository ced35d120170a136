// Package gitscan derives repository metadata from local project checkouts
// by shelling out to git. A command that fails or times out yields an empty
// value for that one field, never an error for the repo.
package gitscan

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"missioncontrol/internal/models"
)

// languageLabels maps file extensions to display labels for the language
// histogram. Unknown extensions count under the raw extension.
var languageLabels = map[string]string{
	"ts":   "TypeScript",
	"tsx":  "TypeScript",
	"js":   "JavaScript",
	"jsx":  "JavaScript",
	"py":   "Python",
	"rs":   "Rust",
	"go":   "Go",
	"md":   "Markdown",
	"json": "JSON",
	"css":  "CSS",
	"html": "HTML",
	"scss": "SCSS",
	"yaml": "YAML",
	"yml":  "YAML",
}

// Scanner walks a projects directory and inspects every subdirectory that
// carries a .git marker.
type Scanner struct {
	ProjectsDir string
	Timeout     time.Duration // per git command
}

// NewScanner returns a scanner with the default 10s per-command timeout.
func NewScanner(projectsDir string) *Scanner {
	return &Scanner{ProjectsDir: projectsDir, Timeout: 10 * time.Second}
}

// Scan returns one Repo per git checkout under ProjectsDir. An unreadable
// projects directory yields an empty slice.
func (s *Scanner) Scan(ctx context.Context) []models.Repo {
	repos := make([]models.Repo, 0, 8)

	entries, err := os.ReadDir(s.ProjectsDir)
	if err != nil {
		return repos
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		repoPath := filepath.Join(s.ProjectsDir, entry.Name())
		if _, err := os.Stat(filepath.Join(repoPath, ".git")); err != nil {
			continue
		}
		repos = append(repos, s.inspect(ctx, entry.Name(), repoPath))
	}

	return repos
}

// inspect runs the per-repo git commands. Each command degrades
// independently to its zero value.
func (s *Scanner) inspect(ctx context.Context, name, repoPath string) models.Repo {
	branch := s.run(ctx, repoPath, "branch", "--show-current")
	if branch == "" {
		branch = "unknown"
	}

	dirty := s.run(ctx, repoPath, "status", "--porcelain")
	changes := splitLines(dirty)

	repo := models.Repo{
		Name:           name,
		Path:           repoPath,
		Branch:         branch,
		LastCommit:     s.run(ctx, repoPath, "log", "-1", "--pretty=format:%s"),
		LastCommitDate: s.run(ctx, repoPath, "log", "-1", "--pretty=format:%cI"),
		DirtyFiles:     len(changes),
		Clean:          len(changes) == 0,
		Languages:      LanguageHistogram(splitLines(s.run(ctx, repoPath, "ls-files"))),
	}
	if len(changes) > 0 {
		repo.Changes = changes
	}
	return repo
}

// run executes one git command with the scanner's timeout and returns its
// trimmed stdout, or "" on any failure.
func (s *Scanner) run(ctx context.Context, dir string, args ...string) string {
	cmdCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// LanguageHistogram counts tracked files per language label.
func LanguageHistogram(files []string) map[string]int {
	languages := make(map[string]int)
	for _, f := range files {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f), "."))
		if ext == "" {
			ext = "other"
		}
		label, ok := languageLabels[ext]
		if !ok {
			label = ext
		}
		languages[label]++
	}
	return languages
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, 8)
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
