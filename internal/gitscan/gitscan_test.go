package gitscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLanguageHistogram(t *testing.T) {
	files := []string{
		"src/index.ts", "src/app.tsx", "main.go", "lib/util.go",
		"README.md", "config.json", "notes.unknownext", "Makefile",
	}
	got := LanguageHistogram(files)

	want := map[string]int{
		"TypeScript": 2,
		"Go":         2,
		"Markdown":   1,
		"JSON":       1,
		"unknownext": 1,
		"other":      1,
	}
	for label, count := range want {
		if got[label] != count {
			t.Errorf("%s = %d, want %d", label, got[label], count)
		}
	}
}

func TestSplitLines(t *testing.T) {
	if got := splitLines(""); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}
	got := splitLines(" M internal/app.go\n?? newfile\n\n")
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(got), got)
	}
	if got[0] != "M internal/app.go" || got[1] != "?? newfile" {
		t.Errorf("lines = %v", got)
	}
}

func TestScanSkipsNonRepos(t *testing.T) {
	dir := t.TempDir()
	// plain dir, hidden dir, and a file: none should be inspected
	os.MkdirAll(filepath.Join(dir, "not-a-repo"), 0o755)
	os.MkdirAll(filepath.Join(dir, ".hidden"), 0o755)
	os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0o644)

	s := NewScanner(dir)
	if repos := s.Scan(context.Background()); len(repos) != 0 {
		t.Errorf("expected no repos, got %v", repos)
	}
}

func TestScanMissingProjectsDir(t *testing.T) {
	s := NewScanner(filepath.Join(t.TempDir(), "absent"))
	repos := s.Scan(context.Background())
	if repos == nil || len(repos) != 0 {
		t.Errorf("missing projects dir should yield empty slice, got %v", repos)
	}
}

func TestRunCommandFailureDegradesToEmpty(t *testing.T) {
	s := &Scanner{ProjectsDir: t.TempDir(), Timeout: 2 * time.Second}
	// not a git repo: every git command fails, run must return ""
	if out := s.run(context.Background(), t.TempDir(), "branch", "--show-current"); out != "" {
		t.Errorf("expected empty output from failing command, got %q", out)
	}
}
