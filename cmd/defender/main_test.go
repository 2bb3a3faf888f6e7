package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/games/defender"
	"github.com/vovakirdan/star-defender/internal/storage"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~", home},
		{"~/.defender/scores.db", filepath.Join(home, ".defender", "scores.db")},
		{"./scores.db", "./scores.db"},
		{"/tmp/~x", "/tmp/~x"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("printScores() = %q", buf.String())
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{1200, 800} {
		if _, err := store.SaveScore(defender.ID, storage.Record{Score: score, Wave: 4, Kills: 30}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := printScores(&buf, store); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "High Scores - Star Defender") {
		t.Errorf("missing title in %q", out)
	}
	if strings.Index(out, "1200") > strings.Index(out, "800") {
		t.Error("scores should be listed best first")
	}
	if !strings.Contains(out, "Best: 1200  Games: 2  Total kills: 60") {
		t.Errorf("missing stats line in %q", out)
	}
}

func TestPrintReport(t *testing.T) {
	report := defender.Simulate(config.DefaultDefenderConfig(), 7, 600, 1000.0/60, nil)

	var buf bytes.Buffer
	printReport(&buf, 7, report)
	out := buf.String()

	for _, want := range []string{"Seed:    7", "Score:", "Wave:", "Kills:", "Pool:"} {
		if !strings.Contains(out, want) {
			t.Errorf("printReport() missing %q in %q", want, out)
		}
	}
}
