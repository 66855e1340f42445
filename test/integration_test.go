// ABOUTME: Integration tests for notebook CLI commands.
// ABOUTME: Builds the binary once and drives full workflows against temp dirs.

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var notebookBin string

func TestMain(m *testing.M) {
	cmd := exec.Command("go", "build", "-o", "bin/notebook", "./cmd/notebook")
	cmd.Dir = ".."
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	wd, _ := os.Getwd()
	notebookBin = filepath.Join(wd, "..", "bin", "notebook")

	os.Exit(m.Run())
}

func TestAddListShowTrashRestore(t *testing.T) {
	home := t.TempDir()

	out, err := runNotebook(home, "add", "Test Note", "-d", "<p>Test content here</p>", "-c", "work")
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created note") {
		t.Errorf("expected 'Created note' in output: %s", out)
	}

	out, err = runNotebook(home, "list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	idPrefix := idFor(out, "Test Note")
	if idPrefix == "" {
		t.Fatalf("could not extract ID prefix from: %s", out)
	}

	out, err = runNotebook(home, "show", idPrefix)
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Test content") {
		t.Errorf("expected 'Test content' in show: %s", out)
	}

	out, err = runNotebook(home, "rm", idPrefix)
	if err != nil {
		t.Fatalf("rm failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "trash") {
		t.Errorf("expected trash confirmation: %s", out)
	}

	out, _ = runNotebook(home, "trash")
	if !strings.Contains(out, "7 days left") {
		t.Errorf("expected countdown in trash listing: %s", out)
	}

	out, _ = runNotebook(home, "list")
	if strings.Contains(out, "Test Note") {
		t.Errorf("did not expect trashed note in list: %s", out)
	}

	if out, err = runNotebook(home, "trash", "restore", idPrefix); err != nil {
		t.Fatalf("restore failed: %v\n%s", err, out)
	}
	out, _ = runNotebook(home, "list")
	if !strings.Contains(out, "Test Note") {
		t.Errorf("expected restored note in list: %s", out)
	}
}

func TestEditHistoryRestore(t *testing.T) {
	home := t.TempDir()

	_, _ = runNotebook(home, "add", "Draft", "-d", "<p>v1</p>")
	out, _ := runNotebook(home, "list")
	idPrefix := idFor(out, "Draft")
	if idPrefix == "" {
		t.Fatalf("could not extract ID prefix from: %s", out)
	}

	if out, err := runNotebook(home, "edit", idPrefix, "-t", "Final", "-d", "<p>v2</p>"); err != nil {
		t.Fatalf("edit failed: %v\n%s", err, out)
	}

	out, _ = runNotebook(home, "history", idPrefix)
	if !strings.Contains(out, "Draft") {
		t.Fatalf("expected previous title in history: %s", out)
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		t.Fatalf("empty history output")
	}

	if out, err := runNotebook(home, "history", idPrefix, "--restore", fields[0]); err != nil {
		t.Fatalf("restore version failed: %v\n%s", err, out)
	}

	out, _ = runNotebook(home, "show", idPrefix, "--raw")
	if !strings.Contains(out, "<p>v1</p>") {
		t.Errorf("expected restored description: %s", out)
	}
	out, _ = runNotebook(home, "history", idPrefix)
	if !strings.Contains(out, "Final") {
		t.Errorf("expected replaced title kept as a version: %s", out)
	}
}

func TestSearchAndFilters(t *testing.T) {
	home := t.TempDir()

	_, _ = runNotebook(home, "add", "Go Programming", "-d", "<p>Learn about <em>goroutines</em></p>", "-c", "study")
	_, _ = runNotebook(home, "add", "Cooking", "-d", "<p>How to make pasta</p>", "--pin")

	out, _ := runNotebook(home, "list", "--search", "goroutines")
	if !strings.Contains(out, "Go Programming") {
		t.Errorf("expected 'Go Programming' in search: %s", out)
	}
	if strings.Contains(out, "Cooking") {
		t.Errorf("did not expect 'Cooking' in search: %s", out)
	}

	out, _ = runNotebook(home, "list", "--pinned")
	if !strings.Contains(out, "Cooking") || strings.Contains(out, "Go Programming") {
		t.Errorf("expected only the pinned note: %s", out)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	backup := filepath.Join(t.TempDir(), "notes-backup.json")

	_, _ = runNotebook(src, "add", "Portable", "-d", "<p>moves between stores</p>", "-p", "high")
	if out, err := runNotebook(src, "export", "-o", backup); err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}

	out, err := runNotebook(dst, "--backend", "sqlite", "import", backup)
	if err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "1 new") {
		t.Errorf("expected one new note: %s", out)
	}

	out, _ = runNotebook(dst, "--backend", "sqlite", "list")
	if !strings.Contains(out, "Portable") {
		t.Errorf("expected imported note in list: %s", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"not": "an array"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if out, err := runNotebook(dst, "--backend", "sqlite", "import", bad); err == nil {
		t.Errorf("expected import of non-array to fail: %s", out)
	}
}

// idFor returns the id prefix printed on the list line holding title.
func idFor(listing, title string) string {
	for _, line := range strings.Split(listing, "\n") {
		if !strings.Contains(line, title) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 1 {
			return fields[1]
		}
	}
	return ""
}

func runNotebook(home string, args ...string) (string, error) {
	cmd := exec.Command(notebookBin, args...) //nolint:gosec // Running our own test binary is expected in integration tests
	cmd.Env = append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(home, "config"),
		"NOTEBOOK_DATA_DIR="+filepath.Join(home, "data"),
		"NOTEBOOK_BACKEND=",
		"NOTEBOOK_LOG_LEVEL=error",
		"NO_COLOR=1",
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
