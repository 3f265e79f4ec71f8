package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// End-to-end through the pipeline with both targets pointed at a temp
// directory, so the test behaves the same on every platform family.
func TestRunReset_FreshInstall(t *testing.T) {
	dir := t.TempDir()
	storagePath := filepath.Join(dir, "User", "globalStorage", "storage.json")
	t.Setenv("CURSORID_STORAGE", storagePath)
	t.Setenv("CURSORID_MAIN_JS", filepath.Join(dir, "main.js"))

	var out bytes.Buffer
	if err := runReset(&out, resetOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(storagePath)
	if err != nil {
		t.Fatalf("storage file was not created: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("storage file is not valid JSON: %v", err)
	}
	for _, key := range []string{
		"telemetry.machineId",
		"telemetry.macMachineId",
		"telemetry.devDeviceId",
		"telemetry.sqmId",
	} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing key %s", key)
		}
	}

	// The three primary ids are reported with their expected shapes.
	text := out.String()
	if !regexp.MustCompile(`telemetry\.machineId: [0-9a-f]{64}`).MatchString(text) {
		t.Errorf("machine id not reported: %q", text)
	}
	if !regexp.MustCompile(`telemetry\.devDeviceId: [0-9a-f-]{36}`).MatchString(text) {
		t.Errorf("device id not reported: %q", text)
	}

	// No backup for a file that did not exist yet.
	if strings.Contains(text, "Created backup:") {
		t.Errorf("unexpected backup on fresh install: %q", text)
	}
}

func TestRunReset_BacksUpExistingStorage(t *testing.T) {
	dir := t.TempDir()
	storagePath := filepath.Join(dir, "storage.json")
	if err := os.WriteFile(storagePath, []byte(`{"unrelated": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CURSORID_STORAGE", storagePath)
	t.Setenv("CURSORID_MAIN_JS", filepath.Join(dir, "main.js"))

	var out bytes.Buffer
	if err := runReset(&out, resetOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backups, err := filepath.Glob(storagePath + ".backup_*")
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected one backup, got %d", len(backups))
	}
	original, err := os.ReadFile(backups[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != `{"unrelated": true}` {
		t.Error("backup does not hold the pre-reset content")
	}

	data, _ := os.ReadFile(storagePath)
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if v, ok := doc["unrelated"].(bool); !ok || !v {
		t.Error("unrelated key not preserved through reset")
	}
}

func TestRunReset_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	storagePath := filepath.Join(dir, "storage.json")
	t.Setenv("CURSORID_STORAGE", storagePath)
	t.Setenv("CURSORID_MAIN_JS", filepath.Join(dir, "main.js"))

	var out bytes.Buffer
	if err := runReset(&out, resetOptions{DryRun: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(storagePath); !os.IsNotExist(err) {
		t.Error("dry run created the storage file")
	}
	if !strings.Contains(out.String(), "Would write:") {
		t.Errorf("expected dry-run report, got %q", out.String())
	}
}

func TestRunReset_MalformedStorage(t *testing.T) {
	dir := t.TempDir()
	storagePath := filepath.Join(dir, "storage.json")
	if err := os.WriteFile(storagePath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CURSORID_STORAGE", storagePath)
	t.Setenv("CURSORID_MAIN_JS", filepath.Join(dir, "main.js"))

	var out bytes.Buffer
	if err := runReset(&out, resetOptions{}); err == nil {
		t.Fatal("expected error for malformed storage file")
	}
}
