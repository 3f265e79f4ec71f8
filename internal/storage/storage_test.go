package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var (
	hex64Pattern = regexp.MustCompile(`^[0-9a-f]{64}$`)
	uuidPattern  = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	sqmPattern   = regexp.MustCompile(`^\{[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}\}$`)
)

func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	return doc
}

func TestUpdate_MissingFile(t *testing.T) {
	// The parent directories do not exist yet either.
	path := filepath.Join(t.TempDir(), "globalStorage", "storage.json")

	ids, err := Update(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := readDoc(t, path)
	if len(doc) != 4 {
		t.Errorf("expected exactly the four telemetry keys, got %d keys", len(doc))
	}
	if !hex64Pattern.MatchString(ids.MachineID) {
		t.Errorf("machine id shape: %q", ids.MachineID)
	}
	if !hex64Pattern.MatchString(ids.MacMachineID) {
		t.Errorf("mac machine id shape: %q", ids.MacMachineID)
	}
	if !uuidPattern.MatchString(ids.DevDeviceID) {
		t.Errorf("device id shape: %q", ids.DevDeviceID)
	}
	sqm, _ := doc[KeySQMID].(string)
	if !sqmPattern.MatchString(sqm) {
		t.Errorf("sqm id shape: %q", sqm)
	}
}

func TestUpdate_PreservesUnrelatedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte(`{"unrelated": 1, "telemetry.machineId": "old"}`), 0644); err != nil {
		t.Fatal(err)
	}

	ids, err := Update(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := readDoc(t, path)
	if v, ok := doc["unrelated"].(float64); !ok || v != 1 {
		t.Errorf("unrelated key not preserved: %v", doc["unrelated"])
	}
	if doc[KeyMachineID] == "old" {
		t.Error("machine id was not rotated")
	}
	if doc[KeyMachineID] != ids.MachineID {
		t.Error("returned machine id differs from the written one")
	}
}

func TestUpdate_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Update(path); err == nil {
		t.Fatal("expected parse error for malformed JSON")
	}

	// The document must not be silently discarded.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{not json" {
		t.Error("malformed file was rewritten")
	}
}

func TestUpdate_RotatesOnEveryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	first, err := Update(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Update(path)
	if err != nil {
		t.Fatal(err)
	}
	if first.MachineID == second.MachineID {
		t.Error("machine id did not change between runs")
	}
	if first.DevDeviceID == second.DevDeviceID {
		t.Error("device id did not change between runs")
	}
}
