package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cursorid-labs/cursorid/internal/telemetry"
)

// Telemetry keys overwritten by a reset. Everything else in the
// document passes through unchanged.
const (
	KeyMachineID    = "telemetry.machineId"
	KeyMacMachineID = "telemetry.macMachineId"
	KeyDevDeviceID  = "telemetry.devDeviceId"
	KeySQMID        = "telemetry.sqmId"
)

// Update overwrites the four telemetry keys at path with freshly
// generated identifiers, creating the file and its parent directories
// when absent. An existing file that does not parse as JSON is an
// error; the document is never silently discarded. The returned IDs
// are the three values worth reporting; the SQM id is written too.
func Update(path string) (*telemetry.IDs, error) {
	doc := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Fresh install: start from an empty document.
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ids := &telemetry.IDs{
		MachineID:    telemetry.NewMachineID(),
		MacMachineID: telemetry.NewMachineID(),
		DevDeviceID:  telemetry.NewDeviceID(),
	}
	doc[KeyMachineID] = ids.MachineID
	doc[KeyMacMachineID] = ids.MacMachineID
	doc[KeyDevDeviceID] = ids.DevDeviceID
	doc[KeySQMID] = telemetry.NewSQMID()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Cursor writes this file with 4-space indentation; keep it readable
	// the same way.
	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	return ids, nil
}
