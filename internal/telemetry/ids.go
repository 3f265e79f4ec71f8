// Package telemetry generates the random identifier shapes Cursor keeps
// in storage.json. Values are independent draws; nothing ties a fresh id
// to the one it replaces.
package telemetry

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// IDs holds the identifiers reported back to the user after a reset.
// The SQM id is written alongside them but not reported.
type IDs struct {
	MachineID    string
	MacMachineID string
	DevDeviceID  string
}

// NewMachineID returns 64 lowercase hex characters: two random UUIDs
// rendered back to back. Cursor only cares about length and character set.
func NewMachineID() string {
	a, b := uuid.New(), uuid.New()
	return hex.EncodeToString(a[:]) + hex.EncodeToString(b[:])
}

// NewDeviceID returns a canonical dashed lowercase UUID-v4.
func NewDeviceID() string {
	return uuid.NewString()
}

// NewSQMID returns a brace-wrapped uppercase UUID, the shape the Windows
// SQM client expects.
func NewSQMID() string {
	return "{" + strings.ToUpper(uuid.NewString()) + "}"
}
