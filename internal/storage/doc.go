// Package storage rewrites the telemetry identifier keys inside
// Cursor's storage.json while leaving every other key untouched, and
// validates the result against an embedded JSON schema.
package storage
