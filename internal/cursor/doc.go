// Package cursor locates the Cursor editor's on-disk footprint: the
// storage.json that holds its telemetry identifiers and the bundled
// main.js that derives a hardware id at runtime. Resolution checks an
// explicit CURSORID_* env override first, then falls back to the
// platform's install conventions. It also reads the app's product.json
// so callers can warn when a Cursor build is newer than the releases
// the main.js patch patterns were checked against.
package cursor
