// Package config manages user-level settings stored at ~/.cursorid/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// explicit overrides for the Cursor storage.json and main.js locations.
package config
