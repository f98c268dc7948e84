// Package store holds the file-backed repositories for the audit tool's
// three JSON documents: the master checklist, the per-employee
// assignments, and the user credentials. Each repository owns one file
// path and rewrites the whole document on every mutation; the files are
// the sole source of truth between requests.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrStorageUnavailable wraps a backing file that is missing or
	// cannot be parsed.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrValidation wraps rejected input (empty question, dropdown
	// without options, unknown input type).
	ErrValidation = errors.New("validation failed")

	// ErrAuthFailure is returned for any credential mismatch. It
	// deliberately does not say which field was wrong.
	ErrAuthFailure = errors.New("invalid username or password")

	// ErrNotFound is returned for lookups of absent records.
	ErrNotFound = errors.New("not found")
)

func readJSONFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, filepath.Base(path), err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrStorageUnavailable, filepath.Base(path), err)
	}
	return nil
}

// writeJSONFile persists through a temp file in the same directory and a
// rename, so a crash mid-write never leaves a half-written document.
func writeJSONFile(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: stage %s: %v", ErrStorageUnavailable, filepath.Base(path), err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrStorageUnavailable, filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", ErrStorageUnavailable, filepath.Base(path), err)
	}
	return nil
}

// ensureFile seeds path with the given initial document if it does not
// exist yet.
func ensureFile(path string, initial any) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %v", ErrStorageUnavailable, filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create directory for %s: %v", ErrStorageUnavailable, filepath.Base(path), err)
	}
	return writeJSONFile(path, initial)
}
