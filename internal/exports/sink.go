// Package exports owns the audit spreadsheet surface: one write-once
// xlsx file per submitted audit, the listing/download side of those
// files, the tar.xz bundle, bulk checklist import from spreadsheets,
// and the report logo pipeline.
package exports

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ifclabs/ifcsuite/internal/store"
)

const (
	exportExt     = ".xlsx"
	timestampForm = "20060102_150405"
)

// Response is one answered question inside a submitted audit.
type Response struct {
	Question string
	Answer   string
}

// Sink writes completed audits into a directory of spreadsheet files.
// Records are append-only: nothing ever updates or deletes an export.
type Sink struct {
	dir      string
	logoPath string

	// now is swappable for collision tests.
	now func() time.Time
}

func NewSink(dir, logoPath string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create export directory: %v", store.ErrStorageUnavailable, err)
	}
	return &Sink{dir: dir, logoPath: logoPath, now: time.Now}, nil
}

// Submit persists one completed audit as a spreadsheet named
// <client>_<YYYYMMDD_HHMMSS>.xlsx and returns the filename. The sheet
// carries a header row Client, Audit Period, question, answer and one
// row per response, with the client and period repeated on every row.
// A second submission for the same client within the same second gets a
// _2, _3, ... suffix instead of overwriting the first.
func (s *Sink) Submit(client, auditPeriod string, responses []Response) (string, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return "", fmt.Errorf("%w: client name is required", store.ErrValidation)
	}
	if len(responses) == 0 {
		return "", fmt.Errorf("%w: audit has no responses", store.ErrValidation)
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	headers := []string{"Client", "Audit Period", "question", "answer"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("build export: %w", err)
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return "", fmt.Errorf("build export: %w", err)
		}
	}
	for i, resp := range responses {
		row := i + 2
		values := []string{client, strings.TrimSpace(auditPeriod), resp.Question, resp.Answer}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return "", fmt.Errorf("build export: %w", err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("build export: %w", err)
			}
		}
	}
	if err := s.embedLogo(file, sheet); err != nil {
		return "", err
	}

	name := s.nextFilename(client)
	if err := file.SaveAs(filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("%w: save export %s: %v", store.ErrStorageUnavailable, name, err)
	}
	return name, nil
}

// embedLogo drops the saved report logo to the right of the data
// columns when one has been uploaded.
func (s *Sink) embedLogo(file *excelize.File, sheet string) error {
	raw, err := os.ReadFile(s.logoPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read logo: %v", store.ErrStorageUnavailable, err)
	}
	err = file.AddPictureFromBytes(sheet, "F1", &excelize.Picture{
		Extension: ".png",
		File:      raw,
	})
	if err != nil {
		return fmt.Errorf("embed logo: %w", err)
	}
	return nil
}

func (s *Sink) nextFilename(client string) string {
	base := sanitizeClient(client) + "_" + s.now().Format(timestampForm)
	name := base + exportExt
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(s.dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s_%d%s", base, n, exportExt)
	}
}

// sanitizeClient keeps client names safe to interpolate into a
// filename.
func sanitizeClient(client string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '.', r == '-':
			return r
		default:
			return '-'
		}
	}, client)
}

// ListFiles returns the export filenames, most recent first. The
// zero-padded fixed-width timestamp in each name makes the descending
// lexicographic order a descending chronological order.
func (s *Sink) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list exports: %v", store.ErrStorageUnavailable, err)
	}
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), exportExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Read returns the raw bytes of one export. Only bare filenames are
// accepted; anything that could escape the export directory is treated
// as absent.
func (s *Sink) Read(filename string) ([]byte, error) {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, "/\\") || filename != filepath.Base(filename) {
		return nil, fmt.Errorf("%w: export %q", store.ErrNotFound, filename)
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: export %q", store.ErrNotFound, filename)
		}
		return nil, fmt.Errorf("%w: read export %s: %v", store.ErrStorageUnavailable, filename, err)
	}
	return raw, nil
}
