package exports

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/ifclabs/ifcsuite/internal/store"
)

const maxImportRows = 100000

// ParseChecklistSheet reads a bulk checklist upload. Both .xlsx and
// legacy .xls workbooks are accepted; the first row must carry the
// headers question, input type, and options (options may be omitted).
// Blank question rows are skipped. Returned items carry zero ids; the
// checklist store reindexes on save.
func ParseChecklistSheet(reader io.Reader, filename string) ([]store.ChecklistItem, error) {
	rows, err := readRowsFromSpreadsheet(reader, filename)
	if err != nil {
		return nil, err
	}

	questionIdx, typeIdx, optionsIdx := -1, -1, -1
	for idx, header := range rows[0] {
		switch normalizeHeader(header) {
		case "question":
			questionIdx = idx
		case "input type", "input_type", "type":
			typeIdx = idx
		case "options":
			optionsIdx = idx
		}
	}
	if questionIdx < 0 {
		return nil, fmt.Errorf("%w: spreadsheet needs a question column", store.ErrValidation)
	}

	items := []store.ChecklistItem{}
	for rowNum, row := range rows[1:] {
		question := cellValue(row, questionIdx)
		if question == "" {
			continue
		}
		inputType, err := parseImportedType(cellValue(row, typeIdx))
		if err != nil {
			return nil, fmt.Errorf("%w (row %d)", err, rowNum+2)
		}
		options := []string{}
		if inputType == store.InputTypeDropdown {
			options = store.SplitOptions(cellValue(row, optionsIdx))
			if len(options) == 0 {
				return nil, fmt.Errorf("%w: dropdown row %d has no options", store.ErrValidation, rowNum+2)
			}
		}
		items = append(items, store.ChecklistItem{
			Question:  question,
			InputType: inputType,
			Options:   options,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: spreadsheet has no checklist rows", store.ErrValidation)
	}
	return items, nil
}

// parseImportedType is forgiving about spreadsheet spellings; a blank
// cell means a free-text question.
func parseImportedType(value string) (store.InputType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "text":
		return store.InputTypeText, nil
	case "yes/no", "yesno", "yes-no":
		return store.InputTypeYesNo, nil
	case "dropdown", "select":
		return store.InputTypeDropdown, nil
	}
	return "", fmt.Errorf("%w: unknown input type %q", store.ErrValidation, value)
}

func readRowsFromSpreadsheet(reader io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable .xls upload", store.ErrValidation)
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("%w: no worksheet found", store.ErrValidation)
		}
		rows := workbook.ReadAllCells(maxImportRows)
		if len(rows) == 0 {
			return nil, fmt.Errorf("%w: worksheet is empty", store.ErrValidation)
		}
		return rows, nil
	default:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable spreadsheet upload", store.ErrValidation)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("%w: no worksheet found", store.ErrValidation)
		}
		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read worksheet: %w", err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%w: worksheet is empty", store.ErrValidation)
		}
		return rows, nil
	}
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
