package exports

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ifclabs/ifcsuite/internal/store"
)

func buildSheet(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()
	sheet := file.GetSheetName(0)
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, file.SetCellValue(sheet, cell, value))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestParseChecklistSheet(t *testing.T) {
	reader := buildSheet(t, [][]string{
		{"question", "input type", "options"},
		{"Is the ledger reconciled?", "Yes/No", ""},
		{"Which framework applies?", "Dropdown", "SOX, COSO, Other"},
		{"", "Text", ""},
		{"Describe exceptions", "", ""},
	})

	items, err := ParseChecklistSheet(reader, "checklist.xlsx")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Is the ledger reconciled?", items[0].Question)
	assert.Equal(t, store.InputTypeYesNo, items[0].InputType)

	assert.Equal(t, store.InputTypeDropdown, items[1].InputType)
	assert.Equal(t, []string{"SOX", "COSO", "Other"}, items[1].Options)

	// Blank type defaults to free text.
	assert.Equal(t, store.InputTypeText, items[2].InputType)
}

func TestParseChecklistSheetHeaderRequired(t *testing.T) {
	reader := buildSheet(t, [][]string{
		{"title", "kind"},
		{"Q1", "Text"},
	})
	_, err := ParseChecklistSheet(reader, "checklist.xlsx")
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestParseChecklistSheetRejectsBadRows(t *testing.T) {
	_, err := ParseChecklistSheet(buildSheet(t, [][]string{
		{"question", "input type", "options"},
		{"Q1", "Checkbox", ""},
	}), "checklist.xlsx")
	assert.ErrorIs(t, err, store.ErrValidation)

	_, err = ParseChecklistSheet(buildSheet(t, [][]string{
		{"question", "input type", "options"},
		{"Q1", "Dropdown", "  "},
	}), "checklist.xlsx")
	assert.ErrorIs(t, err, store.ErrValidation)

	_, err = ParseChecklistSheet(buildSheet(t, [][]string{
		{"question", "input type", "options"},
	}), "checklist.xlsx")
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestParseChecklistSheetRejectsGarbage(t *testing.T) {
	_, err := ParseChecklistSheet(bytes.NewReader([]byte("not a spreadsheet")), "checklist.xlsx")
	assert.ErrorIs(t, err, store.ErrValidation)
}
