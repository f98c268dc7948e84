package exports

import (
	"archive/tar"
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"

	"github.com/ifclabs/ifcsuite/internal/store"
)

func newTestSink(t *testing.T) *Sink {
	t.Helper()
	dir := t.TempDir()
	sink, err := NewSink(filepath.Join(dir, "audit_logs"), filepath.Join(dir, "logo.png"))
	require.NoError(t, err)
	sink.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	return sink
}

func TestSubmitWritesWorkbook(t *testing.T) {
	sink := newTestSink(t)

	name, err := sink.Submit("Acme", "Q1 2026", []Response{
		{Question: "Q1", Answer: "Yes"},
		{Question: "Q2", Answer: "No"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme_20260314_092653.xlsx", name)

	file, err := excelize.OpenFile(filepath.Join(sink.dir, name))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Client", "Audit Period", "question", "answer"}, rows[0])
	assert.Equal(t, []string{"Acme", "Q1 2026", "Q1", "Yes"}, rows[1])
	assert.Equal(t, []string{"Acme", "Q1 2026", "Q2", "No"}, rows[2])
}

func TestSubmitValidation(t *testing.T) {
	sink := newTestSink(t)

	_, err := sink.Submit("  ", "Q1", []Response{{Question: "Q1", Answer: "Yes"}})
	assert.ErrorIs(t, err, store.ErrValidation)

	_, err = sink.Submit("Acme", "Q1", nil)
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestSubmitCollisionSuffix(t *testing.T) {
	sink := newTestSink(t)
	responses := []Response{{Question: "Q1", Answer: "Yes"}}

	first, err := sink.Submit("Acme", "Q1", responses)
	require.NoError(t, err)
	second, err := sink.Submit("Acme", "Q1", responses)
	require.NoError(t, err)
	third, err := sink.Submit("Acme", "Q1", responses)
	require.NoError(t, err)

	assert.Equal(t, "Acme_20260314_092653.xlsx", first)
	assert.Equal(t, "Acme_20260314_092653_2.xlsx", second)
	assert.Equal(t, "Acme_20260314_092653_3.xlsx", third)
}

func TestSubmitSanitizesClientFilename(t *testing.T) {
	sink := newTestSink(t)

	name, err := sink.Submit("../Acme/Corp", "Q1", []Response{{Question: "Q1", Answer: "Yes"}})
	require.NoError(t, err)
	assert.Equal(t, "..-Acme-Corp_20260314_092653.xlsx", name)

	// The sanitized name must stay inside the export directory.
	raw, err := sink.Read(name)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestListFilesDescending(t *testing.T) {
	sink := newTestSink(t)
	responses := []Response{{Question: "Q1", Answer: "Yes"}}

	stamps := []time.Time{
		time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, stamp := range stamps {
		stamp := stamp
		sink.now = func() time.Time { return stamp }
		_, err := sink.Submit("Acme", "Q1", responses)
		require.NoError(t, err)
	}

	names, err := sink.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Acme_20260201_083000.xlsx",
		"Acme_20260105_100000.xlsx",
		"Acme_20251231_235959.xlsx",
	}, names)
}

func TestReadGuardsFilenames(t *testing.T) {
	sink := newTestSink(t)

	name, err := sink.Submit("Acme", "Q1", []Response{{Question: "Q1", Answer: "Yes"}})
	require.NoError(t, err)

	raw, err := sink.Read(name)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	for _, bad := range []string{"", "missing.xlsx", "../secrets.json", "a/b.xlsx", "..\\b.xlsx"} {
		_, err := sink.Read(bad)
		assert.ErrorIs(t, err, store.ErrNotFound, "filename %q", bad)
	}
}

func TestWriteArchiveRoundTrip(t *testing.T) {
	sink := newTestSink(t)
	responses := []Response{{Question: "Q1", Answer: "Yes"}}

	first, err := sink.Submit("Acme", "Q1", responses)
	require.NoError(t, err)
	second, err := sink.Submit("Globex", "Q1", responses)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sink.WriteArchive(&buf))

	xzReader, err := xz.NewReader(&buf)
	require.NoError(t, err)
	tarReader := tar.NewReader(xzReader)

	found := map[string]bool{}
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		found[header.Name] = true
		payload, err := io.ReadAll(tarReader)
		require.NoError(t, err)
		assert.NotEmpty(t, payload)
	}
	assert.True(t, found[first])
	assert.True(t, found[second])
}
