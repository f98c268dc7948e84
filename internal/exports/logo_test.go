package exports

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifclabs/ifcsuite/internal/store"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 21, G: 94, B: 158, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeLogoScalesToFixedHeight(t *testing.T) {
	normalized, err := NormalizeLogo(encodeTestPNG(t, 400, 200))
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(normalized))
	require.NoError(t, err)
	assert.Equal(t, logoHeight, decoded.Bounds().Dy())
	assert.Equal(t, 192, decoded.Bounds().Dx())
}

func TestNormalizeLogoRejectsBadInput(t *testing.T) {
	_, err := NormalizeLogo(nil)
	assert.ErrorIs(t, err, store.ErrValidation)

	_, err = NormalizeLogo([]byte("plain text, not an image"))
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestSetLogoEmbedsInExports(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(filepath.Join(dir, "audit_logs"), filepath.Join(dir, "logo.png"))
	require.NoError(t, err)

	assert.False(t, sink.HasLogo())
	require.NoError(t, sink.SetLogo(encodeTestPNG(t, 100, 100)))
	assert.True(t, sink.HasLogo())

	name, err := sink.Submit("Acme", "Q1", []Response{{Question: "Q1", Answer: "Yes"}})
	require.NoError(t, err)

	raw, err := sink.Read(name)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
