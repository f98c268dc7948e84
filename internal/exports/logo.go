package exports

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/ifclabs/ifcsuite/internal/store"
)

// logoHeight keeps embedded logos small enough to sit beside the data
// columns without dominating the sheet.
const logoHeight = 96

// SetLogo normalizes an uploaded report logo and stores it for
// embedding into subsequent exports.
func (s *Sink) SetLogo(raw []byte) error {
	normalized, err := NormalizeLogo(raw)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.logoPath), 0o755); err != nil {
		return fmt.Errorf("%w: create logo directory: %v", store.ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(s.logoPath, normalized, 0o644); err != nil {
		return fmt.Errorf("%w: save logo: %v", store.ErrStorageUnavailable, err)
	}
	return nil
}

// HasLogo reports whether a report logo has been uploaded.
func (s *Sink) HasLogo() bool {
	_, err := os.Stat(s.logoPath)
	return err == nil
}

// NormalizeLogo decodes a png, jpeg, or webp upload, scales it to a
// fixed height preserving aspect ratio, and re-encodes it as PNG.
func NormalizeLogo(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: logo file is empty", store.ErrValidation)
	}
	mime := http.DetectContentType(raw)
	switch mime {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return nil, fmt.Errorf("%w: logo must be png, jpeg, or webp", store.ErrValidation)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		decoded, decodeErr := webp.Decode(bytes.NewReader(raw))
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: unable to decode logo", store.ErrValidation)
		}
		img = decoded
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: invalid logo dimensions", store.ErrValidation)
	}

	width := bounds.Dx() * logoHeight / bounds.Dy()
	if width < 1 {
		width = 1
	}
	resized := image.NewRGBA(image.Rect(0, 0, width, logoHeight))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, xdraw.Over, nil)

	var out bytes.Buffer
	if err := png.Encode(&out, resized); err != nil {
		return nil, errors.New("unable to encode logo")
	}
	return out.Bytes(), nil
}
