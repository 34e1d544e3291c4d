package atlas

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/multierr"
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// LoadImage reads and decodes an image file. The content is sniffed first so
// that a non-image file fails with ErrNotImage rather than a decoder error.
// Files ending in .tga skip sniffing and use DecodeTGA.
func LoadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return img, nil
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%w: %s (detected %s)", ErrNotImage, path, kind.Extension)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// SaveImage writes img as PNG. The file is written next to path and renamed
// over it, so an interrupted run never leaves a half-written atlas.
func SaveImage(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".atlas-*.png")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// FacePath returns the image path of a face.
func FacePath(dir, ext, name string) string {
	return filepath.Join(dir, name+"."+ext)
}

// LoadFaces loads every face in specs from dir. Every missing or unreadable
// face is reported, not just the first.
func LoadFaces(dir, ext string, specs []FaceSpec) (map[string]image.Image, error) {
	faces := make(map[string]image.Image, len(specs))
	var errs error
	for _, s := range specs {
		img, err := LoadImage(FacePath(dir, ext, s.Name))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s: %w", ErrMissingFace, s.Name, err))
			continue
		}
		faces[s.Name] = img
	}
	if errs != nil {
		return nil, errs
	}
	return faces, nil
}
