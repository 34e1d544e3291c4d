package atlas

import (
	"fmt"

	"github.com/anthonynsimon/bild/transform"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeatlas/internal/logger"
)

// Options configures a composition run.
type Options struct {
	FacesDir  string
	FaceExt   string
	AtlasPath string
	Dim       int
	Filter    transform.ResampleFilter
	BlockOut  string
	Faces     []FaceSpec
}

// Run loads the faces, composes the block and writes it into the shared
// atlas at AtlasPath, replacing the file.
func Run(opts Options) error {
	if err := ValidateFaces(opts.Faces); err != nil {
		return err
	}

	faces, err := LoadFaces(opts.FacesDir, opts.FaceExt, opts.Faces)
	if err != nil {
		return err
	}
	logger.Debug("loaded faces", zap.Int("count", len(faces)), zap.String("dir", opts.FacesDir))

	block, err := Compose(faces, opts.Dim, opts.Faces, opts.Filter)
	if err != nil {
		return err
	}
	logger.Debug("composed block", zap.Int("dim", opts.Dim), zap.Int("tile", TileSize(opts.Dim)))

	if opts.BlockOut != "" {
		if err := SaveImage(opts.BlockOut, block); err != nil {
			return fmt.Errorf("writing block %s: %w", opts.BlockOut, err)
		}
		logger.Info("wrote block", zap.String("path", opts.BlockOut))
	}

	shared, err := LoadImage(opts.AtlasPath)
	if err != nil {
		return fmt.Errorf("reading atlas: %w", err)
	}
	merged, err := Insert(shared, block)
	if err != nil {
		return err
	}
	if err := SaveImage(opts.AtlasPath, merged); err != nil {
		return fmt.Errorf("writing atlas %s: %w", opts.AtlasPath, err)
	}

	r, _ := Region(shared.Bounds(), opts.Dim)
	logger.Info("inserted block into atlas",
		zap.String("path", opts.AtlasPath),
		zap.Stringer("region", r))
	return nil
}
