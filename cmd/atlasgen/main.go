// atlasgen composes the cube face images into the shared texture atlas.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeatlas/internal/atlas"
	"github.com/Faultbox/cubeatlas/internal/config"
	"github.com/Faultbox/cubeatlas/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Validated by config.Load.
	filter, _ := atlas.ParseFilter(cfg.Atlas.Resample)

	logger.Info("composing atlas block",
		zap.String("faces", cfg.Atlas.FacesDir),
		zap.Int("dim", cfg.Atlas.Dim),
		zap.String("resample", cfg.Atlas.Resample))

	if err := atlas.Run(atlas.Options{
		FacesDir:  cfg.Atlas.FacesDir,
		FaceExt:   cfg.Atlas.FaceExt,
		AtlasPath: cfg.Atlas.AtlasPath,
		Dim:       cfg.Atlas.Dim,
		Filter:    filter,
		BlockOut:  cfg.Atlas.BlockOut,
		Faces:     cfg.Atlas.Faces,
	}); err != nil {
		logger.Error("atlas composition failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
