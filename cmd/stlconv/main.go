// stlconv converts an STL model into the script the web viewer loads.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeatlas/internal/config"
	"github.com/Faultbox/cubeatlas/internal/convert"
	"github.com/Faultbox/cubeatlas/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg.Convert)

	var dump io.Writer
	if cfg.Convert.Print {
		dump = os.Stdout
	}

	if _, err := convert.Run(convert.Options{
		Input:            cfg.Convert.Input,
		Output:           cfg.Convert.Output,
		VarName:          cfg.Convert.VarName,
		IgnoreSolidNames: cfg.Convert.IgnoreSolidNames,
		Dump:             dump,
	}); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
