package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagInput    = flag.String("input", "", "STL model to convert")
	flagOutput   = flag.String("output", "", "Viewer script to write")
	flagVar      = flag.String("var", "", "Script variable name")
	flagPrint    = flag.Bool("print", false, "Print the model JSON to stdout")
	flagFaces    = flag.String("faces", "", "Directory holding the cube face images")
	flagAtlas    = flag.String("atlas", "", "Shared texture atlas to update")
	flagDim      = flag.Int("dim", 0, "Side of the atlas region to replace")
	flagResample = flag.String("resample", "", "Tile resampling filter")
	flagBlockOut = flag.String("block-out", "", "Also write the composed block to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagInput != "" {
		cfg.Convert.Input = *flagInput
	}
	if *flagOutput != "" {
		cfg.Convert.Output = *flagOutput
	}
	if *flagVar != "" {
		cfg.Convert.VarName = *flagVar
	}
	if *flagPrint {
		cfg.Convert.Print = true
	}
	if *flagFaces != "" {
		cfg.Atlas.FacesDir = *flagFaces
	}
	if *flagAtlas != "" {
		cfg.Atlas.AtlasPath = *flagAtlas
	}
	if *flagDim > 0 {
		cfg.Atlas.Dim = *flagDim
	}
	if *flagResample != "" {
		cfg.Atlas.Resample = *flagResample
	}
	if *flagBlockOut != "" {
		cfg.Atlas.BlockOut = *flagBlockOut
	}
}
