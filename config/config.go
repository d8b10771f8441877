// Package config handles compiler and viewer configuration.
package config

// Config holds all tilemesh settings.
type Config struct {
	Compiler CompilerConfig `yaml:"compiler"`
	Objects  ObjectConfig   `yaml:"objects"`
	Debug    DebugConfig    `yaml:"debug"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CompilerConfig holds map compilation settings.
type CompilerConfig struct {
	// Chunk extent in tiles. Every chunk of a tileset-layer has this
	// exact size; map edges are padded with empty tiles.
	ChunkWidth  int `yaml:"chunk_width"`
	ChunkHeight int `yaml:"chunk_height"`
}

// ObjectConfig holds object placement settings.
type ObjectConfig struct {
	// ZAboveLayer is how far in front of the tile layer objects sit.
	ZAboveLayer float64 `yaml:"z_above_layer"`
	// ZYDivisor staggers object Z by -y/divisor for stable
	// back-to-front paint order within an object layer.
	ZYDivisor float64 `yaml:"z_y_divisor"`
}

// DebugConfig controls debug boxes drawn for gid-less shape objects.
type DebugConfig struct {
	Enabled  bool    `yaml:"enabled"`
	BoxRed   float64 `yaml:"box_red"`
	BoxGreen float64 `yaml:"box_green"`
	BoxBlue  float64 `yaml:"box_blue"`
	BoxAlpha float64 `yaml:"box_alpha"`
}

// ViewerConfig holds window and input settings for the demo viewer.
type ViewerConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	Map      string `yaml:"map"`
	Centered bool   `yaml:"centered"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Compiler: CompilerConfig{
			ChunkWidth:  32,
			ChunkHeight: 32,
		},
		Objects: ObjectConfig{
			ZAboveLayer: 15.0,
			ZYDivisor:   2000.0,
		},
		Debug: DebugConfig{
			Enabled:  false,
			BoxRed:   0.4,
			BoxGreen: 0.4,
			BoxBlue:  0.9,
			BoxAlpha: 0.5,
		},
		Viewer: ViewerConfig{
			Width:    1280,
			Height:   720,
			Title:    "tilemesh viewer",
			Centered: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
