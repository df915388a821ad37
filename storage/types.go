package storage

// Config represents the application configuration stored in config.json
type Config struct {
	Version int          `json:"version"`
	Video   VideoConfig  `json:"video"`
	Window  WindowConfig `json:"window"`
}

// VideoConfig contains filter settings
type VideoConfig struct {
	Filter  string `json:"filter"`  // Filter ID, e.g. "supereagle"
	Format  string `json:"format"`  // "rgb565" or "xrgb8888"
	Threads int    `json:"threads"` // Render bands per frame, 1 = single goroutine
}

// WindowConfig contains window position and size
type WindowConfig struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	X      *int `json:"x,omitempty"` // nil = OS decides position
	Y      *int `json:"y,omitempty"`
}

// Defaults applied to new and migrated configs
const (
	currentVersion = 1
	defaultFilter  = "super2xsai"
	defaultFormat  = "xrgb8888"
	defaultWidth   = 1024
	defaultHeight  = 768
)

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version: currentVersion,
		Video: VideoConfig{
			Filter:  defaultFilter,
			Format:  defaultFormat,
			Threads: 1,
		},
		Window: WindowConfig{
			Width:  defaultWidth,
			Height: defaultHeight,
		},
	}
}
