// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Controls   ControlsConfig   `yaml:"controls"`
	Scene      SceneConfig      `yaml:"scene"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds the fly camera's starting state and clip planes.
type CameraConfig struct {
	Position         [3]float32 `yaml:"position,flow"`
	Yaw              float32    `yaml:"yaw"`   // degrees
	Pitch            float32    `yaml:"pitch"` // degrees
	MovementSpeed    float32    `yaml:"movement_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	Zoom             float32    `yaml:"zoom"` // vertical FOV, degrees
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
	CaptureMouse     bool       `yaml:"capture_mouse"`
}

// ControlsConfig maps actions to SDL key names ("W", "Left Shift", "F12").
type ControlsConfig struct {
	Forward      string `yaml:"forward"`
	Backward     string `yaml:"backward"`
	Left         string `yaml:"left"`
	Right        string `yaml:"right"`
	Up           string `yaml:"up"`
	Down         string `yaml:"down"`
	CaptureMouse string `yaml:"capture_mouse"`
	Screenshot   string `yaml:"screenshot"`
	Quit         string `yaml:"quit"`
}

// SceneConfig selects what is shown.
type SceneConfig struct {
	BodyFile  string `yaml:"body_file"` // empty uses the built-in figure
	Animation string `yaml:"animation"` // none, waving or walking
}

// ScreenshotConfig holds capture settings.
type ScreenshotConfig struct {
	Dir      string `yaml:"dir"`
	Format   string `yaml:"format"`    // png or webp
	MaxWidth int    `yaml:"max_width"` // 0 keeps full resolution
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Position:         [3]float32{0, 0, 3},
			Yaw:              -90,
			Pitch:            0,
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
			Zoom:             45,
			Near:             0.1,
			Far:              100,
			CaptureMouse:     true,
		},
		Controls: ControlsConfig{
			Forward:      "W",
			Backward:     "S",
			Left:         "A",
			Right:        "D",
			Up:           "Space",
			Down:         "Left Shift",
			CaptureMouse: "C",
			Screenshot:   "F12",
			Quit:         "Escape",
		},
		Scene: SceneConfig{
			Animation: "none",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
