package config

const (
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultFPS           = 10
	defaultQuality       = 90
	defaultSpeed         = 1.0
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

func defaultVideoExtensions() []string {
	return []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".flv", ".wmv", ".m4v"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Defaults: Defaults{
			Width:   0, // keep source width
			FPS:     defaultFPS,
			Quality: defaultQuality,
			Speed:   defaultSpeed,
			Loop:    true,
		},
		Scan: Scan{
			VideoExtensions: defaultVideoExtensions(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
