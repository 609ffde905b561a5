// Package config loads, normalizes, and validates vid2gif configuration.
//
// It supplies repository defaults, expands tilde paths, reads TOML files
// (~/.config/vid2gif/config.toml, falling back to a project-local
// vid2gif.toml), and honours the VID2GIF_FFMPEG / VID2GIF_FFPROBE
// environment overrides. Always obtain settings through this package so
// downstream code receives sanitized values and clear validation errors.
package config
