// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result
//
// Helper methods on Result expose the handful of properties vid2gif cares
// about: video stream presence, dimensions, duration, and frame rate.
package ffprobe
