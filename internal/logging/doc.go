// Package logging builds the slog logger used across vid2gif.
//
// Diagnostics go to stderr in either a compact console format or JSON,
// selected through the [logging] config section. Stdout stays reserved
// for conversion results so output remains scriptable.
package logging
