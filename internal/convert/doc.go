// Package convert builds and runs the ffmpeg invocations that turn videos
// into looping GIFs.
//
// Each Job maps to two subprocess passes: palettegen (palette PNG sized by
// the quality setting) and paletteuse (the actual GIF render with speed,
// scale, fps, and loop parameters). No frame or palette work happens in
// process; ffmpeg is the opaque collaborator behind the Executor interface.
package convert
