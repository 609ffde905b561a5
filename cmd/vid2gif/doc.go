// Command vid2gif converts video files into looping GIFs by driving ffmpeg's
// two-pass palette workflow. It accepts a single file, a directory, or a
// batch file of inputs, and falls back to an interactive prompt when run on
// a terminal with no arguments.
package main
