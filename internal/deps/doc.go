// Package deps checks for the external binaries vid2gif shells out to.
//
// FFmpeg is a hard requirement; its absence aborts before any file is
// touched. FFprobe is optional and only degrades the inspect command.
package deps
