// Package scan resolves conversion inputs: directory traversal with a video
// extension allowlist, and batch list files with #-comments.
package scan
