// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File writing and directory creation
//   - Hidden file detection
//   - Cover image loading, inspection and resizing
//
// # File Operations
//
//	// Write data to file, creating parent directories
//	err := ioutils.WriteFile(ctx, "output/report.json", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Image Processing
//
// The ImageService handles cover art manipulation:
//
//	svc := ioutils.NewImageService()
//
//	// Load a folder cover with MIME type, size and color depth
//	cover, _ := svc.LoadCover(ctx, "/music/Artist/2020 - Album/cover.jpg")
//
//	// Scale it to fit within 1000x1000 (re-encoded as JPEG)
//	fitted, _ := svc.FitCover(ctx, cover, 1000)
package ioutils
