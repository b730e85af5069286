// Package runner drives scan, fill and clean runs over a music library.
//
// A run validates the root folder, gathers folder statistics, then
// processes each album folder in name order:
//
//	r := runner.New(settings, logger, version, onProgress)
//	stats, err := r.Run(runner.ModeFill, "/music/")
//
// The root must end with a path separator and be a directory, otherwise
// Run returns ErrInvalidRoot before touching any file. Naming and tag
// problems never stop a run; they are counted in Stats and logged. A folder
// below the root that cannot be listed is skipped and recorded as a
// TagIOFailure on its path.
//
// # Progress
//
// ProgressEvent callbacks report the run in human readable form. When the
// library has more than ten tracks, a line is emitted every 10% with the
// range of artist initials processed since the previous line. Progress can
// also be polled from another goroutine.
package runner
