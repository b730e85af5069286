// Package logging builds the zap logger used across the tool.
//
//	logger, err := logging.New(logging.Config{
//	    Level: "warn",
//	    File:  "/var/log/ostrich.log",
//	})
//	defer logger.Sync()
//
// The console output is plain text; the optional file output is JSON and
// rotated by size.
package logging
