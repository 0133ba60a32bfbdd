// Package logging is a thin layer over log/slog that tags every entry with
// the subsystem that produced it.
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Warn("render", "field %s: falling back to fixed color", name)
package logging
