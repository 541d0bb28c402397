// Package log provides slog-based logging for sunriset.
//
// The LocationHandler wraps any slog.Handler and rounds coordinate
// attributes (latitude, longitude, lat, lon, ...) to a fixed number of
// decimals, so log files that get shared do not reveal an exact home
// location. TeeHandler fans records out to several handlers, which is how
// terminal output and the optional log file are combined.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Info("computing", "latitude", 49.86396819090531) // latitude=49.86
//
// Loggers are passed explicitly to the components that log. The solar
// package never logs.
package log
