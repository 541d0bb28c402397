// Package main provides the entry point for the sunriset CLI.
//
// sunriset prints civil sunrise and sunset times in UTC for a date and a
// geographic coordinate.
//
// Usage:
//
//	sunriset -y 2025 -m 4 -d 2 -g 14.2658 -l 49.8640
//	sunriset --place home
//	sunriset range --from 2025-06-01 --days 30 --markdown
//
// See --help for all available options.
package main

// main is the entry point for sunriset.
func main() {
	Execute()
}
