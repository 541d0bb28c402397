// Package config provides configuration structures and utilities for sunriset.
// It holds the date and location to compute, output preferences, and the
// named places loaded from the .sunriset file.
package config
