// Package model defines the report data structures used by sunriset.
//
// This package contains the following main types:
//   - Entry: The sunrise and sunset of one date at one place
//   - Almanac: A run of entries for consecutive dates at one place
//   - Summary: Day length statistics over an almanac
//
// The solar package knows nothing about these types. All of them encode
// to JSON for report output.
package model
