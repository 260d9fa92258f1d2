package platform

// Package platform contains OS/filesystem glue: temp-asset directory
// resolution, directory creation, and helpers for deriving local file names
// from remote asset URLs.
