package config

import "io"

// DuplicateConfig holds settings for detecting scripts that reach the same
// final position.
type DuplicateConfig struct {
	// Suppress drops results whose final position was already reported
	Suppress bool

	// DuplicateFile, if set, receives the suppressed results
	DuplicateFile io.Writer

	// ExactMatch also requires equal ply counts
	ExactMatch bool

	// MaxCapacity limits the positions remembered; 0 means unlimited
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
