// Package model defines shared data structures.
package model

import "time"

// ViewerConfig defines step-through viewer settings.
type ViewerConfig struct {
	Interval time.Duration
	Autoplay bool
}

// DecodeConfig defines output options for the decode command.
type DecodeConfig struct {
	Trace  bool
	Report bool
}

// DiagramConfig defines code table diagram options.
type DiagramConfig struct {
	Format string
	Path   string
	Out    string
}

// LetterAggregate counts how often a character was decoded in a run.
type LetterAggregate struct {
	Char  string
	Code  string
	Count int
}
