package cli

import (
	"time"

	"codeberg.org/snonux/jsontrans/internal/translation"
)

const (
	// DefaultInputFile is read when no input file argument is given
	DefaultInputFile = "./translate_pl.json"
	// DefaultTargetLang is used when no language argument is given
	DefaultTargetLang = "de"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputFile string
	Compact    bool
	DryRun     bool
	Verbose    bool
	Quiet      bool
	Backup     bool

	// ListLanguages prints the supported target languages and exits
	ListLanguages bool

	// Translation API flags
	Endpoint    string
	SourceLang  string
	Format      string
	Delay       time.Duration
	RateLimit   float64
	Concurrency int
	Timeout     time.Duration
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Endpoint:    translation.DefaultEndpoint,
		Delay:       translation.DefaultDelay,
		Concurrency: 1,
	}
}
