package types

// Config holds scanner configuration. It is read once per scan; a scanner
// never mutates it after construction.
type Config struct {
	// ReportPartial enables prefix matches while the user is still typing
	// (e.g. "yester" before "yesterday"). Default true.
	ReportPartial bool

	// MaxMatches caps the number of matches returned per scan. Excess
	// matches are dropped after deduplication and sorting. Default 10.
	MaxMatches int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		ReportPartial: true,
		MaxMatches:    10,
	}
}
