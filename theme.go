package stanza

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the CLI
// automatically matches any color scheme.
type Theme struct {
	Error   int // Error messages
	Success int // Success summary
	Muted   int // Per-page progress lines
	Accent  int // Run banner
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Error:   1,
		Success: 2,
		Muted:   8,
		Accent:  5,
	}
}
