package regex

// Flag changes how a Regex reports a match.
type Flag int

// Possible regex flags.
const (
	// Default reports lines the pattern matches.
	Default Flag = iota
	// Invert reports lines the pattern does not match.
	Invert
	// Noop matches everything.
	Noop
)

func (f Flag) String() string {
	switch f {
	case Default:
		return "default"
	case Invert:
		return "invert"
	case Noop:
		return "noop"
	default:
		return "unknown"
	}
}
