package termio

import "fmt"

// AnsiEscape represents an ANSI escape code used for formatting text in a terminal.
type AnsiEscape struct {
	escape string
}

// ResetAnsiEscape constructs an escape which cancels all active formatting.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[0"}
}

// BoldAnsiEscape constructs an escape which shows subsequent text in bold.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[1"}
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("%sm", p.escape)
}
