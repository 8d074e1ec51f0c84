package carbon

import "github.com/rs/zerolog"

// logger is the package logger. It discards everything until SetLogger is called.
var logger = zerolog.Nop()

// SetLogger injects the logger used for diagnostics of rejected inputs.
// Call it once during start-up, before any calculation runs.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "carbon").Logger()
}
