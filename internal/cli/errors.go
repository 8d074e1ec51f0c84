package cli

import (
	"errors"

	"github.com/rshade/ecocalc/internal/carbon"
	"github.com/rshade/ecocalc/internal/config"
)

// ErrUsage is wrapped by errors caused by bad command-line arguments.
var ErrUsage = errors.New("usage error")

// Exit codes returned by ExitCode.
const (
	ExitOK           = 0
	ExitError        = 1
	ExitInvalidInput = 2
)

// ExitCode maps an error returned by the root command to a process exit code.
// Rejected calculation inputs, bad arguments and invalid configuration exit
// with ExitInvalidInput.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, carbon.ErrInvalidInput),
		errors.Is(err, ErrUsage),
		errors.Is(err, config.ErrInvalidConfig):
		return ExitInvalidInput
	default:
		return ExitError
	}
}
