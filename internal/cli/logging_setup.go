package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rshade/ecocalc/internal/carbon"
	"github.com/rshade/ecocalc/internal/logging"
)

// setupLogging builds the command logger from config and the --debug flag,
// injects it into the engine and attaches a trace ID to the command context.
// --debug raises the level and keeps a configured log file, whose path is
// then printed to stderr.
func setupLogging(cmd *cobra.Command, a *app) {
	loggingCfg := a.cfg.ToLoggingConfig()
	loggingCfg.Output = cmd.ErrOrStderr()
	if a.debug {
		loggingCfg.Level = "debug"
		if loggingCfg.File == "" {
			loggingCfg.Format = logging.FormatConsole
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	a.logResult = &result
	a.logger = logging.ComponentLogger(result.Logger, "cli")
	carbon.SetLogger(result.Logger)

	if result.UsingFile && a.debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = a.logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logging.FromContext(ctx).Debug().
		Str("command", cmd.CommandPath()).
		Str("config", a.cfg.ConfigPath()).
		Msg("command started")
}
