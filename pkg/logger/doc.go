// Package logger builds configured slog.Logger instances and provides attr
// helpers for the fields this codebase logs over and over: classified errors,
// retry attempts, breaker states.
//
// JSON output is the default; FormatText switches to a tint handler for local
// development.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(logger.Component("apiclient")),
//	)
//	log.Warn("retrying request", logger.Attempt(2), logger.Error(err))
package logger
