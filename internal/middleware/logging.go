// Package middleware wraps command handlers with cross-cutting behaviour.
package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/servicecharge/internal/service"
)

// RunFunc is the signature of a cobra RunE handler.
type RunFunc func(cmd *cobra.Command, args []string) error

// Logging returns a handler that logs every command run.
// It logs the command path, duration, and any error. Rejected bills are
// logged as warnings since the user can fix them.
func Logging(next RunFunc) RunFunc {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		command := cmd.CommandPath()

		err := next(cmd, args)

		duration := time.Since(start).Milliseconds()
		if err != nil {
			var validationErr *service.ValidationError
			if errors.As(err, &validationErr) {
				slog.Warn("Command rejected",
					"command", command,
					"mode", validationErr.Mode,
					"fields", len(validationErr.Fields),
					"duration_ms", duration,
				)
			} else {
				slog.Error("Command failed",
					"command", command,
					"error", err,
					"duration_ms", duration,
				)
			}
		} else {
			slog.Debug("Command ok",
				"command", command,
				"duration_ms", duration,
			)
		}

		return err
	}
}
