// Package postprocess applies cosmetic changes to saved deck. Nothing here
// may change the outcome of conversion: failures are reported as warnings.
package postprocess

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"issuedeck/common"
	"issuedeck/config"
)

// Hook modifies deck file in place.
type Hook interface {
	Name() string
	Apply(ctx context.Context, path string) error
}

// Hooks returns configured hooks in the order they should run.
func Hooks(cfg *config.ThemingConfig, log *zap.Logger) []Hook {
	var hooks []Hook
	if cfg.StripBullets {
		hooks = append(hooks, StripBullets{Log: log.Named("bullets")})
	}
	if len(cfg.Command) > 0 {
		hooks = append(hooks, &Command{
			Program: cfg.Command,
			Args:    cfg.Args,
			Theme:   cfg.Theme,
			Timeout: cfg.Timeout,
			Log:     log.Named("command"),
		})
	}
	return hooks
}

// Run applies hooks one after another. It stops early only when context is
// cancelled and never returns error.
func Run(ctx context.Context, path string, hooks []Hook, log *zap.Logger) {
	for _, h := range hooks {
		if ctx.Err() != nil {
			log.Warn("Post-processing interrupted", zap.String("hook", h.Name()), zap.Error(ctx.Err()))
			return
		}
		err := h.Apply(ctx, path)
		switch {
		case err == nil:
			log.Debug("Post-processing done", zap.String("hook", h.Name()))
		case errors.Is(err, common.ErrThemingUnavailable):
			log.Warn("Theming is not available, deck left as is", zap.String("hook", h.Name()), zap.Error(err))
		default:
			log.Warn("Post-processing failed, deck left as is", zap.String("hook", h.Name()), zap.Error(err))
		}
	}
}
