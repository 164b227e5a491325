package advisor

import (
	"github.com/smallbiznis/tindahan/internal/advisor/domain"
	"github.com/smallbiznis/tindahan/internal/advisor/gemini"
	"github.com/smallbiznis/tindahan/internal/advisor/service"
	"github.com/smallbiznis/tindahan/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// provideGenerator returns nil when no key is configured; the service then
// answers with its missing-key fallback.
func provideGenerator(cfg config.Config, log *zap.Logger) domain.Generator {
	if cfg.AdvisorAPIKey == "" {
		return nil
	}
	return gemini.NewClient(cfg, log)
}

var Module = fx.Module("advisor",
	fx.Provide(provideGenerator),
	fx.Provide(service.New),
)
