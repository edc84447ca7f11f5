// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"github.com/alchemorsel/recipebook/internal/application/recipe"
	"github.com/alchemorsel/recipebook/internal/infrastructure/config"
	"github.com/alchemorsel/recipebook/internal/infrastructure/monitoring"
	"github.com/alchemorsel/recipebook/internal/ports/inbound"
	"github.com/alchemorsel/recipebook/internal/ports/outbound"
	"github.com/alchemorsel/recipebook/pkg/logger"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params carries command line inputs into the graph. Supply it with fx.Supply.
type Params struct {
	ConfigPath string
	Flags      *pflag.FlagSet
}

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	ServiceModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func(p Params) (*config.Config, error) {
		return config.Load(p.ConfigPath, p.Flags)
	},
)

// LoggerModule provides logging. Every line carries the run_id of the
// process so output from separate runs can be told apart.
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		log, err := logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
			OutputPaths: cfg.App.LogOutputs,
		})
		if err != nil {
			return nil, err
		}
		return log.With(zap.String("run_id", uuid.NewString())), nil
	},
)

// MetricsModule provides the metrics collector and the port it satisfies
var MetricsModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) *monitoring.MetricsCollector {
		return monitoring.NewMetricsCollector(cfg.Monitoring.Namespace, log.Named("metrics"))
	},
	func(cfg *config.Config, m *monitoring.MetricsCollector) outbound.RecipeMetrics {
		if !cfg.Monitoring.EnableMetrics {
			return monitoring.NopMetrics{}
		}
		return m
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	fx.Annotate(
		recipe.NewRecipeService,
		fx.As(new(inbound.RecipeService)),
	),
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	metrics *monitoring.MetricsCollector,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Recipebook",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.Bool("development", cfg.IsDevelopment()),
				zap.Int("quick_max_time", cfg.Catalog.QuickMaxTime),
			)
			if cfg.IsProduction() && cfg.App.Debug {
				log.Warn("Debug logging is enabled in production")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cfg.Monitoring.EnableMetrics {
				metrics.LogSnapshot()
			}
			log.Info("Shutting down Recipebook")

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
