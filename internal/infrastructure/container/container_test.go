package container

import (
	"testing"

	"github.com/alchemorsel/recipebook/internal/infrastructure/config"
	"github.com/alchemorsel/recipebook/internal/infrastructure/monitoring"
	"github.com/alchemorsel/recipebook/internal/ports/inbound"
	"github.com/alchemorsel/recipebook/internal/ports/outbound"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestModuleWiresRecipeService(t *testing.T) {
	var (
		service inbound.RecipeService
		metrics outbound.RecipeMetrics
		cfg     *config.Config
	)

	app := fxtest.New(t,
		fx.Supply(Params{}),
		Module,
		fx.Populate(&service, &metrics, &cfg),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, service)
	assert.Equal(t, 25, cfg.Catalog.QuickMaxTime)
	assert.IsType(t, &monitoring.MetricsCollector{}, metrics)

	_, err := service.AddRecipe(inbound.AddRecipeCommand{
		Ingredients: []string{"flour", "eggs", "milk"},
		CookingTime: 15,
		Difficulty:  "Easy",
		Servings:    2,
	})
	require.NoError(t, err)
	assert.Len(t, service.FindQuickRecipes(cfg.Catalog.QuickMaxTime), 1)
}

func TestModuleHonoursFlagsAndDisabledMetrics(t *testing.T) {
	t.Setenv("RECIPEBOOK_MONITORING_ENABLE_METRICS", "false")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-time", 25, "")
	require.NoError(t, flags.Parse([]string{"--max-time", "12"}))

	var (
		metrics outbound.RecipeMetrics
		cfg     *config.Config
	)
	app := fxtest.New(t,
		fx.Supply(Params{Flags: flags}),
		Module,
		fx.Populate(&metrics, &cfg),
	)
	app.RequireStart().RequireStop()

	assert.Equal(t, 12, cfg.Catalog.QuickMaxTime)
	assert.Equal(t, monitoring.NopMetrics{}, metrics)
}

func TestModuleFailsOnBadConfig(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(Params{ConfigPath: "does-not-exist.yaml"}),
		Module,
	)

	assert.Error(t, app.Err())
}

func TestLifecycleHooks(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		debug       bool
		development bool
		warnings    int
	}{
		{name: "development", environment: "development", development: true},
		{name: "production", environment: "production"},
		{name: "production with debug", environment: "production", debug: true, warnings: 1},
		{name: "staging with debug", environment: "staging", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			log := zap.New(core)

			cfg := &config.Config{}
			cfg.App.Version = "1.0.0"
			cfg.App.Environment = tt.environment
			cfg.App.Debug = tt.debug
			cfg.Catalog.QuickMaxTime = 25

			lc := fxtest.NewLifecycle(t)
			RegisterLifecycleHooks(lc, cfg, log, monitoring.NewMetricsCollector("test", log))
			lc.RequireStart()

			started := logs.FilterMessage("Starting Recipebook").All()
			require.Len(t, started, 1)
			assert.Equal(t, tt.development, started[0].ContextMap()["development"])
			assert.Equal(t, tt.warnings, logs.FilterMessage("Debug logging is enabled in production").Len())

			lc.RequireStop()
			assert.Equal(t, 1, logs.FilterMessage("Shutting down Recipebook").Len())
		})
	}
}
