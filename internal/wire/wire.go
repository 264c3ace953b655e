// Package wire provides dependency injection for the casework application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/casework/internal/adapters/cli"
	"github.com/example/casework/internal/adapters/random"
	"github.com/example/casework/internal/app"
	"github.com/example/casework/internal/config"
	"github.com/example/casework/internal/logging"
	"github.com/example/casework/internal/ports/primary"
)

var (
	cfg           *config.Config
	logger        *zap.Logger
	spanService   primary.SpanService
	dragonService primary.DragonService
	once          sync.Once

	logLevelOverride string
	seedOverride     *uint64
)

// SetLogLevel overrides the configured log level. It must be called before
// the first service is requested.
func SetLogLevel(level string) {
	logLevelOverride = level
}

// SetSeed makes random generation deterministic. It must be called before
// the first service is requested.
func SetSeed(seed uint64) {
	seedOverride = &seed
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// SpanService returns the singleton SpanService instance.
func SpanService() primary.SpanService {
	once.Do(initServices)
	return spanService
}

// DragonService returns the singleton DragonService instance.
func DragonService() primary.DragonService {
	once.Do(initServices)
	return dragonService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err = config.LoadOrDefault(cwd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if logLevelOverride != "" {
		cfg.LogLevel = logLevelOverride
	}

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	// Create secondary adapters
	source := random.NewTimeSource()
	if seedOverride != nil {
		source = random.NewSource(*seedOverride)
	}

	// Create services (primary ports implementation)
	spanService = app.NewSpanService(source, logger.Named("span"))
	dragonService = app.NewDragonService(app.DragonSettings{
		SuiteHeads:       cfg.Dragon.SuiteHeads,
		CompositionHeads: cfg.Dragon.CompositionHeads,
		VerifyLimit:      cfg.Dragon.VerifyLimit,
	}, logger.Named("dragon"))
}

// SpanAdapter returns a new SpanAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func SpanAdapter() *cliadapter.SpanAdapter {
	return SpanAdapterWithOutput(os.Stdout)
}

// SpanAdapterWithOutput returns a new SpanAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func SpanAdapterWithOutput(out io.Writer) *cliadapter.SpanAdapter {
	once.Do(initServices)
	return cliadapter.NewSpanAdapter(spanService, out)
}

// DragonAdapter returns a new DragonAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func DragonAdapter() *cliadapter.DragonAdapter {
	return DragonAdapterWithOutput(os.Stdout)
}

// DragonAdapterWithOutput returns a new DragonAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func DragonAdapterWithOutput(out io.Writer) *cliadapter.DragonAdapter {
	once.Do(initServices)
	return cliadapter.NewDragonAdapter(dragonService, out)
}

// Sync flushes buffered log entries. Safe to call before initialization.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
