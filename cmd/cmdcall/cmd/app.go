package cmd

import (
	"io"

	"github.com/charmbracelet/log"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
	"github.com/msto63/cmdcall/foundation/tcol"
	"github.com/msto63/cmdcall/pkg/core/config"
	"github.com/msto63/cmdcall/pkg/core/logging"
)

// app bundles what the subcommands share
type app struct {
	logger *log.Logger
	engine *tcol.Engine
}

// loadConfig reads the config file named by --config, or the environment
// and default locations, and applies the command line overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp builds the engine with the built-in commands and the configured
// aliases. A nil logOutput silences logging.
func newApp(cfg *config.Config, logOutput io.Writer) (*app, error) {
	logger := logging.Discard()
	if logOutput != nil {
		logger = logging.NewLogger(logging.LoggerConfig{
			ServiceName: cfg.General.Name,
			Level:       cfg.General.LogLevel,
			Format:      cfg.General.LogFormat,
			Output:      logOutput,
		})
	}

	engine, err := tcol.New(tcol.Options{
		Logger:           logger,
		MaxCommandLength: cfg.Dispatch.MaxCommandLength,
		Builtins:         true,
		EnableAliases:    cfg.Dispatch.EnableAliases,
		Aliases:          cfg.Dispatch.Aliases,
		EnableAuditLog:   cfg.Dispatch.AuditLog,
		StopOnError:      cfg.Dispatch.StopOnError,
		ScriptTimeout:    cfg.Dispatch.ScriptTimeout.Duration,
	})
	if err != nil {
		return nil, ccerror.Wrap(err, "invalid dispatch config").
			WithCode(ccerror.CodeConfigError)
	}

	return &app{
		logger: logger,
		engine: engine,
	}, nil
}

func setup(logOutput io.Writer) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(cfg, logOutput)
}
