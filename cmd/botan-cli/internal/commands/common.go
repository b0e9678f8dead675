package commands

import (
	"fmt"

	"github.com/cdesjardins/botan/internal/app"
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/infrastructure/modules"
	"github.com/cdesjardins/botan/internal/pkg/config"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// newInitializedState builds a library state wired with the built-in
// modules, ready for resolution queries.
func newInitializedState(loggerInstance logger.Logger) (*app.LibraryState, error) {
	libState := app.NewLibraryState(loggerInstance)

	opts := state.InitializerOptions{ThreadSafe: true}
	if err := libState.Initialize(opts, modules.NewDefaultModules(loggerInstance)); err != nil {
		return nil, fmt.Errorf("failed to initialize library state: %w", err)
	}

	return libState, nil
}
