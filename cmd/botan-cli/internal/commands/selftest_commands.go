package commands

import (
	"fmt"

	"github.com/cdesjardins/botan/internal/app"
	"github.com/cdesjardins/botan/internal/infrastructure/selftest"
	"github.com/cdesjardins/botan/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SelfTestCommandHandler encapsulates logic for running the self-test suite
// via CLI.
type SelfTestCommandHandler struct {
	libState *app.LibraryState
	logger   logger.Logger
}

// NewSelfTestCommandHandler initializes and returns a SelfTestCommandHandler
// instance with a configured logger and library state.
func NewSelfTestCommandHandler() (*SelfTestCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	libState, err := newInitializedState(loggerInstance)
	if err != nil {
		return nil, err
	}

	return &SelfTestCommandHandler{
		libState: libState,
		logger:   loggerInstance,
	}, nil
}

// SelfTestCmd runs the known-answer suite against the algorithm factory and
// exits non-zero on failure
func (commandHandler *SelfTestCommandHandler) SelfTestCmd(_ *cobra.Command, _ []string) {
	factory, err := commandHandler.libState.AlgoFactory()
	if err != nil {
		commandHandler.logger.Fatal(err)
		return
	}

	runner := selftest.NewRunner(commandHandler.logger)
	if !runner.PassesSelfTests(factory) {
		commandHandler.logger.Fatal("self-tests failed")
		return
	}

	fmt.Println("self-tests passed")
}

// InitSelfTestCommands registers the selftest command group with the root
// command.
func InitSelfTestCommands(rootCmd *cobra.Command) error {
	handler, err := NewSelfTestCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create selftest command handler: %w", err)
	}

	selfTestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the known-answer self-test suite",
		Run:   handler.SelfTestCmd,
	}
	rootCmd.AddCommand(selfTestCmd)

	return nil
}
