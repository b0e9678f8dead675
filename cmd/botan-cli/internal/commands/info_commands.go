package commands

import (
	"fmt"
	"strings"

	"github.com/cdesjardins/botan/internal/app"
	"github.com/cdesjardins/botan/internal/pkg/config"
	"github.com/cdesjardins/botan/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// InfoCommandHandler encapsulates logic for inspecting the library runtime
// via CLI.
type InfoCommandHandler struct {
	libState *app.LibraryState
	logger   logger.Logger
}

// NewInfoCommandHandler initializes and returns an InfoCommandHandler
// instance with a configured logger and library state.
func NewInfoCommandHandler() (*InfoCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	libState, err := newInitializedState(loggerInstance)
	if err != nil {
		return nil, err
	}

	return &InfoCommandHandler{
		libState: libState,
		logger:   loggerInstance,
	}, nil
}

// InfoCmd prints the registered engines, allocators and relevant options.
func (commandHandler *InfoCommandHandler) InfoCmd(cmd *cobra.Command, _ []string) {
	factory, err := commandHandler.libState.AlgoFactory()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("state id:          %s\n", commandHandler.libState.ID())
	fmt.Printf("engines:           %s\n", strings.Join(factory.EngineNames(), ", "))
	fmt.Printf("default allocator: %s\n", commandHandler.libState.Option("base/default_allocator"))

	for _, typeName := range []string{config.AllocatorMalloc, config.AllocatorLocking} {
		status := "missing"
		if commandHandler.libState.GetAllocator(typeName) != nil {
			status = "registered"
		}
		fmt.Printf("allocator %-9s %s\n", typeName+":", status)
	}
}

// InitInfoCommands registers the info command group with the root command.
func InitInfoCommands(rootCmd *cobra.Command) error {
	handler, err := NewInfoCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create info command handler: %w", err)
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show registered engines, allocators and options",
		Run:   handler.InfoCmd,
	}
	rootCmd.AddCommand(infoCmd)

	return nil
}
