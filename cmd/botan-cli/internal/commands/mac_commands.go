package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cdesjardins/botan/internal/app"
	"github.com/cdesjardins/botan/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MACCommandHandler encapsulates logic for computing message authentication
// codes through the algorithm factory via CLI.
type MACCommandHandler struct {
	libState *app.LibraryState
	logger   logger.Logger
}

// NewMACCommandHandler initializes and returns a MACCommandHandler instance
// with a configured logger and library state.
func NewMACCommandHandler() (*MACCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	libState, err := newInitializedState(loggerInstance)
	if err != nil {
		return nil, err
	}

	return &MACCommandHandler{
		libState: libState,
		logger:   loggerInstance,
	}, nil
}

// MACCmd authenticates a file with a factory-resolved MAC and prints the
// hex tag
func (commandHandler *MACCommandHandler) MACCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}

	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}

	keyFilePath, err := cmd.Flags().GetString("key-file")
	if err != nil {
		commandHandler.logger.Error("invalid key-file flag ", err)
		return
	}

	factory, err := commandHandler.libState.AlgoFactory()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	mac, err := factory.MAC(algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, err := os.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	tag, err := mac.Compute(message, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("%s  %s\n", hex.EncodeToString(tag), inputFilePath)
}

// InitMACCommands registers the mac command group with the root command.
func InitMACCommands(rootCmd *cobra.Command) error {
	handler, err := NewMACCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create mac command handler: %w", err)
	}

	macCmd := &cobra.Command{
		Use:   "mac",
		Short: "Authenticate a file with a factory-resolved MAC",
		Run:   handler.MACCmd,
	}
	macCmd.Flags().StringP("algorithm", "a", "HMAC(SHA-256)", "MAC algorithm name or alias")
	macCmd.Flags().StringP("input-file", "i", "", "Path to the input file")
	macCmd.Flags().StringP("key-file", "k", "", "Path to the key file")
	rootCmd.AddCommand(macCmd)

	return nil
}
