package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cdesjardins/botan/internal/app"
	"github.com/cdesjardins/botan/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// DigestCommandHandler encapsulates logic for computing digests through the
// algorithm factory via CLI.
type DigestCommandHandler struct {
	libState *app.LibraryState
	logger   logger.Logger
}

// NewDigestCommandHandler initializes and returns a DigestCommandHandler
// instance with a configured logger and library state.
func NewDigestCommandHandler() (*DigestCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	libState, err := newInitializedState(loggerInstance)
	if err != nil {
		return nil, err
	}

	return &DigestCommandHandler{
		libState: libState,
		logger:   loggerInstance,
	}, nil
}

// DigestCmd hashes a file with a factory-resolved hash function and prints
// the hex digest, optionally persisting it next to a unique id
func (commandHandler *DigestCommandHandler) DigestCmd(cmd *cobra.Command, _ []string) {
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

	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		commandHandler.logger.Error("invalid output-dir flag ", err)
		return
	}

	factory, err := commandHandler.libState.AlgoFactory()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	hash, err := factory.HashFunction(algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	digest := hex.EncodeToString(hash.Compute(data))
	fmt.Printf("%s  %s\n", digest, inputFilePath)

	if outputDir != "" {
		uniqueID := uuid.New()
		outputFilePath := filepath.Join(outputDir, fmt.Sprintf("%s-digest.txt", uniqueID))
		if err := os.WriteFile(outputFilePath, []byte(digest+"\n"), 0600); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("digest saved to ", outputFilePath)
	}
}

// InitDigestCommands registers the digest command group with the root
// command.
func InitDigestCommands(rootCmd *cobra.Command) error {
	handler, err := NewDigestCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create digest command handler: %w", err)
	}

	digestCmd := &cobra.Command{
		Use:   "digest",
		Short: "Hash a file with a factory-resolved hash function",
		Run:   handler.DigestCmd,
	}
	digestCmd.Flags().StringP("algorithm", "a", "SHA-256", "Hash algorithm name or alias")
	digestCmd.Flags().StringP("input-file", "i", "", "Path to the input file")
	digestCmd.Flags().StringP("output-dir", "o", "", "Directory to persist the digest in (optional)")
	rootCmd.AddCommand(digestCmd)

	return nil
}
