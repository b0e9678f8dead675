// Package main is the entry point for the botan-cli application. It
// initializes the root command, registers the sub-commands (info, digest,
// mac, selftest) and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/cdesjardins/botan/cmd/botan-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "botan-cli",
		Short: "Library runtime inspection and primitive resolution CLI",
		Long: `botan-cli is a thin consumer of the library runtime core.
It initializes a library state with the built-in modules and exposes the
registry surface: engine and allocator inspection, digest and MAC
computation through the algorithm factory, and the self-test suite.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitInfoCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize info commands: %w", err)
	}

	if err := commands.InitDigestCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize digest commands: %w", err)
	}

	if err := commands.InitMACCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize mac commands: %w", err)
	}

	if err := commands.InitSelfTestCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize selftest commands: %w", err)
	}

	return nil
}
