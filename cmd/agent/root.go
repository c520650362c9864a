package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	providerKind string
	modelName    string
	maxTurns     int
	strictMode   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "agent",
	Short: "A tool-calling conversation agent",
	Long: `An interactive agent that answers questions and invokes registered tools.

The agent asks a completion backend (Anthropic or a local Ollama server) for
a reply, runs any tool calls that reply requests, and asks once more for a
final answer grounded in the tool results.

Quick Start:
  agent chat                       # start an interactive session
  agent chat --provider ollama     # use a local Ollama server
  agent tools                      # list the registered tools`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&providerKind, "provider", "", "Completion backend: anthropic or ollama")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "Model name for the selected backend")
	rootCmd.PersistentFlags().IntVar(&maxTurns, "max-turns", 0, "End the session after this many turns (0 = unlimited)")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Warn about skipped tools and failed argument coercions")
}
