package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/andyzzhao/agent-demos/internal/config"
	"github.com/andyzzhao/agent-demos/internal/provider"
	"github.com/andyzzhao/agent-demos/internal/runner"
	"github.com/andyzzhao/agent-demos/tools"
)

var (
	youStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	agentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session",
	Long:  `Start an interactive conversation with the agent on stdin/stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		prov, err := buildProvider(cfg)
		if err != nil {
			return err
		}

		session := runner.New(prov, tools.Builtins(), runner.Options{
			SystemMessage:     cfg.Session.SystemMessage,
			MaxTurns:          cfg.Session.MaxTurns,
			TerminationMarker: cfg.Session.TerminationMarker,
			Strict:            cfg.Session.Strict,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println(noticeStyle.Render("Chat with the agent (ctrl-c or ctrl-d to quit)"))
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(youStyle.Render("You") + ": ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}

			reply, err := session.HandleMessage(ctx, input)
			if errors.Is(err, runner.ErrConversationEnded) {
				fmt.Println(noticeStyle.Render("Conversation terminated."))
				break
			}
			if errors.Is(err, context.Canceled) {
				break
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Printf("%s: %s\n", agentStyle.Render("Agent"), reply)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// loadConfig reads the config file (if any) and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if providerKind != "" {
		cfg.Provider.Kind = providerKind
	}
	if modelName != "" {
		cfg.Provider.Model = modelName
	}
	if maxTurns > 0 {
		cfg.Session.MaxTurns = maxTurns
	}
	if strictMode {
		cfg.Session.Strict = true
	}
	return cfg, nil
}

func buildProvider(cfg *config.Config) (provider.CompletionProvider, error) {
	switch cfg.Provider.Kind {
	case "anthropic":
		if os.Getenv("ANTHROPIC_API_KEY") == "" {
			return nil, errors.New("missing ANTHROPIC_API_KEY; export it before running")
		}
		model := provider.DefaultAnthropicModel
		if cfg.Provider.Model != "" {
			model = anthropic.Model(cfg.Provider.Model)
		}
		p := provider.NewAnthropic(model)
		p.Registry = tools.Builtins()
		p.NativeTools = cfg.Provider.NativeTools
		return p, nil
	case "ollama":
		if cfg.Provider.Model == "" {
			return nil, errors.New("ollama requires a model name (--model or config)")
		}
		p := provider.NewOllama(cfg.Provider.Endpoint, cfg.Provider.Model)
		p.Registry = tools.Builtins()
		p.NativeTools = cfg.Provider.NativeTools
		return p, nil
	default:
		return nil, fmt.Errorf("unknown provider kind %q", cfg.Provider.Kind)
	}
}
