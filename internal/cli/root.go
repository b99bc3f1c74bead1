package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/whauf/sportscard-tracker/internal/services"
)

// app carries the resolved settings shared by every subcommand
type app struct {
	configPath string
	backendURL string
	timeout    string
	noColor    bool

	config *Config
}

// NewRootCmd builds the cardctl command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cardctl",
		Short: "Browse and update a sports card inventory from the terminal",
		Long: `cardctl talks to the card tracker REST backend. It lists cards with
condition, variant and grade badges, filters them, and records new cards and
sales.

Settings are read from $XDG_CONFIG_HOME/cardtracker/config.toml and can be
overridden with flags.

Examples:
  cardctl cards list --sport Basketball
  cardctl cards list --grading-service PSA --grade 10
  cardctl sales list 3
  cardctl grades SGC`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", GetConfigFilePath(), "Path to the config file")
	root.PersistentFlags().StringVar(&a.backendURL, "backend-url", "", "Backend base URL (overrides config)")
	root.PersistentFlags().StringVar(&a.timeout, "timeout", "", "Request timeout, e.g. 5s (overrides config)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newCardsCmd(a))
	root.AddCommand(newSalesCmd(a))
	root.AddCommand(newGradesCmd())

	return root
}

// Execute runs cardctl against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) load(cmd *cobra.Command) error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.backendURL != "" {
		config.BackendURL = a.backendURL
	}
	if a.timeout != "" {
		config.Timeout = a.timeout
	}
	if a.noColor {
		config.NoColor = true
	}
	a.config = config

	color.NoColor = config.NoColor || !isTerminal(cmd.OutOrStdout())
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (a *app) client() (*services.BackendClient, error) {
	timeout, err := a.config.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if a.config.BackendURL == "" {
		return nil, fmt.Errorf("no backend URL configured")
	}
	return services.NewBackendClient(a.config.BackendURL, timeout, a.config.RequestsPerSecond, 0), nil
}

// shell builds a presentation shell over the backend client. The terminal
// has no banner to expire, so notifications are printed right away.
func (a *app) shell() (*services.Shell, error) {
	client, err := a.client()
	if err != nil {
		return nil, err
	}
	return services.NewShell(client, nil, nil, 0), nil
}

func printNotification(cmd *cobra.Command, shell *services.Shell) {
	if n, ok := shell.Notifier().Current(); ok {
		RenderNotification(cmd.OutOrStdout(), n)
	}
}
