// Package cli provides the command-line interface for neighborhood.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/openneighborhood/neighborhood/internal/config"
	"github.com/openneighborhood/neighborhood/internal/gui"
	"github.com/openneighborhood/neighborhood/internal/logging"
	"github.com/openneighborhood/neighborhood/internal/version"
)

var (
	// Global flags
	cfgFile      string
	consolesFile string
	mirrorRoot   string
	timeout      time.Duration
	debug        bool

	logger *logging.Logger

	// Cancelled on SIGINT/SIGTERM.
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command. Without a subcommand it opens the GUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neighborhood",
		Short: "File manager for debuggable consoles",
		Long: `Neighborhood ` + version.Version + ` - Built: ` + version.BuildTime + `
Browse, launch and transfer files on development consoles.

Run without arguments to open the window, or use the commands below for
scripted access to the same operations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			if debug || logging.DebugFromEnv() {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&consolesFile, "consoles", "", "Saved console list (default in the config directory)")
	rootCmd.PersistentFlags().StringVar(&mirrorRoot, "mirror-root", "", "Directory holding the console mirrors (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Timeout for each console operation (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"
	rootCmd.AddCommand(newCompletionCmd(rootCmd))
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd
}

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate a shell completion script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Long: `Generate a shell completion script.

  bash:        source <(neighborhood completion bash)
  zsh:         neighborhood completion zsh > "${fpath[1]}/_neighborhood"
  fish:        neighborhood completion fish | source
  powershell:  neighborhood completion powershell | Out-String | Invoke-Expression`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(out)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			default:
				return rootCmd.GenPowerShellCompletion(out)
			}
		},
	}
}

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the file manager window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}
}

func runGUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return gui.LaunchGUI(cfg)
}

// loadConfig resolves settings from the config file and global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(cfgFile, mirrorRoot, timeout, debug)
	if err != nil {
		return nil, err
	}
	GetLogger().Debug().
		Str("mirror_root", cfg.MirrorRoot).
		Dur("operation_timeout", cfg.OperationTimeout).
		Msg("Configuration loaded")
	return cfg, nil
}

// Execute runs the CLI.
func Execute() error {
	rootContext, cancelFunc = context.WithCancel(context.Background())
	defer cancelFunc()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		for sig := range sigChan {
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, cancelling...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()

	signal.Stop(sigChan)
	close(sigChan)
	return err
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newGUICmd())
	rootCmd.AddCommand(newConsolesCmd())
	rootCmd.AddCommand(newDrivesCmd())
	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newPutCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newMvCmd())
	rootCmd.AddCommand(newMkdirCmd())
	rootCmd.AddCommand(newLaunchCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetContext returns the signal-cancelled CLI context.
func GetContext() context.Context {
	if rootContext == nil {
		return context.Background()
	}
	return rootContext
}
