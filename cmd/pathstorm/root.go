package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dshills/pathstorm/internal/config"
	"github.com/dshills/pathstorm/internal/config/loader"
)

// Version is the release version, injected at build time.
var Version = config.Version

var (
	cfgFile string
	verbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pathstorm",
		Short:   "A keyboard-driven terminal file explorer",
		Version: Version,
		Long: `Pathstorm is a keyboard-driven terminal file explorer.

Every key press resolves through a modal configuration: the built-in
baseline extended with the user's config file. The subcommands inspect
that composed configuration without starting the explorer.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/pathstorm/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewKeysCmd())
	rootCmd.AddCommand(NewDefaultsCmd())

	return rootCmd
}

// defaultConfigPath returns the conventional user config location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "config.yml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "pathstorm", "config.yml")
}

// loadComposed loads the user overlay (if any) and merges it onto the
// built-in baseline.
func loadComposed() (config.Config, error) {
	path := cfgFile
	if path == "" {
		path = defaultConfigPath()
	}

	overlay, err := loader.NewYAMLLoader(path).Load()
	if err != nil {
		return config.Config{}, err
	}
	if overlay == nil {
		return config.Default(), nil
	}
	return overlay.Extended(), nil
}
