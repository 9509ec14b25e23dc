package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/pathstorm/internal/config"
)

// NewKeysCmd creates the keys command
func NewKeysCmd() *cobra.Command {
	var readOnly bool

	cmd := &cobra.Command{
		Use:   "keys <mode>",
		Short: "Print the help menu for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadComposed()
			if err != nil {
				return err
			}

			mode := cfg.Modes.Get(args[0])
			if mode == nil {
				return fmt.Errorf("%w: %s", config.ErrModeNotFound, args[0])
			}

			sanitized := mode.Sanitized(readOnly)
			for _, line := range sanitized.HelpMenu() {
				fmt.Fprintln(cmd.OutOrStdout(), line.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&readOnly, "read-only", false, "show bindings as they would appear in read-only sessions")

	return cmd
}
