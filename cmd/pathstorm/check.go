package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the user config against this release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadComposed()
			if err != nil {
				return err
			}

			ok, err := cfg.IsCompatible()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("config version %s is not compatible with %s", cfg.Version, Version)
			}

			notice, err := cfg.UpgradeNotification()
			if err != nil {
				return err
			}
			if notice != "" {
				log.Warn().Str("config_version", cfg.Version).Msg(notice)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config ok (version %s)\n", cfg.Version)
			return nil
		},
	}
}
