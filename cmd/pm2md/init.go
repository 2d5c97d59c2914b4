package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/pm2md/pkg/core"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pm2md with a default config and a sample batch manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := core.InitializeConfigFolder(core.ConfigFolderName)
		if err != nil {
			return fmt.Errorf("error initializing config folder: %w", err)
		}
		if !created {
			fmt.Printf("%s already initialized\n", core.ConfigFolderName)
			return nil
		}
		fmt.Printf("✓ %s folder initialized\n", core.ConfigFolderName)
		return nil
	},
}
