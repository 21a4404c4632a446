package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/ash"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ash",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ash version %s\n", strings.TrimSpace(ash.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
