package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ash/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ash",
	Short: "Ash is a small interactive shell",
	Long: `Ash runs an interactive command loop with a set of builtin commands
(cd, ls, cat, grep, ...) and falls through to external programs for
anything it does not know. Ctrl+C cancels the current line; 'exit' or
Ctrl+D ends the session.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		prompt, _ := cmd.Flags().GetString("prompt")

		err := cli.Execute(cli.RunOptions{
			Debug:    debug,
			NoBanner: noBanner,
			Prompt:   prompt,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("debug", false, "Enable verbose dispatch logging on stderr")
	rootCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")
	rootCmd.Flags().String("prompt", "", "Prompt template; {cwd} expands to the working directory")
}
