package cmd

import (
	"fmt"
	"os"

	"github.com/ryan-gang/raindrop-random/internal/config"
	"github.com/ryan-gang/raindrop-random/internal/util"
	"github.com/spf13/cobra"
)

func init() {
	var configPath string
	configPath, err := config.DefaultConfigPath()
	if err != nil {
		util.Red.Println("Error setting default config path: ", err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "Path to config file")
}

var rootCmd = &cobra.Command{
	Use:   "raindrop-random",
	Short: "Surface a random bookmark from your Raindrop.io account",
	Long: `raindrop-random fetches your Raindrop.io bookmarks, keeps a short-lived
local cache of them, and surfaces one at random. It is meant to be wired into
a launcher (one keystroke, one random bookmark opened in the browser), but
works just as well from a shell.

Bookmark listings are cached in a local file for a few minutes, so repeated
invocations don't hammer the Raindrop.io API. The API token is read from the
RAINDROP_TOKEN environment variable or the config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help if no command is provided
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
