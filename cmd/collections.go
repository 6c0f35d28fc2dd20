package cmd

import (
	"os"

	"github.com/ryan-gang/raindrop-random/internal/cmdutil"
	"github.com/ryan-gang/raindrop-random/internal/logger"
	"github.com/ryan-gang/raindrop-random/internal/raindrop"
	"github.com/ryan-gang/raindrop-random/internal/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List the collections of your Raindrop.io account",
	Long: `Lists every collection in the account together with its id, so the id can
be used with 'pick --collection' or stored in the config file. The pseudo
"All Bookmarks" collection (id 0) is always listed.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cmdutil.LoadConfigOrExit(cmd)
		if cfg == nil {
			os.Exit(1)
		}

		log, closeLog := logger.New(cfg.GetLogPath())
		defer closeLog()

		client := raindrop.NewClient(cfg.GetToken())
		collections, err := client.Collections(cmd.Context())
		if err != nil {
			cmdutil.ReportFetchError(log, err)
			os.Exit(1)
		}

		for _, collection := range collections {
			util.Cyan.Printf("%10d  ", collection.ID)
			util.GreenBold.Println(collection.Title)
		}
		log.Info().Int("collections", len(collections)).Msg("listed collections")
	},
}
