package cmd

import (
	"errors"
	"os"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog"
	"github.com/ryan-gang/raindrop-random/internal/cache"
	"github.com/ryan-gang/raindrop-random/internal/cmdutil"
	"github.com/ryan-gang/raindrop-random/internal/config"
	"github.com/ryan-gang/raindrop-random/internal/logger"
	"github.com/ryan-gang/raindrop-random/internal/opener"
	"github.com/ryan-gang/raindrop-random/internal/picker"
	"github.com/ryan-gang/raindrop-random/internal/raindrop"
	"github.com/ryan-gang/raindrop-random/internal/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolP("refresh", "r", false, "Bypass the cache and fetch a fresh listing")
	pickCmd.Flags().BoolP("print-only", "p", false, "Print the bookmark without opening the browser")
	pickCmd.Flags().Int64("collection", 0, "Collection id to pick from (0 for all bookmarks)")
}

var pickExample = dedent.Dedent(`
	# Open a random bookmark in the browser
	raindrop-random pick

	# Print a random bookmark without opening anything
	raindrop-random pick --print-only

	# Pick from a specific collection, skipping the cache
	raindrop-random pick --collection 4412 --refresh`,
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a random bookmark and open it in the browser",
	Long: `Picks one bookmark uniformly at random from your Raindrop.io account,
prints it, and opens it in the default browser. Listings are served from the
local cache while it is fresh; otherwise one API call refreshes it.`,
	Example: pickExample,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cmdutil.LoadConfigOrExit(cmd)
		if cfg == nil {
			os.Exit(1)
		}

		log, closeLog := logger.New(cfg.GetLogPath())
		defer closeLog()

		refresh, _ := cmd.Flags().GetBool("refresh")
		printOnly, _ := cmd.Flags().GetBool("print-only")
		collection := collectionFromFlags(cmd, cfg)

		bookmark, err := pickBookmark(cmd, cfg, log, collection, refresh)
		if err != nil {
			if errors.Is(err, picker.ErrNoBookmarks) {
				log.Info().Int64("collection", collection).Msg("no bookmarks to pick from")
				util.Cyan.Println("No bookmarks found")
				return
			}
			cmdutil.ReportFetchError(log, err)
			os.Exit(1)
		}

		util.GreenBold.Println(bookmark.Title)
		util.Magenta.Println(bookmark.URL)
		log.Info().Int64("id", bookmark.ID).Str("url", bookmark.URL).Msg("picked bookmark")

		if printOnly {
			return
		}
		if err := (opener.Browser{}).Open(bookmark.URL); err != nil {
			log.Error().Err(err).Str("url", bookmark.URL).Msg("failed to open browser")
			util.LogError(util.BookmarkError, "opening bookmark", err)
			os.Exit(1)
		}
	},
}

// collectionFromFlags prefers an explicit --collection flag over the
// configured default.
func collectionFromFlags(cmd *cobra.Command, cfg config.Provider) int64 {
	if cmd.Flags().Changed("collection") {
		collection, _ := cmd.Flags().GetInt64("collection")
		return collection
	}
	return cfg.GetCollectionID()
}

// pickBookmark runs the shared fetch-or-cache and random-selection flow used
// by both pick and preview.
func pickBookmark(cmd *cobra.Command, cfg config.Provider, log zerolog.Logger, collection int64, refresh bool) (raindrop.Bookmark, error) {
	client := raindrop.NewClient(cfg.GetToken())
	store := cache.NewStore(cfg.GetCachePath(), cfg.GetCacheTTL())
	manager := cache.NewManager(store, client, cfg.GetPerPage(), log)

	bookmarks, err := manager.Bookmarks(cmd.Context(), collection, refresh)
	if err != nil {
		return raindrop.Bookmark{}, err
	}
	return picker.Choose(bookmarks)
}
