package cmd

import (
	"errors"
	"os"

	"github.com/lithammer/dedent"
	"github.com/ryan-gang/raindrop-random/internal/cmdutil"
	"github.com/ryan-gang/raindrop-random/internal/logger"
	"github.com/ryan-gang/raindrop-random/internal/picker"
	"github.com/ryan-gang/raindrop-random/internal/readview"
	"github.com/ryan-gang/raindrop-random/internal/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolP("refresh", "r", false, "Bypass the cache and fetch a fresh listing")
	previewCmd.Flags().Int64("collection", 0, "Collection id to pick from (0 for all bookmarks)")
}

var previewExample = dedent.Dedent(`
	# Read an excerpt of a random bookmark in the terminal
	raindrop-random preview

	# Preview a random bookmark from one collection
	raindrop-random preview --collection 4412`,
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Pick a random bookmark and print a readable excerpt",
	Long: `Picks one bookmark at random like 'pick', but instead of opening the
browser it downloads the page, extracts the readable article text, and prints
an excerpt in the terminal.`,
	Example: previewExample,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cmdutil.LoadConfigOrExit(cmd)
		if cfg == nil {
			os.Exit(1)
		}

		log, closeLog := logger.New(cfg.GetLogPath())
		defer closeLog()

		refresh, _ := cmd.Flags().GetBool("refresh")
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

		article, err := readview.Fetch(bookmark.URL)
		if err != nil {
			log.Error().Err(err).Str("url", bookmark.URL).Msg("failed to extract readable content")
			util.LogError(util.NetworkError, "fetching page content", err)
			util.Magenta.Println(bookmark.URL)
			os.Exit(1)
		}

		title := article.Title
		if title == "" {
			title = bookmark.Title
		}
		util.GreenBold.Println(title)
		if article.Byline != "" {
			util.Cyan.Println(article.Byline)
		}
		util.Magenta.Println(bookmark.URL)
		if article.Excerpt != "" {
			util.Cyan.Println()
			util.Cyan.Println(article.Excerpt)
		}
		log.Info().Int64("id", bookmark.ID).Str("url", bookmark.URL).Msg("previewed bookmark")
	},
}
