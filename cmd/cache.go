package cmd

import (
	"os"
	"time"

	"github.com/ryan-gang/raindrop-random/internal/cache"
	"github.com/ryan-gang/raindrop-random/internal/cmdutil"
	"github.com/ryan-gang/raindrop-random/internal/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local bookmark cache",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the cache file, its age and freshness",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cmdutil.LoadConfigOrExit(cmd)
		if cfg == nil {
			os.Exit(1)
		}

		store := cache.NewStore(cfg.GetCachePath(), cfg.GetCacheTTL())
		util.Cyan.Printf("Cache file: %s\n", store.Path)
		util.Cyan.Printf("TTL: %s\n", store.TTL)

		snapshot, err := store.Peek()
		if err != nil {
			util.LogError(util.CacheError, "reading cache", err)
			os.Exit(1)
		}
		if snapshot == nil {
			util.Magenta.Println("Cache is empty")
			return
		}

		util.Cyan.Printf("Collection: %d\n", snapshot.CollectionID)
		util.Cyan.Printf("Bookmarks: %d\n", len(snapshot.Bookmarks))
		util.Cyan.Printf("Fetched: %s (%s ago)\n",
			snapshot.FetchedAt.Format("2006-01-02 15:04:05"),
			snapshot.Age().Round(time.Second))
		if snapshot.Age() < store.TTL {
			util.Green.Println("Cache is fresh")
		} else {
			util.Red.Println("Cache is stale, next pick will refetch")
		}
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the cached bookmark snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := cmdutil.LoadConfigOrExit(cmd)
		if cfg == nil {
			os.Exit(1)
		}

		store := cache.NewStore(cfg.GetCachePath(), cfg.GetCacheTTL())
		if err := store.Clear(); err != nil {
			util.LogError(util.CacheError, "clearing cache", err)
			os.Exit(1)
		}
		util.Green.Println("Cache cleared")
	},
}
