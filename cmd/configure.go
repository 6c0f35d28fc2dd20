package cmd

import (
	"os"
	"strconv"

	"github.com/ryan-gang/raindrop-random/internal/config"
	"github.com/ryan-gang/raindrop-random/internal/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure raindrop-random settings",
	Long: `Configure raindrop-random settings including the Raindrop.io API token,
the default collection and the cache time-to-live.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		if _, err := os.Stat(configPath); err != nil {
			util.CyanBold.Println("Creating new configuration...")
			cfg := config.CreateConfig()
			if err := config.Save(*cfg, configPath); err != nil {
				util.Red.Printf("Error saving configuration: %v\n", err)
				os.Exit(1)
			}
			util.Green.Printf("Configuration saved to %s\n", configPath)
		} else {
			util.CyanBold.Println("Updating existing configuration...")
			cfg, err := config.Load(configPath)
			if err != nil {
				util.Red.Printf("Error loading configuration: %v\n", err)
				os.Exit(1)
			}

			util.Cyan.Println("\nCurrent settings:")
			if cfg.Token == "" {
				util.Cyan.Println("Token: (taken from RAINDROP_TOKEN)")
			} else {
				util.Cyan.Println("Token: (set in config file)")
			}
			util.Cyan.Printf("Collection id: %d\n", cfg.CollectionID)
			util.Cyan.Printf("Cache TTL: %d minutes\n", cfg.CacheTTLMinutes)

			util.CyanBold.Println("\nUpdate configuration? (y/n):")
			response := util.ScanlineTrim()

			if response == "y" || response == "Y" || response == "yes" {
				util.Cyan.Printf("Raindrop.io API token (empty to keep current): ")
				newToken := util.ScanlineTrim()
				if newToken != "" {
					cfg.Token = newToken
				}

				util.Cyan.Printf("Collection id (current: %d): ", cfg.CollectionID)
				collectionStr := util.ScanlineTrim()
				if collectionStr != "" {
					if collection, err := strconv.ParseInt(collectionStr, 10, 64); err == nil {
						cfg.CollectionID = collection
					}
				}

				util.Cyan.Printf("Cache TTL in minutes (current: %d): ", cfg.CacheTTLMinutes)
				ttlStr := util.ScanlineTrim()
				if ttlStr != "" {
					if ttl, err := strconv.Atoi(ttlStr); err == nil && ttl > 0 {
						cfg.CacheTTLMinutes = ttl
					}
				}

				if err := config.Save(cfg, configPath); err != nil {
					util.Red.Printf("Error saving configuration: %v\n", err)
					os.Exit(1)
				}

				util.Green.Println("Configuration updated successfully!")
			}
		}

		util.CyanBold.Println("\nNext steps:")
		util.Cyan.Println("- Run 'raindrop-random pick' to open a random bookmark")
		util.Cyan.Println("- Run 'raindrop-random collections' to find collection ids")
	},
}
