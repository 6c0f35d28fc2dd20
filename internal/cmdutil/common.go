package cmdutil

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ryan-gang/raindrop-random/internal/config"
	"github.com/ryan-gang/raindrop-random/internal/raindrop"
	"github.com/ryan-gang/raindrop-random/internal/util"
)

// LoadConfigFromFlags loads configuration using the config flag from the command
func LoadConfigFromFlags(cmd *cobra.Command) (config.Provider, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	return config.LoadProvider(configPath)
}

// LoadConfigOrExit loads configuration and reports an error message if it fails
func LoadConfigOrExit(cmd *cobra.Command) config.Provider {
	cfg, err := LoadConfigFromFlags(cmd)
	if err != nil {
		util.LogError(util.ConfigError, "loading configuration", err)
		return nil
	}
	return cfg
}

// ReportFetchError writes a fetch failure to the log file and the terminal,
// distinguishing a rejected token from transient network trouble.
func ReportFetchError(log zerolog.Logger, err error) {
	if errors.Is(err, raindrop.ErrUnauthorized) {
		log.Error().Err(err).Msg("token rejected")
		util.LogError(util.AuthError, "fetching bookmarks", err)
		util.Cyan.Println("Check the RAINDROP_TOKEN environment variable or run 'raindrop-random configure'")
		return
	}
	log.Error().Err(err).Msg("fetch failed")
	util.LogError(util.NetworkError, "fetching bookmarks", err)
}
