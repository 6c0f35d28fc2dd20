package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/ryan-gang/raindrop-random/internal/util"
)

type config struct {
	Token           string `json:"token"`
	CollectionID    int64  `json:"collection_id"`
	PerPage         int    `json:"per_page"`
	CachePath       string `json:"cache_path"`
	CacheTTLMinutes int    `json:"cache_ttl_minutes"`
	LogPath         string `json:"log_path"`
}

const DefaultPerPage = 50
const DefaultCacheTTLMinutes = 5
const XdgConfigHome = "XDG_CONFIG_HOME"
const ConfigFolderName = "raindrop-random"

// envOverrides holds values the launcher can inject through the environment.
// A token set this way always wins over the config file.
type envOverrides struct {
	Token string `env:"RAINDROP_TOKEN"`
}

func DefaultConfigPath() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("couldn't get current user: %w", err)
	}
	xdgConfigHome := os.Getenv(XdgConfigHome)
	var configFolder string
	if len(xdgConfigHome) == 0 {
		configFolder = path.Join(user.HomeDir, ".config")
		configFolder = path.Join(configFolder, ConfigFolderName)
	} else {
		configFolder = path.Join(xdgConfigHome, ConfigFolderName)
	}
	if err := os.MkdirAll(configFolder, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return path.Join(configFolder, "config.json"), nil
}

// SetPathDefaults fills in the cache and log paths next to the config file
// when the user left them empty.
func SetPathDefaults(c *config) error {
	if c.CachePath == "" || c.LogPath == "" {
		configPath, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		configDir := path.Dir(configPath)
		if c.CachePath == "" {
			c.CachePath = path.Join(configDir, "cache.json")
		}
		if c.LogPath == "" {
			c.LogPath = path.Join(configDir, "raindrop-random.log")
		}
	}
	return nil
}

func exists(filename string) bool {
	if _, err := os.Stat(filename); err != nil {
		return false
	}
	return true
}

func NewConfig() *config {
	config := config{}
	config.CollectionID = 0
	config.PerPage = DefaultPerPage
	config.CacheTTLMinutes = DefaultCacheTTLMinutes
	config.CachePath = ""
	config.LogPath = ""
	return &config
}

func CreateConfig() *config {
	util.CyanBold.Println("CONFIGURE RAINDROP-RANDOM")

	configuration := NewConfig()
	util.Cyan.Println("Raindrop.io API token (create one under Settings > Integrations > For Developers).")
	util.Cyan.Printf("Leave empty if the RAINDROP_TOKEN environment variable is set by your launcher : ")
	configuration.Token = util.ScanlineTrim()

	util.Cyan.Printf("Collection id to pick from (0 for all bookmarks) : ")
	collectionStr := util.ScanlineTrim()
	if collectionStr != "" {
		if collection, err := strconv.ParseInt(collectionStr, 10, 64); err == nil {
			configuration.CollectionID = collection
		} else {
			util.Red.Println("Not a valid collection id, keeping 0 (all bookmarks)")
		}
	}

	util.Cyan.Printf("Cache time-to-live in minutes (default %d) : ", DefaultCacheTTLMinutes)
	ttlStr := util.ScanlineTrim()
	if ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil && ttl > 0 {
			configuration.CacheTTLMinutes = ttl
		}
	}

	return configuration
}

func handleCreation(filename string) error {
	util.Red.Println("Configuration file doesn't exist\n Answer next few questions to create config file")
	configuration := CreateConfig()
	err := Save(*configuration, filename)
	if err != nil {
		util.Red.Println("Error while writing config to ", filename, err)
		return err
	}
	util.Green.Printf("Config created successfully and stored at %s, you can directly edit it later on \n", filename)
	return nil
}

func LoadProvider(filename string) (Provider, error) {
	cfg, err := Load(filename)
	if err != nil {
		return nil, err
	}
	return NewProvider(&cfg), nil
}

func Load(filename string) (config, error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	if !exists(filename) {
		// With the token supplied by the environment the tool is fully
		// usable without a config file, so don't force the interactive
		// setup on launcher invocations.
		if overrides.Token != "" {
			c := *NewConfig()
			c.Token = overrides.Token
			if err := SetPathDefaults(&c); err != nil {
				return config{}, err
			}
			return c, nil
		}
		if err := handleCreation(filename); err != nil {
			return config{}, err
		}
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		util.Red.Println("Error reading config ", err)
		return config{}, err
	}
	var c config
	err = json.Unmarshal(data, &c)
	if err != nil {
		util.Red.Println("Error converting config to json ", err)
		return config{}, err
	}

	if overrides.Token != "" {
		c.Token = overrides.Token
	}
	if c.PerPage <= 0 {
		c.PerPage = DefaultPerPage
	}
	if c.CacheTTLMinutes <= 0 {
		c.CacheTTLMinutes = DefaultCacheTTLMinutes
	}
	if err := SetPathDefaults(&c); err != nil {
		util.Red.Println("Error setting path defaults: ", err)
		return config{}, err
	}

	return c, nil
}

func Save(c config, filename string) error {
	data, err := json.MarshalIndent(c, "", "	")
	if err != nil {
		util.Red.Println("Error parsing configuration for writing")
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
