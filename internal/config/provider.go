package config

import "time"

// Provider defines the interface for configuration access
type Provider interface {
	GetToken() string
	GetCollectionID() int64
	GetPerPage() int
	GetCachePath() string
	GetCacheTTL() time.Duration
	GetLogPath() string
}

// ProviderImpl implements the Provider interface
type ProviderImpl struct {
	cfg *config
}

// NewProvider creates a new Provider instance
func NewProvider(cfg *config) Provider {
	return &ProviderImpl{cfg: cfg}
}

func (c *ProviderImpl) GetToken() string {
	return c.cfg.Token
}

func (c *ProviderImpl) GetCollectionID() int64 {
	return c.cfg.CollectionID
}

func (c *ProviderImpl) GetPerPage() int {
	return c.cfg.PerPage
}

func (c *ProviderImpl) GetCachePath() string {
	return c.cfg.CachePath
}

func (c *ProviderImpl) GetCacheTTL() time.Duration {
	return time.Duration(c.cfg.CacheTTLMinutes) * time.Minute
}

func (c *ProviderImpl) GetLogPath() string {
	return c.cfg.LogPath
}
