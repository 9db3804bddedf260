package config

import (
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Config holds the server configuration.
type Config struct {
	mcp.McpConf

	UI       UIConfig       `json:",optional"`
	API      APIConfig      `json:",optional"`
	Fonts    FontsConfig    `json:",optional"`
	Database DatabaseConfig `json:",optional"`
	Queue    QueueConfig    `json:",optional"`
	Engine   EngineConfig   `json:",optional"`
}

// UIConfig holds the Web UI server settings.
type UIConfig struct {
	rest.RestConf
}

// APIConfig holds the REST API server settings.
type APIConfig struct {
	rest.RestConf
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	// Path defaults to DATABASE_PATH or $DATA_PATH/plat-bionic.db.
	Path string `json:",optional"`
}

// FontsConfig holds font catalog settings.
type FontsConfig struct {
	// Catalog defaults to FONT_CATALOG_PATH or $DATA_PATH/fonts/catalog.json.
	Catalog string `json:",optional"`
	// Families are merged into the catalog from Google Fonts at startup.
	Sync         []string `json:",optional"`
	GoogleAPIKey string   `json:",optional,env=GOOGLE_FONTS_API_KEY"`
}

// QueueConfig holds conversion queue settings.
type QueueConfig struct {
	Name       string `json:",default=conversions"`
	MaxReceive int    `json:",default=3"`
	Timeout    string `json:",default=30s"`
}

// EngineConfig holds conversion engine settings.
type EngineConfig struct {
	Workers   int `json:",default=2"`
	RateLimit int `json:",default=600"`
}
