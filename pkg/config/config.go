// Package config provides configuration utilities for the bionic tools.
package config

import (
	"os"
	"path/filepath"
)

// GetDataPath returns the data directory path.
// It checks for DATA_PATH environment variable, otherwise uses a default.
func GetDataPath() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}

	// Default to current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return filepath.Join(cwd, ".data")
}

// GetFontPath returns the font directory path.
// It checks for FONT_PATH environment variable, otherwise uses a default.
func GetFontPath() string {
	if path := os.Getenv("FONT_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "fonts")
}

// GetFontCatalogPath returns the FONT_CATALOG_PATH override, empty when unset.
func GetFontCatalogPath() string {
	return os.Getenv("FONT_CATALOG_PATH")
}

// GetDatabasePath returns the SQLite database path.
// It checks for DATABASE_PATH environment variable, otherwise uses a default.
func GetDatabasePath() string {
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "plat-bionic.db")
}

// GetGoogleFontsAPIKey returns the key used for the Google Fonts Web API, if any.
func GetGoogleFontsAPIKey() string {
	return os.Getenv("GOOGLE_FONTS_API_KEY")
}
