// Package config provides configuration management for quran-downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get the stock behavior:
//
//	settings := config.DefaultSettings()
//	// Manifest at QuranMenubar/Sources/SurahList.json
//	// Audio written to QuranMenubar/Resources/Audio
//	// Sequential downloads, 3 attempts per file, ID3 tagging enabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Uses defaults if the file doesn't exist
//
// # Configuration Options
//
// Settings includes options for:
//   - Manifest and output locations
//   - The reciter page scraped for download URLs
//   - Retry behavior and download chunk size
//   - ID3 tag content and cover art embedding
//   - Playlist generation
package config
