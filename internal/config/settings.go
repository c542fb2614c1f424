package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Default endpoints and identifiers for the Mishary Rashid Alafasy set.
const (
	// DefaultReciterPage is the QuranicAudio listing page scraped for
	// current download URLs.
	DefaultReciterPage = "https://quranicaudio.com/quran/5"

	// DefaultUserAgent is a browser-style User-Agent; the listing page
	// rejects obviously scripted clients.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) " +
		"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"
)

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	ManifestPath           string  `json:"manifest_path"`
	OutputDir              string  `json:"output_dir"`
	ReciterPage            string  `json:"reciter_page"`
	UserAgent              string  `json:"user_agent"`
	ExpectedSurahCount     int     `json:"expected_surah_count"`
	MaxConcurrentDownloads int     `json:"max_concurrent_downloads"`
	DownloadMaxAttempts    int     `json:"download_max_attempts"`
	DownloadRetryCooldown  float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent  float64 `json:"download_retry_exponent"`
	ChunkSize              int     `json:"chunk_size"`

	// Tag settings
	ModifyTags  bool   `json:"modify_tags"`
	ReciterName string `json:"reciter_name"`
	AlbumTitle  string `json:"album_title"`

	// Cover art settings
	CoverArtURL        string `json:"cover_art_url"`
	SaveCoverArtInTags bool   `json:"save_cover_art_in_tags"`
	CoverArtMaxSize    int    `json:"cover_art_max_size"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls
	PlaylistName   string `json:"playlist_name"`
	M3UExtended    bool   `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
//
// The defaults mirror the original distribution layout: the manifest lives at
// QuranMenubar/Sources/SurahList.json and audio is written to
// QuranMenubar/Resources/Audio, both relative to the working directory.
// Downloads are strictly sequential unless MaxConcurrentDownloads is raised.
func DefaultSettings() *Settings {
	return &Settings{
		ManifestPath:           filepath.Join("QuranMenubar", "Sources", "SurahList.json"),
		OutputDir:              filepath.Join("QuranMenubar", "Resources", "Audio"),
		ReciterPage:            DefaultReciterPage,
		UserAgent:              DefaultUserAgent,
		ExpectedSurahCount:     114,
		MaxConcurrentDownloads: 1,
		DownloadMaxAttempts:    3,
		DownloadRetryCooldown:  2.0,
		DownloadRetryExponent:  2.0,
		ChunkSize:              32 * 1024,

		ModifyTags:  true,
		ReciterName: "Mishary Rashid Alafasy",
		AlbumTitle:  "The Holy Quran",

		SaveCoverArtInTags: true,
		CoverArtMaxSize:    1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		PlaylistName:   "quran",
		M3UExtended:    true,
	}
}

// Load reads settings from a JSON file.
//
// Missing files are not an error; defaults are returned so the tool works
// with zero configuration.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
