package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Surah represents one chapter of the Quran as listed in the manifest.
//
// Surah carries the identifiers needed to locate, download and tag a single
// recitation file:
//   - Number for URL discovery and the ID3 track frame (1..114)
//   - Name and ArabicName for tagging and playlists
//   - AudioFile, the exact output filename from the manifest
//   - Path, the computed destination on disk
//
// The destination path is computed when loading the manifest, using the
// configured output directory.
//
// Example:
//
//	surah := &Surah{Number: 1, Name: "Al-Fatihah", AudioFile: "001.mp3"}
//	surah.Path = surah.DestinationPath("/audio")
//	// surah.Path = "/audio/001.mp3"
type Surah struct {
	// Number is the surah number (1-indexed, unique within the manifest).
	Number int

	// Name is the transliterated surah name, e.g. "Al-Fatihah".
	// Empty if the manifest does not carry one.
	Name string

	// ArabicName is the surah name in Arabic script, if available.
	ArabicName string

	// AudioFile is the output filename from the manifest, e.g. "001.mp3".
	AudioFile string

	// Path is the computed local file path where the recitation is saved.
	Path string
}

// DestinationPath computes the local file path for this surah under dir.
//
// The manifest filename is sanitized so that a hostile or malformed manifest
// cannot escape the output directory or produce invalid names.
func (s *Surah) DestinationPath(dir string) string {
	return filepath.Join(dir, sanitizeFileName(s.AudioFile))
}

// DisplayTitle returns the title used for ID3 tags and playlists.
//
// The format is "NNN. Name" when a name is known, otherwise "Surah NNN".
//
// Example:
//
//	(&Surah{Number: 1, Name: "Al-Fatihah"}).DisplayTitle() // "001. Al-Fatihah"
//	(&Surah{Number: 36}).DisplayTitle()                    // "Surah 036"
func (s *Surah) DisplayTitle() string {
	if s.Name != "" {
		return fmt.Sprintf("%03d. %s", s.Number, s.Name)
	}
	return fmt.Sprintf("Surah %03d", s.Number)
}

// DownloadTarget pairs a surah with its resolved download URL.
//
// Targets are computed per missing manifest entry once discovery has run.
type DownloadTarget struct {
	// Surah is the manifest entry being downloaded.
	Surah *Surah

	// URL is the discovered download URL for this surah.
	URL string
}

// sanitizeFileName removes or replaces characters that are invalid in
// file names, keeping names portable across operating systems.
func sanitizeFileName(name string) string {
	// Strip any path components first; manifest filenames are plain names.
	name = filepath.Base(name)

	// Replace invalid path/file characters with underscore
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	return strings.TrimRight(name, " ")
}
