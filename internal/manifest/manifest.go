package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/handiism/quran-downloader/internal/model"
)

// Error describes a manifest that could not be loaded.
//
// A manifest error indicates a packaging or setup defect (missing file,
// malformed JSON, entries without required fields), not a runtime condition
// the downloader can recover from.
type Error struct {
	// Path is the manifest file that failed to load.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// entry mirrors one object of the SurahList JSON document.
type entry struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	ArabicName string `json:"arabicName"`
	AudioFile  string `json:"audioFile"`
}

// Load reads the surah manifest from path and returns its entries in
// manifest order.
//
// The manifest is a JSON array of objects with at least a "number" (integer)
// and an "audioFile" (string) field; "name" and "arabicName" are optional and
// used for tagging and playlists. Load performs no filesystem writes and does
// not compute destination paths.
//
// Returns a *Error if the file is absent, the JSON is malformed, an entry is
// missing a required field, or two entries share a surah number.
//
// Example:
//
//	surahs, err := manifest.Load("SurahList.json")
//	var merr *manifest.Error
//	if errors.As(err, &merr) {
//	    log.Fatalf("broken manifest: %v", merr)
//	}
func Load(path string) ([]*model.Surah, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}

	seen := make(map[int]struct{}, len(entries))
	surahs := make([]*model.Surah, 0, len(entries))
	for i, e := range entries {
		if e.Number < 1 {
			return nil, &Error{Path: path, Err: fmt.Errorf("entry %d: missing or invalid surah number", i)}
		}
		if e.AudioFile == "" {
			return nil, &Error{Path: path, Err: fmt.Errorf("entry %d (surah %d): missing audioFile", i, e.Number)}
		}
		if _, dup := seen[e.Number]; dup {
			return nil, &Error{Path: path, Err: fmt.Errorf("duplicate surah number %d", e.Number)}
		}
		seen[e.Number] = struct{}{}

		surahs = append(surahs, &model.Surah{
			Number:     e.Number,
			Name:       e.Name,
			ArabicName: e.ArabicName,
			AudioFile:  e.AudioFile,
		})
	}

	return surahs, nil
}
