package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/quran-downloader/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// Extension returns the file extension for the format, including the dot.
func (f PlaylistFormat) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	default:
		return ".m3u"
	}
}

// ParsePlaylistFormat maps a config string ("m3u", "pls") to a
// PlaylistFormat, defaulting to M3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	if strings.EqualFold(s, "pls") {
		return FormatPLS
	}
	return FormatM3U
}

// PlaylistCreator generates a playlist over the downloaded surah files.
//
// Surah durations are not known to the downloader, so extended entries use
// the conventional -1 "unknown length" marker. Paths are relative (just the
// filename), assuming the playlist lives in the output directory next to
// the audio files.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true, "Mishary Rashid Alafasy")
//	content := creator.CreatePlaylist(surahs)
//	os.WriteFile(filepath.Join(outputDir, "quran.m3u"), []byte(content), 0644)
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines
	reciter  string
}

// NewPlaylistCreator creates a new PlaylistCreator.
func NewPlaylistCreator(format PlaylistFormat, extended bool, reciter string) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
		reciter:  reciter,
	}
}

// CreatePlaylist generates playlist content for the given surahs, in order.
func (p *PlaylistCreator) CreatePlaylist(surahs []*model.Surah) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(surahs)
	default:
		return p.createM3U(surahs)
	}
}

func (p *PlaylistCreator) createM3U(surahs []*model.Surah) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, surah := range surahs {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s - %s\n", p.reciter, surah.DisplayTitle()))
		}
		sb.WriteString(filepath.Base(surah.Path) + "\n")
	}

	return sb.String()
}

func (p *PlaylistCreator) createPLS(surahs []*model.Surah) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, surah := range surahs {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, filepath.Base(surah.Path)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, surah.DisplayTitle()))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(surahs)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
