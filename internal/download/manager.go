package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/lestrrat-go/backoff/v2"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/quran-downloader/internal/audio"
	"github.com/handiism/quran-downloader/internal/config"
	qhttp "github.com/handiism/quran-downloader/internal/http"
	ioutils "github.com/handiism/quran-downloader/internal/io"
	"github.com/handiism/quran-downloader/internal/manifest"
	"github.com/handiism/quran-downloader/internal/model"
	"github.com/handiism/quran-downloader/internal/quranicaudio"
)

// ErrNoURL is returned when a manifest entry has no discovered download URL.
//
// Discovery validates only the total link count; an individual surah can
// still be absent from the index when the page carries a gap. That is a
// data-consistency problem between manifest and page, and aborts the run.
var ErrNoURL = errors.New("no download URL discovered")

// Error describes a surah download that exhausted its retry budget.
type Error struct {
	// Surah is the manifest entry that failed.
	Surah *model.Surah

	// URL is the discovered download URL that was attempted.
	URL string

	// Attempts is how many attempts were made.
	Attempts int

	// Err is the error from the final attempt.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("download surah %03d from %s failed after %d attempts: %v",
		e.Surah.Number, e.URL, e.Attempts, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates the whole run: manifest loading, URL discovery,
// downloading missing surahs, tagging and playlist generation.
//
// A Manager runs in two phases, mirroring how the TUI drives it:
//
//	manager := download.NewManager(settings, onProgress)
//	if err := manager.Initialize(ctx); err != nil { ... } // manifest + discovery
//	if err := manager.StartDownloads(ctx); err != nil { ... }
//
// Downloads run in manifest order. The first unrecoverable error (a surah
// with no discovered URL, or a download that exhausts its retry budget)
// aborts the remaining entries; there is no per-file skip-and-continue.
type Manager struct {
	settings   *config.Settings
	httpClient *qhttp.Client
	discoverer *quranicaudio.Discoverer
	tagger     *audio.Tagger

	surahs  []*model.Surah
	index   quranicaudio.Index
	missing []*model.Surah
	reciter string
	artwork []byte

	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
//
// onProgress may be nil; progress reporting is then disabled.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		httpClient: qhttp.NewClient(settings.UserAgent, settings.ChunkSize),
		discoverer: quranicaudio.NewDiscoverer(settings.ReciterPage, settings.ExpectedSurahCount),
		onProgress: onProgress,
	}
}

// Initialize loads the manifest, prepares the output directory and runs URL
// discovery against the reciter page.
//
// Error kinds surfaced here:
//   - *manifest.Error: manifest unreadable or malformed (setup defect)
//   - *quranicaudio.DiscoveryError: page fetch failed or too few links found
//
// After a successful Initialize, Missing reports how many surahs still need
// to be downloaded.
func (m *Manager) Initialize(ctx context.Context) error {
	surahs, err := manifest.Load(m.settings.ManifestPath)
	if err != nil {
		return err
	}
	for _, surah := range surahs {
		surah.Path = surah.DestinationPath(m.settings.OutputDir)
	}
	m.surahs = surahs

	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		return fmt.Errorf("create output directory %s: %w", m.settings.OutputDir, err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Discovering download URLs from %s", m.discoverer.Page()), Level: LevelVerbose})

	html, err := m.httpClient.GetString(ctx, m.discoverer.Page())
	if err != nil {
		return &quranicaudio.DiscoveryError{Page: m.discoverer.Page(), Err: err}
	}

	index, err := m.discoverer.Discover(html)
	if err != nil {
		return err
	}
	m.index = index

	m.reciter = m.settings.ReciterName
	if m.reciter == "" {
		if info, err := quranicaudio.ParseReciterInfo(html); err == nil && info.Name != "" {
			m.reciter = info.Name
			m.progress(ProgressEvent{Message: fmt.Sprintf("Reciter: %s", m.reciter), Level: LevelVerbose})
		}
	}
	m.tagger = audio.NewTagger(&audio.TagConfig{
		Reciter:     m.reciter,
		Album:       m.settings.AlbumTitle,
		TotalTracks: len(m.surahs),
	})

	m.missing = m.computeMissing()
	m.progress(ProgressEvent{Message: fmt.Sprintf("Discovered %d URLs, %d of %d files missing", len(index), len(m.missing), len(m.surahs)), Level: LevelInfo})

	return nil
}

// computeMissing returns the manifest entries whose destination file does
// not exist yet, in manifest order. Existing files are never re-fetched;
// their presence on disk is the idempotence marker.
func (m *Manager) computeMissing() []*model.Surah {
	var missing []*model.Surah
	for _, surah := range m.surahs {
		if _, err := os.Stat(surah.Path); err != nil {
			missing = append(missing, surah)
		}
	}
	return missing
}

// Missing returns how many surahs still need to be downloaded.
// Only valid after Initialize.
func (m *Manager) Missing() int {
	return len(m.missing)
}

// Total returns the number of manifest entries. Only valid after Initialize.
func (m *Manager) Total() int {
	return len(m.surahs)
}

// GetProgress returns the number of files downloaded so far in this run and
// the number of files that were missing when the run started.
func (m *Manager) GetProgress() (downloaded, missing int32) {
	return atomic.LoadInt32(&m.downloadedFiles), int32(len(m.missing))
}

// StartDownloads downloads every missing surah.
//
// When nothing is missing, the run is a no-op and succeeds immediately.
// Otherwise downloads proceed in manifest order, bounded by
// MaxConcurrentDownloads (1 by default, strictly sequential); the first
// failure cancels the remaining entries and is returned as either a
// *download.Error or an ErrNoURL-wrapping error.
func (m *Manager) StartDownloads(ctx context.Context) error {
	if len(m.missing) == 0 {
		m.progress(ProgressEvent{Message: "All surah files already present. Nothing to download.", Level: LevelSuccess})
		return m.writePlaylist()
	}

	m.fetchCoverArt(ctx)

	total := len(m.missing)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloading %d surah MP3 files to %s", total, m.settings.OutputDir), Level: LevelInfo})

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentDownloads)

	for i, surah := range m.missing {
		i, surah := i, surah
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			url, ok := m.index[surah.Number]
			if !ok {
				return fmt.Errorf("surah %03d: %w", surah.Number, ErrNoURL)
			}

			m.progress(ProgressEvent{Message: fmt.Sprintf("[%d/%d] %s ← %s", i+1, total, surah.AudioFile, url), Level: LevelInfo})

			if err := m.downloadSurah(ctx, surah, url); err != nil {
				return err
			}

			atomic.AddInt32(&m.downloadedFiles, 1)

			if m.settings.ModifyTags {
				if err := m.tagger.SaveTags(surah, m.artwork); err != nil {
					m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", surah.AudioFile, err), Level: LevelWarning})
				}
			}

			m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", filepath.Base(surah.Path)), Level: LevelVerbose})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := m.writePlaylist(); err != nil {
		return err
	}

	m.progress(ProgressEvent{Message: "Download completed successfully.", Level: LevelSuccess})
	return nil
}

// downloadSurah attempts one surah download with bounded retries.
//
// Each attempt streams to the destination and the HTTP client removes the
// partial file on failure, so between attempts the destination is absent.
// The backoff policy waits DownloadRetryCooldown seconds before the second
// attempt and grows by DownloadRetryExponent for each one after that.
func (m *Manager) downloadSurah(ctx context.Context, surah *model.Surah, url string) error {
	maxAttempts := m.settings.DownloadMaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	policy := backoff.Exponential(
		backoff.WithMaxRetries(maxAttempts),
		backoff.WithMinInterval(time.Duration(m.settings.DownloadRetryCooldown*float64(time.Second))),
		backoff.WithMultiplier(m.settings.DownloadRetryExponent),
	)

	var attempt int
	var lastErr error

	b := policy.Start(ctx)
	for backoff.Continue(b) {
		attempt++
		lastErr = m.httpClient.DownloadFile(ctx, url, surah.Path, nil)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			break
		}
		if attempt >= maxAttempts {
			break
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s after error: %v", attempt, maxAttempts, url, lastErr), Level: LevelWarning})
	}

	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return &Error{Surah: surah, URL: url, Attempts: attempt, Err: lastErr}
}

// fetchCoverArt downloads and prepares the reciter cover art once per run.
// Failures degrade to untagged artwork, never to a failed run.
func (m *Manager) fetchCoverArt(ctx context.Context) {
	if !m.settings.ModifyTags || !m.settings.SaveCoverArtInTags || m.settings.CoverArtURL == "" {
		return
	}

	raw, err := m.httpClient.DownloadBytes(ctx, m.settings.CoverArtURL)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading cover art: %v", err), Level: LevelWarning})
		return
	}

	art, err := ioutils.PrepareCoverArt(raw, m.settings.CoverArtMaxSize)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error preparing cover art: %v", err), Level: LevelWarning})
		return
	}

	m.artwork = art
	m.progress(ProgressEvent{Message: "Downloaded cover art", Level: LevelVerbose})
}

// writePlaylist generates the playlist over all manifest entries when
// enabled. Surahs are listed in manifest order whether or not this run
// downloaded them.
func (m *Manager) writePlaylist() error {
	if !m.settings.CreatePlaylist {
		return nil
	}

	format := audio.ParsePlaylistFormat(m.settings.PlaylistFormat)
	creator := audio.NewPlaylistCreator(format, m.settings.M3UExtended, m.reciter)
	content := creator.CreatePlaylist(m.surahs)

	path := filepath.Join(m.settings.OutputDir, m.settings.PlaylistName+format.Extension())
	if err := ioutils.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write playlist %s: %w", path, err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist %s", path), Level: LevelSuccess})
	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
