// Package download provides the orchestration logic for fetching the
// 114 surah MP3 files.
//
// # Manager
//
// The Manager coordinates the entire run:
//
//  1. Load the surah manifest
//  2. Ensure the output directory exists
//  3. Scrape the reciter page for current download URLs
//  4. Compute which files are missing locally
//  5. Download each missing file with bounded retries
//  6. Tag downloaded MP3s and optionally embed cover art
//  7. Generate a playlist (optional)
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := manager.StartDownloads(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Failure Model
//
// Errors come in three kinds, matching the three phases of a run:
//
//   - *manifest.Error: the manifest is unreadable or malformed. A setup
//     defect; nothing was downloaded.
//   - *quranicaudio.DiscoveryError: the reciter page could not be fetched
//     or carried too few links. Discovery is never retried; this aborts the
//     run before any download starts.
//   - *download.Error (or an ErrNoURL wrap): one file failed after its
//     retry budget, or had no discovered URL. The remaining files are not
//     attempted.
//
// Transient network errors are retried only inside a single file's retry
// budget, with growing backoff between attempts. A failed attempt never
// leaves a partial file on disk.
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent values
// with a severity level (Info, Verbose, Warning, Error, Success). The CLI
// prints them; the TUI feeds them into its log view.
package download
