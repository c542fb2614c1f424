// Package http provides an HTTP client configured for QuranicAudio requests.
//
// The Client in this package handles:
//   - A browser-style User-Agent header (the listing page rejects obviously
//     scripted clients)
//   - Streaming downloads to disk in fixed-size chunks
//   - Cleanup of partial files when a download attempt fails
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(userAgent, 32*1024)
//
//	// Fetch the reciter listing page
//	html, err := client.GetString(ctx, "https://quranicaudio.com/quran/5")
//
//	// Download a surah with progress callback
//	client.DownloadFile(ctx, mp3URL, "/audio/001.mp3", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
