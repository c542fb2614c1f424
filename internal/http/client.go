package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// defaultChunkSize is the copy buffer size used when streaming bodies to
// disk: 32 KiB.
const defaultChunkSize = 32 * 1024

// Client wraps HTTP operations with QuranicAudio-specific configuration.
//
// Client provides:
//   - A browser-style User-Agent header (the listing page blocks trivially
//     scripted clients)
//   - Timeout handling
//   - Streaming file download in fixed-size chunks with progress tracking
//   - Cleanup of partially written files on failed downloads
//
// Example usage:
//
//	client := NewClient(userAgent, 32*1024)
//
//	// Fetch the reciter listing page
//	html, err := client.GetString(ctx, "https://quranicaudio.com/quran/5")
//
//	// Download one surah with progress
//	err = client.DownloadFile(ctx, mp3URL, "/audio/001.mp3", func(written, total int64) {
//	    percent := float64(written) / float64(total) * 100
//	    fmt.Printf("%.1f%%\n", percent)
//	})
type Client struct {
	httpClient *http.Client
	userAgent  string
	chunkSize  int
}

// NewClient creates a new HTTP client for the downloader.
//
// chunkSize controls the copy buffer used when streaming downloads to disk;
// values <= 0 fall back to 32 KiB. The client uses a 60 second per-request
// timeout.
func NewClient(userAgent string, chunkSize int) *Client {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: userAgent,
		chunkSize: chunkSize,
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// Use this to monitor large downloads by providing an OnUpdate callback
// that receives the current bytes written and total expected bytes.
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	// Parameters are (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the response body as text.
//
// Invalid UTF-8 byte sequences are replaced with U+FFFD rather than
// rejected; the listing page occasionally serves broken encodings and the
// link pattern is pure ASCII anyway.
//
// Example:
//
//	html, err := client.GetString(ctx, "https://quranicaudio.com/quran/5")
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(body), "�"), nil
}

// DownloadFile downloads a file to the specified path with optional progress callback.
//
// The body is streamed to disk in fixed-size chunks, avoiding loading the
// entire file into memory. If any part of the attempt fails (request error,
// non-200 status, short write), the partially written destination file is
// removed best-effort: after DownloadFile returns, the destination either
// holds the complete body or does not exist.
//
// Parameters:
//   - ctx: Context for cancellation
//   - url: URL to download from
//   - destPath: Local file path to save to
//   - onProgress: Optional callback called with (bytesWritten, totalBytes);
//     pass nil to disable progress tracking
//
// Example:
//
//	err := client.DownloadFile(ctx, mp3URL, "/audio/001.mp3", func(written, total int64) {
//	    if total > 0 {
//	        fmt.Printf("%.1f%%\r", float64(written)/float64(total)*100)
//	    }
//	})
func (c *Client) DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			// Never leave a partial file behind. Removal errors are
			// not actionable here.
			os.Remove(destPath)
		}
	}()

	// The ProgressWriter wrapper also hides the file's ReadFrom, so
	// CopyBuffer actually copies through buf in chunkSize pieces.
	writer := &ProgressWriter{
		Writer:   file,
		Total:    resp.ContentLength,
		OnUpdate: onProgress,
	}

	buf := make([]byte, c.chunkSize)
	_, err = io.CopyBuffer(writer, resp.Body, buf)
	return err
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover art images. For the surah MP3s,
// use DownloadFile to stream directly to disk.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
