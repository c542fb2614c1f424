package quranicaudio

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrTooFewLinks is returned when the reciter page yields fewer distinct
// surah links than expected.
//
// This is a deliberate sanity check: a complete listing page carries one
// link per surah, so a short result means the page structure changed or a
// degraded/partial page was served. Proceeding would download an
// unpredictable subset.
var ErrTooFewLinks = errors.New("too few surah links on reciter page")

// DiscoveryError describes a failed URL discovery run.
//
// Discovery performs a single fetch with no retries; any failure here is
// terminal for the whole run. Found carries the number of distinct surah
// keys that were extracted before the failure was declared.
type DiscoveryError struct {
	// Page is the reciter page URL that was scraped.
	Page string

	// Found is the number of distinct surah numbers discovered.
	Found int

	// Err is the underlying cause.
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover %s: %v", e.Page, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// linkPattern matches QuranicAudio download links: an https URL whose path
// ends in a three-digit surah number followed by ".mp3". The exact host and
// path vary as the CDN layout changes, which is why the page is scraped
// instead of hard-coding endpoints.
var linkPattern = regexp.MustCompile(`https://[^"']+?/([0-9]{3})\.mp3`)

// Index maps a surah number to its discovered download URL.
//
// An Index is built once per run from live page content and is not
// persisted.
type Index map[int]string

// Discoverer extracts surah download URLs from a reciter listing page.
//
// Example usage:
//
//	disco := NewDiscoverer("https://quranicaudio.com/quran/5", 114)
//
//	html, _ := client.GetString(ctx, disco.Page())
//	index, err := disco.Discover(html)
//	if errors.Is(err, quranicaudio.ErrTooFewLinks) {
//	    // page layout changed, bail out before downloading anything
//	}
type Discoverer struct {
	page     string
	expected int
}

// NewDiscoverer creates a Discoverer for the given reciter page.
//
// expected is the minimum number of distinct surah links a healthy page must
// contain, normally 114.
func NewDiscoverer(page string, expected int) *Discoverer {
	return &Discoverer{page: page, expected: expected}
}

// Page returns the reciter page URL this Discoverer scrapes.
func (d *Discoverer) Page() string {
	return d.page
}

// Discover scans the page HTML for surah download links and returns an
// Index keyed by surah number.
//
// Matches are processed in document order; when the page carries the same
// surah number more than once, the last occurrence wins. This mirrors the
// page's own ordering and is not assumed to be meaningful — see the package
// documentation.
//
// Returns a *DiscoveryError wrapping ErrTooFewLinks when fewer than the
// expected number of distinct surah numbers are found.
func (d *Discoverer) Discover(html string) (Index, error) {
	index := make(Index)
	for _, match := range linkPattern.FindAllStringSubmatch(html, -1) {
		num, err := strconv.Atoi(match[1])
		if err != nil {
			continue // unreachable given the pattern, but never fatal
		}
		index[num] = match[0]
	}

	if len(index) < d.expected {
		return nil, &DiscoveryError{
			Page:  d.page,
			Found: len(index),
			Err:   fmt.Errorf("%w: expected at least %d, found %d", ErrTooFewLinks, d.expected, len(index)),
		}
	}

	return index, nil
}
