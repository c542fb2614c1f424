// Package quranicaudio discovers surah download URLs by scraping a
// QuranicAudio reciter listing page.
//
// The page embeds one download link per surah, an https URL whose path ends
// in a three-digit surah number followed by ".mp3". The exact host and path
// change as the CDN layout evolves, so the page is scraped on every run
// instead of relying on hard-coded endpoints.
//
// # URL Discovery
//
//	disco := quranicaudio.NewDiscoverer(pageURL, 114)
//	index, err := disco.Discover(pageHTML)
//	if errors.Is(err, quranicaudio.ErrTooFewLinks) {
//	    // fewer than 114 distinct surah links: fail before downloading
//	}
//	url := index[36] // download URL for surah 36
//
// Matches are processed in document order and the last occurrence of a surah
// number wins. Duplicate links for one surah have been observed on real
// pages; which duplicate is "correct" is unknown, so the scan simply keeps
// the final one rather than guessing.
//
// # Reciter Metadata
//
// ParseReciterInfo pulls the reciter's display name out of the page heading
// for use in ID3 tags:
//
//	info, _ := quranicaudio.ParseReciterInfo(pageHTML)
//	fmt.Println(info.Name) // "Mishary Rashid Alafasy"
package quranicaudio
