package quranicaudio

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReciterInfo holds metadata scraped from a reciter listing page.
//
// The listing page carries the reciter's display name in its heading; this
// is used for ID3 artist tags when no name is configured.
type ReciterInfo struct {
	// Name is the reciter's display name, e.g. "Mishary Rashid Alafasy".
	// Empty when the page carried no recognizable heading.
	Name string
}

// ParseReciterInfo extracts reciter metadata from the listing page HTML.
//
// The name is taken from the first non-empty h1 or h2 element, falling back
// to the document title with any " | site" suffix stripped. Parsing is
// best-effort: a page without headings yields an empty Name, never an error,
// since the metadata only feeds tags.
func ParseReciterInfo(html string) (*ReciterInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	info := &ReciterInfo{}

	doc.Find("h1, h2").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			info.Name = text
			return false
		}
		return true
	})

	if info.Name == "" {
		title := strings.TrimSpace(doc.Find("title").First().Text())
		if before, _, found := strings.Cut(title, "|"); found {
			title = strings.TrimSpace(before)
		}
		info.Name = title
	}

	return info, nil
}
