package quranicaudio

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// listingPage builds a reciter page with one download link per surah number.
func listingPage(numbers ...int) string {
	var sb strings.Builder
	sb.WriteString("<html><body><h2>Mishary Rashid Alafasy</h2><ul>")
	for _, n := range numbers {
		fmt.Fprintf(&sb, `<li><a href="https://download.quranicaudio.com/quran/mishaari/%03d.mp3">Surah %d</a></li>`, n, n)
	}
	sb.WriteString("</ul></body></html>")
	return sb.String()
}

func allSurahNumbers() []int {
	nums := make([]int, 114)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

func TestDiscoverer_Discover(t *testing.T) {
	d := NewDiscoverer("https://quranicaudio.com/quran/5", 114)

	index, err := d.Discover(listingPage(allSurahNumbers()...))
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if len(index) != 114 {
		t.Fatalf("got %d entries, want 114", len(index))
	}
	want := "https://download.quranicaudio.com/quran/mishaari/036.mp3"
	if index[36] != want {
		t.Errorf("index[36] = %q, want %q", index[36], want)
	}
}

func TestDiscoverer_TooFewLinks(t *testing.T) {
	d := NewDiscoverer("https://quranicaudio.com/quran/5", 114)

	_, err := d.Discover(listingPage(1, 2, 3))
	if err == nil {
		t.Fatal("expected error for short page")
	}
	if !errors.Is(err, ErrTooFewLinks) {
		t.Errorf("error should wrap ErrTooFewLinks, got %v", err)
	}

	var derr *DiscoveryError
	if !errors.As(err, &derr) {
		t.Fatalf("error should be *DiscoveryError, got %T", err)
	}
	if derr.Found != 3 {
		t.Errorf("Found = %d, want 3", derr.Found)
	}
}

func TestDiscoverer_LastOccurrenceWins(t *testing.T) {
	nums := allSurahNumbers()
	page := listingPage(nums...) +
		`<a href="https://mirror.example.com/alt/001.mp3">alt</a>`

	d := NewDiscoverer("page", 114)
	index, err := d.Discover(page)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if index[1] != "https://mirror.example.com/alt/001.mp3" {
		t.Errorf("index[1] = %q, want the later mirror link", index[1])
	}
}

func TestDiscoverer_IgnoresNonMatchingLinks(t *testing.T) {
	page := listingPage(allSurahNumbers()...) + strings.Join([]string{
		`<a href="https://example.com/cover.jpg">art</a>`,
		`<a href="https://example.com/12.mp3">two digits</a>`,
		`<a href="http://insecure.example.com/099.mp3">plain http</a>`,
	}, "\n")

	d := NewDiscoverer("page", 114)
	index, err := d.Discover(page)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(index) != 114 {
		t.Errorf("got %d entries, want exactly 114", len(index))
	}
	if strings.HasPrefix(index[99], "http://insecure") {
		t.Error("plain http link should not have been matched")
	}
}

func TestDiscoverer_LinksInsideScript(t *testing.T) {
	// Real pages embed the links in a JSON blob, not anchor tags.
	var sb strings.Builder
	sb.WriteString(`<html><script>window.__data = {"files":[`)
	for i := 1; i <= 114; i++ {
		if i > 1 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `"https://cdn.example.com/mishaari/%03d.mp3"`, i)
	}
	sb.WriteString(`]};</script></html>`)

	d := NewDiscoverer("page", 114)
	index, err := d.Discover(sb.String())
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(index) != 114 {
		t.Errorf("got %d entries, want 114", len(index))
	}
}

func TestParseReciterInfo(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "heading",
			html: `<html><body><h2> Mishary Rashid Alafasy </h2></body></html>`,
			want: "Mishary Rashid Alafasy",
		},
		{
			name: "title fallback",
			html: `<html><head><title>Mishary Rashid Alafasy | QuranicAudio</title></head><body></body></html>`,
			want: "Mishary Rashid Alafasy",
		},
		{
			name: "no metadata",
			html: `<html><body><p>nothing here</p></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseReciterInfo(tt.html)
			if err != nil {
				t.Fatalf("ParseReciterInfo failed: %v", err)
			}
			if info.Name != tt.want {
				t.Errorf("Name = %q, want %q", info.Name, tt.want)
			}
		})
	}
}
