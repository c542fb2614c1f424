package audio

import (
	"strings"
	"testing"

	"github.com/handiism/quran-downloader/internal/model"
)

func testSurahs() []*model.Surah {
	return []*model.Surah{
		{Number: 1, Name: "Al-Fatihah", AudioFile: "001.mp3", Path: "/audio/001.mp3"},
		{Number: 2, Name: "Al-Baqarah", AudioFile: "002.mp3", Path: "/audio/002.mp3"},
	}
}

func TestCreatePlaylist_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true, "Mishary Rashid Alafasy")
	content := creator.CreatePlaylist(testSurahs())

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Error("extended M3U must start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Mishary Rashid Alafasy - 001. Al-Fatihah\n001.mp3\n") {
		t.Errorf("missing extended entry for surah 1:\n%s", content)
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) != 5 { // header + 2x(EXTINF + file)
		t.Errorf("got %d lines, want 5:\n%s", len(lines), content)
	}
}

func TestCreatePlaylist_M3UPlain(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false, "")
	content := creator.CreatePlaylist(testSurahs())

	want := "001.mp3\n002.mp3\n"
	if content != want {
		t.Errorf("plain M3U = %q, want %q", content, want)
	}
}

func TestCreatePlaylist_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false, "")
	content := creator.CreatePlaylist(testSurahs())

	for _, want := range []string{
		"[playlist]\n",
		"File1=001.mp3\n",
		"Title1=001. Al-Fatihah\n",
		"Length1=-1\n",
		"File2=002.mp3\n",
		"NumberOfEntries=2\n",
		"Version=2\n",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("PLS output missing %q:\n%s", want, content)
		}
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		input string
		want  PlaylistFormat
	}{
		{"m3u", FormatM3U},
		{"pls", FormatPLS},
		{"PLS", FormatPLS},
		{"", FormatM3U},
		{"unknown", FormatM3U},
	}

	for _, tt := range tests {
		if got := ParsePlaylistFormat(tt.input); got != tt.want {
			t.Errorf("ParsePlaylistFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	if got := FormatM3U.Extension(); got != ".m3u" {
		t.Errorf("M3U extension = %q", got)
	}
	if got := FormatPLS.Extension(); got != ".pls" {
		t.Errorf("PLS extension = %q", got)
	}
}
