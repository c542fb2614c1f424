package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/handiism/quran-downloader/internal/model"
)

func TestTagger_SaveTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "001.mp3")
	if err := os.WriteFile(path, []byte("fake mpeg frames"), 0644); err != nil {
		t.Fatal(err)
	}

	surah := &model.Surah{
		Number:     1,
		Name:       "Al-Fatihah",
		ArabicName: "الفاتحة",
		AudioFile:  "001.mp3",
		Path:       path,
	}

	tagger := NewTagger(&TagConfig{
		Reciter:     "Mishary Rashid Alafasy",
		Album:       "The Holy Quran",
		TotalTracks: 114,
	})

	if err := tagger.SaveTags(surah, nil); err != nil {
		t.Fatalf("SaveTags failed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopening tagged file failed: %v", err)
	}
	defer tag.Close()

	if got := tag.Title(); got != "001. Al-Fatihah" {
		t.Errorf("Title = %q, want %q", got, "001. Al-Fatihah")
	}
	if got := tag.Artist(); got != "Mishary Rashid Alafasy" {
		t.Errorf("Artist = %q", got)
	}
	if got := tag.Album(); got != "The Holy Quran" {
		t.Errorf("Album = %q", got)
	}
	if got := tag.Genre(); got != "Quran" {
		t.Errorf("Genre = %q", got)
	}
	if got := tag.GetTextFrame("TRCK").Text; got != "1/114" {
		t.Errorf("TRCK = %q, want %q", got, "1/114")
	}
	if got := tag.GetTextFrame("TPE2").Text; got != "Mishary Rashid Alafasy" {
		t.Errorf("TPE2 = %q", got)
	}
}

func TestTagger_EmbedsArtwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "002.mp3")
	if err := os.WriteFile(path, []byte("fake mpeg frames"), 0644); err != nil {
		t.Fatal(err)
	}

	surah := &model.Surah{Number: 2, Name: "Al-Baqarah", AudioFile: "002.mp3", Path: path}
	artwork := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10} // JPEG-ish header is enough for the frame

	tagger := NewTagger(&TagConfig{Reciter: "Reciter", Album: "Album"})
	if err := tagger.SaveTags(surah, artwork); err != nil {
		t.Fatalf("SaveTags failed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopening tagged file failed: %v", err)
	}
	defer tag.Close()

	frames := tag.GetFrames(tag.CommonID("Attached picture"))
	if len(frames) != 1 {
		t.Fatalf("got %d picture frames, want 1", len(frames))
	}
	pic, ok := frames[0].(id3v2.PictureFrame)
	if !ok {
		t.Fatalf("frame is %T, want PictureFrame", frames[0])
	}
	if pic.MimeType != "image/jpeg" {
		t.Errorf("MimeType = %q", pic.MimeType)
	}
	if len(pic.Picture) != len(artwork) {
		t.Errorf("picture size = %d, want %d", len(pic.Picture), len(artwork))
	}
}

func TestTagger_RerunIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "003.mp3")
	if err := os.WriteFile(path, []byte("fake mpeg frames"), 0644); err != nil {
		t.Fatal(err)
	}

	surah := &model.Surah{Number: 3, Name: "Aal Imran", AudioFile: "003.mp3", Path: path}
	tagger := NewTagger(&TagConfig{Reciter: "Reciter", Album: "Album", TotalTracks: 114})

	if err := tagger.SaveTags(surah, nil); err != nil {
		t.Fatalf("first SaveTags failed: %v", err)
	}
	if err := tagger.SaveTags(surah, nil); err != nil {
		t.Fatalf("second SaveTags failed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tag.Close()

	if got := tag.Title(); got != "003. Aal Imran" {
		t.Errorf("Title after re-tag = %q", got)
	}
}
