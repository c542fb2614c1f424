package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
	"github.com/handiism/quran-downloader/internal/model"
)

// TagConfig describes the recitation metadata written into every surah file.
//
// The same reciter and album apply to all 114 files; only the title and
// track number vary per surah.
type TagConfig struct {
	// Reciter is written to the artist and album artist frames.
	Reciter string

	// Album is the album title, e.g. "The Holy Quran".
	Album string

	// TotalTracks is written as the denominator of the track frame
	// ("36/114"). Zero omits the denominator.
	TotalTracks int
}

// Tagger writes ID3 tags to downloaded surah MP3 files.
//
// Tagger uses the id3v2 library to set:
//   - Title (TIT2): "NNN. Name"
//   - Artist and Album Artist (TPE1, TPE2): the reciter
//   - Album (TALB) and Genre (TCON)
//   - Track Number (TRCK): "N" or "N/114"
//   - Arabic surah name as a comment frame (COMM)
//   - Cover Art (APIC), when artwork bytes are provided
//
// Example:
//
//	tagger := audio.NewTagger(&audio.TagConfig{
//	    Reciter:     "Mishary Rashid Alafasy",
//	    Album:       "The Holy Quran",
//	    TotalTracks: 114,
//	})
//	err := tagger.SaveTags(surah, artworkBytes)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = &TagConfig{}
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to the surah's MP3 file at surah.Path.
//
// Existing tags are parsed and updated in place, so a re-run over already
// tagged files is harmless. Pass nil artwork to leave picture frames alone.
func (t *Tagger) SaveTags(surah *model.Surah, artwork []byte) error {
	tag, err := id3v2.Open(surah.Path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tags for %s: %w", surah.Path, err)
	}
	defer tag.Close()

	tag.SetTitle(surah.DisplayTitle())
	tag.SetArtist(t.config.Reciter)
	tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, t.config.Reciter)
	tag.SetAlbum(t.config.Album)
	tag.SetGenre("Quran")

	trck := fmt.Sprintf("%d", surah.Number)
	if t.config.TotalTracks > 0 {
		trck = fmt.Sprintf("%d/%d", surah.Number, t.config.TotalTracks)
	}
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, trck)

	if surah.ArabicName != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    "ara",
			Description: "Arabic name",
			Text:        surah.ArabicName,
		})
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	// Remove any existing cover pictures first.
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
