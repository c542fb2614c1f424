// Package audio provides audio file manipulation services: ID3 tag
// writing for downloaded surah MP3s and playlist generation.
//
// # ID3 Tagging
//
//	tagger := audio.NewTagger(&audio.TagConfig{
//	    Reciter:     "Mishary Rashid Alafasy",
//	    Album:       "The Holy Quran",
//	    TotalTracks: 114,
//	})
//	err := tagger.SaveTags(surah, artworkBytes)
//
// The tagger sets title, artist, album, genre, track number, the Arabic
// surah name as a comment, and optionally embeds cover art.
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true, reciterName)
//	content := creator.CreatePlaylist(surahs)
//	os.WriteFile("quran.m3u", []byte(content), 0644)
//
// M3U (plain and extended) and PLS are supported.
package audio
