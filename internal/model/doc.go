// Package model defines the core data structures used throughout
// the quran-downloader application.
//
// # Surah
//
// Surah represents a single chapter with its manifest metadata and computed
// destination path:
//
//	surah := &model.Surah{Number: 1, Name: "Al-Fatihah", AudioFile: "001.mp3"}
//	surah.Path = surah.DestinationPath("/audio")
//
// # DownloadTarget
//
// DownloadTarget pairs a missing surah with the URL discovered for it on the
// reciter page:
//
//	target := &model.DownloadTarget{Surah: surah, URL: url}
package model
