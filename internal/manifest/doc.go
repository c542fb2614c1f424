// Package manifest loads the SurahList JSON document that names the
// expected output files.
//
// The manifest is an ordered JSON array; each element describes one surah:
//
//	[
//	  {"number": 1, "name": "Al-Fatihah", "arabicName": "الفاتحة", "audioFile": "001.mp3"},
//	  {"number": 2, "name": "Al-Baqarah", "arabicName": "البقرة", "audioFile": "002.mp3"}
//	]
//
// Load is a pure parse: it reads a file, validates required fields and
// returns []*model.Surah in manifest order. Failures are reported as
// *manifest.Error, which the CLI treats as fatal setup defects.
package manifest
