// Package ioutils provides small filesystem and image helpers for the
// quran-downloader.
//
// It contains directory creation and file writing wrappers used by the
// download manager, and PrepareCoverArt, which scales reciter cover art and
// re-encodes it as JPEG before it is embedded in ID3 tags.
package ioutils
