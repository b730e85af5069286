// Package model defines the core data structures used throughout
// mzk-ostrich-remover.
//
// # Album
//
// Album represents one album folder (<Artist>/<Year> - <Album>/):
//
//	album := model.NewAlbum("/music/Artist/2020 - Album")
//	fmt.Println(album.Artist)     // "Artist"
//	fmt.Println(album.FolderName) // "2020 - Album"
//
// # Track
//
// Track represents one audio file of an album and the metadata derived from
// its file name:
//
//	track := model.NewTrack(album, "Artist - 2020 - Album - 101 - Artist - Title.flac")
//	fmt.Println(track.Path, track.Type)
//
// # Errors
//
// ParseError records a recoverable problem (naming convention violation,
// year inconsistency, missing cover, ...). Errors are collected per album
// and counted globally, they never abort a run.
package model
