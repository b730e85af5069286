// Package audio reads and writes the tags of FLAC and MP3 files.
//
// # Tag stores
//
// Open returns a TagStore for a file, chosen from its extension:
//
//	store, err := audio.Open("/music/A/2020 - B/A - 2020 - B - 101 - A - One.flac")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
// FLAC files are edited through their Vorbis comment and PICTURE blocks.
// MP3 files are edited through ID3v2.4 frames, Vorbis names being mapped to
// the matching frames (TITLE to TIT2, TRACKNUMBER and TRACKTOTAL to TRCK,
// and so on) and unknown names to TXXX frames.
//
// # Fill and clean
//
//	filler := audio.NewFiller(1000)
//	res, err := filler.Fill(store, track, cover)
//
//	err = audio.NewCleaner().Clean(store)
//
// Fill only writes what differs and only saves when something changed.
// Clean always removes the managed tags and every picture.
//
// # Inspection
//
// Inspector reads existing tags with a format agnostic reader and reports
// the ones that disagree with the file name:
//
//	errs := audio.NewInspector(1000).Inspect(track)
package audio
