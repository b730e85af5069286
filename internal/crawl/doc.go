// Package crawl walks a music library laid out as Artist/Year - Album/Track.
//
//	albums, failures, err := crawl.Albums("/music/")
//	for _, dir := range albums {
//	    res := album.Aggregate(dir.Path, dir.Files)
//	}
//
// Folders below the root that cannot be listed are skipped and reported as
// failures; only an unreadable root fails the call. AlbumsFS and StatFS take
// an fs.FS for the same walk over any file system.
//
// Stat gathers root folder statistics for reports.
package crawl
