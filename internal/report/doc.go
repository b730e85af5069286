// Package report builds the JSON dump written after a scan.
//
//	rep := report.New(version, root, info)
//	rep.AddAlbum(res, errs)
//	rep.Finish(errors, tracks, purity)
//	path, err := rep.Save(ctx, "./output")
package report
