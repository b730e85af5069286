// Package naming parses the library naming convention.
//
// Track files and album folders encode their metadata as fields separated by
// " - ":
//
//	<Artist>/<Year> - <Album>/<Release Artists> - <Year> - <Album> - <Disc><Track> - <Artists> - <Title>.<ext>
//
// # Splitting
//
//	fields, err := naming.SplitFileName(fileName)   // 6 fields
//	folder, err := naming.SplitFolderName(dirName)  // 2 fields
//	code, err := naming.ParseTrackCode(fields[naming.FieldCode])
//
// Album titles ending with " - Single", " - Intro", " - Interlude",
// " - ÉPILOGUE" or " - 25" are recognized and kept whole. Any other extra
// separator is reported as ErrNamingConvention.
//
// # Credits
//
// Derive computes artists, performers, featured artists and remixers:
//
//	credits := naming.Derive(fields, fileName)
//
// "(feat. A, B)" adds A and B to the performers. "(A, B Remix)" makes A and
// B the track artists, replacing the artists field.
package naming
