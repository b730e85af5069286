// Package album folds the files of one album folder into album level facts.
//
// Aggregate parses every track file name of the folder, derives the track
// credits and accumulates:
//   - TotalTrack, the number of conformant tracks
//   - TotalDisc, the highest disc number
//   - Year, checked once for consistency across tracks
//   - the cover image file
//
// Problems never abort the aggregation, they are collected as
// model.ParseError values in the Result.
package album
