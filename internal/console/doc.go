// Package console renders the command line output: banner, root folder
// statistics, progress events, run summary and the errored tracks tree.
package console
