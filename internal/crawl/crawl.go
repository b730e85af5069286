package crawl

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/handiism/mzk-ostrich-remover/internal/album"
	ioutils "github.com/handiism/mzk-ostrich-remover/internal/io"
	"github.com/handiism/mzk-ostrich-remover/internal/model"
)

// AlbumDir is one album folder found under the root.
type AlbumDir struct {
	// Path is the full path of the album folder.
	Path string

	// Artist is the name of the parent artist folder.
	Artist string

	// Name is the album folder name.
	Name string

	// Files holds the names of the regular files of the folder, hidden
	// files excluded, sorted.
	Files []string
}

// Failure is a folder or file below the root that could not be read. It is
// skipped, the rest of the library is still listed.
type Failure struct {
	Path string
	Err  error
}

// Albums lists the album folders of a library laid out as
// root/Artist/Album. Artists, albums and files are returned sorted by name.
// Hidden entries are skipped at every level, and so are regular files
// directly under root or an artist folder.
//
// Only a root that cannot be listed is an error. An artist or album folder
// that cannot be listed is skipped and returned as a Failure.
func Albums(root string) ([]AlbumDir, []Failure, error) {
	return AlbumsFS(os.DirFS(root), root)
}

// AlbumsFS is Albums over fsys, whose "." is the library root. root is only
// used to build the returned paths.
func AlbumsFS(fsys fs.FS, root string) ([]AlbumDir, []Failure, error) {
	artists, err := subdirs(fsys, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	var (
		albums   []AlbumDir
		failures []Failure
	)
	for _, artist := range artists {
		artistPath := filepath.Join(root, artist)
		names, err := subdirs(fsys, artist)
		if err != nil {
			failures = append(failures, Failure{Path: artistPath, Err: err})
			continue
		}
		for _, name := range names {
			dir := AlbumDir{
				Path:   filepath.Join(artistPath, name),
				Artist: artist,
				Name:   name,
			}
			if dir.Files, err = files(fsys, path.Join(artist, name)); err != nil {
				failures = append(failures, Failure{Path: dir.Path, Err: err})
				continue
			}
			albums = append(albums, dir)
		}
	}
	return albums, failures, nil
}

func subdirs(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && !ioutils.IsHidden(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func files(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && !ioutils.IsHidden(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// FolderInfo holds statistics about a library root.
type FolderInfo struct {
	Artists int   `json:"artists"`
	Albums  int   `json:"albums"`
	Files   int   `json:"files"`
	FLAC    int   `json:"flac"`
	MP3     int   `json:"mp3"`
	Covers  int   `json:"covers"`
	Bytes   int64 `json:"bytes"`
}

// Stat walks root and counts its artist folders, album folders, files,
// FLAC and MP3 tracks and cover images. Hidden entries are skipped.
//
// As with Albums, only an unreadable root is an error. Entries that cannot
// be read are left out of the counts and returned as Failures.
func Stat(root string) (*FolderInfo, []Failure, error) {
	return StatFS(os.DirFS(root), root)
}

// StatFS is Stat over fsys, whose "." is the library root.
func StatFS(fsys fs.FS, root string) (*FolderInfo, []Failure, error) {
	info := &FolderInfo{}
	var failures []Failure

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if p == "." {
			return err
		}
		if err != nil {
			failures = append(failures, Failure{Path: filepath.Join(root, filepath.FromSlash(p)), Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ioutils.IsHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		depth := strings.Count(p, "/") + 1
		if d.IsDir() {
			switch depth {
			case 1:
				info.Artists++
			case 2:
				info.Albums++
			}
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			failures = append(failures, Failure{Path: filepath.Join(root, filepath.FromSlash(p)), Err: err})
			return nil
		}
		info.Files++
		info.Bytes += fi.Size()

		switch model.FileTypeOf(d.Name()) {
		case model.FileTypeFLAC:
			info.FLAC++
		case model.FileTypeMP3:
			info.MP3++
		}
		if album.KindOf(d.Name()) == album.KindImage {
			info.Covers++
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	return info, failures, nil
}
