package audio

import (
	"fmt"
	"strings"

	ioutils "github.com/handiism/mzk-ostrich-remover/internal/io"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

const defaultVendor = "mzk-ostrich-remover"

// flacStore edits the Vorbis comment and PICTURE blocks of a FLAC file.
type flacStore struct {
	path     string
	file     *flac.File
	comments *flacvorbis.MetaDataBlockVorbisComment
}

func openFLAC(path string) (*flacStore, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse flac file: %w", err)
	}

	s := &flacStore{path: path, file: f}
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return nil, fmt.Errorf("failed to parse vorbis comment: %w", err)
		}
		s.comments = cmt
		break
	}
	if s.comments == nil {
		s.comments = flacvorbis.New()
		s.comments.Vendor = defaultVendor
	}
	return s, nil
}

// splitComment splits a "NAME=value" comment.
func splitComment(comment string) (string, string, bool) {
	name, value, ok := strings.Cut(comment, "=")
	return name, value, ok
}

func (s *flacStore) Get(name string) (string, bool) {
	for _, c := range s.comments.Comments {
		if k, v, ok := splitComment(c); ok && strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

func (s *flacStore) Set(name, value string) {
	s.Clear(name)
	s.comments.Comments = append(s.comments.Comments, strings.ToUpper(name)+"="+value)
}

func (s *flacStore) Clear(names ...string) {
	kept := s.comments.Comments[:0]
	for _, c := range s.comments.Comments {
		k, _, _ := splitComment(c)
		if !containsFold(names, k) {
			kept = append(kept, c)
		}
	}
	s.comments.Comments = kept
}

func (s *flacStore) Cover() (*Picture, bool) {
	for _, block := range s.file.Meta {
		if block.Type != flac.Picture {
			continue
		}
		pic, err := flacpicture.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}
		p := &Picture{
			Data:        pic.ImageData,
			MIME:        pic.MIME,
			Width:       int(pic.Width),
			Height:      int(pic.Height),
			ColorDepth:  int(pic.ColorDepth),
			Description: pic.Description,
		}
		// Some taggers leave the dimensions at zero.
		if p.Width == 0 || p.Height == 0 {
			if w, h, _, err := ioutils.Dimensions(p.Data); err == nil {
				p.Width, p.Height = w, h
			}
		}
		return p, true
	}
	return nil, false
}

func (s *flacStore) ClearPictures() {
	kept := s.file.Meta[:0]
	for _, block := range s.file.Meta {
		if block.Type != flac.Picture {
			kept = append(kept, block)
		}
	}
	s.file.Meta = kept
}

func (s *flacStore) EmbedCover(pic *Picture) error {
	if pic == nil || len(pic.Data) == 0 {
		return fmt.Errorf("empty cover picture")
	}
	s.ClearPictures()

	block := &flacpicture.MetadataBlockPicture{
		PictureType: flacpicture.PictureTypeFrontCover,
		MIME:        pic.MIME,
		Description: pic.Description,
		Width:       uint32(pic.Width),
		Height:      uint32(pic.Height),
		ColorDepth:  uint32(pic.ColorDepth),
		ImageData:   pic.Data,
	}
	marshaled := block.Marshal()
	s.file.Meta = append(s.file.Meta, &marshaled)
	return nil
}

func (s *flacStore) Save() error {
	block := s.comments.Marshal()

	replaced := false
	for i, meta := range s.file.Meta {
		if meta.Type == flac.VorbisComment {
			s.file.Meta[i] = &block
			replaced = true
			break
		}
	}
	if !replaced {
		s.file.Meta = append(s.file.Meta, &block)
	}

	if err := s.file.Save(s.path); err != nil {
		return fmt.Errorf("failed to save flac file: %w", err)
	}
	return nil
}

// Close is a no-op: the parsed file is held in memory.
func (s *flacStore) Close() error {
	return nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
