package audio

import (
	"fmt"
	"strings"

	ioutils "github.com/handiism/mzk-ostrich-remover/internal/io"

	"github.com/bogem/id3v2"
)

// textFrames maps tag names to their ID3v2.4 text frame.
var textFrames = map[string]string{
	TagTitle:       "TIT2",
	TagDate:        "TDRC",
	TagArtist:      "TPE1",
	TagAlbumArtist: "TPE2",
	TagPerformer:   "TOPE",
	TagAlbum:       "TALB",
	TagComposer:    "TCOM",
	TagLabel:       "TPUB",
	TagBPM:         "TBPM",
	TagLanguage:    "TLAN",
}

// pairFrame describes a tag stored as one half of an "n/t" frame.
type pairFrame struct {
	id    string
	total bool
}

var pairFrames = map[string]pairFrame{
	TagTrackNumber: {id: "TRCK"},
	TagTrackTotal:  {id: "TRCK", total: true},
	TagDiscNumber:  {id: "TPOS"},
	TagDiscTotal:   {id: "TPOS", total: true},
}

const (
	userTextFrame = "TXXX"
	pictureFrame  = "APIC"

	// legacyYearFrame is the ID3v2.3 year frame, replaced by TDRC in v2.4.
	legacyYearFrame = "TYER"
)

// mp3Store edits the ID3v2 tag of an MP3 file. Tags without a dedicated
// frame are kept in TXXX frames described by the tag name.
type mp3Store struct {
	tag *id3v2.Tag
}

func openMP3(path string) (*mp3Store, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open id3 tag: %w", err)
	}
	tag.SetVersion(4)
	s := &mp3Store{tag: tag}
	s.upgradeYear()
	return s, nil
}

// upgradeYear moves a v2.3 year into TDRC so the tag only carries v2.4
// frames once saved. An existing TDRC wins.
func (s *mp3Store) upgradeYear() {
	year := s.tag.GetTextFrame(legacyYearFrame).Text
	if year == "" {
		return
	}
	s.tag.DeleteFrames(legacyYearFrame)
	if s.tag.GetTextFrame(textFrames[TagDate]).Text == "" {
		s.tag.AddTextFrame(textFrames[TagDate], id3v2.EncodingUTF8, year)
	}
}

func (s *mp3Store) Get(name string) (string, bool) {
	name = strings.ToUpper(name)
	if id, ok := textFrames[name]; ok {
		text := s.tag.GetTextFrame(id).Text
		return text, text != ""
	}
	if pf, ok := pairFrames[name]; ok {
		number, total := s.pair(pf.id)
		if pf.total {
			return total, total != ""
		}
		return number, number != ""
	}
	for _, f := range s.userFrames() {
		if strings.EqualFold(f.Description, name) {
			return f.Value, true
		}
	}
	return "", false
}

func (s *mp3Store) Set(name, value string) {
	name = strings.ToUpper(name)
	if id, ok := textFrames[name]; ok {
		s.tag.DeleteFrames(id)
		s.tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
		return
	}
	if pf, ok := pairFrames[name]; ok {
		number, total := s.pair(pf.id)
		if pf.total {
			total = value
		} else {
			number = value
		}
		s.setPair(pf.id, number, total)
		return
	}
	s.Clear(name)
	s.tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: name,
		Value:       value,
	})
}

func (s *mp3Store) Clear(names ...string) {
	var users []string
	for _, name := range names {
		name = strings.ToUpper(name)
		if id, ok := textFrames[name]; ok {
			s.tag.DeleteFrames(id)
			continue
		}
		if pf, ok := pairFrames[name]; ok {
			number, total := s.pair(pf.id)
			if pf.total {
				total = ""
			} else {
				number = ""
			}
			s.setPair(pf.id, number, total)
			continue
		}
		users = append(users, name)
	}
	if len(users) == 0 {
		return
	}

	frames := s.userFrames()
	s.tag.DeleteFrames(userTextFrame)
	for _, f := range frames {
		if !containsFold(users, f.Description) {
			s.tag.AddUserDefinedTextFrame(f)
		}
	}
}

// pair returns both halves of an "n/t" frame.
func (s *mp3Store) pair(id string) (string, string) {
	text := strings.TrimSpace(s.tag.GetTextFrame(id).Text)
	number, total, _ := strings.Cut(text, "/")
	return number, total
}

func (s *mp3Store) setPair(id, number, total string) {
	s.tag.DeleteFrames(id)
	switch {
	case number == "" && total == "":
		return
	case total == "":
		s.tag.AddTextFrame(id, id3v2.EncodingUTF8, number)
	default:
		s.tag.AddTextFrame(id, id3v2.EncodingUTF8, number+"/"+total)
	}
}

func (s *mp3Store) userFrames() []id3v2.UserDefinedTextFrame {
	var out []id3v2.UserDefinedTextFrame
	for _, f := range s.tag.GetFrames(userTextFrame) {
		if udtf, ok := f.(id3v2.UserDefinedTextFrame); ok {
			out = append(out, udtf)
		}
	}
	return out
}

func (s *mp3Store) Cover() (*Picture, bool) {
	for _, f := range s.tag.GetFrames(pictureFrame) {
		pf, ok := f.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		p := &Picture{
			Data:        pf.Picture,
			MIME:        pf.MimeType,
			Description: pf.Description,
		}
		if w, h, depth, err := ioutils.Dimensions(pf.Picture); err == nil {
			p.Width, p.Height, p.ColorDepth = w, h, depth
		}
		return p, true
	}
	return nil, false
}

func (s *mp3Store) ClearPictures() {
	s.tag.DeleteFrames(pictureFrame)
}

func (s *mp3Store) EmbedCover(pic *Picture) error {
	if pic == nil || len(pic.Data) == 0 {
		return fmt.Errorf("empty cover picture")
	}
	s.ClearPictures()
	s.tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    pic.MIME,
		PictureType: id3v2.PTFrontCover,
		Description: pic.Description,
		Picture:     pic.Data,
	})
	return nil
}

func (s *mp3Store) Save() error {
	if err := s.tag.Save(); err != nil {
		return fmt.Errorf("failed to save id3 tag: %w", err)
	}
	return nil
}

func (s *mp3Store) Close() error {
	return s.tag.Close()
}
