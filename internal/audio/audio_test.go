package audio

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/handiism/mzk-ostrich-remover/internal/album"
	"github.com/handiism/mzk-ostrich-remover/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory TagStore.
type memStore struct {
	tags  map[string]string
	cover *Picture
	saves int
}

func newMemStore() *memStore {
	return &memStore{tags: map[string]string{}}
}

func (m *memStore) Get(name string) (string, bool) {
	v, ok := m.tags[strings.ToUpper(name)]
	return v, ok
}

func (m *memStore) Set(name, value string) { m.tags[strings.ToUpper(name)] = value }

func (m *memStore) Clear(names ...string) {
	for _, n := range names {
		delete(m.tags, strings.ToUpper(n))
	}
}

func (m *memStore) Cover() (*Picture, bool) { return m.cover, m.cover != nil }

func (m *memStore) ClearPictures() { m.cover = nil }

func (m *memStore) EmbedCover(pic *Picture) error {
	m.cover = pic
	return nil
}

func (m *memStore) Save() error {
	m.saves++
	return nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) snapshot() map[string]string {
	out := make(map[string]string, len(m.tags))
	for k, v := range m.tags {
		out[k] = v
	}
	return out
}

func pngPicture(t *testing.T, w, h int) *Picture {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return &Picture{
		Data:        buf.Bytes(),
		MIME:        "image/png",
		Width:       w,
		Height:      h,
		ColorDepth:  32,
		Description: "cover.png",
	}
}

func parsedTrack(t *testing.T, dir string, files ...string) *model.Track {
	t.Helper()
	res := album.Aggregate(dir, files)
	require.NotEmpty(t, res.Tracks)
	return res.Tracks[0]
}

func TestFields(t *testing.T) {
	track := parsedTrack(t, "/music/ArtistA/2020 - Album",
		"ArtistA - 2020 - Album - 101 - Name2, Name1 - Track One (feat. F).flac",
		"ArtistA - 2020 - Album - 202 - Name1 - Track Two.flac",
		"cover.jpg",
	)

	got := map[string]string{}
	for _, f := range Fields(track) {
		got[f.Name] = f.Value
	}

	assert.Equal(t, map[string]string{
		TagTitle:       "Track One (feat. F)",
		TagDate:        "2020",
		TagArtist:      "Name1; Name2",
		TagAlbumArtist: "ArtistA",
		TagPerformer:   "F; Name1; Name2",
		TagTrackNumber: "1",
		TagTrackTotal:  "2",
		TagAlbum:       "Album",
		TagDiscTotal:   "2",
		TagDiscNumber:  "1",
	}, got)
}

func TestFiller_Fill(t *testing.T) {
	track := parsedTrack(t, "/music/A/2020 - B", "A - 2020 - B - 101 - A - One.flac", "cover.png")
	store := newMemStore()
	cover := pngPicture(t, 4, 4)

	res, err := NewFiller(4).Fill(store, track, cover)
	require.NoError(t, err)

	assert.True(t, res.Saved)
	assert.True(t, res.CoverEmbedded)
	assert.Len(t, res.Changed, 10)
	assert.Equal(t, 1, store.saves)

	title, ok := store.Get(TagTitle)
	assert.True(t, ok)
	assert.Equal(t, "One", title)
}

func TestFiller_FillTwiceDoesNotSave(t *testing.T) {
	track := parsedTrack(t, "/music/A/2020 - B", "A - 2020 - B - 101 - A - One.flac", "cover.png")
	store := newMemStore()
	filler := NewFiller(1000)
	cover := pngPicture(t, 8, 8)

	_, err := filler.Fill(store, track, cover)
	require.NoError(t, err)
	before := store.snapshot()

	res, err := filler.Fill(store, track, cover)
	require.NoError(t, err)

	assert.Empty(t, res.Changed)
	assert.False(t, res.CoverEmbedded)
	assert.False(t, res.Saved)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, before, store.snapshot())
}

func TestFiller_KeepsEqualValues(t *testing.T) {
	track := parsedTrack(t, "/music/A/2020 - B", "A - 2020 - B - 101 - A - One.flac", "cover.png")
	store := newMemStore()
	store.Set(TagTitle, "One")
	store.Set(TagAlbum, "Wrong")

	res, err := NewFiller(1000).Fill(store, track, nil)
	require.NoError(t, err)

	assert.NotContains(t, res.Changed, TagTitle)
	assert.Contains(t, res.Changed, TagAlbum)
	album, _ := store.Get(TagAlbum)
	assert.Equal(t, "B", album)
}

func TestFiller_SkipsUnknownYear(t *testing.T) {
	res := album.Aggregate("/music/A/2020 - B", []string{
		"A - 2020 - B - 101 - A - One.flac",
		"A - 2019 - B - 102 - A - Two.flac",
		"cover.png",
	})
	require.Equal(t, model.YearUnknown, res.Album.Year)

	store := newMemStore()
	_, err := NewFiller(1000).Fill(store, res.Tracks[0], nil)
	require.NoError(t, err)

	_, ok := store.Get(TagDate)
	assert.False(t, ok)
}

func TestCleanThenFillMatchesFill(t *testing.T) {
	track := parsedTrack(t, "/music/A/2020 - B", "A - 2020 - B - 101 - X, Y - One (Z Remix).mp3", "cover.png")
	cover := pngPicture(t, 8, 8)
	filler := NewFiller(8)

	fresh := newMemStore()
	_, err := filler.Fill(fresh, track, cover)
	require.NoError(t, err)

	dirty := newMemStore()
	dirty.Set(TagTitle, "Old")
	dirty.Set(TagArtist, "Somebody")
	dirty.Set("TOTALTRACKS", "99")
	dirty.cover = pngPicture(t, 2, 2)

	require.NoError(t, NewCleaner().Clean(dirty))
	assert.Empty(t, dirty.tags)
	assert.Nil(t, dirty.cover)

	_, err = filler.Fill(dirty, track, cover)
	require.NoError(t, err)

	assert.Equal(t, fresh.snapshot(), dirty.snapshot())
	assert.Equal(t, fresh.cover, dirty.cover)
}

func TestFiller_CoverGate(t *testing.T) {
	folder := pngPicture(t, 10, 10)

	tests := []struct {
		name     string
		existing *Picture
		want     bool
	}{
		{"no cover", nil, true},
		{"right size", pngPicture(t, 6, 6), false},
		{"wrong size", pngPicture(t, 5, 6), true},
		{"same bytes as folder image", folder, false},
	}

	track := parsedTrack(t, "/music/A/2020 - B", "A - 2020 - B - 101 - A - One.flac", "cover.png")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			store.cover = tt.existing

			res, err := NewFiller(6).Fill(store, track, folder)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.CoverEmbedded)
		})
	}
}

func TestOpen_Unsupported(t *testing.T) {
	_, err := Open("/music/A/2020 - B/notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
