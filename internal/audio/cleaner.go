package audio

// CleanedTags are the tags removed by Clean. The TOTAL* names are legacy
// aliases written by other taggers.
var CleanedTags = []string{
	TagTitle,
	TagDate,
	TagAlbum,
	TagArtist,
	TagAlbumArtist,
	TagPerformer,
	TagTrackNumber,
	TagDiscNumber,
	TagTrackTotal,
	"TOTALTRACK",
	"TOTALTRACKS",
	TagDiscTotal,
	"TOTALDISC",
	"TOTALDISCS",
}

// Cleaner resets audio files to a blank state before they are filled again.
type Cleaner struct{}

// NewCleaner creates a Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes CleanedTags and every embedded picture from store, then
// saves it. It always writes the file.
func (c *Cleaner) Clean(store TagStore) error {
	store.Clear(CleanedTags...)
	store.ClearPictures()
	return store.Save()
}
