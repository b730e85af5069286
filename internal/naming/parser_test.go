package naming

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "conformant",
			input: "ArtistA - 2020 - Album - 101 - Name1, Name2 - Track One.flac",
			want:  []string{"ArtistA", "2020", "Album", "101", "Name1, Name2", "Track One.flac"},
		},
		{
			name:  "single suffix rejoined",
			input: "A - 2021 - Hit - Single - 101 - A - Hit.mp3",
			want:  []string{"A", "2021", "Hit - Single", "101", "A", "Hit.mp3"},
		},
		{
			name:  "interlude suffix rejoined",
			input: "A - 2021 - Album - Interlude - 103 - A - Song.flac",
			want:  []string{"A", "2021", "Album - Interlude", "103", "A", "Song.flac"},
		},
		{
			name:  "epilogue suffix rejoined",
			input: "A - 2021 - Album - ÉPILOGUE - 103 - A - Song.flac",
			want:  []string{"A", "2021", "Album - ÉPILOGUE", "103", "A", "Song.flac"},
		},
		{
			name:  "numeric placeholder rejoined",
			input: "A - 2015 - Album - 25 - 101 - A - Song.flac",
			want:  []string{"A", "2015", "Album - 25", "101", "A", "Song.flac"},
		},
		{
			name:    "five fields",
			input:   "A - 2020 - Album - 101 - Title.flac",
			wantErr: true,
		},
		{
			name:    "separator in title is not recoverable",
			input:   "A - 2020 - Album - 101 - A - Title - Live.flac",
			wantErr: true,
		},
		{
			name:    "unknown suffix is not recoverable",
			input:   "A - 2020 - Album - Deluxe - 101 - A - Title.flac",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitFileName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNamingConvention)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitFolderName(t *testing.T) {
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{"2020 - Album", []string{"2020", "Album"}, false},
		{"2021 - Hit - Single", []string{"2021", "Hit - Single"}, false},
		{"2021 - Album - Intro", []string{"2021", "Album - Intro"}, false},
		{"2021 - Album - Deluxe", nil, true},
		{"Album", nil, true},
		{"2021 - A - B - Single", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := SplitFolderName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNamingConvention)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTitle(t *testing.T) {
	fields, err := SplitFileName("A - 2020 - B - 101 - A - Mr. Brightside.mp3")
	require.NoError(t, err)

	assert.Equal(t, "Mr. Brightside", Title(fields))
	assert.Empty(t, Title([]string{"too", "short"}))
}

func TestParseTrackCode(t *testing.T) {
	for disc := 1; disc <= 9; disc++ {
		for track := 1; track <= 30; track++ {
			code := fmt.Sprintf("%d%02d", disc, track)
			tc, err := ParseTrackCode(code)
			require.NoError(t, err, code)

			gotDisc, err := tc.DiscNumber()
			require.NoError(t, err)
			gotTrack, err := tc.TrackNumber()
			require.NoError(t, err)

			assert.Equal(t, disc, gotDisc, code)
			assert.Equal(t, track, gotTrack, code)
			assert.Equal(t, code[1:], tc.Track)
		}
	}
}

func TestParseTrackCode_Invalid(t *testing.T) {
	_, err := ParseTrackCode("")
	assert.ErrorIs(t, err, ErrDiscNumber)

	_, err = ParseTrackCode("X01")
	assert.ErrorIs(t, err, ErrDiscNumber)

	// The track part is only checked on conversion.
	tc, err := ParseTrackCode("1AB")
	require.NoError(t, err)
	assert.Equal(t, "AB", tc.Track)
	_, err = tc.TrackNumber()
	assert.ErrorIs(t, err, ErrTrackNumber)
}

func TestIsForbiddenToken(t *testing.T) {
	for _, token := range []string{"Single", "Intro", "ÉPILOGUE", "25", "Interlude"} {
		assert.True(t, IsForbiddenToken(token), token)
	}
	assert.False(t, IsForbiddenToken("single"))
	assert.False(t, IsForbiddenToken("101"))
}
