package choices_test

import (
	"sort"
	"testing"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_Key(t *testing.T) {
	loc := choices.Location{Source: choices.SourceExpertPath, Level: 3}

	assert.Equal(t, "expertPath-3", loc.Key())
	assert.Equal(t, "expertPath-3", loc.String())
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    choices.Location
		wantErr bool
	}{
		{
			name: "ancestry",
			key:  "ancestry-4",
			want: choices.Location{Source: choices.SourceAncestry, Level: 4},
		},
		{
			name: "master path",
			key:  "masterPath-10",
			want: choices.Location{Source: choices.SourceMasterPath, Level: 10},
		},
		{
			name:    "no separator",
			key:     "novicePath",
			wantErr: true,
		},
		{
			name:    "unknown source",
			key:     "background-1",
			wantErr: true,
		},
		{
			name:    "bad level",
			key:     "novicePath-one",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := choices.ParseLocation(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.key, got.Key())
		})
	}
}

func TestLocation_Less(t *testing.T) {
	locs := []choices.Location{
		{Source: choices.SourceMasterPath, Level: 10},
		{Source: choices.SourceNovicePath, Level: 5},
		{Source: choices.SourceExpertPath, Level: 3},
		{Source: choices.SourceNovicePath, Level: 1},
		{Source: choices.SourceAncestry, Level: 4},
	}

	sort.Slice(locs, func(i, j int) bool { return locs[i].Less(locs[j]) })

	assert.Equal(t, []choices.Location{
		{Source: choices.SourceAncestry, Level: 4},
		{Source: choices.SourceNovicePath, Level: 1},
		{Source: choices.SourceNovicePath, Level: 5},
		{Source: choices.SourceExpertPath, Level: 3},
		{Source: choices.SourceMasterPath, Level: 10},
	}, locs)
}

func TestSource_IsValid(t *testing.T) {
	for _, source := range choices.Sources {
		assert.True(t, source.IsValid(), source)
	}
	assert.False(t, choices.Source("background").IsValid())
}
