package config_test

import (
	"testing"

	"github.com/KirkDiggler/demonlord-sheet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Character.ValidateOnPathChange)
	assert.True(t, cfg.Character.ValidateOnAncestryChange)
	assert.False(t, cfg.Character.PreserveInvalidChoices)
	assert.False(t, cfg.Character.StrictChoiceMembership)
	assert.Equal(t, 0, cfg.Character.DefaultLevel)
	assert.Equal(t, "text", cfg.Sheet.Format)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DEMONLORD_VALIDATE_ON_PATH_CHANGE", "false")
	t.Setenv("DEMONLORD_PRESERVE_INVALID_CHOICES", "true")
	t.Setenv("DEMONLORD_STRICT_CHOICE_MEMBERSHIP", "true")
	t.Setenv("DEMONLORD_DEFAULT_LEVEL", "3")
	t.Setenv("DEMONLORD_SHEET_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	validation := cfg.Character.Validation()
	assert.False(t, validation.ValidateOnPathChange)
	assert.True(t, validation.ValidateOnAncestryChange)
	assert.True(t, validation.PreserveInvalidChoices)
	assert.True(t, validation.StrictMembership)
	assert.Equal(t, 3, cfg.Character.DefaultLevel)
	assert.Equal(t, "json", cfg.Sheet.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{
			name:   "unparseable level",
			key:    "DEMONLORD_DEFAULT_LEVEL",
			value:  "not-an-int",
			errMsg: "parse env:",
		},
		{
			name:   "negative level",
			key:    "DEMONLORD_DEFAULT_LEVEL",
			value:  "-1",
			errMsg: "must not be negative",
		},
		{
			name:   "unknown format",
			key:    "DEMONLORD_SHEET_FORMAT",
			value:  "yaml",
			errMsg: "must be text or json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := config.Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
