package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
)

func TestWrapPreservesCodeAndMeta(t *testing.T) {
	base := apperr.NotFoundf("path '%s' not found", "ninja").WithMeta("path_key", "ninja")

	wrapped := apperr.Wrap(base, "failed to assign path").WithMeta("source", "expertPath")

	assert.Equal(t, apperr.CodeNotFound, wrapped.Code)
	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, "failed to assign path: path 'ninja' not found", wrapped.Error())
	assert.Equal(t, "ninja", apperr.GetMeta(wrapped)["path_key"])
	assert.Equal(t, "expertPath", apperr.GetMeta(wrapped)["source"])

	// meta added to the wrapper does not leak into the cause
	_, leaked := base.Meta["source"]
	assert.False(t, leaked)
	assert.True(t, errors.Is(wrapped, base))
}

func TestWrapForeignError(t *testing.T) {
	cause := fmt.Errorf("disk on fire")

	wrapped := apperr.Wrapf(cause, "loading %s", "edward")

	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
	assert.Equal(t, "loading edward: disk on fire", wrapped.Error())
	assert.Nil(t, apperr.GetMeta(wrapped))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
	assert.Nil(t, apperr.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, apperr.WrapWithCode(nil, apperr.CodeValidation, "nothing"))
}

func TestWrapWithCodeOverrides(t *testing.T) {
	wrapped := apperr.WrapWithCode(apperr.NotFound("missing"), apperr.CodeInvalidArgument, "bad location")

	assert.True(t, apperr.IsInvalidArgument(wrapped))
	assert.False(t, apperr.IsNotFound(wrapped))
	assert.True(t, apperr.IsNotFound(wrapped.Cause))
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  apperr.Code
		check func(error) bool
	}{
		{"not found", apperr.NotFound("x"), apperr.CodeNotFound, apperr.IsNotFound},
		{"invalid argument", apperr.InvalidArgumentf("bad %s", "x"), apperr.CodeInvalidArgument, apperr.IsInvalidArgument},
		{"already exists", apperr.AlreadyExistsf("%s exists", "x"), apperr.CodeAlreadyExists, apperr.IsAlreadyExists},
		{"validation", apperr.Validationf("level %d", -1), apperr.CodeValidation, apperr.IsValidation},
		{"plain validation", apperr.Validation("name is required"), apperr.CodeValidation, apperr.IsValidation},
		{"confirmation", apperr.ConfirmationRequiredf("x"), apperr.CodeConfirmationRequired, apperr.IsConfirmationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, apperr.GetCode(tt.err))
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("outer: %w", tt.err)))
		})
	}
}

func TestConstructorsKeepLiteralPercent(t *testing.T) {
	err := apperr.InvalidArgument("100% of nothing")
	assert.Equal(t, "100% of nothing", err.Error())
}

func TestNonAppErrors(t *testing.T) {
	err := errors.New("plain")

	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(err))
	assert.False(t, apperr.IsNotFound(err))
	assert.Nil(t, apperr.GetMeta(err))
}

func TestConfirmationRequiredMeta(t *testing.T) {
	err := apperr.ConfirmationRequiredf("reassigning %s would discard %d choices", "expertPath", 1).
		WithMeta("invalid_choices", []string{"expertPath-3"})

	require.True(t, apperr.IsConfirmationRequired(err))
	assert.Equal(t, []string{"expertPath-3"}, apperr.GetMeta(err)["invalid_choices"])
	assert.Equal(t, "reassigning expertPath would discard 1 choices", err.Error())
}
