package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name    string
		code    ErrorCode
		message string
	}{
		{
			name:    "InvalidConfig",
			code:    InvalidConfig,
			message: "could not parse configuration",
		},
		{
			name:    "ValidationFailed",
			code:    ValidationFailed,
			message: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message)

			customErr, ok := err.(*Error)
			require.True(t, ok, "should be a custom *Error")

			assert.Equal(t, tt.code, customErr.Code())
			assert.Equal(t, tt.message, customErr.Error())
			assert.Nil(t, customErr.Unwrap())
		})
	}
}

func TestWrapError(t *testing.T) {
	originalErr := stderrors.New("file unreadable")

	err := Wrap(originalErr, ConfigNotFound, "failed to read config file")
	customErr, ok := err.(*Error)
	require.True(t, ok)

	assert.Equal(t, ConfigNotFound, customErr.Code())
	assert.Equal(t, "failed to read config file: file unreadable", customErr.Error())
	assert.Equal(t, originalErr, customErr.Unwrap())
	assert.True(t, stderrors.Is(err, originalErr))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, Unknown, "nothing to wrap"))
}

func TestWithFields(t *testing.T) {
	err := New(ValidationFailed, "invalid level")
	err = WithFields(err, Fields{"level": "VERBOSE"})

	customErr, ok := err.(*Error)
	require.True(t, ok)

	assert.Equal(t, ValidationFailed, customErr.Code())
	assert.Equal(t, Fields{"level": "VERBOSE"}, customErr.Fields())
	assert.Contains(t, customErr.Error(), "level=VERBOSE")
}

func TestWithFieldsOnForeignError(t *testing.T) {
	err := WithFields(stderrors.New("plain"), Fields{"k": "v"})

	customErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, Unknown, customErr.Code())
	assert.Equal(t, Fields{"k": "v"}, customErr.Fields())
}

func TestErrorIs(t *testing.T) {
	err := New(OutputFailed, "stdout write failed")

	assert.True(t, stderrors.Is(err, New(OutputFailed, "different message")))
	assert.False(t, stderrors.Is(err, New(Unknown, "stdout write failed")))
}

func TestErrorAs(t *testing.T) {
	err := Wrap(stderrors.New("inner"), InvalidConfig, "outer")

	var customErr *Error
	require.True(t, stderrors.As(err, &customErr))
	assert.Equal(t, InvalidConfig, customErr.Code())
}
