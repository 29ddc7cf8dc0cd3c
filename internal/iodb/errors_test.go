package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	target := "postgres://keeper:xxxxx@db/app"
	originalErr := errors.New("connection refused")

	err := ConnectionError(target, originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok,
		"Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "<em>%s</em>",
		"Message should contain format placeholder")
	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, target, gnErr.Vars[0])

	assert.ErrorIs(t, gnErr.Err, originalErr,
		"Should wrap original error")
	assert.Contains(t, gnErr.Err.Error(), "from",
		"Error should mention caller context")
}

// TestNotConnectedError_Structure verifies error structure.
func TestNotConnectedError_Structure(t *testing.T) {
	err := NotConnectedError()

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Contains(t, gnErr.Err.Error(), "pool is nil")
}

// TestDescribeError_Structure verifies error structure.
func TestDescribeError_Structure(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := DescribeError(originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}
