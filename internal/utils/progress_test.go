package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressBar_KnownTotal(t *testing.T) {
	bar := NewProgressBar(10, DescProcessing)
	require.NotNil(t, bar)

	assert.NoError(t, bar.Add(1))
	assert.False(t, bar.IsFinished())

	assert.NoError(t, bar.Add(9))
	assert.True(t, bar.IsFinished())
}

func TestNewProgressBar_UnknownTotal(t *testing.T) {
	bar := NewProgressBar(-1, DescScanning)
	require.NotNil(t, bar)

	assert.NoError(t, bar.Add(5))
}
