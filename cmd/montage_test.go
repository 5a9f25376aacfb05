package cmd

import (
	"testing"

	"github.com/meysamhadeli/snapgrid/finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test resolution string validation
func TestParseResolution(t *testing.T) {
	width, height, err := parseResolution("64x48")
	require.NoError(t, err)
	assert.Equal(t, 64, width)
	assert.Equal(t, 48, height)

	_, _, err = parseResolution("64x")
	assert.Error(t, err)

	_, _, err = parseResolution("64X48")
	assert.Error(t, err)

	_, _, err = parseResolution("0x48")
	assert.Error(t, err)

	_, _, err = parseResolution("axb")
	assert.Error(t, err)
}

// Test that composition input preserves the sorted file order
func TestOrderedPaths(t *testing.T) {
	files := []models.ImageFile{
		{AbsolutePath: "/p/20210101_a.jpg"},
		{AbsolutePath: "/p/20210102_b.jpg"},
	}

	assert.Equal(t, []string{"/p/20210101_a.jpg", "/p/20210102_b.jpg"}, orderedPaths(files))
}
