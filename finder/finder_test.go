package finder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meysamhadeli/snapgrid/finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file (and its parent directories) with the given content.
func writeFile(t *testing.T, root string, relative string, content string) string {
	t.Helper()

	path := filepath.Join(root, relative)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Test that only basenames with an 8-digit prefix and an allowed extension survive
func TestSearch_FiltersByPatternAndExtension(t *testing.T) {
	tempDir := t.TempDir()

	writeFile(t, tempDir, "20210101_beach.jpg", "a")
	writeFile(t, tempDir, "20210102.PNG", "b")
	writeFile(t, tempDir, "2021010_short.jpg", "c")   // only 7 digits
	writeFile(t, tempDir, "notadate.jpg", "d")        // no digit prefix
	writeFile(t, tempDir, "20210103_notes.txt", "e")  // wrong extension
	writeFile(t, tempDir, "x20210104_mixed.jpg", "f") // digits not leading

	searcher := NewImageFinder()
	report, err := searcher.Search(models.SearchCriteria{
		RootDirectory: tempDir,
		Extensions:    []string{"jpg", "png"},
	})
	require.NoError(t, err)

	var basenames []string
	for _, file := range report.Files {
		basenames = append(basenames, file.Basename)
	}

	assert.Equal(t, []string{"20210101_beach.jpg", "20210102.PNG"}, basenames)
	assert.Empty(t, report.Duplicates)
}

// Test that extension matching is case-insensitive in both directions
func TestSearch_ExtensionCaseInsensitive(t *testing.T) {
	tempDir := t.TempDir()

	writeFile(t, tempDir, "20210101_a.JPG", "a")
	writeFile(t, tempDir, "20210102_b.jpg", "b")

	searcher := NewImageFinder()
	report, err := searcher.Search(models.SearchCriteria{
		RootDirectory: tempDir,
		Extensions:    []string{"JpG"},
	})
	require.NoError(t, err)

	assert.Len(t, report.Files, 2)
}

// Test that duplicate basenames across subdirectories keep the first hit in
// lexical walk order and report the rest
func TestSearch_DeduplicatesByBasename(t *testing.T) {
	tempDir := t.TempDir()

	kept := writeFile(t, tempDir, "aaa/20210101_trip.jpg", "first")
	skippedA := writeFile(t, tempDir, "bbb/20210101_trip.jpg", "second")
	skippedB := writeFile(t, tempDir, "ccc/20210101_TRIP.JPG", "third")

	searcher := NewImageFinder()
	report, err := searcher.Search(models.SearchCriteria{
		RootDirectory: tempDir,
		Extensions:    []string{"jpg"},
	})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, kept, report.Files[0].AbsolutePath)

	require.Len(t, report.Duplicates, 2)
	assert.Equal(t, skippedA, report.Duplicates[0].Path)
	assert.Equal(t, kept, report.Duplicates[0].KeptPath)
	assert.Equal(t, skippedB, report.Duplicates[1].Path)
	assert.Equal(t, kept, report.Duplicates[1].KeptPath)
}

// Test fingerprinting: identical bytes under distinct basenames are reported
func TestSearch_FingerprintsIdenticalContent(t *testing.T) {
	tempDir := t.TempDir()

	writeFile(t, tempDir, "20210101_a.jpg", "same bytes")
	writeFile(t, tempDir, "20210102_b.jpg", "same bytes")
	writeFile(t, tempDir, "20210103_c.jpg", "different bytes")

	searcher := NewImageFinder()
	report, err := searcher.Search(models.SearchCriteria{
		RootDirectory: tempDir,
		Extensions:    []string{"jpg"},
		Fingerprint:   true,
	})
	require.NoError(t, err)

	assert.Len(t, report.Files, 3)
	require.Len(t, report.SameContent, 1)
	assert.Contains(t, report.SameContent[0].Path, "20210102_b.jpg")
	assert.Contains(t, report.SameContent[0].OtherPath, "20210101_a.jpg")
}

// Test that a missing root surfaces ErrNotADirectory
func TestSearch_MissingRoot(t *testing.T) {
	searcher := NewImageFinder()

	_, err := searcher.Search(models.SearchCriteria{
		RootDirectory: filepath.Join(t.TempDir(), "does-not-exist"),
		Extensions:    []string{"jpg"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotADirectory)
}

// Test that a file as root surfaces ErrNotADirectory
func TestSearch_RootIsFile(t *testing.T) {
	tempDir := t.TempDir()
	path := writeFile(t, tempDir, "20210101_a.jpg", "a")

	searcher := NewImageFinder()
	_, err := searcher.Search(models.SearchCriteria{
		RootDirectory: path,
		Extensions:    []string{"jpg"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotADirectory)
}

// Test that zero matches is an empty result, not an error
func TestSearch_NoMatchesIsNotAnError(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, tempDir, "readme.md", "no images here")

	searcher := NewImageFinder()
	report, err := searcher.Search(models.SearchCriteria{
		RootDirectory: tempDir,
		Extensions:    []string{"jpg"},
	})

	require.NoError(t, err)
	assert.Empty(t, report.Files)
}

// Test that an empty extension set is rejected
func TestSearch_NoExtensionsConfigured(t *testing.T) {
	searcher := NewImageFinder()

	_, err := searcher.Search(models.SearchCriteria{
		RootDirectory: t.TempDir(),
		Extensions:    nil,
	})

	require.Error(t, err)
}
