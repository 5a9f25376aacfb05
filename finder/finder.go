package finder

import (
	"errors"
	"fmt"
	"github.com/meysamhadeli/snapgrid/finder/contracts"
	"github.com/meysamhadeli/snapgrid/finder/models"
	"github.com/zeebo/xxh3"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotADirectory is returned when the search root is missing or not a directory.
var ErrNotADirectory = errors.New("not a directory")

// ImageFinder locates date-named image files beneath a root directory.
type ImageFinder struct{}

// NewImageFinder initializes a new ImageFinder.
func NewImageFinder() contracts.IImageFinder {
	return &ImageFinder{}
}

// Search walks the root recursively and returns every file whose basename
// starts with 8 decimal digits and ends in one of the allowed extensions.
// Basenames are deduplicated case-insensitively: the first occurrence in walk
// order is kept and later ones become DuplicateSkipped events. WalkDir visits
// each directory's entries in lexical order, so "first" is the same on every
// platform for the same tree.
func (f *ImageFinder) Search(criteria models.SearchCriteria) (*models.ScanReport, error) {
	info, err := os.Stat(criteria.RootDirectory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotADirectory, criteria.RootDirectory)
		}
		return nil, fmt.Errorf("failed to stat root %s: %w", criteria.RootDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, criteria.RootDirectory)
	}

	pattern, err := basenamePattern(criteria.Extensions)
	if err != nil {
		return nil, err
	}

	report := &models.ScanReport{}
	seen := make(map[string]string)   // lowercased basename -> kept absolute path
	hashes := make(map[uint64]string) // content hash -> first absolute path

	err = filepath.WalkDir(criteria.RootDirectory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if !pattern.MatchString(base) {
			return nil
		}

		key := strings.ToLower(base)
		if kept, dup := seen[key]; dup {
			report.Duplicates = append(report.Duplicates, models.DuplicateSkipped{Path: path, KeptPath: kept})
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		seen[key] = abs

		if criteria.Fingerprint {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read file %s: %w", path, err)
			}
			sum := xxh3.Hash(content)
			if other, ok := hashes[sum]; ok {
				report.SameContent = append(report.SameContent, models.SameContent{Path: abs, OtherPath: other, Hash: sum})
			} else {
				hashes[sum] = abs
			}
		}

		report.Files = append(report.Files, models.ImageFile{AbsolutePath: abs, Basename: base})
		return nil
	})

	if err != nil {
		return nil, err
	}

	return report, nil
}

// basenamePattern builds the acceptance regex for the configured extensions:
// exactly 8 leading digits, anything after, one of the extensions at the end.
func basenamePattern(extensions []string) (*regexp.Regexp, error) {
	if len(extensions) == 0 {
		return nil, errors.New("no extensions configured")
	}

	quoted := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		quoted = append(quoted, regexp.QuoteMeta(strings.TrimPrefix(strings.TrimSpace(ext), ".")))
	}

	return regexp.Compile(`(?i)^[0-9]{8}.*\.(` + strings.Join(quoted, "|") + `)$`)
}
