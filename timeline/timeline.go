package timeline

import (
	"math"
	"sort"
	"time"

	"github.com/meysamhadeli/snapgrid/finder/models"
)

// epoch is the fallback date for basenames whose leading characters do not
// form 8 decimal digits.
var epoch = time.Unix(0, 0).UTC()

// ParseDate interprets the first 8 characters of basename positionally as
// YYYYMMDD and returns the corresponding UTC date. Out-of-range components
// are normalized forward by time.Date, so month 13 rolls into January of the
// following year; a basename without a full digit prefix falls back to the
// Unix epoch instead of failing.
func ParseDate(basename string) time.Time {
	if len(basename) < 8 {
		return epoch
	}

	year, ok := atoiDigits(basename[0:4])
	if !ok {
		return epoch
	}
	month, ok := atoiDigits(basename[4:6])
	if !ok {
		return epoch
	}
	day, ok := atoiDigits(basename[6:8])
	if !ok {
		return epoch
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// SortByDate fills TakenAt for every file from its basename and returns a new
// slice sorted ascending by that date. The sort is stable, so files sharing a
// date keep their input order.
func SortByDate(files []models.ImageFile) []models.ImageFile {
	sorted := make([]models.ImageFile, len(files))
	copy(sorted, files)

	for i := range sorted {
		sorted[i].TakenAt = ParseDate(sorted[i].Basename)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TakenAt.Before(sorted[j].TakenAt)
	})

	return sorted
}

// Stats summarizes the date range covered by a set of files.
type Stats struct {
	Earliest time.Time
	Latest   time.Time
	DaySpan  int
}

// Summarize computes the earliest and latest dates over files and the number
// of days between them, rounded up. An empty input yields the zero Stats.
func Summarize(files []models.ImageFile) Stats {
	if len(files) == 0 {
		return Stats{}
	}

	stats := Stats{Earliest: files[0].TakenAt, Latest: files[0].TakenAt}
	for _, file := range files[1:] {
		if file.TakenAt.Before(stats.Earliest) {
			stats.Earliest = file.TakenAt
		}
		if file.TakenAt.After(stats.Latest) {
			stats.Latest = file.TakenAt
		}
	}

	stats.DaySpan = int(math.Ceil(stats.Latest.Sub(stats.Earliest).Hours() / 24))
	return stats
}

func atoiDigits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
