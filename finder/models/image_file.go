package models

import "time"

// ImageFile holds one matched image beneath the search root.
type ImageFile struct {
	AbsolutePath string
	Basename     string
	TakenAt      time.Time
}

// SearchCriteria describes a single search; immutable for its duration.
type SearchCriteria struct {
	RootDirectory string
	Extensions    []string
	Fingerprint   bool
}

// DuplicateSkipped records a file excluded because another file with the
// same basename (compared case-insensitively) was encountered first.
type DuplicateSkipped struct {
	Path     string
	KeptPath string
}

// SameContent records two retained files whose bytes hash identically.
type SameContent struct {
	Path      string
	OtherPath string
	Hash      uint64
}

// ScanReport is the full outcome of one directory search. Duplicate and
// same-content findings are returned as events so callers decide how to
// surface them.
type ScanReport struct {
	Files       []ImageFile
	Duplicates  []DuplicateSkipped
	SameContent []SameContent
}
