// Package domain contains the core data types for the Sushi API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

// Region is a named location identified by its slug.
// Values are returned from queries and never mutated in place; changes go
// through RegionPatch and come back as a fresh Region.
type Region struct {
	ID       int64  `db:"id" json:"id"`
	Slug     string `db:"slug" json:"slug"`
	Katakana string `db:"katakana" json:"katakana"`
	English  string `db:"english" json:"english"`
}

// RegionInput carries the fields supplied when a region is created.
// ID is assigned by the database.
type RegionInput struct {
	Slug     string `db:"slug"`
	Katakana string `db:"katakana"`
	English  string `db:"english"`
}

// RegionPatch is a partial update. Nil fields keep their current value.
// Slug and ID are immutable after creation and have no place here.
type RegionPatch struct {
	Katakana *string `db:"katakana"`
	English  *string `db:"english"`
}

// IsEmpty reports whether the patch changes nothing.
func (p RegionPatch) IsEmpty() bool {
	return p.Katakana == nil && p.English == nil
}

// Apply returns r with the non-nil patch fields copied over.
func (p RegionPatch) Apply(r Region) Region {
	if p.Katakana != nil {
		r.Katakana = *p.Katakana
	}
	if p.English != nil {
		r.English = *p.English
	}
	return r
}
