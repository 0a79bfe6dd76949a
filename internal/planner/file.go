// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package planner

import "fmt"

// File is an immutable description of one stored data file. It is passed
// and returned by value: at the planner boundary there is no need for the
// shared-ownership/reference-counting semantics the source system applies
// between the planner and the compaction executor.
type File struct {
	ID        string
	Level     Level
	MinTime   int64 // inclusive, nanoseconds
	MaxTime   int64 // inclusive, nanoseconds
	SizeBytes uint64
	RowCount  uint64
}

// Validate panics if f violates the invariants spec.md requires of every
// file descriptor. Violations here indicate corrupt catalog metadata
// reaching the planner, which is a programmer/caller error, not a normal
// runtime condition — the planner aborts rather than guess at a repair.
func (f File) Validate() {
	if f.MinTime > f.MaxTime {
		panic(fmt.Sprintf("bug: file %s has min_time %d after max_time %d", f.ID, f.MinTime, f.MaxTime))
	}
	if f.SizeBytes == 0 {
		panic(fmt.Sprintf("bug: file %s has zero size_bytes", f.ID))
	}
	if f.RowCount == 0 {
		panic(fmt.Sprintf("bug: file %s has zero row_count", f.ID))
	}
}

// Overlaps reports whether f and o intersect as closed time intervals.
func (f File) Overlaps(o File) bool {
	return f.MinTime <= o.MaxTime && o.MinTime <= f.MaxTime
}

// Midpoint returns the split point used by the overlap analyzer: the
// midpoint of f's time range, rounded toward the start (integer division
// truncates toward zero for non-negative differences, which min/max
// timestamps always are since MinTime <= MaxTime).
func (f File) Midpoint() int64 {
	return f.MinTime + (f.MaxTime-f.MinTime)/2
}
