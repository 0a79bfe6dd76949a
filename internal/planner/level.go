// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package planner implements the split-or-compact decision procedure for a
// single partition of a tiered, time-partitioned columnar store. Run is a
// pure function: given a candidate file set and a target compaction level,
// it decides whether the files can be compacted in one run, must first be
// split, or should be deferred to a later round. The package performs no
// I/O and holds no state between calls.
package planner

import "fmt"

// Level is a compaction tier. Tiers are totally ordered; files at a higher
// level are older, larger, and non-overlapping with their level-mates.
type Level int

const (
	// LevelInitial is L0: freshly-ingested files that may overlap each
	// other arbitrarily.
	LevelInitial Level = iota
	// LevelFileNonOverlapped is L1: files that no longer overlap other
	// files at the same level.
	LevelFileNonOverlapped
	// LevelFinal is L2: the terminal tier.
	LevelFinal
)

func (l Level) String() string {
	switch l {
	case LevelInitial:
		return "Initial"
	case LevelFileNonOverlapped:
		return "FileNonOverlapped"
	case LevelFinal:
		return "Final"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// StartLevel returns the level that compaction reads its input files from
// for a given target level: one tier below the target, except that
// Initial self-compacts (L0 files may be merged with other L0 files).
func (l Level) StartLevel() Level {
	if l == LevelInitial {
		return LevelInitial
	}
	return l - 1
}
