// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package planner

import "slices"

// identifyStartLevelFilesToSplit finds start-level files that overlap two
// or more target-level files. Each such file gets a single split point at
// the midpoint of its time range; a piece that still straddles two target
// files is split again in a later round, until every piece overlaps at
// most one target file and bounded pairwise compaction can proceed.
//
// Returns (toSplit, notToSplit) where notToSplit is every other input
// file — the remaining start-level files plus all target-level files —
// in their original relative order.
func identifyStartLevelFilesToSplit(files []File, target Level) (toSplit []SplitJob, notToSplit []File) {
	start := target.StartLevel()
	if start == target {
		// Self-compaction (target == Initial): there is no distinct
		// target tier to straddle, so this pass never applies.
		return nil, files
	}

	var targets []File
	for _, f := range files {
		if f.Level == target {
			targets = append(targets, f)
		}
	}
	// Target files don't overlap each other, so sorting by min_time gives
	// a well-defined ascending order. The counting loop below does not
	// depend on it, and the returned slices keep the input order.
	slices.SortFunc(targets, func(a, b File) int {
		switch {
		case a.MinTime < b.MinTime:
			return -1
		case a.MinTime > b.MinTime:
			return 1
		default:
			return 0
		}
	})

	for _, f := range files {
		if f.Level != start {
			// Not a start-level file: either a target-level file, which
			// this pass never splits, or (if the candidate set is
			// malformed) something at neither level, which is left
			// untouched rather than guessed at.
			notToSplit = append(notToSplit, f)
			continue
		}

		count := 0
		for _, t := range targets {
			if f.Overlaps(t) {
				count++
				if count >= 2 {
					break
				}
			}
		}

		if count >= 2 {
			toSplit = append(toSplit, SplitJob{File: f, SplitTimes: []int64{f.Midpoint()}})
		} else {
			notToSplit = append(notToSplit, f)
		}
	}

	return toSplit, notToSplit
}
