// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package planner

import "slices"

// limitFilesToCompact selects an overlap-closed, budget-bounded set of
// candidates that can be compacted in one run. Candidates are sorted by
// min_time, tie-broken by level desc then id asc, and their overlap groups
// are taken greedily in that order: a group that would push the total over
// maxCompactSize is skipped and later groups are still tried.
//
// Overlap closure means a start-level file and every target-level file it
// overlaps are accepted or rejected together — compacting part of an
// overlap group and leaving the rest behind would reintroduce the
// straddling problem the overlap analyzer already resolved.
//
// Returns three disjoint buckets:
//   - toCompact: the accepted, budget-bounded, overlap-closed selection.
//   - toFurtherSplit: rejected files that are lone (overlap group size 1),
//     individually larger than maxDesiredFileSize, and so too big to pair
//     with anything — candidates for the large-file splitter.
//   - toKeep: everything else that was rejected.
func limitFilesToCompact(candidates []File, maxCompactSize, maxDesiredFileSize uint64) (toCompact, toFurtherSplit, toKeep []File) {
	if len(candidates) == 0 {
		return nil, nil, nil
	}

	sorted := slices.Clone(candidates)
	slices.SortFunc(sorted, func(a, b File) int {
		switch {
		case a.MinTime != b.MinTime:
			if a.MinTime < b.MinTime {
				return -1
			}
			return 1
		case a.Level != b.Level:
			// level desc
			if a.Level > b.Level {
				return -1
			}
			return 1
		case a.ID != b.ID:
			// id asc
			if a.ID < b.ID {
				return -1
			}
			return 1
		default:
			return 0
		}
	})

	groups := overlapGroups(sorted)

	accepted := make(map[int]bool, len(groups)) // group index -> accepted
	var total uint64
	for gi, group := range groups {
		var groupSize uint64
		for _, idx := range group {
			groupSize += sorted[idx].SizeBytes
		}
		if total+groupSize > maxCompactSize {
			continue
		}
		total += groupSize
		accepted[gi] = true
	}

	for gi, group := range groups {
		if accepted[gi] {
			for _, idx := range group {
				toCompact = append(toCompact, sorted[idx])
			}
			continue
		}
		if len(group) == 1 {
			f := sorted[group[0]]
			if f.SizeBytes > maxDesiredFileSize {
				toFurtherSplit = append(toFurtherSplit, f)
				continue
			}
		}
		for _, idx := range group {
			toKeep = append(toKeep, sorted[idx])
		}
	}

	return toCompact, toFurtherSplit, toKeep
}

// overlapGroups partitions sorted files into their transitive overlap
// groups: two files are in the same group iff one overlaps the other,
// directly or through a chain of overlaps, regardless of level. Files at
// the same non-start level never overlap by the target-level invariant, so
// in practice this only ever chains start-level files into each other and
// into the (at most one, by the time this runs) target-level file each
// overlaps.
func overlapGroups(sorted []File) [][]int {
	n := len(sorted)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sorted[i].Overlaps(sorted[j]) {
				union(i, j)
			}
		}
	}

	groupOf := make(map[int]int, n)
	var groups [][]int
	for i := 0; i < n; i++ {
		root := find(i)
		gi, ok := groupOf[root]
		if !ok {
			gi = len(groups)
			groupOf[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}
	return groups
}
