// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package planner

// Run decides what to do with a set of candidate files for one partition at
// one target level. It never mutates files and never touches storage; it
// only chooses between compacting everything now, splitting some files
// first, or leaving files untouched for a later round.
//
// The returned Plan and the returned keep slice partition files between
// them: every input file not validated away appears in exactly one of
// Plan's file lists or in keep.
//
// info is opaque partition metadata, unused by the decision logic and
// reserved for future per-partition policy; callers pass it through
// unchanged.
//
// Run panics if cfg is internally inconsistent or if any file in files
// violates File.Validate's invariants — both indicate a programmer error
// upstream, not a condition the caller can usefully recover from.
func Run(cfg Config, info PartitionInfo, files []File, target Level) (Plan, []File) {
	if len(files) == 0 {
		// Nothing to compact, so no compaction budget is ever exercised;
		// an otherwise-invalid config cannot block progress that was
		// never required in the first place.
		return Compact(nil), nil
	}

	cfg.Validate()
	for _, f := range files {
		f.Validate()
	}

	// 1. Small enough: the whole candidate set fits in one compaction run.
	if sumSizes(files) <= cfg.MaxCompactSize {
		return Compact(files), nil
	}

	// 2. Start-level overlap split: a start-level file straddling two or
	// more target-level files must be cut before anything can compact.
	toSplit, residue := identifyStartLevelFilesToSplit(files, target)
	if len(toSplit) > 0 {
		return Split(toSplit), residue
	}

	// 3. Budget-limited compaction: greedily take the overlap-closed groups
	// that fit in one run. Files the limiter routed to the splitter are not
	// acted on this round and are kept.
	toCompact, toFurtherSplit, toKeep := limitFilesToCompact(residue, cfg.MaxCompactSize, cfg.MaxDesiredFileSize)
	if len(toCompact) > 0 {
		return Compact(toCompact), append(toKeep, toFurtherSplit...)
	}

	// 4. Oversized-file split: nothing fit the budget even as a lone file,
	// so any file too big to pair with anything gets cut down instead.
	split, notSplit := computeSplitTimesForLargeFiles(toFurtherSplit, cfg.MaxDesiredFileSize, cfg.MaxCompactSize, cfg.softExceededFraction())
	keep := make([]File, 0, len(toKeep)+len(notSplit))
	keep = append(keep, toKeep...)
	keep = append(keep, notSplit...)
	return Split(split), keep
}
