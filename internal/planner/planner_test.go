// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunEmptyInput(t *testing.T) {
	cfg := Config{MaxCompactSize: 100, MaxDesiredFileSize: 100}
	plan, keep := Run(cfg, PartitionInfo{}, nil, LevelInitial)

	assert.True(t, plan.IsCompact())
	assert.Empty(t, plan.FilesToCompact())
	assert.Empty(t, keep)
}

func TestRunPreconditionViolation(t *testing.T) {
	cfg := Config{MaxCompactSize: 100, MaxDesiredFileSize: 100}
	files := []File{validFile("a", 0, 10)}

	assert.Panics(t, func() { Run(cfg, PartitionInfo{}, files, LevelInitial) })
}

func TestRunAllFit(t *testing.T) {
	cfg := Config{MaxCompactSize: 601, MaxDesiredFileSize: 100}
	files := []File{
		validFile("a", 0, 10), validFile("b", 0, 10), validFile("c", 0, 10),
		validFile("d", 0, 10), validFile("e", 0, 10),
	}

	plan, keep := Run(cfg, PartitionInfo{}, files, LevelFileNonOverlapped)

	assert.True(t, plan.IsCompact())
	assert.ElementsMatch(t, files, plan.FilesToCompact())
	assert.Empty(t, keep)
}

func TestRunStartLevelSplit(t *testing.T) {
	cfg := Config{MaxCompactSize: 100, MaxDesiredFileSize: 50}
	f1 := levelFile("1", LevelInitial, 450, 620)
	f2 := levelFile("2", LevelInitial, 650, 750)
	f3 := levelFile("3", LevelInitial, 800, 900)
	l12 := levelFile("12", LevelFileNonOverlapped, 400, 500)
	l13 := levelFile("13", LevelFileNonOverlapped, 600, 700)

	plan, keep := Run(cfg, PartitionInfo{}, []File{f1, f2, f3, l12, l13}, LevelFileNonOverlapped)

	assert.True(t, plan.IsSplit())
	assert.Equal(t, []SplitJob{{File: f1, SplitTimes: []int64{535}}}, plan.SplitJobs())
	assert.ElementsMatch(t, []File{f2, f3, l12, l13}, keep)
}

func TestRunBudgetLimitedCompaction(t *testing.T) {
	cfg := Config{MaxCompactSize: 300, MaxDesiredFileSize: 100}
	l11 := levelFile("11", LevelFileNonOverlapped, 250, 350)
	l12 := levelFile("12", LevelFileNonOverlapped, 400, 500)
	l13 := levelFile("13", LevelFileNonOverlapped, 600, 700)
	l22 := levelFile("22", LevelFinal, 200, 300)

	plan, keep := Run(cfg, PartitionInfo{}, []File{l11, l12, l13, l22}, LevelFinal)

	assert.True(t, plan.IsCompact())
	assert.ElementsMatch(t, []File{l22, l11, l12}, plan.FilesToCompact())
	assert.Equal(t, []File{l13}, keep)
}

// TestRunOversizedFileSplit covers the cascade's fourth branch: every file
// overflows max_compact_size on its own, the overlap analyzer never fires
// (self-compaction has no distinct target tier), and the budget limiter's
// compact set comes back empty, so both files fall through to the
// large-file splitter.
func TestRunOversizedFileSplit(t *testing.T) {
	cfg := Config{MaxCompactSize: 70, MaxDesiredFileSize: 35}
	fa := sizedFile("fa", 0, 1000, 80)
	fb := sizedFile("fb", 2000, 3000, 80)

	plan, keep := Run(cfg, PartitionInfo{}, []File{fa, fb}, LevelInitial)

	assert.True(t, plan.IsSplit())
	assert.ElementsMatch(t, []SplitJob{
		{File: fa, SplitTimes: []int64{333, 666}},
		{File: fb, SplitTimes: []int64{2333, 2666}},
	}, plan.SplitJobs())
	assert.Empty(t, keep)
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{MaxCompactSize: 300, MaxDesiredFileSize: 100}
	l11 := levelFile("11", LevelFileNonOverlapped, 250, 350)
	l12 := levelFile("12", LevelFileNonOverlapped, 400, 500)
	l22 := levelFile("22", LevelFinal, 200, 300)
	files := []File{l11, l12, l22}

	plan1, keep1 := Run(cfg, PartitionInfo{}, files, LevelFinal)
	plan2, keep2 := Run(cfg, PartitionInfo{}, files, LevelFinal)

	assert.Equal(t, plan1, plan2)
	assert.Equal(t, keep1, keep2)
}
