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

func levelFile(id string, level Level, minTime, maxTime int64) File {
	return File{ID: id, Level: level, MinTime: minTime, MaxTime: maxTime, SizeBytes: 100, RowCount: 10}
}

func TestIdentifyStartLevelFilesToSplit(t *testing.T) {
	f1 := levelFile("1", LevelInitial, 450, 620)
	f2 := levelFile("2", LevelInitial, 650, 750)
	f3 := levelFile("3", LevelInitial, 800, 900)
	l12 := levelFile("12", LevelFileNonOverlapped, 400, 500)
	l13 := levelFile("13", LevelFileNonOverlapped, 600, 700)

	toSplit, notToSplit := identifyStartLevelFilesToSplit(
		[]File{f1, f2, f3, l12, l13}, LevelFileNonOverlapped,
	)

	assert.Equal(t, []SplitJob{{File: f1, SplitTimes: []int64{535}}}, toSplit)
	assert.ElementsMatch(t, []File{f2, f3, l12, l13}, notToSplit)
}

func TestIdentifyStartLevelFilesToSplitNoTargets(t *testing.T) {
	f1 := levelFile("1", LevelInitial, 0, 100)
	f2 := levelFile("2", LevelInitial, 50, 150)

	toSplit, notToSplit := identifyStartLevelFilesToSplit([]File{f1, f2}, LevelFileNonOverlapped)

	assert.Empty(t, toSplit)
	assert.ElementsMatch(t, []File{f1, f2}, notToSplit)
}

func TestIdentifyStartLevelFilesToSplitSelfCompaction(t *testing.T) {
	f1 := levelFile("1", LevelInitial, 0, 100)
	f2 := levelFile("2", LevelInitial, 50, 150)
	f3 := levelFile("3", LevelInitial, 75, 125)

	toSplit, notToSplit := identifyStartLevelFilesToSplit([]File{f1, f2, f3}, LevelInitial)

	assert.Empty(t, toSplit)
	assert.ElementsMatch(t, []File{f1, f2, f3}, notToSplit)
}

func TestIdentifyStartLevelFilesToSplitOneOverlap(t *testing.T) {
	s := levelFile("s", LevelInitial, 0, 100)
	target := levelFile("t", LevelFileNonOverlapped, 50, 150)

	toSplit, notToSplit := identifyStartLevelFilesToSplit([]File{s, target}, LevelFileNonOverlapped)

	assert.Empty(t, toSplit)
	assert.ElementsMatch(t, []File{s, target}, notToSplit)
}
