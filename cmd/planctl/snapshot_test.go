// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbusdb/compactor/internal/planner"
)

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("FileNonOverlapped")
	require.NoError(t, err)
	assert.Equal(t, planner.LevelFileNonOverlapped, lvl)

	_, err = parseLevel("Nonsense")
	assert.ErrorContains(t, err, "Nonsense")
}

func TestToPlanDocCompact(t *testing.T) {
	files := []planner.File{
		{ID: "a", Level: planner.LevelInitial, MinTime: 0, MaxTime: 10, SizeBytes: 5, RowCount: 1},
	}
	plan := planner.Compact(files)
	keep := []planner.File{{ID: "b", Level: planner.LevelInitial, MinTime: 20, MaxTime: 30, SizeBytes: 5, RowCount: 1}}

	doc := toPlanDoc(plan, keep)

	assert.Equal(t, "compact", doc.Kind)
	require.Len(t, doc.Compact, 1)
	assert.Equal(t, "a", doc.Compact[0].ID)
	assert.Equal(t, "Initial", doc.Compact[0].Level)
	require.Len(t, doc.Keep, 1)
	assert.Equal(t, "b", doc.Keep[0].ID)
	assert.Nil(t, doc.Split)
}

func TestToPlanDocSplit(t *testing.T) {
	job := planner.SplitJob{
		File:       planner.File{ID: "a", Level: planner.LevelInitial, MinTime: 0, MaxTime: 100, SizeBytes: 80, RowCount: 8},
		SplitTimes: []int64{33, 66},
	}
	plan := planner.Split([]planner.SplitJob{job})

	doc := toPlanDoc(plan, nil)

	assert.Equal(t, "split", doc.Kind)
	require.Len(t, doc.Split, 1)
	assert.Equal(t, "a", doc.Split[0].File.ID)
	assert.Equal(t, []int64{33, 66}, doc.Split[0].SplitTimes)
	assert.Nil(t, doc.Compact)
	assert.Empty(t, doc.Keep)
}
