// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"

	"github.com/nimbusdb/compactor/internal/planner"
)

// snapshot is the on-disk YAML shape planctl reads: a single partition's
// candidate files plus the config to plan them against.
type snapshot struct {
	PartitionID          string    `json:"partition_id"`
	TargetLevel          string    `json:"target_level"`
	MaxCompactSize       uint64    `json:"max_compact_size"`
	MaxDesiredFileSize   uint64    `json:"max_desired_file_size"`
	SoftExceededFraction float64   `json:"soft_exceeded_fraction,omitempty"`
	Files                []fileDoc `json:"files"`
}

type fileDoc struct {
	ID        string `json:"id"`
	Level     string `json:"level"`
	MinTime   int64  `json:"min_time"`
	MaxTime   int64  `json:"max_time"`
	SizeBytes uint64 `json:"size_bytes"`
	RowCount  uint64 `json:"row_count"`
}

type splitJobDoc struct {
	File       fileDoc `json:"file"`
	SplitTimes []int64 `json:"split_times"`
}

// planDoc is what planctl prints: the plan's shape plus the files left
// untouched this round.
type planDoc struct {
	Kind    string        `json:"kind"`
	Compact []fileDoc     `json:"compact,omitempty"`
	Split   []splitJobDoc `json:"split,omitempty"`
	Keep    []fileDoc     `json:"keep"`
}

func parseLevel(s string) (planner.Level, error) {
	switch s {
	case "Initial":
		return planner.LevelInitial, nil
	case "FileNonOverlapped":
		return planner.LevelFileNonOverlapped, nil
	case "Final":
		return planner.LevelFinal, nil
	default:
		return 0, fmt.Errorf("unrecognized level %q", s)
	}
}

func toFileDoc(f planner.File) fileDoc {
	return fileDoc{
		ID:        f.ID,
		Level:     f.Level.String(),
		MinTime:   f.MinTime,
		MaxTime:   f.MaxTime,
		SizeBytes: f.SizeBytes,
		RowCount:  f.RowCount,
	}
}

func toPlanDoc(plan planner.Plan, keep []planner.File) planDoc {
	doc := planDoc{Keep: make([]fileDoc, len(keep))}
	for i, f := range keep {
		doc.Keep[i] = toFileDoc(f)
	}

	if plan.IsCompact() {
		doc.Kind = "compact"
		files := plan.FilesToCompact()
		doc.Compact = make([]fileDoc, len(files))
		for i, f := range files {
			doc.Compact[i] = toFileDoc(f)
		}
		return doc
	}

	doc.Kind = "split"
	jobs := plan.SplitJobs()
	doc.Split = make([]splitJobDoc, len(jobs))
	for i, j := range jobs {
		doc.Split[i] = splitJobDoc{File: toFileDoc(j.File), SplitTimes: j.SplitTimes}
	}
	return doc
}
