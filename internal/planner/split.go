// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package planner

import "math"

// computeSplitTimesForLargeFiles computes split points for files whose
// size exceeds maxDesiredFileSize by more than softFraction, assuming
// rows (and therefore bytes) are uniformly distributed across the file's
// time range. The estimate is deliberately approximate: misjudging the
// distribution only affects output sizing, never correctness.
func computeSplitTimesForLargeFiles(files []File, maxDesiredFileSize, maxCompactSize uint64, softFraction float64) (toSplit []SplitJob, notToSplit []File) {
	threshold := uint64(float64(maxDesiredFileSize) * (1 + softFraction))

	for _, f := range files {
		if f.SizeBytes <= threshold {
			notToSplit = append(notToSplit, f)
			continue
		}
		if f.MinTime == f.MaxTime {
			// A zero-length time range cannot be meaningfully split.
			notToSplit = append(notToSplit, f)
			continue
		}

		n := piecesFor(f.SizeBytes, maxDesiredFileSize, maxCompactSize)
		if n < 2 {
			notToSplit = append(notToSplit, f)
			continue
		}

		points := make([]int64, 0, n-1)
		span := f.MaxTime - f.MinTime
		for i := int64(1); i < n; i++ {
			point := f.MinTime + (span*i)/n
			if point <= f.MinTime || point >= f.MaxTime {
				continue
			}
			if len(points) > 0 && point <= points[len(points)-1] {
				continue // degenerate range collapsed two points; skip the duplicate
			}
			points = append(points, point)
		}
		if len(points) == 0 {
			notToSplit = append(notToSplit, f)
			continue
		}

		toSplit = append(toSplit, SplitJob{File: f, SplitTimes: points})
	}

	return toSplit, notToSplit
}

// piecesFor returns the number of output pieces a file should be divided
// into: enough that each piece is close to maxDesiredFileSize, but never
// fewer than needed to keep every piece compactable within
// maxCompactSize/2 later.
func piecesFor(size, maxDesiredFileSize, maxCompactSize uint64) int64 {
	byDesired := ceilDiv(size, maxDesiredFileSize)
	halfCompact := maxCompactSize / 2
	byCompactable := ceilDiv(size, halfCompact)
	return int64(max64(byDesired, byCompactable))
}

func ceilDiv(a, b uint64) uint64 {
	if b == 0 {
		return 0
	}
	return uint64(math.Ceil(float64(a) / float64(b)))
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
