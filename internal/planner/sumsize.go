// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package planner

import "fmt"

// sumSizes adds up the size_bytes of files, panicking on uint64 overflow.
// Legitimate file sizes never come close to wrapping a 64-bit counter;
// an overflow here can only mean corrupt catalog metadata, so this is a
// defensive check rather than a normal error path (spec.md's
// InternalArithmetic error kind).
func sumSizes(files []File) uint64 {
	var total uint64
	for _, f := range files {
		next := total + f.SizeBytes
		if next < total {
			panic(fmt.Sprintf("bug: size sum overflow at file %s (running total %d)", f.ID, total))
		}
		total = next
	}
	return total
}
