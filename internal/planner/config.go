// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package planner

import "fmt"

// DefaultSoftExceededFraction is the soft-exceeded tolerance used by the
// large-file splitter when Config.SoftExceededFraction is zero. A file is
// only considered oversized once it exceeds MaxDesiredFileSize by more
// than this fraction, matching the Rust source's
// PERCENTAGE_OF_SOFT_EXCEEDED test constant.
const DefaultSoftExceededFraction = 0.5

// Config holds the planner's tunable limits. It is immutable once
// validated; PartitionInfo is threaded alongside it but currently unused
// by the decision logic, reserved for future per-partition policy.
type Config struct {
	// MaxCompactSize bounds the total input bytes of one compaction run.
	MaxCompactSize uint64
	// MaxDesiredFileSize is the target output file size after compaction.
	MaxDesiredFileSize uint64
	// SoftExceededFraction is the tolerance applied before a file is
	// considered oversized by the large-file splitter. Zero means
	// DefaultSoftExceededFraction.
	SoftExceededFraction float64
}

// String implements the display contract: a human-readable identifier
// used in logs and test snapshots.
func (c Config) String() string {
	return fmt.Sprintf("split_or_compact(%d, %d)", c.MaxCompactSize, c.MaxDesiredFileSize)
}

// softExceededFraction returns the effective tolerance, applying the
// default when the caller left the field at its zero value.
func (c Config) softExceededFraction() float64 {
	if c.SoftExceededFraction > 0 {
		return c.SoftExceededFraction
	}
	return DefaultSoftExceededFraction
}

// Validate panics if the configuration cannot possibly make progress: a
// budget that can't even hold two desired-size outputs means no
// compaction run can ever complete, so there is no sensible plan to
// return. This is a programmer error in how the planner was configured,
// not a runtime condition the caller should handle and retry.
func (c Config) Validate() {
	if c.MaxCompactSize < 2*c.MaxDesiredFileSize {
		panic(fmt.Sprintf(
			"bug: max_compact_size %d must be at least 2 times larger than max_desired_file_size %d",
			c.MaxCompactSize, c.MaxDesiredFileSize,
		))
	}
}

// PartitionInfo is opaque partition metadata threaded through Run for
// forward compatibility with per-partition policy. The planner does not
// inspect it.
type PartitionInfo struct {
	PartitionID string
}
