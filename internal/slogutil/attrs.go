// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package slogutil holds the handful of log/slog attribute helpers shared
// between the engine and the CLI, so an error or a listen address is logged
// under the same key everywhere rather than however each call site spells
// it.
package slogutil

import "log/slog"

// Error reports err under a consistent "error" key. A nil err is reported
// as an empty attribute, which slog drops from the record.
func Error(err any) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Address reports a network listen address under a consistent "address"
// key.
func Address(v any) slog.Attr {
	return slog.Any("address", v)
}
