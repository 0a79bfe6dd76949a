// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command planctl runs the split-or-compact planner once against a YAML
// partition snapshot and prints the resulting plan. It is a debugging aid
// for inspecting what the engine would decide for a given file set, not
// the scheduler itself.
package main

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"sigs.k8s.io/yaml"

	"github.com/nimbusdb/compactor/internal/planner"
	"github.com/nimbusdb/compactor/internal/slogutil"
)

type cli struct {
	Snapshot      string `arg:"" help:"Path to a YAML partition snapshot."`
	MetricsListen string `help:"Optional listen address for Prometheus metrics."`
}

func main() {
	var params cli
	kong.Parse(&params)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(&params); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(params *cli) error {
	if params.MetricsListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		listener, err := net.Listen("tcp", params.MetricsListen)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		slog.Info("Metrics listener started", slogutil.Address(params.MetricsListen))
		go func() {
			if err := http.Serve(listener, mux); err != nil {
				slog.Warn("Metrics server returned", slogutil.Error(err))
			}
		}()
	}

	raw, err := os.ReadFile(params.Snapshot)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	target, err := parseLevel(snap.TargetLevel)
	if err != nil {
		return fmt.Errorf("target_level: %w", err)
	}

	cfg := planner.Config{
		MaxCompactSize:       snap.MaxCompactSize,
		MaxDesiredFileSize:   snap.MaxDesiredFileSize,
		SoftExceededFraction: snap.SoftExceededFraction,
	}

	files := make([]planner.File, len(snap.Files))
	for i, f := range snap.Files {
		level, err := parseLevel(f.Level)
		if err != nil {
			return fmt.Errorf("files[%d].level: %w", i, err)
		}
		files[i] = planner.File{
			ID:        f.ID,
			Level:     level,
			MinTime:   f.MinTime,
			MaxTime:   f.MaxTime,
			SizeBytes: f.SizeBytes,
			RowCount:  f.RowCount,
		}
	}

	info := planner.PartitionInfo{PartitionID: snap.PartitionID}
	slog.Info("Running planner", "partition", snap.PartitionID, "config", cfg.String(), "files", len(files))

	plan, keep := planner.Run(cfg, info, files, target)

	out, err := yaml.Marshal(toPlanDoc(plan, keep))
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
