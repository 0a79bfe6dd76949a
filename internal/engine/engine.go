// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package engine drives the planner on a schedule. It owns no storage and
// no catalog: it polls a PartitionSource for candidate file sets, runs the
// planner on a bounded worker pool, and hands results to a PlanSink. The
// planner package itself stays pure; everything in this package is the
// ambient machinery spec.md excludes from the core decision procedure.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/nimbusdb/compactor/internal/planner"
	"github.com/nimbusdb/compactor/internal/slogutil"
)

var _ suture.Service = (*Engine)(nil)

// PartitionView is everything the engine needs to plan one partition: its
// identity, its candidate files, the level compaction should target, and
// the limits to plan against.
type PartitionView struct {
	Info   planner.PartitionInfo
	Files  []planner.File
	Target planner.Level
	Config planner.Config
}

// PartitionSource enumerates the partitions due for a planning pass. The
// engine never talks to a catalog directly; this interface is the seam a
// caller fills in with its own storage layer.
type PartitionSource interface {
	ListPartitions(ctx context.Context) ([]PartitionView, error)
}

// PlanSink receives the outcome of planning one partition. Implementations
// typically enqueue the plan for the compaction executor and persist the
// keep list back to the catalog; the engine does not care how.
type PlanSink interface {
	Deliver(ctx context.Context, partition PartitionView, plan planner.Plan, keep []planner.File) error
}

// Planner is the shape of planner.Run, extracted as a function type so
// tests (and, in principle, alternative planning strategies) can point the
// engine at something other than the real implementation without the core
// planner package needing an interface hierarchy of its own.
type Planner func(cfg planner.Config, info planner.PartitionInfo, files []planner.File, target planner.Level) (planner.Plan, []planner.File)

// Engine polls a PartitionSource on an interval and runs Planner across a
// bounded pool of concurrent workers, one call per partition.
type Engine struct {
	source      PartitionSource
	sink        PlanSink
	plan        Planner
	interval    time.Duration
	concurrency int64
}

// New builds an Engine. concurrency is clamped to at least 1.
func New(source PartitionSource, sink PlanSink, interval time.Duration, concurrency int) *Engine {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Engine{
		source:      source,
		sink:        sink,
		plan:        planner.Run,
		interval:    interval,
		concurrency: int64(concurrency),
	}
}

func (e *Engine) String() string {
	return fmt.Sprintf("engine.Engine@%p", e)
}

// Serve runs planning rounds on e.interval until ctx is cancelled. It
// satisfies suture.Service, so the caller can supervise it alongside other
// long-running components with automatic restart on error.
func (e *Engine) Serve(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		if err := e.round(ctx); err != nil {
			return err
		}

		timer.Reset(e.interval)
	}
}

func (e *Engine) round(ctx context.Context) error {
	metricRoundsTotal.Inc()

	partitions, err := e.source.ListPartitions(ctx)
	if err != nil {
		return fmt.Errorf("list partitions: %w", err)
	}
	slog.DebugContext(ctx, "Planning round starting", "partitions", len(partitions))

	sem := semaphore.NewWeighted(e.concurrency)
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range partitions {
		if err := sem.Acquire(gctx, 1); err != nil {
			break // context cancelled; stop dispatching new work
		}
		g.Go(func() error {
			defer sem.Release(1)
			e.planOne(gctx, p)
			return nil
		})
	}
	return g.Wait()
}

// planOne plans a single partition and delivers the result. A panic from
// the planner (a malformed file or an inconsistent config reaching this
// partition) is caught here: it is logged and counted, and this partition
// is simply skipped for the round rather than taking down every other
// partition's progress with it.
func (e *Engine) planOne(ctx context.Context, p PartitionView) {
	t0 := time.Now()
	plan, keep, err := e.safePlan(p)
	metricPlanDuration.Observe(time.Since(t0).Seconds())
	if err != nil {
		metricPlanErrors.WithLabelValues("panic").Inc()
		slog.ErrorContext(ctx, "Planning partition failed", "partition", p.Info.PartitionID, slogutil.Error(err))
		return
	}

	outcome := "compact"
	actedOn := plan.FilesToCompactLen()
	if plan.IsSplit() {
		outcome = "split"
		actedOn = plan.FilesToSplitLen()
	}
	metricPartitionsPlanned.WithLabelValues(outcome).Inc()
	metricFilesActedOn.Observe(float64(actedOn))

	if err := e.sink.Deliver(ctx, p, plan, keep); err != nil {
		metricPlanErrors.WithLabelValues("deliver").Inc()
		slog.ErrorContext(ctx, "Delivering plan failed", "partition", p.Info.PartitionID, slogutil.Error(err))
	}
}

func (e *Engine) safePlan(p PartitionView) (plan planner.Plan, keep []planner.File, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	plan, keep = e.plan(p.Config, p.Info, p.Files, p.Target)
	return plan, keep, nil
}
