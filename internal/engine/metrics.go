// Copyright (C) 2025 The Nimbusdb Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricRoundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "compactor",
		Subsystem: "engine",
		Name:      "rounds_total",
	})
	metricPartitionsPlanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compactor",
		Subsystem: "engine",
		Name:      "partitions_planned_total",
	}, []string{"outcome"})
	metricPlanErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compactor",
		Subsystem: "engine",
		Name:      "plan_errors_total",
	}, []string{"reason"})
	metricPlanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "compactor",
		Subsystem: "engine",
		Name:      "plan_duration_seconds",
		Buckets:   prometheus.DefBuckets,
	})
	metricFilesActedOn = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "compactor",
		Subsystem: "engine",
		Name:      "files_acted_on",
		Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128, 256},
	})
)
