package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Farm Metrics
var (
	PlantsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsPlanted,
			Help: HelpTextPlantsPlanted,
		},
		[]string{LabelPlant},
	)

	Harvests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
		[]string{LabelPlant},
	)

	HarvestYield = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestYield,
			Help: HelpTextHarvestYield,
		},
		[]string{LabelPlant, LabelKind},
	)

	TileUpgrades = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTileUpgrades,
			Help: HelpTextTileUpgrades,
		},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	ActionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsRejected,
			Help: HelpTextActionsRejected,
		},
		[]string{LabelAction},
	)
)

// Persistence Metrics
var (
	SnapshotSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotSaves,
			Help: HelpTextSnapshotSaves,
		},
		[]string{LabelDriver, LabelResult},
	)

	SnapshotLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotLoads,
			Help: HelpTextSnapshotLoads,
		},
		[]string{LabelSource, LabelResult},
	)

	SnapshotSaveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSnapshotSaveDuration,
			Help:    HelpTextSnapshotSaveDuration,
			Buckets: SnapshotLatencyBuckets,
		},
		[]string{LabelDriver},
	)

	CellsClearedOnLoad = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCellsClearedOnLoad,
			Help: HelpTextCellsClearedOnLoad,
		},
	)
)
