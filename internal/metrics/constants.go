package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Farm metric names
const (
	MetricNamePlantsPlanted   = "farm_plants_planted_total"
	MetricNameHarvests        = "farm_harvests_total"
	MetricNameHarvestYield    = "farm_harvest_yield_total"
	MetricNameTileUpgrades    = "farm_tile_upgrades_total"
	MetricNameGoldEarned      = "farm_gold_earned_total"
	MetricNameGoldSpent       = "farm_gold_spent_total"
	MetricNameActionsRejected = "farm_actions_rejected_total"
)

// Persistence metric names
const (
	MetricNameSnapshotSaves        = "farm_snapshot_saves_total"
	MetricNameSnapshotLoads        = "farm_snapshot_loads_total"
	MetricNameSnapshotSaveDuration = "farm_snapshot_save_duration_seconds"
	MetricNameCellsClearedOnLoad   = "farm_cells_cleared_on_load_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Farm metric help text
const (
	HelpTextPlantsPlanted   = "Total number of seeds planted"
	HelpTextHarvests        = "Total number of crops harvested"
	HelpTextHarvestYield    = "Total units produced by harvests"
	HelpTextTileUpgrades    = "Total number of tile upgrades"
	HelpTextGoldEarned      = "Total gold earned from selling crops"
	HelpTextGoldSpent       = "Total gold spent on tile upgrades"
	HelpTextActionsRejected = "Total number of rejected player actions"
)

// Persistence metric help text
const (
	HelpTextSnapshotSaves        = "Total number of snapshot save attempts"
	HelpTextSnapshotLoads        = "Total number of snapshot load attempts"
	HelpTextSnapshotSaveDuration = "Snapshot serialize and write latency in seconds"
	HelpTextCellsClearedOnLoad   = "Total number of cells emptied during load because their plant was unusable"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelPlant  = "plant"
	LabelKind   = "kind"
	LabelAction = "action"
	LabelDriver = "driver"
	LabelSource = "source"
	LabelResult = "result"
)

// Label values
const (
	KindSeeds     = "seeds"
	KindHarvested = "harvested"

	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultEmpty   = "empty"

	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SnapshotLatencyBuckets covers in-memory stores through remote object storage.
var SnapshotLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5}
