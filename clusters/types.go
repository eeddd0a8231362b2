package clusters

import "math"

// Field names used in errors raised for Estimate values.
const (
	fieldError     = "error"
	fieldClusterID = "cluster_id"
)

// Estimate is one computed fixed-position estimate.
type Estimate struct {
	// Error is the horizontal position error in metres (HPEm).
	Error float64
	// ClusterID identifies the exact receiver set used for the estimate.
	ClusterID string
}

func (e Estimate) validate(row int) error {
	if math.IsNaN(e.Error) || math.IsInf(e.Error, 0) {
		return rowError(row, fieldError, "must be a finite number, got %v", e.Error)
	}
	if e.Error < 0 {
		return rowError(row, fieldError, "must be non-negative, got %v", e.Error)
	}
	if e.ClusterID == "" {
		return rowError(row, fieldClusterID, "must not be empty")
	}
	return nil
}

// ClusterSummary aggregates the estimates of one receiver cluster. PassRate
// and GroupSize drive classification; the error statistics are descriptive.
type ClusterSummary struct {
	ClusterID string  `json:"cluster_id"`
	PassRate  float64 `json:"pass_rate"`
	GroupSize int     `json:"group_size"`

	MeanError   float64 `json:"mean_error"`
	MedianError float64 `json:"median_error"`
	P95Error    float64 `json:"p95_error"`
	StdDevError float64 `json:"stddev_error"`
}

// Performance is the classification label of a receiver cluster.
type Performance int

const (
	// Unknown is returned for identifiers absent from the input.
	Unknown Performance = iota
	// Unclassified clusters have fewer than MinGroupSize estimates.
	Unclassified
	Good
	Bad
)

func (p Performance) String() string {
	switch p {
	case Unclassified:
		return "unclassified"
	case Good:
		return "good"
	case Bad:
		return "bad"
	default:
		return "unknown"
	}
}
