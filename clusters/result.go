package clusters

// Result is the outcome of one classification run.
type Result struct {
	Params Params `json:"params"`
	// Summary is unfiltered: it includes clusters below MinGroupSize.
	Summary        []ClusterSummary `json:"summary"`
	GoodPerformers []string         `json:"good_performers"`
	BadPerformers  []string         `json:"bad_performers"`
}

// Eligible returns the summary rows of clusters that were classified.
func (r *Result) Eligible() []ClusterSummary {
	out := make([]ClusterSummary, 0, len(r.GoodPerformers)+len(r.BadPerformers))
	for _, row := range r.Summary {
		if row.GroupSize >= r.Params.MinGroupSize {
			out = append(out, row)
		}
	}
	return out
}

// Unclassified returns the identifiers of clusters with too few estimates.
func (r *Result) Unclassified() []string {
	out := []string{}
	for _, row := range r.Summary {
		if row.GroupSize < r.Params.MinGroupSize {
			out = append(out, row.ClusterID)
		}
	}
	return out
}

// Lookup returns the summary row for clusterID.
func (r *Result) Lookup(clusterID string) (ClusterSummary, bool) {
	for _, row := range r.Summary {
		if row.ClusterID == clusterID {
			return row, true
		}
	}
	return ClusterSummary{}, false
}

// Classification returns the label assigned to clusterID.
func (r *Result) Classification(clusterID string) Performance {
	row, ok := r.Lookup(clusterID)
	switch {
	case !ok:
		return Unknown
	case row.GroupSize < r.Params.MinGroupSize:
		return Unclassified
	case row.PassRate >= r.Params.ConfidenceLevel:
		return Good
	default:
		return Bad
	}
}
