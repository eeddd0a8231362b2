package clusters

import (
	"errors"
	"sort"

	"github.com/jennavergeynst/receiver-performance/internal/monitoring"
	"gonum.org/v1/gonum/stat"
)

// accumulator collects the estimates of one cluster during the grouping pass.
type accumulator struct {
	passes []float64 // 1 when the estimate met the accuracy goal, else 0
	errors []float64
}

func (a *accumulator) add(e Estimate, accGoal float64) {
	pass := 0.0
	if e.Error <= accGoal {
		pass = 1
	}
	a.passes = append(a.passes, pass)
	a.errors = append(a.errors, e.Error)
}

func (a *accumulator) summarise(clusterID string) ClusterSummary {
	n := len(a.errors)
	mean, stddev := stat.MeanStdDev(a.errors, nil)
	if n < 2 {
		stddev = 0
	}

	sorted := make([]float64, n)
	copy(sorted, a.errors)
	sort.Float64s(sorted)

	return ClusterSummary{
		ClusterID:   clusterID,
		PassRate:    stat.Mean(a.passes, nil),
		GroupSize:   n,
		MeanError:   mean,
		MedianError: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95Error:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
		StdDevError: stddev,
	}
}

// Classify groups estimates per receiver cluster and labels every cluster with
// at least p.MinGroupSize estimates as a good or bad performer.
//
// The returned summary holds one row per distinct cluster, sorted by cluster
// identifier, including clusters too small to classify. GoodPerformers and
// BadPerformers follow the same order. A cluster whose pass rate equals
// p.ConfidenceLevel is a good performer.
//
// An empty estimates slice is not an error: the result has an empty summary
// and empty performer lists. Any invalid threshold or estimate fails the call
// with an error wrapping ErrInvalidInput; no partial result is returned.
func Classify(estimates []Estimate, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	groups := make(map[string]*accumulator)
	for i, e := range estimates {
		if err := e.validate(i); err != nil {
			return nil, err
		}
		acc, ok := groups[e.ClusterID]
		if !ok {
			acc = &accumulator{}
			groups[e.ClusterID] = acc
		}
		acc.add(e, p.AccGoal)
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	res := &Result{
		Params:         p,
		Summary:        make([]ClusterSummary, 0, len(ids)),
		GoodPerformers: []string{},
		BadPerformers:  []string{},
	}
	eligible := 0
	for _, id := range ids {
		row := groups[id].summarise(id)
		res.Summary = append(res.Summary, row)

		if row.GroupSize < p.MinGroupSize {
			continue
		}
		eligible++
		if row.PassRate >= p.ConfidenceLevel {
			res.GoodPerformers = append(res.GoodPerformers, id)
		} else {
			res.BadPerformers = append(res.BadPerformers, id)
		}
	}

	if len(estimates) > 0 && eligible == 0 {
		monitoring.Logf("WARNING: none of %d receiver clusters has %d or more estimates; nothing classified",
			len(ids), p.MinGroupSize)
	}
	monitoring.Logf("Classified receiver clusters: estimates=%d clusters=%d eligible=%d good=%d bad=%d",
		len(estimates), len(ids), eligible, len(res.GoodPerformers), len(res.BadPerformers))

	return res, nil
}

// ClassifyRecords maps records with EstimatesFromRecords and classifies them.
// Errors name the configured column rather than the Estimate field.
func ClassifyRecords(records []Record, fields Fields, p Params) (*Result, error) {
	fields = fields.withDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	estimates, err := EstimatesFromRecords(records, fields)
	if err != nil {
		return nil, err
	}

	res, err := Classify(estimates, p)
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			switch inputErr.Field {
			case fieldError:
				inputErr.Field = fields.Error
			case fieldClusterID:
				inputErr.Field = fields.Cluster
			}
		}
		return nil, err
	}
	return res, nil
}
