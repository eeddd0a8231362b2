package clusters_test

import (
	"testing"

	"github.com/jennavergeynst/receiver-performance/clusters"
	"github.com/jennavergeynst/receiver-performance/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTagRecords builds rows for one receiver cluster where pass of total
// estimates fall within 1 m.
func fixedTagRecords(fields clusters.Fields, receivers []any, pass, total int) []clusters.Record {
	out := make([]clusters.Record, 0, total)
	for i := 0; i < total; i++ {
		hpe := 0.8
		if i >= pass {
			hpe = 6.0
		}
		out = append(out, clusters.Record{
			fields.Error:   hpe,
			fields.Cluster: receivers,
			"TRANSMITTER":  "FT-1",
		})
	}
	return out
}

func TestClassifyRecords_DefaultsFile(t *testing.T) {
	cfg := config.MustLoadDefaultConfig()
	params := cfg.Params()
	fields := cfg.Fields()
	require.NoError(t, params.Validate())

	n := params.MinGroupSize
	passing := int(float64(n)*params.ConfidenceLevel + 0.999999)

	var records []clusters.Record
	records = append(records, fixedTagRecords(fields, []any{"VR2W-101", "VR2W-122"}, passing, n)...)
	records = append(records, fixedTagRecords(fields, []any{"VR2W-101", "VR2W-130"}, passing-1, n)...)
	records = append(records, fixedTagRecords(fields, []any{"VR2W-140"}, n-1, n-1)...)

	res, err := clusters.ClassifyRecords(records, fields, params)
	require.NoError(t, err)

	assert.Equal(t, []string{"VR2W-101+VR2W-122"}, res.GoodPerformers)
	assert.Equal(t, []string{"VR2W-101+VR2W-130"}, res.BadPerformers)
	assert.Equal(t, []string{"VR2W-140"}, res.Unclassified())
	assert.Equal(t, params, res.Params)
}
