package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordGenerationPass(t *testing.T) {
	before := testutil.ToFloat64(generationPassesTotal.WithLabelValues("test"))

	RecordGenerationPass("test", 150*time.Millisecond)
	RecordGenerationPass("test", 10*time.Millisecond)

	after := testutil.ToFloat64(generationPassesTotal.WithLabelValues("test"))
	require.InDelta(t, 2, after-before, 0.001)
}

func TestSetDeployTimeRecords(t *testing.T) {
	SetDeployTimeRecords(7)
	require.InDelta(t, 7, testutil.ToFloat64(deployTimeRecords), 0.001)
}
