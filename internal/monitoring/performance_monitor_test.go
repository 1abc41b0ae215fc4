package monitoring

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"chunkwalk/internal/movement"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(5 * time.Millisecond)
	d := frameTimer.EndFrame()

	snap := pm.GetSnapshot()
	assert.Equal(t, uint64(1), snap.Frames)
	assert.GreaterOrEqual(t, d, 5*time.Millisecond)
	assert.Equal(t, d, snap.LastFrame)
	assert.Equal(t, d, snap.PeakFrame)
	assert.Greater(t, snap.FramesPerSecond, 0.0)
}

func TestPerformanceMonitorAverages(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.recordFrame(10 * time.Millisecond)
	pm.recordFrame(30 * time.Millisecond)

	snap := pm.GetSnapshot()
	assert.Equal(t, 20*time.Millisecond, snap.AvgFrame)
	assert.Equal(t, 30*time.Millisecond, snap.PeakFrame)
	assert.Equal(t, 30*time.Millisecond, snap.LastFrame)
}

func TestRecordStep(t *testing.T) {
	pm := NewPerformanceMonitor()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pm.RecordStep(movement.Committed)
			pm.RecordStep(movement.Rejected)
			pm.RecordStep(movement.Idle)
		}()
	}
	wg.Wait()

	snap := pm.GetSnapshot()
	assert.Equal(t, uint64(10), snap.StepsCommitted)
	assert.Equal(t, uint64(10), snap.StepsRejected)
	assert.Equal(t, uint64(10), snap.StepsIdle)
}

func TestMaybeReport(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	pm := NewPerformanceMonitor()
	pm.SetReportInterval(time.Second)
	pm.RecordStep(movement.Rejected)

	start := time.Now()
	assert.False(t, pm.MaybeReport(logger, start))
	require.True(t, pm.MaybeReport(logger, start.Add(2*time.Second)))
	assert.Contains(t, buf.String(), "steps_rejected=1")
	assert.False(t, pm.MaybeReport(logger, start.Add(2500*time.Millisecond)))
}

func TestReset(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.recordFrame(time.Millisecond)
	pm.RecordStep(movement.Committed)
	pm.Reset()

	snap := pm.GetSnapshot()
	assert.Zero(t, snap.Frames)
	assert.Zero(t, snap.StepsCommitted)
	assert.Zero(t, snap.AvgFrame)
	assert.Zero(t, snap.FramesPerSecond)
}

func TestMaybeReport_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	pm := NewPerformanceMonitor()
	pm.SetReportInterval(0)
	assert.False(t, pm.MaybeReport(logger, time.Now().Add(time.Hour)))
	assert.Empty(t, buf.String())
}
