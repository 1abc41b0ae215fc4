package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"chunkwalk/internal/movement"

	"github.com/sirupsen/logrus"
)

// PerformanceMonitor tracks frame timing and movement step outcomes
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame
	totalTime  atomic.Uint64 // nanoseconds, all frames

	// Movement metrics
	stepsCommitted atomic.Uint64
	stepsRejected  atomic.Uint64
	stepsIdle      atomic.Uint64

	// Statistics
	mutex        sync.RWMutex
	avgFrameTime float64
	peakFrame    time.Duration
	startTime    time.Time
	lastReport   time.Time

	// Configuration
	reportInterval time.Duration
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	now := time.Now()
	return &PerformanceMonitor{
		startTime:      now,
		lastReport:     now,
		reportInterval: 10 * time.Second,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() time.Duration {
	frameTime := time.Since(ft.startTime)
	ft.monitor.recordFrame(frameTime)
	return frameTime
}

func (pm *PerformanceMonitor) recordFrame(d time.Duration) {
	pm.frameTime.Store(uint64(d.Nanoseconds()))
	total := pm.totalTime.Add(uint64(d.Nanoseconds()))
	count := pm.frameCount.Add(1)

	pm.mutex.Lock()
	pm.avgFrameTime = float64(total) / float64(count)
	if d > pm.peakFrame {
		pm.peakFrame = d
	}
	pm.mutex.Unlock()
}

// RecordStep counts one movement step by outcome.
func (pm *PerformanceMonitor) RecordStep(outcome movement.Outcome) {
	switch outcome {
	case movement.Committed:
		pm.stepsCommitted.Add(1)
	case movement.Rejected:
		pm.stepsRejected.Add(1)
	default:
		pm.stepsIdle.Add(1)
	}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Frames          uint64
	LastFrame       time.Duration
	AvgFrame        time.Duration
	PeakFrame       time.Duration
	FramesPerSecond float64
	StepsCommitted  uint64
	StepsRejected   uint64
	StepsIdle       uint64
	MemoryAllocMB   uint64
	Goroutines      int
	Uptime          time.Duration
}

// GetSnapshot returns current performance metrics
func (pm *PerformanceMonitor) GetSnapshot() Snapshot {
	pm.mutex.RLock()
	avg := time.Duration(pm.avgFrameTime)
	peak := pm.peakFrame
	uptime := time.Since(pm.startTime)
	pm.mutex.RUnlock()

	frameTime := pm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return Snapshot{
		Frames:          pm.frameCount.Load(),
		LastFrame:       time.Duration(frameTime),
		AvgFrame:        avg,
		PeakFrame:       peak,
		FramesPerSecond: fps,
		StepsCommitted:  pm.stepsCommitted.Load(),
		StepsRejected:   pm.stepsRejected.Load(),
		StepsIdle:       pm.stepsIdle.Load(),
		MemoryAllocMB:   memStats.Alloc / 1024 / 1024,
		Goroutines:      runtime.NumGoroutine(),
		Uptime:          uptime,
	}
}

// Fields renders the snapshot as structured log fields.
func (s Snapshot) Fields() logrus.Fields {
	return logrus.Fields{
		"frames":          s.Frames,
		"avg_frame_ms":    float64(s.AvgFrame) / float64(time.Millisecond),
		"peak_frame_ms":   float64(s.PeakFrame) / float64(time.Millisecond),
		"fps":             s.FramesPerSecond,
		"steps_committed": s.StepsCommitted,
		"steps_rejected":  s.StepsRejected,
		"steps_idle":      s.StepsIdle,
		"memory_alloc_mb": s.MemoryAllocMB,
		"goroutines":      s.Goroutines,
	}
}

// SetReportInterval changes how often MaybeReport logs. Zero or less disables reports.
func (pm *PerformanceMonitor) SetReportInterval(d time.Duration) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.reportInterval = d
}

// MaybeReport logs a snapshot when the report interval has passed since the last one.
// It returns whether a line was written.
func (pm *PerformanceMonitor) MaybeReport(logger logrus.FieldLogger, now time.Time) bool {
	pm.mutex.Lock()
	if pm.reportInterval <= 0 || now.Sub(pm.lastReport) < pm.reportInterval {
		pm.mutex.Unlock()
		return false
	}
	pm.lastReport = now
	pm.mutex.Unlock()

	logger.WithFields(pm.GetSnapshot().Fields()).Info("performance")
	return true
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.totalTime.Store(0)
	pm.stepsCommitted.Store(0)
	pm.stepsRejected.Store(0)
	pm.stepsIdle.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.peakFrame = 0
	pm.startTime = time.Now()
	pm.lastReport = pm.startTime
	pm.mutex.Unlock()
}
