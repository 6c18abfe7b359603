package mine

import (
	"math"
	"slices"
	"sync"
	"time"
)

// passSample is one completed mining pass.
type passSample struct {
	at     time.Time
	ms     int64
	slides int
}

// StatsSnapshot is a point-in-time aggregate of recent mining passes.
type StatsSnapshot struct {
	Count     int     `json:"count"`
	MinMs     int64   `json:"min_ms"`
	MaxMs     int64   `json:"max_ms"`
	AvgMs     float64 `json:"avg_ms"`
	P50Ms     float64 `json:"p50_ms"`
	P95Ms     float64 `json:"p95_ms"`
	P99Ms     float64 `json:"p99_ms"`
	AvgSlides float64 `json:"avg_slides"`
}

// Stats tracks mining-pass latency within a rolling window. A pass is
// O(total text length × dictionary patterns), so latency growth here is
// the first sign a deck or dictionary outgrew the design; slides per
// pass says which of the two it was.
type Stats struct {
	mu     sync.Mutex
	window time.Duration
	passes []passSample
}

func NewStats(window time.Duration) *Stats {
	if window <= 0 {
		window = time.Hour
	}
	return &Stats{window: window}
}

// Record adds one completed pass.
func (s *Stats) Record(durationMs int64, slides int) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict(now)
	s.passes = append(s.passes, passSample{at: now, ms: durationMs, slides: slides})
}

func (s *Stats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict(now)
	if len(s.passes) == 0 {
		return StatsSnapshot{}
	}

	durations := make([]int64, len(s.passes))
	var sumMs, sumSlides int64
	for i, p := range s.passes {
		durations[i] = p.ms
		sumMs += p.ms
		sumSlides += int64(p.slides)
	}
	slices.Sort(durations)

	n := float64(len(durations))
	return StatsSnapshot{
		Count:     len(durations),
		MinMs:     durations[0],
		MaxMs:     durations[len(durations)-1],
		AvgMs:     float64(sumMs) / n,
		P50Ms:     percentile(durations, 50),
		P95Ms:     percentile(durations, 95),
		P99Ms:     percentile(durations, 99),
		AvgSlides: float64(sumSlides) / n,
	}
}

// evict drops samples older than the window. Samples are appended in
// time order, so the expired ones form a prefix.
func (s *Stats) evict(now time.Time) {
	cutoff := now.Add(-s.window)
	i := 0
	for i < len(s.passes) && s.passes[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		s.passes = append(s.passes[:0], s.passes[i:]...)
	}
}

// percentile reads pct from a sorted slice with linear interpolation
// between adjacent ranks.
func percentile(sorted []int64, pct float64) float64 {
	switch {
	case len(sorted) == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[len(sorted)-1])
	}
	rank := pct / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return float64(sorted[lo])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo])*(1-frac) + float64(sorted[hi])*frac
}
