package scanner

import (
	"sync"

	"quantpulse/internal/model"
)

// ReportCache holds the most recent scan report so the dashboard reads a warm
// result instead of waiting on provider round-trips. In-memory only.
type ReportCache struct {
	mu     sync.RWMutex
	report *model.ScanReport
}

func NewReportCache() *ReportCache { return &ReportCache{} }

// Set replaces the cached report.
func (c *ReportCache) Set(r *model.ScanReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report = r
}

// Latest returns the cached report, or nil when no scan has run yet.
func (c *ReportCache) Latest() *model.ScanReport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report
}
