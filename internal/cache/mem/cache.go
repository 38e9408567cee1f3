package mem

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/goserg/matchsim/internal/domain"
)

// Cache keeps the most recent reports in memory. Once full, adding a report
// evicts the oldest one.
type Cache struct {
	mu      sync.RWMutex
	size    int
	order   []uuid.UUID
	reports map[uuid.UUID]domain.Report
}

func New(size int) *Cache {
	if size <= 0 {
		size = 1
	}
	return &Cache{
		size:    size,
		reports: make(map[uuid.UUID]domain.Report),
	}
}

func (c *Cache) Add(report domain.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.reports[report.ID]; !ok {
		c.order = append(c.order, report.ID)
	}
	c.reports[report.ID] = report
	for len(c.order) > c.size {
		delete(c.reports, c.order[0])
		c.order = c.order[1:]
	}
}

func (c *Cache) Get(id uuid.UUID) (domain.Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	report, ok := c.reports[id]
	return report, ok
}

// List returns the cached reports, newest first.
func (c *Cache) List() []domain.Report {
	c.mu.RLock()
	defer c.mu.RUnlock()

	reports := make([]domain.Report, 0, len(c.reports))
	for _, report := range c.reports {
		reports = append(reports, report)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports
}
