package mem

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/matchsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport(at time.Time) domain.Report {
	return domain.Report{ID: uuid.New(), CreatedAt: at}
}

func TestCacheListNewestFirst(t *testing.T) {
	c := New(10)
	now := time.Now()
	old := newReport(now.Add(-time.Hour))
	mid := newReport(now.Add(-time.Minute))
	last := newReport(now)
	c.Add(mid)
	c.Add(last)
	c.Add(old)

	got := c.List()
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{last.ID, mid.ID, old.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
}

func TestCacheEvictsOldest(t *testing.T) {
	c := New(2)
	now := time.Now()
	first := newReport(now)
	second := newReport(now.Add(time.Second))
	third := newReport(now.Add(2 * time.Second))
	c.Add(first)
	c.Add(second)
	c.Add(third)

	_, ok := c.Get(first.ID)
	assert.False(t, ok)
	got, ok := c.Get(third.ID)
	assert.True(t, ok)
	assert.Equal(t, third.ID, got.ID)
	assert.Len(t, c.List(), 2)
}

func TestCacheReplaceKeepsSize(t *testing.T) {
	c := New(2)
	r := newReport(time.Now())
	c.Add(r)
	r.Result.WinsA = 3
	c.Add(r)

	got, ok := c.Get(r.ID)
	require.True(t, ok)
	assert.Equal(t, 3, got.Result.WinsA)
	assert.Len(t, c.List(), 1)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(5)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := newReport(time.Now())
			c.Add(r)
			c.Get(r.ID)
			c.List()
		}()
	}
	wg.Wait()
	assert.Len(t, c.List(), 5)
}
