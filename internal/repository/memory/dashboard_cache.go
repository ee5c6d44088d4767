package memory

import (
	"time"

	"studentdrive-be/internal/dto"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// DashboardCache keeps per-user dashboard summaries hot for five minutes so
// repeated dashboard loads don't re-run the aggregation queries.
type DashboardCache struct {
	cache *cache.Cache
}

func NewDashboardCache() *DashboardCache {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &DashboardCache{
		cache: c,
	}
}

func (r *DashboardCache) Save(userId uuid.UUID, summary *dto.DashboardSummaryResponse) {
	r.cache.Set(userId.String(), summary, cache.DefaultExpiration)
}

func (r *DashboardCache) Get(userId uuid.UUID) (*dto.DashboardSummaryResponse, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(*dto.DashboardSummaryResponse), true
	}
	return nil, false
}

func (r *DashboardCache) Invalidate(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
