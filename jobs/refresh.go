package jobs

import (
    "context"
    "log"
    "time"

    "github.com/Aayush-pixel29/mgnrega-dashboard/metrics"
    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
    "github.com/Aayush-pixel29/mgnrega-dashboard/store"
    "github.com/Aayush-pixel29/mgnrega-dashboard/utils"
)

// DefaultInterval is how often current-period data is regenerated.
const DefaultInterval = 6 * time.Hour

// Refresher regenerates and upserts current-period performance data for
// every known district on a timer. Failures are logged and the cycle
// ends; the next tick retries naturally. Nothing here can propagate an
// error into request handling.
type Refresher struct {
    Store    store.Store
    Metrics  *metrics.Metrics
    Interval time.Duration

    // Now is the period clock; tests pin it.
    Now func() time.Time

    stop chan struct{}
}

func NewRefresher(st store.Store, m *metrics.Metrics) *Refresher {
    return &Refresher{
        Store:    st,
        Metrics:  m,
        Interval: DefaultInterval,
        Now:      time.Now,
        stop:     make(chan struct{}),
    }
}

// Start launches the timer loop. The first run happens at bootstrap,
// not here, so Start only schedules future cycles.
func (r *Refresher) Start() {
    go func() {
        ticker := time.NewTicker(r.Interval)
        defer ticker.Stop()
        for {
            select {
            case <-ticker.C:
                r.RunOnce(context.Background())
            case <-r.stop:
                return
            }
        }
    }()
}

func (r *Refresher) Stop() {
    close(r.stop)
}

// RunOnce performs one refresh cycle. Idempotent: the upsert is keyed
// by (district_code, month, year), so overlapping runs converge on the
// same rows.
func (r *Refresher) RunOnce(ctx context.Context) {
    if r.Store == nil {
        return
    }
    r.Metrics.IncRefreshRun()

    districts, err := r.Store.ListDistricts(ctx)
    if err != nil || len(districts) == 0 {
        if err != nil {
            log.Printf("Refresh: listing districts failed, using static directory: %v", err)
        }
        districts = models.DistrictDirectory
    }

    month, year := store.PeriodBefore(r.Now(), 0)
    failed := 0
    for _, d := range districts {
        data := utils.GenerateDistrictData(d.Code, month, year)
        if err := r.Store.UpsertPerformance(ctx, d.Code, month, year, data); err != nil {
            log.Printf("Refresh: upsert for %s failed: %v", d.Code, err)
            failed++
        }
    }
    if failed > 0 {
        r.Metrics.IncRefreshError()
    }
    log.Printf("Refresh: updated %d/%d districts for period %d/%d", len(districts)-failed, len(districts), month, year)
}
