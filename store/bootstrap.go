package store

import (
    "context"
    "fmt"
    "log"
    "time"

    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
    "github.com/Aayush-pixel29/mgnrega-dashboard/utils"
)

const schema = `
CREATE TABLE IF NOT EXISTS districts (
    id     SERIAL PRIMARY KEY,
    name   TEXT NOT NULL,
    code   TEXT NOT NULL UNIQUE,
    lat    DOUBLE PRECISION NOT NULL,
    lng    DOUBLE PRECISION NOT NULL,
    state  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS performance (
    id            SERIAL PRIMARY KEY,
    district_code TEXT NOT NULL,
    month         INTEGER NOT NULL CHECK (month BETWEEN 0 AND 11),
    year          INTEGER NOT NULL CHECK (year >= 2024),
    data          JSONB NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (district_code, month, year)
);
`

// backfillPeriods is the current month plus six trailing months.
const backfillPeriods = 7

// Bootstrap prepares storage before the API accepts connections:
// create the schema, seed the district directory, backfill recent
// performance history. Each step must succeed before the next runs.
// Any error here is fatal to the process; a broken schema cannot be
// papered over with fallbacks.
func (p *Postgres) Bootstrap(ctx context.Context) error {
    if _, err := p.db.ExecContext(ctx, schema); err != nil {
        return fmt.Errorf("create schema: %w", err)
    }
    log.Printf("Bootstrap: schema ready")

    for _, d := range models.DistrictDirectory {
        if err := p.UpsertDistrictIfAbsent(ctx, d); err != nil {
            return fmt.Errorf("seed district %s: %w", d.Code, err)
        }
    }
    log.Printf("Bootstrap: seeded %d districts", len(models.DistrictDirectory))

    districts, err := p.ListDistricts(ctx)
    if err != nil {
        return fmt.Errorf("list districts for backfill: %w", err)
    }

    now := time.Now()
    for _, d := range districts {
        for i := 0; i < backfillPeriods; i++ {
            month, year := PeriodBefore(now, i)
            data := utils.GenerateDistrictData(d.Code, month, year)
            if err := p.InsertPerformanceIfAbsent(ctx, d.Code, month, year, data); err != nil {
                return fmt.Errorf("backfill %s %d/%d: %w", d.Code, month, year, err)
            }
        }
    }
    log.Printf("Bootstrap: backfilled %d periods for %d districts", backfillPeriods, len(districts))
    return nil
}

// PeriodBefore returns the zero-based month and year of the period
// offset months before t.
func PeriodBefore(t time.Time, offset int) (month, year int) {
    shifted := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -offset, 0)
    return int(shifted.Month()) - 1, shifted.Year()
}
