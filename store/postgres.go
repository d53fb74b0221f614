package store

import (
    "context"
    "database/sql"
    "encoding/json"
    "errors"
    "fmt"

    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
)

// Postgres implements Store over a *sql.DB. All queries are
// parameterized; nothing here builds SQL from request input.
type Postgres struct {
    db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
    return &Postgres{db: db}
}

func (p *Postgres) ListDistricts(ctx context.Context) ([]models.District, error) {
    rows, err := p.db.QueryContext(ctx, `
        SELECT name, code, lat, lng, state
        FROM districts
        ORDER BY id`)
    if err != nil {
        return nil, fmt.Errorf("list districts: %w", err)
    }
    defer rows.Close()

    var districts []models.District
    for rows.Next() {
        var d models.District
        if err := rows.Scan(&d.Name, &d.Code, &d.Lat, &d.Lng, &d.State); err != nil {
            return nil, fmt.Errorf("scan district: %w", err)
        }
        districts = append(districts, d)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("list districts: %w", err)
    }
    return districts, nil
}

func (p *Postgres) UpsertDistrictIfAbsent(ctx context.Context, d models.District) error {
    _, err := p.db.ExecContext(ctx, `
        INSERT INTO districts (name, code, lat, lng, state)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (code) DO NOTHING`,
        d.Name, d.Code, d.Lat, d.Lng, d.State)
    if err != nil {
        return fmt.Errorf("upsert district %s: %w", d.Code, err)
    }
    return nil
}

func (p *Postgres) GetLatestPerformance(ctx context.Context, districtCode string) (*models.PerformanceRecord, error) {
    row := p.db.QueryRowContext(ctx, `
        SELECT district_code, month, year, data, updated_at
        FROM performance
        WHERE district_code = $1
        ORDER BY year DESC, month DESC
        LIMIT 1`,
        districtCode)
    return scanPerformance(row)
}

func (p *Postgres) GetRecentPerformance(ctx context.Context, districtCode string, limit int) ([]models.PerformanceRecord, error) {
    rows, err := p.db.QueryContext(ctx, `
        SELECT district_code, month, year, data, updated_at
        FROM performance
        WHERE district_code = $1
        ORDER BY year DESC, month DESC
        LIMIT $2`,
        districtCode, limit)
    if err != nil {
        return nil, fmt.Errorf("recent performance for %s: %w", districtCode, err)
    }
    defer rows.Close()

    var records []models.PerformanceRecord
    for rows.Next() {
        var rec models.PerformanceRecord
        var payload []byte
        if err := rows.Scan(&rec.DistrictCode, &rec.Month, &rec.Year, &payload, &rec.UpdatedAt); err != nil {
            return nil, fmt.Errorf("scan performance: %w", err)
        }
        if err := json.Unmarshal(payload, &rec.Data); err != nil {
            return nil, fmt.Errorf("decode performance data: %w", err)
        }
        records = append(records, rec)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("recent performance for %s: %w", districtCode, err)
    }
    return records, nil
}

func (p *Postgres) UpsertPerformance(ctx context.Context, districtCode string, month, year int, data models.PerformanceData) error {
    payload, err := json.Marshal(data)
    if err != nil {
        return fmt.Errorf("encode performance data: %w", err)
    }
    _, err = p.db.ExecContext(ctx, `
        INSERT INTO performance (district_code, month, year, data, updated_at)
        VALUES ($1, $2, $3, $4, now())
        ON CONFLICT (district_code, month, year)
        DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
        districtCode, month, year, payload)
    if err != nil {
        return fmt.Errorf("upsert performance %s %d/%d: %w", districtCode, month, year, err)
    }
    return nil
}

func (p *Postgres) InsertPerformanceIfAbsent(ctx context.Context, districtCode string, month, year int, data models.PerformanceData) error {
    payload, err := json.Marshal(data)
    if err != nil {
        return fmt.Errorf("encode performance data: %w", err)
    }
    _, err = p.db.ExecContext(ctx, `
        INSERT INTO performance (district_code, month, year, data, updated_at)
        VALUES ($1, $2, $3, $4, now())
        ON CONFLICT (district_code, month, year) DO NOTHING`,
        districtCode, month, year, payload)
    if err != nil {
        return fmt.Errorf("insert performance %s %d/%d: %w", districtCode, month, year, err)
    }
    return nil
}

type rowScanner interface {
    Scan(dest ...interface{}) error
}

func scanPerformance(row rowScanner) (*models.PerformanceRecord, error) {
    var rec models.PerformanceRecord
    var payload []byte
    err := row.Scan(&rec.DistrictCode, &rec.Month, &rec.Year, &payload, &rec.UpdatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, fmt.Errorf("scan performance: %w", err)
    }
    if err := json.Unmarshal(payload, &rec.Data); err != nil {
        return nil, fmt.Errorf("decode performance data: %w", err)
    }
    return &rec, nil
}
