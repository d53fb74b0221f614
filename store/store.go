package store

import (
    "context"
    "errors"

    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
)

// ErrNotFound is returned by reads that match no rows.
var ErrNotFound = errors.New("store: not found")

// Store is the persistence contract for districts and their monthly
// performance records. Callers are expected to treat every error as
// recoverable and fall back to static or synthetic data; only the
// bootstrap path is allowed to treat a storage error as fatal.
type Store interface {
    ListDistricts(ctx context.Context) ([]models.District, error)
    UpsertDistrictIfAbsent(ctx context.Context, d models.District) error
    GetLatestPerformance(ctx context.Context, districtCode string) (*models.PerformanceRecord, error)
    GetRecentPerformance(ctx context.Context, districtCode string, limit int) ([]models.PerformanceRecord, error)
    UpsertPerformance(ctx context.Context, districtCode string, month, year int, data models.PerformanceData) error
    InsertPerformanceIfAbsent(ctx context.Context, districtCode string, month, year int, data models.PerformanceData) error
}
