package jobs

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
    "github.com/Aayush-pixel29/mgnrega-dashboard/store"
    "github.com/Aayush-pixel29/mgnrega-dashboard/utils"
)

type upsertCall struct {
    code  string
    month int
    year  int
    data  models.PerformanceData
}

type recordingStore struct {
    districts  []models.District
    listErr    error
    upsertErr  error
    upserts    []upsertCall
}

func (r *recordingStore) ListDistricts(ctx context.Context) ([]models.District, error) {
    return r.districts, r.listErr
}

func (r *recordingStore) UpsertDistrictIfAbsent(ctx context.Context, d models.District) error {
    return nil
}

func (r *recordingStore) GetLatestPerformance(ctx context.Context, code string) (*models.PerformanceRecord, error) {
    return nil, store.ErrNotFound
}

func (r *recordingStore) GetRecentPerformance(ctx context.Context, code string, limit int) ([]models.PerformanceRecord, error) {
    return nil, nil
}

func (r *recordingStore) UpsertPerformance(ctx context.Context, code string, month, year int, data models.PerformanceData) error {
    if r.upsertErr != nil {
        return r.upsertErr
    }
    r.upserts = append(r.upserts, upsertCall{code, month, year, data})
    return nil
}

func (r *recordingStore) InsertPerformanceIfAbsent(ctx context.Context, code string, month, year int, data models.PerformanceData) error {
    return nil
}

func newTestRefresher(st store.Store) *Refresher {
    r := NewRefresher(st, nil)
    r.Now = func() time.Time {
        return time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
    }
    return r
}

func TestRunOnceUpsertsEveryDistrictForCurrentPeriod(t *testing.T) {
    st := &recordingStore{districts: []models.District{
        {Name: "Pune", Code: "PUN"},
        {Name: "Nagpur", Code: "NAG"},
    }}
    r := newTestRefresher(st)

    r.RunOnce(context.Background())

    require.Len(t, st.upserts, 2)
    for _, call := range st.upserts {
        assert.Equal(t, 7, call.month, "zero-based August")
        assert.Equal(t, 2026, call.year)
        assert.Equal(t, utils.GenerateDistrictData(call.code, 7, 2026), call.data)
    }
}

func TestRunOnceIsIdempotent(t *testing.T) {
    st := &recordingStore{districts: []models.District{{Name: "Pune", Code: "PUN"}}}
    r := newTestRefresher(st)

    r.RunOnce(context.Background())
    r.RunOnce(context.Background())

    require.Len(t, st.upserts, 2)
    assert.Equal(t, st.upserts[0], st.upserts[1], "repeated runs write identical rows")
}

func TestRunOnceFallsBackToDirectoryWhenListFails(t *testing.T) {
    st := &recordingStore{listErr: errors.New("db down")}
    r := newTestRefresher(st)

    r.RunOnce(context.Background())

    assert.Len(t, st.upserts, len(models.DistrictDirectory))
}

func TestRunOnceUpsertFailureDoesNotPanic(t *testing.T) {
    st := &recordingStore{
        districts: []models.District{{Name: "Pune", Code: "PUN"}},
        upsertErr: errors.New("write failed"),
    }
    r := newTestRefresher(st)

    assert.NotPanics(t, func() { r.RunOnce(context.Background()) })
    assert.Empty(t, st.upserts)
}

func TestRunOnceNilStoreIsNoop(t *testing.T) {
    r := newTestRefresher(nil)
    assert.NotPanics(t, func() { r.RunOnce(context.Background()) })
}
