package handlers

import (
    "errors"
    "log"
    "net/http"
    "strings"

    "github.com/gorilla/mux"

    "github.com/Aayush-pixel29/mgnrega-dashboard/cache"
    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
    "github.com/Aayush-pixel29/mgnrega-dashboard/store"
    "github.com/Aayush-pixel29/mgnrega-dashboard/utils"
)

const trendLength = 7

var monthNames = [12]string{
    "Jan", "Feb", "Mar", "Apr", "May", "Jun",
    "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// GetPerformance serves the latest metrics for one district. A code
// with no stored rows, or any storage failure, degrades to a
// synthetically generated record for the current period; the endpoint
// does not 500 for missing data.
func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
    code := strings.ToUpper(mux.Vars(r)["districtCode"])
    if code == "" {
        sendErrorResponse(w, "District code is required", http.StatusBadRequest)
        return
    }

    key := cache.Key("performance", code)
    if cached, found := h.cacheGet(key); found {
        if resp, ok := cached.(models.PerformanceResponse); ok {
            sendJSONResponse(w, http.StatusOK, resp)
            return
        }
    }

    resp := h.latestPerformance(r, code)
    h.cacheSet(key, resp)
    sendJSONResponse(w, http.StatusOK, resp)
}

func (h *Handler) latestPerformance(r *http.Request, code string) models.PerformanceResponse {
    if h.Store != nil {
        rec, err := h.Store.GetLatestPerformance(r.Context(), code)
        if err == nil {
            return models.PerformanceResponse{
                DistrictCode: rec.DistrictCode,
                Month:        rec.Month,
                Year:         rec.Year,
                Data:         rec.Data,
                Source:       "database",
            }
        }
        if !errors.Is(err, store.ErrNotFound) {
            log.Printf("GetPerformance: storage error for %s, serving synthetic data: %v", code, err)
        }
    }

    h.Metrics.IncFallback("performance")
    month, year := store.PeriodBefore(h.Now(), 0)
    return models.PerformanceResponse{
        DistrictCode: code,
        Month:        month,
        Year:         year,
        Data:         utils.GenerateDistrictData(code, month, year),
        Source:       "synthetic",
    }
}

// GetTrends serves up to seven periods of trend points, oldest first.
// With no stored rows the whole series is generated synthetically.
func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
    code := strings.ToUpper(mux.Vars(r)["districtCode"])
    if code == "" {
        sendErrorResponse(w, "District code is required", http.StatusBadRequest)
        return
    }

    key := cache.Key("trends", code)
    if cached, found := h.cacheGet(key); found {
        if resp, ok := cached.(models.TrendsResponse); ok {
            sendJSONResponse(w, http.StatusOK, resp)
            return
        }
    }

    var records []models.PerformanceRecord
    if h.Store != nil {
        var err error
        records, err = h.Store.GetRecentPerformance(r.Context(), code, trendLength)
        if err != nil {
            log.Printf("GetTrends: storage error for %s, serving synthetic series: %v", code, err)
            records = nil
        }
    }

    var trends []models.TrendPoint
    source := "database"
    if len(records) == 0 {
        h.Metrics.IncFallback("trends")
        source = "synthetic"
        trends = h.syntheticTrends(code)
    } else {
        // Storage returns most-recent-first; the chart wants oldest first.
        for i := len(records) - 1; i >= 0; i-- {
            trends = append(trends, trendPoint(records[i]))
        }
    }

    resp := models.TrendsResponse{
        DistrictCode: code,
        Trends:       trends,
        Source:       source,
    }
    h.cacheSet(key, resp)
    sendJSONResponse(w, http.StatusOK, resp)
}

func (h *Handler) syntheticTrends(code string) []models.TrendPoint {
    now := h.Now()
    trends := make([]models.TrendPoint, 0, trendLength)
    for i := trendLength - 1; i >= 0; i-- {
        month, year := store.PeriodBefore(now, i)
        data := utils.GenerateDistrictData(code, month, year)
        trends = append(trends, models.TrendPoint{
            Month:       monthNames[month],
            Year:        year,
            Workers:     data.ActiveWorkers,
            Expenditure: data.TotalExpenditure,
            Works:       data.CompletedWorks,
        })
    }
    return trends
}

func trendPoint(rec models.PerformanceRecord) models.TrendPoint {
    name := ""
    if rec.Month >= 0 && rec.Month < len(monthNames) {
        name = monthNames[rec.Month]
    }
    return models.TrendPoint{
        Month:       name,
        Year:        rec.Year,
        Workers:     rec.Data.ActiveWorkers,
        Expenditure: rec.Data.TotalExpenditure,
        Works:       rec.Data.CompletedWorks,
    }
}
