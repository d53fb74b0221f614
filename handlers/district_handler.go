package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "time"

    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
    "github.com/Aayush-pixel29/mgnrega-dashboard/utils"
)

const districtsCacheKey = "districts"

// GetHealth reports liveness plus database reachability detail. It is
// always 200; an unreachable database is a detail, not a failure.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
    dbStatus := "unreachable"
    if h.Store != nil {
        if _, err := h.Store.ListDistricts(r.Context()); err == nil {
            dbStatus = "connected"
        }
    }

    sendJSONResponse(w, http.StatusOK, map[string]interface{}{
        "status":    "ok",
        "database":  dbStatus,
        "timestamp": time.Now().Format(time.RFC3339),
    })
}

// GetDistricts serves the district list: cache, then storage, then the
// static directory. Always 200.
func (h *Handler) GetDistricts(w http.ResponseWriter, r *http.Request) {
    if cached, found := h.cacheGet(districtsCacheKey); found {
        if districts, ok := cached.([]models.District); ok {
            sendJSONResponse(w, http.StatusOK, models.DistrictsResponse{
                Districts: districts,
                Count:     len(districts),
                Source:    "cache",
            })
            return
        }
    }

    districts, source := h.activeDistricts(r)
    if source == "database" {
        h.cacheSet(districtsCacheKey, districts)
    }

    sendJSONResponse(w, http.StatusOK, models.DistrictsResponse{
        Districts: districts,
        Count:     len(districts),
        Source:    source,
    })
}

// LocationToDistrict resolves coordinates to the nearest district by
// great-circle distance over the active district set.
func (h *Handler) LocationToDistrict(w http.ResponseWriter, r *http.Request) {
    var req models.LocationRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
        return
    }
    if req.Lat == nil || req.Lng == nil {
        sendErrorResponse(w, "Both lat and lng are required", http.StatusBadRequest)
        return
    }
    lat, lng := *req.Lat, *req.Lng
    if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
        sendErrorResponse(w, "Coordinates out of range", http.StatusBadRequest)
        return
    }

    districts, _ := h.activeDistricts(r)
    nearest, km, ok := utils.NearestDistrict(lat, lng, districts)
    if !ok {
        sendErrorResponse(w, "Unable to resolve district", http.StatusInternalServerError)
        return
    }

    sendJSONResponse(w, http.StatusOK, models.LocationResponse{
        District:   nearest,
        DistanceKm: km,
    })
}

// activeDistricts returns the district set requests operate on:
// storage when available, the static directory otherwise. The fallback
// never fails, so read paths always have candidates.
func (h *Handler) activeDistricts(r *http.Request) ([]models.District, string) {
    if h.Store != nil {
        districts, err := h.Store.ListDistricts(r.Context())
        if err == nil && len(districts) > 0 {
            return districts, "database"
        }
        if err != nil {
            log.Printf("GetDistricts: falling back to static directory: %v", err)
        }
    }
    h.Metrics.IncFallback("districts")
    return models.DistrictDirectory, "static"
}

