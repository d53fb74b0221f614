package models

import "time"

// PerformanceData holds the ten MGNREGA metrics for one district in one
// (month, year) period. Month is zero-based (0 = January), matching the
// stored CHECK constraint.
type PerformanceData struct {
    TotalJobCards        int     `json:"total_job_cards"`
    ActiveWorkers        int     `json:"active_workers"`
    CompletedWorks       int     `json:"completed_works"`
    OngoingWorks         int     `json:"ongoing_works"`
    TotalExpenditure     float64 `json:"total_expenditure"`
    AvgWagePerDay        float64 `json:"avg_wage_per_day"`
    WorkDemand           int     `json:"work_demand"`
    WorkProvided         int     `json:"work_provided"`
    AvgPaymentDays       float64 `json:"avg_payment_days"`
    WomenParticipation   float64 `json:"women_participation_pct"`
}

// PerformanceRecord is one stored row: the metrics payload plus its
// composite identity and write timestamp.
type PerformanceRecord struct {
    DistrictCode string          `json:"district_code"`
    Month        int             `json:"month"`
    Year         int             `json:"year"`
    Data         PerformanceData `json:"data"`
    UpdatedAt    time.Time       `json:"updated_at"`
}

// TrendPoint is one entry of the /api/trends response.
type TrendPoint struct {
    Month       string  `json:"month"`
    Year        int     `json:"year"`
    Workers     int     `json:"workers"`
    Expenditure float64 `json:"expenditure"`
    Works       int     `json:"works"`
}

type LocationRequest struct {
    Lat *float64 `json:"lat"`
    Lng *float64 `json:"lng"`
}

type DistrictsResponse struct {
    Districts []District `json:"districts"`
    Count     int        `json:"count"`
    Source    string     `json:"source"`
}

type LocationResponse struct {
    District   District `json:"district"`
    DistanceKm float64  `json:"distance_km"`
}

type PerformanceResponse struct {
    DistrictCode string          `json:"district_code"`
    Month        int             `json:"month"`
    Year         int             `json:"year"`
    Data         PerformanceData `json:"data"`
    Source       string          `json:"source"`
}

type TrendsResponse struct {
    DistrictCode string       `json:"district_code"`
    Trends       []TrendPoint `json:"trends"`
    Source       string       `json:"source"`
}
