package utils

import (
    "math"

    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
)

// metricRange is one [min, max) output range for a generated metric.
type metricRange struct {
    min, max float64
}

// Documented output ranges, in field order of models.PerformanceData.
var metricRanges = [10]metricRange{
    {80000, 150000},       // total job cards
    {40000, 90000},        // active workers
    {500, 2500},           // completed works
    {100, 800},            // ongoing works
    {50000000, 250000000}, // total expenditure, rupees
    {250, 350},            // average wage per day, rupees
    {30000, 70000},        // work demand
    {25000, 60000},        // work provided
    {5, 20},               // average payment days
    {45, 60},              // women participation, percent
}

// GenerateDistrictData produces the synthetic metrics record for one
// district and period. Stand-in for a real MGNREGA feed: deterministic,
// seeded from the district code and the (month, year) pair, so repeated
// calls agree and refresh runs are idempotent. month is zero-based.
//
// The fractional sine transform is taken as an absolute value so every
// metric lands inside its documented range regardless of seed sign.
func GenerateDistrictData(code string, month, year int) models.PerformanceData {
    seed := float64(month + year)
    if len(code) > 0 {
        seed += float64(code[0])
    }

    pick := func(i int) float64 {
        r := metricRanges[i]
        frac := math.Abs(math.Mod(math.Sin(seed+float64(i))*10000, 1))
        return r.min + frac*(r.max-r.min)
    }

    return models.PerformanceData{
        TotalJobCards:      int(pick(0)),
        ActiveWorkers:      int(pick(1)),
        CompletedWorks:     int(pick(2)),
        OngoingWorks:       int(pick(3)),
        TotalExpenditure:   math.Floor(pick(4)),
        AvgWagePerDay:      trunc2(pick(5)),
        WorkDemand:         int(pick(6)),
        WorkProvided:       int(pick(7)),
        AvgPaymentDays:     trunc2(pick(8)),
        WomenParticipation: trunc2(pick(9)),
    }
}

// trunc2 keeps two decimals without ever rounding up past the range max.
func trunc2(v float64) float64 {
    return math.Floor(v*100) / 100
}
