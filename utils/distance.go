package utils

import (
    "math"

    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
)

// CalculateDistance returns the great-circle distance in kilometers
// between two coordinate pairs using the haversine formula.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
    const earthRadius = 6371.0 // kilometers

    lat1Rad := lat1 * math.Pi / 180
    lon1Rad := lon1 * math.Pi / 180
    lat2Rad := lat2 * math.Pi / 180
    lon2Rad := lon2 * math.Pi / 180

    dLat := lat2Rad - lat1Rad
    dLon := lon2Rad - lon1Rad

    a := math.Sin(dLat/2)*math.Sin(dLat/2) +
        math.Cos(lat1Rad)*math.Cos(lat2Rad)*
            math.Sin(dLon/2)*math.Sin(dLon/2)

    c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

    return earthRadius * c
}

// NearestDistrict returns the district closest to (lat, lng) and the
// distance to it in kilometers. The candidate set is at most a few
// dozen entries, so a linear scan beats any spatial index here. ok is
// false only for an empty candidate slice.
func NearestDistrict(lat, lng float64, candidates []models.District) (nearest models.District, distance float64, ok bool) {
    best := math.MaxFloat64
    for _, d := range candidates {
        km := CalculateDistance(lat, lng, d.Lat, d.Lng)
        if km < best {
            best = km
            nearest = d
            ok = true
        }
    }
    return nearest, best, ok
}
