package utils

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/Aayush-pixel29/mgnrega-dashboard/models"
)

func TestCalculateDistanceSymmetric(t *testing.T) {
    pairs := [][4]float64{
        {18.5204, 73.8567, 19.0760, 72.8777}, // Pune <-> Mumbai Suburban
        {21.1458, 79.0882, 16.7050, 74.2433}, // Nagpur <-> Kolhapur
        {0, 0, -45.0, 170.0},
    }
    for _, p := range pairs {
        ab := CalculateDistance(p[0], p[1], p[2], p[3])
        ba := CalculateDistance(p[2], p[3], p[0], p[1])
        assert.InDelta(t, ab, ba, 1e-9)
    }
}

func TestCalculateDistanceZeroForSamePoint(t *testing.T) {
    assert.InDelta(t, 0, CalculateDistance(18.5204, 73.8567, 18.5204, 73.8567), 1e-9)
}

func TestCalculateDistanceKnownValue(t *testing.T) {
    // Pune to Nagpur is roughly 580 km as the crow flies.
    km := CalculateDistance(18.5204, 73.8567, 21.1458, 79.0882)
    assert.InDelta(t, 620, km, 60)
}

func TestNearestDistrictFindsPune(t *testing.T) {
    d, km, ok := NearestDistrict(18.52, 73.85, models.DistrictDirectory)
    require.True(t, ok)
    assert.Equal(t, "Pune", d.Name)
    assert.Less(t, km, 5.0)
}

func TestNearestDistrictEmptyCandidates(t *testing.T) {
    _, _, ok := NearestDistrict(18.52, 73.85, nil)
    assert.False(t, ok)
}
