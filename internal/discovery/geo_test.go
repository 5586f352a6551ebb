package discovery

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestHaversineKmSymmetry(t *testing.T) {
    pairs := [][4]float64{
        {40.0, -74.0, 40.009, -74.0},
        {51.5074, -0.1278, 48.8566, 2.3522},
        {-33.8688, 151.2093, 35.6762, 139.6503},
        {0, 0, 0, 180},
    }

    for _, p := range pairs {
        forward := HaversineKm(p[0], p[1], p[2], p[3])
        backward := HaversineKm(p[2], p[3], p[0], p[1])
        assert.InDelta(t, forward, backward, 1e-9)
    }
}

func TestHaversineKmZeroForSamePoint(t *testing.T) {
    assert.Equal(t, 0.0, HaversineKm(40.0, -74.0, 40.0, -74.0))
}

func TestHaversineKmKnownDistances(t *testing.T) {
    // ~0.009 degrees of latitude is about one kilometer
    assert.InDelta(t, 1.0, HaversineKm(40.0, -74.0, 40.009, -74.0), 0.01)

    // London to Paris, roughly 344 km
    assert.InDelta(t, 344, HaversineKm(51.5074, -0.1278, 48.8566, 2.3522), 2)
}

func TestRoundKm(t *testing.T) {
    assert.Equal(t, 1.0, roundKm(1.00075))
    assert.Equal(t, 5.1, roundKm(5.06))
    assert.Equal(t, 0.0, roundKm(0.04))
}
